package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-parking-mate/internal/adapter"
	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/metrics"
	"github.com/MKhiriev/go-parking-mate/internal/store"
	"github.com/MKhiriev/go-parking-mate/internal/validators"
	"github.com/MKhiriev/go-parking-mate/models"
)

// adminService backs the /admin/api surface. It has no ownership checks:
// the caller is gated before any method is reached.
type adminService struct {
	userRepository       store.UserRepository
	ratingRepository     store.RatingRepository
	parkingLotRepository store.ParkingLotRepository

	// scoring is nil when no scoring module is configured.
	scoring adapter.ScoringAdapter

	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewAdminService(storages *store.Storages, scoring adapter.ScoringAdapter, validator validators.Validator, logger *logger.Logger) AdminService {
	return &adminService{
		userRepository:       storages.UserRepository,
		ratingRepository:     storages.RatingRepository,
		parkingLotRepository: storages.ParkingLotRepository,
		scoring:              scoring,
		validator:            validator,
		now:                  time.Now,
		logger:               logger,
	}
}

func (s *adminService) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	profiles := make([]models.UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Profile())
	}
	return profiles, nil
}

// SearchUsers matches keyword case-insensitively against the nickname or
// the email.
func (s *adminService) SearchUsers(ctx context.Context, keyword string) ([]models.UserProfile, error) {
	profiles, err := s.ListUsers(ctx)
	if err != nil || keyword == "" {
		return profiles, err
	}

	keyword = strings.ToLower(keyword)
	result := make([]models.UserProfile, 0)
	for _, p := range profiles {
		if strings.Contains(strings.ToLower(p.Nickname), keyword) ||
			strings.Contains(strings.ToLower(p.Email), keyword) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (s *adminService) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error finding user: %w", err)
	}

	if err = s.userRepository.DeleteUser(ctx, user.Email); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*adminService.DeleteUser").Int64("id", id).Msg("user deletion failed")
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}

func (s *adminService) ListParkingLots(ctx context.Context) ([]models.ParkingLot, error) {
	lots, err := s.parkingLotRepository.ListParkingLots(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing parking lots: %w", err)
	}
	return lots, nil
}

func (s *adminService) SearchParkingLots(ctx context.Context, keyword string) ([]models.ParkingLot, error) {
	lots, err := s.ListParkingLots(ctx)
	if err != nil {
		return nil, err
	}
	return filterParkingLots(lots, keyword), nil
}

func (s *adminService) CreateParkingLot(ctx context.Context, req models.ParkingLotCreateRequest) (models.ParkingLot, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.ParkingLot{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	lot, err := s.parkingLotRepository.CreateParkingLot(ctx, models.ParkingLot{
		Name:        req.Name,
		Address:     req.Address,
		Fee:         req.Fee,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		TotalSpaces: req.TotalSpaces,
	})
	if err != nil {
		return models.ParkingLot{}, fmt.Errorf("error creating parking lot: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("p_id", lot.ID).Str("name", lot.Name).Msg("parking lot created")
	return lot, nil
}

func (s *adminService) UpdateParkingLot(ctx context.Context, update models.ParkingLotUpdate) (models.ParkingLot, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.ParkingLot{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	lot, err := s.parkingLotRepository.UpdateParkingLot(ctx, update)
	if err != nil {
		return models.ParkingLot{}, fmt.Errorf("error updating parking lot: %w", err)
	}
	return lot, nil
}

func (s *adminService) DeleteParkingLot(ctx context.Context, id int64) error {
	if err := s.parkingLotRepository.DeleteParkingLot(ctx, id); err != nil {
		return fmt.Errorf("error deleting parking lot: %w", err)
	}
	logger.FromContext(ctx).Info().Int64("p_id", id).Msg("parking lot deleted")
	return nil
}

// RefreshScores scores every lot for the requested weekday and hour, which
// default to the current local time with Monday as day 0.
func (s *adminService) RefreshScores(ctx context.Context, req models.ScoreRefreshRequest) (int, error) {
	log := logger.FromContext(ctx)

	if s.scoring == nil {
		return 0, ErrScoringNotConfigured
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := s.now()
	weekday := (int(now.Weekday()) + 6) % 7
	if req.Weekday != nil {
		weekday = *req.Weekday
	}
	hour := now.Hour()
	if req.Hour != nil {
		hour = *req.Hour
	}

	lots, err := s.parkingLotRepository.ListParkingLots(ctx)
	if err != nil {
		return 0, fmt.Errorf("error listing parking lots: %w", err)
	}

	scores, err := s.scoring.Score(ctx, adapter.ScoreRequest{
		Lots:    lots,
		Weekday: weekday,
		Hour:    hour,
	})
	if err != nil {
		metrics.RecordScoreRefresh(0, err)
		log.Err(err).Str("func", "*adminService.RefreshScores").Msg("scoring module call failed")
		return 0, fmt.Errorf("%w: %w", ErrScoringFailed, err)
	}

	updated, err := s.parkingLotRepository.SaveScores(ctx, scores)
	metrics.RecordScoreRefresh(updated, err)
	if err != nil {
		return 0, fmt.Errorf("error saving scores: %w", err)
	}

	log.Info().Int("weekday", weekday).Int("hour", hour).Int("updated", updated).Msg("parking lot scores refreshed")
	return updated, nil
}

func (s *adminService) ListRatings(ctx context.Context) ([]models.Rating, error) {
	ratings, err := s.ratingRepository.ListRatings(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing ratings: %w", err)
	}
	return ratings, nil
}

// SearchRatings matches keyword case-insensitively against the rater's
// email.
func (s *adminService) SearchRatings(ctx context.Context, keyword string) ([]models.Rating, error) {
	ratings, err := s.ListRatings(ctx)
	if err != nil || keyword == "" {
		return ratings, err
	}

	keyword = strings.ToLower(keyword)
	result := make([]models.Rating, 0)
	for _, r := range ratings {
		if strings.Contains(strings.ToLower(r.Email), keyword) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (s *adminService) DeleteRating(ctx context.Context, ratingID int64) error {
	if err := s.ratingRepository.DeleteRating(ctx, ratingID); err != nil {
		if !errors.Is(err, store.ErrRatingNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*adminService.DeleteRating").Int64("rating_id", ratingID).Msg("rating deletion failed")
		}
		return fmt.Errorf("error deleting rating: %w", err)
	}
	return nil
}
