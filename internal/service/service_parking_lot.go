package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/store"
	"github.com/MKhiriev/go-parking-mate/internal/validators"
	"github.com/MKhiriev/go-parking-mate/models"
)

type parkingLotService struct {
	parkingLotRepository store.ParkingLotRepository
	validator            validators.Validator

	logger *logger.Logger
}

func NewParkingLotService(parkingLotRepository store.ParkingLotRepository, validator validators.Validator, logger *logger.Logger) ParkingLotService {
	return &parkingLotService{
		parkingLotRepository: parkingLotRepository,
		validator:            validator,
		logger:               logger,
	}
}

func (s *parkingLotService) ListParkingLots(ctx context.Context) ([]models.ParkingLot, error) {
	lots, err := s.parkingLotRepository.ListParkingLots(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing parking lots: %w", err)
	}
	return lots, nil
}

// SearchParkingLots matches keyword case-insensitively against the name or
// the address. An empty keyword matches every lot.
func (s *parkingLotService) SearchParkingLots(ctx context.Context, keyword string) ([]models.ParkingLot, error) {
	lots, err := s.ListParkingLots(ctx)
	if err != nil {
		return nil, err
	}
	return filterParkingLots(lots, keyword), nil
}

func (s *parkingLotService) GetParkingLot(ctx context.Context, id int64) (models.ParkingLot, error) {
	lot, err := s.parkingLotRepository.FindParkingLot(ctx, id)
	if err != nil {
		return models.ParkingLot{}, fmt.Errorf("error getting parking lot: %w", err)
	}
	return lot, nil
}

func (s *parkingLotService) RecommendNearby(ctx context.Context, user models.User, req models.RecommendationRequest) ([]models.RecommendedParkingLot, error) {
	return s.recommendFor(ctx, "nearby", user, req)
}

func (s *parkingLotService) RecommendDestination(ctx context.Context, user models.User, req models.RecommendationRequest) ([]models.RecommendedParkingLot, error) {
	return s.recommendFor(ctx, "destination", user, req)
}

func (s *parkingLotService) recommendFor(ctx context.Context, kind string, user models.User, req models.RecommendationRequest) ([]models.RecommendedParkingLot, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	lat, lng, ok := req.Point()
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrMissingCoordinates)
	}

	if !user.PreferredFactor.Valid() {
		logger.FromContext(ctx).Warn().
			Int64("user_id", user.ID).
			Str("factor", string(user.PreferredFactor)).
			Msg("unknown preferred factor, every lot scores 0")
	}

	lots, err := s.ListParkingLots(ctx)
	if err != nil {
		return nil, err
	}

	result := recommend(lots, lat, lng, user.PreferredFactor)
	logger.FromContext(ctx).Debug().
		Str("kind", kind).
		Str("factor", string(user.PreferredFactor)).
		Int("candidates", len(lots)).
		Int("matched", len(result)).
		Msg("recommendation computed")

	return result, nil
}

func filterParkingLots(lots []models.ParkingLot, keyword string) []models.ParkingLot {
	if keyword == "" {
		return lots
	}

	keyword = strings.ToLower(keyword)
	result := make([]models.ParkingLot, 0)
	for _, lot := range lots {
		if strings.Contains(strings.ToLower(lot.Name), keyword) ||
			strings.Contains(strings.ToLower(lot.Address), keyword) {
			result = append(result, lot)
		}
	}
	return result
}
