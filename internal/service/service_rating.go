package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/store"
	"github.com/MKhiriev/go-parking-mate/internal/validators"
	"github.com/MKhiriev/go-parking-mate/models"
)

type ratingService struct {
	ratingRepository store.RatingRepository
	validator        validators.Validator

	logger *logger.Logger
}

func NewRatingService(ratingRepository store.RatingRepository, validator validators.Validator, logger *logger.Logger) RatingService {
	return &ratingService{
		ratingRepository: ratingRepository,
		validator:        validator,
		logger:           logger,
	}
}

// ListRatings returns only the caller's ratings.
func (s *ratingService) ListRatings(ctx context.Context, email string) ([]models.Rating, error) {
	ratings, err := s.ratingRepository.ListRatingsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error listing ratings: %w", err)
	}
	return ratings, nil
}

func (s *ratingService) CreateRating(ctx context.Context, email string, req models.RatingCreateRequest) (models.Rating, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Rating{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	rating, err := s.ratingRepository.CreateRating(ctx, models.Rating{
		Email:        email,
		ParkingLotID: req.ParkingLotID,
		Score:        *req.Score,
	})
	if err != nil {
		return models.Rating{}, fmt.Errorf("error creating rating: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("rating_id", rating.RatingID).Int64("p_id", rating.ParkingLotID).Msg("rating created")
	return rating, nil
}

// UpdateRating changes the score of one of the caller's ratings. A rating
// owned by someone else is reported as not found.
func (s *ratingService) UpdateRating(ctx context.Context, email string, req models.RatingUpdateRequest) (models.Rating, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Rating{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.checkOwner(ctx, email, req.RatingID); err != nil {
		return models.Rating{}, err
	}

	rating, err := s.ratingRepository.UpdateRating(ctx, req.RatingID, *req.Score)
	if err != nil {
		return models.Rating{}, fmt.Errorf("error updating rating: %w", err)
	}
	return rating, nil
}

// DeleteRating removes one of the caller's ratings. A rating owned by
// someone else is reported as not found.
func (s *ratingService) DeleteRating(ctx context.Context, email string, ratingID int64) error {
	if err := s.checkOwner(ctx, email, ratingID); err != nil {
		return err
	}

	if err := s.ratingRepository.DeleteRating(ctx, ratingID); err != nil {
		return fmt.Errorf("error deleting rating: %w", err)
	}
	return nil
}

func (s *ratingService) checkOwner(ctx context.Context, email string, ratingID int64) error {
	rating, err := s.ratingRepository.FindRating(ctx, ratingID)
	if err != nil {
		return fmt.Errorf("error finding rating: %w", err)
	}
	if rating.Email != email {
		logger.FromContext(ctx).Warn().Int64("rating_id", ratingID).Str("email", email).Msg("rating belongs to another user")
		return fmt.Errorf("error finding rating: %w", store.ErrRatingNotFound)
	}
	return nil
}
