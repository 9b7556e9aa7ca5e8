package store

import (
	"context"
	"slices"
	"time"

	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/models"
)

// ratingRepository is the JSON-file implementation of [RatingRepository].
// rating_id values come from a counter seeded at load time and are never
// reused while the process runs, even after deletes.
type ratingRepository struct {
	logger *logger.Logger
	store  *JSONStore

	now func() time.Time
}

func NewRatingRepository(store *JSONStore, logger *logger.Logger) RatingRepository {
	logger.Debug().Msg("creating rating repository")
	return &ratingRepository{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (r *ratingRepository) ListRatings(ctx context.Context) ([]models.Rating, error) {
	s := r.store

	s.ratingsMu.RLock()
	defer s.ratingsMu.RUnlock()

	return slices.Clone(s.ratings), nil
}

func (r *ratingRepository) ListRatingsByEmail(ctx context.Context, email string) ([]models.Rating, error) {
	s := r.store

	s.ratingsMu.RLock()
	defer s.ratingsMu.RUnlock()

	ratings := make([]models.Rating, 0)
	for _, rt := range s.ratings {
		if rt.Email == email {
			ratings = append(ratings, rt)
		}
	}
	return ratings, nil
}

func (r *ratingRepository) FindRating(ctx context.Context, ratingID int64) (models.Rating, error) {
	s := r.store

	s.ratingsMu.RLock()
	defer s.ratingsMu.RUnlock()

	for _, rt := range s.ratings {
		if rt.RatingID == ratingID {
			return rt, nil
		}
	}
	return models.Rating{}, ErrRatingNotFound
}

// CreateRating stores rating under the next rating_id and refreshes the
// lot's average.
//
// Error handling:
//   - (email, p_id) already rated → [ErrRatingAlreadyExists].
//   - ratings file write failure → wrapped [ErrPersistingCollection].
//   - parking lots file write failure is logged only, see refreshAverage.
func (r *ratingRepository) CreateRating(ctx context.Context, rating models.Rating) (models.Rating, error) {
	log := logger.FromContext(ctx)
	s := r.store

	s.ratingsMu.Lock()
	defer s.ratingsMu.Unlock()

	for _, rt := range s.ratings {
		if rt.Email == rating.Email && rt.ParkingLotID == rating.ParkingLotID {
			return models.Rating{}, ErrRatingAlreadyExists
		}
	}

	now := r.now()
	rating.RatingID = s.nextRatingID
	rating.CreatedAt = &now
	rating.UpdatedAt = nil

	if err := s.commitRatings(append(slices.Clone(s.ratings), rating)); err != nil {
		log.Err(err).Str("func", "*ratingRepository.CreateRating").Msg("error persisting ratings")
		return models.Rating{}, err
	}
	s.nextRatingID++

	r.refreshAverage(ctx, "*ratingRepository.CreateRating", rating.ParkingLotID)

	return rating, nil
}

// UpdateRating overwrites the score, stamps updated_at and refreshes the
// lot's average.
func (r *ratingRepository) UpdateRating(ctx context.Context, ratingID int64, score float64) (models.Rating, error) {
	log := logger.FromContext(ctx)
	s := r.store

	s.ratingsMu.Lock()
	defer s.ratingsMu.Unlock()

	i := slices.IndexFunc(s.ratings, func(rt models.Rating) bool { return rt.RatingID == ratingID })
	if i < 0 {
		return models.Rating{}, ErrRatingNotFound
	}

	now := r.now()
	updated := s.ratings[i]
	updated.Score = score
	updated.UpdatedAt = &now

	next := slices.Clone(s.ratings)
	next[i] = updated
	if err := s.commitRatings(next); err != nil {
		log.Err(err).Str("func", "*ratingRepository.UpdateRating").Msg("error persisting ratings")
		return models.Rating{}, err
	}

	r.refreshAverage(ctx, "*ratingRepository.UpdateRating", updated.ParkingLotID)

	return updated, nil
}

// DeleteRating removes the rating and refreshes the lot's average.
func (r *ratingRepository) DeleteRating(ctx context.Context, ratingID int64) error {
	log := logger.FromContext(ctx)
	s := r.store

	s.ratingsMu.Lock()
	defer s.ratingsMu.Unlock()

	i := slices.IndexFunc(s.ratings, func(rt models.Rating) bool { return rt.RatingID == ratingID })
	if i < 0 {
		return ErrRatingNotFound
	}
	lotID := s.ratings[i].ParkingLotID

	next := slices.Delete(slices.Clone(s.ratings), i, i+1)
	if err := s.commitRatings(next); err != nil {
		log.Err(err).Str("func", "*ratingRepository.DeleteRating").Msg("error persisting ratings")
		return err
	}

	r.refreshAverage(ctx, "*ratingRepository.DeleteRating", lotID)

	return nil
}

// refreshAverage recomputes avg_rating for lotID once the ratings change is
// on disk. avg_rating is derived data: when the lots file cannot be written
// the lot keeps its previous average until the next rating change for it,
// and the already persisted rating is still reported as a success.
func (r *ratingRepository) refreshAverage(ctx context.Context, caller string, lotID int64) {
	if err := r.store.refreshAverages(lotID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", caller).Int64("p_id", lotID).
			Msg("rating saved but avg_rating was not refreshed")
	}
}
