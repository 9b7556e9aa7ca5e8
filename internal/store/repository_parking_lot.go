package store

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/models"
)

type parkingLotRepository struct {
	logger *logger.Logger
	store  *JSONStore
}

func NewParkingLotRepository(store *JSONStore, logger *logger.Logger) ParkingLotRepository {
	logger.Debug().Msg("creating parking lot repository")
	return &parkingLotRepository{
		store:  store,
		logger: logger,
	}
}

// ListParkingLots returns every lot in file order.
func (r *parkingLotRepository) ListParkingLots(ctx context.Context) ([]models.ParkingLot, error) {
	s := r.store

	s.lotsMu.RLock()
	defer s.lotsMu.RUnlock()

	return slices.Clone(s.lots), nil
}

func (r *parkingLotRepository) FindParkingLot(ctx context.Context, id int64) (models.ParkingLot, error) {
	s := r.store

	s.lotsMu.RLock()
	defer s.lotsMu.RUnlock()

	for _, lot := range s.lots {
		if lot.ID == id {
			return lot, nil
		}
	}
	return models.ParkingLot{}, ErrParkingLotNotFound
}

// CreateParkingLot appends lot with p_id = max(0, existing ids) + 1. A new
// lot starts with no ratings and no scores.
func (r *parkingLotRepository) CreateParkingLot(ctx context.Context, lot models.ParkingLot) (models.ParkingLot, error) {
	s := r.store

	s.lotsMu.Lock()
	defer s.lotsMu.Unlock()

	var maxID int64
	for _, l := range s.lots {
		if l.Name == lot.Name {
			return models.ParkingLot{}, ErrParkingLotAlreadyExists
		}
		maxID = max(maxID, l.ID)
	}
	lot.ID = maxID + 1
	lot.AvgRating = 0

	if err := s.commitLots(append(slices.Clone(s.lots), lot)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*parkingLotRepository.CreateParkingLot").Msg("error persisting parking lots")
		return models.ParkingLot{}, err
	}

	return lot, nil
}

// UpdateParkingLot applies the non-nil fields of update to the lot with
// update.ID. Renaming onto another lot's name returns
// [ErrParkingLotAlreadyExists].
func (r *parkingLotRepository) UpdateParkingLot(ctx context.Context, update models.ParkingLotUpdate) (models.ParkingLot, error) {
	s := r.store

	s.lotsMu.Lock()
	defer s.lotsMu.Unlock()

	i := slices.IndexFunc(s.lots, func(l models.ParkingLot) bool { return l.ID == update.ID })
	if i < 0 {
		return models.ParkingLot{}, ErrParkingLotNotFound
	}

	if update.Name != nil {
		for _, l := range s.lots {
			if l.ID != update.ID && l.Name == *update.Name {
				return models.ParkingLot{}, ErrParkingLotAlreadyExists
			}
		}
	}

	updated := s.lots[i]
	update.Apply(&updated)

	next := slices.Clone(s.lots)
	next[i] = updated
	if err := s.commitLots(next); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*parkingLotRepository.UpdateParkingLot").Msg("error persisting parking lots")
		return models.ParkingLot{}, err
	}

	return updated, nil
}

// DeleteParkingLot removes the lot and cascades to its bookmarks and
// ratings. Dependent collections are written first.
func (r *parkingLotRepository) DeleteParkingLot(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)
	s := r.store

	s.bookmarksMu.Lock()
	defer s.bookmarksMu.Unlock()
	s.ratingsMu.Lock()
	defer s.ratingsMu.Unlock()
	s.lotsMu.Lock()
	defer s.lotsMu.Unlock()

	nextLots := slices.DeleteFunc(slices.Clone(s.lots), func(l models.ParkingLot) bool { return l.ID == id })
	if len(nextLots) == len(s.lots) {
		return ErrParkingLotNotFound
	}

	nextBookmarks := slices.DeleteFunc(slices.Clone(s.bookmarks), func(b models.Bookmark) bool { return b.ParkingLotID == id })
	if len(nextBookmarks) != len(s.bookmarks) {
		if err := s.commitBookmarks(nextBookmarks); err != nil {
			log.Err(err).Str("func", "*parkingLotRepository.DeleteParkingLot").Msg("error persisting bookmarks")
			return err
		}
	}

	nextRatings := slices.DeleteFunc(slices.Clone(s.ratings), func(rt models.Rating) bool { return rt.ParkingLotID == id })
	if len(nextRatings) != len(s.ratings) {
		if err := s.commitRatings(nextRatings); err != nil {
			log.Err(err).Str("func", "*parkingLotRepository.DeleteParkingLot").Msg("error persisting ratings")
			return err
		}
	}

	if err := s.commitLots(nextLots); err != nil {
		log.Err(err).Str("func", "*parkingLotRepository.DeleteParkingLot").Msg("error persisting parking lots")
		return err
	}

	log.Info().Int64("p_id", id).Msg("parking lot deleted")
	return nil
}

// SaveScores writes every score whose lot exists in a single file update.
func (r *parkingLotRepository) SaveScores(ctx context.Context, scores []models.LotScore) (int, error) {
	s := r.store

	s.lotsMu.Lock()
	defer s.lotsMu.Unlock()

	byID := make(map[int64]models.LotScore, len(scores))
	for _, sc := range scores {
		byID[sc.ParkingLotID] = sc
	}

	next := slices.Clone(s.lots)
	updated := 0
	for i := range next {
		if sc, ok := byID[next[i].ID]; ok {
			next[i].SetScores(sc)
			updated++
		}
	}
	if updated == 0 {
		return 0, nil
	}

	if err := s.commitLots(next); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*parkingLotRepository.SaveScores").Msg("error persisting parking lots")
		return 0, err
	}

	return updated, nil
}
