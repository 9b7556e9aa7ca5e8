// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/MKhiriev/go-parking-mate/internal/config"
	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/models"
)

// Collection file names inside the data directory.
const (
	usersFile       = "userData.json"
	bookmarksFile   = "bookmarks.json"
	ratingsFile     = "ratingData.json"
	parkingLotsFile = "parkingData.json"
)

// JSONStore owns the four collections for the lifetime of the process.
//
// Each collection has its own lock. Operations touching more than one
// collection acquire the locks in the order users, bookmarks, ratings,
// parking lots. Every mutation builds a new slice, persists it and only then
// swaps it in, so memory always matches what is on disk.
type JSONStore struct {
	dir    string
	logger *logger.Logger

	usersMu sync.RWMutex
	users   []models.User

	bookmarksMu sync.RWMutex
	bookmarks   []models.Bookmark

	ratingsMu    sync.RWMutex
	ratings      []models.Rating
	nextRatingID int64

	lotsMu sync.RWMutex
	lots   []models.ParkingLot
}

// NewJSONStore creates the data directory when needed and loads every
// collection file found there. Missing or unreadable files start empty.
func NewJSONStore(cfg config.Files, logger *logger.Logger) (*JSONStore, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating data dir %s: %w", cfg.DataDir, err)
	}

	s := &JSONStore{dir: cfg.DataDir, logger: logger}
	s.users = loadCollection[models.User](s.path(usersFile), logger)
	s.bookmarks = loadCollection[models.Bookmark](s.path(bookmarksFile), logger)
	s.ratings = loadCollection[models.Rating](s.path(ratingsFile), logger)
	s.lots = loadCollection[models.ParkingLot](s.path(parkingLotsFile), logger)
	s.nextRatingID = maxRatingID(s.ratings) + 1

	logger.Info().
		Str("dir", cfg.DataDir).
		Int("users", len(s.users)).
		Int("bookmarks", len(s.bookmarks)).
		Int("ratings", len(s.ratings)).
		Int("parking_lots", len(s.lots)).
		Msg("json store loaded")

	return s, nil
}

func (s *JSONStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

// The commit helpers persist next and swap it in. Callers hold the
// collection's write lock.

func (s *JSONStore) commitUsers(next []models.User) error {
	if err := saveCollection(s.path(usersFile), next); err != nil {
		return err
	}
	s.users = next
	return nil
}

func (s *JSONStore) commitBookmarks(next []models.Bookmark) error {
	if err := saveCollection(s.path(bookmarksFile), next); err != nil {
		return err
	}
	s.bookmarks = next
	return nil
}

func (s *JSONStore) commitRatings(next []models.Rating) error {
	if err := saveCollection(s.path(ratingsFile), next); err != nil {
		return err
	}
	s.ratings = next
	return nil
}

func (s *JSONStore) commitLots(next []models.ParkingLot) error {
	if err := saveCollection(s.path(parkingLotsFile), next); err != nil {
		return err
	}
	s.lots = next
	return nil
}

// refreshAverages recomputes avg_rating for the given lots from the current
// ratings and persists the lots collection when anything changed. The caller
// holds ratingsMu and must not hold lotsMu.
func (s *JSONStore) refreshAverages(lotIDs ...int64) error {
	if len(lotIDs) == 0 {
		return nil
	}

	s.lotsMu.Lock()
	defer s.lotsMu.Unlock()

	next, changed := withAverages(s.lots, s.ratings, lotIDs)
	if !changed {
		return nil
	}
	return s.commitLots(next)
}

// withAverages returns a copy of lots whose avg_rating for every id in lotIDs
// is the mean score of the matching ratings, or 0 when there are none.
func withAverages(lots []models.ParkingLot, ratings []models.Rating, lotIDs []int64) ([]models.ParkingLot, bool) {
	type acc struct {
		sum   float64
		count int
	}

	wanted := make(map[int64]*acc, len(lotIDs))
	for _, id := range lotIDs {
		wanted[id] = &acc{}
	}
	for _, r := range ratings {
		if a, ok := wanted[r.ParkingLotID]; ok {
			a.sum += r.Score
			a.count++
		}
	}

	next := slices.Clone(lots)
	changed := false
	for i := range next {
		a, ok := wanted[next[i].ID]
		if !ok {
			continue
		}
		avg := 0.0
		if a.count > 0 {
			avg = a.sum / float64(a.count)
		}
		if next[i].AvgRating != avg {
			next[i].AvgRating = avg
			changed = true
		}
	}

	return next, changed
}

func maxRatingID(ratings []models.Rating) int64 {
	var maxID int64
	for _, r := range ratings {
		maxID = max(maxID, r.RatingID)
	}
	return maxID
}
