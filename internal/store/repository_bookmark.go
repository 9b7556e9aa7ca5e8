package store

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/models"
)

type bookmarkRepository struct {
	logger *logger.Logger
	store  *JSONStore
}

func NewBookmarkRepository(store *JSONStore, logger *logger.Logger) BookmarkRepository {
	logger.Debug().Msg("creating bookmark repository")
	return &bookmarkRepository{
		store:  store,
		logger: logger,
	}
}

// ListBookmarks returns the caller's bookmarks in file order.
func (r *bookmarkRepository) ListBookmarks(ctx context.Context, email string) ([]models.Bookmark, error) {
	s := r.store

	s.bookmarksMu.RLock()
	defer s.bookmarksMu.RUnlock()

	bookmarks := make([]models.Bookmark, 0)
	for _, b := range s.bookmarks {
		if b.Email == email {
			bookmarks = append(bookmarks, b)
		}
	}
	return bookmarks, nil
}

// AddBookmark appends the pair unless it is already stored, in which case it
// is a no-op.
func (r *bookmarkRepository) AddBookmark(ctx context.Context, bookmark models.Bookmark) error {
	s := r.store

	s.bookmarksMu.Lock()
	defer s.bookmarksMu.Unlock()

	if slices.Contains(s.bookmarks, bookmark) {
		return nil
	}

	if err := s.commitBookmarks(append(slices.Clone(s.bookmarks), bookmark)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookmarkRepository.AddBookmark").Msg("error persisting bookmarks")
		return err
	}
	return nil
}

// RemoveBookmark deletes the pair. Removing a pair that is not stored is a
// no-op and does not touch the file.
func (r *bookmarkRepository) RemoveBookmark(ctx context.Context, bookmark models.Bookmark) error {
	s := r.store

	s.bookmarksMu.Lock()
	defer s.bookmarksMu.Unlock()

	next := slices.DeleteFunc(slices.Clone(s.bookmarks), func(b models.Bookmark) bool { return b == bookmark })
	if len(next) == len(s.bookmarks) {
		return nil
	}

	if err := s.commitBookmarks(next); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookmarkRepository.RemoveBookmark").Msg("error persisting bookmarks")
		return err
	}
	return nil
}
