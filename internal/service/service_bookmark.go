package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/store"
	"github.com/MKhiriev/go-parking-mate/internal/validators"
	"github.com/MKhiriev/go-parking-mate/models"
)

type bookmarkService struct {
	bookmarkRepository store.BookmarkRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewBookmarkService(bookmarkRepository store.BookmarkRepository, validator validators.Validator, logger *logger.Logger) BookmarkService {
	return &bookmarkService{
		bookmarkRepository: bookmarkRepository,
		validator:          validator,
		logger:             logger,
	}
}

func (s *bookmarkService) ListBookmarks(ctx context.Context, email string) ([]models.BookmarkView, error) {
	bookmarks, err := s.bookmarkRepository.ListBookmarks(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error listing bookmarks: %w", err)
	}

	views := make([]models.BookmarkView, 0, len(bookmarks))
	for _, b := range bookmarks {
		views = append(views, models.BookmarkView{ParkingLotID: b.ParkingLotID})
	}
	return views, nil
}

// AddBookmark is idempotent. The lot is not required to exist.
func (s *bookmarkService) AddBookmark(ctx context.Context, email string, req models.BookmarkRequest) error {
	if err := s.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.bookmarkRepository.AddBookmark(ctx, models.Bookmark{Email: email, ParkingLotID: req.ParkingLotID}); err != nil {
		return fmt.Errorf("error adding bookmark: %w", err)
	}
	return nil
}

// RemoveBookmark is idempotent.
func (s *bookmarkService) RemoveBookmark(ctx context.Context, email string, parkingLotID int64) error {
	if err := s.bookmarkRepository.RemoveBookmark(ctx, models.Bookmark{Email: email, ParkingLotID: parkingLotID}); err != nil {
		return fmt.Errorf("error removing bookmark: %w", err)
	}
	return nil
}
