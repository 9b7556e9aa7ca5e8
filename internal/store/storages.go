package store

import (
	"fmt"

	"github.com/MKhiriev/go-parking-mate/internal/config"
	"github.com/MKhiriev/go-parking-mate/internal/logger"
)

// Storages groups every repository the services depend on.
type Storages struct {
	UserRepository       UserRepository
	BookmarkRepository   BookmarkRepository
	RatingRepository     RatingRepository
	ParkingLotRepository ParkingLotRepository
}

// NewStorages loads the JSON store from cfg.Files.DataDir and builds the
// repositories on top of it.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	s, err := NewJSONStore(cfg.Files, logger)
	if err != nil {
		return nil, fmt.Errorf("error initializing json store: %w", err)
	}

	return &Storages{
		UserRepository:       NewUserRepository(s, logger),
		BookmarkRepository:   NewBookmarkRepository(s, logger),
		RatingRepository:     NewRatingRepository(s, logger),
		ParkingLotRepository: NewParkingLotRepository(s, logger),
	}, nil
}
