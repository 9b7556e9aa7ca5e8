package service

import (
	"fmt"

	"github.com/MKhiriev/go-parking-mate/internal/adapter"
	"github.com/MKhiriev/go-parking-mate/internal/config"
	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/store"
	"github.com/MKhiriev/go-parking-mate/internal/validators"
	"github.com/MKhiriev/go-parking-mate/models"
)

type Services struct {
	AuthService       AuthService
	UserService       UserService
	BookmarkService   BookmarkService
	RatingService     RatingService
	ParkingLotService ParkingLotService
	AdminService      AdminService
	AppInfoService    AppInfoService
}

// NewServices wires every service to its repositories. scoring may be nil
// when no scoring module is configured.
func NewServices(storages *store.Storages, scoring adapter.ScoringAdapter, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		UserService:       NewUserService(storages.UserRepository, validator, logger),
		BookmarkService:   NewBookmarkService(storages.BookmarkRepository, validator, logger),
		RatingService:     NewRatingService(storages.RatingRepository, validator, logger),
		ParkingLotService: NewParkingLotService(storages.ParkingLotRepository, validator, logger),
		AdminService:      NewAdminService(storages, scoring, validator, logger),
		AppInfoService:    appInfoService,
	}, nil
}
