package http

import (
	"time"

	"github.com/MKhiriev/go-parking-mate/internal/authz"
	"github.com/MKhiriev/go-parking-mate/internal/config"
	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/service"
	"github.com/MKhiriev/go-parking-mate/internal/utils"
)

type Handler struct {
	services *service.Services
	enforcer *authz.Enforcer

	cfg             config.Server
	sessionDuration time.Duration
	traceIDs        *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, enforcer *authz.Enforcer, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		enforcer:        enforcer,
		cfg:             cfg.Server,
		sessionDuration: cfg.App.SessionDuration,
		traceIDs:        utils.NewUUIDGenerator(),
		logger:          logger,
	}
}
