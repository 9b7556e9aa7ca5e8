// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/service"
	"github.com/MKhiriev/go-parking-mate/models"
)

// roundTimeout bounds a single refresh round.
const roundTimeout = 5 * time.Minute

// ScoreRefreshWorker asks the scoring module for fresh parking lot scores
// every interval, using the current weekday and hour.
type ScoreRefreshWorker struct {
	admin    service.AdminService
	interval time.Duration
	logger   *logger.Logger
}

func NewScoreRefreshWorker(admin service.AdminService, interval time.Duration, logger *logger.Logger) *ScoreRefreshWorker {
	return &ScoreRefreshWorker{admin: admin, interval: interval, logger: logger}
}

// Run refreshes once per tick until ctx is cancelled. It stops early when
// the scoring module is not configured since no later round can succeed.
func (w *ScoreRefreshWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("score refresh worker running")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("score refresh worker shutting down")
			return

		case <-ticker.C:
			if err := w.refresh(ctx); err != nil {
				if errors.Is(err, service.ErrScoringNotConfigured) {
					w.logger.Warn().Err(err).Msg("score refresh worker stopped")
					return
				}
				w.logger.Warn().Err(err).Msg("scheduled score refresh failed")
			}
		}
	}
}

func (w *ScoreRefreshWorker) refresh(ctx context.Context) error {
	roundCtx, cancel := context.WithTimeout(ctx, roundTimeout)
	defer cancel()

	start := time.Now()
	updated, err := w.admin.RefreshScores(roundCtx, models.ScoreRefreshRequest{})
	if err != nil {
		return err
	}

	w.logger.Info().
		Int("updated", updated).
		Dur("duration", time.Since(start)).
		Msg("scheduled score refresh finished")
	return nil
}
