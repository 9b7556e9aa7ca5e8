package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-parking-mate/internal/config"
	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/service"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers builds the workers enabled in cfg. With nothing enabled Run
// returns as soon as ctx is done.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{logger: logger}

	if cfg.ScoreRefreshInterval > 0 {
		w.workers = append(w.workers, NewScoreRefreshWorker(services.AdminService, cfg.ScoreRefreshInterval, logger))
	}

	return w
}

// Run starts every worker in its own goroutine and waits until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}

func (w *Workers) Len() int {
	return len(w.workers)
}
