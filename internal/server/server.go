package server

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-parking-mate/internal/config"
	"github.com/MKhiriev/go-parking-mate/internal/handler"
	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer builds the HTTP server from handlers. bgWorkers may be nil.
func NewServer(handlers *handler.Handlers, bgWorkers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers != nil && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.workers = bgWorkers
	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
		return err
	}
	return nil
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// run serves until ctx is done, then shuts the HTTP server down and waits
// for the workers to return. When the listener fails the workers are
// stopped too and the listen error is returned.
func (s *server) run(ctx context.Context) error {
	// check if any server was created
	if s.httpServer == nil {
		return errNoServersToRun
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	if s.workers != nil {
		s.logger.Info().Int("workers", s.workers.Len()).Msg("Launching workers")
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.workers.Run(ctx)
		}()
	}

	s.logger.Info().Msg("Launching HTTP server")
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- s.httpServer.RunServer()
	}()

	select {
	case err := <-listenErr:
		cancel()
		wg.Wait()
		if err != nil {
			return fmt.Errorf("%w: %w", errHTTPServerStopped, err)
		}
		return nil
	case <-ctx.Done():
	}

	// finish started servers
	s.Shutdown()
	<-listenErr
	wg.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
