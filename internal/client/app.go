package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-parking-mate/internal/adapter"
	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/tui"
	"github.com/MKhiriev/go-parking-mate/models"
)

// UI is the part of the terminal UI the app drives.
type UI interface {
	LoginFlow(ctx context.Context) (models.LoginResult, error)
	MainLoop(ctx context.Context, session models.LoginResult) (logout bool, err error)
}

type App struct {
	api    adapter.APIAdapter
	ui     UI
	logger *logger.Logger
}

func NewApp(api adapter.APIAdapter, ui UI, logger *logger.Logger) (*App, error) {
	if api == nil || ui == nil {
		return nil, errors.New("client app needs an api adapter and a ui")
	}
	return &App{api: api, ui: ui, logger: logger}, nil
}

// Run implements [Client]. It alternates the login flow and the main loop
// until the user quits. A logout in the main loop returns to the login flow.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		session, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		logout, err := a.ui.MainLoop(ctx, session)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err = a.api.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Str("email", session.Email).Msg("server logout failed")
		}
	}
}

var _ Client = (*App)(nil)
