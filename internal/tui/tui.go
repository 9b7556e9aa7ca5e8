package tui

import (
	"context"

	"github.com/MKhiriev/go-parking-mate/internal/adapter"
	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	api       adapter.APIAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(api adapter.APIAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{api: api, buildInfo: buildInfo, logger: logger}, nil
}

// LoginFlow runs the menu, login and sign-up pages until the user logs in.
// It returns [ErrUserQuit] when the user leaves with ctrl+c.
func (t *TUI) LoginFlow(ctx context.Context) (models.LoginResult, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(ctx, t.api),
		"login":    NewLoginModel(ctx, t.api),
		"register": NewRegisterModel(ctx, t.api),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.LoginResult{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.LoginResult{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.LoginResult{}, ErrUserQuit
	}

	t.logger.Info().Str("email", result.session.Email).Msg("logged in")
	return result.session, nil
}

// MainLoop runs the parking lot browser. logout reports whether the user
// asked to switch accounts rather than quit.
func (t *TUI) MainLoop(ctx context.Context, session models.LoginResult) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.api, session)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
