package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-parking-mate/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T) RootModel {
	t.Helper()
	api := newMockAPI(t)
	ctx := context.Background()
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(ctx, api),
		"login":    NewLoginModel(ctx, api),
		"register": NewRegisterModel(ctx, api),
	}
	return NewRootModel(pages, "menu", models.NewAppBuildInfo("1.2.0", "2026-10-01", "abc123"))
}

func updateRoot(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

func TestRootModel_NavigateTo(t *testing.T) {
	root := newTestRoot(t)

	root, cmd := updateRoot(t, root, NavigateTo{Page: "login"})
	assert.IsType(t, &LoginModel{}, root.current)
	assert.NotNil(t, cmd, "login page starts blinking the cursor")

	root, _ = updateRoot(t, root, NavigateTo{Page: "nowhere"})
	assert.IsType(t, &LoginModel{}, root.current, "unknown page keeps the current one")
}

func TestRootModel_NavigateWithPayload(t *testing.T) {
	root := newTestRoot(t)
	root, _ = updateRoot(t, root, NavigateTo{Page: "register"})

	notice := RegisterSuccessNotice{Email: "kim@parking.kr"}
	root, cmd := updateRoot(t, root, NavigateTo{Page: "menu", Payload: notice})
	require.NotNil(t, cmd)
	assert.Equal(t, notice, cmd())

	root, _ = updateRoot(t, root, notice)
	assert.Contains(t, root.View(), "kim@parking.kr signed up")
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root := newTestRoot(t)

	root, cmd := updateRoot(t, root, keyPress("ctrl+c"))

	assert.True(t, root.quitByUser)
	assert.True(t, isQuit(cmd))
}

func TestRootModel_LoginSuccessEndsFlow(t *testing.T) {
	root := newTestRoot(t)
	session := models.LoginResult{Email: "kim@parking.kr", Nickname: "kim", PreferredFactor: models.FactorRating}

	root, cmd := updateRoot(t, root, LoginResult{Session: session})

	assert.Equal(t, session, root.session)
	assert.False(t, root.quitByUser)
	assert.True(t, isQuit(cmd))
}

func TestRootModel_LoginFailureStaysOnPage(t *testing.T) {
	root := newTestRoot(t)
	root, _ = updateRoot(t, root, NavigateTo{Page: "login"})

	root, cmd := updateRoot(t, root, LoginResult{Err: assert.AnError})

	assert.False(t, isQuit(cmd))
	assert.Contains(t, root.View(), assert.AnError.Error())
}

func TestRootModel_BuildInfoWindow(t *testing.T) {
	root := newTestRoot(t)
	root, _ = updateRoot(t, root, serverVersionMsg{info: models.VersionInfo{Version: "1.4.0", BuildCommit: "def456"}})

	root, _ = updateRoot(t, root, keyPress("v"))
	view := root.View()
	assert.Contains(t, view, "1.2.0")
	assert.Contains(t, view, "abc123")
	assert.Contains(t, view, "Server version: 1.4.0")

	root, _ = updateRoot(t, root, keyPress("esc"))
	assert.NotContains(t, root.View(), "ABOUT")
}

func TestRootModel_BuildInfoOnlyFromMenu(t *testing.T) {
	root := newTestRoot(t)
	root, _ = updateRoot(t, root, NavigateTo{Page: "login"})

	root, _ = updateRoot(t, root, keyPress("v"))

	assert.False(t, root.showBuildInfo)
}

func TestRootModel_ServerVersionErrorIgnored(t *testing.T) {
	root := newTestRoot(t)

	root, _ = updateRoot(t, root, serverVersionMsg{err: assert.AnError})

	assert.Nil(t, root.server)
}
