package tui

import (
	"testing"

	"github.com/MKhiriev/go-parking-mate/internal/mock"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"
)

func newMockAPI(t *testing.T) *mock.MockAPIAdapter {
	t.Helper()
	return mock.NewMockAPIAdapter(gomock.NewController(t))
}

// keyPress builds the tea.KeyMsg a terminal would send for s.
func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// typeText feeds s into model m as a single paste.
func typeText(m tea.Model, s string) tea.Model {
	m, _ = m.Update(keyPress(s))
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
