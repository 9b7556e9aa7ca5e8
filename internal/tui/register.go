package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-parking-mate/internal/adapter"
	"github.com/MKhiriev/go-parking-mate/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	regEmail = iota
	regNickname
	regPassword
	regRepeat
	regFactor // not a text input; the factor row is chosen with ←/→
)

// RegisterModel is the Bubble Tea model for the sign-up screen. It renders
// four text inputs (email, nickname, password and its confirmation) plus a
// preferred-factor selector, and dispatches an async registration command on
// form submission. On success the form is reset and the user is sent back to
// the menu with a [RegisterSuccessNotice].
type RegisterModel struct {
	ctx context.Context
	api adapter.APIAdapter

	inputs     []textinput.Model
	factorIdx  int
	focus      int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, api adapter.APIAdapter) *RegisterModel {
	fields := make([]textinput.Model, regFactor)

	fields[regEmail] = textinput.New()
	fields[regEmail].Placeholder = "email"
	fields[regEmail].CharLimit = 254
	fields[regEmail].Width = 40
	fields[regEmail].Focus()

	fields[regNickname] = textinput.New()
	fields[regNickname].Placeholder = "nickname"
	fields[regNickname].CharLimit = 40
	fields[regNickname].Width = 40

	fields[regPassword] = textinput.New()
	fields[regPassword].Placeholder = "password"
	fields[regPassword].EchoMode = textinput.EchoPassword
	fields[regPassword].EchoCharacter = '*'
	fields[regPassword].Width = 40

	fields[regRepeat] = textinput.New()
	fields[regRepeat].Placeholder = "repeat password"
	fields[regRepeat].EchoMode = textinput.EchoPassword
	fields[regRepeat].EchoCharacter = '*'
	fields[regRepeat].Width = 40

	return &RegisterModel{
		ctx:    ctx,
		api:    api,
		inputs: fields,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [RegisterResult]: on error populates errMsg, on success resets the form
//     and navigates to the menu.
//   - esc: cancels and navigates back to the menu.
//   - tab / shift+tab: moves focus between rows.
//   - ←/→ on the factor row: cycles the preferred factor.
//   - enter: validates the form and dispatches the async registration command.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeServerUnavailableError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    "menu",
				Payload: RegisterSuccessNotice{Email: result.Email},
			}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case m.focus == regFactor && key.Matches(keyMsg, keys.left):
			m.factorIdx = (m.factorIdx - 1 + len(models.PreferredFactors)) % len(models.PreferredFactors)
			return m, nil
		case m.focus == regFactor && key.Matches(keyMsg, keys.right):
			m.factorIdx = (m.factorIdx + 1) % len(models.PreferredFactors)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			req := models.RegisterRequest{
				Email:           strings.TrimSpace(m.inputs[regEmail].Value()),
				Nickname:        strings.TrimSpace(m.inputs[regNickname].Value()),
				Password:        m.inputs[regPassword].Value(),
				PreferredFactor: models.PreferredFactors[m.factorIdx],
			}
			repeat := m.inputs[regRepeat].Value()

			if req.Email == "" || req.Nickname == "" || req.Password == "" || repeat == "" {
				m.errMsg = "All fields are required"
				return m, nil
			}
			if req.Password != repeat {
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(req)
		}
	}

	if m.focus == regFactor {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Field            │ Value\n")
	b.WriteString("─────────────────┼────────────────────────────────────\n")
	b.WriteString("Email            │ [")
	b.WriteString(m.inputs[regEmail].View())
	b.WriteString("]\n")
	b.WriteString("Nickname         │ [")
	b.WriteString(m.inputs[regNickname].View())
	b.WriteString("]\n")
	b.WriteString("Password         │ [")
	b.WriteString(m.inputs[regPassword].View())
	b.WriteString("]\n")
	b.WriteString("Repeat password  │ [")
	b.WriteString(m.inputs[regRepeat].View())
	b.WriteString("]\n")
	b.WriteString("Recommend by     │ ")
	factor := "< " + factorName(models.PreferredFactors[m.factorIdx]) + " >"
	if m.focus == regFactor {
		factor = selectedStyle.Render(factor)
	}
	b.WriteString(factor)
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Sign up...]\n")
	} else {
		b.WriteString("\n[Sign up]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ ←/→: factor │ enter: submit")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	api := m.api

	return func() tea.Msg {
		err := api.Register(ctx, req)
		return RegisterResult{Err: err, Email: req.Email}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.factorIdx = 0
	m.focus = 0
	m.inputs[m.focus].Focus()
}

// focusNext walks the text inputs and then the factor row.
func (m *RegisterModel) focusNext() {
	m.setFocus((m.focus + 1) % (regFactor + 1))
}

func (m *RegisterModel) focusPrev() {
	m.setFocus((m.focus - 1 + regFactor + 1) % (regFactor + 1))
}

func (m *RegisterModel) setFocus(next int) {
	if m.focus < regFactor {
		m.inputs[m.focus].Blur()
	}
	m.focus = next
	if m.focus < regFactor {
		m.inputs[m.focus].Focus()
	}
}

func factorName(f models.PreferredFactor) string {
	switch f {
	case models.FactorFee:
		return "Fee"
	case models.FactorDistance:
		return "Distance"
	case models.FactorRating:
		return "Rating"
	case models.FactorCongestion:
		return "Congestion"
	default:
		return "Unknown"
	}
}
