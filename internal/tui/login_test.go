package tui

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-parking-mate/internal/adapter"
	"github.com/MKhiriev/go-parking-mate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoginModel_RequiresBothFields(t *testing.T) {
	m := NewLoginModel(context.Background(), newMockAPI(t))
	typeText(m, "kim@parking.kr")

	_, cmd := m.Update(keyPress("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, "Email and password are required", m.errMsg)
	assert.False(t, m.submitting)
}

func TestLoginModel_Submit(t *testing.T) {
	api := newMockAPI(t)
	session := models.LoginResult{Email: "kim@parking.kr", Nickname: "kim", PreferredFactor: models.FactorFee}
	api.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "kim@parking.kr", Password: "pw"}).
		Return(session, nil)

	m := NewLoginModel(context.Background(), api)
	typeText(m, " kim@parking.kr ")
	m.Update(keyPress("tab"))
	typeText(m, "pw")

	_, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	_, again := m.Update(keyPress("enter"))
	assert.Nil(t, again, "no second request while submitting")

	assert.Equal(t, LoginResult{Session: session}, cmd())
}

func TestLoginModel_ShowsServerError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "wrong password", err: fmt.Errorf("%w: %w: invalid email or password", adapter.ErrAPIRequestFailed, adapter.ErrAPIUnauthorized), want: "invalid email or password"},
		{name: "server down", err: fmt.Errorf("%w: dial tcp 127.0.0.1:5000: connect: connection refused", adapter.ErrAPIRequestFailed), want: "No network or the server is unavailable"},
		{name: "rate limited", err: fmt.Errorf("%w: %w: Too Many Requests", adapter.ErrAPIRequestFailed, adapter.ErrAPIRateLimited), want: "Too many attempts, try again in a minute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewLoginModel(context.Background(), newMockAPI(t))
			m.submitting = true

			m.Update(LoginResult{Err: tt.err})

			assert.False(t, m.submitting)
			assert.Contains(t, m.errMsg, tt.want)
		})
	}
}

func TestLoginModel_EscGoesBack(t *testing.T) {
	m := NewLoginModel(context.Background(), newMockAPI(t))
	m.errMsg = "old"

	_, cmd := m.Update(keyPress("esc"))

	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: "menu"}, cmd())
	assert.Empty(t, m.errMsg)
}

func TestLoginModel_FocusWraps(t *testing.T) {
	m := NewLoginModel(context.Background(), newMockAPI(t))

	m.Update(keyPress("shift+tab"))
	assert.Equal(t, 1, m.focus)

	m.Update(keyPress("tab"))
	assert.Equal(t, 0, m.focus)
}
