package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/mock"
	"github.com/MKhiriev/go-parking-mate/internal/tui"
	"github.com/MKhiriev/go-parking-mate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type scriptedUI struct {
	logins   []error
	logouts  []bool
	loopErr  error
	sessions []models.LoginResult
}

func (s *scriptedUI) LoginFlow(context.Context) (models.LoginResult, error) {
	if len(s.logins) == 0 {
		return models.LoginResult{}, tui.ErrUserQuit
	}
	err := s.logins[0]
	s.logins = s.logins[1:]
	if err != nil {
		return models.LoginResult{}, err
	}
	return models.LoginResult{Email: "kim@parking.kr"}, nil
}

func (s *scriptedUI) MainLoop(_ context.Context, session models.LoginResult) (bool, error) {
	s.sessions = append(s.sessions, session)
	if s.loopErr != nil {
		return false, s.loopErr
	}
	if len(s.logouts) == 0 {
		return false, nil
	}
	logout := s.logouts[0]
	s.logouts = s.logouts[1:]
	return logout, nil
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := NewApp(nil, &scriptedUI{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(mock.NewMockAPIAdapter(ctrl), nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run(t *testing.T) {
	loopFailure := errors.New("terminal closed")

	tests := []struct {
		name         string
		ui           *scriptedUI
		logoutCalls  int
		logoutErr    error
		wantErr      error
		wantSessions int
	}{
		{
			name:         "quit from main loop",
			ui:           &scriptedUI{logins: []error{nil}},
			wantSessions: 1,
		},
		{
			name:         "quit from login flow",
			ui:           &scriptedUI{},
			wantSessions: 0,
		},
		{
			name:         "logout goes back to login",
			ui:           &scriptedUI{logins: []error{nil, nil}, logouts: []bool{true}},
			logoutCalls:  1,
			wantSessions: 2,
		},
		{
			name:         "server logout failure is not fatal",
			ui:           &scriptedUI{logins: []error{nil, nil}, logouts: []bool{true}},
			logoutCalls:  1,
			logoutErr:    errors.New("connection refused"),
			wantSessions: 2,
		},
		{
			name:         "login flow error",
			ui:           &scriptedUI{logins: []error{loopFailure}},
			wantErr:      loopFailure,
			wantSessions: 0,
		},
		{
			name:         "main loop error",
			ui:           &scriptedUI{logins: []error{nil}, loopErr: loopFailure},
			wantErr:      loopFailure,
			wantSessions: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mock.NewMockAPIAdapter(ctrl)
			api.EXPECT().Logout(gomock.Any()).Return(tt.logoutErr).Times(tt.logoutCalls)

			app, err := NewApp(api, tt.ui, logger.Nop())
			require.NoError(t, err)

			err = app.Run()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, tt.ui.sessions, tt.wantSessions)
		})
	}
}
