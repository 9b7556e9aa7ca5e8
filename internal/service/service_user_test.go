package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/mock"
	"github.com/MKhiriev/go-parking-mate/internal/store"
	"github.com/MKhiriev/go-parking-mate/internal/utils"
	"github.com/MKhiriev/go-parking-mate/internal/validators"
	"github.com/MKhiriev/go-parking-mate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (UserService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	return NewUserService(repo, validators.NewRequestValidator(), logger.Nop()), repo
}

func TestUserService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	stored := models.User{ID: 1, Email: "kim@parking.kr", Nickname: "kim"}
	repo.EXPECT().FindUserByEmail(gomock.Any(), "kim@parking.kr").Return(stored, nil)

	user, err := svc.GetProfile(context.Background(), "kim@parking.kr")

	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetProfile(context.Background(), "ghost@parking.kr")

	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// ── UpdateProfile ────────────────────────────────────────────────────────────

func TestUserService_UpdateProfile_MergesNonEmptyFields(t *testing.T) {
	tests := []struct {
		name   string
		update models.ProfileUpdate
		want   models.User
	}{
		{
			name:   "nickname only",
			update: models.ProfileUpdate{Nickname: "kimmy"},
			want:   models.User{ID: 1, Email: "kim@parking.kr", Nickname: "kimmy", PreferredFactor: models.FactorFee},
		},
		{
			name:   "factor only",
			update: models.ProfileUpdate{PreferredFactor: models.FactorDistance},
			want:   models.User{ID: 1, Email: "kim@parking.kr", Nickname: "kim", PreferredFactor: models.FactorDistance},
		},
		{
			name:   "nothing",
			update: models.ProfileUpdate{},
			want:   models.User{ID: 1, Email: "kim@parking.kr", Nickname: "kim", PreferredFactor: models.FactorFee},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo := newTestUserSvc(t, ctrl)
			repo.EXPECT().FindUserByEmail(gomock.Any(), "kim@parking.kr").
				Return(models.User{ID: 1, Email: "kim@parking.kr", Nickname: "kim", PreferredFactor: models.FactorFee}, nil)
			repo.EXPECT().UpdateUser(gomock.Any(), tt.want).Return(tt.want, nil)

			user, err := svc.UpdateProfile(context.Background(), "kim@parking.kr", tt.update)

			require.NoError(t, err)
			assert.Equal(t, tt.want, user)
		})
	}
}

func TestUserService_UpdateProfile_InvalidFactor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserSvc(t, ctrl)

	_, err := svc.UpdateProfile(context.Background(), "kim@parking.kr", models.ProfileUpdate{PreferredFactor: "SPEED"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── ChangePassword ───────────────────────────────────────────────────────────

func TestUserService_ChangePassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "kim@parking.kr").
		Return(models.User{ID: 1, Email: "kim@parking.kr", Password: "old"}, nil)
	repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.NoError(t, utils.CheckPassword(u.Password, "new"))
			assert.True(t, utils.IsPasswordHashed(u.Password))
			return u, nil
		},
	)

	err := svc.ChangePassword(context.Background(), "kim@parking.kr", models.PasswordChangeRequest{
		CurrentPassword: "old",
		NewPassword:     "new",
	})

	require.NoError(t, err)
}

func TestUserService_ChangePassword_WrongCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "kim@parking.kr").
		Return(models.User{ID: 1, Email: "kim@parking.kr", Password: "old"}, nil)

	err := svc.ChangePassword(context.Background(), "kim@parking.kr", models.PasswordChangeRequest{
		CurrentPassword: "guess",
		NewPassword:     "new",
	})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestUserService_ChangePassword_MissingNewPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserSvc(t, ctrl)

	err := svc.ChangePassword(context.Background(), "kim@parking.kr", models.PasswordChangeRequest{CurrentPassword: "old"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_ChangePassword_TooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "kim@parking.kr").
		Return(models.User{ID: 1, Email: "kim@parking.kr", Password: "old"}, nil)

	err := svc.ChangePassword(context.Background(), "kim@parking.kr", models.PasswordChangeRequest{
		CurrentPassword: "old",
		NewPassword:     strings.Repeat("p", 80),
	})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, utils.ErrPasswordTooLong)
}

// ── DeleteUser ───────────────────────────────────────────────────────────────

func TestUserService_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	repo.EXPECT().DeleteUser(gomock.Any(), "kim@parking.kr").Return(nil)

	require.NoError(t, svc.DeleteUser(context.Background(), "kim@parking.kr"))
}

func TestUserService_DeleteUser_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	repo.EXPECT().DeleteUser(gomock.Any(), "kim@parking.kr").Return(errRepo)

	assert.ErrorIs(t, svc.DeleteUser(context.Background(), "kim@parking.kr"), errRepo)
}
