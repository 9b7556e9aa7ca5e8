package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/store"
	"github.com/MKhiriev/go-parking-mate/internal/utils"
	"github.com/MKhiriev/go-parking-mate/internal/validators"
	"github.com/MKhiriev/go-parking-mate/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

func (s *userService) GetProfile(ctx context.Context, email string) (models.User, error) {
	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting profile: %w", err)
	}
	return user, nil
}

// UpdateProfile merges the non-empty fields of update into the stored
// profile.
func (s *userService) UpdateProfile(ctx context.Context, email string, update models.ProfileUpdate) (models.User, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting profile: %w", err)
	}

	if update.Nickname != "" {
		user.Nickname = update.Nickname
	}
	if update.PreferredFactor != "" {
		user.PreferredFactor = update.PreferredFactor
	}

	updated, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("email", email).Msg("profile update failed")
		return models.User{}, fmt.Errorf("error updating profile: %w", err)
	}
	return updated, nil
}

// ChangePassword replaces the password after checking the current one.
// Nothing is stored when the check fails.
func (s *userService) ChangePassword(ctx context.Context, email string, req models.PasswordChangeRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("error getting user: %w", err)
	}

	if err = utils.CheckPassword(user.Password, req.CurrentPassword); err != nil {
		log.Info().Int64("id", user.ID).Msg("password change with wrong current password")
		return ErrWrongPassword
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	user.Password = hashed

	if _, err = s.userRepository.UpdateUser(ctx, user); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("password change failed")
		return fmt.Errorf("error updating password: %w", err)
	}
	return nil
}

// DeleteUser removes the caller's account with their bookmarks and ratings.
func (s *userService) DeleteUser(ctx context.Context, email string) error {
	if err := s.userRepository.DeleteUser(ctx, email); err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			logger.FromContext(ctx).Err(err).Str("email", email).Msg("account deletion failed")
		}
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}
