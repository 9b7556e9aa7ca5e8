package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-parking-mate/internal/config"
	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/store"
	"github.com/MKhiriev/go-parking-mate/internal/utils"
	"github.com/MKhiriev/go-parking-mate/internal/validators"
	"github.com/MKhiriev/go-parking-mate/models"
)

// joinedAtLayout is the calendar date format of models.User.JoinedAt.
const joinedAtLayout = "2006-01-02"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and session token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	// Empty disables sessions.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// headerEnabled allows the identity header as a source of the caller.
	headerEnabled bool

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with session parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.SessionSignKey,
		tokenIssuer:    cfg.SessionIssuer,
		tokenDuration:  cfg.SessionDuration,
		headerEnabled:  !cfg.DisableIdentityHeader,
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates the request, hashes the password with bcrypt, stamps
// joined_at with today's date and delegates persistence to the
// UserRepository.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if a field is missing or the factor is unknown.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken, see store.ErrEmailAlreadyExists).
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hashed, err := utils.HashPassword(req.Password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:           req.Email,
		Password:        hashed,
		Nickname:        req.Nickname,
		PreferredFactor: req.PreferredFactor,
		JoinedAt:        a.now().Format(joinedAtLayout),
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", registeredUser.ID).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials if no user has the email or the password does not
//     match. The two cases are not distinguished.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("email", req.Email).Msg("login for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.CheckPassword(foundUser.Password, req.Password); err != nil {
		log.Info().Int64("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed session token for the given user.
//
// Returns ErrSessionsDisabled when no sign key is configured, or a wrapped
// ErrTokenCreationFailed if signing fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if !a.SessionsEnabled() {
		return models.Token{}, ErrSessionsDisabled
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if !a.SessionsEnabled() {
		return models.Token{}, ErrSessionsDisabled
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) Identify(ctx context.Context, headerEmail, sessionToken string) (models.User, error) {
	log := logger.FromContext(ctx)

	if a.headerEnabled && headerEmail != "" {
		user, err := a.userRepository.FindUserByEmail(ctx, headerEmail)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, fmt.Errorf("user search by email failed: %w", err)
		}
		log.Debug().Str("email", headerEmail).Msg("identity header names no user")
	}

	if sessionToken != "" && a.SessionsEnabled() {
		token, err := a.ParseToken(ctx, sessionToken)
		if err != nil {
			log.Debug().Err(err).Msg("session token rejected")
			return models.User{}, ErrUnauthenticated
		}

		user, err := a.userRepository.FindUserByEmail(ctx, token.Email)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, fmt.Errorf("user search by email failed: %w", err)
		}
	}

	return models.User{}, ErrUnauthenticated
}

func (a *authService) SessionsEnabled() bool {
	return a.tokenSignKey != ""
}
