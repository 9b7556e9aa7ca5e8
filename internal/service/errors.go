package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrWrongPassword       = errors.New("current password does not match")
	ErrUnauthenticated     = errors.New("login required")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrSessionsDisabled        = errors.New("session tokens are not configured")

	ErrMissingCoordinates = errors.New("latitude and longitude are required")

	ErrScoringNotConfigured = errors.New("scoring module is not configured")
	ErrScoringFailed        = errors.New("scoring module failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
