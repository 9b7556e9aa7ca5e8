package adapter

import "errors"

var (
	ErrScoringFailed = errors.New("scoring module request failed")
	ErrBadRequest    = errors.New("scoring module rejected the request")
	ErrBadGateway    = errors.New("scoring module unreachable")
	ErrEmptyAddress  = errors.New("empty address")
)

var (
	ErrAPIRequestFailed = errors.New("parking-mate api request failed")
	ErrAPIBadRequest    = errors.New("invalid request")
	ErrAPIUnauthorized  = errors.New("login required")
	ErrAPIForbidden     = errors.New("forbidden")
	ErrAPINotFound      = errors.New("not found")
	ErrAPIConflict      = errors.New("already exists")
	ErrAPIRateLimited   = errors.New("too many requests")
	ErrAPIUnavailable   = errors.New("service unavailable")
)
