// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. They are mapped to
// statuses alongside the service and store errors in errors_mapper.go.
var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidPathParam is returned when a numeric path parameter such as
	// p_id or rating_id is not an integer.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrAdminOnly is returned by the admin gate for authenticated callers
	// without the admin role.
	ErrAdminOnly = errors.New("admin only")

	// ErrRouteNotFound is written for unmatched routes and unsupported
	// methods.
	ErrRouteNotFound = errors.New("not found")

	// ErrTooManyRequests is written when the login rate limit trips.
	ErrTooManyRequests = errors.New("too many requests")
)
