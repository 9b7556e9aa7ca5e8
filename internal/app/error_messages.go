// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-parking-mate HTTP handlers and middleware.
//
// All Msg* constants are human-readable strings written into the "message"
// field of the response envelope when a request fails.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidPathParam is returned when an id in the URL is not a number.
	MsgInvalidPathParam = "invalid path parameter"

	// MsgInvalidDataProvided is returned when a request fails validation
	// without a more specific field message.
	MsgInvalidDataProvided = "invalid data provided"

	MsgAdminOnly        = "admin only"
	MsgNotFound         = "not found"
	MsgTooManyRequests  = "too many requests"
	MsgLoginRequired    = "login required"
	MsgInternalServer   = "internal server error"
	MsgFailedToSaveData = "failed to save data"

	// MsgInvalidLoginPassword is returned when the email and password pair
	// does not match any user.
	MsgInvalidLoginPassword = "invalid email or password"

	// MsgWrongCurrentPassword is returned by the password change endpoint
	// when the current password does not match.
	MsgWrongCurrentPassword = "current password does not match"

	// MsgPasswordTooLong is returned when a new password exceeds the 72
	// bytes bcrypt can hash.
	MsgPasswordTooLong = "password must be at most 72 bytes"

	MsgMissingCoordinates = "latitude and longitude are required"

	// MsgScoringNotConfigured and MsgScoringFailed describe score refresh
	// failures caused by the external scoring module.
	MsgScoringNotConfigured = "scoring module is not configured"
	MsgScoringFailed        = "scoring module failed"

	MsgEmailAlreadyRegistered   = "email already registered"
	MsgUserNotFound             = "user not found"
	MsgParkingLotAlreadyRated   = "parking lot already rated"
	MsgRatingNotFound           = "rating not found"
	MsgParkingLotNotFound       = "parking lot not found"
	MsgParkingLotNameDuplicated = "parking lot name already exists"
)
