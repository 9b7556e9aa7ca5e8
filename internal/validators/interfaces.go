// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//   - RequestValidator: the go-playground/validator backed implementation
//     that reads `validate` struct tags on request DTOs.
//
// Every failure wraps [ErrValidation], and the message lists the offending
// fields by their JSON names so it can be returned to the caller as is.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input.
	Validate(context.Context, any) error
}
