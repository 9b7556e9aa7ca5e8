// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-parking-mate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestRequestValidator_RegisterRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantMsg string
	}{
		{
			name: "valid",
			req:  models.RegisterRequest{Email: "kim@parking.kr", Password: "1234", Nickname: "kim", PreferredFactor: models.FactorFee},
		},
		{
			name:    "missing email",
			req:     models.RegisterRequest{Password: "1234", Nickname: "kim", PreferredFactor: models.FactorFee},
			wantMsg: "email is required",
		},
		{
			name: "email without domain",
			req:  models.RegisterRequest{Email: "kim", Password: "1234", Nickname: "kim", PreferredFactor: models.FactorFee},
		},
		{
			name:    "unknown factor",
			req:     models.RegisterRequest{Email: "kim@parking.kr", Password: "1234", Nickname: "kim", PreferredFactor: "PRICE"},
			wantMsg: "preferred_factor must be one of: FEE DISTANCE RATING CONGESTION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestRequestValidator_MultipleFieldsJoined(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), &models.LoginRequest{})

	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "email is required; password is required")
}

func TestRequestValidator_PointerFields(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.RatingCreateRequest{ParkingLotID: 1}), ErrValidation, "score is required")
	assert.NoError(t, v.Validate(ctx, models.RatingCreateRequest{ParkingLotID: 1, Score: ptr(0.0)}), "zero score is a value")
	assert.ErrorIs(t, v.Validate(ctx, models.BookmarkRequest{ParkingLotID: -3}), ErrValidation)
}

func TestRequestValidator_Recommendation(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.RecommendationRequest{Latitude: ptr(37.5), Longitude: ptr(127.0), Weekday: ptr(7), Hour: ptr(23)}))
	assert.ErrorIs(t, v.Validate(ctx, models.RecommendationRequest{Latitude: ptr(137.5)}), ErrValidation)
	assert.ErrorIs(t, v.Validate(ctx, models.RecommendationRequest{Hour: ptr(24)}), ErrValidation)
}

func TestRequestValidator_ParkingLotUpdate(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ParkingLotUpdate{ID: 1, Fee: ptr(int64(0))}))
	assert.ErrorIs(t, v.Validate(ctx, models.ParkingLotUpdate{}), ErrValidation)
	assert.ErrorIs(t, v.Validate(ctx, models.ParkingLotUpdate{ID: 1, Name: ptr("")}), ErrValidation)
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), 42)

	assert.ErrorIs(t, err, ErrUnsupportedType)
}
