package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-parking-mate/internal/service"
	"github.com/MKhiriev/go-parking-mate/internal/store"
	"github.com/MKhiriev/go-parking-mate/internal/utils"
	"github.com/MKhiriev/go-parking-mate/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid json", ErrInvalidJSON, http.StatusBadRequest},
		{"bad path param", ErrInvalidPathParam, http.StatusBadRequest},
		{"admin only", ErrAdminOnly, http.StatusForbidden},
		{"unauthenticated", service.ErrUnauthenticated, http.StatusUnauthorized},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"wrong password", service.ErrWrongPassword, http.StatusBadRequest},
		{"duplicate email", store.ErrEmailAlreadyExists, http.StatusConflict},
		{"duplicate rating", store.ErrRatingAlreadyExists, http.StatusConflict},
		{"duplicate lot", store.ErrParkingLotAlreadyExists, http.StatusConflict},
		{"user not found", store.ErrNoUserWasFound, http.StatusNotFound},
		{"rating not found", store.ErrRatingNotFound, http.StatusNotFound},
		{"lot not found", store.ErrParkingLotNotFound, http.StatusNotFound},
		{"persist failure", store.ErrPersistingCollection, http.StatusInternalServerError},
		{"scoring disabled", service.ErrScoringNotConfigured, http.StatusServiceUnavailable},
		{"scoring failed", service.ErrScoringFailed, http.StatusBadGateway},
		{"validation", validators.ErrValidation, http.StatusBadRequest},
		{"long password", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, utils.ErrPasswordTooLong), http.StatusBadRequest},
		{"wrapped", fmt.Errorf("deleting: %w", store.ErrRatingNotFound), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMapError_FirstMatchWins(t *testing.T) {
	err := fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, service.ErrMissingCoordinates)

	status, message := mapError(err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "latitude and longitude are required", message)
}

func TestMapError_LongPasswordMessage(t *testing.T) {
	err := fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, utils.ErrPasswordTooLong)

	status, message := mapError(err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "password must be at most 72 bytes", message)
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(rec, req, fmt.Errorf("open /var/data/users.json: %w", store.ErrPersistingCollection))

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "failed to save data", env.Message)
	assert.NotContains(t, rec.Body.String(), "/var/data")
}

func TestWriteError_ValidationCarriesFieldMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(rec, req, fmt.Errorf("%w: p_id must be greater than 0", validators.ErrValidation))

	env := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusBadRequest, env.Status)
	assert.Contains(t, env.Message, "p_id must be greater than 0")
}
