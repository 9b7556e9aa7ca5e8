package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-parking-mate/internal/app"
	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/service"
	"github.com/MKhiriev/go-parking-mate/internal/store"
	"github.com/MKhiriev/go-parking-mate/internal/utils"
	"github.com/MKhiriev/go-parking-mate/internal/validators"
)

// errorMapping is an ordered pair of a sentinel and what it maps to.
// Order matters: a wrapped error matching several sentinels takes the first.
type errorMapping struct {
	target  error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{ErrInvalidPathParam, http.StatusBadRequest, app.MsgInvalidPathParam},
	{ErrAdminOnly, http.StatusForbidden, app.MsgAdminOnly},
	{ErrRouteNotFound, http.StatusNotFound, app.MsgNotFound},
	{ErrTooManyRequests, http.StatusTooManyRequests, app.MsgTooManyRequests},

	{service.ErrUnauthenticated, http.StatusUnauthorized, app.MsgLoginRequired},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgLoginRequired},
	{service.ErrWrongPassword, http.StatusBadRequest, app.MsgWrongCurrentPassword},
	{service.ErrMissingCoordinates, http.StatusBadRequest, app.MsgMissingCoordinates},
	{utils.ErrPasswordTooLong, http.StatusBadRequest, app.MsgPasswordTooLong},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrScoringNotConfigured, http.StatusServiceUnavailable, app.MsgScoringNotConfigured},
	{service.ErrScoringFailed, http.StatusBadGateway, app.MsgScoringFailed},

	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyRegistered},
	{store.ErrNoUserWasFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrRatingAlreadyExists, http.StatusConflict, app.MsgParkingLotAlreadyRated},
	{store.ErrRatingNotFound, http.StatusNotFound, app.MsgRatingNotFound},
	{store.ErrParkingLotNotFound, http.StatusNotFound, app.MsgParkingLotNotFound},
	{store.ErrParkingLotAlreadyExists, http.StatusConflict, app.MsgParkingLotNameDuplicated},
	{store.ErrPersistingCollection, http.StatusInternalServerError, app.MsgFailedToSaveData},

	{validators.ErrValidation, http.StatusBadRequest, app.MsgInvalidDataProvided},
}

func statusFromError(err error) int {
	status, _ := mapError(err)
	return status
}

func mapError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServer
}

// writeError writes the envelope for err. Validation failures carry the
// validator's field messages so the client can show them as is.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := mapError(err)
	if status == http.StatusBadRequest && errors.Is(err, validators.ErrValidation) {
		message = err.Error()
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteEnvelope(w, status, message, nil)
}
