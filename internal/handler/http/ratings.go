package http

import (
	"net/http"

	"github.com/MKhiriev/go-parking-mate/internal/service"
	"github.com/MKhiriev/go-parking-mate/internal/utils"
	"github.com/MKhiriev/go-parking-mate/models"
)

func (h *Handler) listRatings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := utils.GetUserFromContext(ctx)

	ratings, err := h.services.RatingService.ListRatings(ctx, user.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "ratings loaded", ratings)
}

func (h *Handler) createRating(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := utils.GetUserFromContext(ctx)

	var req models.RatingCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	rating, err := h.services.RatingService.CreateRating(ctx, user.Email, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusCreated, "rating created", rating)
}

func (h *Handler) updateRating(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := utils.GetUserFromContext(ctx)

	var req models.RatingUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	rating, err := h.services.RatingService.UpdateRating(ctx, user.Email, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "rating updated", rating)
}

func (h *Handler) deleteRating(w http.ResponseWriter, r *http.Request) {
	ratingID, err := pathID(r, "rating_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.deleteOwnRating(w, r, ratingID)
}

// deleteRatingByBody serves DELETE /api/ratings with {rating_id} in the
// body, the form older clients send.
func (h *Handler) deleteRatingByBody(w http.ResponseWriter, r *http.Request) {
	var req models.RatingDeleteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.RatingID <= 0 {
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}
	h.deleteOwnRating(w, r, req.RatingID)
}

func (h *Handler) deleteOwnRating(w http.ResponseWriter, r *http.Request, ratingID int64) {
	ctx := r.Context()
	user, _ := utils.GetUserFromContext(ctx)

	if err := h.services.RatingService.DeleteRating(ctx, user.Email, ratingID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "rating deleted", nil)
}
