package http

import (
	"net/http"

	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/utils"
	"github.com/MKhiriev/go-parking-mate/models"
)

// Admin handlers run behind identify and adminOnly.

func (h *Handler) adminListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AdminService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, "users loaded", users)
}

func (h *Handler) adminSearchUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AdminService.SearchUsers(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, "users loaded", users)
}

func (h *Handler) adminDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AdminService.DeleteUser(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, "user deleted", nil)
}

func (h *Handler) adminListParkingLots(w http.ResponseWriter, r *http.Request) {
	lots, err := h.services.AdminService.ListParkingLots(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, "parking lots loaded", lots)
}

func (h *Handler) adminSearchParkingLots(w http.ResponseWriter, r *http.Request) {
	lots, err := h.services.AdminService.SearchParkingLots(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, "parking lots loaded", lots)
}

func (h *Handler) adminCreateParkingLot(w http.ResponseWriter, r *http.Request) {
	var req models.ParkingLotCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	lot, err := h.services.AdminService.CreateParkingLot(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteEnvelope(w, http.StatusCreated, "parking lot created", lot)
}

func (h *Handler) adminUpdateParkingLot(w http.ResponseWriter, r *http.Request) {
	var update models.ParkingLotUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	lot, err := h.services.AdminService.UpdateParkingLot(r.Context(), update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, "parking lot updated", lot)
}

func (h *Handler) adminDeleteParkingLot(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "p_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AdminService.DeleteParkingLot(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, "parking lot deleted", nil)
}

// adminRefreshScores accepts an empty body as "score for now".
func (h *Handler) adminRefreshScores(w http.ResponseWriter, r *http.Request) {
	var req models.ScoreRefreshRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}
	}

	updated, err := h.services.AdminService.RefreshScores(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int("updated", updated).Msg("scores refreshed on request")
	utils.WriteEnvelope(w, http.StatusOK, "scores refreshed", map[string]int{"updated": updated})
}

func (h *Handler) adminListRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.services.AdminService.ListRatings(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, "ratings loaded", ratings)
}

func (h *Handler) adminSearchRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.services.AdminService.SearchRatings(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, "ratings loaded", ratings)
}

func (h *Handler) adminDeleteRating(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "rating_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AdminService.DeleteRating(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteEnvelope(w, http.StatusOK, "rating deleted", nil)
}
