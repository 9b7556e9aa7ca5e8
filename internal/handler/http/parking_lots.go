package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-parking-mate/internal/utils"
	"github.com/MKhiriev/go-parking-mate/models"
)

func (h *Handler) listParkingLots(w http.ResponseWriter, r *http.Request) {
	lots, err := h.services.ParkingLotService.ListParkingLots(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "parking lots loaded", lots)
}

func (h *Handler) searchParkingLots(w http.ResponseWriter, r *http.Request) {
	lots, err := h.services.ParkingLotService.SearchParkingLots(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "parking lots loaded", lots)
}

func (h *Handler) getParkingLot(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "p_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	lot, err := h.services.ParkingLotService.GetParkingLot(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "parking lot loaded", lot)
}

func (h *Handler) recommendNearby(w http.ResponseWriter, r *http.Request) {
	h.recommend(w, r, "nearby recommendations", h.services.ParkingLotService.RecommendNearby)
}

func (h *Handler) recommendDestination(w http.ResponseWriter, r *http.Request) {
	h.recommend(w, r, "destination recommendations", h.services.ParkingLotService.RecommendDestination)
}

type recommendFunc func(ctx context.Context, user models.User, req models.RecommendationRequest) ([]models.RecommendedParkingLot, error)

func (h *Handler) recommend(w http.ResponseWriter, r *http.Request, message string, fn recommendFunc) {
	ctx := r.Context()
	user, _ := utils.GetUserFromContext(ctx)

	var req models.RecommendationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	lots, err := fn(ctx, user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, message, lots)
}
