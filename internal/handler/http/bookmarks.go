package http

import (
	"net/http"

	"github.com/MKhiriev/go-parking-mate/internal/utils"
	"github.com/MKhiriev/go-parking-mate/models"
)

func (h *Handler) listBookmarks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := utils.GetUserFromContext(ctx)

	bookmarks, err := h.services.BookmarkService.ListBookmarks(ctx, user.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "bookmarks loaded", bookmarks)
}

func (h *Handler) addBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := utils.GetUserFromContext(ctx)

	var req models.BookmarkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.BookmarkService.AddBookmark(ctx, user.Email, req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusCreated, "bookmark added", nil)
}

func (h *Handler) removeBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := utils.GetUserFromContext(ctx)

	parkingLotID, err := pathID(r, "p_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.BookmarkService.RemoveBookmark(ctx, user.Email, parkingLotID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "bookmark removed", nil)
}
