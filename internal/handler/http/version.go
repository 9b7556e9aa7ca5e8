package http

import (
	"net/http"

	"github.com/MKhiriev/go-parking-mate/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	versionInfo := h.services.AppInfoService.GetVersionInfo(r.Context())

	utils.WriteEnvelope(w, http.StatusOK, "version", versionInfo)
}
