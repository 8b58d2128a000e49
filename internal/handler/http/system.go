package http

import (
	"net/http"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/utils"
)

// getHealth always answers 200; degraded dependencies are visible in the
// body so probes can distinguish a down database from a down cache.
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	resp := h.services.SystemService.Health(r.Context())
	utils.WriteJSON(w, resp, http.StatusOK) //nolint:errcheck
}

func (h *Handler) getReady(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SystemService.Ready(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("readiness probe failed")
		utils.WriteJSON(w, map[string]string{"status": "not ready"}, http.StatusServiceUnavailable) //nolint:errcheck
		return
	}

	utils.WriteJSON(w, map[string]string{"status": "ready"}, http.StatusOK) //nolint:errcheck
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.SystemService.Stats(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("collecting stats failed")
		h.recordInternalError(r)
		writeInternalError(w)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK) //nolint:errcheck
}
