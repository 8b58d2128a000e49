package http

import (
	"net"
	"net/http"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/utils"
	"github.com/MKhiriev/go-catalog-api/models"
	"github.com/go-chi/chi/v5"
)

// blockIPRequest is the body for POST /api/admin/blocked-ips.
type blockIPRequest struct {
	IP     string `json:"ip"`
	Reason string `json:"reason"`
}

func (h *Handler) listBlockedIPs(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.blocklist.List(), http.StatusOK) //nolint:errcheck
}

func (h *Handler) blockIP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req blockIPRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if net.ParseIP(req.IP) == nil {
		writeError(w, http.StatusBadRequest, "Invalid IP address")
		return
	}
	if req.Reason == "" {
		req.Reason = "blocked by administrator"
	}

	h.blocklist.Block(req.IP, req.Reason)
	utils.WriteJSON(w, models.MessageResponse{Message: "IP blocked"}, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) unblockIP(w http.ResponseWriter, r *http.Request) {
	ip := chi.URLParam(r, "ip")
	if net.ParseIP(ip) == nil {
		writeError(w, http.StatusBadRequest, "Invalid IP address")
		return
	}

	if !h.blocklist.Unblock(ip) {
		writeError(w, http.StatusNotFound, "Resource not found")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "IP unblocked"}, http.StatusOK) //nolint:errcheck
}
