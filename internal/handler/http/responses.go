package http

import (
	"net/http"

	"github.com/MKhiriev/go-catalog-api/internal/utils"
	"github.com/MKhiriev/go-catalog-api/models"
)

func writeError(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status) //nolint:errcheck
}

func writeInternalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
