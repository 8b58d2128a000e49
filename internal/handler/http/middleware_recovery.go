package http

import (
	"net/http"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/security"
)

// withRecovery converts a downstream panic into a JSON 500 and records an
// INTERNAL_ERROR security event. The response body never echoes any detail
// of the failure.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromRequest(r).Error().
					Any("panic", rec).
					Str("uri", r.RequestURI).
					Msg("panic recovered in handler")
				h.events.RecordRequest(r, security.EventInternalError, security.SeverityError, map[string]string{
					"path": r.URL.Path,
				})
				writeInternalError(w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
