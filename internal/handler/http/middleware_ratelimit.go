package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/security"
	"github.com/MKhiriev/go-catalog-api/internal/utils"
	"github.com/MKhiriev/go-catalog-api/models"
)

// withRateLimit enforces the per-client fixed window. Rejected requests get
// a Retry-After header and a JSON body naming the wait in whole seconds.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := security.ClientIP(r, h.trustProxy)

		ok, retryAfter := h.limiter.Allow(ip)
		if !ok {
			retrySeconds := int64(retryAfter.Seconds())

			logger.FromRequest(r).Warn().
				Str("ip", ip).
				Int64("retry_after", retrySeconds).
				Msg("rate limit exceeded")
			h.events.RecordRequest(r, security.EventRateLimitExceeded, security.SeverityWarning, map[string]string{
				"path": r.URL.Path,
			})
			security.RateLimitedRequests.Inc()

			w.Header().Set("Retry-After", strconv.FormatInt(retrySeconds, 10))
			utils.WriteJSON(w, models.RateLimitResponse{ //nolint:errcheck
				Error:      "Rate limit exceeded",
				RetryAfter: retrySeconds,
			}, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
