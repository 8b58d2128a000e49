package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-catalog-api/internal/security"
	"github.com/MKhiriev/go-catalog-api/internal/utils"
)

// roleHeader names the caller's role. There is no authentication behind it;
// the header is a placeholder for a real identity layer and must never be
// trusted outside closed environments.
const roleHeader = "X-User-Role"

const defaultRole = "guest"

// withRole derives the caller's role from the request and stores it in the
// context for requireRole checks downstream.
func (h *Handler) withRole(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := r.Header.Get(roleHeader)
		if role == "" {
			role = defaultRole
		}

		ctx := context.WithValue(r.Context(), utils.RoleCtxKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole gates a route subtree on the caller's role. The "admin" role
// passes every gate.
func (h *Handler) requireRole(role string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			callerRole, ok := utils.GetRoleFromContext(r.Context())
			if !ok || (callerRole != role && callerRole != "admin") {
				h.events.RecordRequest(r, security.EventForbiddenRoleCheck, security.SeverityWarning, map[string]string{
					"path":     r.URL.Path,
					"role":     callerRole,
					"required": role,
				})
				writeError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
