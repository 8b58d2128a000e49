package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init wires the router. Middleware order matters: tracing and logging wrap
// everything so even rejected requests are logged with a trace id; recovery
// sits inside logging so a panic is logged as a 500 response; security
// headers are applied before any screening middleware can short-circuit,
// guaranteeing every response carries them; the rate limiter runs last so
// that blocked or malicious requests are refused before consuming quota.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecovery)
	router.Use(h.withSecurityHeaders)
	router.Use(h.withSecurityChecks)
	router.Use(h.withRateLimit)
	router.Use(h.withRole)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.getHealth)
		r.Get("/ready", h.getReady)

		r.Get("/users", h.getAllUsers)
		r.Post("/users", h.createUser)
		r.Get("/users/{id}", h.getUser)
		r.Delete("/users/{id}", h.deleteUser)

		r.Get("/products", h.getAllProducts)
		r.Post("/products", h.createProduct)
		r.Get("/products/{id}", h.getProduct)
		r.Put("/products/{id}", h.updateProduct)
		r.Delete("/products/{id}", h.deleteProduct)

		r.Get("/stats", h.getStats)

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.requireRole("admin"))
			r.Get("/blocked-ips", h.listBlockedIPs)
			r.Post("/blocked-ips", h.blockIP)
			r.Delete("/blocked-ips/{ip}", h.unblockIP)
		})
	})

	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// unknown paths and unsupported methods both answer 404 so route
	// existence is not leaked to probing clients
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Resource not found")
}
