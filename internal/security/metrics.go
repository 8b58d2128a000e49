package security

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SecurityEvents tracks recorded security events by type and severity
	SecurityEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_security_events_total",
			Help: "Total number of security events recorded",
		},
		[]string{"type", "severity"},
	)

	// RateLimitedRequests tracks requests rejected by the rate limiter
	RateLimitedRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_rate_limited_requests_total",
			Help: "Total number of requests rejected with 429",
		},
	)
)
