// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package security

import (
	"net/http"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/rs/zerolog"
)

// Event severity levels, ordered by how urgently an operator should care.
const (
	SeverityInfo     = "INFO"
	SeverityWarning  = "WARNING"
	SeverityError    = "ERROR"
	SeverityCritical = "CRITICAL"
)

// Well-known event types emitted by the middleware chain.
const (
	EventRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	EventBlockedIPAttempt   = "BLOCKED_IP_ATTEMPT"
	EventSQLInjectionFound  = "SQL_INJECTION_ATTEMPT"
	EventRequestTooLarge    = "REQUEST_TOO_LARGE"
	EventInternalError      = "INTERNAL_ERROR"
	EventIPBlocked          = "IP_BLOCKED"
	EventIPUnblocked        = "IP_UNBLOCKED"
	EventForbiddenRoleCheck = "FORBIDDEN_ROLE"
)

// Events records security-relevant occurrences as structured log lines and
// Prometheus counters. One instance is shared by the whole middleware
// chain; it carries no mutable state of its own.
type Events struct {
	logger     *logger.Logger
	trustProxy bool
}

// NewEvents returns an event recorder writing through the given logger.
// trustProxy controls whether X-Forwarded-For is honored when attributing
// an event to a client address, matching the rest of the security layer.
func NewEvents(log *logger.Logger, trustProxy bool) *Events {
	return &Events{logger: log, trustProxy: trustProxy}
}

// Record emits one security event. The ip and userAgent fields are taken
// from the request when one is available; details carries event-specific
// key-value context and may be nil.
func (e *Events) Record(eventType, severity, ip, userAgent string, details map[string]string) {
	SecurityEvents.WithLabelValues(eventType, severity).Inc()

	var evt *zerolog.Event
	switch severity {
	case SeverityCritical, SeverityError:
		evt = e.logger.Error()
	case SeverityWarning:
		evt = e.logger.Warn()
	default:
		evt = e.logger.Info()
	}

	evt = evt.
		Str("event", eventType).
		Str("severity", severity).
		Str("ip", ip).
		Str("user_agent", userAgent)
	for k, v := range details {
		evt = evt.Str(k, v)
	}
	evt.Msg("security event")
}

// RecordRequest is a convenience wrapper extracting ip and user agent from
// the request.
func (e *Events) RecordRequest(r *http.Request, eventType, severity string, details map[string]string) {
	e.Record(eventType, severity, ClientIP(r, e.trustProxy), r.UserAgent(), details)
}
