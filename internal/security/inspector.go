// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package security

import (
	"net/http"
	"strings"
)

// sqlPatterns are the substrings whose presence in any request parameter
// rejects the request before it reaches a handler. Matching is
// case-insensitive. Coarse on purpose: the real defense is parameterized
// queries in the store layer, this screen only exists to log and refuse
// the obvious probes.
var sqlPatterns = []string{
	"select", "insert", "update", "delete", "drop", "create", "alter",
	"exec", "union", "or 1=1", "--", ";--", "xp_",
}

// maxReportedValueLen caps how much of an offending parameter value is
// copied into the security event, so a hostile payload cannot bloat logs.
const maxReportedValueLen = 100

// Rejection describes why the inspector refused a request.
type Rejection struct {
	Status    int
	EventType string
	Severity  string
	Message   string
	Details   map[string]string
}

// Inspector screens incoming requests for oversized payloads and SQL
// metacharacter probes in the query string. It holds only immutable
// configuration, so a single instance is shared by all requests.
type Inspector struct {
	maxBodyBytes int64
}

// NewInspector returns an inspector rejecting bodies over maxBodyBytes.
func NewInspector(maxBodyBytes int64) *Inspector {
	return &Inspector{maxBodyBytes: maxBodyBytes}
}

// Scan checks the request and returns a non-nil Rejection when it must be
// refused. The parameter scan runs before the size ceiling, so a request
// failing both is reported as an injection attempt. The request body is
// not consumed.
func (i *Inspector) Scan(r *http.Request) *Rejection {
	for param, values := range r.URL.Query() {
		for _, value := range values {
			if pattern, found := matchSQLPattern(value); found {
				return &Rejection{
					Status:    http.StatusBadRequest,
					EventType: EventSQLInjectionFound,
					Severity:  SeverityCritical,
					Message:   "Invalid input detected",
					Details: map[string]string{
						"parameter": param,
						"value":     truncate(value, maxReportedValueLen),
						"pattern":   pattern,
					},
				}
			}
		}
	}

	if i.maxBodyBytes > 0 && r.ContentLength > i.maxBodyBytes {
		return &Rejection{
			Status:    http.StatusRequestEntityTooLarge,
			EventType: EventRequestTooLarge,
			Severity:  SeverityWarning,
			Message:   "Request too large",
			Details: map[string]string{
				"content_length": strings.TrimSpace(r.Header.Get("Content-Length")),
			},
		}
	}

	return nil
}

// matchSQLPattern reports the first suspicious substring found in value.
func matchSQLPattern(value string) (string, bool) {
	lowered := strings.ToLower(value)
	for _, pattern := range sqlPatterns {
		if strings.Contains(lowered, pattern) {
			return pattern, true
		}
	}
	return "", false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
