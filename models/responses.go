package models

// UserListResponse is the envelope returned by the user collection
// endpoint. Cached reports whether the list was served from the cache
// layer rather than the database.
type UserListResponse struct {
	Users  []User `json:"users"`
	Cached bool   `json:"cached"`
}

// ProductListResponse is the envelope returned by the product collection
// endpoint.
type ProductListResponse struct {
	Products []Product `json:"products"`
	Cached   bool      `json:"cached"`
}

// HealthResponse describes the liveness of the service and its
// collaborators. Database and Redis carry human-readable status strings
// ("healthy", "unavailable", "unhealthy: ..."); a degraded collaborator
// never fails the endpoint itself.
type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp float64 `json:"timestamp"`
	Database  string  `json:"database"`
	Redis     string  `json:"redis"`
	Version   string  `json:"version"`
}

// StatsResponse carries row counts for the two entity classes.
type StatsResponse struct {
	Users     int64   `json:"users"`
	Products  int64   `json:"products"`
	Timestamp float64 `json:"timestamp"`
}

// MessageResponse is the generic success body for delete operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the generic error body. Message is optional and only
// set where the original behaviour includes a hint (e.g. rate limiting).
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// RateLimitResponse is the 429 body carrying a machine-readable
// retry-after hint in whole seconds, clamped non-negative.
type RateLimitResponse struct {
	Error      string `json:"error"`
	RetryAfter int64  `json:"retry_after"`
}
