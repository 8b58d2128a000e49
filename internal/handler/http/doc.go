// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging, panic
// recovery, security headers, blocked-address screening, payload inspection,
// and per-client rate limiting are handled in this package before requests
// are delegated to the service layer.
//
// The middleware chain is composed once at router construction; the order is
// deliberate: tracing and logging wrap everything, security headers are set
// before any screening can short-circuit the request, and the rate limiter
// runs last so that rejected requests still carry the security headers.
package http
