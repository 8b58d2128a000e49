// Package security holds the request-screening components composed into the
// HTTP middleware chain: the per-IP fixed-window rate limiter, the blocked
// address set, the payload inspector, and the structured security event log
// feeding both zerolog and Prometheus.
//
// All components are plain injected structs guarded by their own mutexes;
// none of them keeps package-level mutable state.
package security
