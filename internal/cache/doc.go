// Package cache implements the read-through cache layer backed by Redis.
//
// The cache is a pure performance optimization: every failure mode of the
// backend (connection refused, timeout, corrupted payload) is reported to
// callers as a plain miss, never as an error. Set and Invalidate are
// fire-and-forget; their failures are logged and swallowed so that a cache
// outage degrades read latency without ever breaking a request.
//
// Keys follow the fixed <class>:all / <class>:<id> shapes produced by the
// helpers in keys.go.
package cache
