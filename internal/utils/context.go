// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RoleCtxKey is the key used to store the caller's role in the context.
// The role is derived from request headers by the handler layer.
var RoleCtxKey = contextKey("role")

// TraceIDCtxKey is the key used to store the per-request trace identifier.
var TraceIDCtxKey = contextKey("traceID")

// GetRoleFromContext retrieves the caller's role from the context.
// Returns false if the value is missing or has an unexpected type.
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleCtxKey).(string)
	return role, ok
}

// GetTraceIDFromContext retrieves the trace identifier from the context.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
