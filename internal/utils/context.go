// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys and id
// generation.
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

// CallerIDCtxKey is the key used to store the opaque caller id in the
// context. The caller id is an unauthenticated, client-supplied string; the
// caller-id middleware writes it and handlers read it back with
// GetCallerIDFromContext.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.CallerIDCtxKey, "demo-user")
var CallerIDCtxKey = contextKey("callerID")

// SetCallerIDToContext returns a child context carrying the caller id under
// [CallerIDCtxKey].
func SetCallerIDToContext(ctx context.Context, callerID string) context.Context {
	return context.WithValue(ctx, CallerIDCtxKey, callerID)
}

// GetCallerIDFromContext retrieves the caller id from the context.
//
// Returns the caller id and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetCallerIDFromContext(ctx context.Context) (string, bool) {
	callerID, ok := ctx.Value(CallerIDCtxKey).(string)
	return callerID, ok
}
