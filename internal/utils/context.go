// Package utils provides general-purpose helper utilities used across
// different parts of the application: URL joining and escaping, snake_case to
// camelCase conversion for page-config keys, and type-safe context keys.
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

// AuthenticatedCtxKey is the key used to mark a request as having passed
// token authentication. Used together with IsAuthenticated for type-safe
// retrieval from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AuthenticatedCtxKey, true)
var AuthenticatedCtxKey = contextKey("authenticated")

// IsAuthenticated reports whether the context has been marked authenticated
// by the token middleware.
//
// Returns false when the value is missing or has an unexpected type.
func IsAuthenticated(ctx context.Context) bool {
	ok, valid := ctx.Value(AuthenticatedCtxKey).(bool)
	return valid && ok
}
