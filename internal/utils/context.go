// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, JWT token generation and validation, and other
// common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/ortoo/models"
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

// IdentityCtxKey is the key used to store the resolved request identity in the
// context. Used together with IdentityFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.IdentityCtxKey, models.Authenticated(42))
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying the given identity.
// The identity middleware calls this exactly once per request; the stored
// value is never replaced afterwards.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// IdentityFromContext retrieves the resolved identity from the context.
//
// If no identity was stored (e.g. a request that bypassed the identity
// middleware), the anonymous identity is returned, so callers can treat the
// result as always valid.
func IdentityFromContext(ctx context.Context) models.Identity {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	if !ok {
		return models.Anonymous()
	}
	return identity
}
