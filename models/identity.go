// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the resolved caller of a request: either anonymous or a specific
// user. It is constructed exactly once per incoming request by the identity
// middleware, is never persisted, and is immutable for the lifetime of the
// request.
type Identity struct {
	// UserID is the identifier of the authenticated user.
	// Zero when the identity is anonymous.
	UserID int64

	authenticated bool
}

// Anonymous returns the identity of an unauthenticated caller.
func Anonymous() Identity {
	return Identity{}
}

// Authenticated returns the identity of the user with the given id.
func Authenticated(userID int64) Identity {
	return Identity{UserID: userID, authenticated: true}
}

// IsAuthenticated reports whether the identity belongs to a signed-in user.
func (i Identity) IsAuthenticated() bool {
	return i.authenticated
}

// IsAnonymous reports whether the identity belongs to an unauthenticated caller.
func (i Identity) IsAnonymous() bool {
	return !i.authenticated
}
