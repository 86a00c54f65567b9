package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because an account with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrPostNotFound is returned when a query or update targets a post that
	// does not exist in the database.
	ErrPostNotFound = errors.New("post not found")

	// ErrAuthorNotFound is returned when a post insert fails its foreign key
	// check because the referenced author does not exist.
	ErrAuthorNotFound = errors.New("post author not found")
)
