package service

import (
	"context"

	"github.com/MKhiriev/ortoo/models"
)

// CredentialService provides one-way password hashing and verification.
// Hashing is intentionally expensive (bcrypt with a configurable work
// factor) to resist offline brute force.
type CredentialService interface {
	// Hash computes a salted one-way hash of plaintext. Two calls with the
	// same plaintext yield different stored values that both verify.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hashed. It never fails on a
	// mismatch; it just returns false.
	Verify(plaintext, hashed string) bool
}

// AuthService handles user registration, credential verification, and the
// session-token lifecycle.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PostService implements the content operations. Every privileged operation
// consults the [AccessGate] before touching the persistence collaborator.
type PostService interface {
	CreateDraft(ctx context.Context, identity models.Identity, description string) (models.Post, error)
	Publish(ctx context.Context, identity models.Identity, postID int64) (models.Post, error)
	Feed(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	ListOwn(ctx context.Context, identity models.Identity) ([]models.Post, error)
}

// UserService implements the user read operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// AccessGate is the per-operation authorization policy. It decides whether a
// resolved identity may execute a given operation, optionally against a
// given target post.
type AccessGate interface {
	// Authorize checks the identity against the operation's requirement.
	// For owner-gated operations it only establishes that the caller is
	// signed in; the ownership check needs the target and happens in
	// AuthorizePost.
	Authorize(op Operation, identity models.Identity) error

	// AuthorizePost checks the identity against the operation's requirement
	// including ownership of the target post.
	AuthorizePost(op Operation, identity models.Identity, post models.Post) error
}
