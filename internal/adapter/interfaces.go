// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the ortoo server.
//
// The primary abstraction is [ServerAdapter], which decouples callers from the
// underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/ortoo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the ortoo
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It is called automatically after a successful
	// Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. On success it stores the returned
	// bearer token via SetToken and returns the persisted user.
	Register(ctx context.Context, email, password, name string) (models.User, error)

	// Login authenticates an existing account. On success it stores the
	// returned bearer token via SetToken and returns the user record.
	Login(ctx context.Context, email, password string) (models.User, error)

	// ListUsers fetches all registered users.
	ListUsers(ctx context.Context) ([]models.User, error)

	// Feed fetches all published posts, newest first.
	Feed(ctx context.Context) ([]models.Post, error)

	// GetPost fetches a single post by id.
	GetPost(ctx context.Context, postID int64) (models.Post, error)

	// ListMine fetches every post of the authenticated caller, drafts
	// included. Requires a stored token.
	ListMine(ctx context.Context) ([]models.Post, error)

	// CreatePost creates a new draft authored by the authenticated caller.
	// Requires a stored token.
	CreatePost(ctx context.Context, description string) (models.Post, error)

	// Publish flips the caller's draft to published. Requires a stored token.
	Publish(ctx context.Context, postID int64) (models.Post, error)
}
