// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/ortoo/internal/logger"
	"github.com/MKhiriev/ortoo/models"
)

// Operation names every action the service exposes. The access gate keys its
// policy table on these values.
type Operation string

const (
	OpSignUp       Operation = "sign-up"
	OpSignIn       Operation = "sign-in"
	OpListUsers    Operation = "list-users"
	OpReadFeed     Operation = "read-feed"
	OpReadPost     Operation = "read-post"
	OpCreateDraft  Operation = "create-draft"
	OpListOwnPosts Operation = "list-own-posts"
	OpPublishPost  Operation = "publish-post"
)

// requirement is the access level an operation demands from the caller.
type requirement int

const (
	// public operations are open to anonymous and authenticated callers alike.
	public requirement = iota

	// signedIn operations require an authenticated identity.
	signedIn

	// postOwner operations additionally require that the target post was
	// authored by the caller.
	postOwner
)

// operationPolicy is the authorization policy table. Operations missing from
// the table are denied: an unlisted operation is a programming error, and
// failing closed is the only safe answer to it.
var operationPolicy = map[Operation]requirement{
	OpSignUp:       public,
	OpSignIn:       public,
	OpListUsers:    public,
	OpReadFeed:     public,
	OpReadPost:     public,
	OpCreateDraft:  signedIn,
	OpListOwnPosts: signedIn,
	OpPublishPost:  postOwner,
}

// accessGate is the concrete [AccessGate]. It is a pure function of the
// policy table and its inputs; denials are logged, grants are not.
type accessGate struct {
	logger *logger.Logger
}

// NewAccessGate constructs the authorization gate.
func NewAccessGate(logger *logger.Logger) AccessGate {
	logger.Debug().Msg("creating access gate")
	return &accessGate{logger: logger}
}

// Authorize checks the identity against the operation's requirement.
// Anonymous callers are denied every non-public operation. For owner-gated
// operations this establishes only that the caller is signed in; callers
// holding the target post must use AuthorizePost.
func (g *accessGate) Authorize(op Operation, identity models.Identity) error {
	req, ok := operationPolicy[op]
	if !ok {
		g.logger.Error().Str("operation", string(op)).Msg("unknown operation denied")
		return ErrUnauthorized
	}

	if req == public {
		return nil
	}

	if identity.IsAnonymous() {
		g.logger.Debug().Str("operation", string(op)).Msg("anonymous caller denied")
		return ErrUnauthorized
	}

	return nil
}

// AuthorizePost checks the identity against the operation's requirement,
// including ownership of the target post for owner-gated operations.
func (g *accessGate) AuthorizePost(op Operation, identity models.Identity, post models.Post) error {
	if err := g.Authorize(op, identity); err != nil {
		return err
	}

	if operationPolicy[op] == postOwner && post.AuthorID != identity.UserID {
		g.logger.Debug().
			Str("operation", string(op)).
			Int64("user_id", identity.UserID).
			Int64("post_id", post.PostID).
			Int64("author_id", post.AuthorID).
			Msg("caller does not own the target post")
		return ErrUnauthorized
	}

	return nil
}
