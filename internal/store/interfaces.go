package store

import (
	"context"

	"github.com/MKhiriev/ortoo/models"
)

// UserRepository is the persistence collaborator for user accounts.
// Implementations enforce email uniqueness at the storage level and nothing
// else; all business rules live in the service layer.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// PostRepository is the persistence collaborator for posts. The publish
// transition is a single-record update; the repository provides no
// cross-record transactions.
type PostRepository interface {
	CreatePost(ctx context.Context, description string, authorID int64) (models.Post, error)
	FindPostByID(ctx context.Context, postID int64) (models.Post, error)
	UpdatePostPublished(ctx context.Context, postID int64, published bool) (models.Post, error)
	ListPublished(ctx context.Context) ([]models.Post, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]models.Post, error)
}

// ErrorKind is the result of classifying a driver-level error into a
// backend-independent category.
type ErrorKind int

const (
	// KindOther covers every error the classifier does not recognise.
	KindOther ErrorKind = iota

	// KindUniqueViolation indicates a unique-constraint conflict
	// (e.g. duplicate email).
	KindUniqueViolation

	// KindForeignKeyViolation indicates a broken reference
	// (e.g. a post pointing at a missing author).
	KindForeignKeyViolation
)

// ErrorClassifier maps backend-specific driver errors to an [ErrorKind] so
// the repositories can stay backend-agnostic.
type ErrorClassifier interface {
	Classify(err error) ErrorKind
}
