package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/ortoo/internal/logger"
	"github.com/MKhiriev/ortoo/models"
)

// postRepository is the SQL-backed implementation of [PostRepository].
// It manages the "posts" table; queries are built with squirrel
// (see sql_queries.go).
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost persists a new draft post for the given author and returns the
// fully populated [models.Post]. The published flag always starts false; it
// is set by the table default, not by the caller.
//
// Error handling:
//   - foreign key violation on author_id → [ErrAuthorNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *postRepository) CreatePost(ctx context.Context, description string, authorID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreatePost(description, authorID)
	if err != nil {
		return models.Post{}, fmt.Errorf("error building sql query: %w", err)
	}

	var post models.Post
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&post.PostID, &post.Description, &post.Published, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt); err != nil {
		switch r.db.classifier.Classify(err) {
		case KindForeignKeyViolation:
			log.Err(err).Int64("author_id", authorID).Msg("post author does not exist")
			return models.Post{}, ErrAuthorNotFound
		default:
			log.Err(err).Str("func", "*postRepository.CreatePost").Msg("post creation failed")
			return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return post, nil
}

// FindPostByID retrieves the post with the given identifier.
// Returns [ErrPostNotFound] on an empty result set.
func (r *postRepository) FindPostByID(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPostByID(postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("error building sql query: %w", err)
	}

	var post models.Post
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&post.PostID, &post.Description, &post.Published, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.FindPostByID").Msg("post search by id failed")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return post, nil
}

// UpdatePostPublished sets the published flag of a single post and returns
// the updated record. The write is a single-record UPDATE; atomicity is
// provided by the database.
//
// Returns [ErrPostNotFound] when no row matches the given id.
func (r *postRepository) UpdatePostPublished(ctx context.Context, postID int64, published bool) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostPublished(postID, published)
	if err != nil {
		return models.Post{}, fmt.Errorf("error building sql query: %w", err)
	}

	var post models.Post
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&post.PostID, &post.Description, &post.Published, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.UpdatePostPublished").Msg("post update failed")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return post, nil
}

// ListPublished returns all published posts, newest first.
func (r *postRepository) ListPublished(ctx context.Context) ([]models.Post, error) {
	query, args, err := buildListPublished()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	return r.queryPosts(ctx, query, args...)
}

// ListByAuthor returns every post of the given author, drafts included,
// newest first.
func (r *postRepository) ListByAuthor(ctx context.Context, authorID int64) ([]models.Post, error) {
	query, args, err := buildListByAuthor(authorID)
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	return r.queryPosts(ctx, query, args...)
}

func (r *postRepository) queryPosts(ctx context.Context, query string, args ...any) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.queryPosts").Msg("listing posts failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.PostID, &post.Description, &post.Published, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*postRepository.queryPosts").Msg("error: scanning error")
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return posts, nil
}
