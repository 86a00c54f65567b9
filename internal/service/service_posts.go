package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ortoo/internal/logger"
	"github.com/MKhiriev/ortoo/internal/store"
	"github.com/MKhiriev/ortoo/models"
)

// postService is the concrete implementation of PostService. It composes the
// access gate with the post repository; the gate decides, the repository
// persists, and the service keeps the two honest.
type postService struct {
	postRepository store.PostRepository
	gate           AccessGate
	logger         *logger.Logger
}

// NewPostService constructs a PostService wired to the given repository and
// access gate.
func NewPostService(postRepository store.PostRepository, gate AccessGate, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		gate:           gate,
		logger:         logger,
	}
}

// CreateDraft creates an unpublished post authored by the calling identity.
//
// The author is always the resolved identity's user id. There is no way to
// pass a different author through this path, which keeps orphaned or forged
// authorship out of the system.
//
// Returns ErrUnauthorized for anonymous callers and ErrInvalidDataProvided
// for an empty description.
func (p *postService) CreateDraft(ctx context.Context, identity models.Identity, description string) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := p.gate.Authorize(OpCreateDraft, identity); err != nil {
		return models.Post{}, err
	}

	if description == "" {
		log.Error().Int64("user_id", identity.UserID).Msg("empty draft description")
		return models.Post{}, ErrInvalidDataProvided
	}

	post, err := p.postRepository.CreatePost(ctx, description, identity.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", identity.UserID).Msg("draft creation ended with error")
		return models.Post{}, fmt.Errorf("draft creation ended with error: %w", err)
	}

	return post, nil
}

// Publish flips a draft to published. The transition is one-way; there is no
// unpublish.
//
// Only the post's author may publish it. Publishing an already-published
// post is a no-op success returning the unchanged record.
//
// Returns ErrUnauthorized for anonymous callers and non-owners, and
// store.ErrPostNotFound when the post id does not exist.
func (p *postService) Publish(ctx context.Context, identity models.Identity, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	// cheap signed-in check before touching the database
	if err := p.gate.Authorize(OpPublishPost, identity); err != nil {
		return models.Post{}, err
	}

	post, err := p.postRepository.FindPostByID(ctx, postID)
	if err != nil {
		log.Err(err).Int64("post_id", postID).Msg("publish target lookup failed")
		return models.Post{}, fmt.Errorf("publish target lookup failed: %w", err)
	}

	if err := p.gate.AuthorizePost(OpPublishPost, identity, post); err != nil {
		return models.Post{}, err
	}

	if post.Published {
		return post, nil
	}

	published, err := p.postRepository.UpdatePostPublished(ctx, postID, true)
	if err != nil {
		log.Err(err).Int64("post_id", postID).Msg("publish update ended with error")
		return models.Post{}, fmt.Errorf("publish update ended with error: %w", err)
	}

	return published, nil
}

// Feed returns all published posts, newest first. Open to anonymous callers.
func (p *postService) Feed(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepository.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("feed listing ended with error: %w", err)
	}

	return posts, nil
}

// GetPost returns a single post by id. Open to anonymous callers.
// Returns store.ErrPostNotFound when the id does not exist.
func (p *postService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	post, err := p.postRepository.FindPostByID(ctx, postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("post lookup ended with error: %w", err)
	}

	return post, nil
}

// ListOwn returns every post of the calling identity, drafts included.
// Returns ErrUnauthorized for anonymous callers.
func (p *postService) ListOwn(ctx context.Context, identity models.Identity) ([]models.Post, error) {
	if err := p.gate.Authorize(OpListOwnPosts, identity); err != nil {
		return nil, err
	}

	posts, err := p.postRepository.ListByAuthor(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("own posts listing ended with error: %w", err)
	}

	return posts, nil
}
