package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/ortoo/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig carries the settings for the REST adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// authEnvelope mirrors the server's register/login response body.
type authEnvelope struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// authedRequest returns a request builder carrying the stored bearer token.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) Register(ctx context.Context, email, password, name string) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": password, "name": name}).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var envelope authEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.User{}, fmt.Errorf("decode register response: %w", err)
	}

	h.SetToken(envelope.Token)
	return envelope.User, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var envelope authEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.User{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(envelope.Token)
	return envelope.User, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var users []models.User
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("decode users response: %w", err)
	}

	return users, nil
}

func (h *httpServerAdapter) Feed(ctx context.Context) ([]models.Post, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/posts")
	if err != nil {
		return nil, fmt.Errorf("feed request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var posts []models.Post
	if err = json.Unmarshal(resp.Body(), &posts); err != nil {
		return nil, fmt.Errorf("decode feed response: %w", err)
	}

	return posts, nil
}

func (h *httpServerAdapter) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/posts/" + strconv.FormatInt(postID, 10))
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	var post models.Post
	if err = json.Unmarshal(resp.Body(), &post); err != nil {
		return models.Post{}, fmt.Errorf("decode post response: %w", err)
	}

	return post, nil
}

func (h *httpServerAdapter) ListMine(ctx context.Context) ([]models.Post, error) {
	resp, err := h.authedRequest(ctx).Get("/api/posts/mine")
	if err != nil {
		return nil, fmt.Errorf("list mine request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var posts []models.Post
	if err = json.Unmarshal(resp.Body(), &posts); err != nil {
		return nil, fmt.Errorf("decode own posts response: %w", err)
	}

	return posts, nil
}

func (h *httpServerAdapter) CreatePost(ctx context.Context, description string) (models.Post, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"description": description}).
		Post("/api/posts")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	var post models.Post
	if err = json.Unmarshal(resp.Body(), &post); err != nil {
		return models.Post{}, fmt.Errorf("decode created post response: %w", err)
	}

	return post, nil
}

func (h *httpServerAdapter) Publish(ctx context.Context, postID int64) (models.Post, error) {
	resp, err := h.authedRequest(ctx).
		Post("/api/posts/" + strconv.FormatInt(postID, 10) + "/publish")
	if err != nil {
		return models.Post{}, fmt.Errorf("publish request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	var post models.Post
	if err = json.Unmarshal(resp.Body(), &post); err != nil {
		return models.Post{}, fmt.Errorf("decode published post response: %w", err)
	}

	return post, nil
}
