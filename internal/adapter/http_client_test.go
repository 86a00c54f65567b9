// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/ortoo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: serverURL})
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		writeJSON(t, w, http.StatusCreated, authEnvelope{
			User:  models.User{UserID: 1, Email: "alice@example.com", Name: "Alice"},
			Token: "signed.jwt.token",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), "alice@example.com", "s3cret", "Alice")

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, "signed.jwt.token", a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("email already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), "taken@example.com", "s3cret", "Eve")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, a.Token(), "no token may be stored after a failed registration")
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		writeJSON(t, w, http.StatusOK, authEnvelope{
			User:  models.User{UserID: 1, Email: "alice@example.com"},
			Token: "signed.jwt.token",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), "alice@example.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, "signed.jwt.token", a.Token())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid credentials"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), "alice@example.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Posts ───────────────────────────────────────────────────────────────────

func TestFeed_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/posts", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "feed is a public read")

		writeJSON(t, w, http.StatusOK, []models.Post{
			{PostID: 2, Description: "second", Published: true},
			{PostID: 1, Description: "first", Published: true},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	posts, err := a.Feed(context.Background())

	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestGetPost_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/posts/404", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("post not found"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetPost(context.Background(), 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePost_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/posts", r.URL.Path)
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusCreated, models.Post{PostID: 1, Description: "draft", AuthorID: 7})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	post, err := a.CreatePost(context.Background(), "draft")

	require.NoError(t, err)
	assert.Equal(t, int64(1), post.PostID)
}

func TestCreatePost_AnonymousForbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("unauthorized operation"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreatePost(context.Background(), "draft")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestPublish_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/posts/1/publish", r.URL.Path)
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, models.Post{PostID: 1, Published: true, AuthorID: 7})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	post, err := a.Publish(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, post.Published)
}

func TestListMine_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/posts/mine", r.URL.Path)
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, []models.Post{
			{PostID: 3, Published: false, AuthorID: 7},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	posts, err := a.ListMine(context.Background())

	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

// ── Users ───────────────────────────────────────────────────────────────────

func TestListUsers_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users", r.URL.Path)

		writeJSON(t, w, http.StatusOK, []models.User{
			{UserID: 1, Email: "alice@example.com"},
			{UserID: 2, Email: "bob@example.com"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	users, err := a.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Len(t, users, 2)
}
