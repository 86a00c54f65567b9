package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/ortoo/internal/logger"
	"github.com/MKhiriev/ortoo/internal/service"
	"github.com/MKhiriev/ortoo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockUserService struct {
	listUsersFn func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func TestListUsers_Success(t *testing.T) {
	users := &mockUserService{
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{
				{UserID: 1, Email: "alice@example.com", Name: "Alice", PasswordHash: "$2a$10$secret"},
				{UserID: 2, Email: "bob@example.com", Name: "Bob", PasswordHash: "$2a$10$secret"},
			}, nil
		},
	}

	h := NewHandler(&service.Services{UserService: users}, logger.Nop())
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()

	h.listUsers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.NotContains(t, rec.Body.String(), "secret", "password hashes must not be serialised")
}

func TestListUsers_RepositoryError(t *testing.T) {
	users := &mockUserService{
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return nil, errors.New("connection refused")
		},
	}

	h := NewHandler(&service.Services{UserService: users}, logger.Nop())
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()

	h.listUsers(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused", "internals must not leak to clients")
}
