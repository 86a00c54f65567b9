package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/ortoo/internal/logger"
	"github.com/MKhiriev/ortoo/internal/service"
	"github.com/MKhiriev/ortoo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires a full router over stub services so requests traverse
// the real middleware chain.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString == "good-token" {
				return models.Token{SignedString: tokenString, UserID: 7}, nil
			}
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	posts := &mockPostService{
		feedFn: func(_ context.Context) ([]models.Post, error) {
			return []models.Post{{PostID: 1, Published: true}}, nil
		},
		createDraftFn: func(_ context.Context, identity models.Identity, description string) (models.Post, error) {
			if identity.IsAnonymous() {
				return models.Post{}, service.ErrUnauthorized
			}
			return models.Post{PostID: 2, Description: description, AuthorID: identity.UserID}, nil
		},
	}
	users := &mockUserService{
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{{UserID: 1}}, nil
		},
	}

	h := NewHandler(&service.Services{
		AuthService: auth,
		PostService: posts,
		UserService: users,
	}, logger.Nop())

	return h.Init()
}

func TestRoutes_PublicReadsWorkAnonymously(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{"/api/posts", "/api/users"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, target)
	}
}

func TestRoutes_CreatePostWithToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{"description":"via router"}`))
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRoutes_CreatePostWithBadTokenRunsAnonymous(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{"description":"via router"}`))
	req.Header.Set("Authorization", "Bearer forged-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoutes_TraceIDHeaderIsSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestRoutes_IncomingTraceIDIsPropagated(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set(traceIDHeader, "trace-from-upstream")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-from-upstream", rec.Header().Get(traceIDHeader))
}

func TestRoutes_UnknownRouteIs404(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
