package http

import "github.com/MKhiriev/ortoo/models"

// registerRequest is the body of POST /api/auth/register.
type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// loginRequest is the body of POST /api/auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// createPostRequest is the body of POST /api/posts.
//
// AuthorID is accepted for wire compatibility but deliberately ignored: the
// author of a new post is always the authenticated caller.
type createPostRequest struct {
	Description string `json:"description"`
	AuthorID    int64  `json:"author_id,omitempty"`
}

// authResponse is returned by both register and login.
type authResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}
