package adapter

import "errors"

// Sentinel errors mapped from server HTTP status codes. Callers match against
// them with [errors.Is]; the wrapped message carries the server's body text.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
