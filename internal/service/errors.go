package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the single externally visible sign-in failure.
	// A missing account and a wrong password both map to it so the response
	// never reveals whether an email is registered.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenIsExpiredOrInvalid is the uniform verification failure for
	// session tokens. Expired, forged and malformed tokens are deliberately
	// indistinguishable to the caller.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrUnauthorized is returned by the access gate when the resolved
	// identity may not execute the requested operation.
	ErrUnauthorized = errors.New("operation is not allowed")
)
