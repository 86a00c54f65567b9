package config

import "errors"

var (
	// ErrNoTokenSignKey is returned when no source provided a token signing
	// key. The server cannot issue or verify session tokens without it, and
	// deriving one from anything else would defeat the point of the secret.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")

	// ErrInvalidBcryptCost is returned when a negative bcrypt work factor is
	// configured. Zero means "use the library default".
	ErrInvalidBcryptCost = errors.New("bcrypt cost must not be negative")
)
