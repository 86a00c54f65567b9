package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned by HashPassword when the plaintext is empty.
// Empty credentials are rejected before any hashing work is done.
var ErrEmptyPassword = errors.New("empty password")

// HashPassword computes a salted bcrypt hash of the given plaintext with the
// given cost factor.
//
// bcrypt embeds a fresh random salt into every hash, so two calls with the
// same plaintext produce different stored values that both verify correctly.
// The cost factor is configuration: raising it makes offline brute force
// proportionally more expensive.
func HashPassword(plaintext string, cost int) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// VerifyPassword reports whether plaintext matches the given bcrypt hash.
// A mismatch is not an error condition: the function returns false and never
// panics, regardless of how malformed the stored hash is.
func VerifyPassword(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
