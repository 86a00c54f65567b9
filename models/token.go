package models

import "time"

// Token is a signed, time-bounded proof of identity issued at sign-in or
// registration. Validity is purely a function of the signature and the expiry
// timestamps; tokens are never stored server-side and cannot be revoked before
// they expire.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature), ready to be transmitted
	// in the "Authorization" header.
	SignedString string `json:"token"`

	// UserID is the account the token was issued for, extracted from the
	// "sub" claim.
	UserID int64 `json:"-"`

	// IssuedAt is the "iat" claim of the token.
	IssuedAt time.Time `json:"-"`

	// ExpiresAt is the "exp" claim of the token. After this instant the token
	// no longer verifies.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
