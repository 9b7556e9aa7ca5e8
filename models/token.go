package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a session JWT with convenience accessors.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
// The subject claim carries the account email.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation stored in the session
	// cookie.
	SignedString string `json:"-"`

	// Email is a cached copy of the "sub" claim.
	Email string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
