package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set embedded in every issued JWT.
//
// It extends [jwt.RegisteredClaims] (sub, exp, iat, iss as defined by
// RFC 7519) with the application-specific "role" claim carrying the flat
// authorization role of the subject account.
type TokenClaims struct {
	// Role is the authorization role of the account the token was
	// issued for. Mirrors [User.Role] at issuance time.
	Role string `json:"role"`

	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [TokenClaims] for claim access (subject, role, expiry).
//
// SignedString holds the compact serialized form of the token (header.payload.signature)
// ready to be transmitted in an "Authorization: Bearer" header.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// TokenClaims provides access to the claim set of the token
	// (subject, role, expiry, issued-at, issuer).
	TokenClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// Username is the subject extracted from the "sub" claim.
	// Excluded from JSON serialization; it is an internal server-side cache.
	Username string `json:"-"`
}

// GetUsername returns the account username carried in the token's
// "sub" (subject) claim. Returns an error if the subject claim is missing.
func (t *Token) GetUsername() (string, error) {
	return t.TokenClaims.GetSubject()
}

// GetRole returns the authorization role carried in the token's
// "role" claim.
func (t *Token) GetRole() string {
	return t.TokenClaims.Role
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
