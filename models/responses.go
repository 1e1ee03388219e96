package models

// AuthResponse is returned by a successful login. It carries the issued
// bearer token together with its lifetime and the authenticated identity.
type AuthResponse struct {
	// Token is the compact signed JWT to be presented in the
	// "Authorization: Bearer" header of subsequent requests.
	Token string `json:"token"`

	// ExpiresIn is the token lifetime in milliseconds
	// (3600000 for the default one-hour lifetime).
	ExpiresIn int64 `json:"expiresIn"`

	// Username is the subject the token was issued for.
	Username string `json:"username"`

	// Role is the authorization role embedded in the token claims.
	Role string `json:"role"`
}

// ValidateResponse is returned by the token validation endpoint.
// Valid is false for any validation failure without distinguishing
// the reason (signature, structure, or expiry).
type ValidateResponse struct {
	Valid bool `json:"valid"`
}
