package models

// RegisterRequest is the inbound payload of the registration endpoint.
//
// Username, Email and Password are required. Role is optional and defaults
// to [RoleFarmer]. FirstName, LastName and Phone are optional, but when all
// three are present on a farmer registration they trigger the best-effort
// farmer profile propagation.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// HasProfileData reports whether the request carries the complete set of
// contact fields required by the farmer profile service.
func (r RegisterRequest) HasProfileData() bool {
	return r.FirstName != "" && r.LastName != "" && r.Phone != ""
}

// LoginRequest is the inbound payload of the login endpoint.
// Password is plaintext and is discarded immediately after verification.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ValidateRequest is the inbound payload of the token validation endpoint.
type ValidateRequest struct {
	Token string `json:"token"`
}
