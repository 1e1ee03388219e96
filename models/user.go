package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the account,
	// assigned by the persistence layer on creation.
	UserID int64 `json:"id"`

	// Username is the unique account login identifier.
	// Comparison is case-sensitive.
	Username string `json:"username"`

	// Email is the unique contact address of the account.
	// Format validation is performed upstream.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the account password.
	// This value MUST be a hash, never plaintext, and is never
	// serialized to JSON.
	PasswordHash string `json:"-"`

	// Role is the flat authorization role of the account
	// (e.g. "FARMER", "ADMIN"). Defaults to RoleFarmer when the
	// registration request does not specify one.
	Role string `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	// Set once by the persistence layer, immutable afterwards.
	CreatedAt time.Time `json:"createdAt"`
}

// RoleFarmer is the default role assigned to accounts registered without an
// explicit role. Farmer accounts are the only ones propagated to the farmer
// profile service.
const RoleFarmer = "FARMER"

// RoleAdmin grants access to the administrative account endpoints.
const RoleAdmin = "ADMIN"

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
