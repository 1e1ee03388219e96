package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt.
//
// A fresh random salt is generated on every call and embedded in the
// resulting hash, so no separate salt storage is needed. The work factor
// is bcrypt.DefaultCost, which keeps offline brute force of a stolen hash
// table expensive.
//
// Parameters:
//
//	password - the plaintext password to hash
//
// Returns:
//
//	string - the bcrypt hash in its standard encoded form
//	error  - non-nil if hashing fails (e.g. the password exceeds 72 bytes)
//
// Example usage:
//
//	hash, err := utils.HashPassword("secret123")
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error occurred during password hashing: %w", err)
	}

	return string(hashedBytes), nil
}

// VerifyPassword reports whether the plaintext password matches the given
// bcrypt hash.
//
// The comparison is performed by bcrypt.CompareHashAndPassword, which is
// constant-time with respect to matching vs. non-matching passwords.
// The plaintext is never retained.
//
// Parameters:
//
//	password - the plaintext password presented at login
//	hash     - the stored bcrypt hash to verify against
//
// Returns:
//
//	bool - true only when the password matches the hash
//
// Example usage:
//
//	if !utils.VerifyPassword(req.Password, user.PasswordHash) {
//	    // reject login
//	}
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
