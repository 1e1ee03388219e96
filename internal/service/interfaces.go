package service

import (
	"context"

	"github.com/gremahtech/agri-auth/models"
)

// AuthService is the core authentication contract: account lifecycle,
// credential verification and JWT issuance/validation.
type AuthService interface {
	// RegisterUser creates a new account from the registration payload.
	// The returned user never carries the password hash.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the supplied credentials and issues a signed JWT.
	// Every credential failure is reported as ErrInvalidCredentials
	// regardless of whether the account exists.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// ValidateToken reports whether the given compact JWT is currently
	// valid. It never returns an error: any failure means false.
	ValidateToken(ctx context.Context, tokenString string) bool

	// ParseToken validates the given compact JWT and returns its decoded
	// form, or ErrTokenIsExpiredOrInvalid on any validation failure.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// GetAllUsers returns every registered account for administrative
	// enumeration.
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// DeleteUser removes the account with the given identifier and
	// best-effort cascades the removal to the farmer profile service.
	// Deleting an unknown identifier is not an error.
	DeleteUser(ctx context.Context, userID int64) error
}
