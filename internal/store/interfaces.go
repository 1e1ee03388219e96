package store

import (
	"context"

	"github.com/gremahtech/agri-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the narrow persistence contract required by the
// authentication core. Implementations must enforce username and email
// uniqueness atomically (e.g. via unique constraints), since two concurrent
// registrations with the same username must not both succeed.
type UserRepository interface {
	// CreateUser persists a new account and returns it with the
	// server-assigned UserID and CreatedAt. Uniqueness violations are
	// reported as [ErrUsernameAlreadyExists] or [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks an account up by its username.
	// A missing account is reported as [ErrNoUserWasFound], which callers
	// distinguish from infrastructure failures via errors.Is.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByEmail looks an account up by its email address.
	// A missing account is reported as [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// GetAllUsers returns every persisted account for administrative
	// enumeration.
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// DeleteUserByID removes the account with the given identifier.
	// Deleting a non-existent id is reported as [ErrNoUserWasFound];
	// callers that treat deletion as idempotent may ignore that signal.
	DeleteUserByID(ctx context.Context, userID int64) error
}
