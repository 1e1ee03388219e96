package store

import "github.com/gremahtech/agri-auth/internal/logger"

// Repositories aggregates every repository implementation backed by the
// shared database connection.
type Repositories struct {
	UserRepository UserRepository
}

// NewRepositories wires all repositories to the given database connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
	}
}
