package service

import (
	"github.com/gremahtech/agri-auth/internal/adapter"
	"github.com/gremahtech/agri-auth/internal/config"
	"github.com/gremahtech/agri-auth/internal/logger"
	"github.com/gremahtech/agri-auth/internal/store"
)

type Services struct {
	AuthService AuthService
}

func NewServices(repositories *store.Repositories, profileAdapter adapter.ProfileAdapter, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, profileAdapter, cfg.App, cfg.Profile, logger),
	}
}
