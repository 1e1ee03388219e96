package handler

import (
	"github.com/gremahtech/agri-auth/internal/config"
	"github.com/gremahtech/agri-auth/internal/handler/http"
	"github.com/gremahtech/agri-auth/internal/logger"
	"github.com/gremahtech/agri-auth/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
