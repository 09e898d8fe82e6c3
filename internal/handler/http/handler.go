package http

import (
	"github.com/jovian-labs/nbserve/internal/config"
	"github.com/jovian-labs/nbserve/internal/logger"
	"github.com/jovian-labs/nbserve/internal/renderer"
	"github.com/jovian-labs/nbserve/internal/service"
)

type Handler struct {
	services *service.Services
	renderer renderer.Renderer

	baseURL            string
	defaultURL         string
	token              string
	terminalsAvailable bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, renderer renderer.Renderer, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		renderer:           renderer,
		baseURL:            cfg.App.BaseURL,
		defaultURL:         cfg.App.DefaultURL,
		token:              cfg.App.Token,
		terminalsAvailable: cfg.Server.TerminalsAvailable,
		logger:             logger,
	}
}
