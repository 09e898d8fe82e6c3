package service

import (
	"github.com/jovian-labs/nbserve/internal/config"
	"github.com/jovian-labs/nbserve/internal/contents"
	"github.com/jovian-labs/nbserve/internal/logger"
)

type Services struct {
	TreeService       TreeService
	AssetsService     AssetsService
	PageConfigService PageConfigService
}

func NewServices(contentsService contents.ContentsService, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		TreeService:       NewTreeService(contentsService, cfg.App, logger),
		AssetsService:     NewAssetsService(cfg.App, logger),
		PageConfigService: NewPageConfigService(cfg, nil, logger),
	}
}
