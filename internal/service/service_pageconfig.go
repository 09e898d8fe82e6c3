package service

import (
	"context"

	"github.com/jovian-labs/nbserve/internal/config"
	"github.com/jovian-labs/nbserve/internal/logger"
	"github.com/jovian-labs/nbserve/internal/pageconfig"
)

type pageConfigService struct {
	builder *pageconfig.Builder
	request pageconfig.RequestContext

	logger *logger.Logger
}

// NewPageConfigService wires the page config builder to the startup
// configuration snapshot. hook may be nil.
func NewPageConfigService(cfg *config.StructuredConfig, hook pageconfig.Hook, logger *logger.Logger) PageConfigService {
	return &pageConfigService{
		builder: pageconfig.NewBuilder(cfg, hook, logger),
		request: pageconfig.RequestContext{
			BaseURL:            cfg.App.BaseURL,
			Token:              cfg.App.Token,
			TerminalsAvailable: cfg.Server.TerminalsAvailable,
			ServerRoot:         cfg.Content.RootDir,
			PreferredDir:       cfg.Content.PreferredDir,
		},
		logger: logger,
	}
}

func (p *pageConfigService) PageConfig(ctx context.Context) (pageconfig.PageConfig, error) {
	return p.builder.Build(p.request)
}

func (p *pageConfigService) TreePageConfig(ctx context.Context, treePath string) (pageconfig.PageConfig, error) {
	cfg, err := p.builder.Build(p.request)
	if err != nil {
		return nil, err
	}
	cfg["treePath"] = treePath

	return cfg, nil
}
