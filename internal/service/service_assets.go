package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/jovian-labs/nbserve/internal/config"
	"github.com/jovian-labs/nbserve/internal/logger"
)

// staticPrefixPattern captures everything up to the first "static" in the
// configured static directory; the capture is the root the custom asset
// directory hangs off when the config directory carries no stylesheet.
var staticPrefixPattern = regexp.MustCompile(`^(.*?)static`)

type assetsService struct {
	configDir string
	staticDir string

	logger *logger.Logger
}

func NewAssetsService(cfg config.App, logger *logger.Logger) AssetsService {
	return &assetsService{
		configDir: cfg.ConfigDir,
		staticDir: cfg.StaticDir,
		logger:    logger,
	}
}

// CustomCSS opens the operator stylesheet, preferring the config directory
// and falling back to the custom directory next to the static assets. A
// stylesheet that cannot be opened is a deployment defect, not a missing
// page, so the caller gets ErrCustomCSSNotFound instead of a not-found.
func (a *assetsService) CustomCSS(ctx context.Context) (io.ReadCloser, error) {
	candidates := []string{filepath.Join(a.configDir, "custom", "custom.css")}
	if match := staticPrefixPattern.FindStringSubmatch(a.staticDir); match != nil {
		candidates = append(candidates, filepath.Join(match[1], "custom", "custom.css"))
	}

	for _, candidate := range candidates {
		reader, err := openStylesheet(candidate)
		if err != nil {
			a.logger.Debug().Str("path", candidate).Err(err).Msg("custom stylesheet candidate not readable")
			continue
		}

		return reader, nil
	}

	a.logger.Error().Strs("candidates", candidates).Msg("no readable custom stylesheet")

	return nil, ErrCustomCSSNotFound
}

func openStylesheet(path string) (io.ReadCloser, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, os.ErrInvalid
	}

	return os.Open(path)
}
