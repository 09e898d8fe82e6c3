package service

import (
	"context"
	"io"

	"github.com/jovian-labs/nbserve/internal/pageconfig"
	"github.com/jovian-labs/nbserve/models"
)

// TreeService decides how a requested tree path is answered: as a directory
// listing, as a redirect to the matching viewer, or not at all.
type TreeService interface {
	Classify(ctx context.Context, path string) (models.RoutingDecision, error)
}

// AssetsService resolves operator-supplied static assets.
type AssetsService interface {
	// CustomCSS opens the custom stylesheet. The caller owns the returned
	// reader and must close it.
	CustomCSS(ctx context.Context) (io.ReadCloser, error)
}

// PageConfigService assembles the per-request page configuration handed to
// the browser.
type PageConfigService interface {
	PageConfig(ctx context.Context) (pageconfig.PageConfig, error)

	// TreePageConfig additionally pins the listing path under "treePath",
	// also when the path is empty (the root listing).
	TreePageConfig(ctx context.Context, treePath string) (pageconfig.PageConfig, error)
}
