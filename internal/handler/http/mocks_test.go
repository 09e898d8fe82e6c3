package http

import (
	"context"
	"io"
	"testing"

	"github.com/jovian-labs/nbserve/internal/logger"
	"github.com/jovian-labs/nbserve/internal/pageconfig"
	"github.com/jovian-labs/nbserve/internal/service"
	"github.com/jovian-labs/nbserve/models"
)

// ─────────────────────────────────────────────
// Mocks: service layer
// ─────────────────────────────────────────────

type mockTreeSvc struct {
	classifyFn func(ctx context.Context, path string) (models.RoutingDecision, error)
}

func (m *mockTreeSvc) Classify(ctx context.Context, path string) (models.RoutingDecision, error) {
	if m.classifyFn != nil {
		return m.classifyFn(ctx, path)
	}
	return models.NotFound(), nil
}

type mockAssetsSvc struct {
	customCSSFn func(ctx context.Context) (io.ReadCloser, error)
}

func (m *mockAssetsSvc) CustomCSS(ctx context.Context) (io.ReadCloser, error) {
	if m.customCSSFn != nil {
		return m.customCSSFn(ctx)
	}
	return nil, service.ErrCustomCSSNotFound
}

type mockPageConfigSvc struct {
	pageConfigFn     func(ctx context.Context) (pageconfig.PageConfig, error)
	treePageConfigFn func(ctx context.Context, treePath string) (pageconfig.PageConfig, error)
}

func (m *mockPageConfigSvc) PageConfig(ctx context.Context) (pageconfig.PageConfig, error) {
	if m.pageConfigFn != nil {
		return m.pageConfigFn(ctx)
	}
	return pageconfig.PageConfig{"baseUrl": "/"}, nil
}

func (m *mockPageConfigSvc) TreePageConfig(ctx context.Context, treePath string) (pageconfig.PageConfig, error) {
	if m.treePageConfigFn != nil {
		return m.treePageConfigFn(ctx, treePath)
	}
	return pageconfig.PageConfig{"baseUrl": "/", "treePath": treePath}, nil
}

// mockRenderer records the last rendered template name.
type mockRenderer struct {
	renderFn     func(name string, cfg pageconfig.PageConfig) ([]byte, error)
	lastTemplate string
}

func (m *mockRenderer) Render(name string, cfg pageconfig.PageConfig) ([]byte, error) {
	m.lastTemplate = name
	if m.renderFn != nil {
		return m.renderFn(name, cfg)
	}
	return []byte("<!DOCTYPE html><title>" + name + "</title>"), nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// listingTreeSvc classifies every path as a servable directory, for tests
// that expect an authenticated GET /tree to pass through to a 200 listing.
func listingTreeSvc() *mockTreeSvc {
	return &mockTreeSvc{
		classifyFn: func(ctx context.Context, path string) (models.RoutingDecision, error) {
			return models.Listing(path), nil
		},
	}
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return &Handler{
		services: &service.Services{
			TreeService:       &mockTreeSvc{},
			AssetsService:     &mockAssetsSvc{},
			PageConfigService: &mockPageConfigSvc{},
		},
		renderer:           &mockRenderer{},
		baseURL:            "/",
		defaultURL:         "/tree",
		terminalsAvailable: true,
		logger:             logger.Nop(),
	}
}
