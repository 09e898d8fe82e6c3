package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jovian-labs/nbserve/internal/config"
	"github.com/jovian-labs/nbserve/internal/logger"
	"github.com/jovian-labs/nbserve/internal/pageconfig"
)

func newTestPageConfigService(t *testing.T, hook pageconfig.Hook) PageConfigService {
	t.Helper()

	root := t.TempDir()
	cfg := &config.StructuredConfig{
		App: config.App{
			Name:          "nbserve",
			Version:       "0.4.2",
			BaseURL:       "/",
			Token:         "sekrit",
			DefaultURL:    "/tree",
			StaticDir:     "/usr/local/share/nbserve/static",
			ConfigDir:     t.TempDir(),
			MathjaxURL:    "https://cdn.example.org/mathjax/MathJax.js",
			MathjaxConfig: "TeX-AMS_HTML-full,Safe",
		},
		Content: config.Content{RootDir: root, PreferredDir: root},
	}

	return NewPageConfigService(cfg, hook, logger.Nop())
}

func TestPageConfigService_PageConfigOmitsTreePath(t *testing.T) {
	svc := newTestPageConfigService(t, nil)

	cfg, err := svc.PageConfig(context.Background())
	require.NoError(t, err)

	assert.NotContains(t, cfg, "treePath")
	assert.Equal(t, "nbserve", cfg["appName"])
	assert.Equal(t, "sekrit", cfg["token"])
}

func TestPageConfigService_TreePageConfigPinsTreePath(t *testing.T) {
	svc := newTestPageConfigService(t, nil)
	ctx := context.Background()

	cfg, err := svc.TreePageConfig(ctx, "project/notes")
	require.NoError(t, err)
	assert.Equal(t, "project/notes", cfg["treePath"])

	rootCfg, err := svc.TreePageConfig(ctx, "")
	require.NoError(t, err)
	require.Contains(t, rootCfg, "treePath")
	assert.Equal(t, "", rootCfg["treePath"])
}

func TestPageConfigService_HookStillApplied(t *testing.T) {
	hook := func(req pageconfig.RequestContext, cfg pageconfig.PageConfig) pageconfig.PageConfig {
		cfg["stamped"] = true
		return cfg
	}
	svc := newTestPageConfigService(t, hook)

	cfg, err := svc.PageConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, true, cfg["stamped"])
}
