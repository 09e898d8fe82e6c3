// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The nbserve Authors

package service

import (
	"context"
	"strings"

	"github.com/jovian-labs/nbserve/internal/config"
	"github.com/jovian-labs/nbserve/internal/contents"
	"github.com/jovian-labs/nbserve/internal/logger"
	"github.com/jovian-labs/nbserve/internal/utils"
	"github.com/jovian-labs/nbserve/models"
)

type treeService struct {
	contents contents.ContentsService
	baseURL  string

	logger *logger.Logger
}

func NewTreeService(contentsService contents.ContentsService, cfg config.App, logger *logger.Logger) TreeService {
	return &treeService{
		contents: contentsService,
		baseURL:  cfg.BaseURL,
		logger:   logger,
	}
}

// Classify routes a tree path. Directories are listed unless hidden,
// existing files redirect to the viewer matching their type, everything else
// is not found. Hidden directories are refused silently towards the client:
// the decision is indistinguishable from a missing path.
func (t *treeService) Classify(ctx context.Context, rawPath string) (models.RoutingDecision, error) {
	path := strings.Trim(rawPath, "/")

	if t.contents.DirExists(ctx, path) {
		if t.contents.IsHidden(ctx, path) && !t.contents.AllowHidden() {
			t.logger.Info().Str("path", path).Msg("refusing to serve hidden directory, via 404 error")
			return models.NotFound(), nil
		}

		return models.Listing(path), nil
	}

	if t.contents.FileExists(ctx, path) {
		// Type resolution only; file bytes stay on disk.
		entry, err := t.contents.Get(ctx, path, false)
		if err != nil {
			return models.NotFound(), err
		}

		kind := models.RedirectFile
		viewer := "files"
		if entry.Type == models.EntryTypeNotebook {
			kind = models.RedirectNotebook
			viewer = "notebooks"
		}

		target := utils.URLJoin(t.baseURL, viewer, utils.URLEscapePath(path))
		t.logger.Debug().Str("from", rawPath).Str("to", target).Msg("redirecting request to viewer")

		return models.Redirect(kind, target), nil
	}

	return models.NotFound(), nil
}
