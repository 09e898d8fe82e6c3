// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The nbserve Authors

package contents

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jovian-labs/nbserve/internal/config"
	"github.com/jovian-labs/nbserve/internal/logger"
	"github.com/jovian-labs/nbserve/models"
)

const notebookExtension = ".ipynb"

type fsContentsService struct {
	rootDir     string
	allowHidden bool

	logger *logger.Logger
}

// NewFSContentsService builds a ContentsService backed by the local
// filesystem rooted at cfg.RootDir.
func NewFSContentsService(cfg config.Content, logger *logger.Logger) (ContentsService, error) {
	info, err := os.Stat(cfg.RootDir)
	if err != nil {
		return nil, fmt.Errorf("content root %s: %w", cfg.RootDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content root %s is not a directory", cfg.RootDir)
	}

	return &fsContentsService{
		rootDir:     cfg.RootDir,
		allowHidden: cfg.AllowHidden,
		logger:      logger,
	}, nil
}

func (f *fsContentsService) DirExists(ctx context.Context, contentPath string) bool {
	osPath, err := f.resolve(contentPath)
	if err != nil {
		return false
	}

	info, err := os.Stat(osPath)
	return err == nil && info.IsDir()
}

func (f *fsContentsService) FileExists(ctx context.Context, contentPath string) bool {
	osPath, err := f.resolve(contentPath)
	if err != nil {
		return false
	}

	info, err := os.Stat(osPath)
	return err == nil && info.Mode().IsRegular()
}

func (f *fsContentsService) IsHidden(ctx context.Context, contentPath string) bool {
	for _, segment := range strings.Split(contentPath, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}

	return false
}

func (f *fsContentsService) AllowHidden() bool {
	return f.allowHidden
}

func (f *fsContentsService) Get(ctx context.Context, contentPath string, withContent bool) (models.Entry, error) {
	osPath, err := f.resolve(contentPath)
	if err != nil {
		return models.Entry{}, err
	}

	info, err := os.Stat(osPath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Entry{}, ErrEntryNotFound
		}
		return models.Entry{}, fmt.Errorf("stat %s: %w", contentPath, err)
	}

	entry := models.Entry{
		Path: contentPath,
		Type: entryType(info.Name(), info.IsDir()),
	}
	if contentPath != "" {
		entry.Name = path.Base(contentPath)
	}
	if entry.Type == models.EntryTypeDirectory || !withContent {
		return entry, nil
	}

	content, err := os.ReadFile(osPath)
	if err != nil {
		return models.Entry{}, fmt.Errorf("read %s: %w", contentPath, err)
	}
	entry.Content = content

	return entry, nil
}

// resolve maps an application-relative content path onto a filesystem path
// under the root. Dot-segments are rejected before cleaning so a traversal
// attempt cannot be cleaned away into a different, valid request.
func (f *fsContentsService) resolve(contentPath string) (string, error) {
	if contentPath == "" {
		return f.rootDir, nil
	}
	if strings.HasPrefix(contentPath, "/") {
		return "", ErrInvalidPath
	}

	for _, segment := range strings.Split(contentPath, "/") {
		if segment == "." || segment == ".." {
			return "", ErrInvalidPath
		}
	}

	clean := path.Clean(contentPath)
	osPath := filepath.FromSlash(clean)
	if filepath.IsAbs(osPath) || filepath.VolumeName(osPath) != "" {
		return "", ErrInvalidPath
	}

	return filepath.Join(f.rootDir, osPath), nil
}

func entryType(name string, isDir bool) string {
	switch {
	case isDir:
		return models.EntryTypeDirectory
	case filepath.Ext(name) == notebookExtension:
		return models.EntryTypeNotebook
	default:
		return models.EntryTypeFile
	}
}
