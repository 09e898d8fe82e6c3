// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The nbserve Authors

package config

import (
	"os"
	"strings"
)

// validate checks that the final merged and normalized [StructuredConfig]
// satisfies all application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Name == "" {
		return ErrInvalidAppConfigs
	}
	if !strings.HasPrefix(cfg.App.BaseURL, "/") || !strings.HasSuffix(cfg.App.BaseURL, "/") {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	info, err := os.Stat(cfg.Content.RootDir)
	if err != nil || !info.IsDir() {
		return ErrInvalidContentConfigs
	}

	return nil
}
