// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The nbserve Authors

package pageconfig

import (
	"path/filepath"
	"strings"

	"github.com/jovian-labs/nbserve/internal/config"
	"github.com/jovian-labs/nbserve/internal/logger"
	"github.com/jovian-labs/nbserve/internal/utils"
)

// Hook is an optional transform applied to the fully assembled page config as
// the final build step. It must be pure with respect to its inputs other than
// the page config it returns.
type Hook func(req RequestContext, cfg PageConfig) PageConfig

// RequestContext carries the per-request values the builder seeds the page
// config from. In the current server these come from the startup
// configuration snapshot, but keeping them on the request keeps the builder
// deterministic and directly testable.
type RequestContext struct {
	// BaseURL is the normalized URL prefix ("/", "/lab/", …).
	BaseURL string

	// Token is the opaque access token echoed back to the browser.
	Token string

	// TerminalsAvailable reports whether a terminal backend is wired in.
	TerminalsAvailable bool

	// ServerRoot is the cleaned filesystem root the contents layer serves.
	ServerRoot string

	// PreferredDir is the directory the session should open to.
	PreferredDir string
}

// Builder assembles a fresh [PageConfig] per request from the startup
// application state, the enumerated trait list, the configured extension scan
// roots, and an optional final hook.
//
// Build is referentially deterministic for fixed inputs and fixed on-disk
// fragments; its only side effect is an error-level log entry when the
// preferred-path computation fails.
type Builder struct {
	app            config.App
	traits         []Trait
	extensionPaths []string
	hook           Hook
	logger         *logger.Logger
}

// NewBuilder constructs a Builder from the application configuration.
// hook may be nil.
func NewBuilder(cfg *config.StructuredConfig, hook Hook, logger *logger.Logger) *Builder {
	return &Builder{
		app:            cfg.App,
		traits:         TraitsFromApp(cfg.App),
		extensionPaths: cfg.Extensions.Paths,
		hook:           hook,
		logger:         logger,
	}
}

// Build assembles the page config for one request.
//
// Layer order, lowest to highest precedence: the static/runtime seed, the
// computed preferredPath, resolved MathJax values, the config directory, the
// enumerated traits with their synthesized full-URL variants, every
// extension-contributed fragment in discovery order, and the optional hook.
func (b *Builder) Build(req RequestContext) (PageConfig, error) {
	cfg := PageConfig{
		"appVersion":         b.app.Version,
		"baseUrl":            req.BaseURL,
		"terminalsAvailable": req.TerminalsAvailable,
		"token":              req.Token,
		"fullStaticUrl":      utils.URLJoin(req.BaseURL, "static", b.app.Name),
		"frontendUrl":        utils.URLJoin(req.BaseURL, "/"),
		"exposeAppInBrowser": b.app.ExposeAppInBrowser,
	}

	cfg["preferredPath"] = b.preferredPath(req.ServerRoot, req.PreferredDir)

	mathjaxURL := b.app.MathjaxURL
	if !utils.URLIsAbsolute(mathjaxURL) && !strings.HasPrefix(mathjaxURL, req.BaseURL) {
		mathjaxURL = utils.URLJoin(req.BaseURL, mathjaxURL)
	}

	cfg["mathjaxConfig"] = b.app.MathjaxConfig
	cfg["fullMathjaxUrl"] = mathjaxURL
	cfg["configDir"] = b.app.ConfigDir

	for _, trait := range b.traits {
		cfg[utils.CamelCase(trait.Name)] = trait.Value
	}

	for _, trait := range b.traits {
		if !trait.IsURL {
			continue
		}

		fullName := utils.CamelCase("full_" + trait.Name)
		fullURL, _ := trait.Value.(string)
		if !utils.URLIsAbsolute(fullURL) {
			fullURL = utils.URLJoin(req.BaseURL, fullURL)
		}
		cfg[fullName] = fullURL
	}

	fragments, err := DiscoverFragments(b.extensionPaths)
	if err != nil {
		return nil, err
	}
	for _, fragment := range fragments {
		if err := Update(cfg, fragment); err != nil {
			return nil, err
		}
	}

	if b.hook != nil {
		cfg = b.hook(req, cfg)
	}

	return cfg, nil
}

// preferredPath computes the "/"-prefixed path of the preferred directory
// relative to the server root; exactly "/" when they are equal. A failed
// relative-path computation is logged and degrades to "/" rather than
// propagating: a broken preferred directory must not take the page down.
func (b *Builder) preferredPath(serverRoot, preferredDir string) string {
	root := filepath.Clean(serverRoot)
	preferred := filepath.Clean(preferredDir)

	if preferred == root {
		return "/"
	}

	rel, err := filepath.Rel(root, preferred)
	if err != nil {
		b.logger.Error().Err(err).
			Str("server_root", root).
			Str("preferred_dir", preferred).
			Msg("error determining preferred path")
		return "/"
	}

	return "/" + filepath.ToSlash(rel)
}
