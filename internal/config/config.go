// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The nbserve Authors

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// defaultAppVersion is reported to the browser application as appVersion
// unless overridden by configuration.
const defaultAppVersion = "0.4.2"

// defaultMathjaxURL and defaultMathjaxConfig mirror the CDN defaults the
// browser application falls back to when no local MathJax bundle is
// configured.
const (
	defaultMathjaxURL    = "https://cdnjs.cloudflare.com/ajax/libs/mathjax/2.7.7/MathJax.js"
	defaultMathjaxConfig = "TeX-AMS_HTML-full,Safe"
)

// StructuredConfig is the top-level configuration container for the nbserve
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings delivered to the browser
	// application through the page config: name, version, base URL, access
	// token, MathJax location, and feature flags.
	App App `envPrefix:"APP_"`

	// Content holds settings for the contents layer: the served root
	// directory, the session's preferred directory, and hidden-path policy.
	Content Content `envPrefix:"CONTENT_"`

	// Extensions holds the ordered list of directories scanned for
	// extension-contributed page-config fragments.
	Extensions Extensions `envPrefix:"EXTENSIONS_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the environment
	// and flag layers. Populated via the CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values surfaced to the browser
// application through the page config.
type App struct {
	// Name is the short application name, also used as the static-URL
	// mount segment (baseUrl/static/<name>).
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the application version string reported as appVersion.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// BaseURL is the URL prefix the application is served under. Always
	// normalized to carry both a leading and a trailing slash.
	// Env: APP_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Token is the opaque access token required on every page request.
	// When left empty a random token is generated at startup.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// DefaultURL is the application-relative URL "/" redirects to.
	// Env: APP_DEFAULT_URL
	DefaultURL string `env:"DEFAULT_URL"`

	// StaticDir is the filesystem directory holding the bundled static
	// assets. Its textual shape also drives the custom-stylesheet fallback
	// search.
	// Env: APP_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`

	// ConfigDir is the user configuration directory; the primary custom
	// stylesheet candidate lives at <ConfigDir>/custom/custom.css.
	// Env: APP_CONFIG_DIR
	ConfigDir string `env:"CONFIG_DIR"`

	// MathjaxURL is the MathJax script location; joined onto BaseURL when
	// relative.
	// Env: APP_MATHJAX_URL
	MathjaxURL string `env:"MATHJAX_URL"`

	// MathjaxConfig is the MathJax configuration profile string.
	// Env: APP_MATHJAX_CONFIG
	MathjaxConfig string `env:"MATHJAX_CONFIG"`

	// ExposeAppInBrowser exposes the global app instance to the browser via
	// window.nbserveapp when true.
	// Env: APP_EXPOSE_APP_IN_BROWSER
	ExposeAppInBrowser bool `env:"EXPOSE_APP_IN_BROWSER"`

	// NoCustomCSS disables loading of the custom stylesheet. Stored in the
	// negative so the zero value keeps the stylesheet enabled.
	// Env: APP_NO_CUSTOM_CSS
	NoCustomCSS bool `env:"NO_CUSTOM_CSS"`
}

// Content holds settings for the contents layer.
type Content struct {
	// RootDir is the server root directory all request paths are resolved
	// against.
	// Env: CONTENT_ROOT_DIR
	RootDir string `env:"ROOT_DIR"`

	// PreferredDir is the directory a new session opens to. Falls back to
	// RootDir when empty.
	// Env: CONTENT_PREFERRED_DIR
	PreferredDir string `env:"PREFERRED_DIR"`

	// AllowHidden permits serving dot-prefixed directories and files.
	// Env: CONTENT_ALLOW_HIDDEN
	AllowHidden bool `env:"ALLOW_HIDDEN"`
}

// Extensions holds the ordered extension scan roots.
type Extensions struct {
	// Paths are the directories scanned, in order, for page_config.json
	// fragments contributed by installed extensions.
	// Env: EXTENSIONS_PATHS (colon-separated)
	Paths []string `env:"PATHS" envSeparator:":"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "localhost:8888").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TerminalsAvailable reports whether a terminal backend is wired into
	// this deployment; surfaced to the browser as terminalsAvailable.
	// Env: SERVER_TERMINALS_AVAILABLE
	TerminalsAvailable bool `env:"TERMINALS_AVAILABLE"`
}

// GetStructuredConfig loads, merges, normalizes, and validates the
// application configuration from all available sources in the following
// priority order (earlier sources win for fields they set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// normalize fills derived values after all sources are merged: base URL
// shape, generated token, directory fallbacks, and path cleaning.
func (cfg *StructuredConfig) normalize() {
	if !strings.HasPrefix(cfg.App.BaseURL, "/") {
		cfg.App.BaseURL = "/" + cfg.App.BaseURL
	}
	if !strings.HasSuffix(cfg.App.BaseURL, "/") {
		cfg.App.BaseURL += "/"
	}

	// An unset token would leave every page unauthenticated; generate one
	// instead and print it in the startup URL.
	if cfg.App.Token == "" {
		cfg.App.Token = uuid.NewString()
	}

	cfg.Content.RootDir = cleanDir(cfg.Content.RootDir)
	if cfg.Content.PreferredDir == "" {
		cfg.Content.PreferredDir = cfg.Content.RootDir
	}
	cfg.Content.PreferredDir = cleanDir(cfg.Content.PreferredDir)
}

// cleanDir expands a leading "~" to the user's home directory and cleans the
// resulting path.
func cleanDir(dir string) string {
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, strings.TrimPrefix(dir[1:], "/"))
		}
	}

	return filepath.Clean(dir)
}
