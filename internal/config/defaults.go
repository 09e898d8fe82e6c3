package config

import (
	"os"
	"path/filepath"
	"time"
)

// defaultConfig returns the built-in configuration layer. Every field here
// can be overridden by the environment, flags, or the JSON file.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:          "nbserve",
			Version:       defaultAppVersion,
			BaseURL:       "/",
			DefaultURL:    "/tree",
			StaticDir:     filepath.Join("share", "nbserve", "static"),
			ConfigDir:     defaultConfigDir(),
			MathjaxURL:    defaultMathjaxURL,
			MathjaxConfig: defaultMathjaxConfig,
		},
		Content: Content{
			RootDir: workingDir(),
		},
		Server: Server{
			HTTPAddress:    "localhost:8888",
			RequestTimeout: 30 * time.Second,
		},
	}
}

// defaultConfigDir resolves the per-user configuration directory holding
// custom/custom.css and related overrides.
func defaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "nbserve")
	}

	return ".nbserve"
}

func workingDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}

	return dir
}
