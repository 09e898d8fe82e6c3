// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The nbserve Authors

package renderer

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/jovian-labs/nbserve/internal/pageconfig"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer turns a page template plus its page config into a servable HTML
// document. name is the template file name, e.g. "tree.html".
type Renderer interface {
	Render(name string, cfg pageconfig.PageConfig) ([]byte, error)
}

type htmlRenderer struct {
	templates *template.Template
}

func NewHTMLRenderer() (Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}

	return &htmlRenderer{templates: templates}, nil
}

type pageData struct {
	Title   string
	BaseURL string

	// Config is the serialized page config embedded as the
	// application/json script block the frontend boots from.
	Config template.JS
}

func (r *htmlRenderer) Render(name string, cfg pageconfig.PageConfig) ([]byte, error) {
	serialized, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("serialize page config: %w", err)
	}

	data := pageData{
		Title:   pageTitle(cfg),
		BaseURL: configString(cfg, "baseUrl", "/"),
		Config:  template.JS(serialized),
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

func pageTitle(cfg pageconfig.PageConfig) string {
	return configString(cfg, "appName", "nbserve")
}

func configString(cfg pageconfig.PageConfig, key, fallback string) string {
	if value, ok := cfg[key].(string); ok && value != "" {
		return value
	}

	return fallback
}
