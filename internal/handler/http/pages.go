// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The nbserve Authors

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jovian-labs/nbserve/internal/logger"
	"github.com/jovian-labs/nbserve/internal/pageconfig"
	"github.com/jovian-labs/nbserve/models"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.defaultURL, http.StatusFound)
}

// tree answers directory listings and redirects file paths to the matching
// viewer.
func (h *Handler) tree(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	path := chi.URLParam(r, "*")
	decision, err := h.services.TreeService.Classify(r.Context(), path)
	if err != nil {
		log.Err(err).Str("func", "*Handler.tree").Msg("error classifying tree path")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	switch decision.Kind {
	case models.RouteListing:
		cfg, err := h.services.PageConfigService.TreePageConfig(r.Context(), decision.TreePath)
		if err != nil {
			log.Err(err).Str("func", "*Handler.tree").Msg("error assembling page config")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		h.renderPage(w, r, "tree.html", cfg)
	case models.RouteRedirect:
		http.Redirect(w, r, decision.Target, http.StatusFound)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) consoles(w http.ResponseWriter, r *http.Request) {
	h.renderFreshPage(w, r, "consoles.html")
}

func (h *Handler) terminals(w http.ResponseWriter, r *http.Request) {
	if !h.terminalsAvailable {
		http.NotFound(w, r)
		return
	}

	h.renderFreshPage(w, r, "terminals.html")
}

func (h *Handler) files(w http.ResponseWriter, r *http.Request) {
	h.renderFreshPage(w, r, "edit.html")
}

func (h *Handler) notebooks(w http.ResponseWriter, r *http.Request) {
	h.renderFreshPage(w, r, "notebooks.html")
}

// renderFreshPage renders name with a page config assembled for this request.
func (h *Handler) renderFreshPage(w http.ResponseWriter, r *http.Request, name string) {
	log := logger.FromRequest(r)

	cfg, err := h.services.PageConfigService.PageConfig(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.renderFreshPage").Msg("error assembling page config")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.renderPage(w, r, name, cfg)
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name string, cfg pageconfig.PageConfig) {
	log := logger.FromRequest(r)

	page, err := h.renderer.Render(name, cfg)
	if err != nil {
		log.Err(err).Str("func", "*Handler.renderPage").Str("template", name).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(page); err != nil {
		log.Err(err).Str("func", "*Handler.renderPage").Msg("error writing page response")
	}
}
