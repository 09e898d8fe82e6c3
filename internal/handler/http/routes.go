package http

import (
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(withGZip)

	// exposed without authentication
	router.Handle("/metrics", promhttp.Handler())

	mountPoint := "/"
	if h.baseURL != "/" {
		mountPoint = strings.TrimSuffix(h.baseURL, "/")
	}
	router.Mount(mountPoint, h.pageRoutes())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) pageRoutes() chi.Router {
	pages := chi.NewRouter()
	pages.Use(h.auth)

	pages.Get("/", h.root)
	pages.Get("/tree", h.tree)
	pages.Get("/tree/*", h.tree)
	pages.Get("/consoles/*", h.consoles)
	pages.Get("/terminals/*", h.terminals)
	pages.Get("/files/*", h.files)
	pages.Get("/notebooks/*", h.notebooks)
	pages.Get("/custom/custom.css", h.customCSS)

	return pages
}
