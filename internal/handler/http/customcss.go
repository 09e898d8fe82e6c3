package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/jovian-labs/nbserve/internal/logger"
	"github.com/jovian-labs/nbserve/internal/service"
)

// customCSS streams the operator stylesheet. An unreadable stylesheet is a
// server-side defect and answers 500, never 404.
func (h *Handler) customCSS(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	stylesheet, err := h.services.AssetsService.CustomCSS(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrCustomCSSNotFound) {
			http.Error(w, service.ErrCustomCSSNotFound.Error(), http.StatusInternalServerError)
			return
		}

		log.Err(err).Str("func", "*Handler.customCSS").Msg("error resolving custom stylesheet")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer stylesheet.Close()

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	if _, err := io.Copy(w, stylesheet); err != nil {
		log.Err(err).Str("func", "*Handler.customCSS").Msg("error streaming custom stylesheet")
	}
}
