package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomCSS_StreamsStylesheet(t *testing.T) {
	h := newTestHandler(t)
	h.services.AssetsService = &mockAssetsSvc{
		customCSSFn: func(_ context.Context) (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("body { color: teal; }")), nil
		},
	}

	router := h.Init()
	req := httptest.NewRequest(http.MethodGet, "/custom/custom.css", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	assert.Equal(t, "body { color: teal; }", rec.Body.String())
}

func TestCustomCSS_MissingStylesheetAnswers500(t *testing.T) {
	h := newTestHandler(t)

	router := h.Init()
	req := httptest.NewRequest(http.MethodGet, "/custom/custom.css", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "custom stylesheet not found")
}
