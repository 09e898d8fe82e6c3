package renderer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jovian-labs/nbserve/internal/pageconfig"
)

func TestNewHTMLRenderer(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)
	require.NotNil(t, r)
}

func TestRender_EmbedsConfigScriptBlock(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	cfg := pageconfig.PageConfig{
		"appName":  "nbserve",
		"baseUrl":  "/",
		"treePath": "project/notes",
	}

	page, err := r.Render("tree.html", cfg)
	require.NoError(t, err)

	html := string(page)
	require.Contains(t, html, `<script id="nbserve-config" type="application/json">`)
	assert.Contains(t, html, `<title>nbserve</title>`)

	// The embedded block must round-trip back to the input config.
	start := strings.Index(html, `type="application/json">`) + len(`type="application/json">`)
	end := strings.Index(html[start:], "</script>")
	require.Positive(t, end)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(html[start:start+end]), &decoded))
	assert.Equal(t, "project/notes", decoded["treePath"])
	assert.Equal(t, "/", decoded["baseUrl"])
}

func TestRender_AllPageTemplatesKnown(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	cfg := pageconfig.PageConfig{"appName": "nbserve", "baseUrl": "/"}

	for _, name := range []string{"tree.html", "consoles.html", "terminals.html", "edit.html", "notebooks.html"} {
		page, err := r.Render(name, cfg)
		require.NoError(t, err, "template %s", name)
		assert.Contains(t, string(page), "<!DOCTYPE html>", "template %s", name)
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	_, err = r.Render("nope.html", pageconfig.PageConfig{})
	assert.Error(t, err)
}

func TestRender_StylesheetLinkUnderBaseURL(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	page, err := r.Render("notebooks.html", pageconfig.PageConfig{"baseUrl": "/lab/"})
	require.NoError(t, err)

	assert.Contains(t, string(page), `href="/lab/custom/custom.css"`)
}
