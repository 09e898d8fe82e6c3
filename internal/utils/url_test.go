package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLJoin(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"no parts", nil, ""},
		{"root only", []string{"/"}, "/"},
		{"base and segment", []string{"/", "static"}, "/static"},
		{"keeps leading slash", []string{"/base/", "notebooks", "a.ipynb"}, "/base/notebooks/a.ipynb"},
		{"keeps trailing slash", []string{"/base", "tree/"}, "/base/tree/"},
		{"collapses duplicate slashes", []string{"/base//", "//files//", "x"}, "/base/files/x"},
		{"skips empty fragments", []string{"/base", "", "y"}, "/base/y"},
		{"relative stays relative", []string{"static", "style.css"}, "static/style.css"},
		{"root plus trailing root", []string{"/", "/"}, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, URLJoin(tt.parts...))
		})
	}
}

func TestURLIsAbsolute(t *testing.T) {
	assert.True(t, URLIsAbsolute("https://cdnjs.cloudflare.com/ajax/libs/mathjax/2.7.7/MathJax.js"))
	assert.True(t, URLIsAbsolute("http://localhost:8888/"))
	assert.True(t, URLIsAbsolute("//cdn.example.com/lib.js"))

	assert.False(t, URLIsAbsolute("/static/mathjax/MathJax.js"))
	assert.False(t, URLIsAbsolute("static/mathjax/MathJax.js"))
	assert.False(t, URLIsAbsolute(""))
}

func TestURLEscapePath(t *testing.T) {
	assert.Equal(t, "dir/sub/a.ipynb", URLEscapePath("dir/sub/a.ipynb"))
	assert.Equal(t, "my%20notes/week%20%231.ipynb", URLEscapePath("my notes/week #1.ipynb"))
	// separators survive escaping
	assert.Equal(t, "a/b/c", URLEscapePath("a/b/c"))
}

func TestCamelCase(t *testing.T) {
	tests := map[string]string{
		"app_name":         "appName",
		"app_version":      "appVersion",
		"default_url":      "defaultUrl",
		"full_mathjax_url": "fullMathjaxUrl",
		"token":            "token",
	}
	for input, want := range tests {
		assert.Equal(t, want, CamelCase(input), "CamelCase(%q)", input)
	}
}

// TestCamelCase_Injective checks that distinct snake_case trait names map to
// distinct camelCase keys.
func TestCamelCase_Injective(t *testing.T) {
	names := []string{
		"app_name", "app_version", "default_url", "static_dir",
		"custom_css", "expose_app_in_browser", "full_default_url",
	}

	seen := make(map[string]string, len(names))
	for _, name := range names {
		key := CamelCase(name)
		prev, dup := seen[key]
		assert.False(t, dup, "key %q produced by both %q and %q", key, prev, name)
		seen[key] = name
	}
}
