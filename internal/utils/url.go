package utils

import (
	"net/url"
	"strings"
)

// URLJoin joins URL path fragments with single slashes.
//
// Empty fragments are skipped, redundant slashes between fragments are
// collapsed, a leading slash on the first fragment and a trailing slash on
// the last fragment are preserved. Joining nothing (or only slashes) yields
// "/" when the first fragment was rooted, "" otherwise.
func URLJoin(parts ...string) string {
	if len(parts) == 0 {
		return ""
	}

	initial := strings.HasPrefix(parts[0], "/")
	final := strings.HasSuffix(parts[len(parts)-1], "/")

	stripped := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.Trim(p, "/")
		if trimmed == "" {
			continue
		}
		stripped = append(stripped, trimmed)
	}

	result := strings.Join(stripped, "/")
	if initial {
		result = "/" + result
	}
	if final && !strings.HasSuffix(result, "/") {
		result += "/"
	}

	return result
}

// URLIsAbsolute reports whether u is an absolute URL: either carrying a
// scheme ("https://…", "mailto:…") or protocol-relative ("//cdn.example.com").
func URLIsAbsolute(u string) bool {
	if strings.HasPrefix(u, "//") {
		return true
	}

	parsed, err := url.Parse(u)
	if err != nil {
		return false
	}

	return parsed.Scheme != ""
}

// URLEscapePath escapes each slash-separated segment of p individually, so
// that the separators survive while special characters inside segments
// (spaces, '#', '?', '%') do not leak into the URL structure.
func URLEscapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return strings.Join(segments, "/")
}

// CamelCase converts a snake_case identifier to camelCase: the first token is
// kept as-is, every following token has its first rune upper-cased, and the
// underscores are removed ("full_mathjax_url" → "fullMathjaxUrl").
//
// For identifiers without leading or trailing underscores the conversion is
// injective, so distinct trait names never collide as page-config keys.
func CamelCase(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}

	return strings.Join(parts, "")
}
