// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The nbserve Authors

package http

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/jovian-labs/nbserve/internal/logger"
	"github.com/jovian-labs/nbserve/internal/utils"
)

// auth is an HTTP middleware enforcing the server's opaque access token.
//
// The token is taken from the "Authorization: token <value>" header, falling
// back to the "token" query parameter (the form a browser lands with after
// following the login URL printed at startup). Comparison is constant-time.
//
// Requests are rejected with HTTP 403 Forbidden when the token is missing or
// does not match. A server configured with an empty token runs open and the
// middleware passes everything through.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.token == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		provided := tokenFromRequest(r)
		if provided == "" {
			log.Err(ErrMissingToken).Send()
			http.Error(w, ErrMissingToken.Error(), http.StatusForbidden)
			return
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(h.token)) != 1 {
			log.Err(ErrInvalidToken).Send()
			http.Error(w, ErrInvalidToken.Error(), http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), utils.AuthenticatedCtxKey, true)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenFromRequest extracts the access token from the request, preferring
// the Authorization header over the query parameter.
func tokenFromRequest(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "token") {
			return parts[1]
		}
	}

	return r.URL.Query().Get("token")
}
