package http

import "errors"

// Sentinel errors used by the token-authentication middleware. Callers can
// match against them with [errors.Is].
var (
	// ErrMissingToken is returned when neither the "Authorization" header
	// nor the "token" query parameter carries an access token.
	ErrMissingToken = errors.New("missing access token")

	// ErrInvalidToken is returned when a token is present but does not
	// match the server's configured token.
	ErrInvalidToken = errors.New("invalid access token")
)
