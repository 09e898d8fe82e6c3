package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty application name or a malformed base URL).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidContentConfigs indicates invalid contents settings
	// (for example, a server root that does not exist or is not a directory).
	ErrInvalidContentConfigs = errors.New("invalid content configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
