package config

import "errors"

// Errors returned by configuration operations.
var (
	// ErrInvalidValue indicates a config value failed basic sanity checks
	// (e.g. a negative watch_debounce_ms).
	ErrInvalidValue = errors.New("invalid configuration value")
)
