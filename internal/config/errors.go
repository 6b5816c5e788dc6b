package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidCallerID indicates a blank caller id; the server would
	// silently fall back to its default, which is almost never intended.
	ErrInvalidCallerID = errors.New("invalid caller id configuration")
)
