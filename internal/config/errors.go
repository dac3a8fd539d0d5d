package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings (unknown
	// backend, empty key, missing DSN or file path for the chosen backend).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidUIConfigs indicates invalid presentation settings
	// (for example, a non-positive preview word limit).
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
)
