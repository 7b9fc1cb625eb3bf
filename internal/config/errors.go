package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a settings
// group is invalid.
var (
	// ErrInvalidSourceConfigs indicates invalid property source settings
	// (for example, an unknown encoding or a malformed glob).
	ErrInvalidSourceConfigs = errors.New("invalid source configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidOutputConfigs indicates invalid output settings
	// (for example, an unsupported format or a malformed filter).
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrNoSourceConfigured indicates that a command needs a property file
	// but neither files nor a glob were given.
	ErrNoSourceConfigured = errors.New("no property file configured: use --file or --glob")
)
