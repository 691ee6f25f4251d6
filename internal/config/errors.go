package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when settings
// are incomplete or invalid.
var (
	// ErrInvalidStampConfigs indicates invalid stamp settings (for example,
	// an indent outside 0..10 or a path mapping without a variable name).
	ErrInvalidStampConfigs = errors.New("invalid stamp configuration")
	// ErrInvalidLogConfigs indicates an unknown log level or format.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrUnsupportedConfigFile indicates a settings file whose extension is
	// neither JSON nor YAML.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
