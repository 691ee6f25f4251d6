// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Defaults applied after all sources are merged.
const (
	DefaultIndent    = 2
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	MaxIndent = 10
)

// StructuredConfig is the top-level configuration of the stamper. It holds
// tool settings only; the values written into the target document come from
// the environment variables named after the target fields.
//
// Scalar settings are pointers so that an explicit zero (indent 0,
// atomic=false) set by a higher-priority source still overrides a lower one.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Stamp holds the settings that shape a stamp run.
	Stamp Stamp `envPrefix:"STAMPER_" json:"stamp" yaml:"stamp"`

	// Log holds diagnostic output settings.
	Log Log `envPrefix:"STAMPER_LOG_" json:"log" yaml:"log"`

	// ConfigFilePath is the optional path to a JSON or YAML settings file.
	// Populated via the STAMPER_CONFIG environment variable or the
	// -c / --config flag.
	ConfigFilePath string `env:"STAMPER_CONFIG" json:"-" yaml:"-"`
}

// Stamp groups the settings of a stamp run.
type Stamp struct {
	// Indent is the number of spaces per nesting level of the written file.
	// Zero writes compact JSON.
	Indent *int `env:"INDENT" json:"indent,omitempty" yaml:"indent,omitempty"`

	// Atomic replaces the file through a temporary sibling and a rename.
	Atomic *bool `env:"ATOMIC" json:"atomic,omitempty" yaml:"atomic,omitempty"`

	// ArgsFallback uses a positional argument when the environment variable
	// of the same field is unset.
	ArgsFallback *bool `env:"ARGS_FALLBACK" json:"args_fallback,omitempty" yaml:"args_fallback,omitempty"`

	// PEMFiles treats the PEM field values as paths to PEM files whose
	// body is written instead.
	PEMFiles *bool `env:"PEM_FILES" json:"pem_files,omitempty" yaml:"pem_files,omitempty"`

	// ListFields names targets whose comma separated value is written as a
	// JSON array.
	ListFields []string `env:"LIST_FIELDS" envSeparator:"," json:"list_fields,omitempty" yaml:"list_fields,omitempty"`

	// Paths maps additional dotted document paths to the environment
	// variable providing their value, e.g. "AzureAd.ClientId=newClientId".
	Paths map[string]string `env:"PATHS" envSeparator:"," envKeyValSeparator:"=" json:"paths,omitempty" yaml:"paths,omitempty"`
}

// Log groups logger settings.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `env:"LEVEL" json:"level,omitempty" yaml:"level,omitempty"`

	// Format is "console" or "json".
	Format string `env:"FORMAT" json:"format,omitempty" yaml:"format,omitempty"`
}

// IndentWidth returns the configured indent or [DefaultIndent].
func (s Stamp) IndentWidth() int {
	if s.Indent == nil {
		return DefaultIndent
	}
	return *s.Indent
}

// AtomicWrite reports whether atomic replacement is enabled.
func (s Stamp) AtomicWrite() bool {
	return s.Atomic != nil && *s.Atomic
}

// FallbackToArgs reports whether positional arguments back unset variables.
func (s Stamp) FallbackToArgs() bool {
	return s.ArgsFallback != nil && *s.ArgsFallback
}

// ReadPEMFiles reports whether PEM values are file paths.
func (s Stamp) ReadPEMFiles() bool {
	return s.PEMFiles != nil && *s.PEMFiles
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Stamp.Indent == nil {
		indent := DefaultIndent
		cfg.Stamp.Indent = &indent
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}
