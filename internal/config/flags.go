package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig       = "config"
	FlagIndent       = "indent"
	FlagAtomic       = "atomic"
	FlagArgsFallback = "args-fallback"
	FlagPEMFiles     = "pem-files"
	FlagListField    = "list-field"
	FlagPath         = "path"
	FlagLogLevel     = "log-level"
	FlagLogFormat    = "log-format"
)

// RegisterFlags adds the stamper settings flags to fs.
//
// Flags:
//
//	-c/--config settings file path (JSON or YAML)
//	--indent spaces per nesting level, 0 for compact output
//	--atomic replace the file through a temporary file and rename
//	--args-fallback use positional values for unset variables
//	--pem-files read PEM field values as key file paths
//	--list-field target written as an array from a comma list (repeatable)
//	--path extra mapping path=ENV_NAME (repeatable)
//	--log-level debug|info|warn|error
//	--log-format console|json
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "Settings file path (JSON or YAML)")
	fs.Int(FlagIndent, DefaultIndent, "Spaces per indentation level, 0 for compact output")
	fs.Bool(FlagAtomic, false, "Replace the file through a temporary file and rename")
	fs.Bool(FlagArgsFallback, false, "Use positional values for fields whose variable is unset")
	fs.Bool(FlagPEMFiles, false, "Treat PEM field values as paths to PEM files")
	fs.StringSlice(FlagListField, nil, "Target written as a JSON array from a comma separated value (repeatable)")
	fs.StringToString(FlagPath, nil, "Additional mapping document.path=ENV_NAME (repeatable)")
	fs.String(FlagLogLevel, DefaultLogLevel, "Log level: debug, info, warn, error")
	fs.String(FlagLogFormat, DefaultLogFormat, "Log format: console, json")
}

// parseFlags collects the flags of fs that were explicitly set. Flags left at
// their defaults do not take part in merging, so they never mask values from
// the environment or the settings file.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := new(StructuredConfig)
	if fs == nil {
		return cfg, nil
	}

	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}

		switch f.Name {
		case FlagConfig:
			cfg.ConfigFilePath, err = fs.GetString(FlagConfig)
		case FlagIndent:
			var v int
			if v, err = fs.GetInt(FlagIndent); err == nil {
				cfg.Stamp.Indent = &v
			}
		case FlagAtomic:
			cfg.Stamp.Atomic, err = boolFlag(fs, FlagAtomic)
		case FlagArgsFallback:
			cfg.Stamp.ArgsFallback, err = boolFlag(fs, FlagArgsFallback)
		case FlagPEMFiles:
			cfg.Stamp.PEMFiles, err = boolFlag(fs, FlagPEMFiles)
		case FlagListField:
			cfg.Stamp.ListFields, err = fs.GetStringSlice(FlagListField)
		case FlagPath:
			cfg.Stamp.Paths, err = fs.GetStringToString(FlagPath)
		case FlagLogLevel:
			cfg.Log.Level, err = fs.GetString(FlagLogLevel)
		case FlagLogFormat:
			cfg.Log.Format, err = fs.GetString(FlagLogFormat)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("error getting flag configs: %w", err)
	}

	return cfg, nil
}

func boolFlag(fs *pflag.FlagSet, name string) (*bool, error) {
	v, err := fs.GetBool(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
