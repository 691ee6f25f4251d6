// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-config-stamper/internal/document"
	"github.com/MKhiriev/go-config-stamper/internal/logger"
)

// validate checks that the merged [StructuredConfig] can drive a stamp run.
// It must be called after applyDefaults.
func (cfg *StructuredConfig) validate() error {
	if indent := cfg.Stamp.IndentWidth(); indent < 0 || indent > MaxIndent {
		return fmt.Errorf("%w: indent %d is outside 0..%d", ErrInvalidStampConfigs, indent, MaxIndent)
	}

	for _, target := range cfg.Stamp.ListFields {
		if target == "" {
			return fmt.Errorf("%w: empty list field", ErrInvalidStampConfigs)
		}
	}

	for path, envName := range cfg.Stamp.Paths {
		if _, err := document.SplitPath(path); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidStampConfigs, err)
		}
		if envName == "" {
			return fmt.Errorf("%w: path %q has no variable name", ErrInvalidStampConfigs, path)
		}
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	switch cfg.Log.Format {
	case logger.FormatConsole, logger.FormatJSON:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidLogConfigs, cfg.Log.Format)
	}

	return nil
}
