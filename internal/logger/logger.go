// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// stamper.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Diagnostics always go to stderr: stdout is reserved for the single
// confirmation line of a successful run.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Output formats accepted by [New].
const (
	// FormatConsole renders one human-readable line per entry.
	FormatConsole = "console"
	// FormatJSON renders one JSON object per entry.
	FormatJSON = "json"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a console *Logger for the given role label writing to
// out at info level. It is used before configuration is loaded. A nil out
// means os.Stderr.
func NewLogger(role string, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return New(role, out, FormatConsole, zerolog.InfoLevel)
}

// New constructs a *Logger for role writing to out.
//
// The JSON format carries a "role" field, a timestamp and a "func" caller
// field holding the fully-qualified function name. The console format keeps
// the role and timestamp but drops the caller to stay on one short line.
// Unknown formats fall back to console.
func New(role string, out io.Writer, format string, level zerolog.Level) *Logger {
	if format == FormatJSON {
		zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
			return runtime.FuncForPC(pc).Name()
		}
		zerolog.CallerFieldName = "func"

		logger := zerolog.New(out).Level(level).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger()
		return &Logger{logger}
	}

	console := zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: "15:04:05"}
	logger := zerolog.New(console).Level(level).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// ParseLevel converts a level name (debug, info, warn, error) into a
// zerolog.Level. The empty string maps to info.
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q: %w", level, err)
	}

	return lvl, nil
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
