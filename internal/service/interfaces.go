package service

import (
	"context"

	"github.com/MKhiriev/go-config-stamper/internal/environ"
)

// StamperService writes environment values into a JSON document on disk.
type StamperService interface {
	// Stamp reads the JSON object at filePath, replaces the stamped fields
	// with their values from env and writes the document back to filePath.
	//
	// Errors wrap exactly one of [ErrRead], [ErrParse] or [ErrWrite]. Nothing
	// is written unless reading and parsing succeeded.
	Stamp(ctx context.Context, filePath string, env environ.Bindings) error
}

// IDGenerator produces run identifiers.
type IDGenerator interface {
	Generate() string
}
