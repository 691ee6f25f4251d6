package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/file_store_mock.go -package=mock

// FileStore reads and replaces whole files.
type FileStore interface {
	// Read returns the full contents of path.
	Read(ctx context.Context, path string) ([]byte, error)

	// Write replaces the contents of path with data.
	Write(ctx context.Context, path string, data []byte) error
}
