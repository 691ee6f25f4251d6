// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-config-stamper/internal/logger"
	"github.com/MKhiriev/go-config-stamper/internal/utils"
)

const defaultFileMode fs.FileMode = 0o644

// fileStore is the plain [FileStore]: writes truncate and rewrite the target
// in place, so a failure mid-write can leave the file truncated.
type fileStore struct {
	logger *logger.Logger
}

// NewFileStore returns a [FileStore] for the local filesystem. When atomic is
// true, writes go to a temporary file in the target directory that is then
// renamed over the target.
func NewFileStore(atomic bool, log *logger.Logger) FileStore {
	base := &fileStore{logger: log}
	if atomic {
		return &atomicFileStore{fileStore: base}
	}

	return base
}

// logFor returns the store logger tagged with the run id carried by ctx.
func (s *fileStore) logFor(ctx context.Context) *logger.Logger {
	runID, ok := utils.GetRunIDFromContext(ctx)
	if !ok {
		return s.logger
	}

	log := s.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("run_id", runID)
	})
	return log
}

// Read returns the contents of path.
func (s *fileStore) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("error reading file info: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	s.logFor(ctx).Debug().Str("path", path).Int("bytes", len(data)).Msg("file read")
	return data, nil
}

// Write truncates path and writes data. The mode of an existing file is kept.
func (s *fileStore) Write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.WriteFile(path, data, defaultFileMode); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	s.logFor(ctx).Debug().Str("path", path).Int("bytes", len(data)).Msg("file written")
	return nil
}

// atomicFileStore replaces the target through a rename, so readers see either
// the old or the new contents.
type atomicFileStore struct {
	*fileStore
}

// Write stores data in a temporary sibling of path and renames it over path.
// A symlinked path is resolved first so the link keeps pointing at the
// replaced file.
func (s *atomicFileStore) Write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmpName)
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("error writing temporary file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("error syncing temporary file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing temporary file: %w", err)
	}
	if err = os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("error setting file mode: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %w", ErrFileNotReplaced, err)
	}

	s.logFor(ctx).Debug().Str("path", path).Int("bytes", len(data)).Msg("file replaced atomically")
	return nil
}
