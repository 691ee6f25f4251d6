package store

import "errors"

// Sentinel errors returned by [FileStore] implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrFileNotFound is returned when the file to read does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrNotRegularFile is returned when the path names a directory or other
	// non-regular file.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrFileNotReplaced is returned by the atomic store when the temporary
	// file could not be moved over the target.
	ErrFileNotReplaced = errors.New("file was not replaced")
)
