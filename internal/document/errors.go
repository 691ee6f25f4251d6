package document

import "errors"

var (
	ErrInvalidJSON      = errors.New("invalid JSON")
	ErrNotObject        = errors.New("top-level JSON value is not an object")
	ErrInvalidPath      = errors.New("invalid path")
	ErrNotContainer     = errors.New("path traverses a value that is neither object nor array")
	ErrIndexOutOfRange  = errors.New("array index out of range")
	ErrUnencodableValue = errors.New("value cannot be encoded as JSON")
)
