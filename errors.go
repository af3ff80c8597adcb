package rawkit

import (
	"errors"
	"fmt"
	"io/fs"
)

// Common errors
var (
	ErrNotExist     = errors.New("file does not exist")
	ErrNotSupported = errors.New("operation not supported")
	ErrInvalidSize  = errors.New("invalid size")
)

// PathError records an error and the operation and file path that caused it.
// All I/O failures surfaced by this package are wrapped exactly once in a
// PathError; an unrecognized file header is not an error (see
// [FileTypeUnsupported]).
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PathError) Unwrap() error {
	return e.Err
}

// IsNotExist reports whether an error indicates that a file or directory
// does not exist
func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist) || errors.Is(err, fs.ErrNotExist)
}

// mapOSError converts well-known OS errors to package sentinels before
// they are wrapped in a PathError.
func mapOSError(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotExist
	}
	return err
}
