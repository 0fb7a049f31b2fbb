package scan

import (
	"errors"
	"fmt"
	"io/fs"
)

// IOError is returned when an input file cannot be opened or read, or the report cannot be written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func newIOError(op, path string, err error) *IOError {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return &IOError{Op: op, Path: path, Err: err}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
