package repo

import (
	"errors"
	"fmt"
)

// ErrNotDirectory is returned when the bootstrap target exists but is not a directory.
var ErrNotDirectory = errors.New("path is not a directory")

// InitError reports a failure to open or create a plain repository.
type InitError struct {
	Path string
	Op   string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init repository %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
