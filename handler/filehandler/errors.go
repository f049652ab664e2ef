package filehandler

import (
	"errors"
	"io/fs"
)

var (
	// ErrOpen matches every error returned when a log file cannot be opened
	ErrOpen = errors.New("filehandler: cannot open log file")

	// ErrEmptyPath is returned when no path is given
	ErrEmptyPath = errors.New("filehandler: empty path")

	// ErrPathTooLong is returned when a path exceeds MaxPathLen bytes
	ErrPathTooLong = errors.New("filehandler: path too long")

	// ErrInvalidPath is returned for paths the OS cannot represent
	ErrInvalidPath = errors.New("filehandler: invalid path")
)

// OpenError reports a failure to open a log file.
// It matches ErrOpen and unwraps to the underlying cause.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	// *fs.PathError already names the operation and the path
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) {
		return "filehandler: " + e.Err.Error()
	}
	return "filehandler: open " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns ErrOpen and the cause
func (e *OpenError) Unwrap() []error {
	return []error{ErrOpen, e.Err}
}
