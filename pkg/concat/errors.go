// File: pkg/concat/errors.go
package concat

import (
	"errors"
	"fmt"
)

// ErrNoMatches is returned when the extension filter matched zero files.
// The caller reports it on stderr and exits non-zero; no output file is
// written in that case.
var ErrNoMatches = errors.New("no matching source files found")

// NotDirectoryError is returned when the configured root path does not
// exist or is not a directory.
type NotDirectoryError struct {
	Path string
	Err  error // Underlying stat error, if any.
}

func (e *NotDirectoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s is not a directory: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s is not a directory", e.Path)
}

func (e *NotDirectoryError) Unwrap() error { return e.Err }

// ClipboardError wraps a failure of the system clipboard. The output
// document has already been written when this error occurs, so callers
// must report it distinctly from file-system errors rather than treating
// the whole run as a failed write.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("clipboard unavailable: %v", e.Err)
}

func (e *ClipboardError) Unwrap() error { return e.Err }
