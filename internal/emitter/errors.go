package emitter

import (
	"errors"
	"fmt"
	"io/fs"
)

// FileAccessError reports that the input file could not be opened or read.
// It is fatal for a run: no further lines are emitted.
type FileAccessError struct {
	Op   string // "open" or "read"
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	// *fs.PathError already names the op and path.
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }
