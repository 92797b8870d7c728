package balance

import (
	"context"
	"fmt"

	"github.com/yaklabco/bracecheck/pkg/fsutil"
)

// FileReport is the result of checking one file.
type FileReport struct {
	// Path is the path that was read.
	Path string

	// Content is the text that was scanned.
	Content []byte

	// Info describes the file as it was when read.
	Info *fsutil.FileInfo

	// Result is the scan outcome.
	Result Result
}

// FileAccessError reports that the input could not be read. It is distinct
// from the structural errors and wraps the fsutil sentinel that caused it.
type FileAccessError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying read error.
func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// CheckFile reads path in full and scans it.
func CheckFile(ctx context.Context, path string) (*FileReport, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}

	return &FileReport{
		Path:    path,
		Content: content,
		Info:    info,
		Result:  Scan(content),
	}, nil
}
