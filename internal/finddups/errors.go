package finddups

import "fmt"

// InvalidInputPathError reports a given root that does not exist or is not a
// directory. Detected before any traversal begins.
type InvalidInputPathError struct {
	Path string
	Err  error
}

func (e *InvalidInputPathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid input path %q: %v", e.Path, e.Err)
	}

	return fmt.Sprintf("invalid input path %q: not a directory", e.Path)
}

func (e *InvalidInputPathError) Unwrap() error { return e.Err }

// UnreadableFileError reports a duplicate candidate that could not be opened
// or fully read while hashing. It aborts the whole run.
type UnreadableFileError struct {
	Path string
	Err  error
}

func (e *UnreadableFileError) Error() string {
	return fmt.Sprintf("unreadable file %q: %v", e.Path, e.Err)
}

func (e *UnreadableFileError) Unwrap() error { return e.Err }
