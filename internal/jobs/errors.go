// Package jobs matches saved job postings against a resume, searches them,
// applies to them, and imports postings from local documents.
package jobs

import (
	"errors"
	"fmt"
)

// ErrNoActiveResume is returned by operations that need a resume to match
// or apply with.
var ErrNoActiveResume = errors.New("no active resume selected")

// ImportError reports a posting that could not be read or parsed.
type ImportError struct {
	Source  string
	Message string
	Cause   error
}

func (e *ImportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("import error for %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("import error for %s: %s", e.Source, e.Message)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}
