// Package rendering turns a resume into its preview and export formats:
// an HTML preview, a flattened ATS view, a plain-text export and a
// paginated PDF. Renderers only read the resume they are given.
package rendering

import "fmt"

// Error is a failed render. Format is empty when the failure is not tied
// to one export format, as with cover letter content.
type Error struct {
	Format  Format
	Message string
	Cause   error
}

func (e *Error) Error() string {
	prefix := "render"
	if e.Format != "" {
		prefix += " " + string(e.Format)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return prefix + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
