// Package pdf exports rendered resume pages to PDF.
package pdf

import "fmt"

// ExportError represents a failed PDF export for one locale.
type ExportError struct {
	Locale  string
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf export error (%s): %s: %v", e.Locale, e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf export error (%s): %s", e.Locale, e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

// InvalidError reports a PDF file that is missing, empty or malformed.
type InvalidError struct {
	Path    string
	Message string
	Cause   error
}

func (e *InvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid PDF %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid PDF %s: %s", e.Path, e.Message)
}

func (e *InvalidError) Unwrap() error {
	return e.Cause
}
