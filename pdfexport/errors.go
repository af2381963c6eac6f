package pdfexport

import (
	"fmt"
)

// ConfigurationError reports an export that cannot start: a missing key
// column or a layout constant out of range. It is raised before any page
// is rendered.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pdfexport: configuration: %s: %v", e.Reason, e.Err)
	}
	return "pdfexport: configuration: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func configErrorf(format string, args ...interface{}) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// RenderError reports a failure while laying out or drawing a column group.
// The whole export is abandoned; no partial document is returned.
type RenderError struct {
	Group  int    // 0-based column group, -1 when not group specific
	Column string // offending column, if any
	Reason string
	Err    error
}

func (e *RenderError) Error() string {
	msg := "pdfexport: render"
	if e.Group >= 0 {
		msg += fmt.Sprintf(" group %d", e.Group+1)
	}
	if e.Column != "" {
		msg += fmt.Sprintf(" column %q", e.Column)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RenderError) Unwrap() error { return e.Err }
