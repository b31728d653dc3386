// Package issues provides the located issue type reported while building
// OpenAPI documents.
package issues

import (
	"fmt"

	"github.com/jentic/jentic-openapi-tools-sub001/internal/severity"
)

// Issue is a single non-fatal observation about a document, such as a node
// kept in its invalid form or a key the object model does not declare.
type Issue struct {
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Kind names the build report the issue came from ("shape-mismatch",
	// "unknown-field" or "dropped-key")
	Kind string
	// Object is the object type being built, such as "Info" or "Schema"
	Object string
	// Field is the offending key (empty for shape mismatches)
	Field string
	// Line is the 1-based line number in the source file (0 if unknown)
	Line int
	// Column is the 1-based column number in the source file (0 if unknown)
	Column int
	// File is the source name of the document (empty if unnamed)
	File string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	subject := i.Object
	if i.Field != "" {
		subject += "." + i.Field
	}

	if i.Line > 0 {
		return fmt.Sprintf("%s %s (line %d, col %d): %s", symbol, subject, i.Line, i.Column, i.Message)
	}
	return fmt.Sprintf("%s %s: %s", symbol, subject, i.Message)
}

// Location returns the source location in IDE-friendly format.
// Returns "file:line:column" if file is set, "line:column" if only line is set,
// or the object name if location is unknown.
func (i Issue) Location() string {
	if i.Line == 0 {
		return i.Object
	}
	if i.File != "" {
		return fmt.Sprintf("%s:%d:%d", i.File, i.Line, i.Column)
	}
	return fmt.Sprintf("%d:%d", i.Line, i.Column)
}

// HasLocation returns true if this issue has source location information.
func (i Issue) HasLocation() bool {
	return i.Line > 0
}
