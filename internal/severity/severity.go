// Package severity provides severity level constants and utilities
// for issues reported while building OpenAPI documents.
//
// The parser package re-exports all four levels:
//   - SeverityInfo: keys the object model does not declare
//   - SeverityWarning: nodes kept in their invalid form
//   - SeverityError: reserved for callers layering validation on top
//   - SeverityCritical: reserved for callers layering validation on top
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of an issue.
type Severity int

const (
	// SeverityError indicates a violation that makes the document invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates a node that does not have the required shape
	// and was kept as-is. Building continues.
	SeverityWarning

	// SeverityInfo indicates informational messages, such as a key that the
	// object does not declare.
	SeverityInfo

	// SeverityCritical indicates content that cannot be processed at all.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
