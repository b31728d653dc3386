package parser

import (
	"github.com/jentic/jentic-openapi-tools-sub001/internal/issues"
	"github.com/jentic/jentic-openapi-tools-sub001/internal/severity"
)

// Issue is a located, non-fatal observation made while building a document.
type Issue = issues.Issue

// Severity indicates the severity of an Issue.
type Severity = severity.Severity

const (
	// SeverityError is not produced by the parser; it is available to callers
	// that layer validation on top of the model.
	SeverityError = severity.SeverityError
	// SeverityWarning marks a node kept in its invalid form.
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo marks an undeclared or dropped key. Only reported with
	// WithReportUnknownFields.
	SeverityInfo = severity.SeverityInfo
	// SeverityCritical is not produced by the parser.
	SeverityCritical = severity.SeverityCritical
)
