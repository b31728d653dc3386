package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched by the error types' Is methods.
var (
	ErrParse              = errors.New("parse error")
	ErrUnsupportedVersion = errors.New("unsupported version")
	ErrResourceLimit      = errors.New("resource limit exceeded")
	ErrConfig             = errors.New("configuration error")
)

// ResourceInputSize is the ResourceType of a ResourceLimitError raised for
// input that is larger than the configured maximum.
const ResourceInputSize = "input_size"

// ParseError is returned when input cannot be composed into a node tree, or
// when the composed root has no usable openapi field.
type ParseError struct {
	Path    string // file path or source name
	Line    int    // 0 if unknown
	Column  int    // 0 if unknown or Line is 0
	Message string
	Cause   error // error from the YAML library or version parsing
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse error")
	writeSource(&b, e.Path, e.Line, e.Column)
	writeDetail(&b, e.Message, e.Cause)
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Cause }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// UnsupportedVersionError is returned for a well-formed version that has no
// builder, such as openapi 3.2.0 or swagger 2.0.
type UnsupportedVersionError struct {
	Path    string
	Version string // as written in the document
	Field   string // "openapi" or "swagger"
	Line    int
	Column  int
}

func (e *UnsupportedVersionError) Error() string {
	var b strings.Builder
	b.WriteString("unsupported version")
	if e.Version != "" {
		b.WriteString(" " + e.Version)
	}
	writeSource(&b, e.Path, e.Line, e.Column)
	b.WriteString(": only OpenAPI 3.0.x and 3.1.x are supported")
	return b.String()
}

func (e *UnsupportedVersionError) Is(target error) bool { return target == ErrUnsupportedVersion }

// ResourceLimitError is returned when input exceeds a configured limit.
// Actual is 0 when the size is not known, for example when a reader was cut
// off at the limit.
type ResourceLimitError struct {
	ResourceType string
	Limit        int64
	Actual       int64
	Message      string
}

func (e *ResourceLimitError) Error() string {
	var b strings.Builder
	b.WriteString("resource limit exceeded")
	if e.ResourceType != "" {
		b.WriteString(": " + e.ResourceType)
	}
	switch {
	case e.Limit > 0 && e.Actual > 0:
		fmt.Fprintf(&b, " (limit: %d, actual: %d)", e.Limit, e.Actual)
	case e.Limit > 0:
		fmt.Fprintf(&b, " (limit: %d)", e.Limit)
	}
	writeDetail(&b, e.Message, nil)
	return b.String()
}

func (e *ResourceLimitError) Is(target error) bool { return target == ErrResourceLimit }

// ConfigError reports a rejected option. Option names the With* function, or
// "input source" when the number of inputs is wrong.
type ConfigError struct {
	Option  string
	Value   any // the rejected value, or nil
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("configuration error")
	if e.Option != "" {
		b.WriteString(" for " + e.Option)
	}
	if e.Value != nil {
		fmt.Fprintf(&b, " (value: %v)", e.Value)
	}
	writeDetail(&b, e.Message, e.Cause)
	return b.String()
}

func (e *ConfigError) Unwrap() error { return e.Cause }

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// writeSource appends " in path at line L, column C", leaving out unknown
// parts. A column is only written together with its line.
func writeSource(b *strings.Builder, path string, line, column int) {
	if path != "" {
		b.WriteString(" in " + path)
	}
	if line <= 0 {
		return
	}
	fmt.Fprintf(b, " at line %d", line)
	if column > 0 {
		fmt.Fprintf(b, ", column %d", column)
	}
}

func writeDetail(b *strings.Builder, msg string, cause error) {
	if msg != "" {
		b.WriteString(": " + msg)
	}
	if cause != nil {
		b.WriteString(": " + cause.Error())
	}
}
