// Package oaserrors provides structured error types for the parser front end.
//
// Import path: github.com/jentic/jentic-openapi-tools-sub001/oaserrors
//
// The builders in datamodel/low never return errors; a node of the wrong shape
// is kept in the result instead. Errors only arise before building starts:
// the input cannot be read or composed, its version cannot be routed, or the
// options are invalid.
//
// # Error Types
//
//   - [ParseError]: YAML/JSON syntax failures and a missing, null or non-scalar openapi field, or an unparsable version
//   - [UnsupportedVersionError]: OpenAPI 2.0, 3.2 and other unrouted versions
//   - [ResourceLimitError]: input larger than the configured maximum size
//   - [ConfigError]: Invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrUnsupportedVersion]: Matches any [UnsupportedVersionError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	result, err := parser.ParseWithOptions(parser.WithBytes(data))
//	if errors.Is(err, oaserrors.ErrUnsupportedVersion) {
//	    // Fall back to another toolchain
//	}
//
// Extract error details with errors.As():
//
//	var parseErr *oaserrors.ParseError
//	if errors.As(err, &parseErr) {
//	    fmt.Printf("%s:%d: %s\n", parseErr.Path, parseErr.Line, parseErr.Message)
//	}
//
// # Error Chaining
//
// ParseError and ConfigError carry the underlying error in Cause and expose it
// through Unwrap:
//
//	var parseErr *oaserrors.ParseError
//	if errors.As(err, &parseErr) && errors.Is(parseErr.Cause, io.ErrUnexpectedEOF) {
//	    // The reader stopped early
//	}
package oaserrors
