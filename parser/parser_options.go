package parser

import (
	"fmt"
	"io"
	"time"

	"github.com/jentic/jentic-openapi-tools-sub001/internal/options"
	"github.com/jentic/jentic-openapi-tools-sub001/oaserrors"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set for ParseWithOptions)
	filePath *string
	reader   io.Reader
	bytes    []byte

	logger              Logger
	reportUnknownFields bool
	maxAliasDepth       int
	maxAliasExpansion   int
	maxInputSize        int64

	// ParseAll only
	concurrency *int

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// parser returns a Parser carrying the non-input settings of cfg.
func (cfg *parseConfig) parser() *Parser {
	return &Parser{
		Logger:              cfg.logger,
		ReportUnknownFields: cfg.reportUnknownFields,
		MaxAliasDepth:       cfg.maxAliasDepth,
		MaxAliasExpansion:   cfg.maxAliasExpansion,
		MaxInputSize:        cfg.maxInputSize,
	}
}

func (cfg *parseConfig) hasInput() bool {
	return cfg.filePath != nil || cfg.reader != nil || cfg.bytes != nil
}

// ParseWithOptions parses an OpenAPI document using functional options.
// This provides a flexible, extensible API that combines input source selection
// and configuration in a single function call.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("openapi.yaml"),
//	    parser.WithReportUnknownFields(true),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}
	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}
	if cfg.concurrency != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", &oaserrors.ConfigError{
			Option:  "WithConcurrency",
			Value:   *cfg.concurrency,
			Message: "only applies to ParseAll",
		})
	}

	p := cfg.parser()

	// Without a source name, keep the per-method defaults
	if cfg.sourceName == nil {
		switch {
		case cfg.filePath != nil:
			return p.Parse(*cfg.filePath)
		case cfg.reader != nil:
			return p.ParseReader(cfg.reader)
		default:
			return p.ParseBytes(cfg.bytes)
		}
	}

	var data []byte
	loadStart := time.Now()
	switch {
	case cfg.filePath != nil:
		data, err = p.readFile(*cfg.filePath)
	case cfg.reader != nil:
		data, err = p.readAll(cfg.reader)
	default:
		data, err = cfg.bytes, p.checkSize(int64(len(cfg.bytes)))
	}
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, err
	}

	res, err := p.parseBytes(data, *cfg.sourceName)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithFilePath specifies a local file path as the input source.
// URLs are not fetched.
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "WithReader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "WithBytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithLogger sets a structured logger for debug output during parsing.
// By default, no logging is performed (nil logger).
//
// The same logger is handed to the builders, which log shape mismatches
// and dropped keys at debug level.
//
// Example:
//
//	logger := parser.NewSlogAdapter(slog.Default())
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("api.yaml"),
//	    parser.WithLogger(logger),
//	)
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithReportUnknownFields adds an info issue to the result for every key
// an object does not declare and for every key a patterned collection drops,
// such as a Paths key without a leading "/".
// Default: false
func WithReportUnknownFields(enabled bool) Option {
	return func(cfg *parseConfig) error {
		cfg.reportUnknownFields = enabled
		return nil
	}
}

// WithMaxAliasDepth bounds how many nested YAML aliases are expanded when a
// value is decoded. A value of 0 means use the default.
// Returns an error if depth is negative.
func WithMaxAliasDepth(depth int) Option {
	return func(cfg *parseConfig) error {
		if depth < 0 {
			return &oaserrors.ConfigError{Option: "WithMaxAliasDepth", Value: depth, Message: "cannot be negative"}
		}
		cfg.maxAliasDepth = depth
		return nil
	}
}

// WithMaxAliasExpansion bounds how many nodes a document may expand through
// YAML aliases, counted over the whole build. A value of 0 means use the
// default. Returns an error if nodes is negative.
func WithMaxAliasExpansion(nodes int) Option {
	return func(cfg *parseConfig) error {
		if nodes < 0 {
			return &oaserrors.ConfigError{Option: "WithMaxAliasExpansion", Value: nodes, Message: "cannot be negative"}
		}
		cfg.maxAliasExpansion = nodes
		return nil
	}
}

// WithMaxInputSize sets the maximum input size in bytes. Larger inputs fail
// with a *oaserrors.ResourceLimitError before they are composed.
// A value of 0 means no limit.
// Returns an error if size is negative.
func WithMaxInputSize(size int64) Option {
	return func(cfg *parseConfig) error {
		if size < 0 {
			return &oaserrors.ConfigError{Option: "WithMaxInputSize", Value: size, Message: "cannot be negative"}
		}
		cfg.maxInputSize = size
		return nil
	}
}

// WithConcurrency sets how many documents ParseAll builds at once.
// A value of 0 means one per available CPU. It is an error with
// ParseWithOptions.
// Returns an error if n is negative.
func WithConcurrency(n int) Option {
	return func(cfg *parseConfig) error {
		if n < 0 {
			return &oaserrors.ConfigError{Option: "WithConcurrency", Value: n, Message: "cannot be negative"}
		}
		cfg.concurrency = &n
		return nil
	}
}

// WithSourceName specifies a meaningful name for the source document.
// This is particularly useful when parsing from bytes or reader, where
// the default names ("ParseBytes.yaml", "ParseReader.yaml") are not descriptive.
// The name becomes ParseResult.SourcePath and the File of every issue.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithBytes(data),
//	    parser.WithSourceName("users-api"),
//	)
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		if name == "" {
			return &oaserrors.ConfigError{Option: "WithSourceName", Message: "source name cannot be empty"}
		}
		cfg.sourceName = &name
		return nil
	}
}
