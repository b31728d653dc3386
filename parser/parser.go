package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/jentic/jentic-openapi-tools-sub001/datamodel/low"
	"github.com/jentic/jentic-openapi-tools-sub001/datamodel/low/v30"
	"github.com/jentic/jentic-openapi-tools-sub001/datamodel/low/v31"
	"github.com/jentic/jentic-openapi-tools-sub001/internal/issues"
	"github.com/jentic/jentic-openapi-tools-sub001/oaserrors"
)

// Parser composes OpenAPI documents and builds their low-level models.
// The zero value is usable; a Parser holds no per-document state and may be
// shared between goroutines.
type Parser struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
	// ReportUnknownFields adds an info issue for every key that the object
	// being built does not declare, and for every key a patterned collection
	// drops. Shape mismatches are always reported.
	// Default: false
	ReportUnknownFields bool
	// MaxAliasDepth bounds nested alias expansion when decoding values.
	// Default: low.DefaultMaxAliasDepth
	MaxAliasDepth int
	// MaxAliasExpansion bounds how many nodes one document may expand through
	// aliases. Aliases past the budget are kept as nil values and an error
	// issue is added.
	// Default: low.DefaultMaxAliasExpansion
	MaxAliasExpansion int
	// MaxInputSize is the maximum input size in bytes. 0 means no limit.
	MaxInputSize int64
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the format of the source OpenAPI specification file
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
)

// ParseResult contains the composed node tree and the low-level model built
// from it. Exactly one of OAS30 and OAS31 is set.
//
// The model shares nodes with Root. Callers should treat both as read-only.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// Note: if the source was not a file path, this will be set to the name of
	// the method used to parse it, e.g. "ParseBytes.yaml", unless a source
	// name was given.
	SourcePath string
	// SourceFormat is the format of the source document (yaml or json)
	SourceFormat SourceFormat
	// Version is the value of the openapi field as written
	Version string
	// OASVersion is the closest known version for Version, or Unknown when
	// Version is not a plain version number such as "3.0.x"
	OASVersion OASVersion
	// Root is the root mapping node of the document
	Root *yaml.Node
	// OAS30 is the built model for 3.0.x documents
	OAS30 *v30.OpenAPI
	// OAS31 is the built model for 3.1.x documents
	OAS31 *v31.OpenAPI
	// Issues are the non-fatal observations made while building, in the order
	// they were made
	Issues []Issue
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

// Is30 reports whether the document was built as OpenAPI 3.0.x.
func (r *ParseResult) Is30() bool {
	return r != nil && r.OAS30 != nil
}

// Is31 reports whether the document was built as OpenAPI 3.1.x.
func (r *ParseResult) Is31() bool {
	return r != nil && r.OAS31 != nil
}

// Extensions returns the root-level specification extensions of whichever
// model was built.
func (r *ParseResult) Extensions() low.Extensions {
	switch {
	case r.Is30():
		return r.OAS30.Extensions
	case r.Is31():
		return r.OAS31.Extensions
	default:
		return low.Extensions{}
	}
}

// IssuesBySeverity returns the issues of the given severity.
func (r *ParseResult) IssuesBySeverity(s Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == s {
			out = append(out, issue)
		}
	}
	return out
}

// Parse parses an OpenAPI document from a local file.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := p.readFile(specPath)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, err
	}

	res, err := p.parseBytes(data, specPath)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseReader parses an OpenAPI document from an io.Reader
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseReader.yaml or ParseReader.json
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := p.readAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, err
	}

	res, err := p.parseBytes(data, defaultSourceName("ParseReader", data))
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes parses an OpenAPI document from a byte slice
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseBytes.yaml or ParseBytes.json
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	if err := p.checkSize(int64(len(data))); err != nil {
		return nil, err
	}
	return p.parseBytes(data, defaultSourceName("ParseBytes", data))
}

func (p *Parser) readFile(specPath string) ([]byte, error) {
	if p.MaxInputSize > 0 {
		info, err := os.Stat(specPath)
		if err != nil {
			return nil, fmt.Errorf("parser: failed to read file: %w", err)
		}
		if err := p.checkSize(info.Size()); err != nil {
			return nil, err
		}
	}
	data, err := os.ReadFile(specPath)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	return data, nil
}

func (p *Parser) readAll(r io.Reader) ([]byte, error) {
	if p.MaxInputSize > 0 {
		r = io.LimitReader(r, p.MaxInputSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	if err := p.checkSize(int64(len(data))); err != nil {
		return nil, err
	}
	return data, nil
}

func (p *Parser) checkSize(size int64) error {
	if p.MaxInputSize > 0 && size > p.MaxInputSize {
		return &oaserrors.ResourceLimitError{
			ResourceType: oaserrors.ResourceInputSize,
			Limit:        p.MaxInputSize,
			Actual:       size,
		}
	}
	return nil
}

// parseBytes composes data, detects its version and builds the model.
func (p *Parser) parseBytes(data []byte, sourcePath string) (*ParseResult, error) {
	log := p.log().With("source", sourcePath)

	root, err := compose(data, sourcePath)
	if err != nil {
		return nil, err
	}

	raw, ver, err := detectVersion(root, sourcePath)
	if err != nil {
		return nil, err
	}

	res := &ParseResult{
		SourcePath:   sourcePath,
		SourceFormat: detectFormat(data),
		Version:      raw,
		Root:         root,
		SourceSize:   int64(len(data)),
	}
	res.OASVersion, _ = ParseVersion(raw)

	collector := &issueCollector{file: sourcePath, includeUnknown: p.ReportUnknownFields}
	ctx := low.NewContext(
		low.WithLogger(log),
		low.WithReporter(collector),
		low.WithMaxAliasDepth(p.MaxAliasDepth),
		low.WithMaxAliasExpansion(p.MaxAliasExpansion),
	)

	buildStart := time.Now()
	switch ver.series() {
	case series{3, 0}:
		log.Debug("building OpenAPI 3.0.x model", "version", raw)
		res.OAS30, _ = v30.BuildOpenAPI(root, ctx).Get()
	case series{3, 1}:
		log.Debug("building OpenAPI 3.1.x model", "version", raw)
		res.OAS31, _ = v31.BuildOpenAPI(root, ctx).Get()
	default:
		return nil, unsupported(root, "openapi", raw, sourcePath)
	}
	res.Issues = collector.issues

	log.Debug("built document model",
		"version", raw,
		"issues", len(res.Issues),
		"build_time", time.Since(buildStart),
	)
	return res, nil
}

// compose parses YAML or JSON text into a node tree and returns its root
// mapping node.
func compose(data []byte, sourcePath string) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: "failed to parse YAML/JSON", Cause: err}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: "document is empty"}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &oaserrors.ParseError{
			Path:    sourcePath,
			Line:    root.Line,
			Column:  root.Column,
			Message: "document root must be a mapping",
		}
	}
	return root, nil
}

// detectVersion returns the text of the root openapi field and its parsed
// form. A document with only a swagger field is a 2.0 document and is
// rejected as unsupported.
func detectVersion(root *yaml.Node, sourcePath string) (string, *version, error) {
	var openapi, swagger *low.Pair
	for _, pair := range low.Pairs(root) {
		if pair.Key.Kind != yaml.ScalarNode {
			continue
		}
		switch pair.Key.Value {
		case "openapi":
			openapi = &pair
		case "swagger":
			swagger = &pair
		}
	}

	if openapi == nil {
		if swagger != nil && isVersionScalar(swagger.Value) {
			return "", nil, unsupported(swagger.Value, "swagger", swagger.Value.Value, sourcePath)
		}
		return "", nil, &oaserrors.ParseError{
			Path:    sourcePath,
			Message: "missing required 'openapi' field; this does not appear to be an OpenAPI document",
		}
	}

	value := openapi.Value
	if !isVersionScalar(value) {
		return "", nil, &oaserrors.ParseError{
			Path:    sourcePath,
			Line:    value.Line,
			Column:  value.Column,
			Message: "the 'openapi' field must be a version string",
		}
	}
	ver, err := parseVersion(value.Value)
	if err != nil {
		return "", nil, &oaserrors.ParseError{
			Path:    sourcePath,
			Line:    value.Line,
			Column:  value.Column,
			Message: fmt.Sprintf("invalid openapi version format %q, expected major.minor.patch", value.Value),
			Cause:   err,
		}
	}
	return value.Value, ver, nil
}

// isVersionScalar accepts any non-null scalar, so an unquoted 3.1 counts.
func isVersionScalar(node *yaml.Node) bool {
	return node != nil && node.Kind == yaml.ScalarNode && node.ShortTag() != "!!null" && node.Value != ""
}

func unsupported(node *yaml.Node, field, raw, sourcePath string) error {
	return &oaserrors.UnsupportedVersionError{
		Path:    sourcePath,
		Version: raw,
		Field:   field,
		Line:    node.Line,
		Column:  node.Column,
	}
}

// detectFormat reports JSON when the first non-whitespace byte opens a JSON
// object or array.
func detectFormat(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

func defaultSourceName(method string, data []byte) string {
	return method + "." + string(detectFormat(data))
}

// issueCollector turns build reports into issues.
type issueCollector struct {
	file           string
	includeUnknown bool
	issues         []Issue
}

// Report implements low.Reporter.
func (c *issueCollector) Report(r low.Report) {
	if r.Kind != low.ReportShapeMismatch && r.Kind != low.ReportAliasBudget && !c.includeUnknown {
		return
	}
	c.issues = append(c.issues, newIssue(r, c.file))
}

func newIssue(r low.Report, file string) Issue {
	loc := low.LocationOf(r.Node)
	issue := issues.Issue{
		Kind:   r.Kind.String(),
		Object: r.Object,
		Field:  r.Key,
		Line:   loc.Line,
		Column: loc.Column,
		File:   file,
	}
	switch r.Kind {
	case low.ReportShapeMismatch:
		issue.Severity = SeverityWarning
		issue.Message = fmt.Sprintf("expected %s, found %s; value kept as invalid", expectedShape(r.Object), nodeKindName(r.Node))
	case low.ReportAliasBudget:
		issue.Severity = SeverityError
		issue.Message = fmt.Sprintf("alias expansion budget exhausted at *%s; this and later aliases were kept as null", r.Key)
	case low.ReportDroppedKey:
		issue.Severity = SeverityInfo
		issue.Message = fmt.Sprintf("key %q is not accepted by %s and was dropped", r.Key, r.Object)
	default:
		issue.Severity = SeverityInfo
		issue.Message = fmt.Sprintf("%q is not a field of %s", r.Key, r.Object)
	}
	return issue
}

func expectedShape(object string) string {
	switch object {
	case "map":
		return "a mapping"
	case "list":
		return "a sequence"
	default:
		return "a mapping for " + object
	}
}

func nodeKindName(node *yaml.Node) string {
	if node == nil {
		return "nothing"
	}
	switch node.Kind {
	case yaml.MappingNode:
		return "a mapping"
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.AliasNode:
		return "an alias"
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return "null"
		}
		return "a scalar"
	default:
		return "a document"
	}
}
