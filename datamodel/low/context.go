package low

import "go.yaml.in/yaml/v4"

// DefaultMaxAliasDepth is the default limit on nested alias expansion during
// [Context.Decode].
const DefaultMaxAliasDepth = 64

// DefaultMaxAliasExpansion is the default number of nodes a single build may
// visit through aliases. It stops documents that repeat an alias many times
// from expanding exponentially.
const DefaultMaxAliasExpansion = 1 << 20

// ReportKind classifies a [Report].
type ReportKind int

const (
	// ReportUnknownField is sent for a key that is neither declared nor an
	// extension on the object being built.
	ReportUnknownField ReportKind = iota
	// ReportShapeMismatch is sent when a node does not have the shape the
	// object or collection requires. The node is kept as the invalid arm.
	ReportShapeMismatch
	// ReportDroppedKey is sent when a pattern-keyed collection rejects a key,
	// for example a Paths key that does not start with "/".
	ReportDroppedKey
	// ReportAliasBudget is sent once per Context, at the first alias that is
	// left unexpanded because the expansion budget is spent. Key holds the
	// anchor name.
	ReportAliasBudget
)

// String returns a short name for the kind.
func (k ReportKind) String() string {
	switch k {
	case ReportUnknownField:
		return "unknown-field"
	case ReportShapeMismatch:
		return "shape-mismatch"
	case ReportDroppedKey:
		return "dropped-key"
	case ReportAliasBudget:
		return "alias-budget"
	default:
		return "unknown"
	}
}

// Report describes one non-fatal observation made while building.
type Report struct {
	Kind ReportKind
	// Object is the name of the object type being built, such as "Info", or
	// "map"/"list" for collection helpers. Alias budget reports use "alias".
	Object string
	// Key is the offending key. It is empty for shape mismatches.
	Key string
	// Node is the key node for key reports and the value node for shape
	// mismatches.
	Node *yaml.Node
}

// Reporter receives reports during a build. Reports never change what a
// builder returns. Reporter implementations are called synchronously from the
// building goroutine.
type Reporter interface {
	Report(Report)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Report)

// Report implements Reporter.
func (f ReporterFunc) Report(r Report) { f(r) }

// Context carries the per-build configuration shared by every builder: value
// decoding, logging and the report sink.
//
// A Context counts the nodes expanded through aliases, so it is not safe for
// concurrent use. Use one Context per top-level build.
// A nil *Context is valid and behaves like NewContext(), except that it does
// not limit alias expansion.
type Context struct {
	log               Logger
	reporter          Reporter
	maxAliasDepth     int
	maxAliasExpansion int

	expanded  int
	exhausted bool
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithLogger sets the logger used for debug output. A nil logger is ignored.
func WithLogger(l Logger) ContextOption {
	return func(c *Context) {
		if l != nil {
			c.log = l
		}
	}
}

// WithReporter sets the sink for build reports.
func WithReporter(r Reporter) ContextOption {
	return func(c *Context) {
		c.reporter = r
	}
}

// WithMaxAliasDepth bounds how many nested aliases Decode expands before it
// stops and decodes the remaining alias as nil. Values below 1 are ignored.
func WithMaxAliasDepth(depth int) ContextOption {
	return func(c *Context) {
		if depth > 0 {
			c.maxAliasDepth = depth
		}
	}
}

// WithMaxAliasExpansion bounds how many nodes a build visits through aliases.
// Once the budget is spent every further alias decodes as nil and builders
// return their invalid arm for it. Values below 1 are ignored.
func WithMaxAliasExpansion(nodes int) ContextOption {
	return func(c *Context) {
		if nodes > 0 {
			c.maxAliasExpansion = nodes
		}
	}
}

// NewContext returns a Context configured by opts.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{
		log:               NopLogger{},
		maxAliasDepth:     DefaultMaxAliasDepth,
		maxAliasExpansion: DefaultMaxAliasExpansion,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Context) logger() Logger {
	if c == nil || c.log == nil {
		return NopLogger{}
	}
	return c.log
}

func (c *Context) report(r Report) {
	if c == nil || c.reporter == nil {
		return
	}
	c.reporter.Report(r)
}

func (c *Context) aliasLimit() int {
	if c == nil || c.maxAliasDepth <= 0 {
		return DefaultMaxAliasDepth
	}
	return c.maxAliasDepth
}

// expand charges the alias budget for node and reports whether node may be
// expanded. Nodes that are not aliases are always expanded. The charge is the
// size of the aliased subtree; aliases nested inside it are charged when they
// are reached.
func (c *Context) expand(node *yaml.Node) bool {
	if node == nil || node.Kind != yaml.AliasNode || c == nil {
		return true
	}
	if c.exhausted {
		return false
	}
	limit := c.maxAliasExpansion
	if limit <= 0 {
		limit = DefaultMaxAliasExpansion
	}
	c.expanded += countNodes(node.Alias)
	if c.expanded <= limit {
		return true
	}
	c.exhausted = true
	c.report(Report{Kind: ReportAliasBudget, Object: "alias", Key: node.Value, Node: node})
	c.logger().Warn("alias expansion budget exhausted", "anchor", node.Value, "limit", limit, "line", node.Line, "column", node.Column)
	return false
}

// countNodes returns the number of nodes in the tree rooted at node. Aliases
// count as one node and are not followed.
func countNodes(node *yaml.Node) int {
	if node == nil {
		return 0
	}
	n := 1
	if node.Kind == yaml.AliasNode {
		return n
	}
	for _, child := range node.Content {
		n += countNodes(child)
	}
	return n
}
