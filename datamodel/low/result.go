package low

import "go.yaml.in/yaml/v4"

// Result is returned by every builder. When the input node has the expected
// shape, Object holds the built value and Invalid is nil. Otherwise Invalid
// holds the decoded node and its location, and Object is the zero value.
type Result[T any] struct {
	Object  T
	Invalid *ValueSource[any]
}

// Valid wraps a successfully built value.
func Valid[T any](v T) Result[T] {
	return Result[T]{Object: v}
}

// Mismatch returns the invalid arm for node, which did not have the shape
// object requires. The mismatch is reported through the context's Reporter.
func Mismatch[T any](node *yaml.Node, ctx *Context, object string) Result[T] {
	ctx.report(Report{Kind: ReportShapeMismatch, Object: object, Node: node})
	ctx.logger().Debug("shape mismatch", "object", object, "line", lineOf(node), "column", columnOf(node))
	return Result[T]{Invalid: &ValueSource[any]{Value: ctx.Decode(node), ValueNode: node}}
}

// unexpanded returns the invalid arm for an alias that the context's
// expansion budget no longer allows. The budget report has already been sent.
func unexpanded[T any](node *yaml.Node) Result[T] {
	return Result[T]{Invalid: &ValueSource[any]{ValueNode: node}}
}

// IsValid reports whether the node had the expected shape.
func (r Result[T]) IsValid() bool {
	return r.Invalid == nil
}

// Get returns the built value and whether the node had the expected shape.
func (r Result[T]) Get() (T, bool) {
	return r.Object, r.Invalid == nil
}

// Kind tags the arm held by an [OrReference].
type Kind uint8

const (
	// KindInvalid marks a node that was neither the object nor a reference.
	KindInvalid Kind = iota
	// KindObject marks an inline object.
	KindObject
	// KindReference marks a Reference Object.
	KindReference
)

// String returns the name of the arm.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindReference:
		return "reference"
	default:
		return "invalid"
	}
}

// OrReference is the tagged union for fields that hold either an inline
// object T or a Reference Object R. Exactly the arm named by Kind is set.
type OrReference[T, R any] struct {
	Kind      Kind
	Object    T
	Reference R
	Invalid   *ValueSource[any]
}

// IsObject reports whether the union holds an inline object.
func (o OrReference[T, R]) IsObject() bool {
	return o.Kind == KindObject
}

// IsReference reports whether the union holds a Reference Object.
func (o OrReference[T, R]) IsReference() bool {
	return o.Kind == KindReference
}

// IsInvalid reports whether the node was neither an object nor a reference.
func (o OrReference[T, R]) IsInvalid() bool {
	return o.Kind == KindInvalid
}

// BoolOr holds either a boolean literal or a value built from a non-boolean
// node. It models positions such as additionalProperties where a schema may
// be replaced by true or false.
type BoolOr[T any] struct {
	Bool  *bool
	Other T
}

// IsBool reports whether the node was a boolean literal.
func (b BoolOr[T]) IsBool() bool {
	return b.Bool != nil
}
