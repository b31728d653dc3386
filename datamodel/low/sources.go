package low

import (
	"math"

	"go.yaml.in/yaml/v4"
)

// KeySource is a decoded mapping key paired with the node it was read from.
// It is used for extension keys, unknown keys and pattern-keyed map entries.
type KeySource[T any] struct {
	Value   T
	KeyNode *yaml.Node
}

// ValueSource is a decoded value paired with the node it was read from.
//
// ValueSource[any] doubles as the payload of the invalid arm of a [Result]:
// when a builder receives a node of the wrong shape, the decoded node and the
// node itself are preserved here.
type ValueSource[T any] struct {
	Value     T
	ValueNode *yaml.Node
}

// FieldSource is the value of one declared field of an object, together with
// the node of its key and the node of its value.
type FieldSource[T any] struct {
	Value     T
	KeyNode   *yaml.Node
	ValueNode *yaml.Node
}

// NewFieldSource returns a FieldSource for value found under keyNode/valueNode.
func NewFieldSource[T any](keyNode, valueNode *yaml.Node, value T) *FieldSource[T] {
	return &FieldSource[T]{Value: value, KeyNode: keyNode, ValueNode: valueNode}
}

// NewValueSource returns a ValueSource for value found at node.
func NewValueSource[T any](node *yaml.Node, value T) ValueSource[T] {
	return ValueSource[T]{Value: value, ValueNode: node}
}

// As returns the field's value as T. The second result is false when the
// field is absent or holds a value of another type. The stored value is
// never converted.
func As[T any](f *FieldSource[any]) (T, bool) {
	var zero T
	if f == nil {
		return zero, false
	}
	v, ok := f.Value.(T)
	return v, ok
}

// String returns the field's value if it is a string.
func String(f *FieldSource[any]) (string, bool) {
	return As[string](f)
}

// Bool returns the field's value if it is a boolean.
func Bool(f *FieldSource[any]) (bool, bool) {
	return As[bool](f)
}

// Int returns the field's value if it is an integer that fits in an int.
func Int(f *FieldSource[any]) (int, bool) {
	if f == nil {
		return 0, false
	}
	switch n := f.Value.(type) {
	case int:
		return n, true
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// Float returns the field's value as a float64 if it is any numeric type.
func Float(f *FieldSource[any]) (float64, bool) {
	if f == nil {
		return 0, false
	}
	switch n := f.Value.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
