package low

import "go.yaml.in/yaml/v4"

// FieldSet describes which keys an object type accepts. It is the read-only
// view of a [Fields] table used by classification and the unknown-field query.
type FieldSet interface {
	// Name is the object type name, such as "Info".
	Name() string
	// Declares reports whether key is a declared field.
	Declares(key string) bool
	// ExtensionBearing reports whether "x-" keys are collected as extensions.
	ExtensionBearing() bool
	// AcceptsPattern reports whether key is admitted as a patterned entry.
	AcceptsPattern(key string, keyNode *yaml.Node) bool
	// Keys returns the declared keys in table order.
	Keys() []string
}

// KeyPredicate decides whether a dynamic key belongs to a pattern-keyed
// collection.
type KeyPredicate func(key string, keyNode *yaml.Node) bool

type fieldRule[T any] struct {
	key    string
	scalar func(rec *T, f *FieldSource[any])
	nested func(rec *T, keyNode, valueNode *yaml.Node, ctx *Context)
}

type patternRule[T any] struct {
	accept KeyPredicate
	add    func(rec *T, key KeySource[string], valueNode *yaml.Node, ctx *Context)
}

// Fields is the field table of one object type T. A table lists every
// declared source key together with how its value is stored on the record:
// scalar fields receive the generically decoded value, nested fields receive
// their key and value nodes and build whatever they hold.
//
// Tables are built once, usually in an init function, and are read-only
// afterwards:
//
//	contactFields = low.NewFields[Contact]("Contact").
//		Scalar("name", func(c *Contact, f *low.FieldSource[any]) { c.Name = f }).
//		Extensions(func(c *Contact, ext low.Extensions) { c.Extensions = ext })
type Fields[T any] struct {
	name       string
	rules      []fieldRule[T]
	index      map[string]int
	extensions func(rec *T, ext Extensions)
	pattern    *patternRule[T]
}

// NewFields returns an empty table for the object type called name.
func NewFields[T any](name string) *Fields[T] {
	return &Fields[T]{name: name, index: make(map[string]int)}
}

// Scalar declares key as a field holding a decoded scalar or opaque value.
func (f *Fields[T]) Scalar(key string, set func(rec *T, f *FieldSource[any])) *Fields[T] {
	return f.add(fieldRule[T]{key: key, scalar: set})
}

// Nested declares key as a field whose value is built by build, typically a
// nested record, union, list or map.
func (f *Fields[T]) Nested(key string, build func(rec *T, keyNode, valueNode *yaml.Node, ctx *Context)) *Fields[T] {
	return f.add(fieldRule[T]{key: key, nested: build})
}

// Extensions marks the type as extension-bearing. set receives the collected
// extensions once the mapping has been read; it is called with an empty,
// non-nil map when there are none.
func (f *Fields[T]) Extensions(set func(rec *T, ext Extensions)) *Fields[T] {
	f.extensions = set
	return f
}

// Patterned admits keys that are neither declared nor extensions when accept
// returns true. add is called once per admitted key in document order.
func (f *Fields[T]) Patterned(accept KeyPredicate, add func(rec *T, key KeySource[string], valueNode *yaml.Node, ctx *Context)) *Fields[T] {
	f.pattern = &patternRule[T]{accept: accept, add: add}
	return f
}

func (f *Fields[T]) add(rule fieldRule[T]) *Fields[T] {
	if i, ok := f.index[rule.key]; ok {
		f.rules[i] = rule
		return f
	}
	f.index[rule.key] = len(f.rules)
	f.rules = append(f.rules, rule)
	return f
}

// Name implements FieldSet.
func (f *Fields[T]) Name() string { return f.name }

// Declares implements FieldSet.
func (f *Fields[T]) Declares(key string) bool {
	_, ok := f.index[key]
	return ok
}

// ExtensionBearing implements FieldSet.
func (f *Fields[T]) ExtensionBearing() bool { return f.extensions != nil }

// AcceptsPattern implements FieldSet.
func (f *Fields[T]) AcceptsPattern(key string, keyNode *yaml.Node) bool {
	return f.pattern != nil && f.pattern.accept(key, keyNode)
}

// HasPattern reports whether the table has a patterned-key rule.
func (f *Fields[T]) HasPattern() bool { return f.pattern != nil }

// Keys implements FieldSet.
func (f *Fields[T]) Keys() []string {
	keys := make([]string, 0, len(f.rules))
	for _, r := range f.rules {
		keys = append(keys, r.key)
	}
	return keys
}

func (f *Fields[T]) apply(rec *T, keyNode, valueNode *yaml.Node, key string, ctx *Context) {
	rule := f.rules[f.index[key]]
	if rule.nested != nil {
		rule.nested(rec, keyNode, valueNode, ctx)
		return
	}
	rule.scalar(rec, NewFieldSource(keyNode, valueNode, ctx.Decode(valueNode)))
}

var _ FieldSet = (*Fields[struct{}])(nil)

// Field returns a nested rule that builds the value node with build and
// stores the result on the record with set:
//
//	Nested("contact", low.Field(BuildContact, func(i *Info, f *low.FieldSource[low.Result[*Contact]]) {
//		i.Contact = f
//	}))
func Field[T, V any](build func(*yaml.Node, *Context) V, set func(rec *T, f *FieldSource[V])) func(*T, *yaml.Node, *yaml.Node, *Context) {
	return func(rec *T, keyNode, valueNode *yaml.Node, ctx *Context) {
		set(rec, NewFieldSource(keyNode, valueNode, build(valueNode, ctx)))
	}
}
