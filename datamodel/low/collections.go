package low

import "go.yaml.in/yaml/v4"

// Entry is one entry of a [Map].
type Entry[V any] struct {
	Key   KeySource[string]
	Value V
}

// Map is a pattern-keyed collection in source document order. Lookups are
// linear; the maps found in OpenAPI documents are small and order matters
// more than lookup speed for diagnostics.
type Map[V any] []Entry[V]

// Extensions holds specification extensions ("x-" keys) in document order.
type Extensions = Map[ValueSource[any]]

// Get returns the value of the first entry whose key equals key.
func (m Map[V]) Get(key string) (V, bool) {
	for _, e := range m {
		if e.Key.Value == key {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// Lookup returns the first entry whose key equals key, including its key node.
func (m Map[V]) Lookup(key string) (Entry[V], bool) {
	for _, e := range m {
		if e.Key.Value == key {
			return e, true
		}
	}
	return Entry[V]{}, false
}

// Has reports whether an entry with key exists.
func (m Map[V]) Has(key string) bool {
	_, ok := m.Lookup(key)
	return ok
}

// Keys returns the keys in document order.
func (m Map[V]) Keys() []string {
	keys := make([]string, 0, len(m))
	for _, e := range m {
		keys = append(keys, e.Key.Value)
	}
	return keys
}

// Len returns the number of entries.
func (m Map[V]) Len() int {
	return len(m)
}

// BuildMap builds a Map from a mapping node, applying build to every value.
// A node that is not a mapping yields the invalid arm.
func BuildMap[V any](node *yaml.Node, ctx *Context, build func(*yaml.Node, *Context) V) Result[Map[V]] {
	if !ctx.expand(node) {
		return unexpanded[Map[V]](node)
	}
	if !IsMapping(node) {
		return Mismatch[Map[V]](node, ctx, "map")
	}
	pairs := Pairs(node)
	m := make(Map[V], 0, len(pairs))
	for _, p := range pairs {
		m = append(m, Entry[V]{
			Key:   KeySource[string]{Value: ctx.DecodeKey(p.Key), KeyNode: p.Key},
			Value: build(p.Value, ctx),
		})
	}
	return Valid(m)
}

// BuildList builds a slice from a sequence node, applying build to every
// item. A node that is not a sequence yields the invalid arm.
func BuildList[V any](node *yaml.Node, ctx *Context, build func(*yaml.Node, *Context) V) Result[[]V] {
	if !ctx.expand(node) {
		return unexpanded[[]V](node)
	}
	if !IsSequence(node) {
		return Mismatch[[]V](node, ctx, "list")
	}
	items := Items(node)
	list := make([]V, 0, len(items))
	for _, item := range items {
		list = append(list, build(item, ctx))
	}
	return Valid(list)
}

// BuildValue decodes node into a ValueSource.
func BuildValue(node *yaml.Node, ctx *Context) ValueSource[any] {
	return ValueSource[any]{Value: ctx.Decode(node), ValueNode: node}
}

// BuildValueMap builds a Map of decoded values, as used for string-to-string
// maps such as a discriminator mapping or OAuth scopes.
func BuildValueMap(node *yaml.Node, ctx *Context) Result[Map[ValueSource[any]]] {
	return BuildMap(node, ctx, BuildValue)
}

// BuildValueList builds a slice of decoded values, each keeping its node.
func BuildValueList(node *yaml.Node, ctx *Context) Result[[]ValueSource[any]] {
	return BuildList(node, ctx, BuildValue)
}

// ListOf adapts an item builder into a builder for a sequence of such items.
func ListOf[V any](build func(*yaml.Node, *Context) V) func(*yaml.Node, *Context) Result[[]V] {
	return func(node *yaml.Node, ctx *Context) Result[[]V] {
		return BuildList(node, ctx, build)
	}
}

// MapOf adapts a value builder into a builder for a mapping of such values.
func MapOf[V any](build func(*yaml.Node, *Context) V) func(*yaml.Node, *Context) Result[Map[V]] {
	return func(node *yaml.Node, ctx *Context) Result[Map[V]] {
		return BuildMap(node, ctx, build)
	}
}
