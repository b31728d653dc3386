package low

import (
	"strings"

	"go.yaml.in/yaml/v4"
)

// RefKey is the key that turns a mapping into a Reference Object.
const RefKey = "$ref"

// BuildOrReference builds node as either a reference or an inline object.
// A mapping that contains key is built with buildRef, whatever other keys it
// has. Everything else, including non-mappings, goes to build; when build
// returns its invalid arm the union is KindInvalid and carries it.
func BuildOrReference[T, R any](
	node *yaml.Node,
	ctx *Context,
	key string,
	buildRef func(*yaml.Node, *Context) Result[R],
	build func(*yaml.Node, *Context) Result[T],
) OrReference[T, R] {
	if IsMapping(node) && HasKey(node, key) {
		ref := buildRef(node, ctx)
		if !ref.IsValid() {
			return OrReference[T, R]{Kind: KindInvalid, Invalid: ref.Invalid}
		}
		return OrReference[T, R]{Kind: KindReference, Reference: ref.Object}
	}
	obj := build(node, ctx)
	if !obj.IsValid() {
		return OrReference[T, R]{Kind: KindInvalid, Invalid: obj.Invalid}
	}
	return OrReference[T, R]{Kind: KindObject, Object: obj.Object}
}

// BuildBoolOr builds node as a boolean literal when it is a !!bool scalar and
// with build otherwise.
func BuildBoolOr[T any](node *yaml.Node, ctx *Context, build func(*yaml.Node, *Context) T) BoolOr[T] {
	if n := resolve(node); n != nil && n.Kind == yaml.ScalarNode && n.ShortTag() == tagBool {
		if b, ok := ctx.Decode(n).(bool); ok {
			return BoolOr[T]{Bool: &b}
		}
	}
	return BoolOr[T]{Other: build(node, ctx)}
}

// IsPathTemplate admits keys that begin with "/", as Paths requires.
func IsPathTemplate(key string, keyNode *yaml.Node) bool {
	return IsStringKey(key, keyNode) && strings.HasPrefix(key, "/")
}

// IsStringKey admits scalar keys tagged as strings. Numeric or boolean keys
// such as 200 or true are rejected.
func IsStringKey(_ string, keyNode *yaml.Node) bool {
	n := resolve(keyNode)
	return n != nil && n.Kind == yaml.ScalarNode && n.ShortTag() == tagStr
}

// AnyKey admits every scalar key. Responses and Callback use it: status codes
// such as 200 are legal even when written unquoted.
func AnyKey(_ string, keyNode *yaml.Node) bool {
	return IsScalar(keyNode)
}
