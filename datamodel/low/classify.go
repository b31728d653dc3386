package low

import (
	"strings"

	"go.yaml.in/yaml/v4"
)

// ExtensionPrefix is the prefix of specification extension keys.
const ExtensionPrefix = "x-"

// IsExtensionKey reports whether key has the extension prefix.
func IsExtensionKey(key string) bool {
	return strings.HasPrefix(key, ExtensionPrefix)
}

// KeyClass is the classification of one mapping key.
type KeyClass int

const (
	// KeyUnknown is a key that is neither declared, an extension nor an
	// admitted patterned entry. Non-scalar keys are always unknown.
	KeyUnknown KeyClass = iota
	// KeyDeclared is a key named by the field table.
	KeyDeclared
	// KeyExtension is an "x-" key on an extension-bearing object.
	KeyExtension
	// KeyPatterned is a dynamic key admitted by the table's pattern rule.
	KeyPatterned
)

// ClassifyKey returns the class of keyNode under fs together with its text.
// A declared name wins over the extension prefix, and the extension prefix
// wins over a pattern rule.
func ClassifyKey(fs FieldSet, keyNode *yaml.Node, ctx *Context) (string, KeyClass) {
	if !IsScalar(keyNode) {
		return "", KeyUnknown
	}
	key := ctx.DecodeKey(keyNode)
	switch {
	case fs.Declares(key):
		return key, KeyDeclared
	case fs.ExtensionBearing() && IsExtensionKey(key):
		return key, KeyExtension
	case fs.AcceptsPattern(key, keyNode):
		return key, KeyPatterned
	default:
		return key, KeyUnknown
	}
}

// Classification partitions the keys of a mapping. Every key appears in
// exactly one of the three lists, in document order. Patterned entries are
// listed as declared.
type Classification struct {
	Declared   []KeySource[string]
	Extensions []KeySource[string]
	Unknown    []KeySource[string]
}

// Len returns the total number of classified keys.
func (c *Classification) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Declared) + len(c.Extensions) + len(c.Unknown)
}

// Classify partitions the keys of node under fs. It returns nil when node is
// not a mapping.
func Classify(node *yaml.Node, fs FieldSet, ctx *Context) *Classification {
	if !IsMapping(node) {
		return nil
	}
	c := &Classification{}
	for _, p := range Pairs(node) {
		key, class := ClassifyKey(fs, p.Key, ctx)
		ks := KeySource[string]{Value: key, KeyNode: p.Key}
		switch class {
		case KeyDeclared, KeyPatterned:
			c.Declared = append(c.Declared, ks)
		case KeyExtension:
			c.Extensions = append(c.Extensions, ks)
		default:
			c.Unknown = append(c.Unknown, ks)
		}
	}
	return c
}

// ExtractExtensions returns every "x-" key of node with its decoded value, in
// document order, independent of any field table. It returns nil when node is
// not a mapping and an empty map when there are no extensions.
func ExtractExtensions(node *yaml.Node, ctx *Context) Extensions {
	if !IsMapping(node) {
		return nil
	}
	ext := Extensions{}
	for _, p := range Pairs(node) {
		if !IsScalar(p.Key) {
			continue
		}
		if key := ctx.DecodeKey(p.Key); IsExtensionKey(key) {
			ext = append(ext, Entry[ValueSource[any]]{
				Key:   KeySource[string]{Value: key, KeyNode: p.Key},
				Value: BuildValue(p.Value, ctx),
			})
		}
	}
	return ext
}

// ExtractUnknownFields returns the keys of node that fs classifies as
// unknown, with their decoded values, in document order. Linters use it to
// flag typos and fields from another OpenAPI version. It returns nil when
// node is not a mapping.
func ExtractUnknownFields(node *yaml.Node, fs FieldSet, ctx *Context) Map[ValueSource[any]] {
	if !IsMapping(node) {
		return nil
	}
	unknown := Map[ValueSource[any]]{}
	for _, p := range Pairs(node) {
		key, class := ClassifyKey(fs, p.Key, ctx)
		if class != KeyUnknown {
			continue
		}
		unknown = append(unknown, Entry[ValueSource[any]]{
			Key:   KeySource[string]{Value: key, KeyNode: p.Key},
			Value: BuildValue(p.Value, ctx),
		})
	}
	return unknown
}
