package low

import "go.yaml.in/yaml/v4"

// Decode converts node into a plain Go value. Decoding is total: it never
// fails and never panics.
//
//   - nil node and !!null scalars decode to nil
//   - !!bool, !!int and !!float scalars decode to bool, int (int64/uint64 for
//     large values) and float64; a scalar the YAML library cannot decode under
//     its tag falls back to its source text
//   - every other scalar (strings, timestamps, binary, custom tags) decodes to
//     its source text
//   - sequences decode to []any and mappings to map[string]any, recursively
//   - aliases decode to the value of the node they name, up to the context's
//     alias depth and expansion budget; past either limit they decode to nil
//   - document nodes decode to their content
//
// Opaque fields such as "example" or "default" are stored exactly as Decode
// returns them.
func (c *Context) Decode(node *yaml.Node) any {
	return c.decode(node, 0)
}

func (c *Context) decode(node *yaml.Node, aliases int) any {
	if node == nil {
		return nil
	}
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil
		}
		return c.decode(node.Content[0], aliases)
	case yaml.AliasNode:
		if aliases >= c.aliasLimit() {
			c.logger().Debug("alias depth exceeded", "anchor", node.Value, "line", node.Line, "column", node.Column)
			return nil
		}
		if !c.expand(node) {
			return nil
		}
		return c.decode(node.Alias, aliases+1)
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			out = append(out, c.decode(item, aliases))
		}
		return out
	case yaml.MappingNode:
		out := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			out[c.DecodeKey(node.Content[i])] = c.decode(node.Content[i+1], aliases)
		}
		return out
	case yaml.ScalarNode:
		return decodeScalar(node)
	default:
		return nil
	}
}

func decodeScalar(node *yaml.Node) any {
	switch node.ShortTag() {
	case tagNull:
		return nil
	case tagBool, tagInt, tagFloat:
		var v any
		if err := node.Decode(&v); err != nil {
			return node.Value
		}
		return v
	default:
		return node.Value
	}
}

// DecodeKey returns the text of a mapping key node. Aliased keys are followed.
// Keys that are not scalars (complex YAML keys) decode to "".
func (c *Context) DecodeKey(node *yaml.Node) string {
	n := resolve(node)
	if n == nil || n.Kind != yaml.ScalarNode {
		return ""
	}
	return n.Value
}
