package low

import "go.yaml.in/yaml/v4"

// Short tags of the YAML core schema that decoding and dispatch look at.
const (
	tagNull  = "!!null"
	tagBool  = "!!bool"
	tagStr   = "!!str"
	tagInt   = "!!int"
	tagFloat = "!!float"
)

// maxAliasHops bounds how many alias links resolve follows.
const maxAliasHops = 32

// Pair is one key/value entry of a mapping node.
type Pair struct {
	Key   *yaml.Node
	Value *yaml.Node
}

// resolve follows alias nodes to the node they name. The node passed to a
// builder is still what records keep as RootNode; resolve only decides the
// shape and the content that is iterated.
func resolve(node *yaml.Node) *yaml.Node {
	for hops := 0; node != nil && node.Kind == yaml.AliasNode; hops++ {
		if hops == maxAliasHops {
			return nil
		}
		node = node.Alias
	}
	return node
}

// IsMapping reports whether node is (or aliases) a mapping node.
func IsMapping(node *yaml.Node) bool {
	n := resolve(node)
	return n != nil && n.Kind == yaml.MappingNode
}

// IsSequence reports whether node is (or aliases) a sequence node.
func IsSequence(node *yaml.Node) bool {
	n := resolve(node)
	return n != nil && n.Kind == yaml.SequenceNode
}

// IsScalar reports whether node is (or aliases) a scalar node.
func IsScalar(node *yaml.Node) bool {
	n := resolve(node)
	return n != nil && n.Kind == yaml.ScalarNode
}

// Pairs returns the key/value entries of a mapping node in document order.
// It returns nil for any other kind of node. A trailing key without a value
// is ignored.
func Pairs(node *yaml.Node) []Pair {
	n := resolve(node)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	pairs := make([]Pair, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		pairs = append(pairs, Pair{Key: n.Content[i], Value: n.Content[i+1]})
	}
	return pairs
}

// Items returns the items of a sequence node in document order, or nil for
// any other kind of node.
func Items(node *yaml.Node) []*yaml.Node {
	n := resolve(node)
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil
	}
	return n.Content
}

// HasKey reports whether the mapping node contains key.
func HasKey(node *yaml.Node, key string) bool {
	for _, p := range Pairs(node) {
		if k := resolve(p.Key); k != nil && k.Kind == yaml.ScalarNode && k.Value == key {
			return true
		}
	}
	return false
}

func lineOf(node *yaml.Node) int {
	if node == nil {
		return 0
	}
	return node.Line
}

func columnOf(node *yaml.Node) int {
	if node == nil {
		return 0
	}
	return node.Column
}
