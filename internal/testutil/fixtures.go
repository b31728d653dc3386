// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"strconv"
	"strings"
	"testing"

	"go.yaml.in/yaml/v4"
)

// Compose parses src as YAML (or JSON) and returns the root content node,
// with the document node unwrapped. Leading indentation common to all
// non-blank lines is removed first, so fixtures can be indented with the
// test code. The test fails immediately if src does not parse.
func Compose(t *testing.T, src string) *yaml.Node {
	t.Helper()

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(Dedent(src)), &doc); err != nil {
		t.Fatalf("Failed to compose YAML fixture: %v", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		t.Fatalf("YAML fixture is empty")
	}
	return doc.Content[0]
}

// Value returns the value node stored under key in the mapping node, failing
// the test if node is not a mapping or has no such key.
func Value(t *testing.T, node *yaml.Node, key string) *yaml.Node {
	t.Helper()

	k, v := pair(node, key)
	if k == nil {
		t.Fatalf("Key %q not found in fixture", key)
	}
	return v
}

// Key returns the key node for key in the mapping node, failing the test if
// there is none.
func Key(t *testing.T, node *yaml.Node, key string) *yaml.Node {
	t.Helper()

	k, _ := pair(node, key)
	if k == nil {
		t.Fatalf("Key %q not found in fixture", key)
	}
	return k
}

func pair(node *yaml.Node, key string) (*yaml.Node, *yaml.Node) {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i], node.Content[i+1]
		}
	}
	return nil, nil
}

// Dedent removes the longest whitespace prefix shared by every non-blank line
// of s, and drops a single leading newline. Tabs and spaces are both treated
// as indentation, so fixtures may be indented with the surrounding Go code.
func Dedent(s string) string {
	s = strings.TrimPrefix(s, "\n")
	lines := strings.Split(s, "\n")

	prefix := ""
	found := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found {
			prefix, found = indent, true
			continue
		}
		for !strings.HasPrefix(indent, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	if prefix == "" {
		return s
	}
	for i, line := range lines {
		if strings.HasPrefix(line, prefix) {
			lines[i] = line[len(prefix):]
		} else {
			lines[i] = strings.TrimLeft(line, " \t")
		}
	}
	return strings.Join(lines, "\n")
}

// RepeatedAliases returns a YAML mapping whose entries l0..l<levels-1> are
// sequences of fanout items. l0 holds scalars and every later level repeats
// an alias to the level before it, so fully expanding the last entry visits
// fanout^levels scalars.
func RepeatedAliases(levels, fanout int) string {
	var b strings.Builder
	for level := range levels {
		item := "x"
		if level > 0 {
			item = "*l" + strconv.Itoa(level-1)
		}
		items := make([]string, fanout)
		for i := range items {
			items[i] = item
		}
		name := "l" + strconv.Itoa(level)
		b.WriteString(name + ": &" + name + " [" + strings.Join(items, ", ") + "]\n")
	}
	return b.String()
}
