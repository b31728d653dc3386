package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestCompose(t *testing.T) {
	t.Run("unwraps document node", func(t *testing.T) {
		node := Compose(t, `
			name: id
			in: query
		`)
		require.Equal(t, yaml.MappingNode, node.Kind)
		assert.Len(t, node.Content, 4)
		assert.Equal(t, 1, node.Line)
		assert.Equal(t, 1, node.Column)
	})

	t.Run("scalar document", func(t *testing.T) {
		node := Compose(t, "42")
		assert.Equal(t, yaml.ScalarNode, node.Kind)
		assert.Equal(t, "!!int", node.ShortTag())
	})

	t.Run("json input", func(t *testing.T) {
		node := Compose(t, `{"a": [1, 2]}`)
		require.Equal(t, yaml.MappingNode, node.Kind)
		assert.Equal(t, yaml.SequenceNode, node.Content[1].Kind)
	})
}

func TestValueAndKey(t *testing.T) {
	node := Compose(t, `
		first: 1
		second:
		  nested: true
	`)

	v := Value(t, node, "second")
	assert.Equal(t, yaml.MappingNode, v.Kind)
	assert.Same(t, node.Content[3], v)

	k := Key(t, node, "second")
	assert.Same(t, node.Content[2], k)
	assert.Equal(t, 2, k.Line)
}

func TestDedent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no indent", "a: 1\nb: 2", "a: 1\nb: 2"},
		{"common indent", "\n    a: 1\n      b: 2\n", "a: 1\n  b: 2\n"},
		{"blank lines kept", "  a: 1\n\n  b: 2", "a: 1\n\nb: 2"},
		{"tab indent", "\t\ta: 1\n\t\t  b: 2", "a: 1\n  b: 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dedent(tt.in))
		})
	}
}

func TestRepeatedAliases(t *testing.T) {
	src := RepeatedAliases(3, 2)
	assert.Equal(t, "l0: &l0 [x, x]\nl1: &l1 [*l0, *l0]\nl2: &l2 [*l1, *l1]\n", src)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(src), &decoded))
	assert.Equal(t, []any{[]any{"x", "x"}, []any{"x", "x"}}, decoded["l1"])
}
