package low

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jentic/jentic-openapi-tools-sub001/internal/testutil"
)

func TestMap(t *testing.T) {
	node := testutil.Compose(t, `
		zebra: 1
		apple: 2
		mango: 3
	`)
	res := BuildValueMap(node, nil)
	require.True(t, res.IsValid())
	m := res.Object

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"zebra", "apple", "mango"}, m.Keys())
	assert.True(t, m.Has("apple"))
	assert.False(t, m.Has("pear"))

	v, ok := m.Get("mango")
	require.True(t, ok)
	assert.Equal(t, 3, v.Value)
	assert.Same(t, node.Content[5], v.ValueNode)

	e, ok := m.Lookup("zebra")
	require.True(t, ok)
	assert.Same(t, node.Content[0], e.Key.KeyNode)

	_, ok = m.Get("pear")
	assert.False(t, ok)
}

func TestMap_NilIsEmpty(t *testing.T) {
	var m Map[int]
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Keys())
	_, ok := m.Get("x")
	assert.False(t, ok)
}

func TestBuildMap_Invalid(t *testing.T) {
	var reports []Report
	ctx := NewContext(WithReporter(ReporterFunc(func(r Report) { reports = append(reports, r) })))

	node := testutil.Compose(t, `[a]`)
	res := BuildValueMap(node, ctx)
	assert.False(t, res.IsValid())
	assert.Equal(t, []any{"a"}, res.Invalid.Value)

	require.Len(t, reports, 1)
	assert.Equal(t, "map", reports[0].Object)
}

func TestBuildList(t *testing.T) {
	node := testutil.Compose(t, `
		- name: MIT
		- 42
	`)
	res := BuildList(node, nil, buildTestLicense)
	require.True(t, res.IsValid())
	require.Len(t, res.Object, 2)
	assert.True(t, res.Object[0].IsValid())
	assert.Equal(t, "MIT", res.Object[0].Object.Name.Value)
	assert.False(t, res.Object[1].IsValid())
	assert.Equal(t, 42, res.Object[1].Invalid.Value)
}

func TestBuildList_Invalid(t *testing.T) {
	node := testutil.Compose(t, `a: b`)
	res := BuildValueList(node, nil)
	assert.False(t, res.IsValid())
	assert.Equal(t, map[string]any{"a": "b"}, res.Invalid.Value)
	assert.Same(t, node, res.Invalid.ValueNode)
}

func TestBuildList_Empty(t *testing.T) {
	res := BuildValueList(testutil.Compose(t, `[]`), nil)
	require.True(t, res.IsValid())
	assert.NotNil(t, res.Object)
	assert.Empty(t, res.Object)
}
