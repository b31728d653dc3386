package low

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/jentic/jentic-openapi-tools-sub001/internal/testutil"
)

type testXField struct {
	RootNode   *yaml.Node
	XRate      *FieldSource[any]
	Extensions Extensions
}

func TestClassify_DeclaredBeatsExtensionPrefix(t *testing.T) {
	fields := NewFields[testXField]("XField").
		Scalar("x-rate", func(r *testXField, f *FieldSource[any]) { r.XRate = f }).
		Extensions(func(r *testXField, ext Extensions) { r.Extensions = ext })

	node := testutil.Compose(t, `
		x-rate: 10
		x-other: 1
	`)
	c := Classify(node, fields, nil)
	require.NotNil(t, c)
	assert.Equal(t, []string{"x-rate"}, keysOf(c.Declared))
	assert.Equal(t, []string{"x-other"}, keysOf(c.Extensions))
	assert.Empty(t, c.Unknown)

	res := BuildModel(node, nil, fields, func(root *yaml.Node) *testXField { return &testXField{RootNode: root} })
	require.True(t, res.IsValid())
	assert.Equal(t, 10, res.Object.XRate.Value)
	assert.Equal(t, []string{"x-other"}, res.Object.Extensions.Keys())
}

func TestClassify_TotalAndDisjoint(t *testing.T) {
	tests := []struct {
		name   string
		fields FieldSet
		src    string
	}{
		{"license", testLicenseFields, `
			name: n
			x-a: 1
			typo: 2
			url: u
			x-b: 3
		`},
		{"reference", testRefFields, `
			$ref: r
			x-a: 1
			summary: s
		`},
		{"paths", testPathsFields, `
			/a: 1
			b: 2
			x-c: 3
			404: 4
			? {complex: key}
			: 5
		`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := testutil.Compose(t, tt.src)
			c := Classify(node, tt.fields, nil)
			require.NotNil(t, c)
			assert.Equal(t, len(node.Content)/2, c.Len())

			seen := make(map[*yaml.Node]int)
			for _, group := range [][]KeySource[string]{c.Declared, c.Extensions, c.Unknown} {
				for _, k := range group {
					seen[k.KeyNode]++
				}
			}
			for _, p := range Pairs(node) {
				assert.Equal(t, 1, seen[p.Key], "key at %d:%d", p.Key.Line, p.Key.Column)
			}
		})
	}
}

func TestClassify_PatternedCountsAsDeclared(t *testing.T) {
	node := testutil.Compose(t, `
		/pets: 1
		x-ext: 2
		pets: 3
	`)
	c := Classify(node, testPathsFields, nil)
	assert.Equal(t, []string{"/pets"}, keysOf(c.Declared))
	assert.Equal(t, []string{"x-ext"}, keysOf(c.Extensions))
	assert.Equal(t, []string{"pets"}, keysOf(c.Unknown))
}

func TestClassify_NonMapping(t *testing.T) {
	node := testutil.Compose(t, `scalar`)
	assert.Nil(t, Classify(node, testLicenseFields, nil))
	assert.Nil(t, ExtractExtensions(node, nil))
	assert.Nil(t, ExtractUnknownFields(node, testLicenseFields, nil))
	assert.Equal(t, 0, (*Classification)(nil).Len())
}

func TestExtractExtensions(t *testing.T) {
	node := testutil.Compose(t, `
		name: id
		x-custom: value
		x-internal: true
		X-Upper: no
	`)
	ext := ExtractExtensions(node, nil)
	assert.Equal(t, []string{"x-custom", "x-internal"}, ext.Keys())
	v, _ := ext.Get("x-internal")
	assert.Equal(t, true, v.Value)

	empty := ExtractExtensions(testutil.Compose(t, `a: 1`), nil)
	assert.NotNil(t, empty)
	assert.Equal(t, 0, empty.Len())
}

func TestIsExtensionKey(t *testing.T) {
	assert.True(t, IsExtensionKey("x-foo"))
	assert.True(t, IsExtensionKey("x-"))
	assert.False(t, IsExtensionKey("X-foo"))
	assert.False(t, IsExtensionKey("foo-x-"))
}

func TestFields_Metadata(t *testing.T) {
	assert.Equal(t, "License", testLicenseFields.Name())
	assert.Equal(t, []string{"name", "url"}, testLicenseFields.Keys())
	assert.True(t, testLicenseFields.Declares("url"))
	assert.False(t, testLicenseFields.Declares("URL"))
	assert.True(t, testLicenseFields.ExtensionBearing())
	assert.False(t, testRefFields.ExtensionBearing())
	assert.False(t, testLicenseFields.HasPattern())
	assert.True(t, testPathsFields.HasPattern())
	assert.True(t, testPathsFields.AcceptsPattern("/a", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "/a"}))
	assert.False(t, testLicenseFields.AcceptsPattern("/a", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "/a"}))
}

func TestFields_RedeclareReplaces(t *testing.T) {
	var got string
	fields := NewFields[testLicense]("License").
		Scalar("name", func(l *testLicense, f *FieldSource[any]) { got = "first" }).
		Scalar("url", func(l *testLicense, f *FieldSource[any]) {}).
		Scalar("name", func(l *testLicense, f *FieldSource[any]) { got = "second" })
	assert.Equal(t, []string{"name", "url"}, fields.Keys())

	BuildModel(testutil.Compose(t, `name: n`), nil, fields, func(root *yaml.Node) *testLicense { return &testLicense{} })
	assert.Equal(t, "second", got)
}

func keysOf(ks []KeySource[string]) []string {
	out := make([]string, 0, len(ks))
	for _, k := range ks {
		out = append(out, k.Value)
	}
	return out
}
