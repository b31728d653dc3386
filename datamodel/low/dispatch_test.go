package low

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/jentic/jentic-openapi-tools-sub001/internal/testutil"
)

func buildLicenseOrRef(node *yaml.Node, ctx *Context) OrReference[*testLicense, *testRef] {
	return BuildOrReference(node, ctx, RefKey, buildTestRef, buildTestLicense)
}

func TestBuildOrReference(t *testing.T) {
	t.Run("reference", func(t *testing.T) {
		node := testutil.Compose(t, `$ref: '#/components/schemas/Pet'`)
		u := buildLicenseOrRef(node, nil)
		require.True(t, u.IsReference())
		assert.Equal(t, KindReference, u.Kind)
		assert.Equal(t, "#/components/schemas/Pet", u.Reference.Ref.Value)
		assert.Same(t, node, u.Reference.RootNode)
		assert.Nil(t, u.Object)
		assert.Nil(t, u.Invalid)
	})

	t.Run("reference with siblings", func(t *testing.T) {
		node := testutil.Compose(t, `
			name: ignored
			$ref: '#/components/schemas/Pet'
			description: also ignored
		`)
		u := buildLicenseOrRef(node, nil)
		require.True(t, u.IsReference())
		assert.Equal(t, "#/components/schemas/Pet", u.Reference.Ref.Value)

		unknown := ExtractUnknownFields(node, testRefFields, nil)
		assert.Equal(t, []string{"name", "description"}, unknown.Keys())
	})

	t.Run("object", func(t *testing.T) {
		node := testutil.Compose(t, `name: MIT`)
		u := buildLicenseOrRef(node, nil)
		require.True(t, u.IsObject())
		assert.Equal(t, "MIT", u.Object.Name.Value)
		assert.Nil(t, u.Reference)
	})

	t.Run("invalid", func(t *testing.T) {
		node := testutil.Compose(t, `[1, 2]`)
		u := buildLicenseOrRef(node, nil)
		require.True(t, u.IsInvalid())
		assert.Equal(t, "invalid", u.Kind.String())
		require.NotNil(t, u.Invalid)
		assert.Equal(t, []any{1, 2}, u.Invalid.Value)
		assert.Same(t, node, u.Invalid.ValueNode)
	})

	t.Run("ref key only counts at top level", func(t *testing.T) {
		node := testutil.Compose(t, `
			name:
			  $ref: nested
		`)
		u := buildLicenseOrRef(node, nil)
		assert.True(t, u.IsObject())
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "reference", KindReference.String())
	assert.Equal(t, "invalid", KindInvalid.String())
}

func TestBuildBoolOr(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantBool *bool
	}{
		{"true", `true`, boolPtr(true)},
		{"false", `false`, boolPtr(false)},
		{"quoted true is not a boolean", `"true"`, nil},
		{"mapping", `type: string`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := testutil.Compose(t, tt.src)
			called := false
			got := BuildBoolOr(node, nil, func(n *yaml.Node, ctx *Context) Result[*testLicense] {
				called = true
				return buildTestLicense(n, ctx)
			})
			assert.Equal(t, tt.wantBool, got.Bool)
			assert.Equal(t, tt.wantBool != nil, got.IsBool())
			assert.Equal(t, tt.wantBool == nil, called)
		})
	}
}

func TestKeyPredicates(t *testing.T) {
	node := testutil.Compose(t, `
		/pets: 1
		"/quoted": 2
		pets: 3
		200: 4
		"201": 5
		true: 6
		? [a]
		: 7
	`)
	keys := make([]*yaml.Node, 0, len(node.Content)/2)
	for _, p := range Pairs(node) {
		keys = append(keys, p.Key)
	}
	ctx := NewContext()

	tests := []struct {
		name string
		pred KeyPredicate
		want []bool
	}{
		{"IsPathTemplate", IsPathTemplate, []bool{true, true, false, false, false, false, false}},
		{"IsStringKey", IsStringKey, []bool{true, true, true, false, true, false, false}},
		{"AnyKey", AnyKey, []bool{true, true, true, true, true, true, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]bool, 0, len(keys))
			for _, k := range keys {
				got = append(got, tt.pred(ctx.DecodeKey(k), k))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func boolPtr(b bool) *bool { return &b }
