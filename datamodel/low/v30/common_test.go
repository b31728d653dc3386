package v30

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jentic/jentic-openapi-tools-sub001/datamodel/low"
	"github.com/jentic/jentic-openapi-tools-sub001/internal/testutil"
)

func TestBuildLicense_Extensions(t *testing.T) {
	node := testutil.Compose(t, `{"name": "Apache 2.0", "url": "https://www.apache.org/licenses/LICENSE-2.0.html", "x-spdx-id": "Apache-2.0"}`)
	lic, ok := BuildLicense(node, nil).Get()
	require.True(t, ok)
	assert.Equal(t, "Apache 2.0", lic.Name.Value)
	assert.Equal(t, "https://www.apache.org/licenses/LICENSE-2.0.html", lic.URL.Value)
	require.Equal(t, 1, lic.Extensions.Len())
	assert.Equal(t, "x-spdx-id", lic.Extensions[0].Key.Value)
	assert.Equal(t, "Apache-2.0", lic.Extensions[0].Value.Value)
}

func TestBuildContact_AbsenceVersusNull(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		c, ok := BuildContact(testutil.Compose(t, `{}`), nil).Get()
		require.True(t, ok)
		assert.Nil(t, c.URL)
		assert.Nil(t, c.Name)
		assert.Nil(t, c.Email)
	})

	t.Run("null", func(t *testing.T) {
		node := testutil.Compose(t, `{"url": null}`)
		c, ok := BuildContact(node, nil).Get()
		require.True(t, ok)
		require.NotNil(t, c.URL)
		assert.Nil(t, c.URL.Value)
		assert.Same(t, node.Content[0], c.URL.KeyNode)
		assert.Same(t, node.Content[1], c.URL.ValueNode)
	})
}

func TestBuildParameter_UnknownField(t *testing.T) {
	node := testutil.Compose(t, `{"name": "id", "typo": "x", "x-custom": "y"}`)
	var reports []low.Report
	ctx := low.NewContext(low.WithReporter(low.ReporterFunc(func(r low.Report) { reports = append(reports, r) })))

	p, ok := BuildParameter(node, ctx).Get()
	require.True(t, ok)
	assert.Equal(t, "id", p.Name.Value)
	assert.Equal(t, []string{"x-custom"}, p.Extensions.Keys())

	fs, _ := FieldSet("Parameter")
	unknown := low.ExtractUnknownFields(node, fs, ctx)
	assert.Equal(t, []string{"typo"}, unknown.Keys())

	c := low.Classify(node, fs, ctx)
	assert.Len(t, c.Declared, 1)
	assert.Equal(t, "name", c.Declared[0].Value)

	require.Len(t, reports, 1)
	assert.Equal(t, low.ReportUnknownField, reports[0].Kind)
	assert.Equal(t, "Parameter", reports[0].Object)
}

func TestBuildParameter_Full(t *testing.T) {
	node := testutil.Compose(t, `
		name: filter
		in: query
		description: Filter
		required: false
		deprecated: true
		allowEmptyValue: true
		style: deepObject
		explode: true
		allowReserved: false
		example: {color: red}
		examples:
		  red:
		    summary: Red
		    value: {color: red}
		    externalValue: https://ex/red.json
		  shared:
		    $ref: '#/components/examples/Shared'
		content:
		  application/json:
		    schema: {type: object}
	`)
	p, ok := BuildParameter(node, nil).Get()
	require.True(t, ok)
	assert.Equal(t, "query", p.In.Value)
	assert.Equal(t, "deepObject", p.Style.Value)
	assert.Equal(t, false, p.AllowReserved.Value)
	assert.Equal(t, map[string]any{"color": "red"}, p.Example.Value)

	examples, ok := p.Examples.Value.Get()
	require.True(t, ok)
	red, _ := examples.Get("red")
	require.True(t, red.IsObject())
	assert.Equal(t, "Red", red.Object.Summary.Value)
	assert.Equal(t, "https://ex/red.json", red.Object.ExternalValue.Value)
	shared, _ := examples.Get("shared")
	assert.True(t, shared.IsReference())

	content, ok := p.Content.Value.Get()
	require.True(t, ok)
	assert.True(t, content.Has("application/json"))
}

func TestBuildInfo(t *testing.T) {
	node := testutil.Compose(t, `
		title: API
		description: Desc
		termsOfService: https://tos
		contact:
		  name: Team
		  email: team@example.com
		version: "1.0"
		summary: only in 3.1
	`)
	info, ok := BuildInfo(node, nil).Get()
	require.True(t, ok)
	assert.Equal(t, "https://tos", info.TermsOfService.Value)
	assert.Equal(t, "1.0", info.Version.Value)

	contact, ok := info.Contact.Value.Get()
	require.True(t, ok)
	assert.Equal(t, "team@example.com", contact.Email.Value)

	fs, _ := FieldSet("Info")
	assert.Equal(t, []string{"summary"}, low.ExtractUnknownFields(node, fs, nil).Keys())
}

func TestBuildTag(t *testing.T) {
	node := testutil.Compose(t, `
		name: pets
		description: Pet operations
		externalDocs:
		  description: More
		  url: https://docs/pets
	`)
	tag, ok := BuildTag(node, nil).Get()
	require.True(t, ok)
	assert.Equal(t, "pets", tag.Name.Value)
	docs, ok := tag.ExternalDocs.Value.Get()
	require.True(t, ok)
	assert.Equal(t, "More", docs.Description.Value)
}

func TestBuildReference_SiblingsAreUnknown(t *testing.T) {
	node := testutil.Compose(t, `
		$ref: '#/components/schemas/Pet'
		summary: not allowed in 3.0
		x-ext: also unknown
	`)
	ref, ok := BuildReference(node, nil).Get()
	require.True(t, ok)
	assert.Equal(t, "#/components/schemas/Pet", ref.Ref.Value)

	fs, _ := FieldSet("Reference")
	assert.Equal(t, []string{"summary", "x-ext"}, low.ExtractUnknownFields(node, fs, nil).Keys())
}

func TestOrReference_Dispatch(t *testing.T) {
	const src = `
		$ref: '#/components/schemas/Pet'
		description: sibling
	`
	tests := []struct {
		name  string
		build func(t *testing.T) low.Kind
	}{
		{"schema", func(t *testing.T) low.Kind { return BuildSchemaOrReference(testutil.Compose(t, src), nil).Kind }},
		{"parameter", func(t *testing.T) low.Kind { return BuildParameterOrReference(testutil.Compose(t, src), nil).Kind }},
		{"response", func(t *testing.T) low.Kind { return BuildResponseOrReference(testutil.Compose(t, src), nil).Kind }},
		{"example", func(t *testing.T) low.Kind { return BuildExampleOrReference(testutil.Compose(t, src), nil).Kind }},
		{"header", func(t *testing.T) low.Kind { return BuildHeaderOrReference(testutil.Compose(t, src), nil).Kind }},
		{"request body", func(t *testing.T) low.Kind { return BuildRequestBodyOrReference(testutil.Compose(t, src), nil).Kind }},
		{"link", func(t *testing.T) low.Kind { return BuildLinkOrReference(testutil.Compose(t, src), nil).Kind }},
		{"callback", func(t *testing.T) low.Kind { return BuildCallbackOrReference(testutil.Compose(t, src), nil).Kind }},
		{"security scheme", func(t *testing.T) low.Kind { return BuildSecuritySchemeOrReference(testutil.Compose(t, src), nil).Kind }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, low.KindReference, tt.build(t))
		})
	}

	u := BuildSchemaOrReference(testutil.Compose(t, src), nil)
	assert.Equal(t, "#/components/schemas/Pet", u.Reference.Ref.Value)
}

func TestBuildServer(t *testing.T) {
	node := testutil.Compose(t, `
		url: https://{region}.api
		description: Regional
		variables:
		  region:
		    default: eu
		    description: Region
		    x-var: 1
		  bad: 3
	`)
	server, ok := BuildServer(node, nil).Get()
	require.True(t, ok)
	vars, ok := server.Variables.Value.Get()
	require.True(t, ok)
	region, _ := vars.Get("region")
	require.True(t, region.IsValid())
	assert.Equal(t, "Region", region.Object.Description.Value)
	assert.Equal(t, []string{"x-var"}, region.Object.Extensions.Keys())
	bad, _ := vars.Get("bad")
	assert.False(t, bad.IsValid())
	assert.Equal(t, 3, bad.Invalid.Value)
}
