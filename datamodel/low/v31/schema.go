package v31

import (
	"go.yaml.in/yaml/v4"

	"github.com/jentic/jentic-openapi-tools-sub001/datamodel/low"
)

// NestedSchema is a subschema position. JSON Schema 2020-12 allows a boolean
// wherever a schema is expected, so every position holds either a boolean or
// a SchemaOrReference.
type NestedSchema = low.BoolOr[low.OrReference[*Schema, *Reference]]

// Schema represents a Schema Object: a JSON Schema 2020-12 schema with the
// OpenAPI vocabulary (discriminator, xml, externalDocs, example). nullable is
// kept as a declared keyword so 3.0-style documents labelled 3.1 still
// classify it.
//
// Keyword values are stored exactly as written.
type Schema struct {
	RootNode *yaml.Node

	// Core vocabulary
	Schema        *low.FieldSource[any]
	ID            *low.FieldSource[any]
	Ref           *low.FieldSource[any]
	Anchor        *low.FieldSource[any]
	DynamicAnchor *low.FieldSource[any]
	DynamicRef    *low.FieldSource[any]
	Vocabulary    *low.FieldSource[any]
	Comment       *low.FieldSource[any]
	Defs          *low.FieldSource[low.Result[low.Map[low.BoolOr[low.OrReference[*Schema, *Reference]]]]]

	// Applicator vocabulary
	AllOf                 *low.FieldSource[low.Result[[]low.BoolOr[low.OrReference[*Schema, *Reference]]]]
	AnyOf                 *low.FieldSource[low.Result[[]low.BoolOr[low.OrReference[*Schema, *Reference]]]]
	OneOf                 *low.FieldSource[low.Result[[]low.BoolOr[low.OrReference[*Schema, *Reference]]]]
	Not                   *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]
	If                    *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]
	Then                  *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]
	Else                  *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]
	DependentSchemas      *low.FieldSource[low.Result[low.Map[low.BoolOr[low.OrReference[*Schema, *Reference]]]]]
	PrefixItems           *low.FieldSource[low.Result[[]low.BoolOr[low.OrReference[*Schema, *Reference]]]]
	Items                 *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]
	Contains              *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]
	Properties            *low.FieldSource[low.Result[low.Map[low.BoolOr[low.OrReference[*Schema, *Reference]]]]]
	PatternProperties     *low.FieldSource[low.Result[low.Map[low.BoolOr[low.OrReference[*Schema, *Reference]]]]]
	AdditionalProperties  *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]
	PropertyNames         *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]
	UnevaluatedItems      *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]
	UnevaluatedProperties *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]

	// Validation vocabulary
	Type              *low.FieldSource[any]
	Const             *low.FieldSource[any]
	Enum              *low.FieldSource[any]
	MultipleOf        *low.FieldSource[any]
	Maximum           *low.FieldSource[any]
	ExclusiveMaximum  *low.FieldSource[any]
	Minimum           *low.FieldSource[any]
	ExclusiveMinimum  *low.FieldSource[any]
	MaxLength         *low.FieldSource[any]
	MinLength         *low.FieldSource[any]
	Pattern           *low.FieldSource[any]
	MaxItems          *low.FieldSource[any]
	MinItems          *low.FieldSource[any]
	UniqueItems       *low.FieldSource[any]
	MaxContains       *low.FieldSource[any]
	MinContains       *low.FieldSource[any]
	MaxProperties     *low.FieldSource[any]
	MinProperties     *low.FieldSource[any]
	Required          *low.FieldSource[any]
	DependentRequired *low.FieldSource[any]

	// Meta-data, format and content vocabularies
	Title            *low.FieldSource[any]
	Description      *low.FieldSource[any]
	Default          *low.FieldSource[any]
	Deprecated       *low.FieldSource[any]
	ReadOnly         *low.FieldSource[any]
	WriteOnly        *low.FieldSource[any]
	Examples         *low.FieldSource[any]
	Format           *low.FieldSource[any]
	ContentEncoding  *low.FieldSource[any]
	ContentMediaType *low.FieldSource[any]
	ContentSchema    *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]

	// OpenAPI vocabulary
	Discriminator *low.FieldSource[low.Result[*Discriminator]]
	XML           *low.FieldSource[low.Result[*XML]]
	ExternalDocs  *low.FieldSource[low.Result[*ExternalDocumentation]]
	Example       *low.FieldSource[any]
	Nullable      *low.FieldSource[any]

	Extensions low.Extensions
}

// Discriminator helps with polymorphism. Unlike 3.0, it may carry extensions.
type Discriminator struct {
	RootNode     *yaml.Node
	PropertyName *low.FieldSource[any]
	Mapping      *low.FieldSource[low.Result[low.Map[low.ValueSource[any]]]]
	Extensions   low.Extensions
}

// XML provides metadata for XML serialization
type XML struct {
	RootNode   *yaml.Node
	Name       *low.FieldSource[any]
	Namespace  *low.FieldSource[any]
	Prefix     *low.FieldSource[any]
	Attribute  *low.FieldSource[any]
	Wrapped    *low.FieldSource[any]
	Extensions low.Extensions
}

var (
	schemaFields        *low.Fields[Schema]
	discriminatorFields *low.Fields[Discriminator]
	xmlFields           *low.Fields[XML]
)

var (
	buildSchemaList = low.ListOf(BuildNestedSchema)
	buildSchemaMap  = low.MapOf(BuildNestedSchema)
)

type (
	schemaSetter     = func(*Schema, *low.FieldSource[any])
	subschemaSetter  = func(*Schema, *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]])
	schemaListSetter = func(*Schema, *low.FieldSource[low.Result[[]low.BoolOr[low.OrReference[*Schema, *Reference]]]])
	schemaMapSetter  = func(*Schema, *low.FieldSource[low.Result[low.Map[low.BoolOr[low.OrReference[*Schema, *Reference]]]]])
)

func init() {
	scalars := []struct {
		key string
		set schemaSetter
	}{
		{"$schema", func(s *Schema, f *low.FieldSource[any]) { s.Schema = f }},
		{"$id", func(s *Schema, f *low.FieldSource[any]) { s.ID = f }},
		{low.RefKey, func(s *Schema, f *low.FieldSource[any]) { s.Ref = f }},
		{"$anchor", func(s *Schema, f *low.FieldSource[any]) { s.Anchor = f }},
		{"$dynamicAnchor", func(s *Schema, f *low.FieldSource[any]) { s.DynamicAnchor = f }},
		{"$dynamicRef", func(s *Schema, f *low.FieldSource[any]) { s.DynamicRef = f }},
		{"$vocabulary", func(s *Schema, f *low.FieldSource[any]) { s.Vocabulary = f }},
		{"$comment", func(s *Schema, f *low.FieldSource[any]) { s.Comment = f }},
		{"type", func(s *Schema, f *low.FieldSource[any]) { s.Type = f }},
		{"const", func(s *Schema, f *low.FieldSource[any]) { s.Const = f }},
		{"enum", func(s *Schema, f *low.FieldSource[any]) { s.Enum = f }},
		{"multipleOf", func(s *Schema, f *low.FieldSource[any]) { s.MultipleOf = f }},
		{"maximum", func(s *Schema, f *low.FieldSource[any]) { s.Maximum = f }},
		{"exclusiveMaximum", func(s *Schema, f *low.FieldSource[any]) { s.ExclusiveMaximum = f }},
		{"minimum", func(s *Schema, f *low.FieldSource[any]) { s.Minimum = f }},
		{"exclusiveMinimum", func(s *Schema, f *low.FieldSource[any]) { s.ExclusiveMinimum = f }},
		{"maxLength", func(s *Schema, f *low.FieldSource[any]) { s.MaxLength = f }},
		{"minLength", func(s *Schema, f *low.FieldSource[any]) { s.MinLength = f }},
		{"pattern", func(s *Schema, f *low.FieldSource[any]) { s.Pattern = f }},
		{"maxItems", func(s *Schema, f *low.FieldSource[any]) { s.MaxItems = f }},
		{"minItems", func(s *Schema, f *low.FieldSource[any]) { s.MinItems = f }},
		{"uniqueItems", func(s *Schema, f *low.FieldSource[any]) { s.UniqueItems = f }},
		{"maxContains", func(s *Schema, f *low.FieldSource[any]) { s.MaxContains = f }},
		{"minContains", func(s *Schema, f *low.FieldSource[any]) { s.MinContains = f }},
		{"maxProperties", func(s *Schema, f *low.FieldSource[any]) { s.MaxProperties = f }},
		{"minProperties", func(s *Schema, f *low.FieldSource[any]) { s.MinProperties = f }},
		{"required", func(s *Schema, f *low.FieldSource[any]) { s.Required = f }},
		{"dependentRequired", func(s *Schema, f *low.FieldSource[any]) { s.DependentRequired = f }},
		{"title", func(s *Schema, f *low.FieldSource[any]) { s.Title = f }},
		{"description", func(s *Schema, f *low.FieldSource[any]) { s.Description = f }},
		{"default", func(s *Schema, f *low.FieldSource[any]) { s.Default = f }},
		{"deprecated", func(s *Schema, f *low.FieldSource[any]) { s.Deprecated = f }},
		{"readOnly", func(s *Schema, f *low.FieldSource[any]) { s.ReadOnly = f }},
		{"writeOnly", func(s *Schema, f *low.FieldSource[any]) { s.WriteOnly = f }},
		{"examples", func(s *Schema, f *low.FieldSource[any]) { s.Examples = f }},
		{"format", func(s *Schema, f *low.FieldSource[any]) { s.Format = f }},
		{"contentEncoding", func(s *Schema, f *low.FieldSource[any]) { s.ContentEncoding = f }},
		{"contentMediaType", func(s *Schema, f *low.FieldSource[any]) { s.ContentMediaType = f }},
		{"example", func(s *Schema, f *low.FieldSource[any]) { s.Example = f }},
		{"nullable", func(s *Schema, f *low.FieldSource[any]) { s.Nullable = f }},
	}
	subschemas := []struct {
		key string
		set subschemaSetter
	}{
		{"not", func(s *Schema, f *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]) { s.Not = f }},
		{"if", func(s *Schema, f *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]) { s.If = f }},
		{"then", func(s *Schema, f *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]) { s.Then = f }},
		{"else", func(s *Schema, f *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]) { s.Else = f }},
		{"items", func(s *Schema, f *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]) { s.Items = f }},
		{"contains", func(s *Schema, f *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]) { s.Contains = f }},
		{"additionalProperties", func(s *Schema, f *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]) { s.AdditionalProperties = f }},
		{"propertyNames", func(s *Schema, f *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]) { s.PropertyNames = f }},
		{"unevaluatedItems", func(s *Schema, f *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]) { s.UnevaluatedItems = f }},
		{"unevaluatedProperties", func(s *Schema, f *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]) { s.UnevaluatedProperties = f }},
		{"contentSchema", func(s *Schema, f *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]) { s.ContentSchema = f }},
	}
	lists := []struct {
		key string
		set schemaListSetter
	}{
		{"allOf", func(s *Schema, f *low.FieldSource[low.Result[[]low.BoolOr[low.OrReference[*Schema, *Reference]]]]) { s.AllOf = f }},
		{"anyOf", func(s *Schema, f *low.FieldSource[low.Result[[]low.BoolOr[low.OrReference[*Schema, *Reference]]]]) { s.AnyOf = f }},
		{"oneOf", func(s *Schema, f *low.FieldSource[low.Result[[]low.BoolOr[low.OrReference[*Schema, *Reference]]]]) { s.OneOf = f }},
		{"prefixItems", func(s *Schema, f *low.FieldSource[low.Result[[]low.BoolOr[low.OrReference[*Schema, *Reference]]]]) { s.PrefixItems = f }},
	}
	maps := []struct {
		key string
		set schemaMapSetter
	}{
		{"$defs", func(s *Schema, f *low.FieldSource[low.Result[low.Map[low.BoolOr[low.OrReference[*Schema, *Reference]]]]]) { s.Defs = f }},
		{"dependentSchemas", func(s *Schema, f *low.FieldSource[low.Result[low.Map[low.BoolOr[low.OrReference[*Schema, *Reference]]]]]) { s.DependentSchemas = f }},
		{"properties", func(s *Schema, f *low.FieldSource[low.Result[low.Map[low.BoolOr[low.OrReference[*Schema, *Reference]]]]]) { s.Properties = f }},
		{"patternProperties", func(s *Schema, f *low.FieldSource[low.Result[low.Map[low.BoolOr[low.OrReference[*Schema, *Reference]]]]]) { s.PatternProperties = f }},
	}

	schemaFields = low.NewFields[Schema]("Schema")
	for _, sc := range scalars {
		schemaFields.Scalar(sc.key, sc.set)
	}
	for _, sub := range subschemas {
		schemaFields.Nested(sub.key, low.Field(BuildNestedSchema, sub.set))
	}
	for _, l := range lists {
		schemaFields.Nested(l.key, low.Field(buildSchemaList, l.set))
	}
	for _, m := range maps {
		schemaFields.Nested(m.key, low.Field(buildSchemaMap, m.set))
	}
	schemaFields.
		Nested("discriminator", low.Field(BuildDiscriminator, func(s *Schema, f *low.FieldSource[low.Result[*Discriminator]]) { s.Discriminator = f })).
		Nested("xml", low.Field(BuildXML, func(s *Schema, f *low.FieldSource[low.Result[*XML]]) { s.XML = f })).
		Nested("externalDocs", low.Field(BuildExternalDocumentation, func(s *Schema, f *low.FieldSource[low.Result[*ExternalDocumentation]]) {
			s.ExternalDocs = f
		})).
		Extensions(func(s *Schema, ext low.Extensions) { s.Extensions = ext })

	discriminatorFields = low.NewFields[Discriminator]("Discriminator").
		Scalar("propertyName", func(d *Discriminator, f *low.FieldSource[any]) { d.PropertyName = f }).
		Nested("mapping", low.Field(low.BuildValueMap, func(d *Discriminator, f *low.FieldSource[low.Result[low.Map[low.ValueSource[any]]]]) {
			d.Mapping = f
		})).
		Extensions(func(d *Discriminator, ext low.Extensions) { d.Extensions = ext })

	xmlFields = low.NewFields[XML]("XML").
		Scalar("name", func(x *XML, f *low.FieldSource[any]) { x.Name = f }).
		Scalar("namespace", func(x *XML, f *low.FieldSource[any]) { x.Namespace = f }).
		Scalar("prefix", func(x *XML, f *low.FieldSource[any]) { x.Prefix = f }).
		Scalar("attribute", func(x *XML, f *low.FieldSource[any]) { x.Attribute = f }).
		Scalar("wrapped", func(x *XML, f *low.FieldSource[any]) { x.Wrapped = f }).
		Extensions(func(x *XML, ext low.Extensions) { x.Extensions = ext })
}

// BuildSchema builds a Schema Object from node, recursing into subschemas.
// A boolean node is a shape mismatch here; use [BuildNestedSchema] where a
// boolean schema is allowed.
func BuildSchema(node *yaml.Node, ctx *low.Context) low.Result[*Schema] {
	return low.BuildModel(node, ctx, schemaFields, func(root *yaml.Node) *Schema {
		return &Schema{RootNode: root}
	})
}

// BuildNestedSchema builds a subschema position: a boolean literal, a
// Reference, or a Schema.
func BuildNestedSchema(node *yaml.Node, ctx *low.Context) low.BoolOr[low.OrReference[*Schema, *Reference]] {
	return low.BuildBoolOr(node, ctx, BuildSchemaOrReference)
}

// BuildDiscriminator builds a Discriminator Object from node.
func BuildDiscriminator(node *yaml.Node, ctx *low.Context) low.Result[*Discriminator] {
	return low.BuildModel(node, ctx, discriminatorFields, func(root *yaml.Node) *Discriminator {
		return &Discriminator{RootNode: root}
	})
}

// BuildXML builds an XML Object from node.
func BuildXML(node *yaml.Node, ctx *low.Context) low.Result[*XML] {
	return low.BuildModel(node, ctx, xmlFields, func(root *yaml.Node) *XML {
		return &XML{RootNode: root}
	})
}
