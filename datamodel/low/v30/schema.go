package v30

import (
	"go.yaml.in/yaml/v4"

	"github.com/jentic/jentic-openapi-tools-sub001/datamodel/low"
)

// Schema represents a Schema Object: the OpenAPI 3.0 extended subset of JSON
// Schema Wright Draft 00.
//
// Keyword values are stored exactly as written. Subschema positions (allOf,
// oneOf, anyOf, not, items, properties and additionalProperties) are built
// recursively as SchemaOrReference; additionalProperties may also be a
// boolean.
type Schema struct {
	RootNode *yaml.Node

	Title            *low.FieldSource[any]
	MultipleOf       *low.FieldSource[any]
	Maximum          *low.FieldSource[any]
	ExclusiveMaximum *low.FieldSource[any]
	Minimum          *low.FieldSource[any]
	ExclusiveMinimum *low.FieldSource[any]
	MaxLength        *low.FieldSource[any]
	MinLength        *low.FieldSource[any]
	Pattern          *low.FieldSource[any]
	MaxItems         *low.FieldSource[any]
	MinItems         *low.FieldSource[any]
	UniqueItems      *low.FieldSource[any]
	MaxProperties    *low.FieldSource[any]
	MinProperties    *low.FieldSource[any]
	Required         *low.FieldSource[any]
	Enum             *low.FieldSource[any]

	Type                 *low.FieldSource[any]
	AllOf                *low.FieldSource[low.Result[[]low.OrReference[*Schema, *Reference]]]
	OneOf                *low.FieldSource[low.Result[[]low.OrReference[*Schema, *Reference]]]
	AnyOf                *low.FieldSource[low.Result[[]low.OrReference[*Schema, *Reference]]]
	Not                  *low.FieldSource[low.OrReference[*Schema, *Reference]]
	Items                *low.FieldSource[low.OrReference[*Schema, *Reference]]
	Properties           *low.FieldSource[low.Result[low.Map[low.OrReference[*Schema, *Reference]]]]
	AdditionalProperties *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]

	Description *low.FieldSource[any]
	Format      *low.FieldSource[any]
	Default     *low.FieldSource[any]

	Nullable      *low.FieldSource[any]
	Discriminator *low.FieldSource[low.Result[*Discriminator]]
	ReadOnly      *low.FieldSource[any]
	WriteOnly     *low.FieldSource[any]
	XML           *low.FieldSource[low.Result[*XML]]
	ExternalDocs  *low.FieldSource[low.Result[*ExternalDocumentation]]
	Example       *low.FieldSource[any]
	Deprecated    *low.FieldSource[any]

	Extensions low.Extensions
}

// Discriminator helps with polymorphism. It has no extensions in OpenAPI 3.0.
type Discriminator struct {
	RootNode     *yaml.Node
	PropertyName *low.FieldSource[any]
	Mapping      *low.FieldSource[low.Result[low.Map[low.ValueSource[any]]]]
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

func init() {
	schemaFields = low.NewFields[Schema]("Schema").
		Scalar("title", func(s *Schema, f *low.FieldSource[any]) { s.Title = f }).
		Scalar("multipleOf", func(s *Schema, f *low.FieldSource[any]) { s.MultipleOf = f }).
		Scalar("maximum", func(s *Schema, f *low.FieldSource[any]) { s.Maximum = f }).
		Scalar("exclusiveMaximum", func(s *Schema, f *low.FieldSource[any]) { s.ExclusiveMaximum = f }).
		Scalar("minimum", func(s *Schema, f *low.FieldSource[any]) { s.Minimum = f }).
		Scalar("exclusiveMinimum", func(s *Schema, f *low.FieldSource[any]) { s.ExclusiveMinimum = f }).
		Scalar("maxLength", func(s *Schema, f *low.FieldSource[any]) { s.MaxLength = f }).
		Scalar("minLength", func(s *Schema, f *low.FieldSource[any]) { s.MinLength = f }).
		Scalar("pattern", func(s *Schema, f *low.FieldSource[any]) { s.Pattern = f }).
		Scalar("maxItems", func(s *Schema, f *low.FieldSource[any]) { s.MaxItems = f }).
		Scalar("minItems", func(s *Schema, f *low.FieldSource[any]) { s.MinItems = f }).
		Scalar("uniqueItems", func(s *Schema, f *low.FieldSource[any]) { s.UniqueItems = f }).
		Scalar("maxProperties", func(s *Schema, f *low.FieldSource[any]) { s.MaxProperties = f }).
		Scalar("minProperties", func(s *Schema, f *low.FieldSource[any]) { s.MinProperties = f }).
		Scalar("required", func(s *Schema, f *low.FieldSource[any]) { s.Required = f }).
		Scalar("enum", func(s *Schema, f *low.FieldSource[any]) { s.Enum = f }).
		Scalar("type", func(s *Schema, f *low.FieldSource[any]) { s.Type = f }).
		Nested("allOf", low.Field(low.ListOf(BuildSchemaOrReference), func(s *Schema, f *low.FieldSource[low.Result[[]low.OrReference[*Schema, *Reference]]]) { s.AllOf = f })).
		Nested("oneOf", low.Field(low.ListOf(BuildSchemaOrReference), func(s *Schema, f *low.FieldSource[low.Result[[]low.OrReference[*Schema, *Reference]]]) { s.OneOf = f })).
		Nested("anyOf", low.Field(low.ListOf(BuildSchemaOrReference), func(s *Schema, f *low.FieldSource[low.Result[[]low.OrReference[*Schema, *Reference]]]) { s.AnyOf = f })).
		Nested("not", low.Field(BuildSchemaOrReference, func(s *Schema, f *low.FieldSource[low.OrReference[*Schema, *Reference]]) { s.Not = f })).
		Nested("items", low.Field(BuildSchemaOrReference, func(s *Schema, f *low.FieldSource[low.OrReference[*Schema, *Reference]]) { s.Items = f })).
		Nested("properties", low.Field(low.MapOf(BuildSchemaOrReference), func(s *Schema, f *low.FieldSource[low.Result[low.Map[low.OrReference[*Schema, *Reference]]]]) {
			s.Properties = f
		})).
		Nested("additionalProperties", low.Field(buildBoolOrSchema, func(s *Schema, f *low.FieldSource[low.BoolOr[low.OrReference[*Schema, *Reference]]]) {
			s.AdditionalProperties = f
		})).
		Scalar("description", func(s *Schema, f *low.FieldSource[any]) { s.Description = f }).
		Scalar("format", func(s *Schema, f *low.FieldSource[any]) { s.Format = f }).
		Scalar("default", func(s *Schema, f *low.FieldSource[any]) { s.Default = f }).
		Scalar("nullable", func(s *Schema, f *low.FieldSource[any]) { s.Nullable = f }).
		Nested("discriminator", low.Field(BuildDiscriminator, func(s *Schema, f *low.FieldSource[low.Result[*Discriminator]]) { s.Discriminator = f })).
		Scalar("readOnly", func(s *Schema, f *low.FieldSource[any]) { s.ReadOnly = f }).
		Scalar("writeOnly", func(s *Schema, f *low.FieldSource[any]) { s.WriteOnly = f }).
		Nested("xml", low.Field(BuildXML, func(s *Schema, f *low.FieldSource[low.Result[*XML]]) { s.XML = f })).
		Nested("externalDocs", low.Field(BuildExternalDocumentation, func(s *Schema, f *low.FieldSource[low.Result[*ExternalDocumentation]]) {
			s.ExternalDocs = f
		})).
		Scalar("example", func(s *Schema, f *low.FieldSource[any]) { s.Example = f }).
		Scalar("deprecated", func(s *Schema, f *low.FieldSource[any]) { s.Deprecated = f }).
		Extensions(func(s *Schema, ext low.Extensions) { s.Extensions = ext })

	discriminatorFields = low.NewFields[Discriminator]("Discriminator").
		Scalar("propertyName", func(d *Discriminator, f *low.FieldSource[any]) { d.PropertyName = f }).
		Nested("mapping", low.Field(low.BuildValueMap, func(d *Discriminator, f *low.FieldSource[low.Result[low.Map[low.ValueSource[any]]]]) {
			d.Mapping = f
		}))

	xmlFields = low.NewFields[XML]("XML").
		Scalar("name", func(x *XML, f *low.FieldSource[any]) { x.Name = f }).
		Scalar("namespace", func(x *XML, f *low.FieldSource[any]) { x.Namespace = f }).
		Scalar("prefix", func(x *XML, f *low.FieldSource[any]) { x.Prefix = f }).
		Scalar("attribute", func(x *XML, f *low.FieldSource[any]) { x.Attribute = f }).
		Scalar("wrapped", func(x *XML, f *low.FieldSource[any]) { x.Wrapped = f }).
		Extensions(func(x *XML, ext low.Extensions) { x.Extensions = ext })
}

// BuildSchema builds a Schema Object from node, recursing into subschemas.
func BuildSchema(node *yaml.Node, ctx *low.Context) low.Result[*Schema] {
	return low.BuildModel(node, ctx, schemaFields, func(root *yaml.Node) *Schema {
		return &Schema{RootNode: root}
	})
}

func buildBoolOrSchema(node *yaml.Node, ctx *low.Context) low.BoolOr[low.OrReference[*Schema, *Reference]] {
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
