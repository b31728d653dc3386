package v30

import (
	"go.yaml.in/yaml/v4"

	"github.com/jentic/jentic-openapi-tools-sub001/datamodel/low"
)

// Parameter describes a single operation parameter
type Parameter struct {
	RootNode        *yaml.Node
	Name            *low.FieldSource[any]
	In              *low.FieldSource[any]
	Description     *low.FieldSource[any]
	Required        *low.FieldSource[any]
	Deprecated      *low.FieldSource[any]
	AllowEmptyValue *low.FieldSource[any]
	Style           *low.FieldSource[any]
	Explode         *low.FieldSource[any]
	AllowReserved   *low.FieldSource[any]
	Schema          *low.FieldSource[SchemaOrReference]
	Example         *low.FieldSource[any]
	Examples        *low.FieldSource[low.Result[low.Map[ExampleOrReference]]]
	Content         *low.FieldSource[low.Result[low.Map[low.Result[*MediaType]]]]
	Extensions      low.Extensions
}

// Header follows the structure of a Parameter without name and in
type Header struct {
	RootNode        *yaml.Node
	Description     *low.FieldSource[any]
	Required        *low.FieldSource[any]
	Deprecated      *low.FieldSource[any]
	AllowEmptyValue *low.FieldSource[any]
	Style           *low.FieldSource[any]
	Explode         *low.FieldSource[any]
	AllowReserved   *low.FieldSource[any]
	Schema          *low.FieldSource[SchemaOrReference]
	Example         *low.FieldSource[any]
	Examples        *low.FieldSource[low.Result[low.Map[ExampleOrReference]]]
	Content         *low.FieldSource[low.Result[low.Map[low.Result[*MediaType]]]]
	Extensions      low.Extensions
}

// RequestBody describes a single request body
type RequestBody struct {
	RootNode    *yaml.Node
	Description *low.FieldSource[any]
	Content     *low.FieldSource[low.Result[low.Map[low.Result[*MediaType]]]]
	Required    *low.FieldSource[any]
	Extensions  low.Extensions
}

// MediaType provides schema and examples for a media type
type MediaType struct {
	RootNode   *yaml.Node
	Schema     *low.FieldSource[SchemaOrReference]
	Example    *low.FieldSource[any]
	Examples   *low.FieldSource[low.Result[low.Map[ExampleOrReference]]]
	Encoding   *low.FieldSource[low.Result[low.Map[low.Result[*Encoding]]]]
	Extensions low.Extensions
}

// Encoding defines encoding for a specific property
type Encoding struct {
	RootNode      *yaml.Node
	ContentType   *low.FieldSource[any]
	Headers       *low.FieldSource[low.Result[low.Map[HeaderOrReference]]]
	Style         *low.FieldSource[any]
	Explode       *low.FieldSource[any]
	AllowReserved *low.FieldSource[any]
	Extensions    low.Extensions
}

// Example represents an Example object
type Example struct {
	RootNode      *yaml.Node
	Summary       *low.FieldSource[any]
	Description   *low.FieldSource[any]
	Value         *low.FieldSource[any]
	ExternalValue *low.FieldSource[any]
	Extensions    low.Extensions
}

var (
	parameterFields   *low.Fields[Parameter]
	headerFields      *low.Fields[Header]
	requestBodyFields *low.Fields[RequestBody]
	mediaTypeFields   *low.Fields[MediaType]
	encodingFields    *low.Fields[Encoding]
	exampleFields     *low.Fields[Example]
)

var (
	buildExampleMap   = low.MapOf(BuildExampleOrReference)
	buildMediaTypeMap = low.MapOf(BuildMediaType)
	buildHeaderMap    = low.MapOf(BuildHeaderOrReference)
)

func init() {
	parameterFields = low.NewFields[Parameter]("Parameter").
		Scalar("name", func(p *Parameter, f *low.FieldSource[any]) { p.Name = f }).
		Scalar("in", func(p *Parameter, f *low.FieldSource[any]) { p.In = f }).
		Scalar("description", func(p *Parameter, f *low.FieldSource[any]) { p.Description = f }).
		Scalar("required", func(p *Parameter, f *low.FieldSource[any]) { p.Required = f }).
		Scalar("deprecated", func(p *Parameter, f *low.FieldSource[any]) { p.Deprecated = f }).
		Scalar("allowEmptyValue", func(p *Parameter, f *low.FieldSource[any]) { p.AllowEmptyValue = f }).
		Scalar("style", func(p *Parameter, f *low.FieldSource[any]) { p.Style = f }).
		Scalar("explode", func(p *Parameter, f *low.FieldSource[any]) { p.Explode = f }).
		Scalar("allowReserved", func(p *Parameter, f *low.FieldSource[any]) { p.AllowReserved = f }).
		Nested("schema", low.Field(BuildSchemaOrReference, func(p *Parameter, f *low.FieldSource[SchemaOrReference]) { p.Schema = f })).
		Scalar("example", func(p *Parameter, f *low.FieldSource[any]) { p.Example = f }).
		Nested("examples", low.Field(buildExampleMap, func(p *Parameter, f *low.FieldSource[low.Result[low.Map[ExampleOrReference]]]) { p.Examples = f })).
		Nested("content", low.Field(buildMediaTypeMap, func(p *Parameter, f *low.FieldSource[low.Result[low.Map[low.Result[*MediaType]]]]) { p.Content = f })).
		Extensions(func(p *Parameter, ext low.Extensions) { p.Extensions = ext })

	headerFields = low.NewFields[Header]("Header").
		Scalar("description", func(h *Header, f *low.FieldSource[any]) { h.Description = f }).
		Scalar("required", func(h *Header, f *low.FieldSource[any]) { h.Required = f }).
		Scalar("deprecated", func(h *Header, f *low.FieldSource[any]) { h.Deprecated = f }).
		Scalar("allowEmptyValue", func(h *Header, f *low.FieldSource[any]) { h.AllowEmptyValue = f }).
		Scalar("style", func(h *Header, f *low.FieldSource[any]) { h.Style = f }).
		Scalar("explode", func(h *Header, f *low.FieldSource[any]) { h.Explode = f }).
		Scalar("allowReserved", func(h *Header, f *low.FieldSource[any]) { h.AllowReserved = f }).
		Nested("schema", low.Field(BuildSchemaOrReference, func(h *Header, f *low.FieldSource[SchemaOrReference]) { h.Schema = f })).
		Scalar("example", func(h *Header, f *low.FieldSource[any]) { h.Example = f }).
		Nested("examples", low.Field(buildExampleMap, func(h *Header, f *low.FieldSource[low.Result[low.Map[ExampleOrReference]]]) { h.Examples = f })).
		Nested("content", low.Field(buildMediaTypeMap, func(h *Header, f *low.FieldSource[low.Result[low.Map[low.Result[*MediaType]]]]) { h.Content = f })).
		Extensions(func(h *Header, ext low.Extensions) { h.Extensions = ext })

	requestBodyFields = low.NewFields[RequestBody]("RequestBody").
		Scalar("description", func(b *RequestBody, f *low.FieldSource[any]) { b.Description = f }).
		Nested("content", low.Field(buildMediaTypeMap, func(b *RequestBody, f *low.FieldSource[low.Result[low.Map[low.Result[*MediaType]]]]) { b.Content = f })).
		Scalar("required", func(b *RequestBody, f *low.FieldSource[any]) { b.Required = f }).
		Extensions(func(b *RequestBody, ext low.Extensions) { b.Extensions = ext })

	mediaTypeFields = low.NewFields[MediaType]("MediaType").
		Nested("schema", low.Field(BuildSchemaOrReference, func(m *MediaType, f *low.FieldSource[SchemaOrReference]) { m.Schema = f })).
		Scalar("example", func(m *MediaType, f *low.FieldSource[any]) { m.Example = f }).
		Nested("examples", low.Field(buildExampleMap, func(m *MediaType, f *low.FieldSource[low.Result[low.Map[ExampleOrReference]]]) { m.Examples = f })).
		Nested("encoding", low.Field(low.MapOf(BuildEncoding), func(m *MediaType, f *low.FieldSource[low.Result[low.Map[low.Result[*Encoding]]]]) { m.Encoding = f })).
		Extensions(func(m *MediaType, ext low.Extensions) { m.Extensions = ext })

	encodingFields = low.NewFields[Encoding]("Encoding").
		Scalar("contentType", func(e *Encoding, f *low.FieldSource[any]) { e.ContentType = f }).
		Nested("headers", low.Field(buildHeaderMap, func(e *Encoding, f *low.FieldSource[low.Result[low.Map[HeaderOrReference]]]) { e.Headers = f })).
		Scalar("style", func(e *Encoding, f *low.FieldSource[any]) { e.Style = f }).
		Scalar("explode", func(e *Encoding, f *low.FieldSource[any]) { e.Explode = f }).
		Scalar("allowReserved", func(e *Encoding, f *low.FieldSource[any]) { e.AllowReserved = f }).
		Extensions(func(e *Encoding, ext low.Extensions) { e.Extensions = ext })

	exampleFields = low.NewFields[Example]("Example").
		Scalar("summary", func(e *Example, f *low.FieldSource[any]) { e.Summary = f }).
		Scalar("description", func(e *Example, f *low.FieldSource[any]) { e.Description = f }).
		Scalar("value", func(e *Example, f *low.FieldSource[any]) { e.Value = f }).
		Scalar("externalValue", func(e *Example, f *low.FieldSource[any]) { e.ExternalValue = f }).
		Extensions(func(e *Example, ext low.Extensions) { e.Extensions = ext })
}

// BuildParameter builds a Parameter Object from node.
func BuildParameter(node *yaml.Node, ctx *low.Context) low.Result[*Parameter] {
	return low.BuildModel(node, ctx, parameterFields, func(root *yaml.Node) *Parameter {
		return &Parameter{RootNode: root}
	})
}

// BuildHeader builds a Header Object from node.
func BuildHeader(node *yaml.Node, ctx *low.Context) low.Result[*Header] {
	return low.BuildModel(node, ctx, headerFields, func(root *yaml.Node) *Header {
		return &Header{RootNode: root}
	})
}

// BuildRequestBody builds a Request Body Object from node.
func BuildRequestBody(node *yaml.Node, ctx *low.Context) low.Result[*RequestBody] {
	return low.BuildModel(node, ctx, requestBodyFields, func(root *yaml.Node) *RequestBody {
		return &RequestBody{RootNode: root}
	})
}

// BuildMediaType builds a Media Type Object from node.
func BuildMediaType(node *yaml.Node, ctx *low.Context) low.Result[*MediaType] {
	return low.BuildModel(node, ctx, mediaTypeFields, func(root *yaml.Node) *MediaType {
		return &MediaType{RootNode: root}
	})
}

// BuildEncoding builds an Encoding Object from node.
func BuildEncoding(node *yaml.Node, ctx *low.Context) low.Result[*Encoding] {
	return low.BuildModel(node, ctx, encodingFields, func(root *yaml.Node) *Encoding {
		return &Encoding{RootNode: root}
	})
}

// BuildExample builds an Example Object from node.
func BuildExample(node *yaml.Node, ctx *low.Context) low.Result[*Example] {
	return low.BuildModel(node, ctx, exampleFields, func(root *yaml.Node) *Example {
		return &Example{RootNode: root}
	})
}
