package v31

import (
	"go.yaml.in/yaml/v4"

	"github.com/jentic/jentic-openapi-tools-sub001/datamodel/low"
)

// OpenAPI is the root object of an OpenAPI 3.1.x document. Paths is optional
// in 3.1; a document may describe only webhooks or components.
type OpenAPI struct {
	RootNode          *yaml.Node
	OpenAPI           *low.FieldSource[any]
	Info              *low.FieldSource[low.Result[*Info]]
	JSONSchemaDialect *low.FieldSource[any]
	Servers           *low.FieldSource[low.Result[[]low.Result[*Server]]]
	Paths             *low.FieldSource[low.Result[*Paths]]
	Webhooks          *low.FieldSource[low.Result[low.Map[PathItemOrReference]]]
	Components        *low.FieldSource[low.Result[*Components]]
	Security          *low.FieldSource[low.Result[[]low.Result[*SecurityRequirement]]]
	Tags              *low.FieldSource[low.Result[[]low.Result[*Tag]]]
	ExternalDocs      *low.FieldSource[low.Result[*ExternalDocumentation]]
	Extensions        low.Extensions
}

// Components holds reusable objects for different aspects of the OAS
type Components struct {
	RootNode        *yaml.Node
	Schemas         *low.FieldSource[low.Result[low.Map[SchemaOrReference]]]
	Responses       *low.FieldSource[low.Result[low.Map[ResponseOrReference]]]
	Parameters      *low.FieldSource[low.Result[low.Map[ParameterOrReference]]]
	Examples        *low.FieldSource[low.Result[low.Map[ExampleOrReference]]]
	RequestBodies   *low.FieldSource[low.Result[low.Map[RequestBodyOrReference]]]
	Headers         *low.FieldSource[low.Result[low.Map[HeaderOrReference]]]
	SecuritySchemes *low.FieldSource[low.Result[low.Map[SecuritySchemeOrReference]]]
	Links           *low.FieldSource[low.Result[low.Map[LinkOrReference]]]
	Callbacks       *low.FieldSource[low.Result[low.Map[CallbackOrReference]]]
	PathItems       *low.FieldSource[low.Result[low.Map[PathItemOrReference]]]
	Extensions      low.Extensions
}

var (
	openAPIFields    *low.Fields[OpenAPI]
	componentsFields *low.Fields[Components]
)

var buildPathItemMap = low.MapOf(BuildPathItemOrReference)

func init() {
	openAPIFields = low.NewFields[OpenAPI]("OpenAPI").
		Scalar("openapi", func(o *OpenAPI, f *low.FieldSource[any]) { o.OpenAPI = f }).
		Nested("info", low.Field(BuildInfo, func(o *OpenAPI, f *low.FieldSource[low.Result[*Info]]) { o.Info = f })).
		Scalar("jsonSchemaDialect", func(o *OpenAPI, f *low.FieldSource[any]) { o.JSONSchemaDialect = f }).
		Nested("servers", low.Field(buildServerList, func(o *OpenAPI, f *low.FieldSource[low.Result[[]low.Result[*Server]]]) { o.Servers = f })).
		Nested("paths", low.Field(BuildPaths, func(o *OpenAPI, f *low.FieldSource[low.Result[*Paths]]) { o.Paths = f })).
		Nested("webhooks", low.Field(buildPathItemMap, func(o *OpenAPI, f *low.FieldSource[low.Result[low.Map[PathItemOrReference]]]) { o.Webhooks = f })).
		Nested("components", low.Field(BuildComponents, func(o *OpenAPI, f *low.FieldSource[low.Result[*Components]]) { o.Components = f })).
		Nested("security", low.Field(low.ListOf(BuildSecurityRequirement), func(o *OpenAPI, f *low.FieldSource[low.Result[[]low.Result[*SecurityRequirement]]]) {
			o.Security = f
		})).
		Nested("tags", low.Field(low.ListOf(BuildTag), func(o *OpenAPI, f *low.FieldSource[low.Result[[]low.Result[*Tag]]]) { o.Tags = f })).
		Nested("externalDocs", low.Field(BuildExternalDocumentation, func(o *OpenAPI, f *low.FieldSource[low.Result[*ExternalDocumentation]]) {
			o.ExternalDocs = f
		})).
		Extensions(func(o *OpenAPI, ext low.Extensions) { o.Extensions = ext })

	componentsFields = low.NewFields[Components]("Components").
		Nested("schemas", low.Field(low.MapOf(BuildSchemaOrReference), func(c *Components, f *low.FieldSource[low.Result[low.Map[SchemaOrReference]]]) {
			c.Schemas = f
		})).
		Nested("responses", low.Field(low.MapOf(BuildResponseOrReference), func(c *Components, f *low.FieldSource[low.Result[low.Map[ResponseOrReference]]]) {
			c.Responses = f
		})).
		Nested("parameters", low.Field(low.MapOf(BuildParameterOrReference), func(c *Components, f *low.FieldSource[low.Result[low.Map[ParameterOrReference]]]) {
			c.Parameters = f
		})).
		Nested("examples", low.Field(buildExampleMap, func(c *Components, f *low.FieldSource[low.Result[low.Map[ExampleOrReference]]]) {
			c.Examples = f
		})).
		Nested("requestBodies", low.Field(low.MapOf(BuildRequestBodyOrReference), func(c *Components, f *low.FieldSource[low.Result[low.Map[RequestBodyOrReference]]]) {
			c.RequestBodies = f
		})).
		Nested("headers", low.Field(buildHeaderMap, func(c *Components, f *low.FieldSource[low.Result[low.Map[HeaderOrReference]]]) {
			c.Headers = f
		})).
		Nested("securitySchemes", low.Field(low.MapOf(BuildSecuritySchemeOrReference), func(c *Components, f *low.FieldSource[low.Result[low.Map[SecuritySchemeOrReference]]]) {
			c.SecuritySchemes = f
		})).
		Nested("links", low.Field(low.MapOf(BuildLinkOrReference), func(c *Components, f *low.FieldSource[low.Result[low.Map[LinkOrReference]]]) {
			c.Links = f
		})).
		Nested("callbacks", low.Field(low.MapOf(BuildCallbackOrReference), func(c *Components, f *low.FieldSource[low.Result[low.Map[CallbackOrReference]]]) {
			c.Callbacks = f
		})).
		Nested("pathItems", low.Field(buildPathItemMap, func(c *Components, f *low.FieldSource[low.Result[low.Map[PathItemOrReference]]]) {
			c.PathItems = f
		})).
		Extensions(func(c *Components, ext low.Extensions) { c.Extensions = ext })
}

// BuildOpenAPI builds the root OpenAPI Object of a 3.1.x document from node,
// the content node of the parsed document.
func BuildOpenAPI(node *yaml.Node, ctx *low.Context) low.Result[*OpenAPI] {
	return low.BuildModel(node, ctx, openAPIFields, func(root *yaml.Node) *OpenAPI {
		return &OpenAPI{RootNode: root}
	})
}

// BuildComponents builds a Components Object from node.
func BuildComponents(node *yaml.Node, ctx *low.Context) low.Result[*Components] {
	return low.BuildModel(node, ctx, componentsFields, func(root *yaml.Node) *Components {
		return &Components{RootNode: root}
	})
}
