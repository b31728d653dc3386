package v30

import (
	"go.yaml.in/yaml/v4"

	"github.com/jentic/jentic-openapi-tools-sub001/datamodel/low"
)

// Paths holds the relative paths to endpoints. Only keys that begin with "/"
// are admitted; other keys are dropped from Paths and show up in the
// unknown-field query.
type Paths struct {
	RootNode   *yaml.Node
	Paths      low.Map[low.Result[*PathItem]]
	Extensions low.Extensions
}

// PathItem describes operations available on a single path
type PathItem struct {
	RootNode    *yaml.Node
	Ref         *low.FieldSource[any]
	Summary     *low.FieldSource[any]
	Description *low.FieldSource[any]
	Get         *low.FieldSource[low.Result[*Operation]]
	Put         *low.FieldSource[low.Result[*Operation]]
	Post        *low.FieldSource[low.Result[*Operation]]
	Delete      *low.FieldSource[low.Result[*Operation]]
	Options     *low.FieldSource[low.Result[*Operation]]
	Head        *low.FieldSource[low.Result[*Operation]]
	Patch       *low.FieldSource[low.Result[*Operation]]
	Trace       *low.FieldSource[low.Result[*Operation]]
	Servers     *low.FieldSource[low.Result[[]low.Result[*Server]]]
	Parameters  *low.FieldSource[low.Result[[]ParameterOrReference]]
	Extensions  low.Extensions
}

// Operation describes an API operation
type Operation struct {
	RootNode     *yaml.Node
	Tags         *low.FieldSource[low.Result[[]low.ValueSource[any]]]
	Summary      *low.FieldSource[any]
	Description  *low.FieldSource[any]
	ExternalDocs *low.FieldSource[low.Result[*ExternalDocumentation]]
	OperationID  *low.FieldSource[any]
	Parameters   *low.FieldSource[low.Result[[]ParameterOrReference]]
	RequestBody  *low.FieldSource[RequestBodyOrReference]
	Responses    *low.FieldSource[low.Result[*Responses]]
	Callbacks    *low.FieldSource[low.Result[low.Map[CallbackOrReference]]]
	Deprecated   *low.FieldSource[any]
	Security     *low.FieldSource[low.Result[[]low.Result[*SecurityRequirement]]]
	Servers      *low.FieldSource[low.Result[[]low.Result[*Server]]]
	Extensions   low.Extensions
}

// Responses is a container for the expected responses of an operation.
// Default holds the "default" key; every other non-extension key (usually an
// HTTP status code or a range such as 2XX) lands in Responses.
type Responses struct {
	RootNode   *yaml.Node
	Default    *low.FieldSource[ResponseOrReference]
	Responses  low.Map[ResponseOrReference]
	Extensions low.Extensions
}

// Response describes a single response from an API operation
type Response struct {
	RootNode    *yaml.Node
	Description *low.FieldSource[any]
	Headers     *low.FieldSource[low.Result[low.Map[HeaderOrReference]]]
	Content     *low.FieldSource[low.Result[low.Map[low.Result[*MediaType]]]]
	Links       *low.FieldSource[low.Result[low.Map[LinkOrReference]]]
	Extensions  low.Extensions
}

// Callback is a map of runtime expressions to path items
type Callback struct {
	RootNode    *yaml.Node
	Expressions low.Map[low.Result[*PathItem]]
	Extensions  low.Extensions
}

// Link represents a possible design-time link for a response
type Link struct {
	RootNode     *yaml.Node
	OperationRef *low.FieldSource[any]
	OperationID  *low.FieldSource[any]
	Parameters   *low.FieldSource[low.Result[low.Map[low.ValueSource[any]]]]
	RequestBody  *low.FieldSource[any]
	Description  *low.FieldSource[any]
	Server       *low.FieldSource[low.Result[*Server]]
	Extensions   low.Extensions
}

var (
	pathsFields     *low.Fields[Paths]
	pathItemFields  *low.Fields[PathItem]
	operationFields *low.Fields[Operation]
	responsesFields *low.Fields[Responses]
	responseFields  *low.Fields[Response]
	callbackFields  *low.Fields[Callback]
	linkFields      *low.Fields[Link]
)

var (
	buildServerList    = low.ListOf(BuildServer)
	buildParameterList = low.ListOf(BuildParameterOrReference)
)

func init() {
	pathsFields = low.NewFields[Paths]("Paths").
		Patterned(low.IsPathTemplate, func(p *Paths, key low.KeySource[string], value *yaml.Node, ctx *low.Context) {
			p.Paths = append(p.Paths, low.Entry[low.Result[*PathItem]]{Key: key, Value: BuildPathItem(value, ctx)})
		}).
		Extensions(func(p *Paths, ext low.Extensions) { p.Extensions = ext })

	pathItemFields = low.NewFields[PathItem]("PathItem").
		Scalar(low.RefKey, func(p *PathItem, f *low.FieldSource[any]) { p.Ref = f }).
		Scalar("summary", func(p *PathItem, f *low.FieldSource[any]) { p.Summary = f }).
		Scalar("description", func(p *PathItem, f *low.FieldSource[any]) { p.Description = f }).
		Nested("get", operation(func(p *PathItem, f *low.FieldSource[low.Result[*Operation]]) { p.Get = f })).
		Nested("put", operation(func(p *PathItem, f *low.FieldSource[low.Result[*Operation]]) { p.Put = f })).
		Nested("post", operation(func(p *PathItem, f *low.FieldSource[low.Result[*Operation]]) { p.Post = f })).
		Nested("delete", operation(func(p *PathItem, f *low.FieldSource[low.Result[*Operation]]) { p.Delete = f })).
		Nested("options", operation(func(p *PathItem, f *low.FieldSource[low.Result[*Operation]]) { p.Options = f })).
		Nested("head", operation(func(p *PathItem, f *low.FieldSource[low.Result[*Operation]]) { p.Head = f })).
		Nested("patch", operation(func(p *PathItem, f *low.FieldSource[low.Result[*Operation]]) { p.Patch = f })).
		Nested("trace", operation(func(p *PathItem, f *low.FieldSource[low.Result[*Operation]]) { p.Trace = f })).
		Nested("servers", low.Field(buildServerList, func(p *PathItem, f *low.FieldSource[low.Result[[]low.Result[*Server]]]) { p.Servers = f })).
		Nested("parameters", low.Field(buildParameterList, func(p *PathItem, f *low.FieldSource[low.Result[[]ParameterOrReference]]) { p.Parameters = f })).
		Extensions(func(p *PathItem, ext low.Extensions) { p.Extensions = ext })

	operationFields = low.NewFields[Operation]("Operation").
		Nested("tags", low.Field(low.BuildValueList, func(o *Operation, f *low.FieldSource[low.Result[[]low.ValueSource[any]]]) { o.Tags = f })).
		Scalar("summary", func(o *Operation, f *low.FieldSource[any]) { o.Summary = f }).
		Scalar("description", func(o *Operation, f *low.FieldSource[any]) { o.Description = f }).
		Nested("externalDocs", low.Field(BuildExternalDocumentation, func(o *Operation, f *low.FieldSource[low.Result[*ExternalDocumentation]]) {
			o.ExternalDocs = f
		})).
		Scalar("operationId", func(o *Operation, f *low.FieldSource[any]) { o.OperationID = f }).
		Nested("parameters", low.Field(buildParameterList, func(o *Operation, f *low.FieldSource[low.Result[[]ParameterOrReference]]) { o.Parameters = f })).
		Nested("requestBody", low.Field(BuildRequestBodyOrReference, func(o *Operation, f *low.FieldSource[RequestBodyOrReference]) { o.RequestBody = f })).
		Nested("responses", low.Field(BuildResponses, func(o *Operation, f *low.FieldSource[low.Result[*Responses]]) { o.Responses = f })).
		Nested("callbacks", low.Field(low.MapOf(BuildCallbackOrReference), func(o *Operation, f *low.FieldSource[low.Result[low.Map[CallbackOrReference]]]) {
			o.Callbacks = f
		})).
		Scalar("deprecated", func(o *Operation, f *low.FieldSource[any]) { o.Deprecated = f }).
		Nested("security", low.Field(low.ListOf(BuildSecurityRequirement), func(o *Operation, f *low.FieldSource[low.Result[[]low.Result[*SecurityRequirement]]]) {
			o.Security = f
		})).
		Nested("servers", low.Field(buildServerList, func(o *Operation, f *low.FieldSource[low.Result[[]low.Result[*Server]]]) { o.Servers = f })).
		Extensions(func(o *Operation, ext low.Extensions) { o.Extensions = ext })

	responsesFields = low.NewFields[Responses]("Responses").
		Nested("default", low.Field(BuildResponseOrReference, func(r *Responses, f *low.FieldSource[ResponseOrReference]) { r.Default = f })).
		Patterned(low.AnyKey, func(r *Responses, key low.KeySource[string], value *yaml.Node, ctx *low.Context) {
			r.Responses = append(r.Responses, low.Entry[ResponseOrReference]{Key: key, Value: BuildResponseOrReference(value, ctx)})
		}).
		Extensions(func(r *Responses, ext low.Extensions) { r.Extensions = ext })

	responseFields = low.NewFields[Response]("Response").
		Scalar("description", func(r *Response, f *low.FieldSource[any]) { r.Description = f }).
		Nested("headers", low.Field(buildHeaderMap, func(r *Response, f *low.FieldSource[low.Result[low.Map[HeaderOrReference]]]) { r.Headers = f })).
		Nested("content", low.Field(buildMediaTypeMap, func(r *Response, f *low.FieldSource[low.Result[low.Map[low.Result[*MediaType]]]]) { r.Content = f })).
		Nested("links", low.Field(low.MapOf(BuildLinkOrReference), func(r *Response, f *low.FieldSource[low.Result[low.Map[LinkOrReference]]]) { r.Links = f })).
		Extensions(func(r *Response, ext low.Extensions) { r.Extensions = ext })

	callbackFields = low.NewFields[Callback]("Callback").
		Patterned(low.AnyKey, func(c *Callback, key low.KeySource[string], value *yaml.Node, ctx *low.Context) {
			c.Expressions = append(c.Expressions, low.Entry[low.Result[*PathItem]]{Key: key, Value: BuildPathItem(value, ctx)})
		}).
		Extensions(func(c *Callback, ext low.Extensions) { c.Extensions = ext })

	linkFields = low.NewFields[Link]("Link").
		Scalar("operationRef", func(l *Link, f *low.FieldSource[any]) { l.OperationRef = f }).
		Scalar("operationId", func(l *Link, f *low.FieldSource[any]) { l.OperationID = f }).
		Nested("parameters", low.Field(low.BuildValueMap, func(l *Link, f *low.FieldSource[low.Result[low.Map[low.ValueSource[any]]]]) { l.Parameters = f })).
		Scalar("requestBody", func(l *Link, f *low.FieldSource[any]) { l.RequestBody = f }).
		Scalar("description", func(l *Link, f *low.FieldSource[any]) { l.Description = f }).
		Nested("server", low.Field(BuildServer, func(l *Link, f *low.FieldSource[low.Result[*Server]]) { l.Server = f })).
		Extensions(func(l *Link, ext low.Extensions) { l.Extensions = ext })
}

func operation(set func(*PathItem, *low.FieldSource[low.Result[*Operation]])) func(*PathItem, *yaml.Node, *yaml.Node, *low.Context) {
	return low.Field(BuildOperation, set)
}

// BuildPaths builds a Paths Object from node.
func BuildPaths(node *yaml.Node, ctx *low.Context) low.Result[*Paths] {
	return low.BuildModel(node, ctx, pathsFields, func(root *yaml.Node) *Paths {
		return &Paths{RootNode: root, Paths: low.Map[low.Result[*PathItem]]{}}
	})
}

// BuildPathItem builds a Path Item Object from node. A $ref key is kept as
// a field; Path Items are not Reference Objects in OpenAPI 3.0.
func BuildPathItem(node *yaml.Node, ctx *low.Context) low.Result[*PathItem] {
	return low.BuildModel(node, ctx, pathItemFields, func(root *yaml.Node) *PathItem {
		return &PathItem{RootNode: root}
	})
}

// BuildOperation builds an Operation Object from node.
func BuildOperation(node *yaml.Node, ctx *low.Context) low.Result[*Operation] {
	return low.BuildModel(node, ctx, operationFields, func(root *yaml.Node) *Operation {
		return &Operation{RootNode: root}
	})
}

// BuildResponses builds a Responses Object from node.
func BuildResponses(node *yaml.Node, ctx *low.Context) low.Result[*Responses] {
	return low.BuildModel(node, ctx, responsesFields, func(root *yaml.Node) *Responses {
		return &Responses{RootNode: root, Responses: low.Map[ResponseOrReference]{}}
	})
}

// BuildResponse builds a Response Object from node.
func BuildResponse(node *yaml.Node, ctx *low.Context) low.Result[*Response] {
	return low.BuildModel(node, ctx, responseFields, func(root *yaml.Node) *Response {
		return &Response{RootNode: root}
	})
}

// BuildCallback builds a Callback Object from node.
func BuildCallback(node *yaml.Node, ctx *low.Context) low.Result[*Callback] {
	return low.BuildModel(node, ctx, callbackFields, func(root *yaml.Node) *Callback {
		return &Callback{RootNode: root, Expressions: low.Map[low.Result[*PathItem]]{}}
	})
}

// BuildLink builds a Link Object from node.
func BuildLink(node *yaml.Node, ctx *low.Context) low.Result[*Link] {
	return low.BuildModel(node, ctx, linkFields, func(root *yaml.Node) *Link {
		return &Link{RootNode: root}
	})
}
