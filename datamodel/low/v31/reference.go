package v31

import (
	"go.yaml.in/yaml/v4"

	"github.com/jentic/jentic-openapi-tools-sub001/datamodel/low"
)

// Reference represents a Reference Object. OpenAPI 3.1 allows summary and
// description next to $ref; the object still does not support extensions.
type Reference struct {
	RootNode    *yaml.Node
	Ref         *low.FieldSource[any]
	Summary     *low.FieldSource[any]
	Description *low.FieldSource[any]
}

var referenceFields *low.Fields[Reference]

func init() {
	referenceFields = low.NewFields[Reference]("Reference").
		Scalar(low.RefKey, func(r *Reference, f *low.FieldSource[any]) { r.Ref = f }).
		Scalar("summary", func(r *Reference, f *low.FieldSource[any]) { r.Summary = f }).
		Scalar("description", func(r *Reference, f *low.FieldSource[any]) { r.Description = f })
}

// BuildReference builds a Reference Object from node.
func BuildReference(node *yaml.Node, ctx *low.Context) low.Result[*Reference] {
	return low.BuildModel(node, ctx, referenceFields, func(root *yaml.Node) *Reference {
		return &Reference{RootNode: root}
	})
}

// Object-or-reference unions.
type (
	SchemaOrReference         = low.OrReference[*Schema, *Reference]
	ParameterOrReference      = low.OrReference[*Parameter, *Reference]
	ResponseOrReference       = low.OrReference[*Response, *Reference]
	ExampleOrReference        = low.OrReference[*Example, *Reference]
	HeaderOrReference         = low.OrReference[*Header, *Reference]
	RequestBodyOrReference    = low.OrReference[*RequestBody, *Reference]
	LinkOrReference           = low.OrReference[*Link, *Reference]
	CallbackOrReference       = low.OrReference[*Callback, *Reference]
	SecuritySchemeOrReference = low.OrReference[*SecurityScheme, *Reference]
	PathItemOrReference       = low.OrReference[*PathItem, *Reference]
)

// BuildSchemaOrReference builds node as a Schema or, if it has a $ref key, a
// Reference. A mapping with $ref is a Reference whatever its sibling
// keywords; [BuildSchema] called directly keeps $ref as a keyword.
func BuildSchemaOrReference(node *yaml.Node, ctx *low.Context) SchemaOrReference {
	return low.BuildOrReference(node, ctx, low.RefKey, BuildReference, BuildSchema)
}

// BuildParameterOrReference builds node as a Parameter or a Reference.
func BuildParameterOrReference(node *yaml.Node, ctx *low.Context) ParameterOrReference {
	return low.BuildOrReference(node, ctx, low.RefKey, BuildReference, BuildParameter)
}

// BuildResponseOrReference builds node as a Response or a Reference.
func BuildResponseOrReference(node *yaml.Node, ctx *low.Context) ResponseOrReference {
	return low.BuildOrReference(node, ctx, low.RefKey, BuildReference, BuildResponse)
}

// BuildExampleOrReference builds node as an Example or a Reference.
func BuildExampleOrReference(node *yaml.Node, ctx *low.Context) ExampleOrReference {
	return low.BuildOrReference(node, ctx, low.RefKey, BuildReference, BuildExample)
}

// BuildHeaderOrReference builds node as a Header or a Reference.
func BuildHeaderOrReference(node *yaml.Node, ctx *low.Context) HeaderOrReference {
	return low.BuildOrReference(node, ctx, low.RefKey, BuildReference, BuildHeader)
}

// BuildRequestBodyOrReference builds node as a Request Body or a Reference.
func BuildRequestBodyOrReference(node *yaml.Node, ctx *low.Context) RequestBodyOrReference {
	return low.BuildOrReference(node, ctx, low.RefKey, BuildReference, BuildRequestBody)
}

// BuildLinkOrReference builds node as a Link or a Reference.
func BuildLinkOrReference(node *yaml.Node, ctx *low.Context) LinkOrReference {
	return low.BuildOrReference(node, ctx, low.RefKey, BuildReference, BuildLink)
}

// BuildCallbackOrReference builds node as a Callback or a Reference.
func BuildCallbackOrReference(node *yaml.Node, ctx *low.Context) CallbackOrReference {
	return low.BuildOrReference(node, ctx, low.RefKey, BuildReference, BuildCallback)
}

// BuildSecuritySchemeOrReference builds node as a Security Scheme or a Reference.
func BuildSecuritySchemeOrReference(node *yaml.Node, ctx *low.Context) SecuritySchemeOrReference {
	return low.BuildOrReference(node, ctx, low.RefKey, BuildReference, BuildSecurityScheme)
}

// BuildPathItemOrReference builds node as a Path Item or a Reference. It is
// used for webhooks and components.pathItems; entries under paths are always
// built with [BuildPathItem], which keeps $ref as a field.
func BuildPathItemOrReference(node *yaml.Node, ctx *low.Context) PathItemOrReference {
	return low.BuildOrReference(node, ctx, low.RefKey, BuildReference, BuildPathItem)
}
