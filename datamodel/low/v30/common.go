package v30

import (
	"go.yaml.in/yaml/v4"

	"github.com/jentic/jentic-openapi-tools-sub001/datamodel/low"
)

// Info provides metadata about the API
type Info struct {
	RootNode       *yaml.Node
	Title          *low.FieldSource[any]
	Description    *low.FieldSource[any]
	TermsOfService *low.FieldSource[any]
	Contact        *low.FieldSource[low.Result[*Contact]]
	License        *low.FieldSource[low.Result[*License]]
	Version        *low.FieldSource[any]
	Extensions     low.Extensions
}

// Contact information for the exposed API
type Contact struct {
	RootNode   *yaml.Node
	Name       *low.FieldSource[any]
	URL        *low.FieldSource[any]
	Email      *low.FieldSource[any]
	Extensions low.Extensions
}

// License information for the exposed API
type License struct {
	RootNode   *yaml.Node
	Name       *low.FieldSource[any]
	URL        *low.FieldSource[any]
	Extensions low.Extensions
}

// ExternalDocumentation allows referencing external documentation
type ExternalDocumentation struct {
	RootNode    *yaml.Node
	Description *low.FieldSource[any]
	URL         *low.FieldSource[any]
	Extensions  low.Extensions
}

// Tag adds metadata to a single tag used by operations
type Tag struct {
	RootNode     *yaml.Node
	Name         *low.FieldSource[any]
	Description  *low.FieldSource[any]
	ExternalDocs *low.FieldSource[low.Result[*ExternalDocumentation]]
	Extensions   low.Extensions
}

// Server represents a Server object
type Server struct {
	RootNode    *yaml.Node
	URL         *low.FieldSource[any]
	Description *low.FieldSource[any]
	Variables   *low.FieldSource[low.Result[low.Map[low.Result[*ServerVariable]]]]
	Extensions  low.Extensions
}

// ServerVariable represents a Server Variable object
type ServerVariable struct {
	RootNode    *yaml.Node
	Enum        *low.FieldSource[any]
	Default     *low.FieldSource[any]
	Description *low.FieldSource[any]
	Extensions  low.Extensions
}

var (
	infoFields                  *low.Fields[Info]
	contactFields               *low.Fields[Contact]
	licenseFields               *low.Fields[License]
	externalDocumentationFields *low.Fields[ExternalDocumentation]
	tagFields                   *low.Fields[Tag]
	serverFields                *low.Fields[Server]
	serverVariableFields        *low.Fields[ServerVariable]
)

func init() {
	infoFields = low.NewFields[Info]("Info").
		Scalar("title", func(i *Info, f *low.FieldSource[any]) { i.Title = f }).
		Scalar("description", func(i *Info, f *low.FieldSource[any]) { i.Description = f }).
		Scalar("termsOfService", func(i *Info, f *low.FieldSource[any]) { i.TermsOfService = f }).
		Nested("contact", low.Field(BuildContact, func(i *Info, f *low.FieldSource[low.Result[*Contact]]) { i.Contact = f })).
		Nested("license", low.Field(BuildLicense, func(i *Info, f *low.FieldSource[low.Result[*License]]) { i.License = f })).
		Scalar("version", func(i *Info, f *low.FieldSource[any]) { i.Version = f }).
		Extensions(func(i *Info, ext low.Extensions) { i.Extensions = ext })

	contactFields = low.NewFields[Contact]("Contact").
		Scalar("name", func(c *Contact, f *low.FieldSource[any]) { c.Name = f }).
		Scalar("url", func(c *Contact, f *low.FieldSource[any]) { c.URL = f }).
		Scalar("email", func(c *Contact, f *low.FieldSource[any]) { c.Email = f }).
		Extensions(func(c *Contact, ext low.Extensions) { c.Extensions = ext })

	licenseFields = low.NewFields[License]("License").
		Scalar("name", func(l *License, f *low.FieldSource[any]) { l.Name = f }).
		Scalar("url", func(l *License, f *low.FieldSource[any]) { l.URL = f }).
		Extensions(func(l *License, ext low.Extensions) { l.Extensions = ext })

	externalDocumentationFields = low.NewFields[ExternalDocumentation]("ExternalDocumentation").
		Scalar("description", func(d *ExternalDocumentation, f *low.FieldSource[any]) { d.Description = f }).
		Scalar("url", func(d *ExternalDocumentation, f *low.FieldSource[any]) { d.URL = f }).
		Extensions(func(d *ExternalDocumentation, ext low.Extensions) { d.Extensions = ext })

	tagFields = low.NewFields[Tag]("Tag").
		Scalar("name", func(t *Tag, f *low.FieldSource[any]) { t.Name = f }).
		Scalar("description", func(t *Tag, f *low.FieldSource[any]) { t.Description = f }).
		Nested("externalDocs", low.Field(BuildExternalDocumentation, func(t *Tag, f *low.FieldSource[low.Result[*ExternalDocumentation]]) {
			t.ExternalDocs = f
		})).
		Extensions(func(t *Tag, ext low.Extensions) { t.Extensions = ext })

	serverFields = low.NewFields[Server]("Server").
		Scalar("url", func(s *Server, f *low.FieldSource[any]) { s.URL = f }).
		Scalar("description", func(s *Server, f *low.FieldSource[any]) { s.Description = f }).
		Nested("variables", low.Field(low.MapOf(BuildServerVariable), func(s *Server, f *low.FieldSource[low.Result[low.Map[low.Result[*ServerVariable]]]]) {
			s.Variables = f
		})).
		Extensions(func(s *Server, ext low.Extensions) { s.Extensions = ext })

	serverVariableFields = low.NewFields[ServerVariable]("ServerVariable").
		Scalar("enum", func(v *ServerVariable, f *low.FieldSource[any]) { v.Enum = f }).
		Scalar("default", func(v *ServerVariable, f *low.FieldSource[any]) { v.Default = f }).
		Scalar("description", func(v *ServerVariable, f *low.FieldSource[any]) { v.Description = f }).
		Extensions(func(v *ServerVariable, ext low.Extensions) { v.Extensions = ext })
}

// BuildInfo builds an Info Object from node.
func BuildInfo(node *yaml.Node, ctx *low.Context) low.Result[*Info] {
	return low.BuildModel(node, ctx, infoFields, func(root *yaml.Node) *Info {
		return &Info{RootNode: root}
	})
}

// BuildContact builds a Contact Object from node.
func BuildContact(node *yaml.Node, ctx *low.Context) low.Result[*Contact] {
	return low.BuildModel(node, ctx, contactFields, func(root *yaml.Node) *Contact {
		return &Contact{RootNode: root}
	})
}

// BuildLicense builds a License Object from node.
func BuildLicense(node *yaml.Node, ctx *low.Context) low.Result[*License] {
	return low.BuildModel(node, ctx, licenseFields, func(root *yaml.Node) *License {
		return &License{RootNode: root}
	})
}

// BuildExternalDocumentation builds an External Documentation Object from node.
func BuildExternalDocumentation(node *yaml.Node, ctx *low.Context) low.Result[*ExternalDocumentation] {
	return low.BuildModel(node, ctx, externalDocumentationFields, func(root *yaml.Node) *ExternalDocumentation {
		return &ExternalDocumentation{RootNode: root}
	})
}

// BuildTag builds a Tag Object from node.
func BuildTag(node *yaml.Node, ctx *low.Context) low.Result[*Tag] {
	return low.BuildModel(node, ctx, tagFields, func(root *yaml.Node) *Tag {
		return &Tag{RootNode: root}
	})
}

// BuildServer builds a Server Object from node.
func BuildServer(node *yaml.Node, ctx *low.Context) low.Result[*Server] {
	return low.BuildModel(node, ctx, serverFields, func(root *yaml.Node) *Server {
		return &Server{RootNode: root}
	})
}

// BuildServerVariable builds a Server Variable Object from node.
func BuildServerVariable(node *yaml.Node, ctx *low.Context) low.Result[*ServerVariable] {
	return low.BuildModel(node, ctx, serverVariableFields, func(root *yaml.Node) *ServerVariable {
		return &ServerVariable{RootNode: root}
	})
}
