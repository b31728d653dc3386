package v30

import (
	"go.yaml.in/yaml/v4"

	"github.com/jentic/jentic-openapi-tools-sub001/datamodel/low"
)

// SecurityScheme defines a security scheme
type SecurityScheme struct {
	RootNode         *yaml.Node
	Type             *low.FieldSource[any]
	Description      *low.FieldSource[any]
	Name             *low.FieldSource[any]
	In               *low.FieldSource[any]
	Scheme           *low.FieldSource[any]
	BearerFormat     *low.FieldSource[any]
	Flows            *low.FieldSource[low.Result[*OAuthFlows]]
	OpenIDConnectURL *low.FieldSource[any]
	Extensions       low.Extensions
}

// OAuthFlows allows configuration of the supported OAuth Flows
type OAuthFlows struct {
	RootNode          *yaml.Node
	Implicit          *low.FieldSource[low.Result[*OAuthFlow]]
	Password          *low.FieldSource[low.Result[*OAuthFlow]]
	ClientCredentials *low.FieldSource[low.Result[*OAuthFlow]]
	AuthorizationCode *low.FieldSource[low.Result[*OAuthFlow]]
	Extensions        low.Extensions
}

// OAuthFlow contains configuration details for a supported OAuth Flow
type OAuthFlow struct {
	RootNode         *yaml.Node
	AuthorizationURL *low.FieldSource[any]
	TokenURL         *low.FieldSource[any]
	RefreshURL       *low.FieldSource[any]
	Scopes           *low.FieldSource[low.Result[low.Map[low.ValueSource[any]]]]
	Extensions       low.Extensions
}

// SecurityRequirement lists the security schemes required to execute an
// operation, keyed by scheme name. Every string key is a scheme name,
// including keys that start with "x-"; the object has no extensions.
// Non-string keys such as 401 are dropped.
type SecurityRequirement struct {
	RootNode     *yaml.Node
	Requirements low.Map[low.Result[[]low.ValueSource[any]]]
}

var (
	securitySchemeFields      *low.Fields[SecurityScheme]
	oauthFlowsFields          *low.Fields[OAuthFlows]
	oauthFlowFields           *low.Fields[OAuthFlow]
	securityRequirementFields *low.Fields[SecurityRequirement]
)

func init() {
	securitySchemeFields = low.NewFields[SecurityScheme]("SecurityScheme").
		Scalar("type", func(s *SecurityScheme, f *low.FieldSource[any]) { s.Type = f }).
		Scalar("description", func(s *SecurityScheme, f *low.FieldSource[any]) { s.Description = f }).
		Scalar("name", func(s *SecurityScheme, f *low.FieldSource[any]) { s.Name = f }).
		Scalar("in", func(s *SecurityScheme, f *low.FieldSource[any]) { s.In = f }).
		Scalar("scheme", func(s *SecurityScheme, f *low.FieldSource[any]) { s.Scheme = f }).
		Scalar("bearerFormat", func(s *SecurityScheme, f *low.FieldSource[any]) { s.BearerFormat = f }).
		Nested("flows", low.Field(BuildOAuthFlows, func(s *SecurityScheme, f *low.FieldSource[low.Result[*OAuthFlows]]) { s.Flows = f })).
		Scalar("openIdConnectUrl", func(s *SecurityScheme, f *low.FieldSource[any]) { s.OpenIDConnectURL = f }).
		Extensions(func(s *SecurityScheme, ext low.Extensions) { s.Extensions = ext })

	oauthFlowsFields = low.NewFields[OAuthFlows]("OAuthFlows").
		Nested("implicit", low.Field(BuildOAuthFlow, func(o *OAuthFlows, f *low.FieldSource[low.Result[*OAuthFlow]]) { o.Implicit = f })).
		Nested("password", low.Field(BuildOAuthFlow, func(o *OAuthFlows, f *low.FieldSource[low.Result[*OAuthFlow]]) { o.Password = f })).
		Nested("clientCredentials", low.Field(BuildOAuthFlow, func(o *OAuthFlows, f *low.FieldSource[low.Result[*OAuthFlow]]) { o.ClientCredentials = f })).
		Nested("authorizationCode", low.Field(BuildOAuthFlow, func(o *OAuthFlows, f *low.FieldSource[low.Result[*OAuthFlow]]) { o.AuthorizationCode = f })).
		Extensions(func(o *OAuthFlows, ext low.Extensions) { o.Extensions = ext })

	oauthFlowFields = low.NewFields[OAuthFlow]("OAuthFlow").
		Scalar("authorizationUrl", func(o *OAuthFlow, f *low.FieldSource[any]) { o.AuthorizationURL = f }).
		Scalar("tokenUrl", func(o *OAuthFlow, f *low.FieldSource[any]) { o.TokenURL = f }).
		Scalar("refreshUrl", func(o *OAuthFlow, f *low.FieldSource[any]) { o.RefreshURL = f }).
		Nested("scopes", low.Field(low.BuildValueMap, func(o *OAuthFlow, f *low.FieldSource[low.Result[low.Map[low.ValueSource[any]]]]) { o.Scopes = f })).
		Extensions(func(o *OAuthFlow, ext low.Extensions) { o.Extensions = ext })

	securityRequirementFields = low.NewFields[SecurityRequirement]("SecurityRequirement").
		Patterned(low.IsStringKey, func(s *SecurityRequirement, key low.KeySource[string], value *yaml.Node, ctx *low.Context) {
			s.Requirements = append(s.Requirements, low.Entry[low.Result[[]low.ValueSource[any]]]{
				Key:   key,
				Value: low.BuildValueList(value, ctx),
			})
		})
}

// BuildSecurityScheme builds a Security Scheme Object from node.
func BuildSecurityScheme(node *yaml.Node, ctx *low.Context) low.Result[*SecurityScheme] {
	return low.BuildModel(node, ctx, securitySchemeFields, func(root *yaml.Node) *SecurityScheme {
		return &SecurityScheme{RootNode: root}
	})
}

// BuildOAuthFlows builds an OAuth Flows Object from node.
func BuildOAuthFlows(node *yaml.Node, ctx *low.Context) low.Result[*OAuthFlows] {
	return low.BuildModel(node, ctx, oauthFlowsFields, func(root *yaml.Node) *OAuthFlows {
		return &OAuthFlows{RootNode: root}
	})
}

// BuildOAuthFlow builds an OAuth Flow Object from node.
func BuildOAuthFlow(node *yaml.Node, ctx *low.Context) low.Result[*OAuthFlow] {
	return low.BuildModel(node, ctx, oauthFlowFields, func(root *yaml.Node) *OAuthFlow {
		return &OAuthFlow{RootNode: root}
	})
}

// BuildSecurityRequirement builds a Security Requirement Object from node.
func BuildSecurityRequirement(node *yaml.Node, ctx *low.Context) low.Result[*SecurityRequirement] {
	return low.BuildModel(node, ctx, securityRequirementFields, func(root *yaml.Node) *SecurityRequirement {
		return &SecurityRequirement{RootNode: root, Requirements: low.Map[low.Result[[]low.ValueSource[any]]]{}}
	})
}
