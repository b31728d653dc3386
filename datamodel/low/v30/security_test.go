package v30

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jentic/jentic-openapi-tools-sub001/datamodel/low"
	"github.com/jentic/jentic-openapi-tools-sub001/internal/testutil"
)

func TestBuildSecurityScheme_OAuth2(t *testing.T) {
	node := testutil.Compose(t, `
		type: oauth2
		description: OAuth
		flows:
		  implicit:
		    authorizationUrl: https://auth/authorize
		    scopes:
		      read:pets: read your pets
		      write:pets: modify pets
		  password:
		    tokenUrl: https://auth/token
		    scopes: {}
		  clientCredentials:
		    tokenUrl: https://auth/token
		    refreshUrl: https://auth/refresh
		    scopes: {}
		  authorizationCode: invalid
		  x-flows: 1
		openIdConnectUrl: https://auth/.well-known
		bearerFormat: JWT
		x-scheme: 2
	`)
	scheme, ok := BuildSecurityScheme(node, nil).Get()
	require.True(t, ok)
	assert.Equal(t, "oauth2", scheme.Type.Value)
	assert.Equal(t, "JWT", scheme.BearerFormat.Value)
	assert.Equal(t, "https://auth/.well-known", scheme.OpenIDConnectURL.Value)
	assert.Equal(t, []string{"x-scheme"}, scheme.Extensions.Keys())

	flows, ok := scheme.Flows.Value.Get()
	require.True(t, ok)
	assert.Equal(t, []string{"x-flows"}, flows.Extensions.Keys())

	implicit, ok := flows.Implicit.Value.Get()
	require.True(t, ok)
	assert.Equal(t, "https://auth/authorize", implicit.AuthorizationURL.Value)
	scopes, ok := implicit.Scopes.Value.Get()
	require.True(t, ok)
	assert.Equal(t, []string{"read:pets", "write:pets"}, scopes.Keys())

	password, ok := flows.Password.Value.Get()
	require.True(t, ok)
	assert.Equal(t, "https://auth/token", password.TokenURL.Value)

	cc, ok := flows.ClientCredentials.Value.Get()
	require.True(t, ok)
	assert.Equal(t, "https://auth/refresh", cc.RefreshURL.Value)

	require.NotNil(t, flows.AuthorizationCode)
	assert.False(t, flows.AuthorizationCode.Value.IsValid())
	assert.Equal(t, "invalid", flows.AuthorizationCode.Value.Invalid.Value)
}

func TestBuildSecurityRequirement(t *testing.T) {
	node := testutil.Compose(t, `
		petstore_auth: [write:pets, read:pets]
		api_key: []
		x-looks-like-extension: []
		401: []
		broken: not-a-list
	`)
	var reports []low.Report
	ctx := low.NewContext(low.WithReporter(low.ReporterFunc(func(r low.Report) { reports = append(reports, r) })))

	req, ok := BuildSecurityRequirement(node, ctx).Get()
	require.True(t, ok)
	assert.Equal(t, []string{"petstore_auth", "api_key", "x-looks-like-extension", "broken"}, req.Requirements.Keys())

	auth, _ := req.Requirements.Get("petstore_auth")
	scopes, ok := auth.Get()
	require.True(t, ok)
	require.Len(t, scopes, 2)
	assert.Equal(t, "write:pets", scopes[0].Value)
	assert.Equal(t, "read:pets", scopes[1].Value)

	broken, _ := req.Requirements.Get("broken")
	assert.False(t, broken.IsValid())

	fs, _ := FieldSet("SecurityRequirement")
	assert.Equal(t, []string{"401"}, low.ExtractUnknownFields(node, fs, nil).Keys())

	kinds := make([]low.ReportKind, 0, len(reports))
	for _, r := range reports {
		kinds = append(kinds, r.Kind)
	}
	assert.ElementsMatch(t, []low.ReportKind{low.ReportDroppedKey, low.ReportShapeMismatch}, kinds)
}

func TestBuildSecuritySchemeOrReference(t *testing.T) {
	ref := BuildSecuritySchemeOrReference(testutil.Compose(t, `$ref: '#/components/securitySchemes/k'`), nil)
	assert.True(t, ref.IsReference())

	obj := BuildSecuritySchemeOrReference(testutil.Compose(t, `type: http`), nil)
	require.True(t, obj.IsObject())
	assert.Equal(t, "http", obj.Object.Type.Value)
}
