package v31

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jentic/jentic-openapi-tools-sub001/datamodel/low"
	"github.com/jentic/jentic-openapi-tools-sub001/internal/testutil"
)

func TestBuildSecurityScheme_Types(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"mutual TLS", `{type: mutualTLS, description: Client certificates}`, "mutualTLS"},
		{"api key", `{type: apiKey, name: X-Key, in: header}`, "apiKey"},
		{"http bearer", `{type: http, scheme: bearer, bearerFormat: JWT}`, "http"},
		{"openid", `{type: openIdConnect, openIdConnectUrl: 'https://auth/.well-known'}`, "openIdConnect"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := testutil.Compose(t, tt.src)
			scheme, ok := BuildSecurityScheme(node, nil).Get()
			require.True(t, ok)
			assert.Equal(t, tt.want, scheme.Type.Value)

			fs, _ := FieldSet("SecurityScheme")
			assert.Empty(t, low.ExtractUnknownFields(node, fs, nil))
		})
	}
}

func TestBuildSecurityScheme_OAuth2(t *testing.T) {
	node := testutil.Compose(t, `
		type: oauth2
		flows:
		  authorizationCode:
		    authorizationUrl: https://auth/authorize
		    tokenUrl: https://auth/token
		    scopes:
		      read:pets: read your pets
		    x-flow: 1
		  deviceCode:
		    tokenUrl: https://auth/device
		x-scheme: 2
	`)
	var reports []low.Report
	ctx := low.NewContext(low.WithReporter(low.ReporterFunc(func(r low.Report) { reports = append(reports, r) })))

	scheme, ok := BuildSecurityScheme(node, ctx).Get()
	require.True(t, ok)
	assert.Equal(t, []string{"x-scheme"}, scheme.Extensions.Keys())

	flows, ok := scheme.Flows.Value.Get()
	require.True(t, ok)
	assert.Nil(t, flows.Implicit)

	code, ok := flows.AuthorizationCode.Value.Get()
	require.True(t, ok)
	assert.Equal(t, "https://auth/authorize", code.AuthorizationURL.Value)
	assert.Equal(t, "https://auth/token", code.TokenURL.Value)
	assert.Equal(t, []string{"x-flow"}, code.Extensions.Keys())
	scopes, ok := code.Scopes.Value.Get()
	require.True(t, ok)
	read, _ := scopes.Get("read:pets")
	assert.Equal(t, "read your pets", read.Value)

	require.Len(t, reports, 1)
	assert.Equal(t, low.ReportUnknownField, reports[0].Kind)
	assert.Equal(t, "OAuthFlows", reports[0].Object)
	assert.Equal(t, "deviceCode", reports[0].Key)
}

func TestBuildSecurityRequirement(t *testing.T) {
	node := testutil.Compose(t, `
		petstore_auth: [write:pets, read:pets]
		mtls: []
		401: []
		broken: {scopes: []}
	`)
	var reports []low.Report
	ctx := low.NewContext(low.WithReporter(low.ReporterFunc(func(r low.Report) { reports = append(reports, r) })))

	req, ok := BuildSecurityRequirement(node, ctx).Get()
	require.True(t, ok)
	assert.Equal(t, []string{"petstore_auth", "mtls", "broken"}, req.Requirements.Keys())

	auth, _ := req.Requirements.Get("petstore_auth")
	scopes, ok := auth.Get()
	require.True(t, ok)
	require.Len(t, scopes, 2)
	assert.Equal(t, "read:pets", scopes[1].Value)

	mtls, _ := req.Requirements.Get("mtls")
	empty, ok := mtls.Get()
	require.True(t, ok)
	assert.Empty(t, empty)

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
	ref := BuildSecuritySchemeOrReference(testutil.Compose(t, `
		$ref: '#/components/securitySchemes/k'
		description: Shared key
	`), nil)
	require.True(t, ref.IsReference())
	assert.Equal(t, "Shared key", ref.Reference.Description.Value)

	obj := BuildSecuritySchemeOrReference(testutil.Compose(t, `type: mutualTLS`), nil)
	require.True(t, obj.IsObject())
	assert.Equal(t, "mutualTLS", obj.Object.Type.Value)

	bad := BuildSecuritySchemeOrReference(testutil.Compose(t, `[apiKey]`), nil)
	assert.True(t, bad.IsInvalid())
}
