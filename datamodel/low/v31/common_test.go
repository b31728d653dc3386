package v31

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jentic/jentic-openapi-tools-sub001/datamodel/low"
	"github.com/jentic/jentic-openapi-tools-sub001/internal/testutil"
)

func TestBuildLicense_Identifier(t *testing.T) {
	tests := []struct {
		name           string
		src            string
		wantIdentifier any
		wantURL        bool
		wantExtensions []string
	}{
		{
			name:           "identifier only",
			src:            `{"name": "Apache 2.0", "identifier": "Apache-2.0"}`,
			wantIdentifier: "Apache-2.0",
		},
		{
			name:           "identifier with extensions",
			src:            `{"name": "MIT", "identifier": "MIT", "x-spdx-version": 3.21, "x-note": null}`,
			wantIdentifier: "MIT",
			wantExtensions: []string{"x-spdx-version", "x-note"},
		},
		{
			name:    "url only",
			src:     `{"name": "Apache 2.0", "url": "https://www.apache.org/licenses/LICENSE-2.0.html"}`,
			wantURL: true,
		},
		{
			name:           "identifier and url are both kept",
			src:            `{"name": "MIT", "identifier": "MIT", "url": "https://opensource.org/license/mit"}`,
			wantIdentifier: "MIT",
			wantURL:        true,
		},
		{
			name:           "non-string identifier",
			src:            `{"name": "X", "identifier": 42}`,
			wantIdentifier: 42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lic, ok := BuildLicense(testutil.Compose(t, tt.src), nil).Get()
			require.True(t, ok)
			if tt.wantIdentifier == nil {
				assert.Nil(t, lic.Identifier)
			} else {
				require.NotNil(t, lic.Identifier)
				assert.Equal(t, tt.wantIdentifier, lic.Identifier.Value)
			}
			assert.Equal(t, tt.wantURL, lic.URL != nil)
			if tt.wantExtensions == nil {
				assert.Equal(t, 0, lic.Extensions.Len())
			} else {
				assert.Equal(t, tt.wantExtensions, lic.Extensions.Keys())
			}
		})
	}

	fs, _ := FieldSet("License")
	node := testutil.Compose(t, `{"name": "MIT", "identifier": "MIT", "spdx": "MIT"}`)
	assert.Equal(t, []string{"spdx"}, low.ExtractUnknownFields(node, fs, nil).Keys())
}

func TestBuildLicense_ExtensionValues(t *testing.T) {
	node := testutil.Compose(t, `
		name: MIT
		identifier: MIT
		x-spdx-version: 3.21
		x-note: null
	`)
	lic, ok := BuildLicense(node, nil).Get()
	require.True(t, ok)

	version, ok := lic.Extensions.Get("x-spdx-version")
	require.True(t, ok)
	assert.Equal(t, 3.21, version.Value)
	note, ok := lic.Extensions.Get("x-note")
	require.True(t, ok)
	assert.Nil(t, note.Value)
	assert.Same(t, node.Content[7], note.ValueNode)
}

func TestBuildInfo_Summary(t *testing.T) {
	node := testutil.Compose(t, `
		title: API
		summary: Short
		description: Long
		version: "1.0"
		license:
		  name: MIT
		  identifier: MIT
		contact: null
	`)
	info, ok := BuildInfo(node, nil).Get()
	require.True(t, ok)
	assert.Equal(t, "Short", info.Summary.Value)
	assert.Equal(t, "1.0", info.Version.Value)

	lic, ok := info.License.Value.Get()
	require.True(t, ok)
	assert.Equal(t, "MIT", lic.Identifier.Value)

	require.NotNil(t, info.Contact, "null is present")
	assert.False(t, info.Contact.Value.IsValid())

	fs, _ := FieldSet("Info")
	assert.Empty(t, low.ExtractUnknownFields(node, fs, nil))
}

func TestBuildContact_AbsenceVersusNull(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		c, ok := BuildContact(testutil.Compose(t, `{}`), nil).Get()
		require.True(t, ok)
		assert.Nil(t, c.Name)
		assert.Nil(t, c.URL)
		assert.Nil(t, c.Email)
	})

	t.Run("null", func(t *testing.T) {
		node := testutil.Compose(t, `{"email": null}`)
		c, ok := BuildContact(node, nil).Get()
		require.True(t, ok)
		require.NotNil(t, c.Email)
		assert.Nil(t, c.Email.Value)
		assert.Same(t, node.Content[0], c.Email.KeyNode)
		assert.Same(t, node.Content[1], c.Email.ValueNode)
	})
}

func TestBuildServer_Variables(t *testing.T) {
	node := testutil.Compose(t, `
		url: https://{region}.api
		variables:
		  region:
		    enum: [eu, us]
		    default: eu
		  bad: [1]
	`)
	server, ok := BuildServer(node, nil).Get()
	require.True(t, ok)
	vars, ok := server.Variables.Value.Get()
	require.True(t, ok)
	region, _ := vars.Get("region")
	require.True(t, region.IsValid())
	assert.Equal(t, []any{"eu", "us"}, region.Object.Enum.Value)
	bad, _ := vars.Get("bad")
	assert.False(t, bad.IsValid())
}
