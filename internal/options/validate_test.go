package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jentic/jentic-openapi-tools-sub001/oaserrors"
)

func TestValidateSingleInputSource(t *testing.T) {
	tests := []struct {
		name    string
		sources []bool
		wantMsg string
	}{
		{"none set", []bool{false, false, false}, "need one"},
		{"no sources at all", nil, "need one"},
		{"exactly one", []bool{false, true, false}, ""},
		{"two set", []bool{true, true, false}, "only one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSingleInputSource("need one", "only one", tt.sources...)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrConfig))

			var cfgErr *oaserrors.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, "input source", cfgErr.Option)
			assert.Equal(t, tt.wantMsg, cfgErr.Message)
		})
	}
}
