package severity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{SeverityCritical, "critical"},
		{Severity(-1), "unknown"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.severity.String())
		})
	}
}

func TestSeverity_Format(t *testing.T) {
	// Issue locations are printed with %s, so the verb must use String.
	assert.Equal(t, "warning at 5:12", fmt.Sprintf("%s at %d:%d", SeverityWarning, 5, 12))
	assert.Equal(t, "[info]", fmt.Sprintf("[%v]", SeverityInfo))
}
