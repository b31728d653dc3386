package low

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.yaml.in/yaml/v4"

	"github.com/jentic/jentic-openapi-tools-sub001/internal/testutil"
)

func TestLocation(t *testing.T) {
	tests := []struct {
		name    string
		loc     Location
		known   bool
		wantStr string
	}{
		{"known", Location{Line: 3, Column: 5}, true, "3:5"},
		{"unknown", Location{}, false, "<unknown>"},
		{"column only", Location{Column: 2}, false, "<unknown>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.known, tt.loc.IsKnown())
			assert.Equal(t, tt.wantStr, tt.loc.String())
		})
	}
}

func TestLocationOf(t *testing.T) {
	node := testutil.Compose(t, `
		info:
		  title: Pets
	`)
	title := node.Content[1].Content[1]
	assert.Equal(t, Location{Line: 2, Column: 10}, LocationOf(title))
	assert.Equal(t, Location{}, LocationOf(nil))
}

func TestSpanOf(t *testing.T) {
	node := testutil.Compose(t, `
		name: Pets
		quoted: "ab"
		list: [1, 22]
		nested:
		  deep: value
		block: |
		  one
		  two
	`)

	tests := []struct {
		name string
		node *yaml.Node
		want Span
	}{
		{"plain scalar", node.Content[1], Span{Location{1, 7}, Location{1, 11}}},
		{"quoted scalar", node.Content[3], Span{Location{2, 9}, Location{2, 13}}},
		{"flow sequence", node.Content[5], Span{Location{3, 7}, Location{3, 14}}},
		{"block mapping", node.Content[7], Span{Location{5, 3}, Location{5, 14}}},
		{"block scalar", node.Content[9], Span{Location{6, 8}, Location{8, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SpanOf(tt.node)
			assert.Equal(t, tt.want, got)
			assert.False(t, after(got.Start, got.End))
		})
	}

	assert.Equal(t, Span{}, SpanOf(nil))
	assert.Equal(t, "1:7-1:11", SpanOf(node.Content[1]).String())
}
