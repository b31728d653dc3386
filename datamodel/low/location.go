package low

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go.yaml.in/yaml/v4"
)

// Location is a position in a source document.
// Line and Column are 1-based (matching editor conventions).
// A zero Line value indicates the location is unknown.
type Location struct {
	// Line is the 1-based line number (0 if unknown)
	Line int
	// Column is the 1-based column number (0 if unknown)
	Column int
}

// IsKnown returns true if this location has valid line information.
func (l Location) IsKnown() bool {
	return l.Line > 0
}

// String returns "line:column", or "<unknown>" if the location is not known.
func (l Location) String() string {
	if !l.IsKnown() {
		return "<unknown>"
	}
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// LocationOf returns the start position of node.
func LocationOf(node *yaml.Node) Location {
	return Location{Line: lineOf(node), Column: columnOf(node)}
}

// Span is the start and end position of a node.
type Span struct {
	Start Location
	End   Location
}

// String returns "start-end".
func (s Span) String() string {
	return s.Start.String() + "-" + s.End.String()
}

// SpanOf returns the span of node. The YAML library only records start marks,
// so End is derived: for collections it is the end of the last descendant, for
// plain and quoted single-line scalars it is the column after the last
// character. Block scalars and multi-line flow scalars end at the last line of
// their text. End is never before Start.
func SpanOf(node *yaml.Node) Span {
	start := LocationOf(node)
	if node == nil {
		return Span{}
	}
	return Span{Start: start, End: endOf(node, 0)}
}

func endOf(node *yaml.Node, depth int) Location {
	if node == nil {
		return Location{}
	}
	switch node.Kind {
	case yaml.DocumentNode, yaml.MappingNode, yaml.SequenceNode:
		end := LocationOf(node)
		if len(node.Content) > 0 && depth < maxAliasHops*8 {
			if last := endOf(node.Content[len(node.Content)-1], depth+1); after(last, end) {
				end = last
			}
		}
		if node.Style&yaml.FlowStyle != 0 {
			end.Column++
		}
		return end
	case yaml.AliasNode:
		// *name
		return Location{Line: node.Line, Column: node.Column + 1 + utf8.RuneCountInString(node.Value)}
	default:
		return scalarEnd(node)
	}
}

func scalarEnd(node *yaml.Node) Location {
	text := node.Value
	switch {
	case node.Style&(yaml.LiteralStyle|yaml.FoldedStyle) != 0:
		lines := strings.Count(strings.TrimRight(text, "\n"), "\n")
		return Location{Line: node.Line + 1 + lines, Column: 1}
	case strings.Contains(text, "\n"):
		lines := strings.Split(text, "\n")
		return Location{Line: node.Line + len(lines) - 1, Column: utf8.RuneCountInString(lines[len(lines)-1]) + 1}
	}
	width := utf8.RuneCountInString(text)
	if node.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0 {
		width += 2
	}
	return Location{Line: node.Line, Column: node.Column + width}
}

func after(a, b Location) bool {
	if a.Line != b.Line {
		return a.Line > b.Line
	}
	return a.Column > b.Column
}
