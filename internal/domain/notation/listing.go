package notation

import (
	"strings"

	"github.com/corey/unitconv/internal/domain/units"
)

// Group is one dimension's block in the `units` listing.
type Group struct {
	Dimension units.Dimension
	Lines     []Line
}

// Line describes one recognized unit: the tokens that select it and its
// display name.
type Line struct {
	Unit   units.Unit
	Tokens []string
	Name   string
}

// String renders the line as "tok, tok, display name". The display name is
// omitted when it is already one of the tokens.
func (l Line) String() string {
	parts := append([]string(nil), l.Tokens...)
	seen := false
	for _, tok := range l.Tokens {
		if tok == l.Name {
			seen = true
			break
		}
	}
	if !seen {
		parts = append(parts, l.Name)
	}
	return strings.Join(parts, ", ")
}

// Groups returns the table's vocabulary grouped by dimension.
func (t *Table) Groups() []Group {
	var groups []Group
	for _, dim := range units.Dimensions() {
		g := Group{Dimension: dim}
		for _, e := range t.entries {
			if e.unit.Dimension() != dim {
				continue
			}
			g.Lines = append(g.Lines, Line{
				Unit:   e.unit,
				Tokens: append([]string(nil), e.tokens...),
				Name:   Name(e.unit),
			})
		}
		groups = append(groups, g)
	}
	return groups
}

// FormatListing renders groups as an indented, upper-case titled listing.
func FormatListing(groups []Group) string {
	var sb strings.Builder
	for _, g := range groups {
		sb.WriteString(strings.ToUpper(g.Dimension.String()))
		sb.WriteString("\n")
		for _, l := range g.Lines {
			sb.WriteString("    ")
			sb.WriteString(l.String())
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
