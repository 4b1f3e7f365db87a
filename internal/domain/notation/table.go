package notation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/corey/unitconv/internal/domain/units"
)

// entry binds a unit to the tokens that name it. The first token is the
// canonical short form.
type entry struct {
	unit   units.Unit
	tokens []string
}

// builtin is the recognized token vocabulary in listing order.
func builtin() []entry {
	return []entry{
		{units.Kelvin.Unit(), []string{"k", "kelvin"}},
		{units.Celsius.Unit(), []string{"c", "celsius"}},
		{units.Fahrenheit.Unit(), []string{"f", "fahrenheit"}},

		{units.Meter.At(-3), []string{"mm"}},
		{units.Meter.At(-2), []string{"cm"}},
		{units.Meter.At(0), []string{"m"}},
		{units.Meter.At(3), []string{"km"}},
		{units.Inch.Unit(), []string{"in", "inch", "inches"}},
		{units.Feet.Unit(), []string{"ft", "feet"}},
		{units.Yard.Unit(), []string{"yd", "yard", "yards"}},
		{units.Mile.Unit(), []string{"mi", "mile", "miles"}},

		{units.Meter2.At(-3), []string{"mm2"}},
		{units.Meter2.At(-2), []string{"cm2"}},
		{units.Meter2.At(0), []string{"m2"}},
		{units.Meter2.At(3), []string{"km2"}},
		{units.Inch2.Unit(), []string{"in2"}},
		{units.Feet2.Unit(), []string{"ft2", "sqft"}},
		{units.Yard2.Unit(), []string{"yd2"}},
		{units.Mile2.Unit(), []string{"mi2"}},
		{units.Acre.Unit(), []string{"ac", "acre", "acres"}},
		{units.Hectare.Unit(), []string{"ha", "hectare", "hectares"}},

		{units.Liter.At(-3), []string{"ml"}},
		{units.Liter.At(0), []string{"l", "liter", "liters"}},
		{units.Meter3.At(-3), []string{"mm3"}},
		{units.Meter3.At(-2), []string{"cm3"}},
		{units.Meter3.At(0), []string{"m3"}},
		{units.Meter3.At(3), []string{"km3"}},
		{units.Teaspoon.Unit(), []string{"teaspoon", "teaspoons"}},
		{units.Tablespoon.Unit(), []string{"tablespoon", "tablespoons"}},
		{units.Cup.Unit(), []string{"cup", "cups"}},
		{units.Pint.Unit(), []string{"pt", "pint", "pints"}},
		{units.Gallon.Unit(), []string{"gal", "gallon", "gallons"}},

		{units.Gram.At(-3), []string{"mg"}},
		{units.Gram.At(-2), []string{"cg"}},
		{units.Gram.At(0), []string{"g", "gram", "grams"}},
		{units.Gram.At(3), []string{"kg"}},
		{units.Ounce.Unit(), []string{"oz", "ounce", "ounces"}},
		{units.Pound.Unit(), []string{"lb", "pound", "pounds"}},
		{units.Stone.Unit(), []string{"st", "stone", "stones"}},
	}
}

// Table resolves user-typed tokens to units. Lookups are case-insensitive.
// A Table is read-only once built and safe for concurrent use.
type Table struct {
	byToken map[string]units.Unit
	entries []entry
	aliases []string // sorted alias tokens
}

// DefaultTable returns a table holding only the built-in vocabulary.
func DefaultTable() *Table {
	t := &Table{byToken: make(map[string]units.Unit)}
	for _, e := range builtin() {
		for _, tok := range e.tokens {
			t.byToken[tok] = e.unit
		}
		t.entries = append(t.entries, e)
	}
	return t
}

// NewTable returns the built-in table extended with user aliases. Each
// alias maps a new token onto an already-recognized token. An alias that
// shadows a built-in token or targets an unknown token is an error.
func NewTable(aliases map[string]string) (*Table, error) {
	t := DefaultTable()
	if len(aliases) == 0 {
		return t, nil
	}

	names := make([]string, 0, len(aliases))
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Strings(names)

	for _, alias := range names {
		key := normalize(alias)
		if key == "" {
			return nil, fmt.Errorf("alias %q: empty token", alias)
		}
		if strings.ContainsAny(key, " \t") {
			return nil, fmt.Errorf("alias %q: tokens cannot contain whitespace", alias)
		}
		if _, ok := t.byToken[key]; ok {
			return nil, fmt.Errorf("alias %q shadows a recognized unit", alias)
		}
		target := aliases[alias]
		u, ok := t.builtinLookup(target)
		if !ok {
			return nil, fmt.Errorf("alias %q: unknown target unit %q", alias, target)
		}
		t.byToken[key] = u
		t.aliases = append(t.aliases, key)
		t.attach(u, key)
	}
	return t, nil
}

// Lookup resolves a token to its unit.
func (t *Table) Lookup(token string) (units.Unit, bool) {
	u, ok := t.byToken[normalize(token)]
	return u, ok
}

// Tokens returns every token that resolves to u, canonical form first.
func (t *Table) Tokens(u units.Unit) []string {
	for _, e := range t.entries {
		if e.unit == u {
			out := make([]string, len(e.tokens))
			copy(out, e.tokens)
			return out
		}
	}
	return nil
}

// Short returns the canonical short token for u, or "" if u has none.
func (t *Table) Short(u units.Unit) string {
	for _, e := range t.entries {
		if e.unit == u {
			return e.tokens[0]
		}
	}
	return ""
}

// Aliases returns the user alias tokens in sorted order.
func (t *Table) Aliases() []string {
	out := make([]string, len(t.aliases))
	copy(out, t.aliases)
	return out
}

// Len returns the number of recognized tokens.
func (t *Table) Len() int {
	return len(t.byToken)
}

// builtinLookup resolves a target token against built-ins only, so aliases
// cannot chain onto each other.
func (t *Table) builtinLookup(token string) (units.Unit, bool) {
	key := normalize(token)
	for _, alias := range t.aliases {
		if alias == key {
			return units.Unit{}, false
		}
	}
	u, ok := t.byToken[key]
	return u, ok
}

func (t *Table) attach(u units.Unit, token string) {
	for i := range t.entries {
		if t.entries[i].unit == u {
			t.entries[i].tokens = append(t.entries[i].tokens, token)
			return
		}
	}
}

func normalize(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}
