package notation

import (
	"strings"
	"testing"

	"github.com/corey/unitconv/internal/domain/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefix(t *testing.T) {
	assert.Equal(t, "milli", Prefix(-3))
	assert.Equal(t, "centi", Prefix(-2))
	assert.Equal(t, "kilo", Prefix(3))
	assert.Equal(t, "", Prefix(0))
	assert.Equal(t, "", Prefix(-6))
	assert.Equal(t, "", Prefix(2))
}

func TestName(t *testing.T) {
	tests := []struct {
		unit units.Unit
		want string
	}{
		{units.Kelvin.Unit(), "kelvin"},
		{units.Meter.At(3), "kilometers"},
		{units.Meter.At(0), "meters"},
		{units.Meter.At(-6), "meters"},
		{units.Meter2.At(-2), "square centimeters"},
		{units.Meter3.At(0), "cubic meters"},
		{units.Liter.At(-3), "milliliters"},
		{units.Gram.At(3), "kilograms"},
		{units.Teaspoon.Unit(), "tea spoons"},
		{units.Feet2.Unit(), "square feet"},
		{units.Ounce.Unit(), "ounces"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Name(tt.unit), tt.unit.String())
	}
}

func TestNameCoversEveryEnumeratedUnit(t *testing.T) {
	for _, d := range units.Dimensions() {
		for _, u := range units.Enumerate(d) {
			name, ok := displayName(u)
			assert.True(t, ok, "missing display name for %s", u)
			assert.Equal(t, name, Name(u))
		}
	}
}

func TestShortCoversEveryEnumeratedUnit(t *testing.T) {
	table := DefaultTable()
	for _, d := range units.Dimensions() {
		for _, u := range units.Enumerate(d) {
			assert.NotEmpty(t, table.Short(u), "no token selects %s", Name(u))
		}
	}
	assert.Equal(t, "km3", table.Short(units.Meter3.At(3)))
}

func TestLookup_CaseInsensitive(t *testing.T) {
	table := DefaultTable()

	for _, tok := range []string{"km", "KM", "Km", " km "} {
		u, ok := table.Lookup(tok)
		require.True(t, ok, tok)
		assert.Equal(t, units.Meter.At(3), u)
	}

	u, ok := table.Lookup("Fahrenheit")
	require.True(t, ok)
	assert.Equal(t, units.Fahrenheit.Unit(), u)
}

func TestLookup_Vocabulary(t *testing.T) {
	table := DefaultTable()
	tests := map[string]units.Unit{
		"c":       units.Celsius.Unit(),
		"ft":      units.Feet.Unit(),
		"sqft":    units.Feet2.Unit(),
		"ha":      units.Hectare.Unit(),
		"ml":      units.Liter.At(-3),
		"cm3":     units.Meter3.At(-2),
		"km3":     units.Meter3.At(3),
		"cups":    units.Cup.Unit(),
		"mg":      units.Gram.At(-3),
		"cg":      units.Gram.At(-2),
		"stones":  units.Stone.Unit(),
		"gallons": units.Gallon.Unit(),
	}
	for tok, want := range tests {
		got, ok := table.Lookup(tok)
		require.True(t, ok, tok)
		assert.Equal(t, want, got, tok)
	}

	_, ok := table.Lookup("foobar")
	assert.False(t, ok)
	_, ok = table.Lookup("")
	assert.False(t, ok)
}

func TestShortAndTokens(t *testing.T) {
	table := DefaultTable()
	assert.Equal(t, "mi", table.Short(units.Mile.Unit()))
	assert.Equal(t, []string{"ft2", "sqft"}, table.Tokens(units.Feet2.Unit()))
	assert.Equal(t, "", table.Short(units.Meter.At(-6)))
	assert.Nil(t, table.Tokens(units.Meter3.At(6)))
}

func TestNewTable_Aliases(t *testing.T) {
	table, err := NewTable(map[string]string{
		"Klick": "km",
		"tsp":   "teaspoon",
	})
	require.NoError(t, err)

	u, ok := table.Lookup("klick")
	require.True(t, ok)
	assert.Equal(t, units.Meter.At(3), u)

	u, ok = table.Lookup("TSP")
	require.True(t, ok)
	assert.Equal(t, units.Teaspoon.Unit(), u)

	assert.Equal(t, []string{"klick", "tsp"}, table.Aliases())
	assert.Contains(t, table.Tokens(units.Meter.At(3)), "klick")
	assert.Equal(t, DefaultTable().Len()+2, table.Len())
}

func TestNewTable_RejectsBadAliases(t *testing.T) {
	tests := []struct {
		name    string
		aliases map[string]string
		errLike string
	}{
		{"shadows builtin", map[string]string{"m": "mi"}, "shadows"},
		{"unknown target", map[string]string{"parsec": "pc"}, "unknown target"},
		{"empty", map[string]string{"  ": "m"}, "empty"},
		{"whitespace", map[string]string{"sq m": "m2"}, "whitespace"},
		{"chained", map[string]string{"a1": "m", "a2": "a1"}, "unknown target"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.aliases)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errLike)
		})
	}
}

func TestGroups(t *testing.T) {
	groups := DefaultTable().Groups()
	require.Len(t, groups, 5)
	assert.Equal(t, units.Temperature, groups[0].Dimension)
	assert.Equal(t, units.Mass, groups[4].Dimension)

	require.Len(t, groups[0].Lines, 3)
	assert.Equal(t, "k, kelvin", groups[0].Lines[0].String())
	assert.Equal(t, "mm, millimeters", groups[1].Lines[0].String())
	assert.Equal(t, "ft2, sqft, square feet", groups[2].Lines[5].String())
}

func TestFormatListing(t *testing.T) {
	out := FormatListing(DefaultTable().Groups())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	assert.Equal(t, "TEMPERATURE", lines[0])
	assert.Equal(t, "    k, kelvin", lines[1])
	assert.Contains(t, out, "LENGTH\n")
	assert.Contains(t, out, "    in, inch, inches\n")
	assert.Contains(t, out, "VOLUME\n")
	assert.Contains(t, out, "    gal, gallon, gallons\n")
	assert.Contains(t, out, "MASS\n")
	assert.Contains(t, out, "    st, stone, stones\n")
}
