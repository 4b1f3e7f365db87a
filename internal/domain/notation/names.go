// Package notation turns units into words and words into units.
//
// It owns the user-facing vocabulary: display names with metric prefixes,
// the case-insensitive token table the argument parser resolves against,
// and the grouped listing printed by the `units` command.
package notation

import "github.com/corey/unitconv/internal/domain/units"

// Prefix returns the metric prefix for a scale exponent. Exponents without
// a common prefix render bare.
func Prefix(scale int) string {
	switch scale {
	case -3:
		return "milli"
	case -2:
		return "centi"
	case 3:
		return "kilo"
	}
	return ""
}

// Name returns the plural display name of a unit.
func Name(u units.Unit) string {
	if name, ok := displayName(u); ok {
		return name
	}
	return u.String()
}

// displayName reports false for kinds without a display name.
func displayName(u units.Unit) (string, bool) {
	p := Prefix(u.Scale())
	switch u.Kind() {
	case units.Kelvin:
		return "kelvin", true
	case units.Celsius:
		return "celsius", true
	case units.Fahrenheit:
		return "fahrenheit", true

	case units.Meter:
		return p + "meters", true
	case units.Inch:
		return "inches", true
	case units.Feet:
		return "feet", true
	case units.Yard:
		return "yards", true
	case units.Mile:
		return "miles", true

	case units.Meter2:
		return "square " + p + "meters", true
	case units.Inch2:
		return "square inches", true
	case units.Feet2:
		return "square feet", true
	case units.Yard2:
		return "square yards", true
	case units.Mile2:
		return "square miles", true
	case units.Acre:
		return "acres", true
	case units.Hectare:
		return "hectares", true

	case units.Liter:
		return p + "liters", true
	case units.Meter3:
		return "cubic " + p + "meters", true
	case units.Teaspoon:
		return "tea spoons", true
	case units.Tablespoon:
		return "table spoons", true
	case units.Cup:
		return "cups", true
	case units.Pint:
		return "pints", true
	case units.Gallon:
		return "gallons", true

	case units.Gram:
		return p + "grams", true
	case units.Ounce:
		return "ounces", true
	case units.Pound:
		return "pounds", true
	case units.Stone:
		return "stones", true
	}
	return "", false
}
