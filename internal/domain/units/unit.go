// Package units defines the closed unit taxonomy and the conversion engine.
//
// Every conversion hops through a per-dimension standard unit: kelvin,
// meter, square meter, liter and gram. Values are plain float64 and
// arithmetic is never special-cased, so negative kelvin, NaN and Inf all
// propagate unchanged.
package units

import "fmt"

// Dimension is the physical quantity a unit measures.
type Dimension uint8

const (
	Temperature Dimension = iota
	Length
	Area
	Volume
	Mass
)

// Dimensions lists every dimension in display order.
func Dimensions() []Dimension {
	return []Dimension{Temperature, Length, Area, Volume, Mass}
}

func (d Dimension) String() string {
	switch d {
	case Temperature:
		return "temperature"
	case Length:
		return "length"
	case Area:
		return "area"
	case Volume:
		return "volume"
	case Mass:
		return "mass"
	}
	return fmt.Sprintf("dimension(%d)", uint8(d))
}

// Kind is a unit variant. Scaled kinds carry a power-of-ten exponent in the
// Unit that wraps them; fixed kinds do not.
type Kind uint8

const (
	Kelvin Kind = iota
	Celsius
	Fahrenheit

	Meter // scaled
	Inch
	Feet
	Yard
	Mile

	Meter2 // scaled, exponent is linear
	Inch2
	Feet2
	Yard2
	Mile2
	Acre
	Hectare

	Liter  // scaled
	Meter3 // scaled, exponent is linear
	Teaspoon
	Tablespoon
	Cup
	Pint
	Gallon

	Gram // scaled
	Ounce
	Pound
	Stone

	kindCount
)

var kindNames = [kindCount]string{
	"kelvin", "celsius", "fahrenheit",
	"meter", "inch", "feet", "yard", "mile",
	"meter2", "inch2", "feet2", "yard2", "mile2", "acre", "hectare",
	"liter", "meter3", "teaspoon", "tablespoon", "cup", "pint", "gallon",
	"gram", "ounce", "pound", "stone",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Dimension returns the dimension the kind belongs to.
func (k Kind) Dimension() Dimension {
	switch {
	case k <= Fahrenheit:
		return Temperature
	case k <= Mile:
		return Length
	case k <= Hectare:
		return Area
	case k <= Gallon:
		return Volume
	default:
		return Mass
	}
}

// Scaled reports whether the kind takes a power-of-ten exponent.
func (k Kind) Scaled() bool {
	switch k {
	case Meter, Meter2, Liter, Meter3, Gram:
		return true
	}
	return false
}

// Unit returns the unit of kind k at exponent 0.
func (k Kind) Unit() Unit {
	return New(k, 0)
}

// At returns the unit of kind k at the given exponent. The exponent is
// dropped for fixed kinds.
func (k Kind) At(scale int) Unit {
	return New(k, scale)
}

// Unit is an immutable, dimension-tagged measurement unit. Two units are
// equal under == when they have the same kind and, for scaled kinds, the
// same exponent.
type Unit struct {
	kind  Kind
	scale int
}

// New builds a unit. Fixed kinds always get a zero scale so that structural
// equality holds regardless of what the caller passed.
func New(kind Kind, scale int) Unit {
	if !kind.Scaled() {
		scale = 0
	}
	return Unit{kind: kind, scale: scale}
}

// Kind returns the unit variant.
func (u Unit) Kind() Kind { return u.kind }

// Scale returns the power-of-ten exponent. Always 0 for fixed kinds.
func (u Unit) Scale() int { return u.scale }

// Dimension returns the dimension of the unit.
func (u Unit) Dimension() Dimension { return u.kind.Dimension() }

// Scaled reports whether the unit carries an exponent.
func (u Unit) Scaled() bool { return u.kind.Scaled() }

func (u Unit) String() string {
	if u.kind.Scaled() {
		return fmt.Sprintf("%s(%d)", u.kind, u.scale)
	}
	return u.kind.String()
}

// SameDimension reports whether a and b can be converted into each other.
func SameDimension(a, b Unit) bool {
	return a.Dimension() == b.Dimension()
}
