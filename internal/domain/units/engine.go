package units

// Conversion factors to the dimension's standard unit.
const (
	inchMeters = 0.0254
	feetMeters = 0.3048
	yardMeters = 0.9144
	mileMeters = 1609.344

	acreSquareMeters    = 4046.8564224
	hectareSquareMeters = 10000.0

	teaspoonLiters   = 0.005
	tablespoonLiters = 0.015
	cupLiters        = 0.2365882365
	pintLiters       = 0.473176473
	gallonLiters     = 3.785411784

	// one cubic meter holds a thousand liters
	cubicMeterLiters = 1000.0

	ounceGrams = 28.34952
	poundGrams = 453.59237
	stoneGrams = poundGrams * 14

	celsiusOffset    = 273.15
	fahrenheitOffset = 459.67
	fahrenheitRatio  = 1.8
)

// linearFactor returns the multiplier from a fixed, non-temperature kind
// into its standard unit.
func linearFactor(k Kind) float64 {
	switch k {
	case Inch:
		return inchMeters
	case Feet:
		return feetMeters
	case Yard:
		return yardMeters
	case Mile:
		return mileMeters
	case Inch2:
		return inchMeters * inchMeters
	case Feet2:
		return feetMeters * feetMeters
	case Yard2:
		return yardMeters * yardMeters
	case Mile2:
		return mileMeters * mileMeters
	case Acre:
		return acreSquareMeters
	case Hectare:
		return hectareSquareMeters
	case Teaspoon:
		return teaspoonLiters
	case Tablespoon:
		return tablespoonLiters
	case Cup:
		return cupLiters
	case Pint:
		return pintLiters
	case Gallon:
		return gallonLiters
	case Ounce:
		return ounceGrams
	case Pound:
		return poundGrams
	case Stone:
		return stoneGrams
	}
	return 1
}

// PowerOf returns 10^exp by repeated multiplication, one step per unit of
// |exp|. Negative exponents multiply by 0.1, so results carry the rounding
// error of each step.
func PowerOf(exp int) float64 {
	scale := 1.0
	for ; exp < 0; exp++ {
		scale *= 0.1
	}
	for ; exp > 0; exp-- {
		scale *= 10.0
	}
	return scale
}

// scaleExponent is the power of ten a scaled unit contributes. Area and
// volume exponents are linear, so they are squared and cubed here.
func scaleExponent(u Unit) int {
	switch u.kind {
	case Meter2:
		return u.scale * 2
	case Meter3:
		return u.scale * 3
	}
	return u.scale
}

// ToStandard converts value in unit into the dimension's standard unit.
func ToStandard(value float64, unit Unit) float64 {
	switch unit.kind {
	case Kelvin:
		return value
	case Celsius:
		return value + celsiusOffset
	case Fahrenheit:
		return (value-32)/fahrenheitRatio + celsiusOffset
	case Meter, Meter2, Liter, Gram:
		return value * PowerOf(scaleExponent(unit))
	case Meter3:
		return value * PowerOf(scaleExponent(unit)) * cubicMeterLiters
	}
	return value * linearFactor(unit.kind)
}

// FromStandard converts value in the dimension's standard unit into unit.
// It is the algebraic inverse of ToStandard.
func FromStandard(value float64, unit Unit) float64 {
	switch unit.kind {
	case Kelvin:
		return value
	case Celsius:
		return value - celsiusOffset
	case Fahrenheit:
		return value*fahrenheitRatio - fahrenheitOffset
	case Meter, Meter2, Liter, Gram:
		return value * PowerOf(-scaleExponent(unit))
	case Meter3:
		return value * PowerOf(-scaleExponent(unit)) / cubicMeterLiters
	}
	return value / linearFactor(unit.kind)
}

// Convert converts value from one unit to another through the standard
// unit. The units are expected to share a dimension; that is not checked,
// see SameDimension.
func Convert(value float64, from, to Unit) float64 {
	return FromStandard(ToStandard(value, from), to)
}

// Enumerate returns the curated units of a dimension used for sweep
// conversions, in display order. The slice is freshly allocated.
func Enumerate(dim Dimension) []Unit {
	switch dim {
	case Temperature:
		return []Unit{Kelvin.Unit(), Celsius.Unit(), Fahrenheit.Unit()}
	case Length:
		return []Unit{
			Meter.At(-3), Meter.At(-2), Meter.At(0), Meter.At(3),
			Inch.Unit(), Feet.Unit(), Yard.Unit(), Mile.Unit(),
		}
	case Area:
		return []Unit{
			Meter2.At(-3), Meter2.At(-2), Meter2.At(0), Meter2.At(3),
			Inch2.Unit(), Feet2.Unit(), Yard2.Unit(), Mile2.Unit(),
			Acre.Unit(), Hectare.Unit(),
		}
	case Volume:
		return []Unit{
			Liter.At(-3), Liter.At(0),
			Meter3.At(-3), Meter3.At(-2), Meter3.At(0), Meter3.At(3),
			Teaspoon.Unit(), Tablespoon.Unit(), Cup.Unit(), Pint.Unit(), Gallon.Unit(),
		}
	case Mass:
		return []Unit{
			Gram.At(-3), Gram.At(-2), Gram.At(0), Gram.At(3),
			Ounce.Unit(), Pound.Unit(), Stone.Unit(),
		}
	}
	return nil
}

// Others returns the enumeration of u's dimension without u itself.
func Others(u Unit) []Unit {
	all := Enumerate(u.Dimension())
	out := all[:0]
	for _, candidate := range all {
		if candidate != u {
			out = append(out, candidate)
		}
	}
	return out
}
