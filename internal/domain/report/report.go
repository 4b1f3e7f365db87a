// Package report runs conversions and renders their results.
package report

import (
	"github.com/corey/unitconv/internal/domain/units"
)

// Quantity is a value paired with the unit it is expressed in.
type Quantity struct {
	Value float64
	Unit  units.Unit
}

// Report is one input quantity and its converted forms, in display order.
type Report struct {
	Input   Quantity
	Results []Quantity
}

// ConvertTo converts value from one unit into another.
func ConvertTo(value float64, from, to units.Unit) Report {
	return Report{
		Input:   Quantity{Value: value, Unit: from},
		Results: []Quantity{{Value: units.Convert(value, from, to), Unit: to}},
	}
}

// ConvertAll sweeps value across every other enumerated unit of its
// dimension.
func ConvertAll(value float64, from units.Unit) Report {
	others := units.Others(from)
	r := Report{
		Input:   Quantity{Value: value, Unit: from},
		Results: make([]Quantity, 0, len(others)),
	}
	for _, u := range others {
		r.Results = append(r.Results, Quantity{Value: units.Convert(value, from, u), Unit: u})
	}
	return r
}
