// Package request turns raw command-line tokens into a conversion task.
//
// Token shapes:
//
//	(none) | -h | --help       help
//	units ...                  list recognized units
//	<unit>                     1.0 of unit, swept across its dimension
//	<value> <unit>             value swept across the unit's dimension
//	<unit> <unit>              1.0 from A to B
//	<value> <unit> <unit>      value from A to B
//
// Anything longer is rejected. The parser only ever pairs units of the
// same dimension; the conversion engine does not check this itself.
package request

import (
	"errors"
	"strconv"

	"github.com/corey/unitconv/internal/domain/notation"
	"github.com/corey/unitconv/internal/domain/units"
)

// Action selects what a Task does.
type Action uint8

const (
	Help Action = iota
	ListUnits
	ConvertTo
	ConvertAll
)

func (a Action) String() string {
	switch a {
	case Help:
		return "help"
	case ListUnits:
		return "units"
	case ConvertTo:
		return "convert"
	case ConvertAll:
		return "sweep"
	}
	return "unknown"
}

// Task is a parsed request. Value and From are set for ConvertTo and
// ConvertAll; To only for ConvertTo.
type Task struct {
	Action Action
	Value  float64
	From   units.Unit
	To     units.Unit
}

// Parse resolves tokens against table.
func Parse(tokens []string, table *notation.Table) (Task, error) {
	if len(tokens) == 0 {
		return Task{Action: Help}, nil
	}

	switch tokens[0] {
	case "-h", "--help":
		return Task{Action: Help}, nil
	case "units":
		return Task{Action: ListUnits}, nil
	}

	switch len(tokens) {
	case 1:
		u, ok := table.Lookup(tokens[0])
		if !ok {
			return Task{}, &UnknownUnitError{Token: tokens[0]}
		}
		return Task{Action: ConvertAll, Value: 1.0, From: u}, nil

	case 2:
		if v, ok := parseValue(tokens[0]); ok {
			u, ok := table.Lookup(tokens[1])
			if !ok {
				return Task{}, &UnknownUnitError{Token: tokens[1]}
			}
			return Task{Action: ConvertAll, Value: v, From: u}, nil
		}
		return pair(1.0, tokens[0], tokens[1], table)

	case 3:
		v, ok := parseValue(tokens[0])
		if !ok {
			return Task{}, ErrNonNumericValue
		}
		return pair(v, tokens[1], tokens[2], table)
	}

	return Task{}, ErrTooManyArguments
}

func pair(value float64, a, b string, table *notation.Table) (Task, error) {
	from, okA := table.Lookup(a)
	to, okB := table.Lookup(b)
	if !okA || !okB {
		return Task{}, ErrInvalidUnitPair
	}
	if !units.SameDimension(from, to) {
		return Task{}, &DimensionMismatchError{From: from, To: to}
	}
	return Task{Action: ConvertTo, Value: value, From: from, To: to}, nil
}

// parseValue accepts any float64 literal strconv understands, including
// signed, exponent, inf and nan forms. Out-of-range literals saturate to
// ±Inf instead of failing.
func parseValue(token string) (float64, bool) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}
