package request

import (
	"errors"
	"fmt"

	"github.com/corey/unitconv/internal/domain/notation"
	"github.com/corey/unitconv/internal/domain/units"
)

var (
	// ErrInvalidUnitPair means one or both tokens of a unit pair did not resolve.
	ErrInvalidUnitPair = errors.New("invalid unit(s)")

	// ErrNonNumericValue means the value position of a three-token request
	// was not a number.
	ErrNonNumericValue = errors.New("first argument must be a number")

	// ErrTooManyArguments means more than three tokens were supplied.
	ErrTooManyArguments = errors.New("too many arguments")
)

// UnknownUnitError reports a single token that names no unit.
type UnknownUnitError struct {
	Token string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit '%s'", e.Token)
}

// DimensionMismatchError reports a unit pair from different dimensions.
type DimensionMismatchError struct {
	From, To units.Unit
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("cannot convert %s (%s) to %s (%s)",
		notation.Name(e.From), e.From.Dimension(),
		notation.Name(e.To), e.To.Dimension())
}
