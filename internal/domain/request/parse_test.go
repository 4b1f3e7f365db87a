package request

import (
	"math"
	"testing"

	"github.com/corey/unitconv/internal/domain/notation"
	"github.com/corey/unitconv/internal/domain/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, tokens ...string) (Task, error) {
	t.Helper()
	return Parse(tokens, notation.DefaultTable())
}

func TestParse_Help(t *testing.T) {
	for _, tokens := range [][]string{nil, {"-h"}, {"--help"}, {"--help", "m", "ft"}} {
		task, err := parse(t, tokens...)
		require.NoError(t, err)
		assert.Equal(t, Help, task.Action, "%v", tokens)
	}
}

func TestParse_ListUnits(t *testing.T) {
	task, err := parse(t, "units")
	require.NoError(t, err)
	assert.Equal(t, ListUnits, task.Action)

	task, err = parse(t, "units", "a", "b", "c", "d")
	require.NoError(t, err)
	assert.Equal(t, ListUnits, task.Action)
}

func TestParse_SingleUnit(t *testing.T) {
	task, err := parse(t, "KM")
	require.NoError(t, err)
	assert.Equal(t, Task{Action: ConvertAll, Value: 1.0, From: units.Meter.At(3)}, task)
}

func TestParse_ValueAndUnit(t *testing.T) {
	task, err := parse(t, "-40", "c")
	require.NoError(t, err)
	assert.Equal(t, Task{Action: ConvertAll, Value: -40, From: units.Celsius.Unit()}, task)
}

func TestParse_UnitPair(t *testing.T) {
	task, err := parse(t, "m", "ft")
	require.NoError(t, err)
	assert.Equal(t, Task{
		Action: ConvertTo,
		Value:  1.0,
		From:   units.Meter.At(0),
		To:     units.Feet.Unit(),
	}, task)
}

func TestParse_ValueAndUnitPair(t *testing.T) {
	task, err := parse(t, "100", "c", "f")
	require.NoError(t, err)
	assert.Equal(t, ConvertTo, task.Action)
	assert.Equal(t, 100.0, task.Value)
	assert.InDelta(t, 212.0, units.Convert(task.Value, task.From, task.To), 1e-3)
}

func TestParse_NumericForms(t *testing.T) {
	tests := map[string]float64{
		"2.5":   2.5,
		"+3":    3,
		"1e3":   1000,
		"-0.5":  -0.5,
		"1e999": math.Inf(1),
	}
	for tok, want := range tests {
		task, err := parse(t, tok, "m")
		require.NoError(t, err, tok)
		assert.Equal(t, want, task.Value, tok)
	}

	task, err := parse(t, "nan", "kg")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(task.Value))
}

func TestParse_UnknownUnit(t *testing.T) {
	_, err := parse(t, "foobar")
	var unknown *UnknownUnitError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "foobar", unknown.Token)
	assert.Contains(t, err.Error(), "foobar")

	_, err = parse(t, "12", "parsec")
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "parsec", unknown.Token)
}

func TestParse_InvalidUnitPair(t *testing.T) {
	for _, tokens := range [][]string{{"m", "parsec"}, {"parsec", "m"}, {"a", "b"}, {"3", "m", "zz"}} {
		_, err := parse(t, tokens...)
		assert.ErrorIs(t, err, ErrInvalidUnitPair, "%v", tokens)
	}
}

func TestParse_NonNumericValue(t *testing.T) {
	_, err := parse(t, "ten", "m", "ft")
	assert.ErrorIs(t, err, ErrNonNumericValue)
}

func TestParse_TooManyArguments(t *testing.T) {
	_, err := parse(t, "1", "m", "ft", "extra")
	assert.ErrorIs(t, err, ErrTooManyArguments)
}

func TestParse_DimensionMismatch(t *testing.T) {
	_, err := parse(t, "2", "m", "kg")
	var mismatch *DimensionMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, units.Meter.At(0), mismatch.From)
	assert.Equal(t, units.Gram.At(3), mismatch.To)
	assert.Equal(t, "cannot convert meters (length) to kilograms (mass)", err.Error())
}

func TestParse_Aliases(t *testing.T) {
	table, err := notation.NewTable(map[string]string{"tsp": "teaspoon"})
	require.NoError(t, err)

	task, err := Parse([]string{"3", "tsp", "tablespoon"}, table)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, units.Convert(task.Value, task.From, task.To), 1e-3)
}
