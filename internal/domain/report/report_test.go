package report

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/corey/unitconv/internal/domain/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTo(t *testing.T) {
	r := ConvertTo(100, units.Celsius.Unit(), units.Fahrenheit.Unit())
	assert.Equal(t, Quantity{Value: 100, Unit: units.Celsius.Unit()}, r.Input)
	require.Len(t, r.Results, 1)
	assert.Equal(t, units.Fahrenheit.Unit(), r.Results[0].Unit)
	assert.InDelta(t, 212.0, r.Results[0].Value, 1e-3)
}

func TestConvertAll_ExcludesInput(t *testing.T) {
	from := units.Meter.At(0)
	r := ConvertAll(1, from)
	require.Len(t, r.Results, len(units.Enumerate(units.Length))-1)
	for _, q := range r.Results {
		assert.NotEqual(t, from, q.Unit)
		assert.Equal(t, units.Length, q.Unit.Dimension())
	}
	assert.Equal(t, units.Meter.At(-3), r.Results[0].Unit)
	assert.InDelta(t, 1000.0, r.Results[0].Value, 1e-3)
}

func TestFormatterValue(t *testing.T) {
	f := DefaultFormatter()
	assert.Equal(t, "212", f.Value(212))
	assert.Equal(t, "0.25", f.Value(0.25))
	assert.Equal(t, "-40", f.Value(-40))
	assert.Equal(t, "NaN", f.Value(math.NaN()))
	assert.Equal(t, "+Inf", f.Value(math.Inf(1)))

	f.Precision = 2
	assert.Equal(t, "3.28", f.Value(3.28084))
	assert.Equal(t, "1.00", f.Value(1))
}

func TestText_ConvertTo(t *testing.T) {
	r := ConvertTo(1, units.Meter.At(3), units.Meter.At(0))
	got := Formatter{Precision: 0}.Text(r)
	assert.Equal(t, "1 kilometers equals to...\n\t 1000 meters\n", got)
}

func TestText_ConvertAll(t *testing.T) {
	r := ConvertAll(0, units.Celsius.Unit())
	got := Formatter{Precision: 2}.Text(r)
	assert.Equal(t, "0.00 celsius equals to...\n\t 273.15 kelvin\n\t 32.00 fahrenheit\n", got)
}

func TestRender_JSON(t *testing.T) {
	r := ConvertTo(1, units.Gallon.Unit(), units.Liter.At(0))
	out, err := Formatter{Precision: 3, Format: FormatJSON}.Render(r)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "\n"))

	var doc struct {
		Input   map[string]any   `json:"input"`
		Results []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "gallons", doc.Input["unit"])
	assert.Equal(t, "volume", doc.Input["dimension"])
	require.Len(t, doc.Results, 1)
	assert.Equal(t, "liters", doc.Results[0]["unit"])
	assert.InDelta(t, 3.785, doc.Results[0]["value"], 1e-9)
}

func TestRender_JSONNonFinite(t *testing.T) {
	r := ConvertTo(math.Inf(-1), units.Kelvin.Unit(), units.Celsius.Unit())
	out, err := Formatter{Precision: -1, Format: FormatJSON}.Render(r)
	require.NoError(t, err)
	assert.Contains(t, out, `"value":"-Inf"`)
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Formatter{Format: "xml"}.Render(ConvertAll(1, units.Mile.Unit()))
	assert.Error(t, err)
}
