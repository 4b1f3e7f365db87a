package report

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/corey/unitconv/internal/domain/notation"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Formatter renders reports. A negative Precision prints the shortest
// representation that round-trips; otherwise values get exactly Precision
// decimals.
type Formatter struct {
	Precision int
	Format    string
}

// DefaultFormatter returns a text formatter with shortest-form values.
func DefaultFormatter() Formatter {
	return Formatter{Precision: -1, Format: FormatText}
}

// Value formats a single number.
func (f Formatter) Value(v float64) string {
	return strconv.FormatFloat(v, 'f', f.Precision, 64)
}

// Render formats r according to f.Format.
func (f Formatter) Render(r Report) (string, error) {
	switch f.Format {
	case "", FormatText:
		return f.Text(r), nil
	case FormatJSON:
		return f.JSON(r)
	}
	return "", fmt.Errorf("unknown output format %q", f.Format)
}

// Text renders r as
//
//	<value> <unit> equals to...
//		 <value> <unit>
func (f Formatter) Text(r Report) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s equals to...\n", f.Value(r.Input.Value), notation.Name(r.Input.Unit)))
	for _, q := range r.Results {
		sb.WriteString(fmt.Sprintf("\t %s %s\n", f.Value(q.Value), notation.Name(q.Unit)))
	}
	return sb.String()
}

type jsonQuantity struct {
	Value     jsonNumber `json:"value"`
	Unit      string     `json:"unit"`
	Dimension string     `json:"dimension"`
}

type jsonReport struct {
	Input   jsonQuantity   `json:"input"`
	Results []jsonQuantity `json:"results"`
}

// jsonNumber encodes finite values as JSON numbers and NaN/Inf as strings,
// which encoding/json would otherwise reject.
type jsonNumber struct {
	v    float64
	text string
}

func (n jsonNumber) MarshalJSON() ([]byte, error) {
	if math.IsNaN(n.v) || math.IsInf(n.v, 0) {
		return json.Marshal(n.text)
	}
	return []byte(n.text), nil
}

func (f Formatter) quantity(q Quantity) jsonQuantity {
	return jsonQuantity{
		Value:     jsonNumber{v: q.Value, text: f.Value(q.Value)},
		Unit:      notation.Name(q.Unit),
		Dimension: q.Unit.Dimension().String(),
	}
}

// JSON renders r as a single-line JSON document terminated by a newline.
func (f Formatter) JSON(r Report) (string, error) {
	jr := jsonReport{
		Input:   f.quantity(r.Input),
		Results: make([]jsonQuantity, 0, len(r.Results)),
	}
	for _, q := range r.Results {
		jr.Results = append(jr.Results, f.quantity(q))
	}
	b, err := json.Marshal(jr)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(b) + "\n", nil
}
