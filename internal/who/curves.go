// Package who loads the WHO weight-for-age percentile reference table.
package who

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"

	"crescita/internal/blob"
)

// ReferenceCurveSet holds the five reference percentile curves, indexed by
// age in days. Immutable after load; shared read-only by the chart builder.
type ReferenceCurveSet struct {
	Days []float64
	P5   []float64
	P10  []float64
	P50  []float64
	P90  []float64
	P95  []float64
}

// Percentile pairs a display label with its curve values.
type Percentile struct {
	Label   string
	Weights []float64
}

// Percentiles returns the curves in fixed ascending order. The order is part
// of the chart contract (trace order determines legend order).
func (c *ReferenceCurveSet) Percentiles() []Percentile {
	return []Percentile{
		{Label: "5th", Weights: c.P5},
		{Label: "10th", Weights: c.P10},
		{Label: "50th", Weights: c.P50},
		{Label: "90th", Weights: c.P90},
		{Label: "95th", Weights: c.P95},
	}
}

// Len returns the number of points on the age axis.
func (c *ReferenceCurveSet) Len() int {
	return len(c.Days)
}

// Load reads the reference table from the named blob and parses it. Unlike
// the growth records there is no fallback: the chart cannot render without
// the reference set, so any failure here is fatal to startup.
func Load(ctx context.Context, store blob.Store, name string) (*ReferenceCurveSet, error) {
	content, err := store.ReadText(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("read reference table %s: %w", name, err)
	}
	curves, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse reference table %s: %w", name, err)
	}
	return curves, nil
}

// Parse decodes the semicolon-delimited WHO table. Decimal values use a comma
// separator. Cells that fail to parse become NaN (a missing point on the
// curve), not an error; a missing required column is an error.
func Parse(content string) (*ReferenceCurveSet, error) {
	r := csv.NewReader(strings.NewReader(content))
	r.Comma = ';'
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("reference table has no data rows")
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.TrimSpace(h)] = i
	}
	required := []string{"Week", "P5", "P10", "P50", "P90", "P95"}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("reference table missing column %s", name)
		}
	}

	curves := &ReferenceCurveSet{}
	for _, row := range rows[1:] {
		week := cell(row, cols["Week"])
		curves.Days = append(curves.Days, week*7)
		curves.P5 = append(curves.P5, cell(row, cols["P5"]))
		curves.P10 = append(curves.P10, cell(row, cols["P10"]))
		curves.P50 = append(curves.P50, cell(row, cols["P50"]))
		curves.P90 = append(curves.P90, cell(row, cols["P90"]))
		curves.P95 = append(curves.P95, cell(row, cols["P95"]))
	}
	return curves, nil
}

// cell coerces one table cell to a float, NaN when absent or malformed.
func cell(row []string, idx int) float64 {
	if idx >= len(row) {
		return math.NaN()
	}
	s := strings.TrimSpace(strings.ReplaceAll(row[idx], ",", "."))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
