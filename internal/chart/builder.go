package chart

import (
	"crescita/internal/core"
	"crescita/internal/who"
)

// Visual constants. These reproduce the established chart look exactly; do
// not tweak without comparing against an existing rendering.
const (
	outerBandColor = "rgba(200,200,200,0.3)" // 5th..95th, light shading
	innerBandColor = "rgba(150,150,150,0.3)" // 10th..90th, darker shading
	bandEdgeColor  = "rgba(255,255,255,0)"
	curveColor     = "rgba(0,0,0,0.5)"
	recordColor    = "red"

	chartTitle = "Baby Growth Chart for Female Infants (WHO Standards)"
	xAxisTitle = "Age (days)"
	yAxisTitle = "Weight (kg)"
)

// Build maps the reference curves and the current records to a figure. Pure
// and deterministic: identical inputs give identical output.
//
// Trace order is part of the contract: two percentile bands, then the five
// percentile lines ascending, then (only when records exist) the growth
// series. The legend lists traces in reverse, so the highest percentile
// shows first.
func Build(curves *who.ReferenceCurveSet, records []core.GrowthRecord) Figure {
	fig := Figure{
		Data: []Trace{
			band(curves.Days, curves.P95, curves.P5, outerBandColor),
			band(curves.Days, curves.P90, curves.P10, innerBandColor),
		},
		Layout: Layout{
			Title:     chartTitle,
			XAxis:     Axis{Title: xAxisTitle},
			YAxis:     Axis{Title: yAxisTitle},
			Legend:    Legend{Y: 0.5, TraceOrder: "reversed", Font: Font{Size: 16}},
			HoverMode: "x unified",
		},
	}

	for _, p := range curves.Percentiles() {
		fig.Data = append(fig.Data, Trace{
			X:    FloatList(curves.Days),
			Y:    FloatList(p.Weights),
			Mode: "lines",
			Name: p.Label + " Percentile",
			Line: &Line{Color: curveColor, Width: 1},
		})
	}

	if len(records) > 0 {
		x := make(FloatList, len(records))
		y := make(FloatList, len(records))
		for i, rec := range records {
			x[i] = float64(rec.AgeDays)
			y[i] = rec.WeightKg
		}
		fig.Data = append(fig.Data, Trace{
			X:      x,
			Y:      y,
			Mode:   "lines+markers",
			Name:   "Baby's Growth",
			Line:   &Line{Color: recordColor, Width: 2},
			Marker: &Marker{Size: 6},
		})
	}

	return fig
}

// band builds the closed polygon between an upper and a lower curve: ages
// ascending then descending, upper values forward then lower values reversed.
func band(days, upper, lower []float64, fillColor string) Trace {
	noLegend := false
	return Trace{
		X:          concat(days, reversed(days)),
		Y:          concat(upper, reversed(lower)),
		Fill:       "toself",
		FillColor:  fillColor,
		Line:       &Line{Color: bandEdgeColor},
		HoverInfo:  "skip",
		ShowLegend: &noLegend,
	}
}

func reversed(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[len(v)-1-i] = x
	}
	return out
}

func concat(a, b []float64) FloatList {
	out := make(FloatList, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
