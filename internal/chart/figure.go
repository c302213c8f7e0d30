// Package chart builds the growth chart as a Plotly figure specification.
// The figure is serialized to JSON and rendered client-side by plotly.js;
// nothing here draws pixels.
package chart

import (
	"bytes"
	"math"
	"strconv"
)

// Figure is the renderable chart specification: trace list plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one Plotly scatter trace. Only the fields this chart uses are
// modeled.
type Trace struct {
	X          FloatList `json:"x"`
	Y          FloatList `json:"y"`
	Mode       string    `json:"mode,omitempty"`
	Name       string    `json:"name,omitempty"`
	Fill       string    `json:"fill,omitempty"`
	FillColor  string    `json:"fillcolor,omitempty"`
	Line       *Line     `json:"line,omitempty"`
	Marker     *Marker   `json:"marker,omitempty"`
	HoverInfo  string    `json:"hoverinfo,omitempty"`
	ShowLegend *bool     `json:"showlegend,omitempty"`
}

type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

type Marker struct {
	Size float64 `json:"size,omitempty"`
}

type Layout struct {
	Title     string `json:"title"`
	XAxis     Axis   `json:"xaxis"`
	YAxis     Axis   `json:"yaxis"`
	Legend    Legend `json:"legend"`
	HoverMode string `json:"hovermode"`
}

type Axis struct {
	Title string `json:"title"`
}

type Legend struct {
	Y          float64 `json:"y"`
	TraceOrder string  `json:"traceorder"`
	Font       Font    `json:"font"`
}

type Font struct {
	Size int `json:"size"`
}

// FloatList marshals NaN and infinities as JSON null, which Plotly treats as
// a gap in the curve. encoding/json rejects NaN outright, hence the custom
// marshaler.
type FloatList []float64

func (l FloatList) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('[')
	for i, v := range l {
		if i > 0 {
			b.WriteByte(',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			b.WriteString("null")
		} else {
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	b.WriteByte(']')
	return b.Bytes(), nil
}
