package state

import (
	"image/color"
)

// Style carries the rendering and geometry settings shared by every curve
// an editor owns.
type Style struct {
	StrokeColor color.Color
	StrokeWidth float64
	// SavedOpacity is the global opacity saved curves render at.
	SavedOpacity float64
	// ControlOpacity is the opacity of control handles and their markers.
	ControlOpacity float64
	// ControlOffset is how far synthesized control points sit beyond the anchors.
	ControlOffset float64
}

// DefaultStyle returns the stock style: black 1-unit strokes, saved curves
// at 0.3 opacity, half-transparent handles and a control offset of 10.
func DefaultStyle() Style {
	return Style{
		StrokeColor:    color.Black,
		StrokeWidth:    1,
		SavedOpacity:   0.3,
		ControlOpacity: 0.5,
		ControlOffset:  10,
	}
}
