package common

import "encoding/json"

// ColorScaleElement is one [position, color] stop of a custom color scale.
type ColorScaleElement struct {
	Position float64
	Color    string
}

// MarshalJSON implements json.Marshaler.
func (e ColorScaleElement) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{e.Position, e.Color})
}

// ColorScale is either a named palette or a list of stops.
type ColorScale struct {
	Palette  ColorScalePalette
	Elements []ColorScaleElement
}

// ColorScaleFromPalette returns a scale referring to a built-in palette.
func ColorScaleFromPalette(palette ColorScalePalette) *ColorScale {
	return &ColorScale{Palette: palette}
}

// NewColorScale returns a scale made of explicit stops.
func NewColorScale(elements ...ColorScaleElement) *ColorScale {
	return &ColorScale{Elements: elements}
}

// MarshalJSON implements json.Marshaler.
func (c ColorScale) MarshalJSON() ([]byte, error) {
	if c.Elements != nil {
		return json.Marshal(c.Elements)
	}
	return json.Marshal(c.Palette)
}
