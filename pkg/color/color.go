// Package color holds the color values understood by plotly.js: CSS named
// colors, rgb()/rgba() functional notation and raw strings such as hex codes.
package color

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Color is any value that serializes to a renderer color string.
type Color interface {
	fmt.Stringer
	json.Marshaler
}

// Rgb is an opaque color serialized as "rgb(r, g, b)".
type Rgb struct {
	R, G, B uint8
}

// NewRgb creates a new Rgb color.
func NewRgb(r, g, b uint8) Rgb {
	return Rgb{R: r, G: g, B: b}
}

func (c Rgb) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// MarshalJSON implements json.Marshaler.
func (c Rgb) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Rgba is an rgb color with an alpha channel in [0, 1].
type Rgba struct {
	R, G, B uint8
	A       float64
}

// NewRgba creates a new Rgba color.
func NewRgba(r, g, b uint8, a float64) Rgba {
	return Rgba{R: r, G: g, B: b, A: a}
}

func (c Rgba) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// MarshalJSON implements json.Marshaler.
func (c Rgba) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Raw is a color passed through untouched, e.g. "#ff00aa" or "hsl(120, 50%, 50%)".
type Raw string

func (c Raw) String() string {
	return string(c)
}

// MarshalJSON implements json.Marshaler.
func (c Raw) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

// Hex returns a raw color from a 24 bit value, formatted as "#rrggbb".
func Hex(value uint32) Raw {
	return Raw(fmt.Sprintf("#%06x", value&0xffffff))
}

// Colors converts a typed slice into a slice of the Color interface,
// which is what per-point color attributes hold.
func Colors[C Color](values []C) []Color {
	out := make([]Color, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
