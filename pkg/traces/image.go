package traces

import (
	"encoding/json"
	"image"
	stdcolor "image/color"

	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
)

// PixelColor is a single pixel, serialized as [r, g, b] or [r, g, b, a].
type PixelColor struct {
	R, G, B uint8
	A    float64
	HasA bool
}

func (p PixelColor) MarshalJSON() ([]byte, error) {
	if p.HasA {
		return json.Marshal([]any{p.R, p.G, p.B, p.A})
	}
	// a []uint8 would be encoded as base64
	return json.Marshal([]int{int(p.R), int(p.G), int(p.B)})
}

// ImageData is anything that can be turned into rows of pixels.
type ImageData interface {
	ImageData() [][]PixelColor
}

// RgbImage adapts a grid of rgb colors.
type RgbImage [][]color.Rgb

func (m RgbImage) ImageData() [][]PixelColor {
	out := make([][]PixelColor, 0, len(m))
	for _, row := range m {
		pixels := make([]PixelColor, 0, len(row))
		for _, c := range row {
			pixels = append(pixels, PixelColor{R: c.R, G: c.G, B: c.B})
		}
		out = append(out, pixels)
	}
	return out
}

// RgbaImage adapts a grid of rgba colors.
type RgbaImage [][]color.Rgba

func (m RgbaImage) ImageData() [][]PixelColor {
	out := make([][]PixelColor, 0, len(m))
	for _, row := range m {
		pixels := make([]PixelColor, 0, len(row))
		for _, c := range row {
			pixels = append(pixels, PixelColor{R: c.R, G: c.G, B: c.B, A: c.A, HasA: true})
		}
		out = append(out, pixels)
	}
	return out
}

// StdImage adapts an image.Image. Alpha is kept only when the image is not
// fully opaque.
type StdImage struct {
	image.Image
}

func (m StdImage) ImageData() [][]PixelColor {
	bounds := m.Bounds()
	opaque := isOpaque(m.Image)
	out := make([][]PixelColor, 0, bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := make([]PixelColor, 0, bounds.Dx())
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := stdcolor.NRGBAModel.Convert(m.At(x, y)).(stdcolor.NRGBA)
			p := PixelColor{R: c.R, G: c.G, B: c.B}
			if !opaque {
				p.A = float64(c.A) / 255
				p.HasA = true
			}
			row = append(row, p)
		}
		out = append(out, row)
	}
	return out
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}

type ColorModel string

const (
	ColorModelRGB     ColorModel = "rgb"
	ColorModelRGBA    ColorModel = "rgba"
	ColorModelRGBA256 ColorModel = "rgba256"
	ColorModelHSL     ColorModel = "hsl"
	ColorModelHSLA    ColorModel = "hsla"
)

type ZSmooth string

const (
	ZSmoothFast  ZSmooth = "fast"
	ZSmoothFalse ZSmooth = "false"
)

func (z ZSmooth) MarshalJSON() ([]byte, error) {
	return common.MarshalBoolOrString(string(z))
}

// Image displays a grid of pixels.
type Image struct {
	Type             common.PlotType          `json:"type" plotly:"-"`
	Z                [][]PixelColor           `json:"z,omitempty" plotly:"-"`
	Name             *string                  `json:"name,omitempty"`
	Visible          *common.Visible          `json:"visible,omitempty"`
	LegendRank       *int                     `json:"legendrank,omitempty"`
	LegendGroupTitle *common.LegendGroupTitle `json:"legendgrouptitle,omitempty"`
	Opacity          *float64                 `json:"opacity,omitempty"`
	IDs              []string                 `json:"ids,omitempty"`
	X0               any                      `json:"x0,omitempty"`
	DX               *float64                 `json:"dx,omitempty"`
	Y0               any                      `json:"y0,omitempty"`
	DY               *float64                 `json:"dy,omitempty"`
	Source           *string                  `json:"source,omitempty"`
	Text             *common.Dim[string]      `json:"text,omitempty"`
	HoverText        *common.Dim[string]      `json:"hovertext,omitempty"`
	HoverInfo        *common.HoverInfo        `json:"hoverinfo,omitempty"`
	HoverTemplate    *common.Dim[string]      `json:"hovertemplate,omitempty"`
	Meta             any                      `json:"meta,omitempty"`
	CustomData       []any                    `json:"customdata,omitempty"`
	XAxis            *string                  `json:"xaxis,omitempty"`
	YAxis            *string                  `json:"yaxis,omitempty"`
	ColorModel       *ColorModel              `json:"colormodel,omitempty"`
	ZMax             [][]PixelColor           `json:"zmax,omitempty" plotly:"-"`
	ZMin             [][]PixelColor           `json:"zmin,omitempty" plotly:"-"`
	ZSmooth          *ZSmooth                 `json:"zsmooth,omitempty"`
	HoverLabel       *common.Label            `json:"hoverlabel,omitempty"`
	UIRevision       any                      `json:"uirevision,omitempty"`
}

func NewImage(z ImageData) *Image {
	return &Image{
		Type: common.PlotTypeImage,
		Z:    z.ImageData(),
	}
}

func (i *Image) WithZMax(value ImageData) *Image {
	i.ZMax = value.ImageData()
	return i
}

func (i *Image) WithZMin(value ImageData) *Image {
	i.ZMin = value.ImageData()
	return i
}

func (i *Image) PlotType() common.PlotType { return i.Type }

func (i *Image) ToJSON() (string, error) { return toJSON(i) }

func (i *Image) Clone() Trace { return cloneTrace(i) }
