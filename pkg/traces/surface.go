package traces

import (
	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
	"gonum.org/v1/gonum/mat"
)

type Lighting struct {
	Ambient   *float64 `json:"ambient,omitempty"`
	Diffuse   *float64 `json:"diffuse,omitempty"`
	Fresnel   *float64 `json:"fresnel,omitempty"`
	Roughness *float64 `json:"roughness,omitempty"`
	Specular  *float64 `json:"specular,omitempty"`
}

func NewLighting() *Lighting {
	return &Lighting{}
}

// LightPosition places the light source of a surface.
type LightPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

func NewLightPosition(x, y, z int) *LightPosition {
	return &LightPosition{X: x, Y: y, Z: z}
}

type PlaneProject struct {
	X *bool `json:"x,omitempty"`
	Y *bool `json:"y,omitempty"`
	Z *bool `json:"z,omitempty"`
}

func NewPlaneProject() *PlaneProject {
	return &PlaneProject{}
}

type PlaneContours struct {
	Color          color.Color   `json:"color,omitempty"`
	End            *float64      `json:"end,omitempty"`
	Highlight      *bool         `json:"highlight,omitempty"`
	HighlightWidth *int          `json:"highlightwidth,omitempty"`
	HighlightColor color.Color   `json:"highlightcolor,omitempty"`
	Project        *PlaneProject `json:"project,omitempty"`
	Show           *bool         `json:"show,omitempty"`
	Size           *int          `json:"size,omitempty"`
	Start          *float64      `json:"start,omitempty"`
	UseColormap    *bool         `json:"usecolormap,omitempty"`
	Width          *int          `json:"width,omitempty"`
}

func NewPlaneContours() *PlaneContours {
	return &PlaneContours{}
}

type SurfaceContours struct {
	X *PlaneContours `json:"x,omitempty"`
	Y *PlaneContours `json:"y,omitempty"`
	Z *PlaneContours `json:"z,omitempty"`
}

func NewSurfaceContours() *SurfaceContours {
	return &SurfaceContours{}
}

// Surface draws the z matrix as a 3D surface.
type Surface[X, Y, Z any] struct {
	Type             common.PlotType          `json:"type" plotly:"-"`
	Name             *string                  `json:"name,omitempty"`
	Visible          *common.Visible          `json:"visible,omitempty"`
	ShowLegend       *bool                    `json:"showlegend,omitempty"`
	LegendGroup      *string                  `json:"legendgroup,omitempty"`
	LegendGroupTitle *common.LegendGroupTitle `json:"legendgrouptitle,omitempty"`
	Opacity          *float64                 `json:"opacity,omitempty"`
	X                []X                      `json:"x,omitempty"`
	Y                []Y                      `json:"y,omitempty"`
	Z                [][]Z                    `json:"z,omitempty"`
	AutoColorScale   *bool                    `json:"autocolorscale,omitempty"`
	CAuto            *bool                    `json:"cauto,omitempty"`
	CMax             *float64                 `json:"cmax,omitempty"`
	CMid             *float64                 `json:"cmid,omitempty"`
	CMin             *float64                 `json:"cmin,omitempty"`
	ColorBar         *common.ColorBar         `json:"colorbar,omitempty"`
	ColorScale       *common.ColorScale       `json:"colorscale,omitempty"`
	ConnectGaps      *bool                    `json:"connectgaps,omitempty"`
	Contours         *SurfaceContours         `json:"contours,omitempty"`
	HideSurface      *bool                    `json:"hidesurface,omitempty"`
	HoverInfo        *common.HoverInfo        `json:"hoverinfo,omitempty"`
	HoverLabel       *common.Label            `json:"hoverlabel,omitempty"`
	HoverTemplate    *common.Dim[string]      `json:"hovertemplate,omitempty"`
	HoverText        *common.Dim[string]      `json:"hovertext,omitempty"`
	LightPosition    *LightPosition           `json:"lightposition,omitempty"`
	Lighting         *Lighting                `json:"lighting,omitempty"`
	ReverseScale     *bool                    `json:"reversescale,omitempty"`
	Scene            *string                  `json:"scene,omitempty"`
	ShowScale        *bool                    `json:"showscale,omitempty"`
	SurfaceColor     []color.Color            `json:"surfacecolor,omitempty"`
	Text             *common.Dim[string]      `json:"text,omitempty"`
	XCalendar        *common.Calendar         `json:"xcalendar,omitempty"`
	YCalendar        *common.Calendar         `json:"ycalendar,omitempty"`
	ZCalendar        *common.Calendar         `json:"zcalendar,omitempty"`
}

// NewSurface creates a surface from z rows.
func NewSurface[Z any](z [][]Z) *Surface[float64, float64, Z] {
	return &Surface[float64, float64, Z]{Type: common.PlotTypeSurface, Z: z}
}

// NewSurfaceXYZ creates a surface with explicit x/y coordinates.
func NewSurfaceXYZ[X, Y, Z any](x []X, y []Y, z [][]Z) *Surface[X, Y, Z] {
	return &Surface[X, Y, Z]{Type: common.PlotTypeSurface, X: x, Y: y, Z: z}
}

// NewSurfaceFromMatrix creates a surface from a gonum matrix.
func NewSurfaceFromMatrix(z mat.Matrix) *Surface[float64, float64, float64] {
	return NewSurface(MatrixToRows(z))
}

func (s *Surface[X, Y, Z]) PlotType() common.PlotType { return s.Type }

func (s *Surface[X, Y, Z]) ToJSON() (string, error) { return toJSON(s) }

func (s *Surface[X, Y, Z]) Clone() Trace { return cloneTrace(s) }
