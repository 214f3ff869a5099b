package traces

import (
	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
)

type IntensityMode string

const (
	IntensityModeVertex IntensityMode = "vertex"
	IntensityModeCell   IntensityMode = "cell"
)

type DelaunayAxis string

const (
	DelaunayAxisX DelaunayAxis = "x"
	DelaunayAxisY DelaunayAxis = "y"
	DelaunayAxisZ DelaunayAxis = "z"
)

type Mesh3DContour struct {
	Color color.Color `json:"color,omitempty"`
	Show  *bool       `json:"show,omitempty"`
	Width *int        `json:"width,omitempty"`
}

func NewMesh3DContour() *Mesh3DContour {
	return &Mesh3DContour{}
}

type Mesh3DLighting struct {
	Ambient              *float64 `json:"ambient,omitempty"`
	Diffuse              *float64 `json:"diffuse,omitempty"`
	FaceNormalsEpsilon   *float64 `json:"facenormalsepsilon,omitempty"`
	Fresnel              *float64 `json:"fresnel,omitempty"`
	Roughness            *float64 `json:"roughness,omitempty"`
	Specular             *float64 `json:"specular,omitempty"`
	VertexNormalsEpsilon *float64 `json:"vertexnormalsepsilon,omitempty"`
}

func NewMesh3DLighting() *Mesh3DLighting {
	return &Mesh3DLighting{}
}

type Mesh3DLightPosition struct {
	X []float64 `json:"x,omitempty"`
	Y []float64 `json:"y,omitempty"`
	Z []float64 `json:"z,omitempty"`
}

func NewMesh3DLightPosition() *Mesh3DLightPosition {
	return &Mesh3DLightPosition{}
}

// Mesh3D draws a triangulated surface. When I, J and K are empty the
// triangles are computed from the vertices.
type Mesh3D[X, Y, Z any] struct {
	Type             common.PlotType          `json:"type" plotly:"-"`
	Name             *string                  `json:"name,omitempty"`
	Visible          *common.Visible          `json:"visible,omitempty"`
	ShowLegend       *bool                    `json:"showlegend,omitempty"`
	LegendRank       *int                     `json:"legendrank,omitempty"`
	LegendGroup      *string                  `json:"legendgroup,omitempty"`
	LegendGroupTitle *common.LegendGroupTitle `json:"legendgrouptitle,omitempty"`
	Opacity          *float64                 `json:"opacity,omitempty"`
	IDs              []string                 `json:"ids,omitempty"`
	X                []X                      `json:"x,omitempty"`
	Y                []Y                      `json:"y,omitempty"`
	Z                []Z                      `json:"z,omitempty"`
	I                []int                    `json:"i,omitempty"`
	J                []int                    `json:"j,omitempty"`
	K                []int                    `json:"k,omitempty"`
	FaceColor        []color.Color            `json:"facecolor,omitempty"`
	Intensity        []float64                `json:"intensity,omitempty"`
	IntensityMode    *IntensityMode           `json:"intensitymode,omitempty"`
	VertexColor      []color.Color            `json:"vertexcolor,omitempty"`
	Text             *common.Dim[string]      `json:"text,omitempty"`
	HoverText        *common.Dim[string]      `json:"hovertext,omitempty"`
	HoverInfo        *common.HoverInfo        `json:"hoverinfo,omitempty"`
	HoverTemplate    *common.Dim[string]      `json:"hovertemplate,omitempty"`
	XHoverFormat     *string                  `json:"xhoverformat,omitempty"`
	YHoverFormat     *string                  `json:"yhoverformat,omitempty"`
	ZHoverFormat     *string                  `json:"zhoverformat,omitempty"`
	Meta             any                      `json:"meta,omitempty"`
	CustomData       []any                    `json:"customdata,omitempty"`
	Scene            *string                  `json:"scene,omitempty"`
	ColorAxis        *string                  `json:"coloraxis,omitempty"`
	Color            color.Color              `json:"color,omitempty"`
	ColorBar         *common.ColorBar         `json:"colorbar,omitempty"`
	AutoColorScale   *bool                    `json:"autocolorscale,omitempty"`
	ColorScale       *common.ColorScale       `json:"colorscale,omitempty"`
	ShowScale        *bool                    `json:"showscale,omitempty"`
	ReverseScale     *bool                    `json:"reversescale,omitempty"`
	CAuto            *bool                    `json:"cauto,omitempty"`
	CMax             *float64                 `json:"cmax,omitempty"`
	CMid             *float64                 `json:"cmid,omitempty"`
	CMin             *float64                 `json:"cmin,omitempty"`
	AlphaHull        *float64                 `json:"alphahull,omitempty"`
	DelaunayAxis     *DelaunayAxis            `json:"delaunayaxis,omitempty"`
	Contour          *Mesh3DContour           `json:"contour,omitempty"`
	FlatShading      *bool                    `json:"flatshading,omitempty"`
	HoverLabel       *common.Label            `json:"hoverlabel,omitempty"`
	Lighting         *Mesh3DLighting          `json:"lighting,omitempty"`
	LightPosition    *Mesh3DLightPosition     `json:"lightposition,omitempty"`
	XCalendar        *common.Calendar         `json:"xcalendar,omitempty"`
	YCalendar        *common.Calendar         `json:"ycalendar,omitempty"`
	ZCalendar        *common.Calendar         `json:"zcalendar,omitempty"`
	UIRevision       any                      `json:"uirevision,omitempty"`
}

func NewMesh3D[X, Y, Z any](x []X, y []Y, z []Z, i, j, k []int) *Mesh3D[X, Y, Z] {
	return &Mesh3D[X, Y, Z]{
		Type: common.PlotTypeMesh3D,
		X:    x,
		Y:    y,
		Z:    z,
		I:    i,
		J:    j,
		K:    k,
	}
}

func (m *Mesh3D[X, Y, Z]) PlotType() common.PlotType { return m.Type }

func (m *Mesh3D[X, Y, Z]) ToJSON() (string, error) { return toJSON(m) }

func (m *Mesh3D[X, Y, Z]) Clone() Trace { return cloneTrace(m) }
