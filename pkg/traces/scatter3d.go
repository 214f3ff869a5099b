package traces

import (
	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
)

type ProjectionCoord struct {
	Opacity *float64 `json:"opacity,omitempty"`
	Scale   *float64 `json:"scale,omitempty"`
	Show    *bool    `json:"show,omitempty"`
}

func NewProjectionCoord() *ProjectionCoord {
	return &ProjectionCoord{}
}

// Projection casts the points onto the walls of the scene.
type Projection struct {
	X *ProjectionCoord `json:"x,omitempty"`
	Y *ProjectionCoord `json:"y,omitempty"`
	Z *ProjectionCoord `json:"z,omitempty"`
}

func NewProjection() *Projection {
	return &Projection{}
}

// SurfaceAxis is serialized as a number.
type SurfaceAxis string

const (
	SurfaceAxisMinusOne SurfaceAxis = "-1"
	SurfaceAxisZero     SurfaceAxis = "0"
	SurfaceAxisOne      SurfaceAxis = "1"
	SurfaceAxisTwo      SurfaceAxis = "2"
)

func (s SurfaceAxis) MarshalJSON() ([]byte, error) {
	return []byte(s), nil
}

type Scatter3D[X, Y, Z any] struct {
	Type             common.PlotType              `json:"type" plotly:"-"`
	Name             *string                      `json:"name,omitempty"`
	Visible          *common.Visible              `json:"visible,omitempty"`
	ShowLegend       *bool                        `json:"showlegend,omitempty"`
	LegendGroup      *string                      `json:"legendgroup,omitempty"`
	LegendRank       *int                         `json:"legendrank,omitempty"`
	LegendGroupTitle *common.LegendGroupTitle     `json:"legendgrouptitle,omitempty"`
	Opacity          *float64                     `json:"opacity,omitempty"`
	Mode             *common.Mode                 `json:"mode,omitempty"`
	IDs              []string                     `json:"ids,omitempty"`
	X                []X                          `json:"x,omitempty"`
	Y                []Y                          `json:"y,omitempty"`
	Z                []Z                          `json:"z,omitempty"`
	SurfaceColor     color.Color                  `json:"surfacecolor,omitempty"`
	Text             *common.Dim[string]          `json:"text,omitempty"`
	TextPosition     *common.Dim[common.Position] `json:"textposition,omitempty"`
	TextTemplate     *common.Dim[string]          `json:"texttemplate,omitempty"`
	HoverText        *common.Dim[string]          `json:"hovertext,omitempty"`
	HoverInfo        *common.HoverInfo            `json:"hoverinfo,omitempty"`
	HoverTemplate    *common.Dim[string]          `json:"hovertemplate,omitempty"`
	XHoverFormat     *string                      `json:"xhoverformat,omitempty"`
	YHoverFormat     *string                      `json:"yhoverformat,omitempty"`
	ZHoverFormat     *string                      `json:"zhoverformat,omitempty"`
	Meta             any                          `json:"meta,omitempty"`
	CustomData       []any                        `json:"customdata,omitempty"`
	Scene            *string                      `json:"scene,omitempty"`
	Marker           *common.Marker               `json:"marker,omitempty"`
	Line             *common.Line                 `json:"line,omitempty"`
	ErrorX           *common.ErrorData            `json:"error_x,omitempty"`
	ErrorY           *common.ErrorData            `json:"error_y,omitempty"`
	ErrorZ           *common.ErrorData            `json:"error_z,omitempty"`
	ConnectGaps      *bool                        `json:"connectgaps,omitempty"`
	HoverLabel       *common.Label                `json:"hoverlabel,omitempty"`
	Projection       *Projection                  `json:"projection,omitempty"`
	SurfaceAxis      *SurfaceAxis                 `json:"surfaceaxis,omitempty"`
	XCalendar        *common.Calendar             `json:"xcalendar,omitempty"`
	YCalendar        *common.Calendar             `json:"ycalendar,omitempty"`
	ZCalendar        *common.Calendar             `json:"zcalendar,omitempty"`
}

func NewScatter3D[X, Y, Z any](x []X, y []Y, z []Z) *Scatter3D[X, Y, Z] {
	return &Scatter3D[X, Y, Z]{
		Type: common.PlotTypeScatter3D,
		X:    x,
		Y:    y,
		Z:    z,
	}
}

func (s *Scatter3D[X, Y, Z]) PlotType() common.PlotType { return s.Type }

func (s *Scatter3D[X, Y, Z]) ToJSON() (string, error) { return toJSON(s) }

func (s *Scatter3D[X, Y, Z]) Clone() Trace { return cloneTrace(s) }
