package traces

import (
	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
)

type GroupNorm string

const (
	GroupNormDefault  GroupNorm = ""
	GroupNormFraction GroupNorm = "fraction"
	GroupNormPercent  GroupNorm = "percent"
)

type StackGaps string

const (
	StackGapsInferZero   StackGaps = "infer zero"
	StackGapsInterpolate StackGaps = "interpolate"
)

// Scatter draws markers, lines or filled areas from x/y pairs.
type Scatter[X, Y any] struct {
	Type             common.PlotType              `json:"type" plotly:"-"`
	Name             *string                      `json:"name,omitempty"`
	Visible          *common.Visible              `json:"visible,omitempty"`
	ShowLegend       *bool                        `json:"showlegend,omitempty"`
	LegendGroup      *string                      `json:"legendgroup,omitempty"`
	LegendGroupTitle *common.LegendGroupTitle     `json:"legendgrouptitle,omitempty"`
	Opacity          *float64                     `json:"opacity,omitempty"`
	IDs              []string                     `json:"ids,omitempty"`
	X                []X                          `json:"x,omitempty"`
	X0               any                          `json:"x0,omitempty"`
	DX               *float64                     `json:"dx,omitempty"`
	Y                []Y                          `json:"y,omitempty"`
	Y0               any                          `json:"y0,omitempty"`
	DY               *float64                     `json:"dy,omitempty"`
	Mode             *common.Mode                 `json:"mode,omitempty"`
	Text             *common.Dim[string]          `json:"text,omitempty"`
	TextPosition     *common.Dim[common.Position] `json:"textposition,omitempty"`
	TextTemplate     *common.Dim[string]          `json:"texttemplate,omitempty"`
	HoverText        *common.Dim[string]          `json:"hovertext,omitempty"`
	HoverInfo        *common.HoverInfo            `json:"hoverinfo,omitempty"`
	HoverTemplate    *common.Dim[string]          `json:"hovertemplate,omitempty"`
	Meta             any                          `json:"meta,omitempty"`
	CustomData       []any                        `json:"customdata,omitempty"`
	XAxis            *string                      `json:"xaxis,omitempty"`
	YAxis            *string                      `json:"yaxis,omitempty"`
	Orientation      *common.Orientation          `json:"orientation,omitempty"`
	GroupNorm        *GroupNorm                   `json:"groupnorm,omitempty"`
	StackGroup       *string                      `json:"stackgroup,omitempty"`
	Marker           *common.Marker               `json:"marker,omitempty"`
	Line             *common.Line                 `json:"line,omitempty"`
	TextFont         *common.Font                 `json:"textfont,omitempty"`
	ErrorX           *common.ErrorData            `json:"error_x,omitempty"`
	ErrorY           *common.ErrorData            `json:"error_y,omitempty"`
	ClipOnAxis       *bool                        `json:"cliponaxis,omitempty"`
	ConnectGaps      *bool                        `json:"connectgaps,omitempty"`
	Fill             *common.Fill                 `json:"fill,omitempty"`
	FillColor        color.Color                  `json:"fillcolor,omitempty"`
	HoverLabel       *common.Label                `json:"hoverlabel,omitempty"`
	HoverOn          *common.HoverOn              `json:"hoveron,omitempty"`
	StackGaps        *StackGaps                   `json:"stackgaps,omitempty"`
	XCalendar        *common.Calendar             `json:"xcalendar,omitempty"`
	YCalendar        *common.Calendar             `json:"ycalendar,omitempty"`
}

// NewScatter creates a scatter trace. x and y are expected to have the same
// length; this is not checked.
func NewScatter[X, Y any](x []X, y []Y) *Scatter[X, Y] {
	return &Scatter[X, Y]{
		Type: common.PlotTypeScatter,
		X:    x,
		Y:    y,
	}
}

// WithWebGLMode switches rendering to WebGL ("scattergl"), which scales to
// many more points.
func (s *Scatter[X, Y]) WithWebGLMode(on bool) *Scatter[X, Y] {
	s.Type = common.PlotTypeScatter
	if on {
		s.Type = common.PlotTypeScatterGL
	}
	return s
}

func (s *Scatter[X, Y]) PlotType() common.PlotType { return s.Type }

func (s *Scatter[X, Y]) ToJSON() (string, error) { return toJSON(s) }

func (s *Scatter[X, Y]) Clone() Trace { return cloneTrace(s) }
