package traces

import (
	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
)

// ScatterPolar draws points in polar coordinates.
type ScatterPolar[Theta, R any] struct {
	Type             common.PlotType              `json:"type" plotly:"-"`
	Name             *string                      `json:"name,omitempty"`
	Visible          *common.Visible              `json:"visible,omitempty"`
	ShowLegend       *bool                        `json:"showlegend,omitempty"`
	LegendGroup      *string                      `json:"legendgroup,omitempty"`
	LegendGroupTitle *common.LegendGroupTitle     `json:"legendgrouptitle,omitempty"`
	Opacity          *float64                     `json:"opacity,omitempty"`
	Mode             *common.Mode                 `json:"mode,omitempty"`
	IDs              []string                     `json:"ids,omitempty"`
	Theta            []Theta                      `json:"theta,omitempty"`
	Theta0           any                          `json:"theta0,omitempty"`
	DTheta           *float64                     `json:"dtheta,omitempty"`
	R                []R                          `json:"r,omitempty"`
	R0               any                          `json:"r0,omitempty"`
	DR               *float64                     `json:"dr,omitempty"`
	Subplot          *string                      `json:"subplot,omitempty"`
	Text             *common.Dim[string]          `json:"text,omitempty"`
	TextPosition     *common.Dim[common.Position] `json:"textposition,omitempty"`
	TextTemplate     *common.Dim[string]          `json:"texttemplate,omitempty"`
	HoverText        *common.Dim[string]          `json:"hovertext,omitempty"`
	HoverInfo        *common.HoverInfo            `json:"hoverinfo,omitempty"`
	HoverTemplate    *common.Dim[string]          `json:"hovertemplate,omitempty"`
	Meta             any                          `json:"meta,omitempty"`
	CustomData       []any                        `json:"customdata,omitempty"`
	Orientation      *common.Orientation          `json:"orientation,omitempty"`
	GroupNorm        *GroupNorm                   `json:"groupnorm,omitempty"`
	SelectedPoints   []int                        `json:"selectedpoints,omitempty"`
	StackGroup       *string                      `json:"stackgroup,omitempty"`
	Marker           *common.Marker               `json:"marker,omitempty"`
	Line             *common.Line                 `json:"line,omitempty"`
	TextFont         *common.Font                 `json:"textfont,omitempty"`
	ClipOnAxis       *bool                        `json:"cliponaxis,omitempty"`
	ConnectGaps      *bool                        `json:"connectgaps,omitempty"`
	Fill             *common.Fill                 `json:"fill,omitempty"`
	FillColor        color.Color                  `json:"fillcolor,omitempty"`
	HoverLabel       *common.Label                `json:"hoverlabel,omitempty"`
	HoverOn          *common.HoverOn              `json:"hoveron,omitempty"`
	StackGaps        *StackGaps                   `json:"stackgaps,omitempty"`
	UID              *string                      `json:"uid,omitempty"`
}

func NewScatterPolar[Theta, R any](theta []Theta, r []R) *ScatterPolar[Theta, R] {
	return &ScatterPolar[Theta, R]{
		Type:  common.PlotTypeScatterPolar,
		Theta: theta,
		R:     r,
	}
}

// WithWebGLMode switches between "scatterpolar" and "scatterpolargl".
func (s *ScatterPolar[Theta, R]) WithWebGLMode(on bool) *ScatterPolar[Theta, R] {
	s.Type = common.PlotTypeScatterPolar
	if on {
		s.Type = common.PlotTypeScatterPolarGL
	}
	return s
}

func (s *ScatterPolar[Theta, R]) PlotType() common.PlotType { return s.Type }

func (s *ScatterPolar[Theta, R]) ToJSON() (string, error) { return toJSON(s) }

func (s *ScatterPolar[Theta, R]) Clone() Trace { return cloneTrace(s) }
