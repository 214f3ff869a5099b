package traces

import "github.com/raykavin/goplotly/pkg/common"

// Bar draws one bar per x/y pair.
type Bar[X, Y any] struct {
	Type             common.PlotType                  `json:"type" plotly:"-"`
	X                []X                              `json:"x,omitempty"`
	Y                []Y                              `json:"y,omitempty"`
	Name             *string                          `json:"name,omitempty"`
	Visible          *common.Visible                  `json:"visible,omitempty"`
	ShowLegend       *bool                            `json:"showlegend,omitempty"`
	LegendGroup      *string                          `json:"legendgroup,omitempty"`
	LegendGroupTitle *common.LegendGroupTitle         `json:"legendgrouptitle,omitempty"`
	Opacity          *float64                         `json:"opacity,omitempty"`
	IDs              []string                         `json:"ids,omitempty"`
	Width            *int                             `json:"width,omitempty"`
	Offset           *common.Dim[int]                 `json:"offset,omitempty"`
	Text             *common.Dim[string]              `json:"text,omitempty"`
	TextPosition     *common.Dim[common.TextPosition] `json:"textposition,omitempty"`
	TextTemplate     *common.Dim[string]              `json:"texttemplate,omitempty"`
	HoverText        *common.Dim[string]              `json:"hovertext,omitempty"`
	HoverInfo        *common.HoverInfo                `json:"hoverinfo,omitempty"`
	HoverTemplate    *common.Dim[string]              `json:"hovertemplate,omitempty"`
	XAxis            *string                          `json:"xaxis,omitempty"`
	YAxis            *string                          `json:"yaxis,omitempty"`
	Orientation      *common.Orientation              `json:"orientation,omitempty"`
	AlignmentGroup   *string                          `json:"alignmentgroup,omitempty"`
	OffsetGroup      *string                          `json:"offsetgroup,omitempty"`
	Marker           *common.Marker                   `json:"marker,omitempty"`
	TextAngle        *float64                         `json:"textangle,omitempty"`
	TextFont         *common.Font                     `json:"textfont,omitempty"`
	ErrorX           *common.ErrorData                `json:"error_x,omitempty"`
	ErrorY           *common.ErrorData                `json:"error_y,omitempty"`
	ClipOnAxis       *bool                            `json:"cliponaxis,omitempty"`
	ConstrainText    *common.ConstrainText            `json:"constraintext,omitempty"`
	HoverLabel       *common.Label                    `json:"hoverlabel,omitempty"`
	InsideTextAnchor *common.TextAnchor               `json:"insidetextanchor,omitempty"`
	InsideTextFont   *common.Font                     `json:"insidetextfont,omitempty"`
	OutsideTextFont  *common.Font                     `json:"outsidetextfont,omitempty"`
	XCalendar        *common.Calendar                 `json:"xcalendar,omitempty"`
	YCalendar        *common.Calendar                 `json:"ycalendar,omitempty"`
}

func NewBar[X, Y any](x []X, y []Y) *Bar[X, Y] {
	return &Bar[X, Y]{
		Type: common.PlotTypeBar,
		X:    x,
		Y:    y,
	}
}

func (b *Bar[X, Y]) PlotType() common.PlotType { return b.Type }

func (b *Bar[X, Y]) ToJSON() (string, error) { return toJSON(b) }

func (b *Bar[X, Y]) Clone() Trace { return cloneTrace(b) }
