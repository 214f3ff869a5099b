package traces

import "github.com/raykavin/goplotly/pkg/common"

type Ohlc[T, O any] struct {
	Type             common.PlotType          `json:"type" plotly:"-"`
	X                []T                      `json:"x,omitempty"`
	Open             []O                      `json:"open,omitempty"`
	High             []O                      `json:"high,omitempty"`
	Low              []O                      `json:"low,omitempty"`
	Close            []O                      `json:"close,omitempty"`
	Name             *string                  `json:"name,omitempty"`
	Visible          *common.Visible          `json:"visible,omitempty"`
	ShowLegend       *bool                    `json:"showlegend,omitempty"`
	LegendGroup      *string                  `json:"legendgroup,omitempty"`
	LegendGroupTitle *common.LegendGroupTitle `json:"legendgrouptitle,omitempty"`
	Opacity          *float64                 `json:"opacity,omitempty"`
	Text             *common.Dim[string]      `json:"text,omitempty"`
	HoverText        *common.Dim[string]      `json:"hovertext,omitempty"`
	HoverInfo        *common.HoverInfo        `json:"hoverinfo,omitempty"`
	XAxis            *string                  `json:"xaxis,omitempty"`
	YAxis            *string                  `json:"yaxis,omitempty"`
	Line             *common.Line             `json:"line,omitempty"`
	Increasing       *common.Direction        `json:"increasing,omitempty"`
	Decreasing       *common.Direction        `json:"decreasing,omitempty"`
	HoverLabel       *common.Label            `json:"hoverlabel,omitempty"`
	TickWidth        *float64                 `json:"tickwidth,omitempty"`
	XCalendar        *common.Calendar         `json:"xcalendar,omitempty"`
}

func NewOhlc[T, O any](x []T, open, high, low, close []O) *Ohlc[T, O] {
	return &Ohlc[T, O]{
		Type:  common.PlotTypeOhlc,
		X:     x,
		Open:  open,
		High:  high,
		Low:   low,
		Close: close,
	}
}

func (o *Ohlc[T, O]) PlotType() common.PlotType { return o.Type }

func (o *Ohlc[T, O]) ToJSON() (string, error) { return toJSON(o) }

func (o *Ohlc[T, O]) Clone() Trace { return cloneTrace(o) }
