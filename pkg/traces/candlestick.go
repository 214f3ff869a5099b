package traces

import (
	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
)

// Candlestick draws open/high/low/close boxes per x value.
type Candlestick[T, O any] struct {
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
	WhiskerWidth     *float64                 `json:"whiskerwidth,omitempty"`
	Increasing       *common.Direction        `json:"increasing,omitempty"`
	Decreasing       *common.Direction        `json:"decreasing,omitempty"`
	HoverLabel       *common.Label            `json:"hoverlabel,omitempty"`
	XCalendar        *common.Calendar         `json:"xcalendar,omitempty"`
}

// NewCandlestick creates a candlestick trace with green increasing and red
// decreasing boxes.
func NewCandlestick[T, O any](x []T, open, high, low, close []O) *Candlestick[T, O] {
	green := common.NewLine().WithColor(color.Green)
	red := common.NewLine().WithColor(color.Red)
	return &Candlestick[T, O]{
		Type:       common.PlotTypeCandlestick,
		X:          x,
		Open:       open,
		High:       high,
		Low:        low,
		Close:      close,
		Increasing: common.NewIncreasing(green),
		Decreasing: common.NewDecreasing(red),
	}
}

func (c *Candlestick[T, O]) PlotType() common.PlotType { return c.Type }

func (c *Candlestick[T, O]) ToJSON() (string, error) { return toJSON(c) }

func (c *Candlestick[T, O]) Clone() Trace { return cloneTrace(c) }
