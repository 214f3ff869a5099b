package traces

import (
	"github.com/raykavin/goplotly/pkg/common"
	"gonum.org/v1/gonum/mat"
)

type Smoothing string

const (
	SmoothingFast  Smoothing = "fast"
	SmoothingBest  Smoothing = "best"
	SmoothingFalse Smoothing = "false"
)

// MarshalJSON implements json.Marshaler.
func (s Smoothing) MarshalJSON() ([]byte, error) {
	return common.MarshalBoolOrString(string(s))
}

// HeatMap colors each cell of the z matrix.
type HeatMap[X, Y, Z any] struct {
	Type             common.PlotType          `json:"type" plotly:"-"`
	Name             *string                  `json:"name,omitempty"`
	Visible          *common.Visible          `json:"visible,omitempty"`
	ShowLegend       *bool                    `json:"showlegend,omitempty"`
	LegendGroup      *string                  `json:"legendgroup,omitempty"`
	LegendGroupTitle *common.LegendGroupTitle `json:"legendgrouptitle,omitempty"`
	Opacity          *float64                 `json:"opacity,omitempty"`
	X                []X                      `json:"x,omitempty"`
	Y                []Y                      `json:"y,omitempty"`
	Z                []Z                      `json:"z,omitempty"`
	AutoColorScale   *bool                    `json:"autocolorscale,omitempty"`
	ColorBar         *common.ColorBar         `json:"colorbar,omitempty"`
	ColorScale       *common.ColorScale       `json:"colorscale,omitempty"`
	ConnectGaps      *bool                    `json:"connectgaps,omitempty"`
	HoverInfo        *common.HoverInfo        `json:"hoverinfo,omitempty"`
	HoverLabel       *common.Label            `json:"hoverlabel,omitempty"`
	HoverOnGaps      *bool                    `json:"hoverongaps,omitempty"`
	HoverTemplate    *common.Dim[string]      `json:"hovertemplate,omitempty"`
	HoverText        []string                 `json:"hovertext,omitempty"`
	ReverseScale     *bool                    `json:"reversescale,omitempty"`
	ShowScale        *bool                    `json:"showscale,omitempty"`
	Text             []string                 `json:"text,omitempty"`
	Transpose        *bool                    `json:"transpose,omitempty"`
	XAxis            *string                  `json:"xaxis,omitempty"`
	XCalendar        *common.Calendar         `json:"xcalendar,omitempty"`
	YAxis            *string                  `json:"yaxis,omitempty"`
	YCalendar        *common.Calendar         `json:"ycalendar,omitempty"`
	ZAuto            *bool                    `json:"zauto,omitempty"`
	ZHoverFormat     *string                  `json:"zhoverformat,omitempty"`
	ZMax             *float64                 `json:"zmax,omitempty"`
	ZMid             *float64                 `json:"zmid,omitempty"`
	ZMin             *float64                 `json:"zmin,omitempty"`
	ZSmooth          *Smoothing               `json:"zsmooth,omitempty"`
}

// NewHeatMap creates a heat map over explicit x/y labels.
func NewHeatMap[X, Y, Z any](x []X, y []Y, z []Z) *HeatMap[X, Y, Z] {
	return &HeatMap[X, Y, Z]{Type: common.PlotTypeHeatMap, X: x, Y: y, Z: z}
}

// NewHeatMapZ creates a heat map indexed by cell position.
func NewHeatMapZ[Z any](z []Z) *HeatMap[float64, float64, Z] {
	return &HeatMap[float64, float64, Z]{Type: common.PlotTypeHeatMap, Z: z}
}

// NewHeatMapFromMatrix creates a heat map from the rows of a gonum matrix.
func NewHeatMapFromMatrix(z mat.Matrix) *HeatMap[float64, float64, []float64] {
	return NewHeatMapZ(MatrixToRows(z))
}

func (h *HeatMap[X, Y, Z]) PlotType() common.PlotType { return h.Type }

func (h *HeatMap[X, Y, Z]) ToJSON() (string, error) { return toJSON(h) }

func (h *HeatMap[X, Y, Z]) Clone() Trace { return cloneTrace(h) }
