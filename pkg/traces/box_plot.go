package traces

import (
	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
)

// BoxMean draws the mean (true) and optionally the standard deviation ("sd")
// inside each box.
type BoxMean string

const (
	BoxMeanTrue              BoxMean = "true"
	BoxMeanFalse             BoxMean = "false"
	BoxMeanStandardDeviation BoxMean = "sd"
)

// MarshalJSON implements json.Marshaler.
func (b BoxMean) MarshalJSON() ([]byte, error) {
	return common.MarshalBoolOrString(string(b))
}

// BoxPoints selects which sample points are drawn next to the box.
type BoxPoints string

const (
	BoxPointsAll               BoxPoints = "all"
	BoxPointsOutliers          BoxPoints = "outliers"
	BoxPointsSuspectedOutliers BoxPoints = "suspectedoutliers"
	BoxPointsFalse             BoxPoints = "false"
)

// MarshalJSON implements json.Marshaler.
func (b BoxPoints) MarshalJSON() ([]byte, error) {
	return common.MarshalBoolOrString(string(b))
}

type QuartileMethod string

const (
	QuartileMethodLinear    QuartileMethod = "linear"
	QuartileMethodExclusive QuartileMethod = "exclusive"
	QuartileMethodInclusive QuartileMethod = "inclusive"
)

// BoxPlot summarizes a sample by its quartiles. Statistics are computed by the
// renderer unless q1/median/q3 are given explicitly.
type BoxPlot[Y, X any] struct {
	Type              common.PlotType          `json:"type" plotly:"-"`
	X                 []X                      `json:"x,omitempty"`
	Y                 []Y                      `json:"y,omitempty"`
	Name              *string                  `json:"name,omitempty"`
	Visible           *common.Visible          `json:"visible,omitempty"`
	ShowLegend        *bool                    `json:"showlegend,omitempty"`
	LegendGroup       *string                  `json:"legendgroup,omitempty"`
	LegendGroupTitle  *common.LegendGroupTitle `json:"legendgrouptitle,omitempty"`
	Opacity           *float64                 `json:"opacity,omitempty"`
	IDs               []string                 `json:"ids,omitempty"`
	Width             *int                     `json:"width,omitempty"`
	Text              *common.Dim[string]      `json:"text,omitempty"`
	HoverText         *common.Dim[string]      `json:"hovertext,omitempty"`
	HoverInfo         *common.HoverInfo        `json:"hoverinfo,omitempty"`
	HoverTemplate     *common.Dim[string]      `json:"hovertemplate,omitempty"`
	XAxis             *string                  `json:"xaxis,omitempty"`
	YAxis             *string                  `json:"yaxis,omitempty"`
	Orientation       *common.Orientation      `json:"orientation,omitempty"`
	AlignmentGroup    *string                  `json:"alignmentgroup,omitempty"`
	OffsetGroup       *string                  `json:"offsetgroup,omitempty"`
	Marker            *common.Marker           `json:"marker,omitempty"`
	Line              *common.Line             `json:"line,omitempty"`
	BoxMean           *BoxMean                 `json:"boxmean,omitempty"`
	BoxPoints         *BoxPoints               `json:"boxpoints,omitempty"`
	Notched           *bool                    `json:"notched,omitempty"`
	NotchWidth        *float64                 `json:"notchwidth,omitempty"`
	WhiskerWidth      *float64                 `json:"whiskerwidth,omitempty"`
	Q1                []float64                `json:"q1,omitempty"`
	Median            []float64                `json:"median,omitempty"`
	Q3                []float64                `json:"q3,omitempty"`
	LowerFence        []float64                `json:"lowerfence,omitempty"`
	UpperFence        []float64                `json:"upperfence,omitempty"`
	NotchSpan         []float64                `json:"notchspan,omitempty"`
	Mean              []float64                `json:"mean,omitempty"`
	StandardDeviation []float64                `json:"sd,omitempty"`
	QuartileMethod    *QuartileMethod          `json:"quartilemethod,omitempty"`
	FillColor         color.Color              `json:"fillcolor,omitempty"`
	HoverLabel        *common.Label            `json:"hoverlabel,omitempty"`
	HoverOn           *string                  `json:"hoveron,omitempty"`
	PointPos          *float64                 `json:"pointpos,omitempty"`
	Jitter            *float64                 `json:"jitter,omitempty"`
	XCalendar         *common.Calendar         `json:"xcalendar,omitempty"`
	YCalendar         *common.Calendar         `json:"ycalendar,omitempty"`
}

// NewBoxPlot creates a vertical box from the y samples.
func NewBoxPlot[Y any](y []Y) *BoxPlot[Y, float64] {
	return &BoxPlot[Y, float64]{
		Type: common.PlotTypeBox,
		Y:    y,
	}
}

// NewBoxPlotXY creates boxes grouped by the x values.
func NewBoxPlotXY[Y, X any](x []X, y []Y) *BoxPlot[Y, X] {
	return &BoxPlot[Y, X]{
		Type: common.PlotTypeBox,
		X:    x,
		Y:    y,
	}
}

// NewHorizontalBoxPlot creates a horizontal box from the x samples.
func NewHorizontalBoxPlot[X any](x []X) *BoxPlot[float64, X] {
	return &BoxPlot[float64, X]{
		Type: common.PlotTypeBox,
		X:    x,
	}
}

func (b *BoxPlot[Y, X]) PlotType() common.PlotType { return b.Type }

func (b *BoxPlot[Y, X]) ToJSON() (string, error) { return toJSON(b) }

func (b *BoxPlot[Y, X]) Clone() Trace { return cloneTrace(b) }
