package traces

import (
	"github.com/raykavin/goplotly/pkg/common"
	"gonum.org/v1/gonum/mat"
)

// Bins sets explicit bin boundaries.
type Bins struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Size  float64 `json:"size"`
}

func NewBins(start, end, size float64) *Bins {
	return &Bins{Start: start, End: end, Size: size}
}

type HistDirection string

const (
	HistDirectionIncreasing HistDirection = "increasing"
	HistDirectionDecreasing HistDirection = "decreasing"
)

type CurrentBin string

const (
	CurrentBinInclude CurrentBin = "include"
	CurrentBinExclude CurrentBin = "exclude"
	CurrentBinHalf    CurrentBin = "half"
)

type Cumulative struct {
	Enabled    *bool          `json:"enabled,omitempty"`
	Direction  *HistDirection `json:"direction,omitempty"`
	CurrentBin *CurrentBin    `json:"currentbin,omitempty"`
}

func NewCumulative() *Cumulative {
	return &Cumulative{}
}

type HistFunc string

const (
	HistFuncCount   HistFunc = "count"
	HistFuncSum     HistFunc = "sum"
	HistFuncAverage HistFunc = "avg"
	HistFuncMinimum HistFunc = "min"
	HistFuncMaximum HistFunc = "max"
)

type HistNorm string

const (
	HistNormDefault            HistNorm = ""
	HistNormPercent            HistNorm = "percent"
	HistNormProbability        HistNorm = "probability"
	HistNormDensity            HistNorm = "density"
	HistNormProbabilityDensity HistNorm = "probability density"
)

// Histogram bins the x (or y) samples. Binning happens in the renderer.
type Histogram[H any] struct {
	Type             common.PlotType          `json:"type" plotly:"-"`
	Name             *string                  `json:"name,omitempty"`
	Visible          *common.Visible          `json:"visible,omitempty"`
	ShowLegend       *bool                    `json:"showlegend,omitempty"`
	LegendGroup      *string                  `json:"legendgroup,omitempty"`
	LegendGroupTitle *common.LegendGroupTitle `json:"legendgrouptitle,omitempty"`
	Opacity          *float64                 `json:"opacity,omitempty"`
	X                []H                      `json:"x,omitempty"`
	Y                []H                      `json:"y,omitempty"`
	AlignmentGroup   *string                  `json:"alignmentgroup,omitempty"`
	AutoBinX         *bool                    `json:"autobinx,omitempty"`
	AutoBinY         *bool                    `json:"autobiny,omitempty"`
	Cumulative       *Cumulative              `json:"cumulative,omitempty"`
	BinGroup         *string                  `json:"bingroup,omitempty"`
	ErrorX           *common.ErrorData        `json:"error_x,omitempty"`
	ErrorY           *common.ErrorData        `json:"error_y,omitempty"`
	HistFunc         *HistFunc                `json:"histfunc,omitempty"`
	HistNorm         *HistNorm                `json:"histnorm,omitempty"`
	HoverInfo        *common.HoverInfo        `json:"hoverinfo,omitempty"`
	HoverLabel       *common.Label            `json:"hoverlabel,omitempty"`
	HoverTemplate    *common.Dim[string]      `json:"hovertemplate,omitempty"`
	HoverText        *common.Dim[string]      `json:"hovertext,omitempty"`
	Marker           *common.Marker           `json:"marker,omitempty"`
	NBinsX           *int                     `json:"nbinsx,omitempty"`
	NBinsY           *int                     `json:"nbinsy,omitempty"`
	OffsetGroup      *string                  `json:"offsetgroup,omitempty"`
	Orientation      *common.Orientation      `json:"orientation,omitempty"`
	Text             *common.Dim[string]      `json:"text,omitempty"`
	XAxis            *string                  `json:"xaxis,omitempty"`
	XBins            *Bins                    `json:"xbins,omitempty"`
	XCalendar        *common.Calendar         `json:"xcalendar,omitempty"`
	YAxis            *string                  `json:"yaxis,omitempty"`
	YBins            *Bins                    `json:"ybins,omitempty"`
	YCalendar        *common.Calendar         `json:"ycalendar,omitempty"`
}

// NewHistogram bins the x samples.
func NewHistogram[H any](x []H) *Histogram[H] {
	return &Histogram[H]{Type: common.PlotTypeHistogram, X: x}
}

// NewHistogramXY aggregates y over the bins of x (see WithHistFunc).
func NewHistogramXY[H any](x, y []H) *Histogram[H] {
	return &Histogram[H]{Type: common.PlotTypeHistogram, X: x, Y: y}
}

// NewVerticalHistogram bins the y samples, drawing horizontal bars.
func NewVerticalHistogram[H any](y []H) *Histogram[H] {
	return &Histogram[H]{Type: common.PlotTypeHistogram, Y: y}
}

// NewHistogramFromVector bins the elements of a gonum vector.
func NewHistogramFromVector(x mat.Vector) *Histogram[float64] {
	return NewHistogram(VectorToSlice(x))
}

func (h *Histogram[H]) PlotType() common.PlotType { return h.Type }

func (h *Histogram[H]) ToJSON() (string, error) { return toJSON(h) }

func (h *Histogram[H]) Clone() Trace { return cloneTrace(h) }
