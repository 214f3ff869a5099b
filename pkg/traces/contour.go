package traces

import (
	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
	"gonum.org/v1/gonum/mat"
)

type ContoursType string

const (
	ContoursTypeLevels     ContoursType = "levels"
	ContoursTypeConstraint ContoursType = "constraint"
)

type Coloring string

const (
	ColoringFill    Coloring = "fill"
	ColoringHeatMap Coloring = "heatmap"
	ColoringLines   Coloring = "lines"
	ColoringNone    Coloring = "none"
)

// Operation is the comparison used by constraint contours.
type Operation string

const (
	OperationEquals             Operation = "="
	OperationLessThan           Operation = "<"
	OperationLessThanOrEqual    Operation = "<="
	OperationGreaterThan        Operation = ">"
	OperationGreaterThanOrEqual Operation = ">="
	OperationInside             Operation = "[]"
	OperationOutside            Operation = "]["
)

type Contours struct {
	Type        *ContoursType `json:"type,omitempty"`
	Start       *float64      `json:"start,omitempty"`
	End         *float64      `json:"end,omitempty"`
	Size        *float64      `json:"size,omitempty"`
	Coloring    *Coloring     `json:"coloring,omitempty"`
	ShowLines   *bool         `json:"showlines,omitempty"`
	ShowLabels  *bool         `json:"showlabels,omitempty"`
	LabelFont   *common.Font  `json:"labelfont,omitempty"`
	LabelFormat *string       `json:"labelformat,omitempty"`
	Operation   *Operation    `json:"operation,omitempty"`
	Value       *float64      `json:"value,omitempty"`
}

func NewContours() *Contours {
	return &Contours{}
}

// Contour draws iso-lines of the z values over the x/y grid. Z is usually a
// row slice such as []float64, making z a matrix.
type Contour[Z, X, Y any] struct {
	Type             common.PlotType          `json:"type" plotly:"-"`
	Name             *string                  `json:"name,omitempty"`
	Visible          *common.Visible          `json:"visible,omitempty"`
	ShowLegend       *bool                    `json:"showlegend,omitempty"`
	LegendGroup      *string                  `json:"legendgroup,omitempty"`
	LegendGroupTitle *common.LegendGroupTitle `json:"legendgrouptitle,omitempty"`
	Opacity          *float64                 `json:"opacity,omitempty"`
	X                []X                      `json:"x,omitempty"`
	X0               *X                       `json:"x0,omitempty"`
	DX               *X                       `json:"dx,omitempty"`
	Y                []Y                      `json:"y,omitempty"`
	Y0               *Y                       `json:"y0,omitempty"`
	DY               *Y                       `json:"dy,omitempty"`
	Z                []Z                      `json:"z,omitempty"`
	Text             []string                 `json:"text,omitempty"`
	HoverText        []string                 `json:"hovertext,omitempty"`
	HoverInfo        *common.HoverInfo        `json:"hoverinfo,omitempty"`
	HoverTemplate    *common.Dim[string]      `json:"hovertemplate,omitempty"`
	XAxis            *string                  `json:"xaxis,omitempty"`
	YAxis            *string                  `json:"yaxis,omitempty"`
	Line             *common.Line             `json:"line,omitempty"`
	ColorBar         *common.ColorBar         `json:"colorbar,omitempty"`
	AutoColorScale   *bool                    `json:"autocolorscale,omitempty"`
	ColorScale       *common.ColorScale       `json:"colorscale,omitempty"`
	ShowScale        *bool                    `json:"showscale,omitempty"`
	ReverseScale     *bool                    `json:"reversescale,omitempty"`
	ZAuto            *bool                    `json:"zauto,omitempty"`
	ZHoverFormat     *string                  `json:"zhoverformat,omitempty"`
	ZMax             *float64                 `json:"zmax,omitempty"`
	ZMid             *float64                 `json:"zmid,omitempty"`
	ZMin             *float64                 `json:"zmin,omitempty"`
	AutoContour      *bool                    `json:"autocontour,omitempty"`
	ConnectGaps      *bool                    `json:"connectgaps,omitempty"`
	Contours         *Contours                `json:"contours,omitempty"`
	FillColor        color.Color              `json:"fillcolor,omitempty"`
	HoverLabel       *common.Label            `json:"hoverlabel,omitempty"`
	HoverOnGaps      *bool                    `json:"hoverongaps,omitempty"`
	NContours        *int                     `json:"ncontours,omitempty"`
	Transpose        *bool                    `json:"transpose,omitempty"`
	XCalendar        *common.Calendar         `json:"xcalendar,omitempty"`
	YCalendar        *common.Calendar         `json:"ycalendar,omitempty"`
}

// NewContour creates a contour over an explicit x/y grid.
func NewContour[Z, X, Y any](x []X, y []Y, z []Z) *Contour[Z, X, Y] {
	return &Contour[Z, X, Y]{Type: common.PlotTypeContour, X: x, Y: y, Z: z}
}

// NewContourZ creates a contour whose grid is the z indices.
func NewContourZ[Z any](z []Z) *Contour[Z, float64, float64] {
	return &Contour[Z, float64, float64]{Type: common.PlotTypeContour, Z: z}
}

// NewContourFromMatrix creates a contour from the rows of a gonum matrix.
func NewContourFromMatrix(z mat.Matrix) *Contour[[]float64, float64, float64] {
	return NewContourZ(MatrixToRows(z))
}

func (c *Contour[Z, X, Y]) PlotType() common.PlotType { return c.Type }

func (c *Contour[Z, X, Y]) ToJSON() (string, error) { return toJSON(c) }

func (c *Contour[Z, X, Y]) Clone() Trace { return cloneTrace(c) }
