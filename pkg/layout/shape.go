package layout

import (
	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
)

type ShapeType string

const (
	ShapeTypeCircle ShapeType = "circle"
	ShapeTypeRect   ShapeType = "rect"
	ShapeTypePath   ShapeType = "path"
	ShapeTypeLine   ShapeType = "line"
)

type ShapeLayer string

const (
	ShapeLayerBelow ShapeLayer = "below"
	ShapeLayerAbove ShapeLayer = "above"
)

type ShapeSizeMode string

const (
	ShapeSizeModeScaled ShapeSizeMode = "scaled"
	ShapeSizeModePixel  ShapeSizeMode = "pixel"
)

type FillRule string

const (
	FillRuleEvenOdd FillRule = "evenodd"
	FillRuleNonZero FillRule = "nonzero"
)

type DrawDirection string

const (
	DrawDirectionOrtho      DrawDirection = "ortho"
	DrawDirectionHorizontal DrawDirection = "horizontal"
	DrawDirectionVertical   DrawDirection = "vertical"
	DrawDirectionDiagonal   DrawDirection = "diagonal"
)

type ShapeLine struct {
	Color color.Color      `json:"color,omitempty"`
	Width *float64         `json:"width,omitempty"`
	Dash  *common.DashType `json:"dash,omitempty"`
}

func NewShapeLine() *ShapeLine {
	return &ShapeLine{}
}

// Shape is a line, rectangle, circle or SVG path drawn on the plot. X0, X1,
// Y0 and Y1 take numbers, dates or category names.
type Shape struct {
	Visible          *bool          `json:"visible,omitempty"`
	Type             *ShapeType     `json:"type,omitempty"`
	Layer            *ShapeLayer    `json:"layer,omitempty"`
	XRef             *string        `json:"xref,omitempty"`
	XSizeMode        *ShapeSizeMode `json:"xsizemode,omitempty"`
	XAnchor          any            `json:"xanchor,omitempty"`
	X0               any            `json:"x0,omitempty"`
	X1               any            `json:"x1,omitempty"`
	YRef             *string        `json:"yref,omitempty"`
	YSizeMode        *ShapeSizeMode `json:"ysizemode,omitempty"`
	YAnchor          any            `json:"yanchor,omitempty"`
	Y0               any            `json:"y0,omitempty"`
	Y1               any            `json:"y1,omitempty"`
	Path             *string        `json:"path,omitempty"`
	Opacity          *float64       `json:"opacity,omitempty"`
	Line             *ShapeLine     `json:"line,omitempty"`
	FillColor        color.Color    `json:"fillcolor,omitempty"`
	FillRule         *FillRule      `json:"fillrule,omitempty"`
	Editable         *bool          `json:"editable,omitempty"`
	Name             *string        `json:"name,omitempty"`
	TemplateItemName *string        `json:"templateitemname,omitempty"`
}

func NewShape() *Shape {
	return &Shape{}
}

// NewShapeStyle is the style applied to shapes drawn interactively.
type NewShapeStyle struct {
	Line          *ShapeLine     `json:"line,omitempty"`
	FillColor     color.Color    `json:"fillcolor,omitempty"`
	FillRule      *FillRule      `json:"fillrule,omitempty"`
	Opacity       *float64       `json:"opacity,omitempty"`
	Layer         *ShapeLayer    `json:"layer,omitempty"`
	DrawDirection *DrawDirection `json:"drawdirection,omitempty"`
}

func NewNewShapeStyle() *NewShapeStyle {
	return &NewShapeStyle{}
}

// ActiveShape styles the shape currently being edited.
type ActiveShape struct {
	FillColor color.Color `json:"fillcolor,omitempty"`
	Opacity   *float64    `json:"opacity,omitempty"`
}

func NewActiveShape() *ActiveShape {
	return &ActiveShape{}
}
