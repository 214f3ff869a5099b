package layout

import (
	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
)

type Legend struct {
	BackgroundColor color.Color         `json:"bgcolor,omitempty"`
	BorderColor     color.Color         `json:"bordercolor,omitempty"`
	BorderWidth     *int                `json:"borderwidth,omitempty"`
	Font            *common.Font        `json:"font,omitempty"`
	Orientation     *common.Orientation `json:"orientation,omitempty"`
	TraceOrder      *TraceOrder         `json:"traceorder,omitempty"`
	TraceGroupGap   *int                `json:"tracegroupgap,omitempty"`
	ItemSizing      *ItemSizing         `json:"itemsizing,omitempty"`
	ItemClick       *ItemClick          `json:"itemclick,omitempty"`
	ItemDoubleClick *ItemClick          `json:"itemdoubleclick,omitempty"`
	X               *float64            `json:"x,omitempty"`
	XAnchor         *common.Anchor      `json:"xanchor,omitempty"`
	Y               *float64            `json:"y,omitempty"`
	YAnchor         *common.Anchor      `json:"yanchor,omitempty"`
	VAlign          *VAlign             `json:"valign,omitempty"`
	Title           *common.Title       `json:"title,omitempty"`
	GroupClick      *GroupClick         `json:"groupclick,omitempty"`
	ItemWidth       *int                `json:"itemwidth,omitempty"`
}

func NewLegend() *Legend {
	return &Legend{}
}

type Margin struct {
	Left       *int  `json:"l,omitempty"`
	Right      *int  `json:"r,omitempty"`
	Top        *int  `json:"t,omitempty"`
	Bottom     *int  `json:"b,omitempty"`
	Pad        *int  `json:"pad,omitempty"`
	AutoExpand *bool `json:"autoexpand,omitempty"`
}

func NewMargin() *Margin {
	return &Margin{}
}

type UniformText struct {
	Mode    *UniformTextMode `json:"mode,omitempty"`
	MinSize *int             `json:"minsize,omitempty"`
}

func NewUniformText() *UniformText {
	return &UniformText{}
}

type ModeBar struct {
	Orientation     *common.Orientation `json:"orientation,omitempty"`
	BackgroundColor color.Color         `json:"bgcolor,omitempty"`
	Color           color.Color         `json:"color,omitempty"`
	ActiveColor     color.Color         `json:"activecolor,omitempty"`
}

func NewModeBar() *ModeBar {
	return &ModeBar{}
}

// LayoutColorScale holds the default scales used by traces that do not set
// their own.
type LayoutColorScale struct {
	Sequential      *common.ColorScale `json:"sequential,omitempty"`
	SequentialMinus *common.ColorScale `json:"sequentialminus,omitempty"`
	Diverging       *common.ColorScale `json:"diverging,omitempty"`
}

func NewLayoutColorScale() *LayoutColorScale {
	return &LayoutColorScale{}
}

type GridDomain struct {
	X []float64 `json:"x,omitempty"`
	Y []float64 `json:"y,omitempty"`
}

func NewGridDomain() *GridDomain {
	return &GridDomain{}
}

// LayoutGrid asks the renderer to arrange subplots on a regular grid.
type LayoutGrid struct {
	Rows     *int         `json:"rows,omitempty"`
	RowOrder *RowOrder    `json:"roworder,omitempty"`
	Columns  *int         `json:"columns,omitempty"`
	SubPlots []string     `json:"subplots,omitempty"`
	XAxes    []string     `json:"xaxes,omitempty"`
	YAxes    []string     `json:"yaxes,omitempty"`
	Pattern  *GridPattern `json:"pattern,omitempty"`
	XGap     *float64     `json:"xgap,omitempty"`
	YGap     *float64     `json:"ygap,omitempty"`
	Domain   *GridDomain  `json:"domain,omitempty"`
	XSide    *GridXSide   `json:"xside,omitempty"`
	YSide    *GridYSide   `json:"yside,omitempty"`
}

func NewLayoutGrid() *LayoutGrid {
	return &LayoutGrid{}
}
