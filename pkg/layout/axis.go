package layout

import (
	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
)

// Axis configures one cartesian axis. It is stored in the layout under
// "xaxis", "yaxis2", ... while traces refer to it as "x", "y2", ...
type Axis struct {
	Visible           *bool                   `json:"visible,omitempty"`
	CategoryArray     []any                   `json:"categoryarray,omitempty"`
	CategoryOrder     *CategoryOrder          `json:"categoryorder,omitempty"`
	Color             color.Color             `json:"color,omitempty"`
	Title             *common.Title           `json:"title,omitempty"`
	Type              *AxisType               `json:"type,omitempty"`
	AutoRange         *bool                   `json:"autorange,omitempty"`
	RangeBreaks       []RangeBreak            `json:"rangebreaks,omitempty"`
	RangeMode         *RangeMode              `json:"rangemode,omitempty"`
	Range             []any                   `json:"range,omitempty"`
	FixedRange        *bool                   `json:"fixedrange,omitempty"`
	Constrain         *AxisConstrain          `json:"constrain,omitempty"`
	ConstrainToward   *ConstrainDirection     `json:"constraintoward,omitempty"`
	TickMode          *common.TickMode        `json:"tickmode,omitempty"`
	NTicks            *int                    `json:"nticks,omitempty"`
	ScaleAnchor       *string                 `json:"scaleanchor,omitempty"`
	ScaleRatio        *float64                `json:"scaleratio,omitempty"`
	Tick0             *float64                `json:"tick0,omitempty"`
	DTick             *float64                `json:"dtick,omitempty"`
	Matches           *string                 `json:"matches,omitempty"`
	TickValues        []float64               `json:"tickvals,omitempty"`
	TickText          []string                `json:"ticktext,omitempty"`
	Ticks             *TicksDirection         `json:"ticks,omitempty"`
	TicksOn           *TicksPosition          `json:"tickson,omitempty"`
	Mirror            *bool                   `json:"mirror,omitempty"`
	TickLength        *int                    `json:"ticklen,omitempty"`
	TickWidth         *int                    `json:"tickwidth,omitempty"`
	TickColor         color.Color             `json:"tickcolor,omitempty"`
	ShowTickLabels    *bool                   `json:"showticklabels,omitempty"`
	AutoMargin        *bool                   `json:"automargin,omitempty"`
	ShowSpikes        *bool                   `json:"showspikes,omitempty"`
	SpikeColor        color.Color             `json:"spikecolor,omitempty"`
	SpikeThickness    *int                    `json:"spikethickness,omitempty"`
	SpikeDash         *common.DashType        `json:"spikedash,omitempty"`
	SpikeMode         *SpikeMode              `json:"spikemode,omitempty"`
	SpikeSnap         *SpikeSnap              `json:"spikesnap,omitempty"`
	TickFont          *common.Font            `json:"tickfont,omitempty"`
	TickAngle         *float64                `json:"tickangle,omitempty"`
	TickPrefix        *string                 `json:"tickprefix,omitempty"`
	ShowTickPrefix    *ArrayShow              `json:"showtickprefix,omitempty"`
	TickSuffix        *string                 `json:"ticksuffix,omitempty"`
	ShowTickSuffix    *ArrayShow              `json:"showticksuffix,omitempty"`
	ShowExponent      *ArrayShow              `json:"showexponent,omitempty"`
	ExponentFormat    *common.ExponentFormat  `json:"exponentformat,omitempty"`
	SeparateThousands *bool                   `json:"separatethousands,omitempty"`
	TickFormat        *string                 `json:"tickformat,omitempty"`
	TickFormatStops   []common.TickFormatStop `json:"tickformatstops,omitempty"`
	HoverFormat       *string                 `json:"hoverformat,omitempty"`
	ShowLine          *bool                   `json:"showline,omitempty"`
	LineColor         color.Color             `json:"linecolor,omitempty"`
	LineWidth         *int                    `json:"linewidth,omitempty"`
	ShowGrid          *bool                   `json:"showgrid,omitempty"`
	GridColor         color.Color             `json:"gridcolor,omitempty"`
	GridWidth         *int                    `json:"gridwidth,omitempty"`
	ZeroLine          *bool                   `json:"zeroline,omitempty"`
	ZeroLineColor     color.Color             `json:"zerolinecolor,omitempty"`
	ZeroLineWidth     *int                    `json:"zerolinewidth,omitempty"`
	ShowDividers      *bool                   `json:"showdividers,omitempty"`
	DividerColor      color.Color             `json:"dividercolor,omitempty"`
	DividerWidth      *int                    `json:"dividerwidth,omitempty"`
	Anchor            *string                 `json:"anchor,omitempty"`
	Side              *common.AxisSide        `json:"side,omitempty"`
	Overlaying        *string                 `json:"overlaying,omitempty"`
	Domain            []float64               `json:"domain,omitempty"`
	Position          *float64                `json:"position,omitempty"`
	RangeSlider       *RangeSlider            `json:"rangeslider,omitempty"`
	RangeSelector     *RangeSelector          `json:"rangeselector,omitempty"`
	Calendar          *common.Calendar        `json:"calendar,omitempty"`
}

func NewAxis() *Axis {
	return &Axis{}
}

// RangeBreak hides a span of a date axis, such as weekends.
type RangeBreak struct {
	Bounds  []any `json:"bounds,omitempty"`
	Pattern any   `json:"pattern,omitempty"`
	Values  []any `json:"values,omitempty"`
	DValue  *int  `json:"dvalue,omitempty"`
	Enabled *bool `json:"enabled,omitempty"`
}

func NewRangeBreak() *RangeBreak {
	return &RangeBreak{}
}

type RangeSliderYAxis struct {
	RangeMode *SliderRangeMode `json:"rangemode,omitempty"`
	Range     []any            `json:"range,omitempty"`
}

func NewRangeSliderYAxis() *RangeSliderYAxis {
	return &RangeSliderYAxis{}
}

type RangeSlider struct {
	BackgroundColor color.Color       `json:"bgcolor,omitempty"`
	BorderColor     color.Color       `json:"bordercolor,omitempty"`
	BorderWidth     *int              `json:"borderwidth,omitempty"`
	AutoRange       *bool             `json:"autorange,omitempty"`
	Range           []any             `json:"range,omitempty"`
	Thickness       *float64          `json:"thickness,omitempty"`
	Visible         *bool             `json:"visible,omitempty"`
	YAxis           *RangeSliderYAxis `json:"yaxis,omitempty"`
}

func NewRangeSlider() *RangeSlider {
	return &RangeSlider{}
}

type SelectorButton struct {
	Visible          *bool         `json:"visible,omitempty"`
	Step             *SelectorStep `json:"step,omitempty"`
	StepMode         *StepMode     `json:"stepmode,omitempty"`
	Count            *int          `json:"count,omitempty"`
	Label            *string       `json:"label,omitempty"`
	Name             *string       `json:"name,omitempty"`
	TemplateItemName *string       `json:"templateitemname,omitempty"`
}

func NewSelectorButton() *SelectorButton {
	return &SelectorButton{}
}

// RangeSelector is the row of "1m / 6m / YTD" buttons above a date axis.
type RangeSelector struct {
	Visible         *bool            `json:"visible,omitempty"`
	Buttons         []SelectorButton `json:"buttons,omitempty"`
	X               *float64         `json:"x,omitempty"`
	XAnchor         *common.Anchor   `json:"xanchor,omitempty"`
	Y               *float64         `json:"y,omitempty"`
	YAnchor         *common.Anchor   `json:"yanchor,omitempty"`
	Font            *common.Font     `json:"font,omitempty"`
	BackgroundColor color.Color      `json:"bgcolor,omitempty"`
	ActiveColor     color.Color      `json:"activecolor,omitempty"`
	BorderColor     color.Color      `json:"bordercolor,omitempty"`
	BorderWidth     *int             `json:"borderwidth,omitempty"`
}

func NewRangeSelector() *RangeSelector {
	return &RangeSelector{}
}

// ColorAxis is a color scale shared by several traces through their
// "coloraxis" reference.
type ColorAxis struct {
	CAuto          *bool              `json:"cauto,omitempty"`
	CMin           *float64           `json:"cmin,omitempty"`
	CMax           *float64           `json:"cmax,omitempty"`
	CMid           *float64           `json:"cmid,omitempty"`
	ColorScale     *common.ColorScale `json:"colorscale,omitempty"`
	AutoColorScale *bool              `json:"autocolorscale,omitempty"`
	ReverseScale   *bool              `json:"reversescale,omitempty"`
	ShowScale      *bool              `json:"showscale,omitempty"`
	ColorBar       *common.ColorBar   `json:"colorbar,omitempty"`
}

func NewColorAxis() *ColorAxis {
	return &ColorAxis{}
}
