package common

import "github.com/raykavin/goplotly/pkg/color"

//go:generate go run ../../cmd/plotlygen --dir . --kind common

// LegendGroupTitle is the title of a legend group.
type LegendGroupTitle struct {
	Text *string `json:"text,omitempty"`
	Font *Font   `json:"font,omitempty"`
}

// NewLegendGroupTitle returns a group title holding text.
func NewLegendGroupTitle(text string) *LegendGroupTitle {
	return &LegendGroupTitle{Text: &text}
}

// Domain positions a trace (pie, table, sankey ...) inside the plot area.
type Domain struct {
	Column *int        `json:"column,omitempty"`
	Row    *int        `json:"row,omitempty"`
	X      *[2]float64 `json:"x,omitempty"`
	Y      *[2]float64 `json:"y,omitempty"`
}

func NewDomain() *Domain {
	return &Domain{}
}

type Line struct {
	Width          *float64    `json:"width,omitempty"`
	Shape          *LineShape  `json:"shape,omitempty"`
	Smoothing      *float64    `json:"smoothing,omitempty"`
	Dash           *DashType   `json:"dash,omitempty"`
	Simplify       *bool       `json:"simplify,omitempty"`
	Color          color.Color `json:"color,omitempty"`
	CAuto          *bool       `json:"cauto,omitempty"`
	CMin           *float64    `json:"cmin,omitempty"`
	CMax           *float64    `json:"cmax,omitempty"`
	CMid           *float64    `json:"cmid,omitempty"`
	ColorScale     *ColorScale `json:"colorscale,omitempty"`
	AutoColorScale *bool       `json:"autocolorscale,omitempty"`
	ReverseScale   *bool       `json:"reversescale,omitempty"`
	OutlierColor   color.Color `json:"outliercolor,omitempty"`
	OutlierWidth   *int        `json:"outlierwidth,omitempty"`
}

func NewLine() *Line {
	return &Line{}
}

type Gradient struct {
	Type  GradientType      `json:"type"`
	Color *Dim[color.Color] `json:"color"`
}

// NewGradient returns a gradient with one color for every marker.
func NewGradient(gradientType GradientType, c color.Color) *Gradient {
	return &Gradient{Type: gradientType, Color: Scalar(c)}
}

// NewGradientArray returns a gradient with one color per marker.
func NewGradientArray(gradientType GradientType, colors []color.Color) *Gradient {
	return &Gradient{Type: gradientType, Color: Vector(colors)}
}

type TickFormatStop struct {
	Enabled          bool    `json:"enabled" plotly:"-"`
	DTickRange       []any   `json:"dtickrange,omitempty"`
	Value            *string `json:"value,omitempty"`
	Name             *string `json:"name,omitempty"`
	TemplateItemName *string `json:"templateitemname,omitempty"`
}

// NewTickFormatStop returns an enabled stop.
func NewTickFormatStop() *TickFormatStop {
	return &TickFormatStop{Enabled: true}
}

// WithEnabled toggles the stop.
func (t *TickFormatStop) WithEnabled(enabled bool) *TickFormatStop {
	t.Enabled = enabled
	return t
}

type ColorBar struct {
	BackgroundColor   color.Color       `json:"bgcolor,omitempty"`
	BorderColor       color.Color       `json:"bordercolor,omitempty"`
	BorderWidth       *int              `json:"borderwidth,omitempty"`
	DTick             *float64          `json:"dtick,omitempty"`
	ExponentFormat    *ExponentFormat   `json:"exponentformat,omitempty"`
	Len               *int              `json:"len,omitempty"`
	LenMode           *ThicknessMode    `json:"lenmode,omitempty"`
	NTicks            *int              `json:"nticks,omitempty"`
	Orientation       *Orientation      `json:"orientation,omitempty"`
	OutlineColor      color.Color       `json:"outlinecolor,omitempty"`
	OutlineWidth      *int              `json:"outlinewidth,omitempty"`
	SeparateThousands *bool             `json:"separatethousands,omitempty"`
	ShowExponent      *Show             `json:"showexponent,omitempty"`
	ShowTickLabels    *bool             `json:"showticklabels,omitempty"`
	ShowTickPrefix    *Show             `json:"showtickprefix,omitempty"`
	ShowTickSuffix    *Show             `json:"showticksuffix,omitempty"`
	Thickness         *int              `json:"thickness,omitempty"`
	ThicknessMode     *ThicknessMode    `json:"thicknessmode,omitempty"`
	TickAngle         *float64          `json:"tickangle,omitempty"`
	TickColor         color.Color       `json:"tickcolor,omitempty"`
	TickFont          *Font             `json:"tickfont,omitempty"`
	TickFormat        *string           `json:"tickformat,omitempty"`
	TickFormatStops   []*TickFormatStop `json:"tickformatstops,omitempty"`
	TickLen           *int              `json:"ticklen,omitempty"`
	TickMode          *TickMode         `json:"tickmode,omitempty"`
	TickPrefix        *string           `json:"tickprefix,omitempty"`
	TickSuffix        *string           `json:"ticksuffix,omitempty"`
	TickText          []string          `json:"ticktext,omitempty"`
	TickVals          []float64         `json:"tickvals,omitempty"`
	TickWidth         *int              `json:"tickwidth,omitempty"`
	Tick0             *float64          `json:"tick0,omitempty"`
	Ticks             *Ticks            `json:"ticks,omitempty"`
	Title             *Title            `json:"title,omitempty"`
	X                 *float64          `json:"x,omitempty"`
	XAnchor           *Anchor           `json:"xanchor,omitempty"`
	XPad              *float64          `json:"xpad,omitempty"`
	Y                 *float64          `json:"y,omitempty"`
	YAnchor           *Anchor           `json:"yanchor,omitempty"`
	YPad              *float64          `json:"ypad,omitempty"`
}

func NewColorBar() *ColorBar {
	return &ColorBar{}
}

type Pattern struct {
	Shape             *Dim[PatternShape] `json:"shape,omitempty"`
	FillMode          *PatternFillMode   `json:"fillmode,omitempty"`
	BackgroundColor   *Dim[color.Color]  `json:"bgcolor,omitempty"`
	ForegroundColor   *Dim[color.Color]  `json:"fgcolor,omitempty"`
	ForegroundOpacity *float64           `json:"fgopacity,omitempty"`
	Size              *Dim[float64]      `json:"size,omitempty"`
	Solidity          *Dim[float64]      `json:"solidity,omitempty"`
}

func NewPattern() *Pattern {
	return &Pattern{}
}

type Marker struct {
	Symbol         *MarkerSymbol     `json:"symbol,omitempty"`
	Opacity        *float64          `json:"opacity,omitempty"`
	Size           *Dim[int]         `json:"size,omitempty"`
	MaxDisplayed   *int              `json:"maxdisplayed,omitempty"`
	SizeRef        *int              `json:"sizeref,omitempty"`
	SizeMin        *int              `json:"sizemin,omitempty"`
	SizeMode       *SizeMode         `json:"sizemode,omitempty"`
	Line           *Line             `json:"line,omitempty"`
	Gradient       *Gradient         `json:"gradient,omitempty"`
	Color          *Dim[color.Color] `json:"color,omitempty"`
	Colors         []color.Color     `json:"colors,omitempty"`
	CAuto          *bool             `json:"cauto,omitempty"`
	CMin           *float64          `json:"cmin,omitempty"`
	CMax           *float64          `json:"cmax,omitempty"`
	CMid           *float64          `json:"cmid,omitempty"`
	ColorScale     *ColorScale       `json:"colorscale,omitempty"`
	AutoColorScale *bool             `json:"autocolorscale,omitempty"`
	ReverseScale   *bool             `json:"reversescale,omitempty"`
	ShowScale      *bool             `json:"showscale,omitempty"`
	ColorBar       *ColorBar         `json:"colorbar,omitempty"`
	OutlierColor   color.Color       `json:"outliercolor,omitempty"`
	Pattern        *Pattern          `json:"pattern,omitempty"`
}

func NewMarker() *Marker {
	return &Marker{}
}

type Font struct {
	Family *string     `json:"family,omitempty"`
	Size   *int        `json:"size,omitempty"`
	Color  color.Color `json:"color,omitempty"`
}

func NewFont() *Font {
	return &Font{}
}

type Pad struct {
	T int `json:"t"`
	B int `json:"b"`
	L int `json:"l"`
}

func NewPad(t, b, l int) *Pad {
	return &Pad{T: t, B: b, L: l}
}

type Title struct {
	Text    *string    `json:"text,omitempty"`
	Font    *Font      `json:"font,omitempty"`
	Side    *Side      `json:"side,omitempty"`
	XRef    *Reference `json:"xref,omitempty"`
	YRef    *Reference `json:"yref,omitempty"`
	X       *float64   `json:"x,omitempty"`
	Y       *float64   `json:"y,omitempty"`
	XAnchor *Anchor    `json:"xanchor,omitempty"`
	YAnchor *Anchor    `json:"yanchor,omitempty"`
	Pad     *Pad       `json:"pad,omitempty"`
}

// NewTitle returns a title holding text.
func NewTitle(text string) *Title {
	return &Title{Text: &text}
}

// Label styles hover labels.
type Label struct {
	BackgroundColor color.Color `json:"bgcolor,omitempty"`
	BorderColor     color.Color `json:"bordercolor,omitempty"`
	Font            *Font       `json:"font,omitempty"`
	Align           *string     `json:"align,omitempty"`
	NameLength      *Dim[int]   `json:"namelength,omitempty"`
}

func NewLabel() *Label {
	return &Label{}
}

// ErrorData describes error bars along one dimension.
type ErrorData struct {
	Type          ErrorType   `json:"type" plotly:"-"`
	Array         []float64   `json:"array,omitempty"`
	Visible       *bool       `json:"visible,omitempty"`
	Symmetric     *bool       `json:"symmetric,omitempty"`
	ArrayMinus    []float64   `json:"arrayminus,omitempty"`
	Value         *float64    `json:"value,omitempty"`
	ValueMinus    *float64    `json:"valueminus,omitempty"`
	TraceRef      *int        `json:"traceref,omitempty"`
	TraceRefMinus *int        `json:"tracerefminus,omitempty"`
	CopyYStyle    *bool       `json:"copy_ystyle,omitempty"`
	Color         color.Color `json:"color,omitempty"`
	Thickness     *float64    `json:"thickness,omitempty"`
	Width         *int        `json:"width,omitempty"`
}

func NewErrorData(errorType ErrorType) *ErrorData {
	return &ErrorData{Type: errorType}
}

// Direction styles the increasing or decreasing boxes of financial traces.
type Direction struct {
	Line Line `json:"line"`
}

// NewIncreasing returns the style of rising candles.
func NewIncreasing(line *Line) *Direction {
	return newDirection(line)
}

// NewDecreasing returns the style of falling candles.
func NewDecreasing(line *Line) *Direction {
	return newDirection(line)
}

func newDirection(line *Line) *Direction {
	d := &Direction{}
	if line != nil {
		d.Line = *line
	}
	return d
}
