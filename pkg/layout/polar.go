package layout

import (
	"encoding/json"

	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
)

type RadialAxisType string

const (
	RadialAxisTypeDefault  RadialAxisType = "-"
	RadialAxisTypeLinear   RadialAxisType = "linear"
	RadialAxisTypeLog      RadialAxisType = "log"
	RadialAxisTypeDate     RadialAxisType = "date"
	RadialAxisTypeCategory RadialAxisType = "category"
)

type AngularAxisType string

const (
	AngularAxisTypeDefault  AngularAxisType = "-"
	AngularAxisTypeLinear   AngularAxisType = "linear"
	AngularAxisTypeCategory AngularAxisType = "category"
)

type AutoTypeNumbers string

const (
	AutoTypeNumbersConvert AutoTypeNumbers = "convert types"
	AutoTypeNumbersStrict  AutoTypeNumbers = "strict"
)

// AutoRange sets how a polar radial axis computes its range. AutoRangeTrue
// and AutoRangeFalse serialize as JSON booleans.
type AutoRange string

const (
	AutoRangeTrue        AutoRange = "true"
	AutoRangeFalse       AutoRange = "false"
	AutoRangeMax         AutoRange = "max"
	AutoRangeMaxReversed AutoRange = "max reversed"
	AutoRangeMin         AutoRange = "min"
	AutoRangeMinReversed AutoRange = "min reversed"
	AutoRangeReversed    AutoRange = "reversed"
)

// MarshalJSON implements json.Marshaler.
func (a AutoRange) MarshalJSON() ([]byte, error) {
	return common.MarshalBoolOrString(string(a))
}

type AxisLayer string

const (
	AxisLayerAbove AxisLayer = "above traces"
	AxisLayerBelow AxisLayer = "below traces"
)

type GridShape string

const (
	GridShapeCircular GridShape = "circular"
	GridShapeLinear   GridShape = "linear"
)

type MinorLogLabels string

const (
	MinorLogLabelsSmallDigits MinorLogLabels = "small digits"
	MinorLogLabelsComplete    MinorLogLabels = "complete"
	MinorLogLabelsNone        MinorLogLabels = "none"
)

type PolarDirection string

const (
	PolarDirectionClockwise        PolarDirection = "clockwise"
	PolarDirectionCounterclockwise PolarDirection = "counterclockwise"
)

type ThetaUnit string

const (
	ThetaUnitDegrees ThetaUnit = "degrees"
	ThetaUnitRadians ThetaUnit = "radians"
)

type AutoRangeOptions struct {
	MinAllowed any   `json:"minallowed,omitempty"`
	MaxAllowed any   `json:"maxallowed,omitempty"`
	ClipMin    any   `json:"clipmin,omitempty"`
	ClipMax    any   `json:"clipmax,omitempty"`
	Include    []any `json:"include,omitempty"`
}

func NewAutoRangeOptions() *AutoRangeOptions {
	return &AutoRangeOptions{}
}

// PolarAxisTicks groups the tick attributes shared by radial and angular
// axes. They are flattened into the owning axis object.
type PolarAxisTicks struct {
	TickMode          *common.TickMode        `json:"tickmode,omitempty"`
	NTicks            *int                    `json:"nticks,omitempty"`
	Tick0             any                     `json:"tick0,omitempty"`
	DTick             any                     `json:"dtick,omitempty"`
	TickValues        []float64               `json:"tickvals,omitempty"`
	TickText          []string                `json:"ticktext,omitempty"`
	Ticks             *common.Ticks           `json:"ticks,omitempty"`
	TickLength        *int                    `json:"ticklen,omitempty"`
	TickWidth         *int                    `json:"tickwidth,omitempty"`
	TickColor         color.Color             `json:"tickcolor,omitempty"`
	TickLabelStep     *uint8                  `json:"ticklabelstep,omitempty"`
	ShowTickLabels    *bool                   `json:"showticklabels,omitempty"`
	LabelAlias        *string                 `json:"labelalias,omitempty"`
	MinorLogLabels    *MinorLogLabels         `json:"minorloglabels,omitempty"`
	ShowTickPrefix    *ArrayShow              `json:"showtickprefix,omitempty"`
	TickPrefix        *string                 `json:"tickprefix,omitempty"`
	ShowTickSuffix    *ArrayShow              `json:"showticksuffix,omitempty"`
	TickSuffix        *string                 `json:"ticksuffix,omitempty"`
	ShowExponent      *ArrayShow              `json:"showexponent,omitempty"`
	ExponentFormat    *common.ExponentFormat  `json:"exponentformat,omitempty"`
	MinExponent       *uint8                  `json:"minexponent,omitempty"`
	SeparateThousands *bool                   `json:"separatethousands,omitempty"`
	TickFont          *common.Font            `json:"tickfont,omitempty"`
	TickAngle         *float64                `json:"tickangle,omitempty"`
	TickFormat        *string                 `json:"tickformat,omitempty"`
	TickFormatStops   []common.TickFormatStop `json:"tickformatstops,omitempty"`
	Layer             *AxisLayer              `json:"layer,omitempty"`
}

func NewPolarAxisTicks() *PolarAxisTicks {
	return &PolarAxisTicks{}
}

// PolarAxisAttributes are the line and grid attributes shared by radial and
// angular axes. They are flattened into the owning axis object.
type PolarAxisAttributes struct {
	Color     color.Color      `json:"color,omitempty"`
	ShowLine  *bool            `json:"showline,omitempty"`
	LineColor color.Color      `json:"linecolor,omitempty"`
	LineWidth *int             `json:"linewidth,omitempty"`
	ShowGrid  *bool            `json:"showgrid,omitempty"`
	GridColor color.Color      `json:"gridcolor,omitempty"`
	GridWidth *int             `json:"gridwidth,omitempty"`
	GridDash  *common.DashType `json:"griddash,omitempty"`
	Ticks     *PolarAxisTicks  `json:"-" plotly:"-"`
}

func NewPolarAxisAttributes() *PolarAxisAttributes {
	return &PolarAxisAttributes{}
}

// WithTicks sets the tick attributes.
func (p *PolarAxisAttributes) WithTicks(ticks *PolarAxisTicks) *PolarAxisAttributes {
	p.Ticks = ticks
	return p
}

type RadialAxis struct {
	Visible          *bool                `json:"visible,omitempty"`
	Type             *RadialAxisType      `json:"type,omitempty"`
	AutoTypeNumbers  *AutoTypeNumbers     `json:"autotypenumbers,omitempty"`
	AutoRangeOptions *AutoRangeOptions    `json:"autorangeoptions,omitempty"`
	AutoRange        *AutoRange           `json:"autorange,omitempty"`
	RangeMode        *RangeMode           `json:"rangemode,omitempty"`
	MinAllowed       any                  `json:"minallowed,omitempty"`
	MaxAllowed       any                  `json:"maxallowed,omitempty"`
	Range            []any                `json:"range,omitempty"`
	CategoryOrder    *CategoryOrder       `json:"categoryorder,omitempty"`
	CategoryArray    []any                `json:"categoryarray,omitempty"`
	Angle            *float64             `json:"angle,omitempty"`
	AutoTickAngles   []float64            `json:"autotickangles,omitempty"`
	Side             *PolarDirection      `json:"side,omitempty"`
	Title            *common.Title        `json:"title,omitempty"`
	HoverFormat      *string              `json:"hoverformat,omitempty"`
	UIRevision       any                  `json:"uirevision,omitempty"`
	Attributes       *PolarAxisAttributes `json:"-" plotly:"-"`
}

func NewRadialAxis() *RadialAxis {
	return &RadialAxis{}
}

// WithAttributes sets the line, grid and tick attributes.
func (r *RadialAxis) WithAttributes(attrs *PolarAxisAttributes) *RadialAxis {
	r.Attributes = attrs
	return r
}

// MarshalJSON implements json.Marshaler, flattening Attributes.
func (r RadialAxis) MarshalJSON() ([]byte, error) {
	type plain RadialAxis
	return flatten(plain(r), r.Attributes)
}

type AngularAxis struct {
	Visible         *bool                `json:"visible,omitempty"`
	Type            *AngularAxisType     `json:"type,omitempty"`
	AutoTypeNumbers *AutoTypeNumbers     `json:"autotypenumbers,omitempty"`
	CategoryOrder   *CategoryOrder       `json:"categoryorder,omitempty"`
	CategoryArray   []any                `json:"categoryarray,omitempty"`
	ThetaUnit       *ThetaUnit           `json:"thetaunit,omitempty"`
	Period          *int                 `json:"period,omitempty"`
	Direction       *PolarDirection      `json:"direction,omitempty"`
	Rotation        *float64             `json:"rotation,omitempty"`
	HoverFormat     *string              `json:"hoverformat,omitempty"`
	UIRevision      any                  `json:"uirevision,omitempty"`
	Attributes      *PolarAxisAttributes `json:"-" plotly:"-"`
}

func NewAngularAxis() *AngularAxis {
	return &AngularAxis{}
}

// WithAttributes sets the line, grid and tick attributes.
func (a *AngularAxis) WithAttributes(attrs *PolarAxisAttributes) *AngularAxis {
	a.Attributes = attrs
	return a
}

// MarshalJSON implements json.Marshaler, flattening Attributes.
func (a AngularAxis) MarshalJSON() ([]byte, error) {
	type plain AngularAxis
	return flatten(plain(a), a.Attributes)
}

// LayoutPolar configures the polar subplot used by scatterpolar traces.
type LayoutPolar struct {
	Sector          []float64    `json:"sector,omitempty"`
	Hole            *float64     `json:"hole,omitempty"`
	BackgroundColor color.Color  `json:"bgcolor,omitempty"`
	RadialAxis      *RadialAxis  `json:"radialaxis,omitempty"`
	AngularAxis     *AngularAxis `json:"angularaxis,omitempty"`
	GridShape       *GridShape   `json:"gridshape,omitempty"`
	UIRevision      any          `json:"uirevision,omitempty"`
}

func NewLayoutPolar() *LayoutPolar {
	return &LayoutPolar{}
}

// flatten marshals base and merges the keys of attrs (and its ticks) into
// the same object. Keys already set on base win.
func flatten(base any, attrs *PolarAxisAttributes) ([]byte, error) {
	b, err := json.Marshal(base)
	if err != nil || attrs == nil {
		return b, err
	}

	parts := []any{attrs}
	if attrs.Ticks != nil {
		parts = append(parts, attrs.Ticks)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, err
	}
	for _, part := range parts {
		extra, err := json.Marshal(part)
		if err != nil {
			return nil, err
		}
		var more map[string]json.RawMessage
		if err := json.Unmarshal(extra, &more); err != nil {
			return nil, err
		}
		for k, v := range more {
			if _, ok := fields[k]; !ok {
				fields[k] = v
			}
		}
	}
	return json.Marshal(fields)
}
