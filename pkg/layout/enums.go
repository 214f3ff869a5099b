package layout

import "github.com/raykavin/goplotly/pkg/common"

type AxisType string

const (
	AxisTypeDefault       AxisType = "-"
	AxisTypeLinear        AxisType = "linear"
	AxisTypeLog           AxisType = "log"
	AxisTypeDate          AxisType = "date"
	AxisTypeCategory      AxisType = "category"
	AxisTypeMultiCategory AxisType = "multicategory"
)

type AxisConstrain string

const (
	AxisConstrainRange  AxisConstrain = "range"
	AxisConstrainDomain AxisConstrain = "domain"
)

type ConstrainDirection string

const (
	ConstrainDirectionLeft   ConstrainDirection = "left"
	ConstrainDirectionCenter ConstrainDirection = "center"
	ConstrainDirectionRight  ConstrainDirection = "right"
	ConstrainDirectionTop    ConstrainDirection = "top"
	ConstrainDirectionMiddle ConstrainDirection = "middle"
	ConstrainDirectionBottom ConstrainDirection = "bottom"
)

type RangeMode string

const (
	RangeModeNormal      RangeMode = "normal"
	RangeModeToZero      RangeMode = "tozero"
	RangeModeNonNegative RangeMode = "nonnegative"
)

type TicksDirection string

const (
	TicksDirectionOutside TicksDirection = "outside"
	TicksDirectionInside  TicksDirection = "inside"
)

type TicksPosition string

const (
	TicksPositionLabels     TicksPosition = "labels"
	TicksPositionBoundaries TicksPosition = "boundaries"
)

type ArrayShow string

const (
	ArrayShowAll   ArrayShow = "all"
	ArrayShowFirst ArrayShow = "first"
	ArrayShowLast  ArrayShow = "last"
	ArrayShowNone  ArrayShow = "none"
)

type CategoryOrder string

const (
	CategoryOrderTrace                   CategoryOrder = "trace"
	CategoryOrderCategoryAscending       CategoryOrder = "category ascending"
	CategoryOrderCategoryDescending      CategoryOrder = "category descending"
	CategoryOrderArray                   CategoryOrder = "array"
	CategoryOrderTotalAscending          CategoryOrder = "total ascending"
	CategoryOrderTotalDescending         CategoryOrder = "total descending"
	CategoryOrderMinAscending            CategoryOrder = "min ascending"
	CategoryOrderMinDescending           CategoryOrder = "min descending"
	CategoryOrderMaxAscending            CategoryOrder = "max ascending"
	CategoryOrderMaxDescending           CategoryOrder = "max descending"
	CategoryOrderSumAscending            CategoryOrder = "sum ascending"
	CategoryOrderSumDescending           CategoryOrder = "sum descending"
	CategoryOrderMeanAscending           CategoryOrder = "mean ascending"
	CategoryOrderMeanDescending          CategoryOrder = "mean descending"
	CategoryOrderGeometricMeanAscending  CategoryOrder = "geometric mean ascending"
	CategoryOrderGeometricMeanDescending CategoryOrder = "geometric mean descending"
	CategoryOrderMedianAscending         CategoryOrder = "median ascending"
	CategoryOrderMedianDescending        CategoryOrder = "median descending"
)

type SpikeMode string

const (
	SpikeModeToAxis             SpikeMode = "toaxis"
	SpikeModeAcross             SpikeMode = "across"
	SpikeModeMarker             SpikeMode = "marker"
	SpikeModeToAxisAcross       SpikeMode = "toaxis+across"
	SpikeModeToAxisMarker       SpikeMode = "toaxis+marker"
	SpikeModeAcrossMarker       SpikeMode = "across+marker"
	SpikeModeToAxisAcrossMarker SpikeMode = "toaxis+across+marker"
)

type SpikeSnap string

const (
	SpikeSnapData        SpikeSnap = "data"
	SpikeSnapCursor      SpikeSnap = "cursor"
	SpikeSnapHoveredData SpikeSnap = "hovered data"
)

type SliderRangeMode string

const (
	SliderRangeModeAuto  SliderRangeMode = "auto"
	SliderRangeModeFixed SliderRangeMode = "fixed"
	SliderRangeModeMatch SliderRangeMode = "match"
)

type SelectorStep string

const (
	SelectorStepMonth  SelectorStep = "month"
	SelectorStepYear   SelectorStep = "year"
	SelectorStepDay    SelectorStep = "day"
	SelectorStepHour   SelectorStep = "hour"
	SelectorStepMinute SelectorStep = "minute"
	SelectorStepSecond SelectorStep = "second"
	SelectorStepAll    SelectorStep = "all"
)

type StepMode string

const (
	StepModeBackward StepMode = "backward"
	StepModeToDate   StepMode = "todate"
)

type TraceOrder string

const (
	TraceOrderReversed        TraceOrder = "reversed"
	TraceOrderGrouped         TraceOrder = "grouped"
	TraceOrderReversedGrouped TraceOrder = "reversed+grouped"
	TraceOrderNormal          TraceOrder = "normal"
)

type ItemSizing string

const (
	ItemSizingTrace    ItemSizing = "trace"
	ItemSizingConstant ItemSizing = "constant"
)

// ItemClick decides what clicking a legend item does. ItemClickFalse
// serializes as JSON false.
type ItemClick string

const (
	ItemClickToggle       ItemClick = "toggle"
	ItemClickToggleOthers ItemClick = "toggleothers"
	ItemClickFalse        ItemClick = "false"
)

// MarshalJSON implements json.Marshaler.
func (i ItemClick) MarshalJSON() ([]byte, error) {
	return common.MarshalBoolOrString(string(i))
}

type GroupClick string

const (
	GroupClickToggleItem  GroupClick = "toggleitem"
	GroupClickToggleGroup GroupClick = "togglegroup"
)

type VAlign string

const (
	VAlignTop    VAlign = "top"
	VAlignMiddle VAlign = "middle"
	VAlignBottom VAlign = "bottom"
)

type HAlign string

const (
	HAlignLeft   HAlign = "left"
	HAlignCenter HAlign = "center"
	HAlignRight  HAlign = "right"
)

type BoxMode string

const (
	BoxModeGroup   BoxMode = "group"
	BoxModeOverlay BoxMode = "overlay"
)

type BarMode string

const (
	BarModeStack    BarMode = "stack"
	BarModeGroup    BarMode = "group"
	BarModeOverlay  BarMode = "overlay"
	BarModeRelative BarMode = "relative"
)

type BarNorm string

const (
	BarNormEmpty    BarNorm = ""
	BarNormFraction BarNorm = "fraction"
	BarNormPercent  BarNorm = "percent"
)

type ViolinMode string

const (
	ViolinModeGroup   ViolinMode = "group"
	ViolinModeOverlay ViolinMode = "overlay"
)

type WaterfallMode string

const (
	WaterfallModeGroup   WaterfallMode = "group"
	WaterfallModeOverlay WaterfallMode = "overlay"
)

type ClickMode string

const (
	ClickModeEvent          ClickMode = "event"
	ClickModeSelect         ClickMode = "select"
	ClickModeEventAndSelect ClickMode = "event+select"
	ClickModeNone           ClickMode = "none"
)

// HoverMode selects which points hovering reports. HoverModeFalse disables
// hover labels and serializes as JSON false.
type HoverMode string

const (
	HoverModeX        HoverMode = "x"
	HoverModeY        HoverMode = "y"
	HoverModeClosest  HoverMode = "closest"
	HoverModeFalse    HoverMode = "false"
	HoverModeXUnified HoverMode = "x unified"
	HoverModeYUnified HoverMode = "y unified"
)

// MarshalJSON implements json.Marshaler.
func (h HoverMode) MarshalJSON() ([]byte, error) {
	return common.MarshalBoolOrString(string(h))
}

type DragMode string

const (
	DragModeZoom           DragMode = "zoom"
	DragModePan            DragMode = "pan"
	DragModeSelect         DragMode = "select"
	DragModeLasso          DragMode = "lasso"
	DragModeDrawClosedPath DragMode = "drawclosedpath"
	DragModeDrawOpenPath   DragMode = "drawopenpath"
	DragModeDrawLine       DragMode = "drawline"
	DragModeDrawRect       DragMode = "drawrect"
	DragModeDrawCircle     DragMode = "drawcircle"
	DragModeOrbit          DragMode = "orbit"
	DragModeTurntable      DragMode = "turntable"
	DragModeFalse          DragMode = "false"
)

// MarshalJSON implements json.Marshaler.
func (d DragMode) MarshalJSON() ([]byte, error) {
	return common.MarshalBoolOrString(string(d))
}

type DragMode3D string

const (
	DragMode3DZoom      DragMode3D = "zoom"
	DragMode3DPan       DragMode3D = "pan"
	DragMode3DTurntable DragMode3D = "turntable"
	DragMode3DOrbit     DragMode3D = "orbit"
	DragMode3DFalse     DragMode3D = "false"
)

// MarshalJSON implements json.Marshaler.
func (d DragMode3D) MarshalJSON() ([]byte, error) {
	return common.MarshalBoolOrString(string(d))
}

type SelectDirection string

const (
	SelectDirectionHorizontal SelectDirection = "h"
	SelectDirectionVertical   SelectDirection = "v"
	SelectDirectionDiagonal   SelectDirection = "d"
	SelectDirectionAny        SelectDirection = "any"
)

type UniformTextMode string

const (
	UniformTextModeFalse UniformTextMode = "false"
	UniformTextModeHide  UniformTextMode = "hide"
	UniformTextModeShow  UniformTextMode = "show"
)

// MarshalJSON implements json.Marshaler.
func (u UniformTextMode) MarshalJSON() ([]byte, error) {
	return common.MarshalBoolOrString(string(u))
}

type RowOrder string

const (
	RowOrderTopToBottom RowOrder = "top to bottom"
	RowOrderBottomToTop RowOrder = "bottom to top"
)

type GridPattern string

const (
	GridPatternIndependent GridPattern = "independent"
	GridPatternCoupled     GridPattern = "coupled"
)

type GridXSide string

const (
	GridXSideBottom     GridXSide = "bottom"
	GridXSideBottomPlot GridXSide = "bottom plot"
	GridXSideTopPlot    GridXSide = "top plot"
	GridXSideTop        GridXSide = "top"
)

type GridYSide string

const (
	GridYSideLeft      GridYSide = "left"
	GridYSideLeftPlot  GridYSide = "left plot"
	GridYSideRightPlot GridYSide = "right plot"
	GridYSideRight     GridYSide = "right"
)
