package common

import "encoding/json"

// MarshalBoolOrString emits "true"/"false" as JSON booleans and anything else
// as a JSON string. Several renderer attributes accept both.
func MarshalBoolOrString(value string) ([]byte, error) {
	switch value {
	case "true":
		return []byte("true"), nil
	case "false":
		return []byte("false"), nil
	default:
		return json.Marshal(value)
	}
}

// Visible controls whether a trace is drawn, hidden or only listed in the legend.
type Visible string

const (
	VisibleTrue       Visible = "true"
	VisibleFalse      Visible = "false"
	VisibleLegendOnly Visible = "legendonly"
)

// MarshalJSON implements json.Marshaler.
func (v Visible) MarshalJSON() ([]byte, error) {
	return MarshalBoolOrString(string(v))
}

type HoverInfo string

const (
	HoverInfoX         HoverInfo = "x"
	HoverInfoY         HoverInfo = "y"
	HoverInfoZ         HoverInfo = "z"
	HoverInfoXAndY     HoverInfo = "x+y"
	HoverInfoXAndZ     HoverInfo = "x+z"
	HoverInfoYAndZ     HoverInfo = "y+z"
	HoverInfoXAndYAndZ HoverInfo = "x+y+z"
	HoverInfoText      HoverInfo = "text"
	HoverInfoName      HoverInfo = "name"
	HoverInfoAll       HoverInfo = "all"
	HoverInfoNone      HoverInfo = "none"
	HoverInfoSkip      HoverInfo = "skip"
)

type TextPosition string

const (
	TextPositionInside  TextPosition = "inside"
	TextPositionOutside TextPosition = "outside"
	TextPositionAuto    TextPosition = "auto"
	TextPositionNone    TextPosition = "none"
)

type ConstrainText string

const (
	ConstrainTextInside  ConstrainText = "inside"
	ConstrainTextOutside ConstrainText = "outside"
	ConstrainTextBoth    ConstrainText = "both"
	ConstrainTextNone    ConstrainText = "none"
)

type Orientation string

const (
	OrientationAuto       Orientation = "a"
	OrientationVertical   Orientation = "v"
	OrientationHorizontal Orientation = "h"
	OrientationRadial     Orientation = "r"
	OrientationTangential Orientation = "t"
)

type Fill string

const (
	FillToZeroY Fill = "tozeroy"
	FillToZeroX Fill = "tozerox"
	FillToNextY Fill = "tonexty"
	FillToNextX Fill = "tonextx"
	FillToSelf  Fill = "toself"
	FillToNext  Fill = "tonext"
	FillNone    Fill = "none"
)

type Calendar string

const (
	CalendarGregorian  Calendar = "gregorian"
	CalendarChinese    Calendar = "chinese"
	CalendarCoptic     Calendar = "coptic"
	CalendarDiscWorld  Calendar = "discworld"
	CalendarEthiopian  Calendar = "ethiopian"
	CalendarHebrew     Calendar = "hebrew"
	CalendarIslamic    Calendar = "islamic"
	CalendarJulian     Calendar = "julian"
	CalendarMayan      Calendar = "mayan"
	CalendarNanakshahi Calendar = "nanakshahi"
	CalendarNepali     Calendar = "nepali"
	CalendarPersian    Calendar = "persian"
	CalendarJalali     Calendar = "jalali"
	CalendarTaiwan     Calendar = "taiwan"
	CalendarThai       Calendar = "thai"
	CalendarUmmalqura  Calendar = "ummalqura"
)

// PlotType is the "type" discriminator of a trace.
type PlotType string

const (
	PlotTypeScatter            PlotType = "scatter"
	PlotTypeScatterGL          PlotType = "scattergl"
	PlotTypeScatter3D          PlotType = "scatter3d"
	PlotTypeScatterMapbox      PlotType = "scattermapbox"
	PlotTypeScatterGeo         PlotType = "scattergeo"
	PlotTypeScatterPolar       PlotType = "scatterpolar"
	PlotTypeScatterPolarGL     PlotType = "scatterpolargl"
	PlotTypeBar                PlotType = "bar"
	PlotTypeBox                PlotType = "box"
	PlotTypeCandlestick        PlotType = "candlestick"
	PlotTypeContour            PlotType = "contour"
	PlotTypeHeatMap            PlotType = "heatmap"
	PlotTypeHistogram          PlotType = "histogram"
	PlotTypeHistogram2dContour PlotType = "histogram2dcontour"
	PlotTypeImage              PlotType = "image"
	PlotTypeMesh3D             PlotType = "mesh3d"
	PlotTypeOhlc               PlotType = "ohlc"
	PlotTypeSankey             PlotType = "sankey"
	PlotTypeSurface            PlotType = "surface"
	PlotTypeDensityMapbox      PlotType = "densitymapbox"
	PlotTypeTable              PlotType = "table"
	PlotTypePie                PlotType = "pie"
)

type Mode string

const (
	ModeLines            Mode = "lines"
	ModeMarkers          Mode = "markers"
	ModeText             Mode = "text"
	ModeLinesMarkers     Mode = "lines+markers"
	ModeLinesText        Mode = "lines+text"
	ModeMarkersText      Mode = "markers+text"
	ModeLinesMarkersText Mode = "lines+markers+text"
	ModeNone             Mode = "none"
)

type Ticks string

const (
	TicksOutside Ticks = "outside"
	TicksInside  Ticks = "inside"
	TicksNone    Ticks = ""
)

type Position string

const (
	PositionTopLeft      Position = "top left"
	PositionTopCenter    Position = "top center"
	PositionTopRight     Position = "top right"
	PositionMiddleLeft   Position = "middle left"
	PositionMiddleCenter Position = "middle center"
	PositionMiddleRight  Position = "middle right"
	PositionBottomLeft   Position = "bottom left"
	PositionBottomCenter Position = "bottom center"
	PositionBottomRight  Position = "bottom right"
	PositionInside       Position = "inside"
	PositionOutside      Position = "outside"
)

type TickMode string

const (
	TickModeAuto   TickMode = "auto"
	TickModeLinear TickMode = "linear"
	TickModeArray  TickMode = "array"
)

type DashType string

const (
	DashTypeSolid       DashType = "solid"
	DashTypeDot         DashType = "dot"
	DashTypeDash        DashType = "dash"
	DashTypeLongDash    DashType = "longdash"
	DashTypeDashDot     DashType = "dashdot"
	DashTypeLongDashDot DashType = "longdashdot"
)

type LineShape string

const (
	LineShapeLinear LineShape = "linear"
	LineShapeSpline LineShape = "spline"
	LineShapeHv     LineShape = "hv"
	LineShapeVh     LineShape = "vh"
	LineShapeHvh    LineShape = "hvh"
	LineShapeVhv    LineShape = "vhv"
)

type GradientType string

const (
	GradientTypeRadial     GradientType = "radial"
	GradientTypeHorizontal GradientType = "horizontal"
	GradientTypeVertical   GradientType = "vertical"
	GradientTypeNone       GradientType = "none"
)

type SizeMode string

const (
	SizeModeDiameter SizeMode = "diameter"
	SizeModeArea     SizeMode = "area"
)

type ThicknessMode string

const (
	ThicknessModeFraction ThicknessMode = "fraction"
	ThicknessModePixels   ThicknessMode = "pixels"
)

type Anchor string

const (
	AnchorAuto   Anchor = "auto"
	AnchorLeft   Anchor = "left"
	AnchorCenter Anchor = "center"
	AnchorRight  Anchor = "right"
	AnchorTop    Anchor = "top"
	AnchorMiddle Anchor = "middle"
	AnchorBottom Anchor = "bottom"
)

type TextAnchor string

const (
	TextAnchorStart  TextAnchor = "start"
	TextAnchorMiddle TextAnchor = "middle"
	TextAnchorEnd    TextAnchor = "end"
)

type ExponentFormat string

const (
	ExponentFormatNone     ExponentFormat = "none"
	ExponentFormatSmallE   ExponentFormat = "e"
	ExponentFormatCapitalE ExponentFormat = "E"
	ExponentFormatPower    ExponentFormat = "power"
	ExponentFormatSI       ExponentFormat = "SI"
	ExponentFormatB        ExponentFormat = "B"
)

type Show string

const (
	ShowAll   Show = "all"
	ShowFirst Show = "first"
	ShowLast  Show = "last"
	ShowNone  Show = "none"
)

type AxisSide string

const (
	AxisSideTop    AxisSide = "top"
	AxisSideBottom AxisSide = "bottom"
	AxisSideLeft   AxisSide = "left"
	AxisSideRight  AxisSide = "right"
)

type PatternShape string

const (
	PatternShapeNone              PatternShape = ""
	PatternShapeHorizontalLine    PatternShape = "-"
	PatternShapeVerticalLine      PatternShape = "|"
	PatternShapeRightDiagonalLine PatternShape = "/"
	PatternShapeLeftDiagonalLine  PatternShape = "\\"
	PatternShapeCross             PatternShape = "+"
	PatternShapeDiagonalCross     PatternShape = "x"
	PatternShapeDot               PatternShape = "."
)

type PatternFillMode string

const (
	PatternFillModeReplace PatternFillMode = "replace"
	PatternFillModeOverlay PatternFillMode = "overlay"
)

type Side string

const (
	SideRight   Side = "right"
	SideTop     Side = "top"
	SideBottom  Side = "bottom"
	SideLeft    Side = "left"
	SideTopLeft Side = "top left"
)

type Reference string

const (
	ReferenceContainer Reference = "container"
	ReferencePaper     Reference = "paper"
)

type ErrorType string

const (
	ErrorTypePercent    ErrorType = "percent"
	ErrorTypeConstant   ErrorType = "constant"
	ErrorTypeSquareRoot ErrorType = "sqrt"
	ErrorTypeData       ErrorType = "data"
)

type HoverOn string

const (
	HoverOnPoints         HoverOn = "points"
	HoverOnFills          HoverOn = "fills"
	HoverOnPointsAndFills HoverOn = "points+fills"
)

type ColorScalePalette string

const (
	ColorScalePaletteGreys     ColorScalePalette = "Greys"
	ColorScalePaletteYlGnBu    ColorScalePalette = "YlGnBu"
	ColorScalePaletteGreens    ColorScalePalette = "Greens"
	ColorScalePaletteYlOrRd    ColorScalePalette = "YlOrRd"
	ColorScalePaletteBluered   ColorScalePalette = "Bluered"
	ColorScalePaletteRdBu      ColorScalePalette = "RdBu"
	ColorScalePaletteReds      ColorScalePalette = "Reds"
	ColorScalePaletteBlues     ColorScalePalette = "Blues"
	ColorScalePalettePicnic    ColorScalePalette = "Picnic"
	ColorScalePaletteRainbow   ColorScalePalette = "Rainbow"
	ColorScalePalettePortland  ColorScalePalette = "Portland"
	ColorScalePaletteJet       ColorScalePalette = "Jet"
	ColorScalePaletteHot       ColorScalePalette = "Hot"
	ColorScalePaletteBlackbody ColorScalePalette = "Blackbody"
	ColorScalePaletteEarth     ColorScalePalette = "Earth"
	ColorScalePaletteElectric  ColorScalePalette = "Electric"
	ColorScalePaletteViridis   ColorScalePalette = "Viridis"
	ColorScalePaletteCividis   ColorScalePalette = "Cividis"
)
