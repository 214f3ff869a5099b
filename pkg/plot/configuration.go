package plot

import "github.com/raykavin/goplotly/pkg/common"

//go:generate go run ../../cmd/plotlygen --dir . --kind common --type Configuration,ToImageButtonOptions

type ImageButtonFormat string

const (
	ImageButtonFormatPNG  ImageButtonFormat = "png"
	ImageButtonFormatSVG  ImageButtonFormat = "svg"
	ImageButtonFormatJPEG ImageButtonFormat = "jpeg"
	ImageButtonFormatWebP ImageButtonFormat = "webp"
)

// ToImageButtonOptions controls the image downloaded by the mode bar camera
// button.
type ToImageButtonOptions struct {
	Format   *ImageButtonFormat `json:"format,omitempty"`
	Filename *string            `json:"filename,omitempty"`
	Height   *int               `json:"height,omitempty"`
	Width    *int               `json:"width,omitempty"`
	Scale    *float64           `json:"scale,omitempty"`
}

func NewToImageButtonOptions() *ToImageButtonOptions {
	return &ToImageButtonOptions{}
}

type ModeBarButtonName string

const (
	ModeBarButtonZoom2D                ModeBarButtonName = "zoom2d"
	ModeBarButtonPan2D                 ModeBarButtonName = "pan2d"
	ModeBarButtonSelect2D              ModeBarButtonName = "select2d"
	ModeBarButtonLasso2D               ModeBarButtonName = "lasso2d"
	ModeBarButtonZoomIn2D              ModeBarButtonName = "zoomIn2d"
	ModeBarButtonZoomOut2D             ModeBarButtonName = "zoomOut2d"
	ModeBarButtonAutoScale2D           ModeBarButtonName = "autoScale2d"
	ModeBarButtonResetScale2D          ModeBarButtonName = "resetScale2d"
	ModeBarButtonZoom3D                ModeBarButtonName = "zoom3d"
	ModeBarButtonPan3D                 ModeBarButtonName = "pan3d"
	ModeBarButtonOrbitRotation         ModeBarButtonName = "orbitRotation"
	ModeBarButtonTableRotation         ModeBarButtonName = "tableRotation"
	ModeBarButtonHandleDrag3D          ModeBarButtonName = "handleDrag3d"
	ModeBarButtonResetCameraDefault3D  ModeBarButtonName = "resetCameraDefault3d"
	ModeBarButtonResetCameraLastSave3D ModeBarButtonName = "resetCameraLastSave3d"
	ModeBarButtonHoverClosest3D        ModeBarButtonName = "hoverClosest3d"
	ModeBarButtonHoverClosestCartesian ModeBarButtonName = "hoverClosestCartesian"
	ModeBarButtonHoverCompareCartesian ModeBarButtonName = "hoverCompareCartesian"
	ModeBarButtonZoomInGeo             ModeBarButtonName = "zoomInGeo"
	ModeBarButtonZoomOutGeo            ModeBarButtonName = "zoomOutGeo"
	ModeBarButtonResetGeo              ModeBarButtonName = "resetGeo"
	ModeBarButtonHoverClosestGeo       ModeBarButtonName = "hoverClosestGeo"
	ModeBarButtonHoverClosestGl2D      ModeBarButtonName = "hoverClosestGl2d"
	ModeBarButtonHoverClosestPie       ModeBarButtonName = "hoverClosestPie"
	ModeBarButtonToggleHover           ModeBarButtonName = "toggleHover"
	ModeBarButtonResetViews            ModeBarButtonName = "resetViews"
	ModeBarButtonToImage               ModeBarButtonName = "toImage"
	ModeBarButtonSendDataToCloud       ModeBarButtonName = "sendDataToCloud"
	ModeBarButtonToggleSpikelines      ModeBarButtonName = "toggleSpikelines"
	ModeBarButtonResetViewMapbox       ModeBarButtonName = "resetViewMapbox"
)

// DoubleClick is what a double click on the plot does. DoubleClickFalse
// serializes as JSON false.
type DoubleClick string

const (
	DoubleClickFalse         DoubleClick = "false"
	DoubleClickReset         DoubleClick = "reset"
	DoubleClickAutoSize      DoubleClick = "autosize"
	DoubleClickResetAutoSize DoubleClick = "reset+autosize"
)

func (d DoubleClick) MarshalJSON() ([]byte, error) {
	return common.MarshalBoolOrString(string(d))
}

// DisplayModeBar controls the mode bar visibility. The boolean variants
// serialize as JSON booleans.
type DisplayModeBar string

const (
	DisplayModeBarHover DisplayModeBar = "hover"
	DisplayModeBarTrue  DisplayModeBar = "true"
	DisplayModeBarFalse DisplayModeBar = "false"
)

func (d DisplayModeBar) MarshalJSON() ([]byte, error) {
	return common.MarshalBoolOrString(string(d))
}

// PlotGLPixelRatio is the pixel ratio used by WebGL traces.
type PlotGLPixelRatio int

const (
	PlotGLPixelRatioOne PlotGLPixelRatio = iota + 1
	PlotGLPixelRatioTwo
	PlotGLPixelRatioThree
	PlotGLPixelRatioFour
)

// Configuration holds the renderer options passed as the third argument of
// Plotly.newPlot.
type Configuration struct {
	TypesetMath             *bool                 `json:"typesetMath,omitempty"`
	Autosizable             *bool                 `json:"autosizable,omitempty"`
	ScrollZoom              *bool                 `json:"scrollZoom,omitempty"`
	FillFrame               *bool                 `json:"fillFrame,omitempty"`
	FrameMargins            *float64              `json:"frameMargins,omitempty"`
	Editable                *bool                 `json:"editable,omitempty"`
	StaticPlot              *bool                 `json:"staticPlot,omitempty"`
	ToImageButtonOptions    *ToImageButtonOptions `json:"toImageButtonOptions,omitempty"`
	DisplayModeBar          *DisplayModeBar       `json:"displayModeBar,omitempty"`
	ModeBarButtonsToRemove  []ModeBarButtonName   `json:"modeBarButtonsToRemove,omitempty"`
	ShowLink                *bool                 `json:"showLink,omitempty"`
	PlotlyServerURL         *string               `json:"plotlyServerURL,omitempty"`
	TopojsonURL             *string               `json:"topojsonURL,omitempty"`
	LinkText                *string               `json:"linkText,omitempty"`
	MapboxAccessToken       *string               `json:"mapboxAccessToken,omitempty"`
	ShowEditInChartStudio   *bool                 `json:"showEditInChartStudio,omitempty"`
	Locale                  *string               `json:"locale,omitempty"`
	DisplayLogo             *bool                 `json:"displaylogo,omitempty"`
	Responsive              *bool                 `json:"responsive,omitempty"`
	DoubleClick             *DoubleClick          `json:"doubleClick,omitempty"`
	DoubleClickDelay        *int                  `json:"doubleClickDelay,omitempty"`
	ShowAxisDragHandles     *bool                 `json:"showAxisDragHandles,omitempty"`
	ShowAxisRangeEntryBoxes *bool                 `json:"showAxisRangeEntryBoxes,omitempty"`
	ShowTips                *bool                 `json:"showTips,omitempty"`
	SendData                *bool                 `json:"sendData,omitempty"`
	Watermark               *bool                 `json:"watermark,omitempty"`
	PlotGLPixelRatio        *PlotGLPixelRatio     `json:"plotGlPixelRatio,omitempty"`
	ShowSendToCloud         *bool                 `json:"showSendToCloud,omitempty"`
	QueueLength             *int                  `json:"queueLength,omitempty"`
}

func NewConfiguration() *Configuration {
	return &Configuration{}
}

// Clone returns a deep copy of the configuration.
func (c *Configuration) Clone() *Configuration {
	return common.DeepCopy(c)
}

