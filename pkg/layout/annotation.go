package layout

import (
	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
)

type ArrowSide string

const (
	ArrowSideEnd      ArrowSide = "end"
	ArrowSideStart    ArrowSide = "start"
	ArrowSideStartEnd ArrowSide = "end+start"
	ArrowSideNone     ArrowSide = "none"
)

// ClickToShow toggles annotations on click. ClickToShowFalse serializes as
// JSON false.
type ClickToShow string

const (
	ClickToShowFalse ClickToShow = "false"
	ClickToShowOnOff ClickToShow = "onoff"
	ClickToShowOnOut ClickToShow = "onout"
)

// MarshalJSON implements json.Marshaler.
func (c ClickToShow) MarshalJSON() ([]byte, error) {
	return common.MarshalBoolOrString(string(c))
}

// Annotation is a text label, optionally with an arrow, placed in data or
// paper coordinates.
type Annotation struct {
	Visible          *bool          `json:"visible,omitempty"`
	Text             *string        `json:"text,omitempty"`
	TextAngle        *float64       `json:"textangle,omitempty"`
	Font             *common.Font   `json:"font,omitempty"`
	Width            *float64       `json:"width,omitempty"`
	Height           *float64       `json:"height,omitempty"`
	Opacity          *float64       `json:"opacity,omitempty"`
	Align            *HAlign        `json:"align,omitempty"`
	VAlign           *VAlign        `json:"valign,omitempty"`
	BackgroundColor  color.Color    `json:"bgcolor,omitempty"`
	BorderColor      color.Color    `json:"bordercolor,omitempty"`
	BorderPad        *float64       `json:"borderpad,omitempty"`
	BorderWidth      *float64       `json:"borderwidth,omitempty"`
	ShowArrow        *bool          `json:"showarrow,omitempty"`
	ArrowColor       color.Color    `json:"arrowcolor,omitempty"`
	ArrowHead        *uint8         `json:"arrowhead,omitempty"`
	StartArrowHead   *uint8         `json:"startarrowhead,omitempty"`
	ArrowSide        *ArrowSide     `json:"arrowside,omitempty"`
	ArrowSize        *float64       `json:"arrowsize,omitempty"`
	StartArrowSize   *float64       `json:"startarrowsize,omitempty"`
	ArrowWidth       *float64       `json:"arrowwidth,omitempty"`
	StandOff         *float64       `json:"standoff,omitempty"`
	StartStandOff    *float64       `json:"startstandoff,omitempty"`
	AX               any            `json:"ax,omitempty"`
	AY               any            `json:"ay,omitempty"`
	AXRef            *string        `json:"axref,omitempty"`
	AYRef            *string        `json:"ayref,omitempty"`
	XRef             *string        `json:"xref,omitempty"`
	X                any            `json:"x,omitempty"`
	XAnchor          *common.Anchor `json:"xanchor,omitempty"`
	XShift           *float64       `json:"xshift,omitempty"`
	YRef             *string        `json:"yref,omitempty"`
	Y                any            `json:"y,omitempty"`
	YAnchor          *common.Anchor `json:"yanchor,omitempty"`
	YShift           *float64       `json:"yshift,omitempty"`
	ClickToShow      *ClickToShow   `json:"clicktoshow,omitempty"`
	XClick           any            `json:"xclick,omitempty"`
	YClick           any            `json:"yclick,omitempty"`
	HoverText        *string        `json:"hovertext,omitempty"`
	HoverLabel       *common.Label  `json:"hoverlabel,omitempty"`
	CaptureEvents    *bool          `json:"captureevents,omitempty"`
	Name             *string        `json:"name,omitempty"`
	TemplateItemName *string        `json:"templateitemname,omitempty"`
}

func NewAnnotation() *Annotation {
	return &Annotation{}
}
