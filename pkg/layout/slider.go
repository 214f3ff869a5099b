package layout

import (
	"encoding/json"

	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
)

// SliderStep is one stop of a slider. Value is the tick value reported by
// plotly.js when the step is active.
type SliderStep struct {
	Args             json.RawMessage `json:"args,omitempty"`
	Args2            json.RawMessage `json:"args2,omitempty"`
	Execute          *bool           `json:"execute,omitempty"`
	Label            *string         `json:"label,omitempty"`
	Method           *Method         `json:"method,omitempty"`
	Name             *string         `json:"name,omitempty"`
	TemplateItemName *string         `json:"templateitemname,omitempty"`
	Visible          *bool           `json:"visible,omitempty"`
	Value            json.RawMessage `json:"value,omitempty"`
}

func NewSliderStep() *SliderStep {
	return &SliderStep{}
}

// SliderStepBuilder works like ButtonBuilder. An animation, when set, takes
// precedence over pushed deltas and makes the step call "animate".
type SliderStepBuilder struct {
	label            *string
	name             *string
	templateItemName *string
	visible          *bool
	value            json.RawMessage
	animation        *Animation
	args             controlArgs
}

func NewSliderStepBuilder() *SliderStepBuilder {
	return &SliderStepBuilder{}
}

func (s *SliderStepBuilder) WithLabel(label string) *SliderStepBuilder {
	s.label = &label
	return s
}

func (s *SliderStepBuilder) WithName(name string) *SliderStepBuilder {
	s.name = &name
	return s
}

func (s *SliderStepBuilder) WithTemplateItemName(name string) *SliderStepBuilder {
	s.templateItemName = &name
	return s
}

func (s *SliderStepBuilder) WithVisible(visible bool) *SliderStepBuilder {
	s.visible = &visible
	return s
}

// WithValue sets the step value, a number or a string.
func (s *SliderStepBuilder) WithValue(value any) *SliderStepBuilder {
	if s.args.err != nil {
		return s
	}
	b, err := json.Marshal(value)
	if err != nil {
		s.args.err = &ControlBuilderError{Kind: ValueSerialization, Err: err}
		return s
	}
	s.value = b
	return s
}

func (s *SliderStepBuilder) WithAnimation(animation *Animation) *SliderStepBuilder {
	s.animation = animation
	return s
}

func (s *SliderStepBuilder) PushRestyle(restyle any) *SliderStepBuilder {
	s.args.pushRestyle(restyle)
	return s
}

func (s *SliderStepBuilder) PushRelayout(relayout any) *SliderStepBuilder {
	s.args.pushRelayout(relayout)
	return s
}

// Build returns the step, or the first error met while building it.
func (s *SliderStepBuilder) Build() (*SliderStep, error) {
	if s.args.err != nil {
		return nil, s.args.err
	}

	var (
		method Method
		args   json.RawMessage
		err    error
	)
	if s.animation != nil {
		method = MethodAnimate
		if args, err = json.Marshal(s.animation); err != nil {
			return nil, &ControlBuilderError{Kind: AnimationSerialization, Err: err}
		}
	} else if method, args, err = s.args.methodAndArgs(); err != nil {
		return nil, &ControlBuilderError{Kind: RestyleSerialization, Err: err}
	}

	return &SliderStep{
		Args:             args,
		Label:            s.label,
		Method:           &method,
		Name:             s.name,
		TemplateItemName: s.templateItemName,
		Visible:          s.visible,
		Value:            s.value,
	}, nil
}

type SliderCurrentValueXAnchor string

const (
	SliderCurrentValueXAnchorLeft   SliderCurrentValueXAnchor = "left"
	SliderCurrentValueXAnchorCenter SliderCurrentValueXAnchor = "center"
	SliderCurrentValueXAnchorRight  SliderCurrentValueXAnchor = "right"
)

// SliderCurrentValue is the label showing the active step.
type SliderCurrentValue struct {
	Font    *common.Font               `json:"font,omitempty"`
	Offset  *int                       `json:"offset,omitempty"`
	Prefix  *string                    `json:"prefix,omitempty"`
	Suffix  *string                    `json:"suffix,omitempty"`
	Visible *bool                      `json:"visible,omitempty"`
	XAnchor *SliderCurrentValueXAnchor `json:"xanchor,omitempty"`
}

func NewSliderCurrentValue() *SliderCurrentValue {
	return &SliderCurrentValue{}
}

type SliderTransition struct {
	Duration *int             `json:"duration,omitempty"`
	Easing   *AnimationEasing `json:"easing,omitempty"`
}

func NewSliderTransition() *SliderTransition {
	return &SliderTransition{}
}

type Slider struct {
	Active                *int                `json:"active,omitempty"`
	ActiveBackgroundColor color.Color         `json:"activebgcolor,omitempty"`
	BackgroundColor       color.Color         `json:"bgcolor,omitempty"`
	BorderColor           color.Color         `json:"bordercolor,omitempty"`
	BorderWidth           *int                `json:"borderwidth,omitempty"`
	CurrentValue          *SliderCurrentValue `json:"currentvalue,omitempty"`
	Font                  *common.Font        `json:"font,omitempty"`
	Length                *float64            `json:"len,omitempty"`
	MinorTickLength       *int                `json:"minorticklen,omitempty"`
	Name                  *string             `json:"name,omitempty"`
	Pad                   *common.Pad         `json:"pad,omitempty"`
	Steps                 []SliderStep        `json:"steps,omitempty"`
	TemplateItemName      *string             `json:"templateitemname,omitempty"`
	TickColor             color.Color         `json:"tickcolor,omitempty"`
	TickLength            *int                `json:"ticklen,omitempty"`
	TickWidth             *int                `json:"tickwidth,omitempty"`
	Transition            *SliderTransition   `json:"transition,omitempty"`
	Visible               *bool               `json:"visible,omitempty"`
	X                     *float64            `json:"x,omitempty"`
	XAnchor               *common.Anchor      `json:"xanchor,omitempty"`
	Y                     *float64            `json:"y,omitempty"`
	YAnchor               *common.Anchor      `json:"yanchor,omitempty"`
}

func NewSlider() *Slider {
	return &Slider{}
}
