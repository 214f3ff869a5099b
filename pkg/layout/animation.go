package layout

import (
	"encoding/json"

	"github.com/raykavin/goplotly/pkg/traces"
)

type AnimationMode string

const (
	AnimationModeImmediate AnimationMode = "immediate"
	AnimationModeNext      AnimationMode = "next"
	AnimationModeAfterAll  AnimationMode = "afterall"
)

type AnimationDirection string

const (
	AnimationDirectionForward AnimationDirection = "forward"
	AnimationDirectionReverse AnimationDirection = "reverse"
)

type TransitionOrdering string

const (
	TransitionOrderingLayoutFirst TransitionOrdering = "layout first"
	TransitionOrderingTracesFirst TransitionOrdering = "traces first"
)

type AnimationEasing string

const (
	AnimationEasingLinear       AnimationEasing = "linear"
	AnimationEasingQuad         AnimationEasing = "quad"
	AnimationEasingCubic        AnimationEasing = "cubic"
	AnimationEasingSin          AnimationEasing = "sin"
	AnimationEasingExp          AnimationEasing = "exp"
	AnimationEasingCircle       AnimationEasing = "circle"
	AnimationEasingElastic      AnimationEasing = "elastic"
	AnimationEasingBack         AnimationEasing = "back"
	AnimationEasingBounce       AnimationEasing = "bounce"
	AnimationEasingLinearIn     AnimationEasing = "linear-in"
	AnimationEasingQuadIn       AnimationEasing = "quad-in"
	AnimationEasingCubicIn      AnimationEasing = "cubic-in"
	AnimationEasingSinIn        AnimationEasing = "sin-in"
	AnimationEasingExpIn        AnimationEasing = "exp-in"
	AnimationEasingCircleIn     AnimationEasing = "circle-in"
	AnimationEasingElasticIn    AnimationEasing = "elastic-in"
	AnimationEasingBackIn       AnimationEasing = "back-in"
	AnimationEasingBounceIn     AnimationEasing = "bounce-in"
	AnimationEasingLinearOut    AnimationEasing = "linear-out"
	AnimationEasingQuadOut      AnimationEasing = "quad-out"
	AnimationEasingCubicOut     AnimationEasing = "cubic-out"
	AnimationEasingSinOut       AnimationEasing = "sin-out"
	AnimationEasingExpOut       AnimationEasing = "exp-out"
	AnimationEasingCircleOut    AnimationEasing = "circle-out"
	AnimationEasingElasticOut   AnimationEasing = "elastic-out"
	AnimationEasingBackOut      AnimationEasing = "back-out"
	AnimationEasingBounceOut    AnimationEasing = "bounce-out"
	AnimationEasingLinearInOut  AnimationEasing = "linear-in-out"
	AnimationEasingQuadInOut    AnimationEasing = "quad-in-out"
	AnimationEasingCubicInOut   AnimationEasing = "cubic-in-out"
	AnimationEasingSinInOut     AnimationEasing = "sin-in-out"
	AnimationEasingExpInOut     AnimationEasing = "exp-in-out"
	AnimationEasingCircleInOut  AnimationEasing = "circle-in-out"
	AnimationEasingElasticInOut AnimationEasing = "elastic-in-out"
	AnimationEasingBackInOut    AnimationEasing = "back-in-out"
	AnimationEasingBounceInOut  AnimationEasing = "bounce-in-out"
)

type FrameSettings struct {
	Duration *int  `json:"duration,omitempty"`
	Redraw   *bool `json:"redraw,omitempty"`
}

func NewFrameSettings() *FrameSettings {
	return &FrameSettings{}
}

type TransitionSettings struct {
	Duration *int                `json:"duration,omitempty"`
	Easing   *AnimationEasing    `json:"easing,omitempty"`
	Ordering *TransitionOrdering `json:"ordering,omitempty"`
}

func NewTransitionSettings() *TransitionSettings {
	return &TransitionSettings{}
}

type AnimationOptions struct {
	Frame       *FrameSettings      `json:"frame,omitempty"`
	Transition  *TransitionSettings `json:"transition,omitempty"`
	Mode        *AnimationMode      `json:"mode,omitempty"`
	Direction   *AnimationDirection `json:"direction,omitempty"`
	FromCurrent *bool               `json:"fromcurrent,omitempty"`
}

func NewAnimationOptions() *AnimationOptions {
	return &AnimationOptions{}
}

type frameSelection int

const (
	selectAll frameSelection = iota
	selectNamed
	selectPause
)

// Animation is the argument list of Plotly.animate. It serializes as
// [frames, options] where frames is null (play everything), a list of frame
// names, or [null] (pause).
type Animation struct {
	selection frameSelection
	frames    []string
	Options   AnimationOptions
}

// NewAnimation plays every frame.
func NewAnimation() *Animation {
	return &Animation{}
}

// AllFrames plays every frame.
func AllFrames() *Animation {
	return NewAnimation()
}

// AnimateFrames plays the named frames (or frame groups) in order.
func AnimateFrames(names ...string) *Animation {
	return &Animation{selection: selectNamed, frames: names}
}

// Pause stops a running animation immediately.
func Pause() *Animation {
	mode := AnimationModeImmediate
	zero, redraw := 0, false
	return &Animation{
		selection: selectPause,
		Options: AnimationOptions{
			Mode:       &mode,
			Frame:      &FrameSettings{Duration: &zero, Redraw: &redraw},
			Transition: &TransitionSettings{Duration: &zero},
		},
	}
}

func (a *Animation) WithOptions(options *AnimationOptions) *Animation {
	if options != nil {
		a.Options = *options
	}
	return a
}

// IsPause reports whether the animation is the pause sentinel.
func (a *Animation) IsPause() bool { return a.selection == selectPause }

// MarshalJSON implements json.Marshaler.
func (a Animation) MarshalJSON() ([]byte, error) {
	var frames any
	switch a.selection {
	case selectNamed:
		frames = a.frames
		if a.frames == nil {
			frames = []string{}
		}
	case selectPause:
		frames = []any{nil}
	}
	return json.Marshal([]any{frames, a.Options})
}

// Frame is one state of an animation. Data replaces the traces listed in
// Traces, Layout is merged into the plot layout.
type Frame struct {
	Group     *string        `json:"group,omitempty"`
	Name      *string        `json:"name,omitempty"`
	Traces    []int          `json:"traces,omitempty"`
	BaseFrame *string        `json:"baseframe,omitempty"`
	Data      []traces.Trace `json:"data,omitempty"`
	Layout    *Layout        `json:"layout,omitempty"`
}

func NewFrame(name string) *Frame {
	return &Frame{Name: &name}
}

// AddTrace appends to the frame data.
func (f *Frame) AddTrace(trace traces.Trace) *Frame {
	f.Data = append(f.Data, trace)
	return f
}
