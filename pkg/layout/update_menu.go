package layout

import (
	"encoding/json"

	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
)

type UpdateMenuType string

const (
	UpdateMenuTypeDropdown UpdateMenuType = "dropdown"
	UpdateMenuTypeButtons  UpdateMenuType = "buttons"
)

type UpdateMenuDirection string

const (
	UpdateMenuDirectionLeft  UpdateMenuDirection = "left"
	UpdateMenuDirectionRight UpdateMenuDirection = "right"
	UpdateMenuDirectionUp    UpdateMenuDirection = "up"
	UpdateMenuDirectionDown  UpdateMenuDirection = "down"
)

// Button is one entry of an update menu. Args holds the positional
// arguments passed to Method; use ButtonBuilder to compute both.
type Button struct {
	Args             json.RawMessage `json:"args,omitempty"`
	Args2            json.RawMessage `json:"args2,omitempty"`
	Execute          *bool           `json:"execute,omitempty"`
	Label            *string         `json:"label,omitempty"`
	Method           *Method         `json:"method,omitempty"`
	Name             *string         `json:"name,omitempty"`
	TemplateItemName *string         `json:"templateitemname,omitempty"`
	Visible          *bool           `json:"visible,omitempty"`
}

func NewButton() *Button {
	return &Button{}
}

// ButtonBuilder collects restyle and relayout deltas and turns them into a
// Button whose method matches what was pushed.
type ButtonBuilder struct {
	label            *string
	name             *string
	templateItemName *string
	visible          *bool
	args             controlArgs
}

func NewButtonBuilder() *ButtonBuilder {
	return &ButtonBuilder{}
}

func (b *ButtonBuilder) WithLabel(label string) *ButtonBuilder {
	b.label = &label
	return b
}

func (b *ButtonBuilder) WithName(name string) *ButtonBuilder {
	b.name = &name
	return b
}

func (b *ButtonBuilder) WithTemplateItemName(name string) *ButtonBuilder {
	b.templateItemName = &name
	return b
}

func (b *ButtonBuilder) WithVisible(visible bool) *ButtonBuilder {
	b.visible = &visible
	return b
}

// PushRestyle merges the keys of a trace delta (usually a traces.Restyle).
// Later pushes of the same key replace earlier ones.
func (b *ButtonBuilder) PushRestyle(restyle any) *ButtonBuilder {
	b.args.pushRestyle(restyle)
	return b
}

// PushRelayout merges the keys of a layout delta (usually a Relayout).
func (b *ButtonBuilder) PushRelayout(relayout any) *ButtonBuilder {
	b.args.pushRelayout(relayout)
	return b
}

// Build returns the button, or the first error met while pushing deltas.
func (b *ButtonBuilder) Build() (*Button, error) {
	if b.args.err != nil {
		return nil, b.args.err
	}

	method, args, err := b.args.methodAndArgs()
	if err != nil {
		return nil, &ControlBuilderError{Kind: RestyleSerialization, Err: err}
	}

	return &Button{
		Args:             args,
		Label:            b.label,
		Method:           &method,
		Name:             b.name,
		TemplateItemName: b.templateItemName,
		Visible:          b.visible,
	}, nil
}

type UpdateMenu struct {
	Active           *int                 `json:"active,omitempty"`
	BackgroundColor  color.Color          `json:"bgcolor,omitempty"`
	BorderColor      color.Color          `json:"bordercolor,omitempty"`
	BorderWidth      *int                 `json:"borderwidth,omitempty"`
	Buttons          []Button             `json:"buttons,omitempty"`
	Direction        *UpdateMenuDirection `json:"direction,omitempty"`
	Font             *common.Font         `json:"font,omitempty"`
	Name             *string              `json:"name,omitempty"`
	Pad              *common.Pad          `json:"pad,omitempty"`
	ShowActive       *bool                `json:"showactive,omitempty"`
	TemplateItemName *string              `json:"templateitemname,omitempty"`
	Type             *UpdateMenuType      `json:"type,omitempty"`
	Visible          *bool                `json:"visible,omitempty"`
	X                *float64             `json:"x,omitempty"`
	XAnchor          *common.Anchor       `json:"xanchor,omitempty"`
	Y                *float64             `json:"y,omitempty"`
	YAnchor          *common.Anchor       `json:"yanchor,omitempty"`
}

func NewUpdateMenu() *UpdateMenu {
	return &UpdateMenu{}
}
