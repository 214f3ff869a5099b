package layout

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Method is the plotly.js function a button or slider step calls.
type Method string

const (
	MethodRestyle  Method = "restyle"
	MethodRelayout Method = "relayout"
	MethodAnimate  Method = "animate"
	MethodUpdate   Method = "update"
	MethodSkip     Method = "skip"
)

// ControlErrorKind classifies a ControlBuilderError.
type ControlErrorKind int

const (
	RestyleSerialization ControlErrorKind = iota + 1
	RelayoutSerialization
	ValueSerialization
	InvalidRestyleObject
	InvalidRelayoutObject
	AnimationSerialization
)

var (
	ErrRestyleSerialization   = errors.New("restyle serialization error")
	ErrRelayoutSerialization  = errors.New("relayout serialization error")
	ErrValueSerialization     = errors.New("value serialization error")
	ErrInvalidRestyleObject   = errors.New("restyle is not a JSON object")
	ErrInvalidRelayoutObject  = errors.New("relayout is not a JSON object")
	ErrAnimationSerialization = errors.New("animation serialization error")
)

var kindErrors = map[ControlErrorKind]error{
	RestyleSerialization:   ErrRestyleSerialization,
	RelayoutSerialization:  ErrRelayoutSerialization,
	ValueSerialization:     ErrValueSerialization,
	InvalidRestyleObject:   ErrInvalidRestyleObject,
	InvalidRelayoutObject:  ErrInvalidRelayoutObject,
	AnimationSerialization: ErrAnimationSerialization,
}

// Err returns the sentinel error matching the kind.
func (k ControlErrorKind) Err() error {
	if err, ok := kindErrors[k]; ok {
		return err
	}
	return fmt.Errorf("unknown control error kind %d", int(k))
}

func (k ControlErrorKind) String() string {
	return k.Err().Error()
}

// ControlBuilderError is returned by ButtonBuilder.Build and
// SliderStepBuilder.Build. errors.Is matches it against the sentinel of its
// kind; Err is the underlying encoding failure, if any.
type ControlBuilderError struct {
	Kind   ControlErrorKind
	Detail string
	Err    error
}

func (e *ControlBuilderError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	default:
		return e.Kind.String()
	}
}

func (e *ControlBuilderError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.Err()}
	}
	return []error{e.Kind.Err(), e.Err}
}

// controlArgs accumulates restyle and relayout deltas for a control. The
// first failure is latched and later pushes are ignored.
type controlArgs struct {
	restyles  map[string]json.RawMessage
	relayouts map[string]json.RawMessage
	err       *ControlBuilderError
}

func (c *controlArgs) pushRestyle(restyle any) {
	if c.err != nil {
		return
	}
	if c.restyles == nil {
		c.restyles = make(map[string]json.RawMessage)
	}
	c.err = mergeObject(c.restyles, restyle, RestyleSerialization, InvalidRestyleObject)
}

func (c *controlArgs) pushRelayout(relayout any) {
	if c.err != nil {
		return
	}
	if c.relayouts == nil {
		c.relayouts = make(map[string]json.RawMessage)
	}
	c.err = mergeObject(c.relayouts, relayout, RelayoutSerialization, InvalidRelayoutObject)
}

// methodAndArgs maps which of the two delta sets are populated to the
// method plotly.js must call and its positional args.
func (c *controlArgs) methodAndArgs() (Method, json.RawMessage, error) {
	var (
		method Method
		args   any
	)
	switch {
	case len(c.restyles) == 0 && len(c.relayouts) == 0:
		return MethodSkip, json.RawMessage("null"), nil
	case len(c.relayouts) == 0:
		method, args = MethodRestyle, []any{c.restyles}
	case len(c.restyles) == 0:
		method, args = MethodRelayout, []any{c.relayouts}
	default:
		method, args = MethodUpdate, []any{c.restyles, c.relayouts}
	}

	b, err := json.Marshal(args)
	if err != nil {
		return "", nil, err
	}
	return method, b, nil
}

func mergeObject(dst map[string]json.RawMessage, delta any, encodeKind, objectKind ControlErrorKind) *ControlBuilderError {
	b, err := json.Marshal(delta)
	if err != nil {
		return &ControlBuilderError{Kind: encodeKind, Err: err}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil || fields == nil {
		return &ControlBuilderError{Kind: objectKind, Detail: string(b)}
	}
	for k, v := range fields {
		dst[k] = v
	}
	return nil
}
