// Package traces contains one builder per chart kind. Every builder is a flat
// record of optional attributes that serializes to the JSON object plotly.js
// expects, tagged with its "type".
package traces

import (
	"encoding/json"
	"fmt"

	"github.com/raykavin/goplotly/pkg/common"
)

//go:generate go run ../../cmd/plotlygen --dir . --kind trace

// Trace is a single data series of a plot.
type Trace interface {
	PlotType() common.PlotType
	ToJSON() (string, error)
	Clone() Trace
}

// AxisAssigner is implemented by traces drawn on a pair of cartesian axes.
// The references use the short form ("x", "x2", "y3" ...).
type AxisAssigner interface {
	AssignAxes(x, y string)
}

func toJSON(trace any) (string, error) {
	b, err := json.Marshal(trace)
	if err != nil {
		return "", fmt.Errorf("failed to serialize trace: %w", err)
	}
	return string(b), nil
}

// cloneTrace deep copies src into a new value of the same type.
func cloneTrace[T any, P interface {
	*T
	Trace
}](src P) Trace {
	return P(common.DeepCopy((*T)(src)))
}

// Restyle is a partial update of one trace attribute. It serializes to a bare
// single-key object such as {"visible": [true, false]}.
type Restyle struct {
	Key   string
	Value any
}

// NewRestyle sets key to one value per targeted trace.
func NewRestyle[T any](key string, values []T) Restyle {
	return Restyle{Key: key, Value: common.Vector(values)}
}

// NewRestyleAll sets key to the same value on every targeted trace.
func NewRestyleAll[T any](key string, value T) Restyle {
	return Restyle{Key: key, Value: common.Scalar(value)}
}

// MarshalJSON implements json.Marshaler.
func (r Restyle) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{r.Key: r.Value})
}

// RawTrace is an already serialized trace, kept verbatim. It is what decoding
// a stored plot document yields.
type RawTrace struct {
	Type common.PlotType
	Data json.RawMessage
}

// NewRawTrace wraps a JSON object. A missing "type" means scatter, as in
// plotly.js.
func NewRawTrace(data []byte) (*RawTrace, error) {
	var head struct {
		Type common.PlotType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("invalid trace object: %w", err)
	}
	if head.Type == "" {
		head.Type = common.PlotTypeScatter
	}

	return &RawTrace{Type: head.Type, Data: append(json.RawMessage(nil), data...)}, nil
}

func (r *RawTrace) PlotType() common.PlotType { return r.Type }

func (r *RawTrace) ToJSON() (string, error) { return string(r.Data), nil }

func (r *RawTrace) Clone() Trace {
	return &RawTrace{Type: r.Type, Data: append(json.RawMessage(nil), r.Data...)}
}

// MarshalJSON implements json.Marshaler.
func (r *RawTrace) MarshalJSON() ([]byte, error) {
	return r.Data, nil
}

// Attribute decodes a top-level attribute of the trace into out. It reports
// false when the attribute is absent.
func (r *RawTrace) Attribute(key string, out any) (bool, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(r.Data, &fields); err != nil {
		return false, err
	}
	raw, ok := fields[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

