// Package plot assembles traces, a layout and a configuration into the
// document plotly.js renders, and turns that document into HTML pages,
// notebook payloads, static images and live previews.
package plot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/raykavin/goplotly/pkg/layout"
	"github.com/raykavin/goplotly/pkg/traces"
)

// Plot is an ordered list of traces plus one layout and one configuration.
// The zero value is not usable; use NewPlot.
type Plot struct {
	traces        []traces.Trace
	layout        *layout.Layout
	configuration *Configuration
	frames        []*layout.Frame
	remotePlotly  bool
	plotlyJS      []byte

	// Parts of a document decoded by FromJSON. They are emitted verbatim
	// until replaced through SetLayout, SetConfiguration or AddFrame.
	rawLayout json.RawMessage
	rawConfig json.RawMessage
	rawFrames []json.RawMessage
}

// Option configures a Plot.
type Option func(*Plot)

// WithPlotlyJS sets the plotly.js bundle inlined by pages rendered after
// UseLocalPlotly.
func WithPlotlyJS(bundle []byte) Option {
	return func(p *Plot) {
		p.plotlyJS = bundle
	}
}

func NewPlot(options ...Option) *Plot {
	p := &Plot{remotePlotly: true}
	for _, option := range options {
		option(p)
	}
	return p
}

// UseLocalPlotly makes full pages embed plotly.js instead of loading it from
// the CDN. The bundle comes from WithPlotlyJS or the PLOTLY_JS_PATH file.
func (p *Plot) UseLocalPlotly() *Plot {
	p.remotePlotly = false
	return p
}

func (p *Plot) AddTrace(trace traces.Trace) *Plot {
	p.traces = append(p.traces, trace)
	return p
}

func (p *Plot) AddTraces(ts ...traces.Trace) *Plot {
	p.traces = append(p.traces, ts...)
	return p
}

// SetLayout replaces the layout.
func (p *Plot) SetLayout(l *layout.Layout) *Plot {
	p.layout = l
	p.rawLayout = nil
	return p
}

// SetConfiguration replaces the configuration.
func (p *Plot) SetConfiguration(c *Configuration) *Plot {
	p.configuration = c
	p.rawConfig = nil
	return p
}

func (p *Plot) AddFrame(frame *layout.Frame) *Plot {
	p.frames = append(p.frames, frame)
	return p
}

func (p *Plot) AddFrames(frames ...*layout.Frame) *Plot {
	p.frames = append(p.frames, frames...)
	return p
}

// Data returns the traces in insertion order.
func (p *Plot) Data() []traces.Trace {
	return p.traces
}

// Layout returns the layout, nil when none was set.
func (p *Plot) Layout() *layout.Layout {
	return p.layout
}

// Configuration returns the configuration, nil when none was set.
func (p *Plot) Configuration() *Configuration {
	return p.configuration
}

func (p *Plot) Frames() []*layout.Frame {
	return p.frames
}

type document struct {
	Data   []json.RawMessage `json:"data"`
	Layout json.RawMessage   `json:"layout"`
	Config json.RawMessage   `json:"config"`
	Frames []json.RawMessage `json:"frames,omitempty"`
}

var emptyObject = json.RawMessage("{}")

// MarshalJSON implements json.Marshaler. The document has the shape
// {"data": [...], "layout": {...}, "config": {...}} with an optional
// "frames" list.
func (p *Plot) MarshalJSON() ([]byte, error) {
	doc := document{
		Data:   make([]json.RawMessage, 0, len(p.traces)),
		Layout: emptyObject,
		Config: emptyObject,
	}

	for i, trace := range p.traces {
		s, err := trace.ToJSON()
		if err != nil {
			return nil, fmt.Errorf("trace %d (%s): %w", i, trace.PlotType(), err)
		}
		doc.Data = append(doc.Data, json.RawMessage(s))
	}

	switch {
	case p.layout != nil:
		b, err := json.Marshal(p.layout)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize layout: %w", err)
		}
		doc.Layout = b
	case p.rawLayout != nil:
		doc.Layout = p.rawLayout
	}

	switch {
	case p.configuration != nil:
		b, err := json.Marshal(p.configuration)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize configuration: %w", err)
		}
		doc.Config = b
	case p.rawConfig != nil:
		doc.Config = p.rawConfig
	}

	doc.Frames = append(doc.Frames, p.rawFrames...)
	for i, frame := range p.frames {
		b, err := json.Marshal(frame)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize frame %d: %w", i, err)
		}
		doc.Frames = append(doc.Frames, b)
	}

	return json.Marshal(doc)
}

// ToJSON returns the plot document. Errors wrap ErrSerialization.
func (p *Plot) ToJSON() (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return string(b), nil
}

// String returns the document, or an empty one when it cannot be encoded.
func (p *Plot) String() string {
	s, err := p.ToJSON()
	if err != nil {
		return `{"data":[],"layout":{},"config":{}}`
	}
	return s
}

// Equal reports whether both plots serialize to the same document.
func (p *Plot) Equal(other *Plot) bool {
	if p == nil || other == nil {
		return p == other
	}
	a, errA := json.Marshal(p)
	b, errB := json.Marshal(other)
	return errA == nil && errB == nil && bytes.Equal(a, b)
}

// Clone returns a deep copy of the plot.
func (p *Plot) Clone() *Plot {
	c := &Plot{
		traces:       make([]traces.Trace, 0, len(p.traces)),
		remotePlotly: p.remotePlotly,
		plotlyJS:     p.plotlyJS,
		rawLayout:    cloneRaw(p.rawLayout),
		rawConfig:    cloneRaw(p.rawConfig),
	}
	for _, trace := range p.traces {
		c.traces = append(c.traces, trace.Clone())
	}
	if p.layout != nil {
		c.layout = p.layout.Clone()
	}
	if p.configuration != nil {
		c.configuration = p.configuration.Clone()
	}
	for _, raw := range p.rawFrames {
		c.rawFrames = append(c.rawFrames, cloneRaw(raw))
	}
	for _, frame := range p.frames {
		c.frames = append(c.frames, cloneFrame(frame))
	}
	return c
}

func cloneFrame(f *layout.Frame) *layout.Frame {
	c := *f
	c.Traces = append([]int(nil), f.Traces...)
	c.Data = make([]traces.Trace, 0, len(f.Data))
	for _, trace := range f.Data {
		c.Data = append(c.Data, trace.Clone())
	}
	if f.Data == nil {
		c.Data = nil
	}
	if f.Layout != nil {
		c.Layout = f.Layout.Clone()
	}
	return &c
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	return append(json.RawMessage(nil), raw...)
}

// FromJSON decodes a plot document. Traces become traces.RawTrace values;
// the layout, configuration and frames are kept verbatim.
func FromJSON(data []byte, options ...Option) (*Plot, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode plot document: %w", err)
	}

	p := NewPlot(options...)
	for i, raw := range doc.Data {
		trace, err := traces.NewRawTrace(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode trace %d: %w", i, err)
		}
		p.AddTrace(trace)
	}
	if !isNull(doc.Layout) {
		p.rawLayout = doc.Layout
	}
	if !isNull(doc.Config) {
		p.rawConfig = doc.Config
	}
	p.rawFrames = doc.Frames
	return p, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
