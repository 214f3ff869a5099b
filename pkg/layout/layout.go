// Package layout describes everything of a plot that is not a trace: axes,
// legend, shapes, annotations, sub-layouts for 3D, polar and map traces,
// themes and the interactive controls (update menus, sliders, animations).
package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
)

//go:generate go run ../../cmd/plotlygen --dir . --kind layout

// Layout is the document-wide configuration of a plot. The first eight axes
// of each kind have direct fields; any axis can also be set by name through
// AxisByName, SetXAxis, SetYAxis and SetZAxis. Named axes are serialized
// next to the direct fields and replace them on a key clash.
type Layout struct {
	Title                *common.Title     `json:"title,omitempty"`
	ShowLegend           *bool             `json:"showlegend,omitempty"`
	Legend               *Legend           `json:"legend,omitempty"`
	Margin               *Margin           `json:"margin,omitempty"`
	AutoSize             *bool             `json:"autosize,omitempty"`
	Width                *int              `json:"width,omitempty"`
	Height               *int              `json:"height,omitempty"`
	Font                 *common.Font      `json:"font,omitempty"`
	UniformText          *UniformText      `json:"uniformtext,omitempty"`
	Separators           *string           `json:"separators,omitempty"`
	PaperBackgroundColor color.Color       `json:"paper_bgcolor,omitempty"`
	PlotBackgroundColor  color.Color       `json:"plot_bgcolor,omitempty"`
	ColorScale           *LayoutColorScale `json:"colorscale,omitempty"`
	Colorway             []color.Color     `json:"colorway,omitempty"`
	ColorAxis            *ColorAxis        `json:"coloraxis,omitempty"`
	ModeBar              *ModeBar          `json:"modebar,omitempty"`
	HoverMode            *HoverMode        `json:"hovermode,omitempty"`
	ClickMode            *ClickMode        `json:"clickmode,omitempty"`
	DragMode             *DragMode         `json:"dragmode,omitempty"`
	SelectDirection      *SelectDirection  `json:"selectdirection,omitempty"`
	HoverDistance        *int              `json:"hoverdistance,omitempty"`
	SpikeDistance        *int              `json:"spikedistance,omitempty"`
	HoverLabel           *common.Label     `json:"hoverlabel,omitempty"`
	Template             *Template         `json:"template,omitempty"`
	Grid                 *LayoutGrid       `json:"grid,omitempty"`
	Calendar             *common.Calendar  `json:"calendar,omitempty"`
	XAxis                *Axis             `json:"xaxis,omitempty"`
	YAxis                *Axis             `json:"yaxis,omitempty"`
	ZAxis                *Axis             `json:"zaxis,omitempty"`
	XAxis2               *Axis             `json:"xaxis2,omitempty"`
	YAxis2               *Axis             `json:"yaxis2,omitempty"`
	ZAxis2               *Axis             `json:"zaxis2,omitempty"`
	XAxis3               *Axis             `json:"xaxis3,omitempty"`
	YAxis3               *Axis             `json:"yaxis3,omitempty"`
	ZAxis3               *Axis             `json:"zaxis3,omitempty"`
	XAxis4               *Axis             `json:"xaxis4,omitempty"`
	YAxis4               *Axis             `json:"yaxis4,omitempty"`
	ZAxis4               *Axis             `json:"zaxis4,omitempty"`
	XAxis5               *Axis             `json:"xaxis5,omitempty"`
	YAxis5               *Axis             `json:"yaxis5,omitempty"`
	ZAxis5               *Axis             `json:"zaxis5,omitempty"`
	XAxis6               *Axis             `json:"xaxis6,omitempty"`
	YAxis6               *Axis             `json:"yaxis6,omitempty"`
	ZAxis6               *Axis             `json:"zaxis6,omitempty"`
	XAxis7               *Axis             `json:"xaxis7,omitempty"`
	YAxis7               *Axis             `json:"yaxis7,omitempty"`
	ZAxis7               *Axis             `json:"zaxis7,omitempty"`
	XAxis8               *Axis             `json:"xaxis8,omitempty"`
	YAxis8               *Axis             `json:"yaxis8,omitempty"`
	ZAxis8               *Axis             `json:"zaxis8,omitempty"`
	Scene                *LayoutScene      `json:"scene,omitempty"`
	Polar                *LayoutPolar      `json:"polar,omitempty"`
	Geo                  *LayoutGeo        `json:"geo,omitempty"`
	Mapbox               *Mapbox           `json:"mapbox,omitempty"`
	Annotations          []Annotation      `json:"annotations,omitempty"`
	Shapes               []Shape           `json:"shapes,omitempty"`
	NewShape             *NewShapeStyle    `json:"newshape,omitempty"`
	ActiveShape          *ActiveShape      `json:"activeshape,omitempty"`
	BoxMode              *BoxMode          `json:"boxmode,omitempty"`
	BoxGap               *float64          `json:"boxgap,omitempty"`
	BoxGroupGap          *float64          `json:"boxgroupgap,omitempty"`
	BarMode              *BarMode          `json:"barmode,omitempty"`
	BarNorm              *BarNorm          `json:"barnorm,omitempty"`
	BarGap               *float64          `json:"bargap,omitempty"`
	BarGroupGap          *float64          `json:"bargroupgap,omitempty"`
	ViolinMode           *ViolinMode       `json:"violinmode,omitempty"`
	ViolinGap            *float64          `json:"violingap,omitempty"`
	ViolinGroupGap       *float64          `json:"violingroupgap,omitempty"`
	WaterfallMode        *WaterfallMode    `json:"waterfallmode,omitempty"`
	WaterfallGap         *float64          `json:"waterfallgap,omitempty"`
	WaterfallGroupGap    *float64          `json:"waterfallgroupgap,omitempty"`
	PieColorway          []color.Color     `json:"piecolorway,omitempty"`
	ExtendPieColors      *bool             `json:"extendpiecolors,omitempty"`
	SunburstColorway     []color.Color     `json:"sunburstcolorway,omitempty"`
	ExtendSunburstColors *bool             `json:"extendsunburstcolors,omitempty"`
	UpdateMenus          []UpdateMenu      `json:"updatemenus,omitempty"`
	Sliders              []Slider          `json:"sliders,omitempty"`
	Axes                 map[string]*Axis  `json:"-" plotly:"-"`
}

func NewLayout() *Layout {
	return &Layout{}
}

// AxisKey returns the layout key of the n-th axis of a kind ("x", "y" or
// "z"): "xaxis" for n <= 1, "xaxis<n>" otherwise.
func AxisKey(kind string, n int) string {
	if n <= 1 {
		return kind + "axis"
	}
	return kind + "axis" + strconv.Itoa(n)
}

// AxisRef returns the short reference traces use for the n-th axis of a
// kind: "x" for n <= 1, "x<n>" otherwise.
func AxisRef(kind string, n int) string {
	if n <= 1 {
		return kind
	}
	return kind + strconv.Itoa(n)
}

// AxisByName stores axis under an arbitrary layout key.
func (l *Layout) AxisByName(name string, axis *Axis) *Layout {
	if l.Axes == nil {
		l.Axes = make(map[string]*Axis)
	}
	l.Axes[name] = axis
	return l
}

// SetXAxis stores the n-th x axis (1 based).
func (l *Layout) SetXAxis(n int, axis *Axis) *Layout {
	return l.AxisByName(AxisKey("x", n), axis)
}

// SetYAxis stores the n-th y axis (1 based).
func (l *Layout) SetYAxis(n int, axis *Axis) *Layout {
	return l.AxisByName(AxisKey("y", n), axis)
}

// SetZAxis stores the n-th z axis (1 based).
func (l *Layout) SetZAxis(n int, axis *Axis) *Layout {
	return l.AxisByName(AxisKey("z", n), axis)
}

// Axis returns the axis stored under name, looking at named axes first and
// then at the direct fields. It returns nil when none is set.
func (l *Layout) Axis(name string) *Axis {
	if axis, ok := l.Axes[name]; ok {
		return axis
	}
	if slot := l.axisSlots()[name]; slot != nil {
		return *slot
	}
	return nil
}

// AddAnnotation appends an annotation.
func (l *Layout) AddAnnotation(annotation *Annotation) *Layout {
	l.Annotations = append(l.Annotations, *annotation)
	return l
}

// AddShape appends a shape.
func (l *Layout) AddShape(shape *Shape) *Layout {
	l.Shapes = append(l.Shapes, *shape)
	return l
}

// AddUpdateMenu appends an update menu.
func (l *Layout) AddUpdateMenu(menu *UpdateMenu) *Layout {
	l.UpdateMenus = append(l.UpdateMenus, *menu)
	return l
}

// AddSlider appends a slider.
func (l *Layout) AddSlider(slider *Slider) *Layout {
	l.Sliders = append(l.Sliders, *slider)
	return l
}

func (l *Layout) axisSlots() map[string]**Axis {
	return map[string]**Axis{
		"xaxis": &l.XAxis, "yaxis": &l.YAxis, "zaxis": &l.ZAxis,
		"xaxis2": &l.XAxis2, "yaxis2": &l.YAxis2, "zaxis2": &l.ZAxis2,
		"xaxis3": &l.XAxis3, "yaxis3": &l.YAxis3, "zaxis3": &l.ZAxis3,
		"xaxis4": &l.XAxis4, "yaxis4": &l.YAxis4, "zaxis4": &l.ZAxis4,
		"xaxis5": &l.XAxis5, "yaxis5": &l.YAxis5, "zaxis5": &l.ZAxis5,
		"xaxis6": &l.XAxis6, "yaxis6": &l.YAxis6, "zaxis6": &l.ZAxis6,
		"xaxis7": &l.XAxis7, "yaxis7": &l.YAxis7, "zaxis7": &l.ZAxis7,
		"xaxis8": &l.XAxis8, "yaxis8": &l.YAxis8, "zaxis8": &l.ZAxis8,
	}
}

// MarshalJSON implements json.Marshaler. Named axes whose key matches a
// direct field take its place; the others are appended in key order.
func (l Layout) MarshalJSON() ([]byte, error) {
	type plain Layout
	if len(l.Axes) == 0 {
		return json.Marshal(plain(l))
	}

	slots := l.axisSlots()
	extra := make([]string, 0, len(l.Axes))
	for name, axis := range l.Axes {
		if slot, ok := slots[name]; ok {
			*slot = axis
			continue
		}
		extra = append(extra, name)
	}
	sort.Strings(extra)

	b, err := json.Marshal(plain(l))
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return b, nil
	}

	var buf bytes.Buffer
	buf.Write(b[:len(b)-1])
	sep := len(b) > 2
	for _, name := range extra {
		value, err := json.Marshal(l.Axes[name])
		if err != nil {
			return nil, fmt.Errorf("failed to serialize axis %q: %w", name, err)
		}
		key, _ := json.Marshal(name)
		if sep {
			buf.WriteByte(',')
		}
		sep = true
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ToJSON serializes the layout.
func (l *Layout) ToJSON() (string, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("failed to serialize layout: %w", err)
	}
	return string(b), nil
}

// Clone returns a deep copy of the layout.
func (l *Layout) Clone() *Layout {
	return common.DeepCopy(l)
}

// Template carries default attributes applied by the renderer before the
// layout's own ones.
type Template struct {
	Layout *Layout `json:"layout,omitempty"`
}

func NewTemplate(layout *Layout) *Template {
	return &Template{Layout: layout}
}

// Relayout is a partial update of one layout attribute. It serializes to a
// bare single-key object such as {"title": {"text": "X"}}.
type Relayout struct {
	Key   string
	Value any
}

// NewRelayout sets key to value.
func NewRelayout[T any](key string, value T) Relayout {
	return Relayout{Key: key, Value: value}
}

// ModifyAxis relayouts the axis stored under name ("xaxis3", "yaxis" ...).
func ModifyAxis(name string, axis *Axis) Relayout {
	return NewRelayout(name, axis)
}

// MarshalJSON implements json.Marshaler.
func (r Relayout) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{r.Key: r.Value})
}
