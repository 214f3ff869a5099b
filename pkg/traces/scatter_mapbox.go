package traces

import (
	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
)

// MapboxFill is the subset of fill modes a map trace accepts.
type MapboxFill string

const (
	MapboxFillNone   MapboxFill = "none"
	MapboxFillToSelf MapboxFill = "toself"
)

type SelectionMarker struct {
	Color   color.Color      `json:"color,omitempty"`
	Opacity *float64         `json:"opacity,omitempty"`
	Size    *common.Dim[int] `json:"size,omitempty"`
}

func NewSelectionMarker() *SelectionMarker {
	return &SelectionMarker{}
}

// Selection styles selected or unselected points.
type Selection struct {
	Marker *SelectionMarker `json:"marker,omitempty"`
}

func NewSelection(marker *SelectionMarker) *Selection {
	return &Selection{Marker: marker}
}

type ScatterMapbox[Lat, Lon any] struct {
	Type             common.PlotType              `json:"type" plotly:"-"`
	Name             *string                      `json:"name,omitempty"`
	Visible          *common.Visible              `json:"visible,omitempty"`
	ShowLegend       *bool                        `json:"showlegend,omitempty"`
	LegendRank       *int                         `json:"legendrank,omitempty"`
	LegendGroup      *string                      `json:"legendgroup,omitempty"`
	LegendGroupTitle *common.LegendGroupTitle     `json:"legendgrouptitle,omitempty"`
	Opacity          *float64                     `json:"opacity,omitempty"`
	Mode             *common.Mode                 `json:"mode,omitempty"`
	IDs              []string                     `json:"ids,omitempty"`
	Lat              []Lat                        `json:"lat,omitempty"`
	Lon              []Lon                        `json:"lon,omitempty"`
	Text             *common.Dim[string]          `json:"text,omitempty"`
	TextPosition     *common.Dim[common.Position] `json:"textposition,omitempty"`
	TextTemplate     *common.Dim[string]          `json:"texttemplate,omitempty"`
	HoverText        *common.Dim[string]          `json:"hovertext,omitempty"`
	HoverInfo        *common.HoverInfo            `json:"hoverinfo,omitempty"`
	HoverTemplate    *common.Dim[string]          `json:"hovertemplate,omitempty"`
	Meta             any                          `json:"meta,omitempty"`
	CustomData       []any                        `json:"customdata,omitempty"`
	Subplot          *string                      `json:"subplot,omitempty"`
	Marker           *common.Marker               `json:"marker,omitempty"`
	Line             *common.Line                 `json:"line,omitempty"`
	TextFont         *common.Font                 `json:"textfont,omitempty"`
	SelectedPoints   []int                        `json:"selectedpoints,omitempty"`
	Selected         *Selection                   `json:"selected,omitempty"`
	Unselected       *Selection                   `json:"unselected,omitempty"`
	Below            *string                      `json:"below,omitempty"`
	ConnectGaps      *bool                        `json:"connectgaps,omitempty"`
	Fill             *MapboxFill                  `json:"fill,omitempty"`
	FillColor        color.Color                  `json:"fillcolor,omitempty"`
	HoverLabel       *common.Label                `json:"hoverlabel,omitempty"`
	UIRevision       any                          `json:"uirevision,omitempty"`
}

func NewScatterMapbox[Lat, Lon any](lat []Lat, lon []Lon) *ScatterMapbox[Lat, Lon] {
	return &ScatterMapbox[Lat, Lon]{
		Type: common.PlotTypeScatterMapbox,
		Lat:  lat,
		Lon:  lon,
	}
}

func (s *ScatterMapbox[Lat, Lon]) PlotType() common.PlotType { return s.Type }

func (s *ScatterMapbox[Lat, Lon]) ToJSON() (string, error) { return toJSON(s) }

func (s *ScatterMapbox[Lat, Lon]) Clone() Trace { return cloneTrace(s) }
