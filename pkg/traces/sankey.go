package traces

import (
	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
)

type Arrangement string

const (
	ArrangementSnap          Arrangement = "snap"
	ArrangementPerpendicular Arrangement = "perpendicular"
	ArrangementFreeform      Arrangement = "freeform"
	ArrangementFixed         Arrangement = "fixed"
)

// SankeyLine outlines nodes or links.
type SankeyLine struct {
	Color *common.Dim[color.Color] `json:"color,omitempty"`
	Width *float64                 `json:"width,omitempty"`
}

func NewSankeyLine() *SankeyLine {
	return &SankeyLine{}
}

type Node struct {
	Color         *common.Dim[color.Color] `json:"color,omitempty"`
	HoverInfo     *common.HoverInfo        `json:"hoverinfo,omitempty"`
	HoverLabel    *common.Label            `json:"hoverlabel,omitempty"`
	HoverTemplate *common.Dim[string]      `json:"hovertemplate,omitempty"`
	Label         []string                 `json:"label,omitempty"`
	Line          *SankeyLine              `json:"line,omitempty"`
	Pad           *int                     `json:"pad,omitempty"`
	Thickness     *int                     `json:"thickness,omitempty"`
	X             []float64                `json:"x,omitempty"`
	Y             []float64                `json:"y,omitempty"`
}

func NewNode() *Node {
	return &Node{}
}

// Link connects Source[i] to Target[i] with a flow of Value[i].
type Link[V any] struct {
	Color         *common.Dim[color.Color] `json:"color,omitempty"`
	HoverInfo     *common.HoverInfo        `json:"hoverinfo,omitempty"`
	HoverLabel    *common.Label            `json:"hoverlabel,omitempty"`
	HoverTemplate *common.Dim[string]      `json:"hovertemplate,omitempty"`
	Line          *SankeyLine              `json:"line,omitempty"`
	Source        []int                    `json:"source,omitempty"`
	Target        []int                    `json:"target,omitempty"`
	Value         []V                      `json:"value,omitempty"`
}

func NewLink[V any]() *Link[V] {
	return &Link[V]{}
}

// Sankey draws flows between nodes.
type Sankey[V any] struct {
	Type             common.PlotType          `json:"type" plotly:"-"`
	Name             *string                  `json:"name,omitempty"`
	Visible          *bool                    `json:"visible,omitempty"`
	Arrangement      *Arrangement             `json:"arrangement,omitempty"`
	Domain           *common.Domain           `json:"domain,omitempty"`
	IDs              []string                 `json:"ids,omitempty"`
	HoverInfo        *common.HoverInfo        `json:"hoverinfo,omitempty"`
	HoverLabel       *common.Label            `json:"hoverlabel,omitempty"`
	LegendGroupTitle *common.LegendGroupTitle `json:"legendgrouptitle,omitempty"`
	LegendRank       *int                     `json:"legendrank,omitempty"`
	Link             *Link[V]                 `json:"link,omitempty"`
	Node             *Node                    `json:"node,omitempty"`
	Orientation      *common.Orientation      `json:"orientation,omitempty"`
	SelectedPoints   []int                    `json:"selectedpoints,omitempty"`
	TextFont         *common.Font             `json:"textfont,omitempty"`
	ValueFormat      *string                  `json:"valueformat,omitempty"`
	ValueSuffix      *string                  `json:"valuesuffix,omitempty"`
}

func NewSankey[V any]() *Sankey[V] {
	return &Sankey[V]{Type: common.PlotTypeSankey}
}

func (s *Sankey[V]) PlotType() common.PlotType { return s.Type }

func (s *Sankey[V]) ToJSON() (string, error) { return toJSON(s) }

func (s *Sankey[V]) Clone() Trace { return cloneTrace(s) }
