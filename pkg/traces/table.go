package traces

import (
	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
)

type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

type FontStyle string

const (
	FontStyleNormal FontStyle = "normal"
	FontStyleItalic FontStyle = "italic"
)

type TextCase string

const (
	TextCaseNormal   TextCase = "normal"
	TextCaseWordCaps TextCase = "word caps"
	TextCaseUpper    TextCase = "upper"
	TextCaseLower    TextCase = "lower"
)

type TextVariant string

const (
	TextVariantNormal        TextVariant = "normal"
	TextVariantSmallCaps     TextVariant = "small-caps"
	TextVariantAllSmallCaps  TextVariant = "all-small-caps"
	TextVariantAllPetiteCaps TextVariant = "all-petite-caps"
)

type LinePosition string

const (
	LinePositionUnder            LinePosition = "under"
	LinePositionOver             LinePosition = "over"
	LinePositionThrough          LinePosition = "through"
	LinePositionUnderOver        LinePosition = "under+over"
	LinePositionUnderThrough     LinePosition = "under+through"
	LinePositionOverThrough      LinePosition = "over+through"
	LinePositionUnderOverThrough LinePosition = "under+over+through"
)

// TableLine outlines table cells. Matrix values style each cell.
type TableLine struct {
	Color *common.Dim[color.Color] `json:"color,omitempty" plotly:"matrix"`
	Width *common.Dim[float64]     `json:"width,omitempty" plotly:"matrix"`
}

func NewTableLine() *TableLine {
	return &TableLine{}
}

type TableFill struct {
	Color *common.Dim[color.Color] `json:"color,omitempty" plotly:"matrix"`
}

func NewTableFill() *TableFill {
	return &TableFill{}
}

type TableFont struct {
	Color        *common.Dim[color.Color]  `json:"color,omitempty" plotly:"matrix"`
	Family       *common.Dim[string]       `json:"family,omitempty"`
	Size         *common.Dim[float64]      `json:"size,omitempty"`
	Style        *common.Dim[FontStyle]    `json:"style,omitempty"`
	TextCase     *common.Dim[TextCase]     `json:"textcase,omitempty"`
	Variant      *common.Dim[TextVariant]  `json:"variant,omitempty"`
	Weight       *common.Dim[float64]      `json:"weight,omitempty"`
	LinePosition *common.Dim[LinePosition] `json:"lineposition,omitempty"`
}

func NewTableFont() *TableFont {
	return &TableFont{}
}

// Header holds the column titles.
type Header[T any] struct {
	Values []T                 `json:"values,omitempty"`
	Prefix *common.Dim[string] `json:"prefix,omitempty"`
	Suffix *common.Dim[string] `json:"suffix,omitempty"`
	Height *float64            `json:"height,omitempty"`
	Align  *common.Dim[Align]  `json:"align,omitempty" plotly:"matrix"`
	Line   *TableLine          `json:"line,omitempty"`
	Fill   *TableFill          `json:"fill,omitempty"`
	Font   *TableFont          `json:"font,omitempty"`
}

func NewHeader[T any](values []T) *Header[T] {
	return &Header[T]{Values: values}
}

// Cells holds the table body, one slice per column.
type Cells[N any] struct {
	Values [][]N               `json:"values,omitempty"`
	Prefix *common.Dim[string] `json:"prefix,omitempty"`
	Suffix *common.Dim[string] `json:"suffix,omitempty"`
	Height *float64            `json:"height,omitempty"`
	Align  *common.Dim[Align]  `json:"align,omitempty" plotly:"matrix"`
	Line   *TableLine          `json:"line,omitempty"`
	Fill   *TableFill          `json:"fill,omitempty"`
	Font   *TableFont          `json:"font,omitempty"`
}

func NewCells[N any](values [][]N) *Cells[N] {
	return &Cells[N]{Values: values}
}

type Table[T, N any] struct {
	Type        common.PlotType `json:"type" plotly:"-"`
	Name        *string         `json:"name,omitempty"`
	Visible     *common.Visible `json:"visible,omitempty"`
	Domain      *common.Domain  `json:"domain,omitempty"`
	ColumnOrder []int           `json:"columnorder,omitempty"`
	ColumnWidth *float64        `json:"columnwidth,omitempty"`
	Header      *Header[T]      `json:"header,omitempty"`
	Cells       *Cells[N]       `json:"cells,omitempty"`
}

func NewTable[T, N any](header *Header[T], cells *Cells[N]) *Table[T, N] {
	return &Table[T, N]{
		Type:   common.PlotTypeTable,
		Header: header,
		Cells:  cells,
	}
}

func (t *Table[T, N]) PlotType() common.PlotType { return t.Type }

func (t *Table[T, N]) ToJSON() (string, error) { return toJSON(t) }

func (t *Table[T, N]) Clone() Trace { return cloneTrace(t) }
