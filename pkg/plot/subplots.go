package plot

import (
	"fmt"
	"math"

	"github.com/raykavin/goplotly/pkg/common"
	"github.com/raykavin/goplotly/pkg/layout"
	"github.com/raykavin/goplotly/pkg/traces"
)

// MinSubplotFraction is the share of the plotting area every subplot keeps,
// per direction, whatever spacing is requested.
const MinSubplotFraction = 0.12

// StartCell is the cell numbered (1, 1).
type StartCell int

const (
	TopLeft StartCell = iota
	BottomLeft
)

// CellDomain is the geometry computed for one grid cell. Index is the axis
// number of the cell: its traces reference "x<Index>"/"y<Index>".
type CellDomain struct {
	Row   int
	Col   int
	Index int
	X     [2]float64
	Y     [2]float64
}

type cell struct {
	row, col int
}

type placedTrace struct {
	trace traces.Trace
	cell  cell
}

// SubplotsBuilder lays traces out on a rows x cols grid of independent
// cartesian axes. Rows and columns are 1 based and counted from the start
// cell. Every setter recomputes the grid, so Layout and Domains always
// reflect the current options.
type SubplotsBuilder struct {
	rows, cols    int
	startCell     StartCell
	sharedX       bool
	sharedY       bool
	hSpacing      float64
	vSpacing      float64
	columnWidths  []float64
	rowHeights    []float64
	subplotTitles []string
	xTitles       []string
	yTitles       []string
	xTitleAt      map[cell]string
	yTitleAt      map[cell]string
	base          *layout.Layout
	placed        []placedTrace

	domains map[cell]CellDomain
	layout  *layout.Layout
}

// NewSubplotsBuilder creates a grid. Counts below one are raised to one.
func NewSubplotsBuilder(rows, cols int) *SubplotsBuilder {
	b := &SubplotsBuilder{
		rows:     max(rows, 1),
		cols:     max(cols, 1),
		xTitleAt: make(map[cell]string),
		yTitleAt: make(map[cell]string),
	}
	b.recompute()
	return b
}

func (b *SubplotsBuilder) WithStartCell(start StartCell) *SubplotsBuilder {
	b.startCell = start
	b.recompute()
	return b
}

// WithSharedXAxes makes every row match the x axes of the bottom row.
func (b *SubplotsBuilder) WithSharedXAxes(shared bool) *SubplotsBuilder {
	b.sharedX = shared
	b.recompute()
	return b
}

// WithSharedYAxes makes every column match the y axes of the first column.
func (b *SubplotsBuilder) WithSharedYAxes(shared bool) *SubplotsBuilder {
	b.sharedY = shared
	b.recompute()
	return b
}

// WithHorizontalSpacing sets the gap between columns as a fraction of the
// plotting width. It is clamped so every column keeps MinSubplotFraction.
func (b *SubplotsBuilder) WithHorizontalSpacing(spacing float64) *SubplotsBuilder {
	b.hSpacing = spacing
	b.recompute()
	return b
}

// WithVerticalSpacing is WithHorizontalSpacing for rows.
func (b *SubplotsBuilder) WithVerticalSpacing(spacing float64) *SubplotsBuilder {
	b.vSpacing = spacing
	b.recompute()
	return b
}

func (b *SubplotsBuilder) WithSpacing(horizontal, vertical float64) *SubplotsBuilder {
	b.hSpacing, b.vSpacing = horizontal, vertical
	b.recompute()
	return b
}

// WithColumnWidths sets relative column widths. Lists that do not have one
// positive weight per column are ignored.
func (b *SubplotsBuilder) WithColumnWidths(widths ...float64) *SubplotsBuilder {
	b.columnWidths = widths
	b.recompute()
	return b
}

// WithRowHeights sets relative row heights, in row order.
func (b *SubplotsBuilder) WithRowHeights(heights ...float64) *SubplotsBuilder {
	b.rowHeights = heights
	b.recompute()
	return b
}

// WithSubplotTitles titles the cells in row major order. Extra titles are
// dropped.
func (b *SubplotsBuilder) WithSubplotTitles(titles ...string) *SubplotsBuilder {
	b.subplotTitles = titles
	b.recompute()
	return b
}

// WithXAxisTitles titles the x axes of the bottom row, one per column.
func (b *SubplotsBuilder) WithXAxisTitles(titles ...string) *SubplotsBuilder {
	b.xTitles = titles
	b.recompute()
	return b
}

// WithYAxisTitles titles the y axes of the first column, one per row.
func (b *SubplotsBuilder) WithYAxisTitles(titles ...string) *SubplotsBuilder {
	b.yTitles = titles
	b.recompute()
	return b
}

// WithXTitleAt titles the x axis of one cell, overriding WithXAxisTitles.
func (b *SubplotsBuilder) WithXTitleAt(row, col int, title string) *SubplotsBuilder {
	b.xTitleAt[cell{row, col}] = title
	b.recompute()
	return b
}

// WithYTitleAt titles the y axis of one cell, overriding WithYAxisTitles.
func (b *SubplotsBuilder) WithYTitleAt(row, col int, title string) *SubplotsBuilder {
	b.yTitleAt[cell{row, col}] = title
	b.recompute()
	return b
}

// WithLayout sets the layout the grid is applied to. Axes already present
// in it keep their attributes and get the cell domain on top.
func (b *SubplotsBuilder) WithLayout(l *layout.Layout) *SubplotsBuilder {
	b.base = l
	b.recompute()
	return b
}

// AddTrace places trace in a cell. The trace must be drawn on cartesian
// axes (traces.AxisAssigner).
func (b *SubplotsBuilder) AddTrace(trace traces.Trace, row, col int) error {
	if row < 1 || row > b.rows || col < 1 || col > b.cols {
		return fmt.Errorf("%w: (%d, %d) in a %dx%d grid", ErrInvalidCell, row, col, b.rows, b.cols)
	}
	if _, ok := trace.(traces.AxisAssigner); !ok {
		return fmt.Errorf("%w: %s", ErrNotCartesian, trace.PlotType())
	}
	b.placed = append(b.placed, placedTrace{trace: trace, cell: cell{row, col}})
	return nil
}

// Domain returns the geometry of a cell.
func (b *SubplotsBuilder) Domain(row, col int) (CellDomain, bool) {
	d, ok := b.domains[cell{row, col}]
	return d, ok
}

// Domains returns the geometry of every cell in row major order.
func (b *SubplotsBuilder) Domains() []CellDomain {
	out := make([]CellDomain, 0, len(b.domains))
	for row := 1; row <= b.rows; row++ {
		for col := 1; col <= b.cols; col++ {
			out = append(out, b.domains[cell{row, col}])
		}
	}
	return out
}

// Layout returns a copy of the computed layout.
func (b *SubplotsBuilder) Layout() *layout.Layout {
	return b.layout.Clone()
}

// Plot binds the placed traces to their cell axes and returns the plot.
func (b *SubplotsBuilder) Plot(options ...Option) *Plot {
	p := NewPlot(options...)
	for _, placed := range b.placed {
		index := b.domains[placed.cell].Index
		placed.trace.(traces.AxisAssigner).AssignAxes(
			layout.AxisRef("x", index),
			layout.AxisRef("y", index),
		)
		p.AddTrace(placed.trace)
	}
	return p.SetLayout(b.Layout())
}

// physicalRow converts a row counted from the start cell into a row counted
// from the bottom of the figure.
func (b *SubplotsBuilder) physicalRow(row int) int {
	if b.startCell == BottomLeft {
		return row
	}
	return b.rows - row + 1
}

func (b *SubplotsBuilder) index(row, col int) int {
	return (row-1)*b.cols + col
}

func (b *SubplotsBuilder) recompute() {
	hSpacing := clampSpacing(b.hSpacing, b.cols)
	vSpacing := clampSpacing(b.vSpacing, b.rows)

	widths := shares(b.columnWidths, b.cols, hSpacing)
	heights := shares(b.rowHeights, b.rows, vSpacing)

	// x offsets per column, y offsets per physical row
	xStart := offsets(widths, hSpacing)
	physHeights := make([]float64, b.rows)
	for row := 1; row <= b.rows; row++ {
		physHeights[b.physicalRow(row)-1] = heights[row-1]
	}
	yStart := offsets(physHeights, vSpacing)

	var l *layout.Layout
	if b.base != nil {
		l = b.base.Clone()
	} else {
		l = layout.NewLayout()
	}

	rowOrder := layout.RowOrderTopToBottom
	if b.startCell == BottomLeft {
		rowOrder = layout.RowOrderBottomToTop
	}
	l.WithGrid(layout.NewLayoutGrid().
		WithRows(b.rows).
		WithColumns(b.cols).
		WithPattern(layout.GridPatternIndependent).
		WithRowOrder(rowOrder))

	bottomRow := b.rows
	if b.startCell == BottomLeft {
		bottomRow = 1
	}

	b.domains = make(map[cell]CellDomain, b.rows*b.cols)
	for row := 1; row <= b.rows; row++ {
		p := b.physicalRow(row) - 1
		for col := 1; col <= b.cols; col++ {
			index := b.index(row, col)
			d := CellDomain{
				Row:   row,
				Col:   col,
				Index: index,
				X:     [2]float64{xStart[col-1], xStart[col-1] + widths[col-1]},
				Y:     [2]float64{yStart[p], yStart[p] + physHeights[p]},
			}
			b.domains[cell{row, col}] = d

			x := axisFor(l, layout.AxisKey("x", index)).WithDomain(d.X[:])
			y := axisFor(l, layout.AxisKey("y", index)).WithDomain(d.Y[:])

			if b.sharedX && row != bottomRow {
				x.WithMatches(layout.AxisRef("x", b.index(bottomRow, col)))
			}
			if b.sharedY && col > 1 {
				y.WithMatches(layout.AxisRef("y", b.index(row, 1)))
			}

			if title, ok := b.xTitleAt[cell{row, col}]; ok {
				x.WithTitle(common.NewTitle(title))
			} else if row == bottomRow && col <= len(b.xTitles) {
				x.WithTitle(common.NewTitle(b.xTitles[col-1]))
			}
			if title, ok := b.yTitleAt[cell{row, col}]; ok {
				y.WithTitle(common.NewTitle(title))
			} else if col == 1 && row <= len(b.yTitles) {
				y.WithTitle(common.NewTitle(b.yTitles[row-1]))
			}

			l.SetXAxis(index, x)
			l.SetYAxis(index, y)
		}
	}

	for i, title := range b.subplotTitles {
		if i >= b.rows*b.cols {
			break
		}
		index := b.index(1+i/b.cols, 1+i%b.cols)
		l.AddAnnotation(layout.NewAnnotation().
			WithXRef(layout.AxisRef("x", index)+" domain").
			WithYRef(layout.AxisRef("y", index)+" domain").
			WithX(0.5).
			WithY(1.0).
			WithXAnchor(common.AnchorCenter).
			WithYAnchor(common.AnchorBottom).
			WithText(title).
			WithShowArrow(false))
	}

	b.layout = l
}

// axisFor returns the axis already stored in l under key, or a new one.
func axisFor(l *layout.Layout, key string) *layout.Axis {
	if axis := l.Axis(key); axis != nil {
		return axis
	}
	return layout.NewAxis()
}

// clampSpacing bounds the requested gap so that n subplots keep
// MinSubplotFraction each.
func clampSpacing(requested float64, n int) float64 {
	if n <= 1 {
		return 0
	}
	maxSpacing := math.Max(1-float64(n)*MinSubplotFraction, 0) / float64(n-1)
	return math.Min(math.Max(requested, 0), maxSpacing)
}

// shares splits the room left by the gaps between n subplots, following
// weights when they are usable.
func shares(weights []float64, n int, spacing float64) []float64 {
	room := 1 - spacing*float64(n-1)
	out := make([]float64, n)

	total := 0.0
	usable := len(weights) == n
	for _, w := range weights {
		if w <= 0 {
			usable = false
		}
		total += w
	}

	for i := range out {
		if usable {
			out[i] = room * weights[i] / total
		} else {
			out[i] = room / float64(n)
		}
	}
	return out
}

func offsets(sizes []float64, spacing float64) []float64 {
	out := make([]float64, len(sizes))
	start := 0.0
	for i, size := range sizes {
		out[i] = start
		start += size + spacing
	}
	return out
}
