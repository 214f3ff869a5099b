package plot

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/raykavin/goplotly/pkg/common"
	"github.com/raykavin/goplotly/pkg/layout"
	"github.com/raykavin/goplotly/pkg/traces"
	"github.com/stretchr/testify/require"
)

func TestSubplotsBuilder_Domains(t *testing.T) {
	b := NewSubplotsBuilder(2, 2)

	want := []CellDomain{
		{Row: 1, Col: 1, Index: 1, X: [2]float64{0, 0.5}, Y: [2]float64{0.5, 1}},
		{Row: 1, Col: 2, Index: 2, X: [2]float64{0.5, 1}, Y: [2]float64{0.5, 1}},
		{Row: 2, Col: 1, Index: 3, X: [2]float64{0, 0.5}, Y: [2]float64{0, 0.5}},
		{Row: 2, Col: 2, Index: 4, X: [2]float64{0.5, 1}, Y: [2]float64{0, 0.5}},
	}
	require.Equal(t, want, b.Domains())

	b.WithStartCell(BottomLeft)
	d, ok := b.Domain(1, 1)
	require.True(t, ok)
	require.Equal(t, [2]float64{0, 0.5}, d.Y)

	_, ok = b.Domain(3, 1)
	require.False(t, ok)
}

func TestSubplotsBuilder_DomainsTileGrid(t *testing.T) {
	tests := []struct {
		rows, cols int
		start      StartCell
	}{
		{rows: 3, cols: 5, start: TopLeft},
		{rows: 1, cols: 4, start: TopLeft},
		{rows: 5, cols: 3, start: TopLeft},
		{rows: 7, cols: 1, start: TopLeft},
		{rows: 3, cols: 5, start: BottomLeft},
		{rows: 6, cols: 7, start: BottomLeft},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d/start=%d", tt.rows, tt.cols, tt.start), func(t *testing.T) {
			b := NewSubplotsBuilder(tt.rows, tt.cols).WithStartCell(tt.start)
			require.Len(t, b.Domains(), tt.rows*tt.cols)

			for row := 1; row <= tt.rows; row++ {
				for col := 1; col <= tt.cols; col++ {
					d, ok := b.Domain(row, col)
					require.True(t, ok)
					require.InDelta(t, 1/float64(tt.cols), d.X[1]-d.X[0], 1e-9)
					require.InDelta(t, 1/float64(tt.rows), d.Y[1]-d.Y[0], 1e-9)

					if col == 1 {
						require.InDelta(t, 0, d.X[0], 1e-9)
					}
					if col == tt.cols {
						require.InDelta(t, 1, d.X[1], 1e-9)
					} else {
						right, _ := b.Domain(row, col+1)
						require.InDelta(t, d.X[1], right.X[0], 1e-9)
						require.Equal(t, d.Y, right.Y)
					}

					if row < tt.rows {
						next, _ := b.Domain(row+1, col)
						require.Equal(t, d.X, next.X)
						if tt.start == BottomLeft {
							require.InDelta(t, d.Y[1], next.Y[0], 1e-9)
						} else {
							require.InDelta(t, d.Y[0], next.Y[1], 1e-9)
						}
					}
				}
			}

			top, bottom := 1, tt.rows
			if tt.start == BottomLeft {
				top, bottom = tt.rows, 1
			}
			first, _ := b.Domain(top, 1)
			last, _ := b.Domain(bottom, 1)
			require.InDelta(t, 1, first.Y[1], 1e-9)
			require.InDelta(t, 0, last.Y[0], 1e-9)
		})
	}
}

func TestSubplotsBuilder_Spacing(t *testing.T) {
	b := NewSubplotsBuilder(1, 2).WithHorizontalSpacing(0.2)

	left, _ := b.Domain(1, 1)
	right, _ := b.Domain(1, 2)
	require.InDelta(t, 0.4, left.X[1], 1e-9)
	require.InDelta(t, 0.6, right.X[0], 1e-9)
	require.InDelta(t, 1.0, right.X[1], 1e-9)
}

func TestSubplotsBuilder_SpacingClamped(t *testing.T) {
	b := NewSubplotsBuilder(1, 5).WithHorizontalSpacing(0.5)

	for _, d := range b.Domains() {
		require.InDelta(t, MinSubplotFraction, d.X[1]-d.X[0], 1e-9)
	}
	first, _ := b.Domain(1, 1)
	second, _ := b.Domain(1, 2)
	require.InDelta(t, 0.1, second.X[0]-first.X[1], 1e-9)

	require.Zero(t, clampSpacing(-0.3, 3))
	require.Zero(t, clampSpacing(0.3, 1))
}

func TestSubplotsBuilder_ColumnWidths(t *testing.T) {
	b := NewSubplotsBuilder(1, 2).WithColumnWidths(3, 1)
	left, _ := b.Domain(1, 1)
	require.InDelta(t, 0.75, left.X[1], 1e-9)

	b.WithColumnWidths(1, 0)
	left, _ = b.Domain(1, 1)
	require.InDelta(t, 0.5, left.X[1], 1e-9)
}

func TestSubplotsBuilder_AddTrace(t *testing.T) {
	b := NewSubplotsBuilder(2, 2)

	err := b.AddTrace(traces.NewScatter([]int{1}, []int{1}), 3, 1)
	require.ErrorIs(t, err, ErrInvalidCell)

	err = b.AddTrace(traces.NewScatterPolar([]int{1}, []int{1}), 1, 1)
	require.ErrorIs(t, err, ErrNotCartesian)

	require.NoError(t, b.AddTrace(traces.NewScatter([]int{1}, []int{1}), 2, 1))
	require.NoError(t, b.AddTrace(traces.NewBar([]string{"a"}, []int{1}), 1, 1))

	p := b.Plot()
	require.Len(t, p.Data(), 2)

	first, err := p.Data()[0].ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"scatter","x":[1],"y":[1],"xaxis":"x3","yaxis":"y3"}`, first)

	second, err := p.Data()[1].ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"bar","x":["a"],"y":[1],"xaxis":"x","yaxis":"y"}`, second)
}

func TestSubplotsBuilder_Layout(t *testing.T) {
	l := NewSubplotsBuilder(1, 2).Layout()

	b, err := json.Marshal(l)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"grid": {"rows": 1, "columns": 2, "pattern": "independent", "roworder": "top to bottom"},
		"xaxis": {"domain": [0, 0.5]},
		"yaxis": {"domain": [0, 1]},
		"xaxis2": {"domain": [0.5, 1]},
		"yaxis2": {"domain": [0, 1]}
	}`, string(b))
}

func TestSubplotsBuilder_SharedAxes(t *testing.T) {
	l := NewSubplotsBuilder(2, 2).
		WithSharedXAxes(true).
		WithSharedYAxes(true).
		Layout()

	require.Equal(t, "x3", *l.Axis("xaxis").Matches)
	require.Equal(t, "x4", *l.Axis("xaxis2").Matches)
	require.Nil(t, l.Axis("xaxis3").Matches)
	require.Nil(t, l.Axis("yaxis").Matches)
	require.Equal(t, "y", *l.Axis("yaxis2").Matches)
	require.Equal(t, "y3", *l.Axis("yaxis4").Matches)

	l = NewSubplotsBuilder(2, 1).WithStartCell(BottomLeft).WithSharedXAxes(true).Layout()
	require.Nil(t, l.Axis("xaxis").Matches)
	require.Equal(t, "x", *l.Axis("xaxis2").Matches)
}

func TestSubplotsBuilder_Titles(t *testing.T) {
	b := NewSubplotsBuilder(2, 2).
		WithSubplotTitles("a", "b", "c", "d", "dropped").
		WithXAxisTitles("time", "volume").
		WithYAxisTitles("price", "count").
		WithYTitleAt(2, 2, "override")

	l := b.Layout()
	require.Len(t, l.Annotations, 4)

	annotation := l.Annotations[2]
	require.Equal(t, "c", *annotation.Text)
	require.Equal(t, "x3 domain", *annotation.XRef)
	require.Equal(t, "y3 domain", *annotation.YRef)
	require.False(t, *annotation.ShowArrow)

	require.Nil(t, l.Axis("xaxis").Title)
	require.Equal(t, "time", *l.Axis("xaxis3").Title.Text)
	require.Equal(t, "volume", *l.Axis("xaxis4").Title.Text)
	require.Equal(t, "price", *l.Axis("yaxis").Title.Text)
	require.Equal(t, "count", *l.Axis("yaxis3").Title.Text)
	require.Nil(t, l.Axis("yaxis2").Title)
	require.Equal(t, "override", *l.Axis("yaxis4").Title.Text)
}

func TestSubplotsBuilder_YAxisTitlesFollowStartCell(t *testing.T) {
	tests := []struct {
		start      StartCell
		firstRowY  []float64
		secondRowY []float64
	}{
		{start: TopLeft, firstRowY: []float64{0.5, 1}, secondRowY: []float64{0, 0.5}},
		{start: BottomLeft, firstRowY: []float64{0, 0.5}, secondRowY: []float64{0.5, 1}},
	}

	for _, tt := range tests {
		l := NewSubplotsBuilder(2, 1).
			WithStartCell(tt.start).
			WithYAxisTitles("first", "second").
			Layout()

		require.Equal(t, "first", *l.Axis("yaxis").Title.Text)
		require.Equal(t, tt.firstRowY, l.Axis("yaxis").Domain)
		require.Equal(t, "second", *l.Axis("yaxis2").Title.Text)
		require.Equal(t, tt.secondRowY, l.Axis("yaxis2").Domain)
	}
}

func TestSubplotsBuilder_WithLayout(t *testing.T) {
	base := layout.NewLayout().
		WithTitle(common.NewTitle("Grid")).
		WithXAxis(layout.NewAxis().WithShowGrid(false))

	l := NewSubplotsBuilder(1, 2).WithLayout(base).Layout()

	require.Equal(t, "Grid", *l.Title.Text)
	require.False(t, *l.Axis("xaxis").ShowGrid)
	require.Equal(t, []float64{0, 0.5}, l.Axis("xaxis").Domain)
	require.Nil(t, base.Axis("xaxis").Domain)
}
