package traces

import (
	"testing"

	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSankey_ToJSON(t *testing.T) {
	trace := NewSankey[float64]().
		WithOrientation(common.OrientationHorizontal).
		WithNode(NewNode().WithLabel([]string{"A", "B"}).WithPad(15)).
		WithLink(NewLink[float64]().
			WithSource([]int{0}).
			WithTarget([]int{1}).
			WithValue([]float64{8}))

	got, err := trace.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{
		"type": "sankey",
		"orientation": "h",
		"node": {"label": ["A", "B"], "pad": 15},
		"link": {"source": [0], "target": [1], "value": [8]}
	}`, got)
}

func TestTable_ToJSON(t *testing.T) {
	header := NewHeader([]string{"A", "B"}).
		WithAlign(AlignCenter).
		WithFill(NewTableFill().WithColorMatrix([][]color.Color{{color.Gray, color.White}}))
	cells := NewCells([][]int{{1, 2}, {3, 4}}).WithFont(NewTableFont().WithSizeArray([]float64{10, 12}))

	got, err := NewTable(header, cells).WithColumnOrder([]int{1, 0}).ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{
		"type": "table",
		"columnorder": [1, 0],
		"header": {"values": ["A", "B"], "align": "center", "fill": {"color": [["gray", "white"]]}},
		"cells": {"values": [[1, 2], [3, 4]], "font": {"size": [10, 12]}}
	}`, got)
}

func TestCandlestick_ToJSON(t *testing.T) {
	trace := NewCandlestick([]string{"d1"}, []float64{1}, []float64{3}, []float64{0.5}, []float64{2})

	got, err := trace.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{
		"type": "candlestick",
		"x": ["d1"], "open": [1], "high": [3], "low": [0.5], "close": [2],
		"increasing": {"line": {"color": "green"}},
		"decreasing": {"line": {"color": "red"}}
	}`, got)
}

func TestScatter3D_ToJSON(t *testing.T) {
	trace := NewScatter3D([]int{1}, []int{2}, []int{3}).
		WithSurfaceAxis(SurfaceAxisMinusOne).
		WithProjection(NewProjection().WithZ(NewProjectionCoord().WithShow(true)))

	got, err := trace.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"scatter3d","x":[1],"y":[2],"z":[3],"surfaceaxis":-1,"projection":{"z":{"show":true}}}`, got)
}

func TestDensityMapbox_ToJSON(t *testing.T) {
	trace := NewDensityMapbox([]float64{45.5}, []float64{-73.5}, []int{1}).
		WithRadius(10).
		WithZMax(5)

	got, err := trace.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"densitymapbox","lat":[45.5],"lon":[-73.5],"z":[1],"radius":10,"zmax":5}`, got)
}

func TestScatterMapbox_ToJSON(t *testing.T) {
	trace := NewScatterMapbox([]float64{1}, []float64{2}).
		WithFill(MapboxFillToSelf).
		WithSelected(NewSelection(NewSelectionMarker().WithOpacity(0.3)))

	got, err := trace.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"scattermapbox","lat":[1],"lon":[2],"fill":"toself","selected":{"marker":{"opacity":0.3}}}`, got)
}

func TestMesh3D_ToJSON(t *testing.T) {
	trace := NewMesh3D([]int{0, 1, 0}, []int{0, 0, 1}, []int{0, 0, 0}, []int{0}, []int{1}, []int{2}).
		WithIntensityMode(IntensityModeCell).
		WithFaceColor([]color.Color{color.Blue})

	got, err := trace.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{
		"type": "mesh3d",
		"x": [0, 1, 0], "y": [0, 0, 1], "z": [0, 0, 0],
		"i": [0], "j": [1], "k": [2],
		"facecolor": ["blue"],
		"intensitymode": "cell"
	}`, got)
}

func TestSurface_Clone(t *testing.T) {
	src := NewSurface([][]float64{{1, 2}, {3, 4}})
	clone := src.Clone().(*Surface[float64, float64, float64])
	clone.Z[0][0] = 9
	require.Equal(t, 1.0, src.Z[0][0])
}

func TestContour_ToJSON(t *testing.T) {
	trace := NewContour([]float64{0, 1}, []string{"a", "b"}, [][]float64{{1, 2}, {3, 4}}).
		WithName("levels").
		WithNContours(4).
		WithContours(NewContours().WithColoring(ColoringHeatMap).WithShowLabels(true))

	got, err := trace.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{
		"type": "contour",
		"name": "levels",
		"x": [0, 1],
		"y": ["a", "b"],
		"z": [[1, 2], [3, 4]],
		"ncontours": 4,
		"contours": {"coloring": "heatmap", "showlabels": true}
	}`, got)
}

func TestContour_FromMatrix(t *testing.T) {
	got, err := NewContourFromMatrix(mat.NewDense(2, 2, []float64{1, 2, 3, 4})).ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"type": "contour", "z": [[1, 2], [3, 4]]}`, got)
}

func TestSurface_ToJSON(t *testing.T) {
	trace := NewSurfaceXYZ([]int{0, 1}, []int{0, 1}, [][]float64{{1, 2}, {2, 1}}).
		WithShowScale(false).
		WithLightPosition(NewLightPosition(10, 0, 5)).
		WithContours(NewSurfaceContours().
			WithZ(NewPlaneContours().WithShow(true).WithUseColormap(true)))

	got, err := trace.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{
		"type": "surface",
		"x": [0, 1],
		"y": [0, 1],
		"z": [[1, 2], [2, 1]],
		"showscale": false,
		"lightposition": {"x": 10, "y": 0, "z": 5},
		"contours": {"z": {"show": true, "usecolormap": true}}
	}`, got)
}

func TestOhlc_ToJSON(t *testing.T) {
	trace := NewOhlc([]string{"d1", "d2"}, []float64{1, 2}, []float64{3, 4}, []float64{0.5, 1.5}, []float64{2, 1}).
		WithTickWidth(0.2).
		WithIncreasing(common.NewIncreasing(common.NewLine().WithColor(color.Blue)))

	got, err := trace.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{
		"type": "ohlc",
		"x": ["d1", "d2"],
		"open": [1, 2], "high": [3, 4], "low": [0.5, 1.5], "close": [2, 1],
		"tickwidth": 0.2,
		"increasing": {"line": {"color": "blue"}}
	}`, got)
}

func TestScatter_WebGLToJSON(t *testing.T) {
	got, err := NewScatter([]int{1, 2}, []int{3, 4}).WithWebGLMode(true).ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"type": "scattergl", "x": [1, 2], "y": [3, 4]}`, got)
}
