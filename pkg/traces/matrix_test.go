package traces

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func nan() float64 { return math.NaN() }

func TestLinSpace(t *testing.T) {
	require.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, LinSpace(0, 1, 5))
	require.Equal(t, []float64{3}, LinSpace(3, 7, 1))
	require.Nil(t, LinSpace(0, 1, 0))
}

func TestGrid(t *testing.T) {
	z := Grid([]float64{1, 2, 3}, []float64{10, 20}, func(x, y float64) float64 { return x + y })
	require.Equal(t, [][]float64{{11, 12, 13}, {21, 22, 23}}, z)
	require.Nil(t, Grid(nil, []float64{1}, nil))
}

func TestMatrixToRows(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, MatrixToRows(m))
	require.Nil(t, MatrixToRows(nil))
}

func TestToFloat64s(t *testing.T) {
	require.Equal(t, []float64{1, 2, 3}, ToFloat64s([]int8{1, 2, 3}))
}

func TestNewHeatMapFromMatrix(t *testing.T) {
	got, err := NewHeatMapFromMatrix(mat.NewDense(1, 2, []float64{5, 6})).ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"heatmap","z":[[5,6]]}`, got)
}

func TestNewHistogramFromVector(t *testing.T) {
	got, err := NewHistogramFromVector(mat.NewVecDense(3, []float64{1, 1, 2})).ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"histogram","x":[1,1,2]}`, got)
}
