package traces

import (
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/mat"
)

// Number is any built-in integer or float type.
type Number interface {
	constraints.Integer | constraints.Float
}

// MatrixToRows copies m into a slice of rows, the layout plotly.js uses for z.
func MatrixToRows(m mat.Matrix) [][]float64 {
	if m == nil {
		return nil
	}

	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}

// VectorToSlice copies the elements of v.
func VectorToSlice(v mat.Vector) []float64 {
	if v == nil {
		return nil
	}

	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}

// ToFloat64s widens a numeric slice to float64.
func ToFloat64s[T Number](values []T) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// Grid evaluates f over the cartesian product of x and y. Row i of the result
// holds f(x[j], y[i]) for every j, so it can be passed as z together with x
// and y.
func Grid(x, y []float64, f func(x, y float64) float64) [][]float64 {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}

	z := mat.NewDense(len(y), len(x), nil)
	z.Apply(func(i, j int, _ float64) float64 {
		return f(x[j], y[i])
	}, z)
	return MatrixToRows(z)
}

// LinSpace returns n evenly spaced values over [start, stop].
func LinSpace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}

	v := mat.NewVecDense(n, nil)
	step := (stop - start) / float64(n-1)
	for i := 0; i < n; i++ {
		v.SetVec(i, start+float64(i)*step)
	}
	return VectorToSlice(v)
}
