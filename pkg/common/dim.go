package common

import "encoding/json"

// DimKind tells which of the Dim payloads is populated.
type DimKind uint8

const (
	DimScalar DimKind = iota
	DimVector
	DimMatrix
)

// Dim is an attribute value that applies to the whole trace (scalar), to each
// data point (vector) or to each table cell (matrix). It serializes to the bare
// value, never to a tagged object.
type Dim[T any] struct {
	Kind   DimKind
	Value  T
	Values []T
	Cells  [][]T
}

// Scalar wraps a single value.
func Scalar[T any](value T) *Dim[T] {
	return &Dim[T]{Kind: DimScalar, Value: value}
}

// Vector wraps one value per data point.
func Vector[T any](values []T) *Dim[T] {
	return &Dim[T]{Kind: DimVector, Values: values}
}

// Matrix wraps one value per table cell.
func Matrix[T any](cells [][]T) *Dim[T] {
	return &Dim[T]{Kind: DimMatrix, Cells: cells}
}

// IsScalar reports whether d holds a single value.
func (d Dim[T]) IsScalar() bool {
	return d.Kind == DimScalar
}

// Len is 1 for a scalar, the number of values for a vector and the number of
// rows for a matrix.
func (d Dim[T]) Len() int {
	switch d.Kind {
	case DimVector:
		return len(d.Values)
	case DimMatrix:
		return len(d.Cells)
	default:
		return 1
	}
}

// MarshalJSON implements json.Marshaler.
func (d Dim[T]) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case DimVector:
		return json.Marshal(d.Values)
	case DimMatrix:
		return json.Marshal(d.Cells)
	default:
		return json.Marshal(d.Value)
	}
}
