// SPDX-License-Identifier: MIT
// Package geometry: Vector — a single-row matrix with length and
// normalization.

package geometry

import (
	"math"

	"github.com/katalvlaran/wireframe/matrix"
)

// Vector wraps a 1×N matrix. It adds no invariants beyond the matrix's own;
// the wrapper exists to carry Length and Normalize, which only make sense
// for row vectors. The zero value is not usable; construct via NewVector,
// FromMatrix or Between.
type Vector[T matrix.Number] struct {
	mat *matrix.Dense[T] // always 1×N, owned by the vector
}

// NewVector builds a vector from its coordinates.
// Errors: ErrEmptyVector when no coordinates are given.
func NewVector[T matrix.Number](coords ...T) (*Vector[T], error) {
	if len(coords) == 0 {
		return nil, ErrEmptyVector
	}
	m, err := matrix.NewFrom(1, len(coords), coords)
	if err != nil {
		return nil, err
	}

	return &Vector[T]{mat: m}, nil
}

// FromMatrix wraps an existing single-row matrix as a vector. The matrix is
// cloned, so later mutation of m does not affect the vector.
// Errors: ErrNilOperand, ErrNotVector.
func FromMatrix[T matrix.Number](m *matrix.Dense[T]) (*Vector[T], error) {
	if m == nil {
		return nil, ErrNilOperand
	}
	if m.Rows() != 1 {
		return nil, ErrNotVector
	}

	return &Vector[T]{mat: m.Clone()}, nil
}

// Between builds the vector connecting two points of equal dimension.
// The components are from − to: the REVERSE of the direction the argument
// names suggest. This orientation is a load-bearing convention across the
// module; swap the arguments for the forward direction.
// Errors: ErrNilOperand, ErrNotVector, ErrDimensionMismatch.
func Between[T matrix.Number](from, to *matrix.Dense[T]) (*Vector[T], error) {
	if from == nil || to == nil {
		return nil, ErrNilOperand
	}
	if from.Rows() != 1 || to.Rows() != 1 {
		return nil, ErrNotVector
	}
	if from.Cols() != to.Cols() {
		return nil, ErrDimensionMismatch
	}

	diff, err := matrix.Sub(from, to)
	if err != nil {
		return nil, err
	}

	return &Vector[T]{mat: diff}, nil
}

// Dim returns the number of coordinates.
func (v *Vector[T]) Dim() int { return v.mat.Cols() }

// Coord returns coordinate i.
// Errors: matrix.ErrOutOfRange.
func (v *Vector[T]) Coord(i int) (T, error) { return v.mat.At(0, i) }

// Mat returns the vector's underlying 1×N matrix as a clone, keeping the
// vector's storage private.
func (v *Vector[T]) Mat() *matrix.Dense[T] { return v.mat.Clone() }

// Length returns the Euclidean norm as a float64 regardless of T, computed
// as the square root of the single (0, 0) cell of v × vᵀ.
func (v *Vector[T]) Length() float64 {
	// A constructed vector is always a valid 1×N matrix, so none of these
	// steps can fail.
	tr, _ := matrix.Transpose(v.mat)
	sq, _ := matrix.Mul(v.mat, tr)
	dot, _ := sq.At(0, 0)

	return math.Sqrt(dot)
}

// Normalize returns a fresh unit-length float64 vector pointing the same
// way. A zero-length vector normalizes to the zero vector; that degenerate
// policy avoids a division fault and is relied on by callers.
func (v *Vector[T]) Normalize() *Vector[float64] {
	l := v.Length()

	coords := make([]float64, v.Dim())
	if l != 0 {
		var i int
		var c T
		for i = 0; i < v.Dim(); i++ {
			c, _ = v.mat.At(0, i) // i is always in range
			coords[i] = float64(c) / l
		}
	}

	m, _ := matrix.NewFrom(1, len(coords), coords)

	return &Vector[float64]{mat: m}
}

// Clone returns a deep copy of the vector.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{mat: v.mat.Clone()}
}
