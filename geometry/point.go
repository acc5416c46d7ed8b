// SPDX-License-Identifier: MIT
// Package geometry: point helpers. A point IS a 1×N matrix; these functions
// only spare callers the constructor boilerplate for the 3D case.

package geometry

import "github.com/katalvlaran/wireframe/matrix"

// NewPoint3 builds a 1×3 point matrix from three coordinates.
func NewPoint3[T matrix.Number](x, y, z T) *matrix.Dense[T] {
	// A 1×3 shape with exactly three values cannot fail construction.
	m, _ := matrix.NewFrom(1, 3, []T{x, y, z})

	return m
}

// Distance returns the Euclidean distance between two points of equal
// dimension. Symmetric, so the Between orientation quirk is invisible here.
// Errors: ErrNilOperand, ErrNotVector, ErrDimensionMismatch.
func Distance[T matrix.Number](a, b *matrix.Dense[T]) (float64, error) {
	v, err := Between(a, b)
	if err != nil {
		return 0, err
	}

	return v.Length(), nil
}
