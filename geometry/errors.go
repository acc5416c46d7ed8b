// SPDX-License-Identifier: MIT
// Package geometry: sentinel error set. Matched via errors.Is; the matrix
// package's sentinels (ErrOutOfRange in particular) also surface through
// coordinate accessors unchanged.

package geometry

import "errors"

var (
	// ErrNilOperand indicates a nil matrix or vector argument.
	ErrNilOperand = errors.New("geometry: nil operand")

	// ErrNotVector indicates a matrix with more than one row was passed
	// where a row vector (1×N) is required.
	ErrNotVector = errors.New("geometry: matrix is not a single-row vector")

	// ErrDimensionMismatch indicates two vectors/points of differing
	// dimension were combined.
	ErrDimensionMismatch = errors.New("geometry: dimension mismatch")

	// ErrEmptyVector indicates a vector was requested with no coordinates.
	ErrEmptyVector = errors.New("geometry: vector needs at least one coordinate")
)
