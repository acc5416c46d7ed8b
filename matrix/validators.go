// SPDX-License-Identifier: MIT
// Package matrix: central validators.
// Every kernel funnels its preconditions through these helpers so that the
// same condition always yields the same sentinel with the same diagnostic
// text, regardless of which operation tripped it.

package matrix

import "fmt"

// ValidateNotNil rejects a nil operand.
// Errors: ErrNilMatrix.
func ValidateNotNil[T Number](m *Dense[T]) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateBinarySameShape rejects nil operands and shape mismatches for
// elementwise binary kernels (Add, Sub and their in-place forms).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateBinarySameShape[T, U Number](a *Dense[T], b *Dense[U]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible rejects nil operands and inner-dimension mismatches
// for the matrix product (a.Cols must equal b.Rows).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible[T, U Number](a *Dense[T], b *Dense[U]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.c != b.r {
		return fmt.Errorf("%dx%d x %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}

// ValidateColumn rejects a nil matrix and a column index outside [0, cols).
// Errors: ErrNilMatrix, ErrOutOfRange.
func ValidateColumn[T Number](m *Dense[T], col int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if col < 0 || col >= m.c {
		return fmt.Errorf("column %d of matrix %dx%d: %w", col, m.r, m.c, ErrOutOfRange)
	}

	return nil
}
