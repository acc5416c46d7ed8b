// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No public operation panics on user-triggered error
// conditions; panics are reserved for programmer errors in private helpers.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (r <= 0,
	// c <= 0, or an element count that does not fit in int). Constructors
	// must validate before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row, column, or cursor
	// position) is outside valid bounds. Public indexers (At/Set/Row)
	// MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidSize is returned when constructing from an element range
	// that holds more values than the requested shape can store.
	ErrInvalidSize = errors.New("matrix: too many elements for shape")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was
	// passed where a constructed matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
