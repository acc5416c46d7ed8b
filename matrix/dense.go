// SPDX-License-Identifier: MIT
// Package matrix: Dense — the concrete row-major container.
// Dense stores rows*cols elements of a Number type in a flat slice for
// cache friendliness. The shape is fixed at construction and never changes.

package matrix

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// boundsErrorf wraps ErrOutOfRange with method context, the offending index
// pair and the declared shape, matching the diagnostic contract of At/Set.
func boundsErrorf(method string, row, col, r, c int) error {
	return fmt.Errorf("Dense.%s: index [%d, %d] is out of bounds for matrix %dx%d: %w",
		method, row, col, r, c, ErrOutOfRange)
}

// Dense is a row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T Number] struct {
	r, c int // number of rows and columns, fixed after construction
	data []T // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0 and rows*cols fits in int.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Reject element counts that overflow the addressable range.
	if rows > math.MaxInt/cols {
		return nil, ErrBadShape
	}
	// Allocate flat slice (zero-filled by make)
	data := make([]T, rows*cols)

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// NewFilled creates an r×c Dense with every element set to v.
// Complexity: O(r*c).
func NewFilled[T Number](rows, cols int, v T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	var i int
	for i = range m.data {
		m.data[i] = v
	}

	return m, nil
}

// NewFrom creates an r×c Dense from a value range in row-major order.
// Stage 1 (Validate): shape must be valid; len(vals) must not exceed r*c.
// Stage 2 (Execute): copy the range; any tail beyond len(vals) stays zero.
// Errors: ErrBadShape, ErrInvalidSize.
// Complexity: O(r*c).
func NewFrom[T Number](rows, cols int, vals []T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(vals) > len(m.data) {
		return nil, fmt.Errorf("NewFrom: %d values for matrix %dx%d: %w",
			len(vals), rows, cols, ErrInvalidSize)
	}
	copy(m.data, vals)

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int { return m.c }

// Len returns the total element count rows*cols.
func (m *Dense[T]) Len() int { return len(m.data) }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// wrapped with the caller's method name for diagnostics.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, boundsErrorf(method, row, col, m.r, m.c)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange (wrapped with the index pair and shape).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Errors: ErrOutOfRange (wrapped with the index pair and shape).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns row r as a live subslice of the backing storage. Mutating the
// slice mutates the matrix. Row-major storage makes this a contiguous view,
// so row traversal costs nothing beyond slicing.
// Errors: ErrOutOfRange.
func (m *Dense[T]) Row(r int) ([]T, error) {
	if r < 0 || r >= m.r {
		return nil, boundsErrorf("Row", r, 0, m.r, m.c)
	}

	return m.data[r*m.c : (r+1)*m.c], nil
}

// Values yields every element in row-major storage order, front to back.
func (m *Dense[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		var i int
		for i = 0; i < len(m.data); i++ {
			if !yield(m.data[i]) {
				return
			}
		}
	}
}

// ReverseValues yields every element in reverse storage order, back to front.
func (m *Dense[T]) ReverseValues() iter.Seq[T] {
	return func(yield func(T) bool) {
		var i int
		for i = len(m.data) - 1; i >= 0; i-- {
			if !yield(m.data[i]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and other have the same shape and all elements
// compare equal pairwise. A nil other is never equal.
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	var i int
	for i = 0; i < len(m.data); i++ {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging: one bracketed line per
// row, values comma-separated.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
