// SPDX-License-Identifier: MIT
// Package matrix: ColumnCursor — a synthetic random-access cursor over the
// full column-major order of a Dense matrix.
//
// The cursor is a single linear counter n in [0, R*C]. Dereferencing maps
//
//	row    = n mod R
//	col    = n div R
//	offset = row*C + col
//
// so stepping n forward walks column 0 top to bottom, then column 1, and so
// on. Every random-access law (advance, retreat, arbitrary offset, distance,
// ordering, equality) reduces to integer arithmetic on n alone, which is
// what lets Transpose and Mul be written once against this contract.

package matrix

import "fmt"

// cursorErrorf wraps ErrOutOfRange with the offending position and the valid
// dereference range of the cursor's matrix.
func cursorErrorf(method string, n, limit int) error {
	return fmt.Errorf("ColumnCursor.%s: position %d is outside [0, %d): %w",
		method, n, limit, ErrOutOfRange)
}

// ColumnCursor is a value-type cursor; Next, Prev and Offset return a moved
// copy rather than mutating in place, so cursors can be saved and compared
// freely. The zero value is not usable; construct via ColumnBegin/ColumnEnd.
type ColumnCursor[T Number] struct {
	m *Dense[T]
	n int // linear column-major position, 0..r*c inclusive (r*c = one-past-end)
}

// ColumnBegin returns a cursor positioned at the top of column col,
// i.e. n = R*col, dereferencing to m[0, col].
// Errors: ErrNilMatrix, ErrOutOfRange.
func ColumnBegin[T Number](m *Dense[T], col int) (ColumnCursor[T], error) {
	if err := ValidateColumn(m, col); err != nil {
		return ColumnCursor[T]{}, err
	}

	return ColumnCursor[T]{m: m, n: m.r * col}, nil
}

// ColumnEnd returns the one-past-the-bottom cursor of column col,
// i.e. n = R*(col+1). For col = Cols()-1 this is the one-past-the-end
// position of the whole column-major walk and must not be dereferenced.
// Errors: ErrNilMatrix, ErrOutOfRange.
func ColumnEnd[T Number](m *Dense[T], col int) (ColumnCursor[T], error) {
	if err := ValidateColumn(m, col); err != nil {
		return ColumnCursor[T]{}, err
	}

	return ColumnCursor[T]{m: m, n: m.r * (col + 1)}, nil
}

// Pos returns the cursor's linear column-major position n.
func (c ColumnCursor[T]) Pos() int { return c.n }

// Row returns the storage row the cursor dereferences to (n mod R).
func (c ColumnCursor[T]) Row() int { return c.n % c.m.r }

// Col returns the storage column the cursor dereferences to (n div R).
func (c ColumnCursor[T]) Col() int { return c.n / c.m.r }

// deref reads the current element without a bounds check. Kernels call it
// only after establishing 0 <= n < r*c for the whole walk.
func (c ColumnCursor[T]) deref() T {
	return c.m.data[(c.n%c.m.r)*c.m.c+c.n/c.m.r]
}

// Value reads the element under the cursor.
// Errors: ErrOutOfRange when the cursor sits at or past one-past-the-end.
func (c ColumnCursor[T]) Value() (T, error) {
	if c.n < 0 || c.n >= len(c.m.data) {
		var zero T
		return zero, cursorErrorf("Value", c.n, len(c.m.data))
	}

	return c.deref(), nil
}

// Set writes v through the cursor into the underlying matrix.
// Errors: ErrOutOfRange when the cursor sits at or past one-past-the-end.
func (c ColumnCursor[T]) Set(v T) error {
	if c.n < 0 || c.n >= len(c.m.data) {
		return cursorErrorf("Set", c.n, len(c.m.data))
	}
	c.m.data[(c.n%c.m.r)*c.m.c+c.n/c.m.r] = v

	return nil
}

// Next returns a copy advanced by one position.
func (c ColumnCursor[T]) Next() ColumnCursor[T] {
	c.n++
	return c
}

// Prev returns a copy retreated by one position.
func (c ColumnCursor[T]) Prev() ColumnCursor[T] {
	c.n--
	return c
}

// Offset returns a copy moved by k positions (k may be negative).
func (c ColumnCursor[T]) Offset(k int) ColumnCursor[T] {
	c.n += k
	return c
}

// At reads the element k positions away without moving the cursor;
// c.At(k) is equivalent to c.Offset(k).Value().
func (c ColumnCursor[T]) At(k int) (T, error) {
	return c.Offset(k).Value()
}

// Distance returns the number of positions from c to other, i.e.
// other.Pos() - c.Pos(). Both cursors must address the same matrix.
func (c ColumnCursor[T]) Distance(other ColumnCursor[T]) int {
	return other.n - c.n
}

// Equal reports whether two cursors address the same matrix at the same
// position.
func (c ColumnCursor[T]) Equal(other ColumnCursor[T]) bool {
	return c.m == other.m && c.n == other.n
}

// Less orders cursors over the same matrix by position.
func (c ColumnCursor[T]) Less(other ColumnCursor[T]) bool {
	return c.m == other.m && c.n < other.n
}
