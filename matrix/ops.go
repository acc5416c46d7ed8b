// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels over Dense.
// All kernels perform strict fail-fast validation through the central
// validators, allocate exactly one result, never mutate their operands
// (except the *Assign forms, which mutate only the receiver), and keep
// deterministic loop orders for reproducible floating-point rounding.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opAddAssign = "AddAssign"
	opSubAssign = "SubAssign"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opConvert   = "Convert"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so callers can still match sentinels with errors.Is.
// Call only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a ± b. Shapes must match. The result
// takes the LEFT operand's element type; right-hand elements are converted
// through T before combining, which is the closest Go rendering of a
// mixed-type elementwise operation returning the left type.
// Internal helper for Add/Sub to share validation and the flat loop.
func addSub[T, U Number](a *Dense[T], b *Dense[U], add bool, opTag string) (*Dense[T], error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense
	res, err := NewDense[T](a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Single flat loop 0..n-1 over the backing slices, deterministic order.
	// Two branches rather than a sign multiplier: unsigned element types
	// have no -1.
	var idx int
	if add {
		for idx = 0; idx < len(res.data); idx++ {
			res.data[idx] = a.data[idx] + T(b.data[idx])
		}
	} else {
		for idx = 0; idx < len(res.data); idx++ {
			res.data[idx] = a.data[idx] - T(b.data[idx])
		}
	}

	return res, nil
}

// Add computes the elementwise sum C = A + B and returns a fresh Dense.
//
// Implementation:
//   - Stage 1: Validate both operands are non-nil and share a shape.
//   - Stage 2: Single flat loop 0..n-1 over the backing slices.
//
// Inputs:
//   - a: left operand; the result takes its element type T.
//   - b: right operand of any Number type U with the same shape.
//
// Returns:
//   - *Dense[T]: new matrix with C[i,j] = A[i,j] + T(B[i,j]).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the result. Operands are not mutated.
func Add[T, U Number](a *Dense[T], b *Dense[U]) (*Dense[T], error) {
	return addSub(a, b, true, opAdd)
}

// Sub computes the elementwise difference C = A - B and returns a fresh
// Dense. Same contract as Add with subtraction; note that for unsigned T
// the subtraction wraps exactly as the scalar operation would.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Sub").
func Sub[T, U Number](a *Dense[T], b *Dense[U]) (*Dense[T], error) {
	return addSub(a, b, false, opSub)
}

// AddAssign performs dst += src in place. Defined via Add so there is a
// single addition kernel; the freshly computed result is copied back into
// dst's storage. dst keeps its prior state on error.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "AddAssign").
func AddAssign[T, U Number](dst *Dense[T], src *Dense[U]) error {
	res, err := addSub(dst, src, true, opAddAssign)
	if err != nil {
		return err
	}
	copy(dst.data, res.data)

	return nil
}

// SubAssign performs dst -= src in place, via the Sub kernel.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "SubAssign").
func SubAssign[T, U Number](dst *Dense[T], src *Dense[U]) error {
	res, err := addSub(dst, src, false, opSubAssign)
	if err != nil {
		return err
	}
	copy(dst.data, res.data)

	return nil
}

// Mul computes the matrix product C = A × B, (r×c) × (c×k) → (r×k).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (a.Cols == b.Rows). Allocate the
//     float64 result.
//   - Stage 2: For each result cell in row-major order, take A's row i as a
//     contiguous slice and walk B's column k with a ColumnCursor, summing
//     float64(a[i,j]) * float64(b[j,k]) over j.
//
// Behavior highlights:
//   - The element type of the result is float64, the common arithmetic type
//     of every mixed product in this module (Go performs no implicit numeric
//     promotion, so the promotion rule is fixed here rather than inferred).
//   - Accumulation proceeds in the RESULT's row-major traversal order for
//     reproducible floating-point rounding.
//
// Inputs:
//   - a: left operand, r×c, any Number type.
//   - b: right operand, c×k, any Number type.
//
// Returns:
//   - *Dense[float64]: new r×k product matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r*c*k), Space O(r*k) for the result.
func Mul[T, U Number](a *Dense[T], b *Dense[U]) (*Dense[float64], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := NewDense[float64](a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	var row []T
	var cur ColumnCursor[U]
	var sum float64
	for i = 0; i < a.r; i++ {
		row = a.data[i*a.c : (i+1)*a.c] // contiguous row view of A
		for k = 0; k < b.c; k++ {
			cur, err = ColumnBegin(b, k)
			if err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			sum = 0
			for j = 0; j < a.c; j++ { // inner product, ordinary multiply-then-sum
				sum += float64(row[j]) * float64(cur.deref())
				cur = cur.Next()
			}
			res.data[i*b.c+k] = sum
		}
	}

	return res, nil
}

// Transpose returns a new c×r matrix holding m's transpose.
//
// Implementation:
//   - Stage 1: Validate the operand. Allocate the c×r result.
//   - Stage 2: Walk m in full column-major order with a single ColumnCursor
//     (n running 0..r*c) while writing the result linearly in its own
//     row-major order.
//
// The source's column-major traversal order IS the transpose's row-major
// order, so this one linear copy performs the whole transpose with no index
// remapping at the copy site.
//
// Errors:
//   - ErrNilMatrix (wrapped with "Transpose").
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the result.
func Transpose[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res, err := NewDense[T](m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	cur, err := ColumnBegin(m, 0)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var idx int
	for idx = 0; idx < len(res.data); idx++ {
		res.data[idx] = cur.deref()
		cur = cur.Next()
	}

	return res, nil
}

// Scale returns a new float64 matrix with every element of m multiplied by
// factor. The float64 result keeps Scale composable with Mul and Convert.
//
// Errors:
//   - ErrNilMatrix (wrapped with "Scale").
func Scale[T Number](m *Dense[T], factor float64) (*Dense[float64], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res, err := NewDense[float64](m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	var idx int
	for idx = 0; idx < len(res.data); idx++ {
		res.data[idx] = float64(m.data[idx]) * factor
	}

	return res, nil
}

// Convert returns a new matrix of element type U with every element of m
// converted via the ordinary Go scalar conversion U(v). Instantiate the
// target type explicitly: Convert[float64](m).
//
// Errors:
//   - ErrNilMatrix (wrapped with "Convert").
func Convert[U, T Number](m *Dense[T]) (*Dense[U], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConvert, err)
	}

	res, err := NewDense[U](m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opConvert, err)
	}
	var idx int
	for idx = 0; idx < len(res.data); idx++ {
		res.data[idx] = U(m.data[idx])
	}

	return res, nil
}
