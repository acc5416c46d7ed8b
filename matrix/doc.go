// SPDX-License-Identifier: MIT
// Package matrix provides a generic, fixed-shape, dense, row-major matrix
// over numeric scalars, together with the linear-algebra kernels the rest of
// the module is built on.
//
// What it offers:
//
//	▸ Dense[T]      — rows×cols container, shape fixed at construction,
//	                  flat row-major backing slice, zero-filled by default.
//	▸ Element access — At/Set with bounds checks that report the offending
//	                  index pair and the matrix shape; Row(r) exposes a row
//	                  as a live contiguous subslice.
//	▸ Iteration      — Values / ReverseValues walk storage order forward and
//	                  backward; ColumnCursor is a random-access cursor over
//	                  the full column-major order of the matrix.
//	▸ Kernels        — Add, Sub, AddAssign, SubAssign, Mul, Transpose,
//	                  Scale, Convert; deterministic loop orders throughout.
//
// The column cursor is the load-bearing abstraction: it tracks a single
// linear counter n ∈ [0, R·C] and maps it to storage as row = n mod R,
// col = n div R, offset row·C + col. Walking n from 0 to R·C visits the
// matrix in column-major order, which is exactly the row-major order of the
// transpose — Transpose is therefore a single linear copy, and Mul reads
// each right-hand column through the same cursor.
//
// Error contract: all user-triggered failures return package sentinels
// (ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrInvalidSize,
// ErrNilMatrix) matched via errors.Is; kernels wrap them with the operation
// name. No public entry point panics on bad input.
package matrix
