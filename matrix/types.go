// SPDX-License-Identifier: MIT
// Package matrix: shared type constraints.

package matrix

// Number is the scalar capability required of a matrix element type: any
// fixed-width integer or floating-point kind, including named types whose
// underlying type is one of them (byte and rune qualify through uint8 and
// int32). Arithmetic kernels convert through float64 where a common result
// type is needed.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
