// SPDX-License-Identifier: MIT
// Package polyline: sentinel error set, matched via errors.Is.

package polyline

import "errors"

var (
	// ErrOutOfRange indicates a point/name index at or beyond the current
	// size.
	ErrOutOfRange = errors.New("polyline: index out of range")

	// ErrNilPolyline indicates a nil polyline argument to a merge.
	ErrNilPolyline = errors.New("polyline: nil polyline")

	// ErrSelfMerge indicates an attempt to move-merge a polyline into
	// itself, which would corrupt the shared buffers.
	ErrSelfMerge = errors.New("polyline: cannot move-merge a polyline into itself")

	// ErrNilPoint indicates a nil point passed to AddPoint.
	ErrNilPoint = errors.New("polyline: nil point")

	// ErrBadPoint indicates a point that is not a 1x3 matrix.
	ErrBadPoint = errors.New("polyline: point must be a 1x3 matrix")

	// ErrNilVector indicates a nil vector passed to Shift or Rotate.
	ErrNilVector = errors.New("polyline: nil vector")

	// ErrBadVector indicates a shift/rotation vector that is not
	// three-dimensional.
	ErrBadVector = errors.New("polyline: vector must have 3 coordinates")
)
