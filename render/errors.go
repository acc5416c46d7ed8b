// SPDX-License-Identifier: MIT
// Package render: sentinel error set, matched via errors.Is.

package render

import "errors"

var (
	// ErrBadSize indicates a buffer shape too small to render into; the
	// grid needs at least one drawable column plus the newline column.
	ErrBadSize = errors.New("render: buffer needs width >= 2 and height >= 1")

	// ErrBadProjection indicates a projection matrix that is not 3x2.
	ErrBadProjection = errors.New("render: projection matrix must be 3x2")

	// ErrNilPoint indicates a nil point passed to AddLine.
	ErrNilPoint = errors.New("render: nil point")

	// ErrBadPoint indicates a point that is not a 1x3 matrix.
	ErrBadPoint = errors.New("render: point must be a 1x3 matrix")

	// ErrNilPolyline indicates a nil polyline passed to AddPolyline.
	ErrNilPolyline = errors.New("render: nil polyline")
)
