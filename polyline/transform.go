// SPDX-License-Identifier: MIT
// Package polyline: geometric transforms — translation and axis rotation.

package polyline

import (
	"math"

	"github.com/katalvlaran/wireframe/geometry"
	"github.com/katalvlaran/wireframe/matrix"
)

// Shift translates every point in place by adding v's components.
// Errors: ErrNilVector, ErrBadVector.
func (p *Polyline[T]) Shift(v *geometry.Vector[T]) error {
	if v == nil {
		return ErrNilVector
	}
	if v.Dim() != pointDims {
		return ErrBadVector
	}

	vm := v.Mat()
	var i int
	for i = 0; i < p.size; i++ {
		// Stored points and vm are both 1×3, so AddAssign cannot fail.
		if err := matrix.AddAssign(p.points[i], vm); err != nil {
			return err
		}
	}

	return nil
}

// Rotate rotates every point around the given axis by angleRad radians,
// replacing each point in place.
//
// Implementation:
//   - Stage 1: Normalize the axis implicitly by dividing each component by
//     the axis length. There is deliberately no zero-length guard here: a
//     zero axis propagates NaN into the rotated coordinates exactly as the
//     component divisions dictate. Callers that need a guard normalize
//     through geometry.Vector first.
//   - Stage 2: Build the 3×3 Rodrigues rotation matrix laid out for ROW
//     vectors, so each point rotates by right-multiplication p × R.
//   - Stage 3: Convert each point to float64, multiply, convert back to T.
//
// Errors: ErrNilVector, ErrBadVector.
func (p *Polyline[T]) Rotate(axis *geometry.Vector[float64], angleRad float64) error {
	if axis == nil {
		return ErrNilVector
	}
	if axis.Dim() != pointDims {
		return ErrBadVector
	}

	l := axis.Length()
	ax, _ := axis.Coord(0) // dims validated above
	ay, _ := axis.Coord(1)
	az, _ := axis.Coord(2)
	x, y, z := ax/l, ay/l, az/l

	cos, sin := math.Cos(angleRad), math.Sin(angleRad)
	k := 1 - cos

	// Rodrigues matrix in row-vector convention.
	rot, err := matrix.NewFrom(pointDims, pointDims, []float64{
		cos + x*x*k, y*x*k + z*sin, z*x*k - y*sin,
		x*y*k - z*sin, cos + y*y*k, z*y*k + x*sin,
		x*z*k + y*sin, y*z*k - x*sin, cos + z*z*k,
	})
	if err != nil {
		return err
	}

	var i int
	for i = 0; i < p.size; i++ {
		pf, cerr := matrix.Convert[float64](p.points[i])
		if cerr != nil {
			return cerr
		}
		rotated, merr := matrix.Mul(pf, rot)
		if merr != nil {
			return merr
		}
		back, berr := matrix.Convert[T](rotated)
		if berr != nil {
			return berr
		}
		p.points[i] = back
	}

	return nil
}
