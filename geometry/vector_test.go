// SPDX-License-Identifier: MIT
package geometry_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/wireframe/geometry"
	"github.com/katalvlaran/wireframe/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewVector_Empty verifies that a vector needs at least one coordinate.
func TestNewVector_Empty(t *testing.T) {
	_, err := geometry.NewVector[float64]()
	assert.ErrorIs(t, err, geometry.ErrEmptyVector)
}

// TestBetween_Orientation pins the two-point constructor's convention:
// the components are from − to, not to − from.
func TestBetween_Orientation(t *testing.T) {
	from := geometry.NewPoint3(5.0, 7.0, 9.0)
	to := geometry.NewPoint3(1.0, 2.0, 3.0)

	v, err := geometry.Between(from, to)
	require.NoError(t, err)

	x, _ := v.Coord(0)
	y, _ := v.Coord(1)
	z, _ := v.Coord(2)
	assert.Equal(t, 4.0, x, "component 0 must be from-to")
	assert.Equal(t, 5.0, y, "component 1 must be from-to")
	assert.Equal(t, 6.0, z, "component 2 must be from-to")
}

// TestBetween_Validation covers nil operands, non-row matrices and
// mismatched dimensions.
func TestBetween_Validation(t *testing.T) {
	p := geometry.NewPoint3(1.0, 2.0, 3.0)
	tall, err := matrix.NewDense[float64](2, 3)
	require.NoError(t, err)
	wide, err := matrix.NewDense[float64](1, 4)
	require.NoError(t, err)

	_, err = geometry.Between[float64](nil, p)
	assert.ErrorIs(t, err, geometry.ErrNilOperand)
	_, err = geometry.Between(p, tall)
	assert.ErrorIs(t, err, geometry.ErrNotVector)
	_, err = geometry.Between(p, wide)
	assert.ErrorIs(t, err, geometry.ErrDimensionMismatch)
}

// TestLength_Pythagorean verifies the norm on a classic 3-4-5 triple and
// that integer vectors still produce a float64 length.
func TestLength_Pythagorean(t *testing.T) {
	vf, err := geometry.NewVector(3.0, 4.0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, vf.Length())

	vi, err := geometry.NewVector(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 5.0, vi.Length(), "integer coordinates must still yield an exact float64 norm")

	unit, err := geometry.NewVector(1.0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, unit.Length())
}

// TestNormalize verifies unit length for a regular vector and the
// zero-in-zero-out policy for the degenerate case.
func TestNormalize(t *testing.T) {
	v, err := geometry.NewVector(0.0, 3.0, 4.0)
	require.NoError(t, err)

	n := v.Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-12, "normalized vector must have unit length")
	y, _ := n.Coord(1)
	z, _ := n.Coord(2)
	assert.InDelta(t, 0.6, y, 1e-12)
	assert.InDelta(t, 0.8, z, 1e-12)

	zero, err := geometry.NewVector(0.0, 0.0, 0.0)
	require.NoError(t, err)
	nz := zero.Normalize()
	assert.Equal(t, 0.0, nz.Length(), "zero vector must normalize to the zero vector, not error")
	for i := 0; i < nz.Dim(); i++ {
		c, cerr := nz.Coord(i)
		require.NoError(t, cerr)
		assert.False(t, math.IsNaN(c), "no NaN may leak from normalizing zero")
		assert.Equal(t, 0.0, c)
	}
}

// TestFromMatrix verifies wrapping validation and that the vector owns a
// private copy of the matrix.
func TestFromMatrix(t *testing.T) {
	m, err := matrix.NewFrom(1, 2, []float64{3, 4})
	require.NoError(t, err)

	v, err := geometry.FromMatrix(m)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v.Length())

	// Mutating the source afterwards must not reach the vector.
	require.NoError(t, m.Set(0, 0, 300))
	assert.Equal(t, 5.0, v.Length(), "vector must own a private copy")

	tall, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)
	_, err = geometry.FromMatrix(tall)
	assert.ErrorIs(t, err, geometry.ErrNotVector)
	_, err = geometry.FromMatrix[float64](nil)
	assert.ErrorIs(t, err, geometry.ErrNilOperand)
}

// TestDistance_Symmetric verifies Distance(a, b) == Distance(b, a).
func TestDistance_Symmetric(t *testing.T) {
	a := geometry.NewPoint3(0.0, 0.0, 0.0)
	b := geometry.NewPoint3(1.0, 2.0, 2.0)

	d1, err := geometry.Distance(a, b)
	require.NoError(t, err)
	d2, err := geometry.Distance(b, a)
	require.NoError(t, err)

	assert.Equal(t, 3.0, d1)
	assert.Equal(t, d1, d2, "distance must be symmetric")
}

// TestCoord_OutOfRange verifies the matrix sentinel surfaces unchanged.
func TestCoord_OutOfRange(t *testing.T) {
	v, err := geometry.NewVector(1.0, 2.0)
	require.NoError(t, err)
	_, err = v.Coord(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}
