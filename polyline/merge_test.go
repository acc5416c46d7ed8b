// SPDX-License-Identifier: MIT
package polyline_test

import (
	"testing"

	"github.com/katalvlaran/wireframe/geometry"
	"github.com/katalvlaran/wireframe/polyline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exactCap rebuilds p with capacity == size via Clone, which allocates
// exact-size buffers. Lets tests pin a polyline into a specific capacity
// configuration.
func exactCap(p *polyline.Polyline[float64]) *polyline.Polyline[float64] {
	return p.Clone()
}

// assertSequence checks the merged order: receiver's original points first,
// donor's appended in their original order, names aligned.
func assertSequence(t *testing.T, p *polyline.Polyline[float64], names string, xs ...float64) {
	t.Helper()
	require.Equal(t, len(xs), p.Size())
	for i, x := range xs {
		got := coordsOf(t, p, i)
		assert.Equal(t, x, got[0], "point %d out of order", i)
		name, err := p.Name(i)
		require.NoError(t, err)
		assert.Equal(t, names[i], name, "name %d out of order", i)
	}
}

// TestMerge_Copy verifies the copy variant: donor untouched, exact growth
// by the donor's size when capacity is insufficient.
func TestMerge_Copy(t *testing.T) {
	recv := buildLine(t,
		[3]float64{0, 0, 0}, [3]float64{1, 0, 0},
		[3]float64{2, 0, 0}, [3]float64{3, 0, 0},
	) // size 4, cap 5
	donor := buildLine(t, [3]float64{10, 0, 0}, [3]float64{11, 0, 0}, [3]float64{12, 0, 0})

	require.NoError(t, recv.Merge(donor))

	assertSequence(t, recv, "ABCDABC", 0, 1, 2, 3, 10, 11, 12)
	assert.Equal(t, 8, recv.Cap(), "insufficient capacity grows by exactly the donor's size")
	assert.Equal(t, 3, donor.Size(), "copy merge leaves the donor untouched")

	// Donor's points were cloned: mutating the donor afterwards must not
	// reach the receiver.
	pt, err := donor.Point(0)
	require.NoError(t, err)
	require.NoError(t, pt.Set(0, 0, 999))
	assert.Equal(t, 10.0, coordsOf(t, recv, 4)[0])
}

// TestMerge_CopySelf verifies self-merge through the copy variant doubles
// the polyline.
func TestMerge_CopySelf(t *testing.T) {
	p := buildLine(t, [3]float64{1, 0, 0}, [3]float64{2, 0, 0})
	require.NoError(t, p.Merge(p))
	assertSequence(t, p, "ABAB", 1, 2, 1, 2)
}

// TestMergeMove_ReceiverHasRoom exercises strategy 1: the receiver's spare
// capacity absorbs the donor without any reallocation or buffer swap.
func TestMergeMove_ReceiverHasRoom(t *testing.T) {
	recv := buildLine(t, [3]float64{0, 0, 0}, [3]float64{1, 0, 0}) // size 2, cap 5
	donor := exactCap(buildLine(t, [3]float64{10, 0, 0}, [3]float64{11, 0, 0}))
	require.Equal(t, 2, donor.Cap())

	require.NoError(t, recv.MergeMove(donor))

	assertSequence(t, recv, "ABAB", 0, 1, 10, 11)
	assert.Equal(t, 5, recv.Cap(), "no reallocation when the receiver already has room")
	assert.Equal(t, 0, donor.Size(), "donor must end consumed")
}

// TestMergeMove_DonorHasRoom exercises strategy 2: the donor's buffer is
// large enough for both, so the receiver takes it over wholesale.
func TestMergeMove_DonorHasRoom(t *testing.T) {
	recv := exactCap(buildLine(t, [3]float64{0, 0, 0}, [3]float64{1, 0, 0}))
	require.Equal(t, 2, recv.Cap())
	donor := buildLine(t, [3]float64{10, 0, 0}, [3]float64{11, 0, 0}) // size 2, cap 5

	require.NoError(t, recv.MergeMove(donor))

	assertSequence(t, recv, "ABAB", 0, 1, 10, 11)
	assert.Equal(t, 5, recv.Cap(), "receiver must have taken over the donor's larger buffer")
	assert.Equal(t, 0, donor.Size(), "donor must end consumed")
}

// TestMergeMove_NeitherHasRoom exercises strategy 3: reallocate the
// receiver to exactly the combined size.
func TestMergeMove_NeitherHasRoom(t *testing.T) {
	recv := exactCap(buildLine(t, [3]float64{0, 0, 0}, [3]float64{1, 0, 0}))
	donor := exactCap(buildLine(t, [3]float64{10, 0, 0}, [3]float64{11, 0, 0}, [3]float64{12, 0, 0}))
	require.Equal(t, 2, recv.Cap())
	require.Equal(t, 3, donor.Cap())

	require.NoError(t, recv.MergeMove(donor))

	assertSequence(t, recv, "ABABC", 0, 1, 10, 11, 12)
	assert.Equal(t, 5, recv.Cap(), "reallocation is to exactly the combined size")
	assert.Equal(t, 0, donor.Size(), "donor must end consumed")
}

// TestMergeMove_DonorStaysUsable verifies the consumed donor is still a
// valid polyline in every strategy.
func TestMergeMove_DonorStaysUsable(t *testing.T) {
	for name, mk := range map[string]func(t *testing.T) (*polyline.Polyline[float64], *polyline.Polyline[float64]){
		"receiver has room": func(t *testing.T) (*polyline.Polyline[float64], *polyline.Polyline[float64]) {
			return buildLine(t, [3]float64{0, 0, 0}), exactCap(buildLine(t, [3]float64{1, 0, 0}))
		},
		"donor has room": func(t *testing.T) (*polyline.Polyline[float64], *polyline.Polyline[float64]) {
			return exactCap(buildLine(t, [3]float64{0, 0, 0})), buildLine(t, [3]float64{1, 0, 0})
		},
		"neither has room": func(t *testing.T) (*polyline.Polyline[float64], *polyline.Polyline[float64]) {
			return exactCap(buildLine(t, [3]float64{0, 0, 0})), exactCap(buildLine(t, [3]float64{1, 0, 0}))
		},
	} {
		t.Run(name, func(t *testing.T) {
			recv, donor := mk(t)
			require.NoError(t, recv.MergeMove(donor))
			assert.Equal(t, 0, donor.Size())

			require.NoError(t, donor.AddPoint(geometry.NewPoint3(7.0, 7.0, 7.0), 'Z'))
			assert.Equal(t, 1, donor.Size(), "consumed donor must accept new points")
			assert.Equal(t, 2, recv.Size())
		})
	}
}

// TestMergeMove_Validation covers nil donors and the self-merge guard.
func TestMergeMove_Validation(t *testing.T) {
	p := buildLine(t, [3]float64{0, 0, 0})

	assert.ErrorIs(t, p.MergeMove(nil), polyline.ErrNilPolyline)
	assert.ErrorIs(t, p.MergeMove(p), polyline.ErrSelfMerge)
	assert.ErrorIs(t, p.Merge(nil), polyline.ErrNilPolyline)

	// Empty donor is a no-op, not an error.
	empty := polyline.New[float64]()
	require.NoError(t, p.MergeMove(empty))
	assert.Equal(t, 1, p.Size())
}
