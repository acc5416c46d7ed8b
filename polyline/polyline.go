// SPDX-License-Identifier: MIT
// Package polyline: container core — storage layout, growth, append and the
// basic accessors.

package polyline

import (
	"fmt"

	"github.com/katalvlaran/wireframe/geometry"
	"github.com/katalvlaran/wireframe/matrix"
)

// GrowthIncrement is the fixed number of slots added per reallocation when
// an append outgrows the current capacity. Growth is linear, not doubling.
const GrowthIncrement = 5

// pointDims is the fixed dimensionality of stored points.
const pointDims = 3

// Polyline is an ordered sequence of (1×3 point, single-byte name) pairs.
// Both buffers are index-aligned, always share one capacity (len of either
// slice), and are reallocated together. size counts the live prefix.
// The zero value / New() is an empty polyline with capacity 0.
type Polyline[T matrix.Number] struct {
	points []*matrix.Dense[T] // len == capacity; live entries in [0, size)
	names  []byte             // len == capacity; index-aligned with points
	size   int
}

// New returns an empty polyline with no allocated capacity.
func New[T matrix.Number]() *Polyline[T] { return &Polyline[T]{} }

// Size returns the number of live points.
func (p *Polyline[T]) Size() int { return p.size }

// Cap returns the allocated slot count shared by both buffers.
func (p *Polyline[T]) Cap() int { return len(p.points) }

// reallocate moves both buffers into fresh allocations of newCap slots,
// preserving the live prefix. The two buffers change together or not at
// all: both are allocated before either is installed, so no intermediate
// state is ever observable.
func (p *Polyline[T]) reallocate(newCap int) {
	if newCap == len(p.points) {
		return
	}

	newPoints := make([]*matrix.Dense[T], newCap)
	newNames := make([]byte, newCap)
	copy(newPoints, p.points[:p.size])
	copy(newNames, p.names[:p.size])

	p.points = newPoints
	p.names = newNames
}

// AddPoint appends a clone of pt tagged with name. When the buffers are
// full, capacity grows by exactly GrowthIncrement slots first.
//
// The clone gives the polyline exclusive ownership: later mutation of the
// caller's matrix does not reach the stored point.
//
// Errors: ErrNilPoint, ErrBadPoint.
func (p *Polyline[T]) AddPoint(pt *matrix.Dense[T], name byte) error {
	if pt == nil {
		return ErrNilPoint
	}
	if pt.Rows() != 1 || pt.Cols() != pointDims {
		return fmt.Errorf("%dx%d: %w", pt.Rows(), pt.Cols(), ErrBadPoint)
	}

	if p.size == len(p.points) {
		p.reallocate(len(p.points) + GrowthIncrement)
	}

	p.points[p.size] = pt.Clone()
	p.names[p.size] = name
	p.size++

	return nil
}

// Point returns the stored point at index i as a live view; callers may
// mutate its coordinates in place but cannot change its shape.
// Errors: ErrOutOfRange.
func (p *Polyline[T]) Point(i int) (*matrix.Dense[T], error) {
	if i < 0 || i >= p.size {
		return nil, fmt.Errorf("point %d of %d: %w", i, p.size, ErrOutOfRange)
	}

	return p.points[i], nil
}

// Name returns the name byte of point i.
// Errors: ErrOutOfRange.
func (p *Polyline[T]) Name(i int) (byte, error) {
	if i < 0 || i >= p.size {
		return 0, fmt.Errorf("name %d of %d: %w", i, p.size, ErrOutOfRange)
	}

	return p.names[i], nil
}

// dist is the Euclidean distance between two stored points. Stored points
// are uniformly 1×3, so Distance cannot fail on them.
func dist[T matrix.Number](a, b *matrix.Dense[T]) float64 {
	d, _ := geometry.Distance(a, b)

	return d
}

// Length returns the total polyline length: the sum of Euclidean distances
// between consecutive points. Zero for fewer than two points.
func (p *Polyline[T]) Length() float64 {
	if p.size <= 1 {
		return 0
	}

	var total float64
	var i int
	for i = 1; i < p.size; i++ {
		total += dist(p.points[i-1], p.points[i])
	}

	return total
}

// Clone returns a deep copy with exact-size allocation (capacity == size),
// matching the copy lifecycle of the container.
func (p *Polyline[T]) Clone() *Polyline[T] {
	q := New[T]()
	if p.size == 0 {
		return q
	}

	q.points = make([]*matrix.Dense[T], p.size)
	q.names = make([]byte, p.size)
	var i int
	for i = 0; i < p.size; i++ {
		q.points[i] = p.points[i].Clone()
	}
	copy(q.names, p.names[:p.size])
	q.size = p.size

	return q
}

// Move transfers the buffers into a fresh polyline and leaves the receiver
// valid and empty (size 0, capacity 0).
func (p *Polyline[T]) Move() *Polyline[T] {
	q := &Polyline[T]{points: p.points, names: p.names, size: p.size}
	p.points, p.names, p.size = nil, nil, 0

	return q
}

// Equal reports whether two polylines hold the same point sequence. Names
// do not participate in equality; two polylines tracing the same geometry
// compare equal regardless of labeling.
func (p *Polyline[T]) Equal(other *Polyline[T]) bool {
	if other == nil || p.size != other.size {
		return false
	}
	var i int
	for i = 0; i < p.size; i++ {
		if !p.points[i].Equal(other.points[i]) {
			return false
		}
	}

	return true
}

// String renders the polyline as "name(x, y, z) ..." for diagnostics.
func (p *Polyline[T]) String() string {
	s := fmt.Sprintf("polyline[%d/%d]", p.size, len(p.points))
	var i int
	for i = 0; i < p.size; i++ {
		row, _ := p.points[i].Row(0) // stored points are always 1×3
		s += fmt.Sprintf(" %c(%v, %v, %v)", p.names[i], row[0], row[1], row[2])
	}

	return s
}
