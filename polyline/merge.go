// SPDX-License-Identifier: MIT
// Package polyline: copy and move merge.
//
// The copy merge is the simple one: clone the donor's tail onto the
// receiver, growing by exactly the donor's size when needed. The move merge
// is the allocation-avoiding one: it reuses whichever side's spare capacity
// can absorb the combined sequence, allocating only when neither can.

package polyline

// Merge appends clones of other's points and names onto the receiver.
// When the receiver's capacity cannot hold both sequences it grows by
// exactly other.Size() slots (not to a GrowthIncrement boundary). The donor
// is left untouched. Merging a polyline into itself doubles it.
//
// Errors: ErrNilPolyline.
func (p *Polyline[T]) Merge(other *Polyline[T]) error {
	if other == nil {
		return ErrNilPolyline
	}
	if other.size == 0 {
		return nil
	}

	// Capture before any reallocation: with p == other the donor aliases
	// the receiver and its fields move underneath us.
	n := other.size
	if len(p.points) < p.size+n {
		p.reallocate(len(p.points) + n)
	}

	var i int
	for i = 0; i < n; i++ {
		p.points[p.size+i] = other.points[i].Clone()
		p.names[p.size+i] = other.names[i]
	}
	p.size += n

	return nil
}

// moveTail transfers other's live entries onto p's tail without cloning and
// leaves other consumed. p must already have room.
func (p *Polyline[T]) moveTail(other *Polyline[T]) {
	var i int
	for i = 0; i < other.size; i++ {
		p.points[p.size+i] = other.points[i]
		p.names[p.size+i] = other.names[i]
		other.points[i] = nil // ownership moved to p
	}
	p.size += other.size
	other.size = 0
}

// MergeMove appends other's points onto the receiver by transferring
// ownership instead of cloning, choosing among three strategies in order:
//
//  1. Receiver has room: move the donor's entries onto the receiver's tail.
//  2. Donor has room: shift the donor's entries rightward inside its own
//     buffer by the receiver's size, move the receiver's entries into the
//     gap at the front, then swap the two polylines' buffers wholesale —
//     the donor's larger buffer becomes the receiver's. No allocation.
//  3. Neither has room: reallocate the receiver to exactly the combined
//     size and move both sequences in.
//
// In every case the final order is the receiver's original elements
// followed by the donor's, and the donor ends consumed: size 0, still
// valid, holding no references to the transferred points. The whole
// operation is a single atomic step from the caller's perspective; no
// partial-merge state is observable afterward.
//
// Errors: ErrNilPolyline, ErrSelfMerge.
func (p *Polyline[T]) MergeMove(other *Polyline[T]) error {
	if other == nil {
		return ErrNilPolyline
	}
	if other == p {
		return ErrSelfMerge
	}
	if other.size == 0 {
		return nil
	}

	total := p.size + other.size

	// Case 1: the receiver's spare capacity absorbs the donor.
	if len(p.points) >= total {
		p.moveTail(other)
		return nil
	}

	// Case 2: the donor's spare capacity absorbs the receiver. Shift the
	// donor's entries right to open a gap at the front (copy is overlap
	// safe), fill the gap with the receiver's entries, then take over the
	// donor's buffers.
	if len(other.points) >= total {
		recvSize := p.size

		copy(other.points[recvSize:total], other.points[:other.size])
		copy(other.names[recvSize:total], other.names[:other.size])
		copy(other.points[:recvSize], p.points[:recvSize])
		copy(other.names[:recvSize], p.names[:recvSize])

		p.points, other.points = other.points, p.points
		p.names, other.names = other.names, p.names
		p.size = total

		// The donor is left holding the receiver's old buffer; its live
		// prefix still references points that now belong to the receiver.
		// Drop them so the donor ends consumed with no aliasing.
		var i int
		for i = 0; i < recvSize; i++ {
			other.points[i] = nil
		}
		other.size = 0

		return nil
	}

	// Case 3: no spare capacity anywhere; grow the receiver to exactly the
	// combined size and move both sequences in.
	p.reallocate(total)
	p.moveTail(other)

	return nil
}
