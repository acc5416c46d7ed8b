// SPDX-License-Identifier: MIT
// Package polyline: isolated-point removal.

package polyline

import "math"

// RemoveMostIsolated deletes the point whose nearest neighbor is farthest
// away. No-op for fewer than three points.
//
// Implementation:
//   - Stage 1: For every interior point compute d = min(distance to the
//     previous point, distance to the next point) and track the maximum;
//     the strict-greater comparison keeps the FIRST (lowest-index) point on
//     ties.
//   - Stage 2: Compare against the two boundary edge lengths. The leading
//     edge claims index 0 if it strictly exceeds the interior maximum; the
//     trailing edge then claims the last index if it strictly exceeds the
//     updated maximum. Equal boundary distances leave the earlier claim in
//     place.
//   - Stage 3: Remove the winner by shifting the tail of both buffers left
//     one slot and decrementing size.
func (p *Polyline[T]) RemoveMostIsolated() {
	if p.size <= 2 {
		return
	}

	var best float64
	var index int
	var i int
	for i = 1; i < p.size-1; i++ {
		d := math.Min(dist(p.points[i-1], p.points[i]), dist(p.points[i], p.points[i+1]))
		if d > best {
			best, index = d, i
		}
	}

	if lead := dist(p.points[0], p.points[1]); lead > best {
		best, index = lead, 0
	}
	if trail := dist(p.points[p.size-2], p.points[p.size-1]); trail > best {
		index = p.size - 1
	}

	copy(p.points[index:], p.points[index+1:p.size])
	copy(p.names[index:], p.names[index+1:p.size])
	p.points[p.size-1] = nil
	p.size--
}
