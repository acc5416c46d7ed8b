// SPDX-License-Identifier: MIT
// Package geometry layers vectors and points on top of the matrix package.
//
// A point is not a distinct type: it is a 1×N *matrix.Dense used
// positionally (NewPoint3 builds the common 1×3 case), so every matrix
// operation — including multiplication by a rotation matrix — applies to
// points directly.
//
// Vector wraps a single-row matrix and adds the two geometric capabilities
// matrices lack: Length (Euclidean norm, computed as the lone cell of
// v × vᵀ) and Normalize (unit vector, with the zero vector mapped to the
// zero vector rather than an error).
//
// Orientation note: Between(from, to) yields the components from − to, not
// to − from. Callers that need the forward direction must swap arguments or
// negate. Distance is symmetric and unaffected.
package geometry
