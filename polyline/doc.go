// SPDX-License-Identifier: MIT
// Package polyline implements an owned, growable, ordered sequence of named
// 3D points with the geometric operations built on the matrix and geometry
// packages: translation, axis rotation, total length, capacity-aware merge
// and isolated-point removal.
//
// Storage is two index-aligned buffers — points (1×3 matrices) and
// single-byte names — that always share one capacity and are reallocated
// together. Growth is by a fixed increment of 5 slots per reallocation, not
// by doubling; the copy merge grows by exactly the donor's size, and the
// move merge avoids allocating at all whenever either side's spare capacity
// can absorb the combined sequence.
//
// Points are owned exclusively: AddPoint and Merge store clones of their
// inputs, and accessor-returned matrices are live views the caller must not
// grow beyond (they can't — matrix shapes are fixed). The only buffer
// hand-off that ever happens is the controlled swap inside MergeMove.
package polyline
