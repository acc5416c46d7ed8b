// SPDX-License-Identifier: MIT
// Package render rasterizes polylines into an ASCII character buffer.
//
// A Buffer couples a height×width character grid (a matrix.Dense[byte])
// with a 3×2 projection matrix. Projecting a 1×3 point is one matrix
// product; the projected coordinates are scaled by 0.5, centered on the
// grid and clamped into it. Segments are drawn with Bresenham's line
// algorithm using '*', endpoints with their point names. The rightmost
// column of the grid permanently holds newline bytes, so dumping the grid
// linearly yields ready-to-print frames.
//
// Drawing never overwrites a name character: a cell is plotted only while
// it holds a space or a '*'.
package render
