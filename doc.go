// Package wireframe is a toolkit for fixed-shape matrices, named-point 3D
// polylines, and ASCII wireframe rendering.
//
// 🚀 What is wireframe?
//
//	A small, strictly validated geometry stack:
//		• Matrix core: generic dense matrices, column cursors, transpose & product
//		• Vectors & points: length, normalization, distances on 1×N matrices
//		• Polylines: growable named-point sequences with shift/rotate/merge
//		• Rendering: 3D→2D projection onto an ASCII character buffer
//		• Front ends: an interactive shell and a YAML-scripted scene animator
//
// ✨ Why choose wireframe?
//
//   - Deterministic numerics – fixed loop orders, reproducible rounding
//   - Explicit errors – sentinel errors everywhere, no panics on user input
//   - Allocation-aware – fixed-increment growth, capacity-reusing merges
//   - Generic – one Dense[T] for every numeric element type, byte included
//
// Everything is organized under five packages plus a command:
//
//	matrix/        — Dense[T], column cursors, Add/Sub/Mul/Transpose kernels
//	geometry/      — Vector[T] (length, normalize), point helpers, distances
//	polyline/      — Polyline[T]: append, merge, rotate, isolated-point removal
//	render/        — SpatialBuffer-style ASCII rasterizer with Bresenham lines
//	cli/           — the interactive command interpreter
//	cmd/wireframe/ — kong-driven binary: repl and demo subcommands
//
// Quick ASCII example, a spinning cube frame:
//
//	    E*******F
//	    *  *    **
//	    A*******B *
//	    *  H*******G
//	    * *     * *
//	    D*******C
//
//	go get github.com/katalvlaran/wireframe
package wireframe
