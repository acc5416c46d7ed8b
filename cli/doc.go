// SPDX-License-Identifier: MIT
// Package cli implements the interactive command interpreter over a scene
// of polylines.
//
// The interpreter reads line-oriented commands (create line, add point,
// merge, render, get length, get lines, shift, rotate, remove isolated,
// del line, help, exit), applies them to its polyline scene and renders
// frames through the render package using a 40° axonometric projection.
//
// Core errors never escape Run: every failure from the underlying packages
// is presented as a user-facing message on the output stream. Diagnostics
// go to the injected zerolog logger instead, keeping the interactive
// transcript clean.
package cli
