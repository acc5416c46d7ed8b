// SPDX-License-Identifier: MIT
// Shared helpers for the matrix test suite. Kept in one place so individual
// test files stay focused on behavior, not plumbing.

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/wireframe/matrix"
)

// closeEps is the tolerance for floating-point comparisons in kernel tests.
const closeEps = 1e-9

// MustDense builds a rows×cols matrix from vals or fails the test.
func MustDense[T matrix.Number](t *testing.T, rows, cols int, vals ...T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewFrom(rows, cols, vals)
	if err != nil {
		t.Fatalf("NewFrom(%d, %d): %v", rows, cols, err)
	}

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt[T matrix.Number](t *testing.T, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d, %d): %v", i, j, err)
	}

	return v
}

// MustSet writes (i, j) or fails the test.
func MustSet[T matrix.Number](t *testing.T, m *matrix.Dense[T], i, j int, v T) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d, %d): %v", i, j, err)
	}
}

// CompareExact fails the test unless got and want are exactly equal,
// element for element.
func CompareExact[T matrix.Number](t *testing.T, got, want *matrix.Dense[T]) {
	t.Helper()
	if !got.Equal(want) {
		t.Fatalf("matrices differ:\ngot:\n%swant:\n%s", got, want)
	}
}

// CompareClose fails the test unless got and want have the same shape and
// every element pair is within closeEps.
func CompareClose(t *testing.T, got, want *matrix.Dense[float64]) {
	t.Helper()
	if got.Rows() != want.Rows() || got.Cols() != want.Cols() {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d",
			got.Rows(), got.Cols(), want.Rows(), want.Cols())
	}
	var i, j int
	for i = 0; i < got.Rows(); i++ {
		for j = 0; j < got.Cols(); j++ {
			g := MustAt(t, got, i, j)
			w := MustAt(t, want, i, j)
			if math.Abs(g-w) > closeEps {
				t.Fatalf("element (%d, %d): got %v, want %v", i, j, g, w)
			}
		}
	}
}

// AssertErrorIs fails the test unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("got error %v, want %v", err, target)
	}
}
