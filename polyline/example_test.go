// SPDX-License-Identifier: MIT
package polyline_test

import (
	"fmt"

	"github.com/katalvlaran/wireframe/geometry"
	"github.com/katalvlaran/wireframe/polyline"
)

// Example builds a small polyline, measures it, and consumes it into
// another via a move merge.
func Example() {
	a := polyline.New[float64]()
	_ = a.AddPoint(geometry.NewPoint3(0.0, 0.0, 0.0), 'A')
	_ = a.AddPoint(geometry.NewPoint3(1.0, 0.0, 0.0), 'B')
	_ = a.AddPoint(geometry.NewPoint3(1.0, 1.0, 0.0), 'C')
	fmt.Println("length:", a.Length())

	b := polyline.New[float64]()
	_ = b.AddPoint(geometry.NewPoint3(1.0, 1.0, 1.0), 'D')
	_ = a.MergeMove(b)

	fmt.Println("merged size:", a.Size())
	fmt.Println("donor size:", b.Size())
	// Output:
	// length: 2
	// merged size: 4
	// donor size: 0
}

// ExamplePolyline_RemoveMostIsolated trims the point whose nearest neighbor
// is farthest away.
func ExamplePolyline_RemoveMostIsolated() {
	p := polyline.New[float64]()
	_ = p.AddPoint(geometry.NewPoint3(0.0, 0.0, 0.0), 'A')
	_ = p.AddPoint(geometry.NewPoint3(1.0, 0.0, 0.0), 'B')
	_ = p.AddPoint(geometry.NewPoint3(3.0, 0.0, 0.0), 'C')

	p.RemoveMostIsolated()

	for i := 0; i < p.Size(); i++ {
		n, _ := p.Name(i)
		fmt.Printf("%c", n)
	}
	fmt.Println()
	// Output:
	// AB
}
