// SPDX-License-Identifier: MIT
// Package render: Buffer — the character grid, projection and line drawing.

package render

import (
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/wireframe/matrix"
	"github.com/katalvlaran/wireframe/polyline"
)

// lineSymbol is the character used for segment interiors.
const lineSymbol = '*'

// Axonometric builds the 3×2 projection used throughout the module: world X
// straight onto screen X, world Y receding at angleRad into the screen
// diagonal, world Z straight up (screen Y grows downward, hence the minus).
func Axonometric(angleRad float64) *matrix.Dense[float64] {
	cos, sin := math.Cos(angleRad), math.Sin(angleRad)
	// A fixed 3×2 shape with six values cannot fail construction.
	m, _ := matrix.NewFrom(3, 2, []float64{
		1, 0,
		cos, -sin,
		0, -1,
	})

	return m
}

// Buffer is a height×width ASCII canvas with a fixed 3D→2D projection.
type Buffer struct {
	width, height int
	grid          *matrix.Dense[byte]    // height×width character cells
	proj          *matrix.Dense[float64] // 3×2, owned by the buffer
}

// New creates a cleared buffer. The projection matrix is cloned.
// Errors: ErrBadSize, ErrBadProjection.
func New(width, height int, projection *matrix.Dense[float64]) (*Buffer, error) {
	if width < 2 || height < 1 {
		return nil, ErrBadSize
	}
	if projection == nil || projection.Rows() != 3 || projection.Cols() != 2 {
		return nil, ErrBadProjection
	}

	grid, err := matrix.NewDense[byte](height, width)
	if err != nil {
		return nil, err
	}

	b := &Buffer{width: width, height: height, grid: grid, proj: projection.Clone()}
	b.Clear()

	return b, nil
}

// Width returns the grid width including the newline column.
func (b *Buffer) Width() int { return b.width }

// Height returns the grid height.
func (b *Buffer) Height() int { return b.height }

// Clear fills every cell with a space, then re-stamps the newline column on
// the right edge through a column cursor.
func (b *Buffer) Clear() {
	var i, j int
	var row []byte
	for i = 0; i < b.height; i++ {
		row, _ = b.grid.Row(i) // i is always in range
		for j = range row {
			row[j] = ' '
		}
	}

	cur, _ := matrix.ColumnBegin(b.grid, b.width-1) // column validated at New
	for i = 0; i < b.height; i++ {
		_ = cur.Set('\n')
		cur = cur.Next()
	}
}

// project maps a 3D point to screen coordinates: one matrix product, a 0.5
// scale, centering on the grid, truncation to int, then clamping into the
// drawable area.
func (b *Buffer) project(pt *matrix.Dense[float64]) (int, int, error) {
	projected, err := matrix.Mul(pt, b.proj) // 1×3 × 3×2 → 1×2
	if err != nil {
		return 0, 0, err
	}
	px, _ := projected.At(0, 0)
	py, _ := projected.At(0, 1)

	x := int(px*0.5 + float64(b.width/2))
	y := int(py*0.5 + float64(b.height/2))

	x = max(0, min(b.width-1, x))
	y = max(0, min(b.height-1, y))

	return x, y, nil
}

// drawPoint plots symbol at (x, y) if the cell is inside the drawable area
// (the newline column is off limits) and currently holds a space or a line
// character. Names already on the canvas are never overwritten.
func (b *Buffer) drawPoint(x, y int, symbol byte) {
	if x < 0 || x >= b.width-1 || y < 0 || y >= b.height {
		return
	}
	cell, _ := b.grid.At(y, x) // bounds established above
	if cell == ' ' || cell == lineSymbol {
		_ = b.grid.Set(y, x, symbol)
	}
}

// drawLine rasterizes a segment with Bresenham's algorithm, plotting every
// cell except the final endpoint (endpoints get their names in AddLine).
func (b *Buffer) drawLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx - dy

	for x0 != x1 || y0 != y1 {
		b.drawPoint(x0, y0, lineSymbol)

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// AddLine projects two 3D points, draws the segment between them and stamps
// each endpoint with its name character.
// Errors: ErrNilPoint, ErrBadPoint.
func (b *Buffer) AddLine(p1, p2 *matrix.Dense[float64], n1, n2 byte) error {
	if p1 == nil || p2 == nil {
		return ErrNilPoint
	}
	if p1.Rows() != 1 || p1.Cols() != 3 || p2.Rows() != 1 || p2.Cols() != 3 {
		return ErrBadPoint
	}

	x0, y0, err := b.project(p1)
	if err != nil {
		return err
	}
	x1, y1, err := b.project(p2)
	if err != nil {
		return err
	}

	b.drawLine(x0, y0, x1, y1)
	b.drawPoint(x0, y0, n1)
	b.drawPoint(x1, y1, n2)

	return nil
}

// AddPolyline draws every adjacent pair of the polyline. Polylines with
// fewer than two points draw nothing.
// Errors: ErrNilPolyline, plus AddLine failures.
func (b *Buffer) AddPolyline(p *polyline.Polyline[float64]) error {
	if p == nil {
		return ErrNilPolyline
	}
	if p.Size() < 2 {
		return nil
	}

	var i int
	for i = 0; i < p.Size()-1; i++ {
		// Indexes stay inside [0, size), so the accessors cannot fail.
		a, _ := p.Point(i)
		c, _ := p.Point(i + 1)
		na, _ := p.Name(i)
		nc, _ := p.Name(i + 1)
		if err := b.AddLine(a, c, na, nc); err != nil {
			return err
		}
	}

	return nil
}

// String returns the frame as one string: the grid dumped in storage order,
// line breaks supplied by the permanent newline column.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(b.width * b.height)
	var i int
	var row []byte
	for i = 0; i < b.height; i++ {
		row, _ = b.grid.Row(i)
		sb.Write(row)
	}

	return sb.String()
}

// WriteTo dumps the frame into w, implementing io.WriterTo.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.String())

	return int64(n), err
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
