// seehuhn.de/go/canvas - a generic 2D raster canvas
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package canvas

import (
	"fmt"
	"math"
	"slices"
)

// edge is a polygon edge in cell coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
}

// FillPolygon paints every cell inside the polygon with v, using the
// even-odd rule. See FillPolygonFunc for details.
func (c *Canvas[T]) FillPolygon(points []float64, v T) {
	c.FillPolygonFunc(points, Const(v))
}

// FillPolygonFunc applies f to every cell inside the polygon, using the
// even-odd rule.
//
// The vertices are given as x0, y0, x1, y1, ... Edges connect consecutive
// vertices in the given order. There is no implicit edge from the last
// vertex back to the first: to fill a closed polygon, repeat the first
// vertex at the end of the list.
//
// On every scanline the cells from floor(left) to ceil(right) of each pair
// of edge crossings are filled, both ends inclusive and clipped to the
// canvas.
func (c *Canvas[T]) FillPolygonFunc(points []float64, f func(T) T) {
	if len(points)%2 != 0 {
		panic(fmt.Sprintf("canvas: odd number of polygon coordinates (%d)", len(points)))
	}
	n := len(points) / 2
	if n < 2 {
		if l := debugLogger(); l != nil {
			l.Debug("polygon has no edges", "vertices", n)
		}
		return
	}

	c.edges = c.edges[:0]
	yMin, yMax := points[1], points[1]
	for i := 2; i < len(points); i += 2 {
		c.edges = append(c.edges, edge{
			x0: points[i-2], y0: points[i-1],
			x1: points[i], y1: points[i+1],
		})
		yMin = min(yMin, points[i+1])
		yMax = max(yMax, points[i+1])
	}

	c.scanFill(c.edges, yMin, yMax, f)
}

// scanFill fills the interior of the given edges using the even-odd rule.
// Scanlines from floor(yMin) to ceil(yMax), clipped to the canvas, are
// visited.
func (c *Canvas[T]) scanFill(edges []edge, yMin, yMax float64, f func(T) T) {
	if c.width == 0 || c.height == 0 {
		return
	}
	lo := clampInt(int(math.Floor(yMin)), 0, c.height-1)
	hi := clampInt(int(math.Ceil(yMax)), 0, c.height-1)

	c.xs = slices.Grow(c.xs[:0], len(edges))[:len(edges)]
	for y := lo; y <= hi; y++ {
		yf := float64(y)

		// The mixed strict/non-strict comparison counts a vertex lying
		// on the scanline for exactly one of its two edges.
		n := 0
		for i := range edges {
			e := &edges[i]
			if e.y0 < yf && e.y1 >= yf || e.y1 < yf && e.y0 >= yf {
				c.xs[n] = e.x0 + (yf-e.y0)/(e.y1-e.y0)*(e.x1-e.x0)
				n++
			}
		}
		xs := c.xs[:n]
		insertionSort(xs)

		// an unpaired last crossing is ignored
		for i := 0; i+1 < n; i += 2 {
			x0 := clampInt(int(math.Floor(xs[i])), 0, c.width-1)
			x1 := clampInt(int(math.Ceil(xs[i+1])), 0, c.width-1)
			for x := x0; x <= x1; x++ {
				c.transformCell(x, y, f)
			}
		}
	}
}

// insertionSort sorts the crossings of one scanline in increasing order.
func insertionSort(xs []float64) {
	for i := 1; i < len(xs); i++ {
		t := xs[i]
		j := i
		for j > 0 && xs[j-1] > t {
			xs[j] = xs[j-1]
			j--
		}
		xs[j] = t
	}
}

func clampInt(x, lo, hi int) int {
	return max(lo, min(x, hi))
}
