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

import "seehuhn.de/go/geom/rect"

// DrawLine paints a line from (x1, y1) to (x2, y2) with v.
// See DrawLineFunc for details.
func (c *Canvas[T]) DrawLine(x1, y1, x2, y2 float64, v T, width int) {
	c.DrawLineFunc(x1, y1, x2, y2, Const(v), width)
}

// DrawLineFunc applies f along a line from (x1, y1) to (x2, y2), using
// Bresenham's algorithm with the error term started at the half step.
//
// The start cell is transformed on its own. Every following step applies f
// to the width×width block whose top-left cell is the current position, see
// TransformBlock. Positions off the canvas are skipped, but blocks are not
// clipped, so wide lines must stay width-1 cells clear of the right and
// bottom canvas edges.
//
// Since the end points are real numbers, every step is clamped to the
// bounding box of the two end points.
func (c *Canvas[T]) DrawLineFunc(x1, y1, x2, y2 float64, f func(T) T, width int) {
	dx := x2 - x1
	dy := y2 - y1

	incx := 0.0
	if dx < 0 {
		dx = -dx
		incx = -1
	} else if dx > 0 {
		incx = 1
	}
	incy := 0.0
	if dy < 0 {
		dy = -dy
		incy = -1
	} else if dy > 0 {
		incy = 1
	}

	// (pdx, pdy) is the step along the primary axis only,
	// (incx, incy) the diagonal step.
	var pdx, pdy, es, el float64
	if dx > dy {
		pdx, pdy = incx, 0
		es, el = dy, dx
	} else {
		pdx, pdy = 0, incy
		es, el = dx, dy
	}

	w := float64(c.width)
	h := float64(c.height)

	x, y := x1, y1
	errTerm := el / 2
	if y < h && y >= 0 && x < w && x >= 0 {
		c.Transform(x, y, f)
	}

	box := rect.Rect{
		LLx: min(x1, x2), LLy: min(y1, y2),
		URx: max(x1, x2), URy: max(y1, y2),
	}
	for i := 0.0; i < el; i++ {
		errTerm -= es
		if errTerm < 0 {
			errTerm += el
			x += incx
			y += incy
		} else {
			x += pdx
			y += pdy
		}
		x = max(box.LLx, min(x, box.URx))
		y = max(box.LLy, min(y, box.URy))

		if y < h && y >= 0 && x < w && x >= 0 {
			c.TransformBlock(x, y, f, width)
		}
	}
}
