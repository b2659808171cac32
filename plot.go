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

// Const returns a transform which ignores its argument and returns v.
// It lifts a fixed value into the form expected by the ...Func drawing
// operations.
func Const[T any](v T) func(T) T {
	return func(T) T { return v }
}

// Plot stores v in the cell containing (x, y).
// The coordinates are truncated toward zero.
func (c *Canvas[T]) Plot(x, y float64, v T) {
	c.Set(int(x), int(y), v)
}

// PlotBlock stores v in the size×size block of cells whose top-left cell
// contains (x, y). Nothing is drawn if size is zero or negative.
// The block is not clipped: all cells must lie on the canvas.
func (c *Canvas[T]) PlotBlock(x, y float64, v T, size int) {
	if size == 1 {
		c.Plot(x, y, v)
		return
	}
	c.TransformBlock(x, y, Const(v), size)
}

// Transform replaces the value v of the cell containing (x, y) by f(v).
func (c *Canvas[T]) Transform(x, y float64, f func(T) T) {
	c.transformCell(int(x), int(y), f)
}

// TransformBlock applies f to every cell of the size×size block whose
// top-left cell contains (x, y). Each cell is transformed on its own value.
// Nothing is drawn if size is zero or negative.
// The block is not clipped: all cells must lie on the canvas.
func (c *Canvas[T]) TransformBlock(x, y float64, f func(T) T, size int) {
	ix, iy := int(x), int(y)
	switch size {
	case 0:
		return
	case 1:
		c.transformCell(ix, iy, f)
	case 2:
		// the common stroke width, unrolled
		c.transformCell(ix, iy, f)
		c.transformCell(ix+1, iy, f)
		c.transformCell(ix, iy+1, f)
		c.transformCell(ix+1, iy+1, f)
	default:
		for dx := 0; dx < size; dx++ {
			for dy := 0; dy < size; dy++ {
				c.transformCell(ix+dx, iy+dy, f)
			}
		}
	}
}

func (c *Canvas[T]) transformCell(x, y int, f func(T) T) {
	i := c.index(x, y)
	c.cells[i] = f(c.cells[i])
}
