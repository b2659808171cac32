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

// Package canvas implements a fixed-size 2D grid of cell values together
// with simple drawing primitives: point and block plots, read-modify-write
// transforms, even-odd polygon fill, thick Bresenham lines and
// tension-controlled cubic curves.
//
// The cell type is a type parameter. The canvas never interprets cell
// values, so the same code paints height maps, tile ids or counters.
//
// Drawing operations take real-valued coordinates and truncate them toward
// zero to obtain cell indices. There is no anti-aliasing.
package canvas

import (
	"fmt"
	"image"
	"iter"
)

// Canvas is a W×H grid of cells of type T.
// The dimensions are fixed when the canvas is created.
//
// A Canvas is not safe for concurrent use. The expected pattern is a single
// goroutine which owns the canvas for its whole lifetime; any other access
// must be serialised by the caller.
type Canvas[T any] struct {
	// StepFactor controls the sampling density of curve segments. A segment
	// whose control points span len cells along their longer axis is
	// evaluated at parameter steps of StepFactor/len.
	// Must be > 0.
	StepFactor float64

	width  int
	height int
	cells  []T // row-major, len(cells) == width*height

	// Scratch buffers for FillPolygon (reused across calls)
	edges []edge
	xs    []float64
}

// New allocates a canvas with the given dimensions. All cells start with
// the zero value of T.
func New[T any](width, height int) *Canvas[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("canvas: invalid size %dx%d", width, height))
	}

	if l := debugLogger(); l != nil {
		l.Debug("canvas created", "width", width, "height", height)
	}

	return &Canvas[T]{
		StepFactor: defaultStepFactor,
		width:      width,
		height:     height,
		cells:      make([]T, width*height),
	}
}

// Width returns the number of columns.
func (c *Canvas[T]) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas[T]) Height() int { return c.height }

// Bounds returns the rectangle of valid cell indices.
func (c *Canvas[T]) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// index maps (x, y) to the position in c.cells.
// Out-of-range coordinates are a programming error and cause a panic.
func (c *Canvas[T]) index(x, y int) int {
	if uint(x) >= uint(c.width) || uint(y) >= uint(c.height) {
		panic(fmt.Sprintf("canvas: index (%d, %d) out of range %dx%d", x, y, c.width, c.height))
	}
	return y*c.width + x
}

// Get returns the value of cell (x, y).
func (c *Canvas[T]) Get(x, y int) T {
	return c.cells[c.index(x, y)]
}

// Set stores v in cell (x, y).
func (c *Canvas[T]) Set(x, y int, v T) {
	c.cells[c.index(x, y)] = v
}

// Clear sets every cell to v.
func (c *Canvas[T]) Clear(v T) {
	for i := range c.cells {
		c.cells[i] = v
	}
}

// All iterates over all cells in row-major order.
// This is a read-only view, intended for exporting the canvas contents.
func (c *Canvas[T]) All() iter.Seq2[image.Point, T] {
	return func(yield func(image.Point, T) bool) {
		i := 0
		for y := range c.height {
			for x := range c.width {
				if !yield(image.Point{X: x, Y: y}, c.cells[i]) {
					return
				}
				i++
			}
		}
	}
}

// Tuning constants for the drawing operations.
const (
	// defaultStepFactor is the initial value of Canvas.StepFactor.
	defaultStepFactor = 2.0

	// defaultFlatness is the default curve flattening tolerance of a
	// Painter, in cells.
	defaultFlatness = 0.25
)
