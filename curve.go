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

	"seehuhn.de/go/geom/rect"
)

// DrawCurve paints a smooth open curve through the given points with v.
// See DrawCurveFunc for details.
func (c *Canvas[T]) DrawCurve(points []float64, tension float64, v T, width int) {
	c.DrawCurveFunc(points, tension, Const(v), width)
}

// DrawClosedCurve paints a smooth closed curve through the given points
// with v. See DrawClosedCurveFunc for details.
func (c *Canvas[T]) DrawClosedCurve(points []float64, tension float64, v T, width int) {
	c.DrawClosedCurveFunc(points, tension, Const(v), width)
}

// DrawCurveFunc applies f along a smooth curve which passes through the
// points x0, y0, x1, y1, ... in order.
//
// Consecutive points are joined by cardinal spline segments. The tangent at
// point k is tension times the vector from point k-1 to point k+1; at the
// two ends the end point itself takes the place of the missing neighbour.
// A tension of 0.5 gives a Catmull-Rom spline.
//
// Each segment is drawn as a chain of lines, see DrawLineFunc for the
// meaning of width. At least two points are needed to draw anything.
func (c *Canvas[T]) DrawCurveFunc(points []float64, tension float64, f func(T) T, width int) {
	n := curvePoints(points)
	if n < 2 {
		if l := debugLogger(); l != nil {
			l.Debug("open curve needs two points", "points", n)
		}
		return
	}

	pt := func(k int) (float64, float64) {
		k = clampInt(k, 0, n-1)
		return points[2*k], points[2*k+1]
	}
	for k := 0; k < n-1; k++ {
		c.drawCurveSegment(pt, k, tension, f, width)
	}
}

// DrawClosedCurveFunc applies f along a smooth closed curve which passes
// through the points x0, y0, x1, y1, ... in order and returns from the last
// point to the first. The point list is treated as circular when choosing
// the neighbours of a point; otherwise this is the same as DrawCurveFunc.
func (c *Canvas[T]) DrawClosedCurveFunc(points []float64, tension float64, f func(T) T, width int) {
	n := curvePoints(points)
	if n < 2 {
		if l := debugLogger(); l != nil {
			l.Debug("closed curve needs two points", "points", n)
		}
		return
	}

	pt := func(k int) (float64, float64) {
		k = ((k % n) + n) % n
		return points[2*k], points[2*k+1]
	}
	for k := range n {
		c.drawCurveSegment(pt, k, tension, f, width)
	}
}

// curvePoints returns the number of points in a flattened point list.
func curvePoints(points []float64) int {
	if len(points)%2 != 0 {
		panic(fmt.Sprintf("canvas: odd number of curve coordinates (%d)", len(points)))
	}
	return len(points) / 2
}

// drawCurveSegment draws the segment from point k to point k+1, using
// points k-1 and k+2 as the outer control points.
func (c *Canvas[T]) drawCurveSegment(pt func(int) (float64, float64), k int, tension float64, f func(T) T, width int) {
	x1, y1 := pt(k - 1)
	x2, y2 := pt(k)
	x3, y3 := pt(k + 1)
	x4, y4 := pt(k + 2)
	c.curveSegment(x1, y1, x2, y2, x3, y3, x4, y4, tension, f, width)
}

// curveSegment draws the cardinal spline segment from (x2, y2) to (x3, y3),
// with (x1, y1) and (x4, y4) as the outer control points.
func (c *Canvas[T]) curveSegment(x1, y1, x2, y2, x3, y3, x4, y4, tension float64, f func(T) T, width int) {
	if !(c.StepFactor > 0) {
		panic(fmt.Sprintf("canvas: invalid step factor %g", c.StepFactor))
	}

	// The step size is chosen from the bounding box of the control points,
	// so that larger segments are sampled more densely.
	bbox := rect.Rect{
		LLx: min(x1, x2, x3, x4), LLy: min(y1, y2, y3, y4),
		URx: max(x1, x2, x3, x4), URy: max(y1, y2, y3, y4),
	}
	length := max(bbox.URx-bbox.LLx, bbox.URy-bbox.LLy)
	if length == 0 {
		if l := debugLogger(); l != nil {
			l.Debug("skipping degenerate curve segment", "x", x2, "y", y2)
		}
		return
	}
	step := c.StepFactor / length

	// P(t) = a t³ + b t² + s1 t + p2, with tangents s1 at p2 and s2 at p3
	sx1 := tension * (x3 - x1)
	sy1 := tension * (y3 - y1)
	sx2 := tension * (x4 - x2)
	sy2 := tension * (y4 - y2)
	ax := sx1 + sx2 + 2*x2 - 2*x3
	ay := sy1 + sy2 + 2*y2 - 2*y3
	bx := -2*sx1 - sx2 - 3*x2 + 3*x3
	by := -2*sy1 - sy2 - 3*y2 + 3*y3

	px, py := x2, y2
	for t := step; t <= 1; t += step {
		tSq := t * t
		qx := ax*tSq*t + bx*tSq + sx1*t + x2
		qy := ay*tSq*t + by*tSq + sy1*t + y2
		c.DrawLineFunc(px, py, qx, qy, f, width)
		px, py = qx, qy
	}

	// the stepped walk may stop short of t = 1
	c.DrawLineFunc(px, py, x3, y3, f, width)
}
