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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Painter draws vector paths onto a canvas. Lines and curves of the path
// are flattened into straight segments, mapped to cell coordinates by the
// CTM, and then drawn with the canvas primitives.
//
// Create one Painter per canvas and reuse it. Internal buffers grow as
// needed but never shrink. Like the canvas itself, a Painter is not safe
// for concurrent use.
type Painter[T any] struct {
	// CTM maps user space to cell coordinates.
	CTM matrix.Matrix

	// Flatness is the curve flattening tolerance in cells.
	// Must be > 0.
	Flatness float64

	// Width is the stamp width used by Stroke, see Canvas.DrawLineFunc.
	Width int

	c *Canvas[T]

	// edge collection state, reused across calls
	edges      []edge
	edgeYMin   float64
	edgeYMax   float64
	edgesFirst bool
}

// NewPainter returns a Painter which draws onto c, with the identity CTM
// and default values for the other parameters.
func NewPainter[T any](c *Canvas[T]) *Painter[T] {
	p := &Painter[T]{c: c}
	p.Reset()
	return p
}

// Reset restores the default parameters, preserving buffer capacity.
func (p *Painter[T]) Reset() {
	p.CTM = matrix.Identity
	p.Flatness = defaultFlatness
	p.Width = 1
	p.edges = p.edges[:0]
}

// Canvas returns the canvas the painter draws onto.
func (p *Painter[T]) Canvas() *Canvas[T] {
	return p.c
}

// FillEvenOdd paints the interior of the path with v.
// See FillEvenOddFunc for details.
func (p *Painter[T]) FillEvenOdd(pth path.Path, v T) {
	p.FillEvenOddFunc(pth, Const(v))
}

// FillEvenOddFunc applies f to every cell inside the path, using the
// even-odd rule. Every subpath is closed implicitly. Cells are selected
// the same way as by Canvas.FillPolygonFunc.
func (p *Painter[T]) FillEvenOddFunc(pth path.Path, f func(T) T) {
	p.edges = p.edges[:0]
	p.edgesFirst = true
	p.walk(pth, true, p.addEdge)
	if len(p.edges) == 0 {
		return
	}
	p.c.scanFill(p.edges, p.edgeYMin, p.edgeYMax, f)
}

// Stroke paints the outline of the path with v.
// See StrokeFunc for details.
func (p *Painter[T]) Stroke(pth path.Path, v T) {
	p.StrokeFunc(pth, Const(v))
}

// StrokeFunc applies f along the outline of the path. Every flattened
// segment is drawn with Canvas.DrawLineFunc using the stamp width
// p.Width. Only subpaths ending in CmdClose are closed.
func (p *Painter[T]) StrokeFunc(pth path.Path, f func(T) T) {
	p.walk(pth, false, func(a, b vec.Vec2) {
		a, b = p.apply(a), p.apply(b)
		p.c.DrawLineFunc(a.X, a.Y, b.X, b.Y, f, p.Width)
	})
}

// walk flattens the path and calls emit for each straight segment, in user
// space. If closeAll is set, open subpaths are closed as if they ended in
// CmdClose.
func (p *Painter[T]) walk(pth path.Path, closeAll bool, emit func(a, b vec.Vec2)) {
	if !(p.Flatness > 0) {
		panic(fmt.Sprintf("canvas: invalid flatness %g", p.Flatness))
	}

	var current vec.Vec2 // current point
	var start vec.Vec2   // subpath start
	inSubpath := false

	for cmd, pts := range pth {
		switch cmd {
		case path.CmdMoveTo:
			if closeAll && inSubpath && current != start {
				emit(current, start)
			}
			current = pts[0]
			start = current
			inSubpath = true

		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			emit(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			p.flattenQuadratic(current, pts[0], pts[1], emit)
			current = pts[1]

		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			p.flattenCubic(current, pts[0], pts[1], pts[2], emit)
			current = pts[2]

		case path.CmdClose:
			if inSubpath && current != start {
				emit(current, start)
			}
			current = start
		}
	}

	if closeAll && inSubpath && current != start {
		emit(current, start)
	}
}

// addEdge records a fill edge, given in user space.
func (p *Painter[T]) addEdge(a, b vec.Vec2) {
	a, b = p.apply(a), p.apply(b)
	p.edges = append(p.edges, edge{x0: a.X, y0: a.Y, x1: b.X, y1: b.Y})

	if p.edgesFirst {
		p.edgeYMin = min(a.Y, b.Y)
		p.edgeYMax = max(a.Y, b.Y)
		p.edgesFirst = false
	} else {
		p.edgeYMin = min(p.edgeYMin, a.Y, b.Y)
		p.edgeYMax = max(p.edgeYMax, a.Y, b.Y)
	}
}

// apply maps a point from user space to cell coordinates.
func (p *Painter[T]) apply(v vec.Vec2) vec.Vec2 {
	m := p.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// applyLinear applies only the 2×2 linear part of the CTM.
// This is used for tolerance checks, where translation is irrelevant.
func (p *Painter[T]) applyLinear(v vec.Vec2) vec.Vec2 {
	m := p.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// flattenQuadratic flattens the quadratic Bézier curve p0, p1, p2 and calls
// emit for each line segment.
func (p *Painter[T]) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4 bounds the distance to the chord
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := p.applyLinear(e).Length()

	n := 1
	if errDev > p.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / p.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens the cubic Bézier curve p0, p1, p2, p3 and calls
// emit for each line segment. The number of segments is given by Wang's
// formula.
func (p *Painter[T]) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := p.applyLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := p.applyLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		nFloat := math.Sqrt(3 * m / (4 * p.Flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

// Coords converts a list of points into the x0, y0, x1, y1, ... form used
// by FillPolygon and the curve functions.
func Coords(pts []vec.Vec2) []float64 {
	res := make([]float64, 0, 2*len(pts))
	for _, pt := range pts {
		res = append(res, pt.X, pt.Y)
	}
	return res
}
