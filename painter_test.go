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
	"image"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// polyPath builds a path through the given points. If closed is set, the
// path ends with CmdClose.
func polyPath(closed bool, pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, pt := range pts {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{pt}) {
				return
			}
		}
		if closed {
			yield(path.CmdClose, nil)
		}
	}
}

// concat joins several paths into one.
func concat(paths ...path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, p := range paths {
			for cmd, pts := range p {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}

func square(x, y, side float64) path.Path {
	return polyPath(true,
		vec.Vec2{X: x, Y: y},
		vec.Vec2{X: x + side, Y: y},
		vec.Vec2{X: x + side, Y: y + side},
		vec.Vec2{X: x, Y: y + side})
}

func TestNewPainter(t *testing.T) {
	c := New[int](4, 4)
	p := NewPainter(c)
	if p.Canvas() != c {
		t.Error("wrong canvas")
	}
	if p.CTM != matrix.Identity || p.Flatness != 0.25 || p.Width != 1 {
		t.Errorf("unexpected defaults %v %g %d", p.CTM, p.Flatness, p.Width)
	}

	p.CTM = matrix.Matrix{2, 0, 0, 2, 0, 0}
	p.Flatness = 1
	p.Width = 3
	p.Reset()
	if p.CTM != matrix.Identity || p.Flatness != 0.25 || p.Width != 1 {
		t.Errorf("Reset did not restore defaults")
	}
}

func TestPainterFillMatchesPolygon(t *testing.T) {
	want := New[int](10, 10)
	want.FillPolygon([]float64{2, 2, 7, 2, 7, 7, 2, 7, 2, 2}, 1)

	for _, closed := range []bool{true, false} {
		c := New[int](10, 10)
		p := NewPainter(c)
		p.FillEvenOdd(polyPath(closed,
			vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 7, Y: 2},
			vec.Vec2{X: 7, Y: 7}, vec.Vec2{X: 2, Y: 7}), 1)
		if got, exp := painted(c), painted(want); !slices.Equal(got, exp) {
			t.Errorf("closed=%t: painted %v, want %v", closed, got, exp)
		}
	}
}

func TestPainterFillHole(t *testing.T) {
	c := New[int](20, 20)
	p := NewPainter(c)
	p.FillEvenOdd(concat(square(2, 2, 15), square(7, 7, 5)), 1)

	if c.Get(10, 10) != 0 {
		t.Error("hole is filled")
	}
	for _, pt := range []image.Point{{4, 10}, {15, 10}, {10, 4}, {10, 16}} {
		if c.Get(pt.X, pt.Y) != 1 {
			t.Errorf("cell %v is not filled", pt)
		}
	}
	if c.Get(1, 10) != 0 || c.Get(18, 10) != 0 {
		t.Error("cells outside the ring are filled")
	}
}

func TestPainterCTM(t *testing.T) {
	c := New[int](10, 10)
	p := NewPainter(c)
	p.CTM = matrix.Matrix{4, 0, 0, 4, 2, 2}
	p.FillEvenOdd(square(0, 0, 1), 1)

	want := New[int](10, 10)
	want.FillPolygon([]float64{2, 2, 6, 2, 6, 6, 2, 6, 2, 2}, 1)
	if got, exp := painted(c), painted(want); !slices.Equal(got, exp) {
		t.Errorf("painted %v, want %v", got, exp)
	}
}

func TestPainterStroke(t *testing.T) {
	a, b, d := vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 8, Y: 1}, vec.Vec2{X: 8, Y: 6}

	for _, closed := range []bool{true, false} {
		c := New[int](10, 10)
		p := NewPainter(c)
		p.Stroke(polyPath(closed, a, b, d), 1)

		want := New[int](10, 10)
		want.DrawLine(a.X, a.Y, b.X, b.Y, 1, 1)
		want.DrawLine(b.X, b.Y, d.X, d.Y, 1, 1)
		if closed {
			want.DrawLine(d.X, d.Y, a.X, a.Y, 1, 1)
		}

		if got, exp := painted(c), painted(want); !slices.Equal(got, exp) {
			t.Errorf("closed=%t: painted %v, want %v", closed, got, exp)
		}
	}
}

func TestPainterStrokeWidth(t *testing.T) {
	c := New[int](10, 10)
	p := NewPainter(c)
	p.Width = 2
	p.Stroke(polyPath(false, vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 6, Y: 2}), 1)

	want := New[int](10, 10)
	want.DrawLine(2, 2, 6, 2, 1, 2)
	if !slices.Equal(c.cells, want.cells) {
		t.Error("stroke width is not passed on")
	}
}

func TestPainterCurves(t *testing.T) {
	c := New[int](64, 64)
	p := NewPainter(c)

	// circle of radius 20 around (32, 32) from four cubic arcs
	const k = 0.5522847498307936 * 20
	circle := func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: 52, Y: 32}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: 52, Y: 32 - k}, {X: 32 + k, Y: 12}, {X: 32, Y: 12}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: 32 - k, Y: 12}, {X: 12, Y: 32 - k}, {X: 12, Y: 32}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: 12, Y: 32 + k}, {X: 32 - k, Y: 52}, {X: 32, Y: 52}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: 32 + k, Y: 52}, {X: 52, Y: 32 + k}, {X: 52, Y: 32}}) &&
			yield(path.CmdClose, nil)
	}
	p.FillEvenOdd(circle, 1)

	for _, pt := range []image.Point{{32, 32}, {20, 32}, {32, 45}, {45, 25}} {
		if c.Get(pt.X, pt.Y) != 1 {
			t.Errorf("cell %v inside the circle is not filled", pt)
		}
	}
	for _, pt := range []image.Point{{14, 14}, {50, 50}, {5, 32}, {32, 58}} {
		if c.Get(pt.X, pt.Y) != 0 {
			t.Errorf("cell %v outside the circle is filled", pt)
		}
	}

	// a quadratic arc stroked with default flatness is split into
	// several segments, all connected
	c.Clear(0)
	quad := func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: 4, Y: 40}}) &&
			yield(path.CmdQuadTo, []vec.Vec2{{X: 32, Y: 0}, {X: 60, Y: 40}})
	}
	p.Stroke(quad, 1)
	if c.Get(4, 40) != 1 || c.Get(32, 20) != 1 {
		t.Error("quadratic arc not painted at start and apex")
	}
	if c.Get(32, 40) != 0 {
		t.Error("quadratic arc painted along its chord")
	}
}

func TestPainterIgnoresLineWithoutMove(t *testing.T) {
	c := New[int](10, 10)
	p := NewPainter(c)
	lone := func(yield func(path.Command, []vec.Vec2) bool) {
		yield(path.CmdLineTo, []vec.Vec2{{X: 5, Y: 5}})
	}
	p.Stroke(lone, 1)
	p.FillEvenOdd(lone, 1)
	if got := painted(c); len(got) != 0 {
		t.Errorf("painted %v", got)
	}
}

func TestPainterFlatness(t *testing.T) {
	p := NewPainter(New[int](10, 10))
	p.Flatness = 0
	mustPanic(t, "zero flatness", func() { p.FillEvenOdd(square(1, 1, 3), 1) })
}

func TestCoords(t *testing.T) {
	got := Coords([]vec.Vec2{{X: 1, Y: 2}, {X: 3.5, Y: -4}})
	if want := []float64{1, 2, 3.5, -4}; !slices.Equal(got, want) {
		t.Errorf("Coords = %v, want %v", got, want)
	}
	if got := Coords(nil); len(got) != 0 {
		t.Errorf("Coords(nil) = %v", got)
	}
}
