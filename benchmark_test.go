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
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var benchSizes = []int{20, 200, 2000}

// BenchmarkPainterO fills an "O" shape with the painter.
func BenchmarkPainterO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			c := New[uint8](size, size)
			p := NewPainter(c)

			center := float64(size) / 2
			oPath := makeOPath(center, center, float64(size)*0.45, float64(size)*0.30)

			b.ReportAllocs()
			for b.Loop() {
				p.FillEvenOdd(oPath, 255)
			}
		})
	}
}

// BenchmarkVectorO fills the same shape with x/image/vector, for comparison.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, outerR)
				addCircleToVector(r, center, center, innerR)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkFillPolygon fills a regular 64-gon.
func BenchmarkFillPolygon(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			c := New[uint8](size, size)
			pts := regularPolygon(64, float64(size)/2, float64(size)*0.45)

			b.ReportAllocs()
			for b.Loop() {
				c.FillPolygon(pts, 255)
			}
		})
	}
}

func BenchmarkDrawLine(b *testing.B) {
	for _, width := range []int{1, 2, 5} {
		b.Run(fmt.Sprintf("width%d", width), func(b *testing.B) {
			c := New[uint8](512, 512)

			b.ReportAllocs()
			for b.Loop() {
				c.DrawLine(3, 7, 500, 300, 255, width)
			}
		})
	}
}

func BenchmarkDrawCurve(b *testing.B) {
	c := New[uint8](512, 512)
	pts := regularPolygon(12, 256, 200)

	b.Run("open", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			c.DrawCurve(pts, 0.5, 255, 1)
		}
	})
	b.Run("closed", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			c.DrawClosedCurve(pts, 0.5, 255, 1)
		}
	})
}

// regularPolygon returns the closed vertex list of a regular n-gon.
func regularPolygon(n int, center, radius float64) []float64 {
	pts := make([]float64, 0, 2*n+2)
	for i := 0; i <= n; i++ {
		phi := 2 * math.Pi * float64(i%n) / float64(n)
		pts = append(pts, center+radius*math.Cos(phi), center+radius*math.Sin(phi))
	}
	return pts
}

// makeOPath creates an "O" shape from two concentric circles.
func makeOPath(cx, cy, outerR, innerR float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = addCircleToPath(yield, cx, cy, outerR) &&
			addCircleToPath(yield, cx, cy, innerR)
	}
}

// addCircleToPath adds a circle made of four cubic Bézier arcs.
// It reports whether the consumer wants more commands.
func addCircleToPath(yield func(path.Command, []vec.Vec2) bool, cx, cy, r float64) bool {
	const k = 0.5522847498
	kr := k * r

	var buf [3]vec.Vec2
	buf[0] = vec.Vec2{X: cx, Y: cy - r}
	if !yield(path.CmdMoveTo, buf[:1]) {
		return false
	}
	buf[0], buf[1], buf[2] = vec.Vec2{X: cx + kr, Y: cy - r}, vec.Vec2{X: cx + r, Y: cy - kr}, vec.Vec2{X: cx + r, Y: cy}
	if !yield(path.CmdCubeTo, buf[:3]) {
		return false
	}
	buf[0], buf[1], buf[2] = vec.Vec2{X: cx + r, Y: cy + kr}, vec.Vec2{X: cx + kr, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}
	if !yield(path.CmdCubeTo, buf[:3]) {
		return false
	}
	buf[0], buf[1], buf[2] = vec.Vec2{X: cx - kr, Y: cy + r}, vec.Vec2{X: cx - r, Y: cy + kr}, vec.Vec2{X: cx - r, Y: cy}
	if !yield(path.CmdCubeTo, buf[:3]) {
		return false
	}
	buf[0], buf[1], buf[2] = vec.Vec2{X: cx - r, Y: cy - kr}, vec.Vec2{X: cx - kr, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}
	if !yield(path.CmdCubeTo, buf[:3]) {
		return false
	}
	return yield(path.CmdClose, nil)
}

func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32) {
	const k = float32(0.5522847498)
	kr := k * radius

	r.MoveTo(cx, cy-radius)
	r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
	r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
	r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
	r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	r.ClosePath()
}
