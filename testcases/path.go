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

package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var pathCases = []TestCase{
	{
		Name:   "circle",
		Width:  64,
		Height: 64,
		Ops:    []Operation{PathFill{Path: circle(32, 32, 25), Value: 255}},
	},
	{
		Name:   "ring",
		Width:  64,
		Height: 64,
		Ops:    []Operation{PathFill{Path: ringShape(32, 32, 24, 12), Value: 255}},
	},
	{
		Name:   "scaled_square",
		Width:  64,
		Height: 64,
		Ops: []Operation{PathFill{
			Path:  square(0, 0, 10),
			CTM:   matrix.Scale(4, 4).Translate(12, 12),
			Value: 255,
		}},
	},
	{
		Name:   "stroke_quadratic",
		Width:  64,
		Height: 64,
		Ops: []Operation{PathStroke{
			Path:  quadraticCurve(8, 50, 32, 0, 56, 50),
			Value: 255,
			Width: 2,
		}},
	},
	{
		Name:   "stroke_circle",
		Width:  64,
		Height: 64,
		Ops:    []Operation{PathStroke{Path: circle(32, 32, 20), Value: 255, Width: 1}},
	},
}

func moveTo(yield func(path.Command, []vec.Vec2) bool, x, y float64) bool {
	return yield(path.CmdMoveTo, []vec.Vec2{{X: x, Y: y}})
}

func lineTo(yield func(path.Command, []vec.Vec2) bool, x, y float64) bool {
	return yield(path.CmdLineTo, []vec.Vec2{{X: x, Y: y}})
}

func closePath(yield func(path.Command, []vec.Vec2) bool) bool {
	return yield(path.CmdClose, nil)
}

// square builds a closed axis-aligned square.
func square(x, y, side float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = moveTo(yield, x, y) &&
			lineTo(yield, x+side, y) &&
			lineTo(yield, x+side, y+side) &&
			lineTo(yield, x, y+side) &&
			closePath(yield)
	}
}

// ringShape builds a square ring: an outer square with an inner square
// cut out by the even-odd rule.
func ringShape(cx, cy, outerSize, innerSize float64) path.Path {
	outer := square(cx-outerSize, cy-outerSize, 2*outerSize)
	inner := square(cx-innerSize, cy-innerSize, 2*innerSize)
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for cmd, pts := range outer {
			if !yield(cmd, pts) {
				return
			}
		}
		for cmd, pts := range inner {
			if !yield(cmd, pts) {
				return
			}
		}
	}
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) path.Path {
	k := r * kappa
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = moveTo(yield, cx+r, cy) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: cx + r, Y: cy - k}, {X: cx + k, Y: cy - r}, {X: cx, Y: cy - r}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: cx - k, Y: cy - r}, {X: cx - r, Y: cy - k}, {X: cx - r, Y: cy}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: cx - r, Y: cy + k}, {X: cx - k, Y: cy + r}, {X: cx, Y: cy + r}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: cx + k, Y: cy + r}, {X: cx + r, Y: cy + k}, {X: cx + r, Y: cy}}) &&
			closePath(yield)
	}
}

// quadraticCurve builds an open quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = moveTo(yield, x1, y1) &&
			yield(path.CmdQuadTo, []vec.Vec2{{X: cx, Y: cy}, {X: x2, Y: y2}})
	}
}
