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

import "math"

var fillCases = []TestCase{
	{
		Name:   "rectangle",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Fill{Points: rectangle(10, 10, 44, 44), Value: 255}},
	},
	{
		Name:   "rectangle_open",
		Width:  64,
		Height: 64,
		Ops: []Operation{
			// no closing edge, so every scanline has a single crossing
			Fill{Points: []float64{10, 10, 44, 10, 44, 44, 10, 44}, Value: 255},
		},
	},
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Fill{Points: closed(10, 50, 32, 10, 54, 50), Value: 255}},
	},
	{
		Name:   "star_evenodd",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Fill{Points: fivePointStar(32, 32, 25), Value: 255}},
	},
	{
		Name:   "clipped",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Fill{Points: closed(-20, 32, 32, -20, 90, 32, 32, 90), Value: 200}},
	},
	{
		Name:   "overlap",
		Width:  64,
		Height: 64,
		Ops: []Operation{
			Fill{Points: rectangle(4, 4, 40, 40), Value: 100},
			Fill{Points: rectangle(24, 24, 60, 60), Value: 200},
		},
	},
}

// rectangle returns a closed axis-aligned rectangle.
func rectangle(x1, y1, x2, y2 float64) []float64 {
	return []float64{x1, y1, x2, y1, x2, y2, x1, y2, x1, y1}
}

// closed returns the given vertices with the first vertex repeated at the
// end.
func closed(coords ...float64) []float64 {
	res := make([]float64, 0, len(coords)+2)
	res = append(res, coords...)
	return append(res, coords[0], coords[1])
}

// fivePointStar returns a closed, self-intersecting five-pointed star.
func fivePointStar(cx, cy, r float64) []float64 {
	var pts [5][2]float64
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = [2]float64{cx + r*math.Cos(angle), cy + r*math.Sin(angle)}
	}

	// 0 -> 2 -> 4 -> 1 -> 3 -> 0
	var res []float64
	for _, i := range []int{0, 2, 4, 1, 3, 0} {
		res = append(res, pts[i][0], pts[i][1])
	}
	return res
}
