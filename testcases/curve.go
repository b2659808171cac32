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

var curveCases = []TestCase{
	{
		Name:   "wave",
		Width:  64,
		Height: 64,
		Ops: []Operation{Curve{
			Points:  []float64{6, 32, 18, 12, 32, 32, 46, 52, 58, 32},
			Tension: 0.5,
			Value:   255,
			Width:   1,
		}},
	},
	{
		Name:   "wave_tight",
		Width:  64,
		Height: 64,
		Ops: []Operation{Curve{
			Points:  []float64{6, 32, 18, 12, 32, 32, 46, 52, 58, 32},
			Tension: 0.1,
			Value:   255,
			Width:   1,
		}},
	},
	{
		Name:   "wave_thick",
		Width:  64,
		Height: 64,
		Ops: []Operation{Curve{
			Points:  []float64{6, 32, 18, 12, 32, 32, 46, 50, 56, 32},
			Tension: 0.5,
			Value:   255,
			Width:   3,
		}},
	},
	{
		Name:   "two_points",
		Width:  64,
		Height: 64,
		Ops: []Operation{Curve{
			Points:  []float64{10, 50, 54, 14},
			Tension: 0.5,
			Value:   255,
			Width:   1,
		}},
	},
	{
		Name:   "closed_square",
		Width:  64,
		Height: 64,
		Ops: []Operation{Curve{
			Points:  []float64{16, 16, 48, 16, 48, 48, 16, 48},
			Tension: 0.5,
			Closed:  true,
			Value:   255,
			Width:   1,
		}},
	},
	{
		Name:   "closed_blob",
		Width:  64,
		Height: 64,
		Ops: []Operation{Curve{
			Points:  blob(32, 32, 20, 7, 0.25),
			Tension: 0.5,
			Closed:  true,
			Value:   255,
			Width:   2,
		}},
	},
}

// blob returns n points on a circle whose radius varies by the relative
// amount wobble.
func blob(cx, cy, r float64, n int, wobble float64) []float64 {
	res := make([]float64, 0, 2*n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		ri := r * (1 + wobble*math.Sin(3*angle))
		res = append(res, cx+ri*math.Cos(angle), cy+ri*math.Sin(angle))
	}
	return res
}
