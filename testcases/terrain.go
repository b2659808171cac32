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

// Terrain scenes paint height maps the way a world generator does: a land
// mass is filled first, then ridges are raised and rivers carved with
// additive and overwriting strokes.
var terrainCases = []TestCase{
	{
		Name:   "island",
		Width:  128,
		Height: 128,
		Ops: []Operation{
			Fill{Points: closedBlob(64, 64, 48, 24, 0.15), Value: 40},
			Curve{
				Points:  []float64{34, 70, 50, 50, 70, 46, 94, 58},
				Tension: 0.5,
				Value:   30,
				Width:   4,
				Add:     true,
			},
			Curve{
				Points:  []float64{44, 82, 62, 70, 84, 74},
				Tension: 0.5,
				Value:   20,
				Width:   3,
				Add:     true,
			},
			Curve{
				Points:  []float64{64, 60, 60, 80, 70, 96, 66, 116},
				Tension: 0.5,
				Value:   0,
				Width:   2,
			},
		},
	},
	{
		Name:   "lake",
		Width:  128,
		Height: 128,
		Ops: []Operation{
			Fill{Points: rectangle(0, 0, 127, 127), Value: 60},
			Fill{Points: closedBlob(64, 64, 30, 16, 0.2), Value: 0},
			Curve{
				Points:  blob(64, 64, 36, 9, 0.15),
				Tension: 0.4,
				Closed:  true,
				Value:   90,
				Width:   2,
			},
			Block{X: 10, Y: 10, Size: 6, Value: 255},
			Block{X: 110, Y: 110, Size: 6, Value: 255},
		},
	},
}

// closedBlob returns a blob polygon with n vertices, with the first vertex
// repeated at the end.
func closedBlob(cx, cy, r float64, n int, wobble float64) []float64 {
	pts := blob(cx, cy, r, n, wobble)
	return append(pts, pts[0], pts[1])
}
