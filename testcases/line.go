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

var lineCases = []TestCase{
	{
		Name:   "diagonal",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Line{X1: 0, Y1: 0, X2: 63, Y2: 63, Value: 255, Width: 1}},
	},
	{
		Name:   "shallow",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Line{X1: 4, Y1: 20, X2: 60, Y2: 36, Value: 255, Width: 1}},
	},
	{
		Name:   "steep",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Line{X1: 40, Y1: 60, X2: 24, Y2: 4, Value: 255, Width: 1}},
	},
	{
		Name:   "fractional",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Line{X1: 3.7, Y1: 10.2, X2: 58.1, Y2: 47.9, Value: 255, Width: 1}},
	},
	{
		Name:   "thick",
		Width:  64,
		Height: 64,
		Ops: []Operation{
			Line{X1: 8, Y1: 8, X2: 54, Y2: 30, Value: 255, Width: 2},
			Line{X1: 8, Y1: 54, X2: 54, Y2: 40, Value: 255, Width: 5},
		},
	},
	{
		Name:   "additive",
		Width:  64,
		Height: 64,
		Ops: []Operation{
			Line{X1: 4, Y1: 32, X2: 60, Y2: 32, Value: 80, Width: 3, Add: true},
			Line{X1: 32, Y1: 4, X2: 32, Y2: 60, Value: 80, Width: 3, Add: true},
			Line{X1: 4, Y1: 4, X2: 60, Y2: 60, Value: 80, Width: 3, Add: true},
		},
	},
	{
		Name:   "partly_outside",
		Width:  64,
		Height: 64,
		Ops:    []Operation{Line{X1: -30, Y1: 10, X2: 50, Y2: 50, Value: 255, Width: 1}},
	},
}
