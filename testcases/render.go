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
	"fmt"

	"seehuhn.de/go/canvas"
	"seehuhn.de/go/geom/matrix"
)

// Render draws the test case onto a new canvas.
func Render(tc TestCase) *canvas.Canvas[uint8] {
	c := canvas.New[uint8](tc.Width, tc.Height)
	p := canvas.NewPainter(c)
	for _, op := range tc.Ops {
		switch op := op.(type) {
		case Fill:
			c.FillPolygon(op.Points, op.Value)
		case Line:
			c.DrawLineFunc(op.X1, op.Y1, op.X2, op.Y2, valueFunc(op.Value, op.Add), op.Width)
		case Curve:
			f := valueFunc(op.Value, op.Add)
			if op.Closed {
				c.DrawClosedCurveFunc(op.Points, op.Tension, f, op.Width)
			} else {
				c.DrawCurveFunc(op.Points, op.Tension, f, op.Width)
			}
		case Block:
			c.PlotBlock(op.X, op.Y, op.Value, op.Size)
		case PathFill:
			p.Reset()
			p.CTM = ctm(op.CTM)
			p.FillEvenOdd(op.Path, op.Value)
		case PathStroke:
			p.Reset()
			p.CTM = ctm(op.CTM)
			p.Width = op.Width
			p.Stroke(op.Path, op.Value)
		default:
			panic(fmt.Sprintf("testcases: unknown operation %T", op))
		}
	}
	return c
}

// valueFunc returns the cell transform for a Line or Curve operation.
func valueFunc(v uint8, add bool) func(uint8) uint8 {
	if !add {
		return canvas.Const(v)
	}
	return func(old uint8) uint8 {
		if old > 255-v {
			return 255
		}
		return old + v
	}
}

func ctm(m matrix.Matrix) matrix.Matrix {
	if m == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return m
}
