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

// Package testcases defines named drawing scenes for the canvas package.
// The scenes are used by the tests and by the preview and PDF export
// commands.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// TestCase defines a single drawing scene on a Width×Height canvas of
// uint8 cells.
type TestCase struct {
	Name   string      // lowercase a-z and _ only
	Width  int         // canvas width in cells
	Height int         // canvas height in cells
	Ops    []Operation // applied in order to an all-zero canvas
}

// Operation is one drawing step of a scene.
type Operation interface {
	isOperation()
}

// Fill fills a polygon given as x0, y0, x1, y1, ...
// Only the listed edges are used; a closed polygon repeats its first vertex.
type Fill struct {
	Points []float64
	Value  uint8
}

func (Fill) isOperation() {}

// Line draws a straight line with the given stamp width.
// If Add is set, Value is added to the existing cells (saturating at 255)
// instead of replacing them.
type Line struct {
	X1, Y1, X2, Y2 float64
	Value          uint8
	Width          int
	Add            bool
}

func (Line) isOperation() {}

// Curve draws an open or closed curve through the control points.
// Add has the same meaning as for Line.
type Curve struct {
	Points  []float64
	Tension float64
	Closed  bool
	Value   uint8
	Width   int
	Add     bool
}

func (Curve) isOperation() {}

// Block plots a Size×Size block.
type Block struct {
	X, Y  float64
	Size  int
	Value uint8
}

func (Block) isOperation() {}

// PathFill fills a vector path with the even-odd rule.
type PathFill struct {
	Path  path.Path
	CTM   matrix.Matrix // zero-value means identity
	Value uint8
}

func (PathFill) isOperation() {}

// PathStroke strokes a vector path.
type PathStroke struct {
	Path  path.Path
	CTM   matrix.Matrix // zero-value means identity
	Value uint8
	Width int
}

func (PathStroke) isOperation() {}
