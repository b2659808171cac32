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

// Command genpdf renders all test cases and writes each canvas as a
// single-page PDF file, with one gray rectangle per run of equal non-zero
// cells. Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/canvas"
	"seehuhn.de/go/canvas/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/pdf", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")
			if err := generatePDF(testcases.Render(tc), pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(c *canvas.Canvas[uint8], pdfPath string) error {
	w, h := c.Width(), c.Height()

	// Page size in points, one point per cell
	paper := &pdf.Rectangle{
		URx: float64(w),
		URy: float64(h),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background, so that zero cells need not be drawn
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(w), float64(h))
	page.Fill()

	// PDF origin is bottom-left; the canvas has row 0 at the top.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(h)})

	for y := range h {
		for x := 0; x < w; {
			v := c.Get(x, y)
			run := 1
			for x+run < w && c.Get(x+run, y) == v {
				run++
			}
			if v != 0 {
				page.SetFillColor(color.DeviceGray(float64(v) / 255))
				page.Rectangle(float64(x), float64(y), float64(run), 1)
				page.Fill()
			}
			x += run
		}
	}

	return page.Close()
}
