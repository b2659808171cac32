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

// Command export renders all test cases and writes upscaled grayscale PNG
// previews. Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/draw"

	"seehuhn.de/go/canvas"
	"seehuhn.de/go/canvas/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/preview", "output directory")
	scale := flag.Int("scale", 4, "size of one cell in pixels")
	verbose := flag.Bool("v", false, "log canvas diagnostics")
	flag.Parse()

	if *verbose {
		canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			fname := filepath.Join(*outDir, name+".png")
			if err := writePreview(tc, fname, *scale); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// writePreview renders tc and stores it as a PNG file, with every cell
// drawn as a scale×scale square.
func writePreview(tc testcases.TestCase, fname string, scale int) (err error) {
	c := testcases.Render(tc)

	src := image.NewGray(c.Bounds())
	for p, v := range c.All() {
		src.Pix[src.PixOffset(p.X, p.Y)] = v
	}

	dst := image.NewGray(image.Rect(0, 0, tc.Width*scale, tc.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, dst)
}
