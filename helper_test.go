// seehuhn.de/go/pixel - integer rasterisation of 2D graphics primitives
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

package pixel

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

// recorder is a Canvas that records every pixel write, including
// writes outside its nominal bounds. Tests use it to observe the raw
// output of the rasterisation algorithms without clipping.
type recorder struct {
	width, height int
	pixels        map[Point]color.RGBA
	order         []Point // first-write order
}

func newRecorder(width, height int) *recorder {
	return &recorder{
		width:  width,
		height: height,
		pixels: make(map[Point]color.RGBA),
	}
}

func (r *recorder) SetPixel(x, y int, col color.RGBA) {
	p := Pt(x, y)
	if _, seen := r.pixels[p]; !seen {
		r.order = append(r.order, p)
	}
	r.pixels[p] = col
}

func (r *recorder) Width() int  { return r.width }
func (r *recorder) Height() int { return r.height }

func (r *recorder) has(x, y int) bool {
	_, ok := r.pixels[Pt(x, y)]
	return ok
}

// samePixels reports whether two recorders cover exactly the same
// pixel set, ignoring write order and colour.
func samePixels(a, b *recorder) bool {
	if len(a.pixels) != len(b.pixels) {
		return false
	}
	for p := range a.pixels {
		if _, ok := b.pixels[p]; !ok {
			return false
		}
	}
	return true
}

// dumpImage writes an image to debug/ for inspection when a test
// fails.
func dumpImage(t *testing.T, name string, img *Image) {
	t.Helper()
	if err := os.MkdirAll("debug", 0o755); err != nil {
		t.Logf("cannot create debug dir: %v", err)
		return
	}
	path := filepath.Join("debug", name+".png")
	if err := img.WritePNG(path); err != nil {
		t.Logf("cannot write %s: %v", path, err)
		return
	}
	t.Logf("debug image written to %s", path)
}

var testCol = color.RGBA{R: 255, A: 255}
