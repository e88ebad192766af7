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
	"testing"
)

func TestRenderBackground(t *testing.T) {
	bg := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	r := Renderer{Width: 16, Height: 8, Background: bg}
	img := r.Render()

	if img.Width() != 16 || img.Height() != 8 {
		t.Fatalf("got %dx%d image, want 16x8", img.Width(), img.Height())
	}
	for y := range 8 {
		for x := range 16 {
			if img.At(x, y) != bg {
				t.Fatalf("pixel (%d,%d) is %v, want background", x, y, img.At(x, y))
			}
		}
	}
}

func TestRenderOpOrder(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}

	r := Renderer{Width: 8, Height: 8}
	img := r.Render(
		func(c Canvas) { c.SetPixel(4, 4, red) },
		func(c Canvas) { c.SetPixel(4, 4, blue) },
	)

	if got := img.At(4, 4); got != blue {
		t.Errorf("overlapping writes: got %v, want the later colour", got)
	}
}

func TestRenderFreshCanvas(t *testing.T) {
	// Each render pass gets its own canvas.
	r := Renderer{Width: 8, Height: 8}
	a := r.Render(func(c Canvas) { c.SetPixel(1, 1, testCol) })
	b := r.Render()

	if a.At(1, 1) != testCol {
		t.Error("first render lost its pixel")
	}
	if b.At(1, 1) == testCol {
		t.Error("second render sees the first render's pixel")
	}
}
