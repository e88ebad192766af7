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
	"errors"
	"image/color"
	"testing"
)

func TestHeartFits(t *testing.T) {
	img := NewImage(512, 512)
	img.Clear(color.RGBA{R: 255, G: 255, B: 255, A: 255})

	err := Heart(img, Pt(256, 256), 200, 200, testCol)
	if err != nil {
		t.Fatalf("heart 200x200 on 512x512 canvas: %v", err)
	}

	// Something was drawn, and only inside the heart's bounding box
	// [cx-100, cx+100] x [cy-50, cy+150].
	drawn := 0
	for y := range 512 {
		for x := range 512 {
			if img.At(x, y) != testCol {
				continue
			}
			drawn++
			if x < 156 || x > 356 || y < 206 || y > 406 {
				dumpImage(t, "heart_fits", img)
				t.Fatalf("pixel (%d,%d) outside the heart bounding box", x, y)
			}
		}
	}
	if drawn == 0 {
		t.Error("heart drew no pixels")
	}

	// The lobes' top rows and the triangle tip region are populated.
	if img.At(206, 210) != testCol { // left lobe, near the top
		t.Error("left lobe missing")
	}
	if img.At(306, 210) != testCol { // right lobe, near the top
		t.Error("right lobe missing")
	}
	if img.At(256, 380) != testCol { // near the tip
		t.Error("tip region missing")
	}
}

func TestHeartBoundsViolation(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	img := NewImage(512, 512)
	img.Clear(white)

	err := Heart(img, Pt(256, 256), 600, 600, testCol)
	if !errors.Is(err, ErrBounds) {
		t.Fatalf("heart 600x600 on 512x512 canvas: got %v, want ErrBounds", err)
	}

	// The canvas must be left untouched.
	for y := range 512 {
		for x := range 512 {
			if img.At(x, y) != white {
				t.Fatalf("pixel (%d,%d) modified by failed heart", x, y)
			}
		}
	}
}

func TestHeartLobesSymmetric(t *testing.T) {
	// The two half-circle lobes are mirror images of each other about
	// the vertical axis through the center.
	rec := newRecorder(512, 512)
	circleR := 50
	fillHalfCircleTop(rec, Pt(256-circleR, 256), circleR, testCol)
	left := rec.pixels

	rec = newRecorder(512, 512)
	fillHalfCircleTop(rec, Pt(256+circleR, 256), circleR, testCol)
	for p := range rec.pixels {
		mirror := Pt(2*256-p.X, p.Y)
		if _, ok := left[mirror]; !ok {
			t.Errorf("right lobe pixel %v has no mirror in the left lobe", p)
		}
	}
}
