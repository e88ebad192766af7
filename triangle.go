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

import "image/color"

// FillTriangle fills an arbitrary triangle using horizontal scanline
// spans.
//
// The three vertices are first sorted by ascending y. A triangle whose
// flat edge is already parallel to the scan direction is filled in a
// single pass; any other triangle is split at the middle vertex's
// scanline into one flat-bottom and one flat-top triangle, with the
// boundary point interpolated on the longest edge. Each span is drawn
// through the [SimpleLine] fast path.
//
// Degenerate triangles are not an error: a zero-height triangle
// collapses to a single horizontal span, and a zero-area slice draws
// its (possibly empty) spans without ever dividing by zero, since an
// edge with Δy == 0 is only ever the flat edge and never used as a
// slope denominator.
func FillTriangle(dst Canvas, a, b, c Point, col color.RGBA) {
	// Classify: sort vertices by ascending y.
	v1, v2, v3 := a, b, c
	if v1.Y > v2.Y {
		v1, v2 = v2, v1
	}
	if v2.Y > v3.Y {
		v2, v3 = v3, v2
	}
	if v1.Y > v2.Y {
		v1, v2 = v2, v1
	}

	switch {
	case v1.Y == v3.Y:
		// All three vertices on one scanline: a single span.
		x0 := min(v1.X, min(v2.X, v3.X))
		x1 := max(v1.X, max(v2.X, v3.X))
		SimpleLine(dst, Pt(x0, v1.Y), Pt(x1, v1.Y), col)

	case v2.Y == v3.Y:
		fillFlatBottom(dst, v1, v2, v3, col)

	case v1.Y == v2.Y:
		fillFlatTop(dst, v3, v1, v2, col)

	default:
		// Split at the middle vertex's scanline. The boundary point
		// lies on the edge v1–v3.
		x := v1.X + int(float64(v2.Y-v1.Y)/float64(v3.Y-v1.Y)*float64(v3.X-v1.X))
		boundary := Pt(x, v2.Y)
		fillFlatBottom(dst, v1, v2, boundary, col)
		fillFlatTop(dst, v3, v2, boundary, col)
	}
}

// fillFlatBottom fills a triangle whose flat edge (b, c) lies below the
// apex. Two running x-values walk down the non-flat edges, one span
// per scanline from the apex to the flat edge inclusive.
func fillFlatBottom(dst Canvas, apex, b, c Point, col color.RGBA) {
	invSlope1 := float64(b.X-apex.X) / float64(b.Y-apex.Y)
	invSlope2 := float64(c.X-apex.X) / float64(c.Y-apex.Y)

	x1 := float64(apex.X)
	x2 := float64(apex.X)
	for y := apex.Y; y <= b.Y; y++ {
		SimpleLine(dst, Pt(int(x1), y), Pt(int(x2), y), col)
		x1 += invSlope1
		x2 += invSlope2
	}
}

// fillFlatTop is the mirror image of fillFlatBottom: the flat edge
// (b, c) lies above the apex, and the spans walk upward from the apex.
func fillFlatTop(dst Canvas, apex, b, c Point, col color.RGBA) {
	invSlope1 := float64(apex.X-b.X) / float64(apex.Y-b.Y)
	invSlope2 := float64(apex.X-c.X) / float64(apex.Y-c.Y)

	x1 := float64(apex.X)
	x2 := float64(apex.X)
	for y := apex.Y; y >= b.Y; y-- {
		SimpleLine(dst, Pt(int(x1), y), Pt(int(x2), y), col)
		x1 -= invSlope1
		x2 -= invSlope2
	}
}
