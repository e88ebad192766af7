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
	"fmt"
	"image/color"
)

// SimpleLine draws a horizontal or vertical line segment, inclusive of
// both endpoints. The endpoints must share at least one coordinate;
// violating this is a programming error in the caller and panics.
//
// This is the fast path used by the scanline triangle filler, which
// guarantees the precondition structurally. For arbitrary endpoints
// use [Line].
func SimpleLine(dst Canvas, p0, p1 Point, col color.RGBA) {
	switch {
	case p0.Y == p1.Y:
		x0, x1 := minMax(p0.X, p1.X)
		for x := x0; x <= x1; x++ {
			dst.SetPixel(x, p0.Y, col)
		}
	case p0.X == p1.X:
		y0, y1 := minMax(p0.Y, p1.Y)
		for y := y0; y <= y1; y++ {
			dst.SetPixel(p0.X, y, col)
		}
	default:
		panic(fmt.Sprintf("pixel: SimpleLine endpoints %v, %v are not axis-aligned", p0, p1))
	}
}

// Line draws an arbitrary line segment using Bresenham's integer
// algorithm: O(max(|dx|,|dy|)) pixel writes, each within one unit of
// the ideal real-valued line. Both endpoints are always included,
// regardless of traversal direction.
func Line(dst Canvas, p0, p1 Point, col color.RGBA) {
	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y

	// When the segment is steep, walk along y instead of x so the
	// major axis is always the one with the greater extent. The
	// roles are swapped back for each pixel write.
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}

	// Normalise traversal to run from lower to higher major
	// coordinate.
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	yi := 1
	if y1 < y0 {
		yi = -1
	}

	d := 2*dy - dx
	y := y0
	for x := x0; x <= x1; x++ {
		if steep {
			dst.SetPixel(y, x, col)
		} else {
			dst.SetPixel(x, y, col)
		}
		if d > 0 {
			y += yi
			d += 2 * (dy - dx)
		} else {
			d += 2 * dy
		}
	}
}

// Segments rasterises a batch of colored segments in sequence order.
// Order matters only where segments overlap: the last write wins.
func Segments(dst Canvas, segs []ColoredSegment) {
	for _, s := range segs {
		Line(dst, s.P0, s.P1, s.Color)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
