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

// Circle draws a circle outline using the integer midpoint algorithm.
// Only one octant is stepped explicitly; the other seven pixels per
// iteration follow from the 8-fold symmetry of the circle about its
// center, so the output pixel set is exactly symmetric by
// construction.
//
// A radius of 0 degenerates to the single center pixel. Negative radii
// draw nothing.
func Circle(dst Canvas, center Point, radius int, col color.RGBA) {
	if radius < 0 {
		return
	}

	cx, cy := center.X, center.Y
	x := radius
	y := 0
	dx := 1
	dy := 1
	err := dx - 2*radius

	for x >= y {
		dst.SetPixel(cx+x, cy+y, col)
		dst.SetPixel(cx+y, cy+x, col)
		dst.SetPixel(cx-y, cy+x, col)
		dst.SetPixel(cx-x, cy+y, col)
		dst.SetPixel(cx-x, cy-y, col)
		dst.SetPixel(cx-y, cy-x, col)
		dst.SetPixel(cx+y, cy-x, col)
		dst.SetPixel(cx+x, cy-y, col)

		// Both branches may fire in the same iteration, stepping
		// diagonally.
		if err <= 0 {
			y++
			err += dy
			dy += 2
		}
		if err > 0 {
			x--
			dx += 2
			err += dx - 2*radius
		}
	}
}

// fillHalfCircleTop fills the upper half of a disc (rows at or above
// the center) by drawing the horizontal span between the x-symmetric
// boundary points at each scan level of the midpoint stepping. The
// heart builder is the sole consumer.
func fillHalfCircleTop(dst Canvas, center Point, radius int, col color.RGBA) {
	if radius < 0 {
		return
	}

	cx, cy := center.X, center.Y
	x := radius
	y := 0
	dx := 1
	dy := 1
	err := dx - 2*radius

	for x >= y {
		SimpleLine(dst, Pt(cx-x, cy-y), Pt(cx+x, cy-y), col)
		SimpleLine(dst, Pt(cx-y, cy-x), Pt(cx+y, cy-x), col)

		if err <= 0 {
			y++
			err += dy
			dy += 2
		}
		if err > 0 {
			x--
			dx += 2
			err += dx - 2*radius
		}
	}
}
