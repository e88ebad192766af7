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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Star draws numPoints independent spokes from the center, one per
// equally-spaced angle over a full turn, each of the given radius.
func Star(dst Canvas, center Point, radius float64, numPoints int, col color.RGBA) {
	c := floatAt(center)
	for i := range numPoints {
		angle := 2 * math.Pi * float64(i) / float64(numPoints)
		tip := c.Add(dirVec(angle).Mul(radius))
		Line(dst, center, pixelAt(tip), col)
	}
}

// Polygon draws the closed outline of a regular polygon with numSides
// corners at equal angular steps of 2π/numSides around the center.
func Polygon(dst Canvas, center Point, radius float64, numSides int, col color.RGBA) {
	if numSides < 2 {
		return
	}
	c := floatAt(center)
	corners := make([]Point, numSides)
	for i := range numSides {
		angle := 2 * math.Pi * float64(i) / float64(numSides)
		corners[i] = pixelAt(c.Add(dirVec(angle).Mul(radius)))
	}
	for i := range numSides {
		Line(dst, corners[i], corners[(i+1)%numSides], col)
	}
}

// squareDiag is sin(45°) == cos(45°), the fixed constant placing the
// corners of the rotated square.
const squareDiag = math.Sqrt2 / 2

// SquareSegments returns the closed outline of a 45°-rotated square of
// the given radius as four colored segments, for later batch
// rasterisation with [Segments].
func SquareSegments(center Point, radius float64, col color.RGBA) []ColoredSegment {
	c := floatAt(center)
	d := radius * squareDiag
	corners := [4]Point{
		pixelAt(c.Add(vec.Vec2{X: d, Y: d})),
		pixelAt(c.Add(vec.Vec2{X: -d, Y: d})),
		pixelAt(c.Add(vec.Vec2{X: -d, Y: -d})),
		pixelAt(c.Add(vec.Vec2{X: d, Y: -d})),
	}

	segs := make([]ColoredSegment, 4)
	for i := range corners {
		segs[i] = ColoredSegment{
			Segment: Segment{P0: corners[i], P1: corners[(i+1)%4]},
			Color:   col,
		}
	}
	return segs
}

// Square draws a 45°-rotated square outline directly. The pixels are
// identical to rasterising the output of [SquareSegments], because
// that is exactly what it does.
func Square(dst Canvas, center Point, radius float64, col color.RGBA) {
	Segments(dst, SquareSegments(center, radius, col))
}

// dirVec returns the unit vector pointing in the given direction
// (radians, x-axis zero, counter-clockwise in mathematical
// orientation).
func dirVec(angle float64) vec.Vec2 {
	return vec.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}
