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
	"image"
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// Point is an integer pixel coordinate. The standard library type is
// used directly so that callers can interoperate with the image
// package without conversions.
type Point = image.Point

// Pt is a shorthand for constructing a Point.
func Pt(x, y int) Point {
	return image.Point{X: x, Y: y}
}

// Segment is an ordered pair of pixel coordinates. No ordering between
// the endpoints is assumed; P0 == P1 denotes a single pixel.
type Segment struct {
	P0, P1 Point
}

// ColoredSegment pairs a segment with the colour it is to be drawn in.
// It is the unit of work consumed by [Segments]: generators produce
// colored segments, the line rasteriser consumes them.
type ColoredSegment struct {
	Segment
	Color color.RGBA
}

// pixelAt truncates a float position to the pixel containing it.
// Truncation (not rounding) matches the conversion used throughout the
// generators, so float intermediates land on stable pixels.
func pixelAt(v vec.Vec2) Point {
	return Point{X: int(v.X), Y: int(v.Y)}
}

// floatAt converts a pixel coordinate to a float position.
func floatAt(p Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}
