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

package scenes

import (
	"image/color"
	"math"

	"seehuhn.de/go/pixel"
)

var lineScenes = []Scene{
	{
		Name:       "fan",
		Width:      256,
		Height:     256,
		Background: white,
		Ops:        []pixel.Op{lineFan(pixel.Pt(128, 128), 110, 24, black)},
	},
	{
		Name:       "grid",
		Width:      256,
		Height:     256,
		Background: white,
		Ops:        []pixel.Op{grid(256, 256, 32, blue)},
	},
	{
		Name:       "triangle_fill",
		Width:      512,
		Height:     512,
		Background: white,
		Ops: []pixel.Op{
			func(c pixel.Canvas) {
				pixel.FillTriangle(c,
					pixel.Pt(150, 150), pixel.Pt(270, 152), pixel.Pt(450, 400),
					green)
			},
		},
	},
}

// lineFan draws count general lines from the center to equally spaced
// directions, exercising every Bresenham octant.
func lineFan(center pixel.Point, radius float64, count int, col color.RGBA) pixel.Op {
	return func(c pixel.Canvas) {
		for i := range count {
			angle := 2 * math.Pi * float64(i) / float64(count)
			end := pixel.Pt(
				center.X+int(radius*math.Cos(angle)),
				center.Y+int(radius*math.Sin(angle)),
			)
			pixel.Line(c, center, end, col)
		}
	}
}

// grid draws axis-aligned lines through the fast path.
func grid(width, height, step int, col color.RGBA) pixel.Op {
	return func(c pixel.Canvas) {
		for x := 0; x < width; x += step {
			pixel.SimpleLine(c, pixel.Pt(x, 0), pixel.Pt(x, height-1), col)
		}
		for y := 0; y < height; y += step {
			pixel.SimpleLine(c, pixel.Pt(0, y), pixel.Pt(width-1, y), col)
		}
	}
}
