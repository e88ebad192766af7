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

import "seehuhn.de/go/pixel"

var shapeScenes = []Scene{
	{
		Name:       "star",
		Width:      256,
		Height:     256,
		Background: black,
		Ops: []pixel.Op{
			func(c pixel.Canvas) { pixel.Star(c, pixel.Pt(128, 128), 100, 12, yellow) },
		},
	},
	{
		Name:       "polygon_ring",
		Width:      256,
		Height:     256,
		Background: white,
		Ops: []pixel.Op{
			func(c pixel.Canvas) { pixel.Polygon(c, pixel.Pt(128, 128), 100, 3, red) },
			func(c pixel.Canvas) { pixel.Polygon(c, pixel.Pt(128, 128), 100, 5, green) },
			func(c pixel.Canvas) { pixel.Polygon(c, pixel.Pt(128, 128), 100, 8, blue) },
		},
	},
	{
		Name:       "squares",
		Width:      256,
		Height:     256,
		Background: white,
		Ops: []pixel.Op{
			func(c pixel.Canvas) { pixel.Square(c, pixel.Pt(128, 128), 110, black) },
			func(c pixel.Canvas) { pixel.Square(c, pixel.Pt(128, 128), 80, red) },
			func(c pixel.Canvas) { pixel.Square(c, pixel.Pt(128, 128), 50, blue) },
		},
	},
	{
		Name:       "circles",
		Width:      256,
		Height:     256,
		Background: white,
		Ops: []pixel.Op{
			func(c pixel.Canvas) { pixel.Circle(c, pixel.Pt(128, 128), 100, black) },
			func(c pixel.Canvas) { pixel.Circle(c, pixel.Pt(128, 128), 70, red) },
			func(c pixel.Canvas) { pixel.Circle(c, pixel.Pt(128, 128), 40, blue) },
			func(c pixel.Canvas) { pixel.Circle(c, pixel.Pt(128, 128), 0, black) },
		},
	},
}
