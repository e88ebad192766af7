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
	"math"

	"seehuhn.de/go/pixel"
)

var treeScenes = []Scene{
	{
		Name:       "tree_shallow",
		Width:      512,
		Height:     512,
		Background: skyBlue,
		Ops:        []pixel.Op{tree(pixel.Pt(256, 480), 120, 4)},
	},
	{
		Name:       "tree_deep",
		Width:      512,
		Height:     512,
		Background: skyBlue,
		Ops:        []pixel.Op{tree(pixel.Pt(256, 500), 130, 10)},
	},
}

// tree grows upward from start; direction -π/2 points to the top of
// the canvas because y grows downward.
func tree(start pixel.Point, length float64, depth int) pixel.Op {
	return func(c pixel.Canvas) {
		segs := pixel.FractalTree(start, length, -math.Pi/2, 0.7, math.Pi/7, 0.9, depth, brown)
		pixel.Segments(c, segs)
	}
}
