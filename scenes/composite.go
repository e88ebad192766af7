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

var compositeScenes = []Scene{
	{
		Name:       "heart",
		Width:      512,
		Height:     512,
		Background: white,
		Ops: []pixel.Op{
			func(c pixel.Canvas) {
				// A heart that fits comfortably; the bounds error
				// cannot occur at this size.
				_ = pixel.Heart(c, pixel.Pt(256, 256), 200, 200, red)
			},
		},
	},
	{
		Name:       "heart_small",
		Width:      128,
		Height:     128,
		Background: white,
		Ops: []pixel.Op{
			func(c pixel.Canvas) {
				_ = pixel.Heart(c, pixel.Pt(64, 48), 80, 80, red)
			},
		},
	},
}
