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

// Op is a single rendering operation applied to a canvas. Operations
// take all geometric and colour parameters explicitly; they capture no
// surrounding mutable state.
type Op func(Canvas)

// Renderer holds the per-render configuration. One value is
// constructed per render pass with all parameters enumerated; there
// are no module-level defaults.
type Renderer struct {
	Width      int
	Height     int
	Background color.RGBA
}

// Render allocates a canvas of the configured size, clears it to the
// background colour, applies the operations in sequence order, and
// returns the filled image. The image is owned exclusively by this
// render pass until Render returns.
func (r Renderer) Render(ops ...Op) *Image {
	img := NewImage(r.Width, r.Height)
	img.Clear(r.Background)
	for _, op := range ops {
		op(img)
	}
	return img
}
