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
	"errors"
	"fmt"
	"image/color"
)

// ErrBounds reports that a composite shape would not fit on the canvas
// at the requested size and position.
var ErrBounds = errors.New("shape exceeds canvas bounds")

// Heart draws a filled heart silhouette: two filled half-circles side
// by side forming the lobes, and a filled triangle forming the tip.
// The lobe radius is width/4; the lobes are centred at
// center.X ± width/4 on the center scanline, and the triangle spans
// the full width of the lobes with its apex at
// center.Y + height - width/4.
//
// Before any pixel is written, the heart's bounding box
// [cx-width/2, cx+width/2] × [cy-width/4, cy+height-width/4] is
// checked against the canvas; if it does not fit, Heart returns an
// error wrapping [ErrBounds] and the canvas is left unchanged.
func Heart(dst Canvas, center Point, width, height int, col color.RGBA) error {
	circleR := width / 4
	cx, cy := center.X, center.Y

	// Conservative symmetric bound: the whole bounding box must lie
	// inside the canvas, in both axes.
	if cx-2*circleR < 0 || cx+2*circleR >= dst.Width() ||
		cy-circleR < 0 || cy+height-circleR >= dst.Height() {
		return fmt.Errorf("heart %dx%d at %v on %dx%d canvas: %w",
			width, height, center, dst.Width(), dst.Height(), ErrBounds)
	}

	fillHalfCircleTop(dst, Pt(cx-circleR, cy), circleR, col)
	fillHalfCircleTop(dst, Pt(cx+circleR, cy), circleR, col)
	FillTriangle(dst,
		Pt(cx-2*circleR, cy),
		Pt(cx+2*circleR, cy),
		Pt(cx, cy+height-circleR),
		col)
	return nil
}
