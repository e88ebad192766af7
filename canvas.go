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
)

// Canvas is the destination of all rasterisation operations: a
// fixed-size grid of colours with a single write operation.
//
// Implementations must tolerate out-of-bounds coordinates on SetPixel
// and discard such writes silently. The rasterisation code relies on
// this and performs no clipping of its own.
type Canvas interface {
	SetPixel(x, y int, col color.RGBA)
	Width() int
	Height() int
}

// Image is an in-memory RGBA pixel buffer implementing [Canvas].
// Pixels are stored row-major, 4 bytes per pixel.
type Image struct {
	width  int
	height int
	pix    []uint8
}

// NewImage creates an image of the given size with all pixels set to
// transparent black.
func NewImage(width, height int) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// Width returns the horizontal extent of the image in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the vertical extent of the image in pixels.
func (img *Image) Height() int { return img.height }

// SetPixel writes one pixel. Coordinates outside the image bounds are
// ignored.
func (img *Image) SetPixel(x, y int, col color.RGBA) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	i := (y*img.width + x) * 4
	img.pix[i+0] = col.R
	img.pix[i+1] = col.G
	img.pix[i+2] = col.B
	img.pix[i+3] = col.A
}

// At returns the colour of one pixel. Coordinates outside the image
// bounds read as transparent black.
func (img *Image) At(x, y int) color.RGBA {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return color.RGBA{}
	}
	i := (y*img.width + x) * 4
	return color.RGBA{
		R: img.pix[i+0],
		G: img.pix[i+1],
		B: img.pix[i+2],
		A: img.pix[i+3],
	}
}

// Clear fills the whole image with one colour.
func (img *Image) Clear(col color.RGBA) {
	for i := 0; i < len(img.pix); i += 4 {
		img.pix[i+0] = col.R
		img.pix[i+1] = col.G
		img.pix[i+2] = col.B
		img.pix[i+3] = col.A
	}
}

// ToImage copies the buffer into a standard library image.
func (img *Image) ToImage() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	copy(out.Pix, img.pix)
	return out
}
