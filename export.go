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
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// EncodePNG writes the image to w in PNG format.
func (img *Image) EncodePNG(w io.Writer) error {
	return png.Encode(w, img.ToImage())
}

// EncodeBMP writes the image to w in BMP format.
func (img *Image) EncodeBMP(w io.Writer) error {
	return bmp.Encode(w, img.ToImage())
}

// WritePNG saves the image to a PNG file.
func (img *Image) WritePNG(path string) error {
	return writeFile(path, img.EncodePNG)
}

// WriteBMP saves the image to a BMP file.
func (img *Image) WriteBMP(path string) error {
	return writeFile(path, img.EncodeBMP)
}

func writeFile(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = encode(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
