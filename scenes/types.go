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

// Package scenes is a declarative catalogue of demo scenes for the
// pixel rasteriser. The catalogue is shared between the package tests,
// the benchmarks, and the command line driver; scene names are used as
// output image filenames.
package scenes

import (
	"image/color"

	"seehuhn.de/go/pixel"
)

// Scene describes one renderable image.
type Scene struct {
	Name       string // lowercase a-z and _ only
	Width      int    // canvas width in pixels
	Height     int    // canvas height in pixels
	Background color.RGBA
	Ops        []pixel.Op
}

// Render renders the scene into a freshly allocated image.
func (s Scene) Render() *pixel.Image {
	r := pixel.Renderer{
		Width:      s.Width,
		Height:     s.Height,
		Background: s.Background,
	}
	return r.Render(s.Ops...)
}

// Named palette used by the catalogue.
var (
	black   = color.RGBA{A: 255}
	white   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red     = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	green   = color.RGBA{R: 40, G: 160, B: 60, A: 255}
	blue    = color.RGBA{R: 50, G: 90, B: 220, A: 255}
	yellow  = color.RGBA{R: 240, G: 200, B: 40, A: 255}
	brown   = color.RGBA{R: 130, G: 90, B: 40, A: 255}
	skyBlue = color.RGBA{R: 160, G: 205, B: 235, A: 255}
)
