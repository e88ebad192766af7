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

// Package pixel rasterises 2D geometric primitives into discrete,
// flat-coloured pixels on a fixed-size canvas.
//
// The package implements the classic integer-only algorithms: Bresenham
// line stepping, midpoint circle stepping with 8-way octant symmetry,
// and scanline triangle filling over flat-edge decomposition. On top of
// these sit a number of shape generators (stars, regular polygons,
// rotated squares, recursive fractal trees) and a composite heart
// silhouette built from half-circles and a triangle.
//
// All drawing operations are pure functions of their geometric inputs
// and a single colour; they keep no state between calls and write only
// through the [Canvas] interface. Writes outside the canvas bounds are
// clipped by the canvas, not by the rasterisation code, so primitives
// may extend beyond the visible area without special handling.
//
// No anti-aliasing, sub-pixel precision, transforms or colour blending
// are performed: every primitive covers whole pixels with one colour,
// and overlapping primitives resolve by last-write-wins.
package pixel
