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
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// FractalTree generates a recursively branching tree as a sequence of
// colored segments, ready for [Segments].
//
// The first segment extends from start over the given length in the
// given direction (radians). If depth > 0, two child branches recurse
// from the segment's endpoint with the length scaled by lengthFactor,
// directions direction ± spread, and the spread scaled by
// spreadFactor. depth == 0 emits exactly one segment, so the result
// always holds exactly 2^(depth+1) - 1 segments, in preorder.
//
// Branch endpoints are carried between recursion levels in float
// coordinates and truncated to pixels only when a segment is recorded,
// so deep trees do not accumulate rounding drift.
func FractalTree(start Point, length, direction, lengthFactor, spread, spreadFactor float64, depth int, col color.RGBA) []ColoredSegment {
	segs := make([]ColoredSegment, 0, 1<<(depth+1)-1)
	return appendBranch(segs, floatAt(start), length, direction, lengthFactor, spread, spreadFactor, depth, col)
}

// appendBranch emits the branch at start and recurses into its two
// children. The two subtrees share no state and could be evaluated in
// any order; preorder keeps the traversal deterministic.
func appendBranch(segs []ColoredSegment, start vec.Vec2, length, direction, lengthFactor, spread, spreadFactor float64, depth int, col color.RGBA) []ColoredSegment {
	end := start.Add(dirVec(direction).Mul(length))
	segs = append(segs, ColoredSegment{
		Segment: Segment{P0: pixelAt(start), P1: pixelAt(end)},
		Color:   col,
	})
	if depth > 0 {
		childLen := length * lengthFactor
		childSpread := spread * spreadFactor
		segs = appendBranch(segs, end, childLen, direction-spread, lengthFactor, childSpread, spreadFactor, depth-1, col)
		segs = appendBranch(segs, end, childLen, direction+spread, lengthFactor, childSpread, spreadFactor, depth-1, col)
	}
	return segs
}
