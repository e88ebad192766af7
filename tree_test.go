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
	"math"
	"testing"
)

func TestFractalTreeSegmentCount(t *testing.T) {
	for depth := 0; depth <= 8; depth++ {
		segs := FractalTree(Pt(256, 500), 100, -math.Pi/2, 0.7, math.Pi/6, 0.9, depth, testCol)
		want := 1<<(depth+1) - 1
		if len(segs) != want {
			t.Errorf("depth %d: got %d segments, want %d", depth, len(segs), want)
		}
	}
}

func TestFractalTreeTrunk(t *testing.T) {
	// depth 0: exactly one segment of the requested length and
	// direction.
	segs := FractalTree(Pt(100, 200), 50, -math.Pi/2, 0.7, math.Pi/6, 0.9, 0, testCol)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	if segs[0].P0 != Pt(100, 200) {
		t.Errorf("trunk starts at %v, want (100,200)", segs[0].P0)
	}
	if segs[0].P1 != Pt(100, 150) {
		t.Errorf("trunk ends at %v, want (100,150)", segs[0].P1)
	}
}

func TestFractalTreeBranching(t *testing.T) {
	segs := FractalTree(Pt(0, 0), 64, 0, 0.5, math.Pi/4, 1, 2, testCol)
	if len(segs) != 7 {
		t.Fatalf("got %d segments, want 7", len(segs))
	}

	// Preorder: trunk, then the whole low-angle subtree, then the
	// whole high-angle subtree. Children grow from their parent's
	// endpoint.
	trunk := segs[0]
	left := segs[1]
	right := segs[4]
	if left.P0 != trunk.P1 || right.P0 != trunk.P1 {
		t.Errorf("children start at %v and %v, want trunk end %v",
			left.P0, right.P0, trunk.P1)
	}
	if segs[2].P0 != left.P1 || segs[3].P0 != left.P1 {
		t.Errorf("grandchildren of the first branch do not share its endpoint")
	}

	// Each level halves the branch length (within truncation slack).
	trunkLen := segLength(trunk.Segment)
	leftLen := segLength(left.Segment)
	if math.Abs(leftLen-trunkLen/2) > 2 {
		t.Errorf("child length %.1f, want about %.1f", leftLen, trunkLen/2)
	}
}

func TestFractalTreeDeterministic(t *testing.T) {
	a := FractalTree(Pt(256, 500), 120, -math.Pi/2, 0.7, math.Pi/7, 0.9, 6, testCol)
	b := FractalTree(Pt(256, 500), 120, -math.Pi/2, 0.7, math.Pi/7, 0.9, 6, testCol)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("segment %d differs between identical invocations", i)
		}
	}
}

func segLength(s Segment) float64 {
	dx := float64(s.P1.X - s.P0.X)
	dy := float64(s.P1.Y - s.P0.Y)
	return math.Hypot(dx, dy)
}
