// seehuhn.de/go/genart - generative art from the command line
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

package region

import (
	"errors"
	"image"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/genart/palette"
	"seehuhn.de/go/genart/surface"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))
}

func TestIsSplittable(t *testing.T) {
	tests := []struct {
		w, h, border int
		want         bool
	}{
		{10, 100, 2, false}, // inner 6 is not > 6
		{12, 100, 2, true},  // inner 8 > 6
		{100, 10, 2, false},
		{100, 12, 2, true},
		{100, 100, 40, false}, // inner 20 is not > 82
		{4, 4, 0, true},       // inner 4 > 2
		{2, 4, 0, false},
		{0, 0, 0, false},
	}
	for _, test := range tests {
		r := ForCanvas(test.w, test.h, test.border)
		if got := r.IsSplittable(); got != test.want {
			t.Errorf("%v: IsSplittable() = %t, want %t", r, got, test.want)
		}
	}
}

func TestInner(t *testing.T) {
	r := NewRange(10, 30, 3)
	want := Range{Min: 13, Max: 27, Border: 3}
	if d := cmp.Diff(want, r.Inner()); d != "" {
		t.Errorf("unexpected inner range (-want +got):\n%s", d)
	}
	if r.Size() != 20 || r.Inner().Size() != 14 {
		t.Errorf("sizes %d, %d, want 20, 14", r.Size(), r.Inner().Size())
	}
}

func TestSplitGeometry(t *testing.T) {
	rng := newRand(1)
	for i := range 2000 {
		border := rng.IntN(5)
		w := 2*border + 2*(border+1) + 1 + rng.IntN(200)
		h := 2*border + 2*(border+1) + 1 + rng.IntN(200)
		x0, y0 := rng.IntN(50), rng.IntN(50)
		r := New(NewRange(x0, x0+w, border), NewRange(y0, y0+h, border), border)
		if !r.IsSplittable() {
			t.Fatalf("%d: test region %v not splittable", i, r)
		}

		a, b := r.Split(rng)
		xi, yi := r.X.Inner(), r.Y.Inner()

		if a.Border != border || b.Border != border ||
			a.X.Border != border || a.Y.Border != border ||
			b.X.Border != border || b.Y.Border != border {
			t.Fatalf("%d: border not inherited: %v, %v", i, a, b)
		}

		switch {
		case a.Y == yi && b.Y == yi:
			// cut along the x-axis: the x-ranges partition the inner x-range
			if a.X.Min != xi.Min || a.X.Max != b.X.Min || b.X.Max != xi.Max {
				t.Fatalf("%d: %v does not partition into %v, %v", i, xi, a.X, b.X)
			}
			if a.X.Inner().Max > b.X.Inner().Min {
				t.Fatalf("%d: inner x-ranges overlap: %v, %v", i, a.X.Inner(), b.X.Inner())
			}
		case a.X == xi && b.X == xi:
			if a.Y.Min != yi.Min || a.Y.Max != b.Y.Min || b.Y.Max != yi.Max {
				t.Fatalf("%d: %v does not partition into %v, %v", i, yi, a.Y, b.Y)
			}
			if a.Y.Inner().Max > b.Y.Inner().Min {
				t.Fatalf("%d: inner y-ranges overlap: %v, %v", i, a.Y.Inner(), b.Y.Inner())
			}
		default:
			t.Fatalf("%d: children %v, %v share no full inner range of %v", i, a, b, r)
		}

		for _, c := range []Region{a, b} {
			if c.X.Size() < 0 || c.Y.Size() < 0 {
				t.Fatalf("%d: negative size in %v", i, c)
			}
			if c.X.Min < xi.Min || c.X.Max > xi.Max || c.Y.Min < yi.Min || c.Y.Max > yi.Max {
				t.Fatalf("%d: child %v exceeds inner part of %v", i, c, r)
			}
		}
	}
}

// TestSplitAxisWeights checks that the longer side is cut more often.
func TestSplitAxisWeights(t *testing.T) {
	rng := newRand(2)
	r := ForCanvas(300, 30, 0) // inner sizes 300 and 30
	vertical := 0
	const n = 10000
	for range n {
		a, _ := r.Split(rng)
		if a.Y.Size() == 30 {
			vertical++
		}
	}
	// expected fraction 300/330
	if frac := float64(vertical) / n; frac < 0.87 || frac > 0.95 {
		t.Errorf("x-axis cut in %.3f of all splits, want about 0.909", frac)
	}
}

func TestSplitPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("split of unsplittable region did not panic")
		}
	}()
	ForCanvas(10, 10, 2).Split(newRand(3))
}

func TestNewNegativeBorder(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("negative border accepted")
		}
	}()
	ForCanvas(10, 10, -1)
}

func TestGradient(t *testing.T) {
	r := New(NewRange(10, 50, 2), NewRange(20, 30, 2), 2)
	p := palette.Random(newRand(4))
	g := r.Gradient(p)

	if g.P0 != (vec.Vec2{X: 10, Y: 20}) || g.P1 != (vec.Vec2{X: 50, Y: 30}) {
		t.Errorf("gradient axis %v -> %v", g.P0, g.P1)
	}
	if d := cmp.Diff(p.Stops(), g.Stops); d != "" {
		t.Errorf("unexpected stops (-want +got):\n%s", d)
	}

	b := r.Rect()
	if b.LLx != 10 || b.LLy != 20 || b.URx != 50 || b.URy != 30 {
		t.Errorf("Rect() = %v", b)
	}
}

func TestRenderDepthZero(t *testing.T) {
	rng := newRand(5)
	rec := &surface.Recorder{}
	r := ForCanvas(100, 100, 2)
	err := r.Render(rec, palette.Random(rng), 0, rng)
	if err != nil {
		t.Fatal(err)
	}
	if n := rec.Count(surface.OpFill); n != 1 {
		t.Errorf("%d fills, want 1", n)
	}
	want := []surface.Cmd{{Op: surface.OpRectangle, X: 0, Y: 0, W: 100, H: 100}}
	if d := cmp.Diff(want, rec.Filled()); d != "" {
		t.Errorf("unexpected rectangles (-want +got):\n%s", d)
	}
}

func TestRenderDepthOne(t *testing.T) {
	rng := newRand(6)
	rec := &surface.Recorder{}
	r := ForCanvas(100, 100, 2)
	err := r.Render(rec, palette.Random(rng), 1, rng)
	if err != nil {
		t.Fatal(err)
	}
	filled := rec.Filled()
	if len(filled) != 3 {
		t.Fatalf("%d fills, want 3", len(filled))
	}

	// the children cover the inner part of the root, the first child is
	// the left or upper one
	a, b := filled[1], filled[2]
	if a.X != 2 || a.Y != 2 {
		t.Errorf("first child starts at (%g, %g), want (2, 2)", a.X, a.Y)
	}
	if b.X+b.W != 98 || b.Y+b.H != 98 {
		t.Errorf("second child ends at (%g, %g), want (98, 98)", b.X+b.W, b.Y+b.H)
	}
	if b.X < a.X || b.Y < a.Y {
		t.Errorf("children painted out of order: %v, %v", a, b)
	}
}

func TestRenderUnsplittable(t *testing.T) {
	rng := newRand(7)
	rec := &surface.Recorder{}
	r := ForCanvas(100, 100, 40)
	err := r.Render(rec, palette.Random(rng), 10, rng)
	if err != nil {
		t.Fatal(err)
	}
	if n := rec.Count(surface.OpFill); n != 1 {
		t.Errorf("%d fills, want 1", n)
	}
}

func TestRenderTreeSize(t *testing.T) {
	rng := newRand(8)
	for depth := range uint(8) {
		rec := &surface.Recorder{}
		r := ForCanvas(1024, 768, 2)
		err := r.Render(rec, palette.Random(rng), depth, rng)
		if err != nil {
			t.Fatal(err)
		}
		n := rec.Count(surface.OpFill)
		if n%2 != 1 || n > 1<<(depth+1)-1 {
			t.Errorf("depth %d: %d fills", depth, n)
		}
		if rec.Count(surface.OpSetSource) != n {
			t.Errorf("depth %d: %d sources for %d fills",
				depth, rec.Count(surface.OpSetSource), n)
		}
	}
}

// TestRenderPaletteLength checks that each painted gradient has five stops.
func TestRenderPaletteLength(t *testing.T) {
	rng := newRand(9)
	rec := &surface.Recorder{}
	err := ForCanvas(500, 500, 1).Render(rec, palette.Random(rng), 6, rng)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range rec.Cmds {
		if c.Op == surface.OpSetSource && len(c.Source.Stops) != 5 {
			t.Fatalf("gradient with %d stops", len(c.Source.Stops))
		}
	}
}

func TestRenderError(t *testing.T) {
	rng := newRand(10)
	myErr := errors.New("out of ink")
	rec := &surface.Recorder{FailFill: 2, Err: myErr}
	err := ForCanvas(100, 100, 2).Render(rec, palette.Random(rng), 5, rng)
	if err != myErr {
		t.Fatalf("Render() = %v, want %v", err, myErr)
	}
	if n := rec.Count(surface.OpFill); n != 1 {
		t.Errorf("%d fills recorded, want 1 (rendering should stop)", n)
	}
}

func TestRenderRaster(t *testing.T) {
	rng := newRand(11)
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	err := ForCanvas(64, 48, 1).Render(surface.NewRaster(img), palette.Random(rng), 4, rng)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if a := img.RGBAAt(x, y).A; a != 255 {
				t.Fatalf("pixel (%d, %d) has alpha %d", x, y, a)
			}
		}
	}
}

func TestRenderSeeded(t *testing.T) {
	render := func() []surface.Cmd {
		rng := newRand(12)
		rec := &surface.Recorder{}
		ForCanvas(300, 200, 2).Render(rec, palette.Random(rng), 6, rng)
		return rec.Filled()
	}
	if d := cmp.Diff(render(), render()); d != "" {
		t.Errorf("same seed, different renderings (-a +b):\n%s", d)
	}
}

func BenchmarkRenderRaster(b *testing.B) {
	img := image.NewRGBA(image.Rect(0, 0, 1024, 1024))
	for i := 0; i < b.N; i++ {
		rng := newRand(uint64(i))
		s := surface.NewRaster(img)
		err := ForCanvas(1024, 1024, 2).Render(s, palette.Random(rng), 10, rng)
		if err != nil {
			b.Fatal(err)
		}
	}
}
