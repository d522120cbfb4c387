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

// Package region implements the recursive subdivision of a canvas into
// rectangles filled with colour gradients.
//
// A [Region] is painted with a linear gradient over its full extent.  If
// the region is large enough, it is then split into two halves, and each
// half is painted on top, with a palette derived from the parent palette.
// Splitting happens inside the border of the parent, so that a strip of
// the parent's gradient remains visible around the children.
package region

import (
	"fmt"
	"math/rand/v2"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/genart/gradient"
	"seehuhn.de/go/genart/palette"
	"seehuhn.de/go/genart/surface"
)

// Range is an interval [Min, Max) of pixel coordinates along one axis,
// together with the border width used when the range is split.
type Range struct {
	Min, Max int
	Border   int
}

// NewRange returns the range [min, max) with the given border.
func NewRange(min, max, border int) Range {
	return Range{Min: min, Max: max, Border: border}
}

// Size returns the length of the range.
func (r Range) Size() int {
	return r.Max - r.Min
}

// Inner returns the range shrunk by the border on both ends.
func (r Range) Inner() Range {
	return Range{Min: r.Min + r.Border, Max: r.Max - r.Border, Border: r.Border}
}

// split divides the range at the given offset from Min.
func (r Range) split(at int) (Range, Range) {
	return Range{Min: r.Min, Max: r.Min + at, Border: r.Border},
		Range{Min: r.Min + at, Max: r.Max, Border: r.Border}
}

// Region is an axis-aligned rectangle with a border.
type Region struct {
	X, Y   Range
	Border int
}

// New returns the region with the given ranges and border.
// The border must be non-negative.
func New(x, y Range, border int) Region {
	if border < 0 {
		panic(fmt.Sprintf("region: negative border %d", border))
	}
	return Region{X: x, Y: y, Border: border}
}

// ForCanvas returns the region covering a canvas of the given size.
func ForCanvas(width, height, border int) Region {
	return New(NewRange(0, width, border), NewRange(0, height, border), border)
}

// Rect returns the outer bounds of the region.
func (r Region) Rect() rect.Rect {
	return rect.Rect{
		LLx: float64(r.X.Min),
		LLy: float64(r.Y.Min),
		URx: float64(r.X.Max),
		URy: float64(r.Y.Max),
	}
}

// IsSplittable reports whether the region is large enough to be split.
//
// This is the case if on both axes the size of the inner range exceeds
// 2*(Border+1).
func (r Region) IsSplittable() bool {
	limit := 2 * (r.Border + 1)
	return r.X.Inner().Size() > limit && r.Y.Inner().Size() > limit
}

// Split divides the inner part of the region into two regions.
//
// The split position is chosen uniformly along the combined length of the
// inner x- and y-ranges:  positions on the x-range give a cut along a
// vertical line, positions on the y-range give a cut along a horizontal
// line.  This way longer sides are more likely to be cut.
//
// Split panics if the region is not splittable.
func (r Region) Split(rng *rand.Rand) (Region, Region) {
	if !r.IsSplittable() {
		panic(fmt.Sprintf("region: split of unsplittable region %v", r))
	}

	xInner := r.X.Inner()
	yInner := r.Y.Inner()
	at := rng.IntN(xInner.Size() + yInner.Size())

	if at < xInner.Size() {
		low, high := xInner.split(at)
		return Region{X: low, Y: yInner, Border: r.Border},
			Region{X: high, Y: yInner, Border: r.Border}
	}
	low, high := yInner.split(at - xInner.Size())
	return Region{X: xInner, Y: low, Border: r.Border},
		Region{X: xInner, Y: high, Border: r.Border}
}

// Gradient returns the gradient used to paint the region with palette p.
// The gradient runs diagonally from the top-left to the bottom-right corner.
func (r Region) Gradient(p palette.Palette) *gradient.Linear {
	b := r.Rect()
	return &gradient.Linear{
		P0:    vec.Vec2{X: b.LLx, Y: b.LLy},
		P1:    vec.Vec2{X: b.URx, Y: b.URy},
		Stops: p.Stops(),
	}
}

// Render paints the region with a gradient from palette p, and then, if
// depth is positive and the region is splittable, recursively renders the
// two halves of the region with depth-1.  The left (or upper) half is
// painted first.
//
// Errors from the surface are returned unchanged and stop the rendering.
func (r Region) Render(s surface.Surface, p palette.Palette, depth uint, rng *rand.Rand) error {
	err := s.SetSource(r.Gradient(p))
	if err != nil {
		return err
	}
	s.Rectangle(float64(r.X.Min), float64(r.Y.Min), float64(r.X.Size()), float64(r.Y.Size()))
	err = s.Fill()
	if err != nil {
		return err
	}

	if depth == 0 || !r.IsSplittable() {
		return nil
	}

	left, right := r.Split(rng)
	pLeft, pRight := p.Fork(rng)
	err = left.Render(s, pLeft, depth-1, rng)
	if err != nil {
		return err
	}
	return right.Render(s, pRight, depth-1, rng)
}

func (r Region) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d) border %d",
		r.X.Min, r.X.Max, r.Y.Min, r.Y.Max, r.Border)
}
