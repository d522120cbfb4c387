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

// Package palette implements the colour lists used by the recursive
// gradient generator.
//
// A [Palette] is an ordered list of colours.  The order determines where
// each colour is placed along a gradient.  When a region is split in two,
// its palette is split using [Palette.Fork]: both halves keep most of the
// parent colours, so that neighbouring regions have related colours, but
// each half gains one new colour mixed from the colours it kept.
package palette

import (
	"math/rand/v2"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/genart/gradient"
)

// initialSize is the number of colours in a random palette.  Palettes of
// at least this length lose one colour on each side when forked, so the
// size of forked palettes stays constant.
const initialSize = 5

// Palette is an ordered list of colours.
type Palette []colorful.Color

// Random returns a palette of five colours, with all colour components
// independently and uniformly distributed in [0, 1].
func Random(rng *rand.Rand) Palette {
	p := make(Palette, initialSize)
	for i := range p {
		p[i] = RandomColour(rng)
	}
	return p
}

// RandomColour returns a colour with independent, uniformly distributed
// components.
func RandomColour(rng *rand.Rand) colorful.Color {
	return colorful.Color{
		R: rng.Float64(),
		G: rng.Float64(),
		B: rng.Float64(),
	}
}

// Mix returns a random convex combination of the given colours.
// The weights are drawn uniformly from [0, 1] and then normalised to sum to
// one.  Mixing an empty list of colours gives black.
func Mix(colours []colorful.Color, rng *rand.Rand) colorful.Color {
	weights := make([]float64, len(colours))
	total := 0.0
	for i := range weights {
		weights[i] = rng.Float64()
		total += weights[i]
	}
	if total == 0 {
		for i := range weights {
			weights[i] = 1
		}
		total = float64(len(weights))
	}

	var res colorful.Color
	for i, c := range colours {
		res = add(res, scale(c, weights[i]/total))
	}
	return res
}

// Fork splits the palette into two new palettes.
//
// Both results start as copies of p.  If p has at least five colours, the
// last colour is removed from the left copy and the first colour from the
// right copy.  Then a new colour, mixed from the colours of the respective
// copy, is inserted at a random position into each copy.  The receiver is
// not modified.
func (p Palette) Fork(rng *rand.Rand) (left, right Palette) {
	left = slices.Clone(p)
	right = slices.Clone(p)

	if len(p) >= initialSize {
		left = left[:len(left)-1]
		right = right[1:]
	}

	left = left.augment(rng)
	right = right.augment(rng)
	return left, right
}

// augment inserts a colour mixed from the colours of p at a random
// position in [0, len(p)).
func (p Palette) augment(rng *rand.Rand) Palette {
	c := Mix(p, rng)
	pos := 0
	if len(p) > 0 {
		pos = rng.IntN(len(p))
	}
	return slices.Insert(p, pos, c)
}

// Stops returns the colours of the palette as gradient stops, evenly spaced
// from offset 0 to offset 1.  A palette with a single colour gives one stop
// at offset 0.
func (p Palette) Stops() []gradient.Stop {
	if len(p) == 0 {
		return nil
	}
	stops := make([]gradient.Stop, len(p))
	if len(p) == 1 {
		stops[0] = gradient.Stop{Offset: 0, Colour: p[0]}
		return stops
	}
	maxIdx := float64(len(p) - 1)
	for i, c := range p {
		stops[i] = gradient.Stop{Offset: float64(i) / maxIdx, Colour: c}
	}
	return stops
}

// String returns the colours of the palette as a list of hex codes.
func (p Palette) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.Clamped().Hex()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func scale(c colorful.Color, s float64) colorful.Color {
	return colorful.Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

func add(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B}
}
