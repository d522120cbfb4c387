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

package surface

import (
	"image"

	"github.com/fogleman/gg"

	"seehuhn.de/go/genart/gradient"
)

// GG is a [Surface] which paints using a gg drawing context.
type GG struct {
	ctx       *gg.Context
	hasSource bool
}

var _ Surface = (*GG)(nil)

// NewGG returns a surface which paints into img.
func NewGG(img *image.RGBA) *GG {
	return &GG{ctx: gg.NewContextForRGBA(img)}
}

// Image returns the image the surface paints into.
func (s *GG) Image() image.Image {
	return s.ctx.Image()
}

// Rectangle implements the [Surface] interface.
func (s *GG) Rectangle(x, y, w, h float64) {
	s.ctx.DrawRectangle(x, y, w, h)
}

// SetSource implements the [Surface] interface.
func (s *GG) SetSource(g *gradient.Linear) error {
	if err := checkSource(g); err != nil {
		return err
	}

	// gg cannot evaluate gradients with a degenerate axis
	if g.P0 == g.P1 {
		s.ctx.SetFillStyle(gg.NewSolidPattern(g.ColourAt(0).Clamped()))
		s.hasSource = true
		return nil
	}

	grad := gg.NewLinearGradient(g.P0.X, g.P0.Y, g.P1.X, g.P1.Y)
	for _, stop := range g.Stops {
		grad.AddColorStop(stop.Offset, stop.Colour.Clamped())
	}
	s.ctx.SetFillStyle(grad)
	s.hasSource = true
	return nil
}

// Fill implements the [Surface] interface.
func (s *GG) Fill() error {
	if !s.hasSource {
		s.ctx.ClearPath()
		return ErrNoSource
	}
	s.ctx.Fill()
	return nil
}
