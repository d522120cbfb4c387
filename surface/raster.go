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
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/genart/gradient"
)

// Raster is a [Surface] which paints into an RGBA image, using an
// anti-aliasing rasterizer.
type Raster struct {
	Image *image.RGBA

	raster *vector.Rasterizer
	source *gradient.Linear
	path   []rectPath
}

var _ Surface = (*Raster)(nil)

// NewRaster returns a surface which paints into img.
func NewRaster(img *image.RGBA) *Raster {
	b := img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over
	return &Raster{
		Image:  img,
		raster: r,
	}
}

// Rectangle implements the [Surface] interface.
func (r *Raster) Rectangle(x, y, w, h float64) {
	r.path = append(r.path, rectPath{x, y, w, h})
}

// SetSource implements the [Surface] interface.
func (r *Raster) SetSource(g *gradient.Linear) error {
	if err := checkSource(g); err != nil {
		return err
	}
	r.source = g
	return nil
}

// Fill implements the [Surface] interface.
func (r *Raster) Fill() error {
	defer r.clearPath()
	if r.source == nil {
		return ErrNoSource
	}

	if len(r.path) == 0 {
		return nil
	}

	box := r.pathBounds().Intersect(r.Image.Bounds())
	if box.Empty() {
		return nil
	}

	r.raster.Reset(box.Dx(), box.Dy())
	for _, p := range r.path {
		// rasterizer coordinates are relative to the top-left corner of box
		x0 := float32(p.X - float64(box.Min.X))
		y0 := float32(p.Y - float64(box.Min.Y))
		x1 := x0 + float32(p.W)
		y1 := y0 + float32(p.H)
		r.raster.MoveTo(x0, y0)
		r.raster.LineTo(x1, y0)
		r.raster.LineTo(x1, y1)
		r.raster.LineTo(x0, y1)
		r.raster.ClosePath()
	}
	r.raster.Draw(r.Image, box, r.source, box.Min)
	return nil
}

// pathBounds returns the smallest pixel rectangle which contains the
// current path.
func (r *Raster) pathBounds() image.Rectangle {
	var box image.Rectangle
	for _, p := range r.path {
		x0, x1 := math.Min(p.X, p.X+p.W), math.Max(p.X, p.X+p.W)
		y0, y1 := math.Min(p.Y, p.Y+p.H), math.Max(p.Y, p.Y+p.H)
		pb := image.Rect(
			int(math.Floor(x0)), int(math.Floor(y0)),
			int(math.Ceil(x1)), int(math.Ceil(y1)))
		box = box.Union(pb)
	}
	return box
}

func (r *Raster) clearPath() {
	r.path = r.path[:0]
}
