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

// Package surface provides drawing surfaces which can fill rectangles with
// linear gradients.
//
// Three implementations of the [Surface] interface are provided: [Raster]
// uses the anti-aliasing rasterizer from golang.org/x/image/vector, [GG]
// uses a github.com/fogleman/gg drawing context, and [Recorder] records
// all calls, for use in tests.
package surface

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/genart/gradient"
)

// Surface is a drawing surface.
//
// Paths are built using Rectangle.  Fill paints the current path using the
// gradient set by SetSource, and then starts a new, empty path.
type Surface interface {
	// Rectangle adds a rectangle with top-left corner (x, y), width w and
	// height h to the current path.
	Rectangle(x, y, w, h float64)

	// SetSource sets the gradient used by subsequent fill operations.
	SetSource(g *gradient.Linear) error

	// Fill fills the current path and clears it.
	Fill() error
}

// ErrNoSource is returned by Fill if no source has been set.
var ErrNoSource = errors.New("surface: no paint source set")

var errNilSource = errors.New("surface: nil paint source")

// Backends lists the names accepted by [New].
var Backends = []string{"vector", "gg"}

// New returns a surface which paints into img, using the named backend.
func New(backend string, img *image.RGBA) (Surface, error) {
	switch backend {
	case "vector":
		return NewRaster(img), nil
	case "gg":
		return NewGG(img), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (valid backends: %v)",
			backend, Backends)
	}
}

func checkSource(g *gradient.Linear) error {
	if g == nil {
		return errNilSource
	}
	return g.Validate()
}

// rectPath is a rectangle of the current path.
type rectPath struct {
	X, Y, W, H float64
}

// HasBackend reports whether name is a valid argument for [New].
func HasBackend(name string) bool {
	return slices.Contains(Backends, name)
}
