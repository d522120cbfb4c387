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

package gradient

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"seehuhn.de/go/geom/vec"
)

// Stop is a colour stop of a gradient.
type Stop struct {
	// Offset is the position of the stop along the gradient axis,
	// in the range [0, 1].
	Offset float64

	Colour colorful.Color
}

// Linear represents a linear (axial) gradient.
type Linear struct {
	// P0 is the start point of the gradient axis.  Points on the line
	// through P0 orthogonal to the axis have parameter t = 0.
	P0 vec.Vec2

	// P1 is the end point of the gradient axis, with parameter t = 1.
	P1 vec.Vec2

	// Stops must be sorted by offset.  Several stops may share the same
	// offset, to form a sharp transition.
	Stops []Stop
}

// NewLinear returns a gradient without colour stops, along the axis from
// (x0, y0) to (x1, y1).
func NewLinear(x0, y0, x1, y1 float64) *Linear {
	return &Linear{
		P0: vec.Vec2{X: x0, Y: y0},
		P1: vec.Vec2{X: x1, Y: y1},
	}
}

// AddStop appends a colour stop to the gradient.
func (g *Linear) AddStop(offset float64, c colorful.Color) {
	g.Stops = append(g.Stops, Stop{Offset: offset, Colour: c})
}

// Validate checks that the stop offsets are finite, inside [0, 1] and
// sorted.
func (g *Linear) Validate() error {
	if !isFinite(g.P0.X) || !isFinite(g.P0.Y) || !isFinite(g.P1.X) || !isFinite(g.P1.Y) {
		return newInvalidGradientError(-1, "invalid axis %v -> %v", g.P0, g.P1)
	}
	prev := 0.0
	for i, s := range g.Stops {
		if !isFinite(s.Offset) || s.Offset < 0 || s.Offset > 1 {
			return newInvalidGradientError(i, "offset %g outside [0, 1]", s.Offset)
		}
		if s.Offset < prev {
			return newInvalidGradientError(i, "offset %g smaller than previous offset %g",
				s.Offset, prev)
		}
		prev = s.Offset
	}
	return nil
}

// Param returns the gradient parameter t for the point p.
// The result is clipped to the range [0, 1].  If the axis is degenerate
// (P0 == P1), the parameter is 0 everywhere.
func (g *Linear) Param(p vec.Vec2) float64 {
	d := g.P1.Sub(g.P0)
	dd := d.X*d.X + d.Y*d.Y
	if dd == 0 {
		return 0
	}
	q := p.Sub(g.P0)
	return clip((q.X*d.X+q.Y*d.Y)/dd, 0, 1)
}

// ColourAt returns the gradient colour for parameter t.
// Values of t outside [0, 1] are clipped.  A gradient without stops is
// black.
func (g *Linear) ColourAt(t float64) colorful.Color {
	k := len(g.Stops)
	switch k {
	case 0:
		return colorful.Color{}
	case 1:
		return g.Stops[0].Colour
	}

	t = clip(t, 0, 1)
	if t <= g.Stops[0].Offset {
		return g.Stops[0].Colour
	}
	if t >= g.Stops[k-1].Offset {
		return g.Stops[k-1].Colour
	}

	i := g.findSegment(t)
	a, b := g.Stops[i], g.Stops[i+1]
	return a.Colour.BlendRgb(b.Colour, interpolate(t, a.Offset, b.Offset, 0, 1))
}

// findSegment returns the index i such that t lies in the half-open
// interval [Stops[i].Offset, Stops[i+1].Offset).  The caller must ensure
// that Stops[0].Offset < t < Stops[k-1].Offset.
func (g *Linear) findSegment(t float64) int {
	// j is the first stop strictly to the right of t
	j := sort.Search(len(g.Stops), func(j int) bool {
		return g.Stops[j].Offset > t
	})
	return j - 1
}

// ColorModel implements the [image.Image] interface.
func (g *Linear) ColorModel() color.Model {
	return color.RGBA64Model
}

// Bounds implements the [image.Image] interface.
// Gradients extend over the whole plane.
func (g *Linear) Bounds() image.Rectangle {
	return image.Rectangle{
		Min: image.Point{X: -1e9, Y: -1e9},
		Max: image.Point{X: 1e9, Y: 1e9},
	}
}

// At implements the [image.Image] interface.
// The gradient is sampled at the centre of the pixel.
func (g *Linear) At(x, y int) color.Color {
	if len(g.Stops) == 0 {
		return color.RGBA64{}
	}
	t := g.Param(vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5})
	return color.RGBA64Model.Convert(g.ColourAt(t).Clamped())
}

// InvalidGradientError is returned when a gradient is malformed.
type InvalidGradientError struct {
	// Stop is the index of the offending stop, or -1 if the problem is not
	// related to a specific stop.
	Stop    int
	Message string
}

func (e *InvalidGradientError) Error() string {
	if e.Stop < 0 {
		return "invalid gradient: " + e.Message
	}
	return fmt.Sprintf("invalid gradient stop %d: %s", e.Stop, e.Message)
}

func (e *InvalidGradientError) Is(target error) bool {
	_, ok := target.(*InvalidGradientError)
	return ok
}

func newInvalidGradientError(stop int, format string, args ...any) *InvalidGradientError {
	return &InvalidGradientError{
		Stop:    stop,
		Message: fmt.Sprintf(format, args...),
	}
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// clip clips a value to the given range [min, max].
func clip(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// interpolate performs linear interpolation.
func interpolate(x, xMin, xMax, yMin, yMax float64) float64 {
	if xMax <= xMin {
		return yMin
	}
	return yMin + (x-xMin)*(yMax-yMin)/(xMax-xMin)
}
