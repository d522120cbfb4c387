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

// Package kay implements an image filter which replaces every pixel by a
// combination of the average colour of its column and the average colour
// of its row.
//
// How the column and row averages are combined is chosen separately for
// the red, green and blue channel, using a [Config].
package kay

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// PixelCalc combines a column average and a row average into an output
// channel value.  The value of each PixelCalc is the letter used to select
// it on the command line.
type PixelCalc byte

// These are the supported pixel calculations.
const (
	Min  PixelCalc = 'n' // the smaller value
	Max  PixelCalc = 'x' // the larger value
	Av   PixelCalc = 'a' // the mean, rounded down
	Diff PixelCalc = 'd' // the absolute difference
	Zero PixelCalc = 'z' // always 0
)

// ParsePixelCalc returns the pixel calculation selected by the letter c.
func ParsePixelCalc(c byte) (PixelCalc, error) {
	p := PixelCalc(c)
	switch p {
	case Min, Max, Av, Diff, Zero:
		return p, nil
	}
	return 0, fmt.Errorf("invalid pixel calculation %q (valid: n, x, a, d, z)", rune(c))
}

// Calc combines the column value x and the row value y.
func (p PixelCalc) Calc(x, y uint8) uint8 {
	switch p {
	case Min:
		return min(x, y)
	case Max:
		return max(x, y)
	case Av:
		return uint8((uint16(x) + uint16(y)) / 2)
	case Diff:
		if x > y {
			return x - y
		}
		return y - x
	default:
		return 0
	}
}

func (p PixelCalc) String() string {
	return string(rune(p))
}

// Config selects the pixel calculation for each colour channel.
//
// Config implements the [flag.Value] interface.  The textual form is a
// three letter string like "nxa", giving the calculations for red, green
// and blue.
type Config struct {
	R, G, B PixelCalc
}

// DefaultConfig uses the minimum for all three channels.
var DefaultConfig = Config{R: Min, G: Min, B: Min}

// ParseConfig parses a three letter configuration string.
func ParseConfig(s string) (Config, error) {
	if len(s) != 3 {
		return Config{}, fmt.Errorf("invalid config %q: need exactly three letters", s)
	}
	var calcs [3]PixelCalc
	for i := range calcs {
		p, err := ParsePixelCalc(s[i])
		if err != nil {
			return Config{}, fmt.Errorf("invalid config %q: %w", s, err)
		}
		calcs[i] = p
	}
	return Config{R: calcs[0], G: calcs[1], B: calcs[2]}, nil
}

// String implements the [flag.Value] interface.
func (c *Config) String() string {
	if c == nil {
		return ""
	}
	return c.R.String() + c.G.String() + c.B.String()
}

// Set implements the [flag.Value] interface.
func (c *Config) Set(s string) error {
	cfg, err := ParseConfig(s)
	if err != nil {
		return err
	}
	*c = cfg
	return nil
}

// Scans holds the average colours of all columns and rows of an image.
type Scans struct {
	// X[i] is the average colour of column i.
	X []color.RGBA

	// Y[j] is the average colour of row j.
	Y []color.RGBA
}

// NewScans computes the column and row averages of img.
// Indices are relative to the top-left corner of the image.
func NewScans(img *image.RGBA) *Scans {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	colSum := make([][3]uint64, w)
	rowSum := make([][3]uint64, h)
	for j := range h {
		for i := range w {
			c := img.RGBAAt(b.Min.X+i, b.Min.Y+j)
			for k, v := range [3]uint8{c.R, c.G, c.B} {
				colSum[i][k] += uint64(v)
				rowSum[j][k] += uint64(v)
			}
		}
	}

	s := &Scans{
		X: make([]color.RGBA, w),
		Y: make([]color.RGBA, h),
	}
	for i := range colSum {
		s.X[i] = average(colSum[i], uint64(h))
	}
	for j := range rowSum {
		s.Y[j] = average(rowSum[j], uint64(w))
	}
	return s
}

func average(sum [3]uint64, n uint64) color.RGBA {
	if n == 0 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{
		R: uint8(sum[0] / n),
		G: uint8(sum[1] / n),
		B: uint8(sum[2] / n),
		A: 255,
	}
}

// Apply returns a new, opaque image, where pixel (x, y) has its channels
// computed from the average colours of column x and row y of src.
func Apply(src image.Image, cfg Config) *image.RGBA {
	b := src.Bounds()
	in, ok := src.(*image.RGBA)
	if !ok {
		in = image.NewRGBA(b)
		draw.Copy(in, b.Min, src, b, draw.Src, nil)
	}

	scans := NewScans(in)
	out := image.NewRGBA(b)
	for j, row := range scans.Y {
		for i, col := range scans.X {
			out.SetRGBA(b.Min.X+i, b.Min.Y+j, color.RGBA{
				R: cfg.R.Calc(col.R, row.R),
				G: cfg.G.Calc(col.G, row.G),
				B: cfg.B.Calc(col.B, row.B),
				A: 255,
			})
		}
	}
	return out
}
