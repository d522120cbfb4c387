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

// Package field manages the canvas the generators draw on.
//
// A [Field] is an RGBA image together with the name of the PNG file it
// will be saved to.  Use [With] to make sure that the image is written
// even if drawing fails half way through.
package field

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strconv"
	"strings"
)

// Size is the size of a canvas in pixels.
//
// Size implements the [flag.Value] interface, so that it can be used as a
// command line flag of the form "1024x768".
type Size struct {
	W, H int
}

// DefaultSize is the canvas size used if no size is given.
var DefaultSize = Size{W: 1024, H: 1024}

// ParseSize parses a size of the form "WxH".
func ParseSize(s string) (Size, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return Size{}, &SizeError{Input: s, Reason: "no 'x' in size"}
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return Size{}, &SizeError{Input: s, Reason: "invalid width"}
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return Size{}, &SizeError{Input: s, Reason: "invalid height"}
	}
	size := Size{W: w, H: h}
	if err := size.check(); err != nil {
		return Size{}, err
	}
	return size, nil
}

func (s Size) check() error {
	if s.W <= 0 || s.H <= 0 {
		return &SizeError{Input: s.String(), Reason: "size must be positive"}
	}
	return nil
}

// String implements the [flag.Value] interface.
func (s *Size) String() string {
	if s == nil {
		return ""
	}
	return strconv.Itoa(s.W) + "x" + strconv.Itoa(s.H)
}

// Set implements the [flag.Value] interface.
func (s *Size) Set(v string) error {
	size, err := ParseSize(v)
	if err != nil {
		return err
	}
	*s = size
	return nil
}

// SizeError is returned if a canvas size is malformed.
type SizeError struct {
	Input  string
	Reason string
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("invalid size %q: %s", e.Input, e.Reason)
}

// Field is a canvas which can be saved as a PNG file.
type Field struct {
	Filename string
	Image    *image.RGBA
}

// New allocates a black, opaque canvas of the given size.
func New(filename string, size Size) (*Field, error) {
	if err := size.check(); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	return &Field{
		Filename: filename,
		Image:    img,
	}, nil
}

// Size returns the size of the canvas.
func (f *Field) Size() Size {
	b := f.Image.Bounds()
	return Size{W: b.Dx(), H: b.Dy()}
}

// Save writes the canvas to the output file, in PNG format.
func (f *Field) Save() (err error) {
	out, err := os.Create(f.Filename)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := out.Close()
		if err == nil {
			err = closeErr
		}
	}()

	err = png.Encode(out, f.Image)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", f.Filename, err)
	}
	return nil
}

// Inc increments the heat-map value of the pixel (x, y).
//
// The red channel is incremented first.  Once red is saturated, green is
// incremented, then blue.  A pixel with all channels saturated is left
// unchanged, and so are points outside the canvas.
func (f *Field) Inc(x, y int) {
	if !(image.Point{X: x, Y: y}.In(f.Image.Rect)) {
		return
	}
	i := f.Image.PixOffset(x, y)
	for c := range 3 {
		if f.Image.Pix[i+c] < 255 {
			f.Image.Pix[i+c]++
			return
		}
	}
}

// With allocates a canvas, calls fn to draw on it, and then saves the
// canvas to filename.
//
// The canvas is saved even if fn returns an error or panics, so that a
// partial result is available.  Errors from fn and from saving are both
// reported.
func With(filename string, size Size, fn func(*Field) error) (err error) {
	f, err := New(filename, size)
	if err != nil {
		return err
	}
	defer func() {
		saveErr := f.Save()
		if saveErr != nil {
			err = errors.Join(err, fmt.Errorf("saving %s: %w", filename, saveErr))
		}
	}()
	return fn(f)
}
