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

package kay

import (
	"flag"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCalc(t *testing.T) {
	tests := []struct {
		p    PixelCalc
		x, y uint8
		want uint8
	}{
		{Min, 10, 200, 10},
		{Min, 200, 10, 10},
		{Max, 10, 200, 200},
		{Av, 10, 200, 105},
		{Av, 255, 255, 255}, // no overflow
		{Av, 0, 1, 0},
		{Diff, 10, 200, 190},
		{Diff, 200, 10, 190},
		{Zero, 17, 99, 0},
	}
	for _, test := range tests {
		if got := test.p.Calc(test.x, test.y); got != test.want {
			t.Errorf("%s.Calc(%d, %d) = %d, want %d", test.p, test.x, test.y, got, test.want)
		}
	}
}

func TestParseConfig(t *testing.T) {
	for _, s := range []string{"nnn", "nxa", "dza", "xxx"} {
		cfg, err := ParseConfig(s)
		if err != nil {
			t.Errorf("ParseConfig(%q): %v", s, err)
			continue
		}
		if got := cfg.String(); got != s {
			t.Errorf("ParseConfig(%q).String() = %q", s, got)
		}
	}

	cfg, _ := ParseConfig("nxa")
	if cfg != (Config{R: Min, G: Max, B: Av}) {
		t.Errorf("ParseConfig(\"nxa\") = %v", cfg)
	}

	for _, s := range []string{"", "nn", "nnnn", "nqn", "NNN"} {
		if _, err := ParseConfig(s); err == nil {
			t.Errorf("ParseConfig(%q) succeeded", s)
		}
	}
}

func TestConfigFlag(t *testing.T) {
	cfg := DefaultConfig
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&cfg, "config", "processing configuration")
	if err := fs.Parse([]string{"-config", "axd"}); err != nil {
		t.Fatal(err)
	}
	if cfg != (Config{R: Av, G: Max, B: Diff}) {
		t.Errorf("cfg = %v", cfg)
	}
	if DefaultConfig.String() != "nnn" {
		t.Errorf("default config is %q", DefaultConfig.String())
	}
}

// testImage returns the 2x2 image
//
//	(0,0,0)     (100,0,0)
//	(0,200,0)   (100,200,50)
func testImage(r image.Rectangle) *image.RGBA {
	img := image.NewRGBA(r)
	m := r.Min
	img.SetRGBA(m.X, m.Y, color.RGBA{A: 255})
	img.SetRGBA(m.X+1, m.Y, color.RGBA{R: 100, A: 255})
	img.SetRGBA(m.X, m.Y+1, color.RGBA{G: 200, A: 255})
	img.SetRGBA(m.X+1, m.Y+1, color.RGBA{R: 100, G: 200, B: 50, A: 255})
	return img
}

func TestNewScans(t *testing.T) {
	s := NewScans(testImage(image.Rect(0, 0, 2, 2)))
	want := &Scans{
		X: []color.RGBA{{R: 0, G: 100, B: 0, A: 255}, {R: 100, G: 100, B: 25, A: 255}},
		Y: []color.RGBA{{R: 50, G: 0, B: 0, A: 255}, {R: 50, G: 200, B: 25, A: 255}},
	}
	if d := cmp.Diff(want, s); d != "" {
		t.Errorf("unexpected scans (-want +got):\n%s", d)
	}
}

func TestApply(t *testing.T) {
	r := image.Rect(3, 4, 5, 6)
	out := Apply(testImage(r), Config{R: Max, G: Min, B: Zero})
	if out.Bounds() != r {
		t.Fatalf("output bounds %v, want %v", out.Bounds(), r)
	}

	// columns: (0,100,0) (100,100,25); rows: (50,0,0) (50,200,25)
	want := map[image.Point]color.RGBA{
		{X: 3, Y: 4}: {R: 50, G: 0, B: 0, A: 255},
		{X: 4, Y: 4}: {R: 100, G: 0, B: 0, A: 255},
		{X: 3, Y: 5}: {R: 50, G: 100, B: 0, A: 255},
		{X: 4, Y: 5}: {R: 100, G: 100, B: 0, A: 255},
	}
	for p, c := range want {
		if got := out.RGBAAt(p.X, p.Y); got != c {
			t.Errorf("pixel %v = %v, want %v", p, got, c)
		}
	}
}

func TestApplyConvertsInput(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 3, 1))
	gray.Pix = []uint8{30, 60, 90}
	out := Apply(gray, Config{R: Av, G: Av, B: Av})

	// every column average is the pixel itself, the row average is 60
	for x, want := range []uint8{45, 60, 75} {
		c := out.RGBAAt(x, 0)
		if c.R != want || c.G != want || c.B != want || c.A != 255 {
			t.Errorf("pixel %d = %v, want grey %d", x, c, want)
		}
	}
}

func TestApplyEmpty(t *testing.T) {
	out := Apply(image.NewRGBA(image.Rect(0, 0, 0, 5)), DefaultConfig)
	if !out.Bounds().Empty() {
		t.Errorf("got bounds %v", out.Bounds())
	}
}
