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

// Kay replaces every pixel of an image by a combination of the average
// colours of its row and column.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/genart/field"
	"seehuhn.de/go/genart/internal/buildinfo"
	"seehuhn.de/go/genart/internal/logging"
	"seehuhn.de/go/genart/kay"
)

var (
	config  = kay.DefaultConfig
	verbose = flag.Bool("v", false, "log details about the input image")
	version = flag.Bool("version", false, "print version information and exit")
)

func main() {
	flag.Var(&config, "config", "processing configuration: one letter each for red, green and blue,\n"+
		"n (min), x (max), a (average), d (difference) or z (zero)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "kay - image processing\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Read("kay"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  kay [options] input output.png\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  input       image in PNG, JPEG, GIF, BMP, TIFF or WebP format\n")
		fmt.Fprintf(os.Stderr, "  output.png  output file name\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Read("kay"))
		return
	}
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	err := run(flag.Arg(0), flag.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, "kay:", err)
		os.Exit(1)
	}
}

func run(input, output string) error {
	log := logging.New(os.Stderr, *verbose)

	img, format, err := decode(input)
	if err != nil {
		return err
	}
	b := img.Bounds()
	log.Debug().
		Str("input", input).
		Str("format", format).
		Int("width", b.Dx()).
		Int("height", b.Dy()).
		Stringer("config", &config).
		Msg("decoded")

	out := &field.Field{
		Filename: output,
		Image:    kay.Apply(img, config),
	}
	err = out.Save()
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s (config %s)\n", output, &config)
	return nil
}

func decode(fname string) (image.Image, string, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, "", err
	}
	defer fd.Close()

	img, format, err := image.Decode(fd)
	if err != nil {
		return nil, "", fmt.Errorf("decoding %s: %w", fname, err)
	}
	return img, format, nil
}
