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

// Decor draws a recursively subdivided tiling of colour gradients.
//
// The canvas is painted with a diagonal gradient and then split in two, at
// a random position inside a border.  Each half is painted with a related
// gradient and split again, until the maximal depth is reached or the
// pieces become too small.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"seehuhn.de/go/genart/field"
	"seehuhn.de/go/genart/internal/buildinfo"
	"seehuhn.de/go/genart/internal/logging"
	"seehuhn.de/go/genart/internal/preset"
	"seehuhn.de/go/genart/internal/profile"
	"seehuhn.de/go/genart/internal/seed"
	"seehuhn.de/go/genart/palette"
	"seehuhn.de/go/genart/region"
	"seehuhn.de/go/genart/surface"
)

var (
	size      = field.DefaultSize
	depth     = flag.Uint("depth", 10, "maximal recursion depth")
	border    = flag.Int("border", 2, "border width in pixels")
	seedArg   = flag.Uint64("seed", 0, "random seed (0 chooses a seed from the clock)")
	backend   = flag.String("backend", "vector", "rendering backend ("+strings.Join(surface.Backends, ", ")+")")
	verbose   = flag.Bool("v", false, "log the seed and starting palette")
	presetArg = flag.String("preset", "", "read default settings from `file` (toml, yaml or json)")
	version   = flag.Bool("version", false, "print version information and exit")
	profFlags = profile.AddFlags(flag.CommandLine)
)

func main() {
	flag.Var(&size, "size", "canvas size as `WxH`")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "decor - sub-divided tiled gradients\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Read("decor"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  decor [options] [output.png]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  decor -size 1920x1080 -depth 12 wallpaper.png\n")
		fmt.Fprintf(os.Stderr, "  decor -border 5 -seed 42\n")
		fmt.Fprintf(os.Stderr, "  decor -preset large.toml -depth 3\n")
	}
	flag.Parse()

	if *presetArg != "" {
		p, err := preset.Load(*presetArg)
		if err == nil {
			err = p.Apply(flag.CommandLine)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "decor:", err)
			os.Exit(2)
		}
	}

	if *version {
		fmt.Println(buildinfo.Read("decor"))
		return
	}
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	output := "default.png"
	if flag.NArg() == 1 {
		output = flag.Arg(0)
	}

	if err := run(output); err != nil {
		fmt.Fprintln(os.Stderr, "decor:", err)
		os.Exit(1)
	}
}

func run(output string) error {
	if *border < 0 {
		return fmt.Errorf("invalid border %d: must not be negative", *border)
	}
	if !surface.HasBackend(*backend) {
		return fmt.Errorf("unknown backend %q", *backend)
	}

	stop, err := profFlags.Start()
	if err != nil {
		return err
	}
	defer stop()

	log := logging.New(os.Stderr, *verbose)

	rng, used := seed.New(*seedArg)
	colours := palette.Random(rng)
	log.Debug().
		Uint64("seed", used).
		Stringer("palette", colours).
		Stringer("size", &size).
		Uint("depth", *depth).
		Str("backend", *backend).
		Msg("starting")

	err = field.With(output, size, func(f *field.Field) error {
		s, err := surface.New(*backend, f.Image)
		if err != nil {
			return err
		}
		r := region.ForCanvas(size.W, size.H, *border)
		return r.Render(s, colours, *depth, rng)
	})
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s (seed %d)\n", output, used)
	return nil
}
