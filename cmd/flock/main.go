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

// Flock draws a heat map of a flock of boids.
//
// Every boid chases one other boid and flees from another.  After every
// simulation step, the position of each boid is added to the heat map:
// the pixel under a boid gets brighter, moving from black through red and
// yellow to white.
package main

import (
	"flag"
	"fmt"
	"os"

	"seehuhn.de/go/genart/boids"
	"seehuhn.de/go/genart/field"
	"seehuhn.de/go/genart/internal/buildinfo"
	"seehuhn.de/go/genart/internal/logging"
	"seehuhn.de/go/genart/internal/preset"
	"seehuhn.de/go/genart/internal/profile"
	"seehuhn.de/go/genart/internal/seed"
)

var (
	size      = field.DefaultSize
	numBoids  = flag.Int("boids", 100_000, "number of boids")
	steps     = flag.Int("steps", 500, "number of simulation steps")
	seedArg   = flag.Uint64("seed", 0, "random seed (0 chooses a seed from the clock)")
	verbose   = flag.Bool("v", false, "log the simulation parameters")
	presetArg = flag.String("preset", "", "read default settings from `file` (toml, yaml or json)")
	version   = flag.Bool("version", false, "print version information and exit")
	profFlags = profile.AddFlags(flag.CommandLine)
)

func main() {
	flag.Var(&size, "size", "canvas size as `WxH`")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "flock - heat-map of flocking boids\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Read("flock"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  flock [options] [output.png]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *presetArg != "" {
		p, err := preset.Load(*presetArg)
		if err == nil {
			err = p.Apply(flag.CommandLine)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "flock:", err)
			os.Exit(2)
		}
	}

	if *version {
		fmt.Println(buildinfo.Read("flock"))
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
		fmt.Fprintln(os.Stderr, "flock:", err)
		os.Exit(1)
	}
}

func run(output string) error {
	if *steps < 0 {
		return fmt.Errorf("invalid number of steps %d", *steps)
	}

	stop, err := profFlags.Start()
	if err != nil {
		return err
	}
	defer stop()

	log := logging.New(os.Stderr, *verbose)

	rng, used := seed.New(*seedArg)
	log.Debug().
		Uint64("seed", used).
		Int("boids", *numBoids).
		Int("steps", *steps).
		Stringer("size", &size).
		Msg("starting")

	err = field.With(output, size, func(f *field.Field) error {
		fl, err := boids.New(*numBoids, f.Image.Bounds(), boids.DefaultParams, rng)
		if err != nil {
			return err
		}

		p := newProgress(os.Stderr, *numBoids, *steps)
		for i := range *steps {
			fl.Imprint(f)
			fl.Step()
			p.Update(i + 1)
		}
		p.Done()
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s (seed %d)\n", output, used)
	return nil
}
