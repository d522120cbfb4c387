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

// Package profile adds CPU and memory profiling flags to a command.
package profile

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Flags holds the profile file names given on the command line.
type Flags struct {
	CPU    string
	Memory string
}

// AddFlags registers the -cpuprofile and -memprofile flags on fs.
func AddFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.CPU, "cpuprofile", "", "write CPU profile to `file`")
	fs.StringVar(&f.Memory, "memprofile", "", "write allocation profile to `file`")
	return f
}

// Start begins CPU profiling, if requested.  The returned function stops
// CPU profiling and writes the allocation profile, if requested; errors
// from this function are reported on stderr.
func (f *Flags) Start() (stop func(), err error) {
	var cpuFile *os.File
	if f.CPU != "" {
		cpuFile, err = os.Create(f.CPU)
		if err != nil {
			return nil, fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err = pprof.StartCPUProfile(cpuFile); err != nil {
			cpuFile.Close()
			return nil, fmt.Errorf("could not start CPU profile: %w", err)
		}
	}

	stop = func() {
		if cpuFile != nil {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}
		if f.Memory != "" {
			if err := writeAllocs(f.Memory); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
	}
	return stop, nil
}

func writeAllocs(fname string) error {
	out, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("could not create memory profile: %w", err)
	}
	defer out.Close()

	runtime.GC()
	allocs := pprof.Lookup("allocs")
	if allocs == nil {
		return errors.New("could not look up memory profile")
	}
	if err := allocs.WriteTo(out, 0); err != nil {
		return fmt.Errorf("could not write memory profile: %w", err)
	}
	return nil
}
