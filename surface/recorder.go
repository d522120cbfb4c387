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
	"errors"
	"fmt"

	"seehuhn.de/go/genart/gradient"
)

// A Recorder is a [Surface] which records all drawing commands, without
// painting anything.
type Recorder struct {
	Cmds []Cmd

	// If FailFill is positive, the FailFill-th call to Fill returns Err
	// (or ErrFailed if Err is nil) and subsequent calls succeed again.
	FailFill int
	Err      error

	fills int
}

var _ Surface = (*Recorder)(nil)

// ErrFailed is the default error returned by a Recorder set up to fail.
var ErrFailed = errors.New("surface: recorded failure")

// Op identifies a recorded drawing command.
type Op int

// These are the operations recorded by a [Recorder].
const (
	OpRectangle Op = iota
	OpSetSource
	OpFill
)

func (op Op) String() string {
	switch op {
	case OpRectangle:
		return "rectangle"
	case OpSetSource:
		return "set-source"
	case OpFill:
		return "fill"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Cmd is a recorded drawing command.
type Cmd struct {
	Op Op

	// X, Y, W, H are set for OpRectangle.
	X, Y, W, H float64

	// Source is set for OpSetSource.
	Source *gradient.Linear
}

// Rectangle implements the [Surface] interface.
func (r *Recorder) Rectangle(x, y, w, h float64) {
	r.Cmds = append(r.Cmds, Cmd{Op: OpRectangle, X: x, Y: y, W: w, H: h})
}

// SetSource implements the [Surface] interface.
func (r *Recorder) SetSource(g *gradient.Linear) error {
	if err := checkSource(g); err != nil {
		return err
	}
	r.Cmds = append(r.Cmds, Cmd{Op: OpSetSource, Source: g})
	return nil
}

// Fill implements the [Surface] interface.
func (r *Recorder) Fill() error {
	r.fills++
	if r.fills == r.FailFill {
		if r.Err != nil {
			return r.Err
		}
		return ErrFailed
	}
	r.Cmds = append(r.Cmds, Cmd{Op: OpFill})
	return nil
}

// Count returns the number of recorded commands of the given type.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Cmds {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Filled returns the rectangles which were filled, in the order they were
// painted.  Each entry is the last rectangle added before the fill.
func (r *Recorder) Filled() []Cmd {
	var res []Cmd
	var last *Cmd
	for i := range r.Cmds {
		switch r.Cmds[i].Op {
		case OpRectangle:
			last = &r.Cmds[i]
		case OpFill:
			if last != nil {
				res = append(res, *last)
			}
			last = nil
		}
	}
	return res
}
