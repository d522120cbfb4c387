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

package main

import (
	"io"
	"os"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// progress shows the simulation progress on a terminal.
type progress struct {
	w      io.Writer
	p      *message.Printer
	boids  int
	total  int
	shown  int
	active bool
}

// newProgress returns a progress display writing to w.  Nothing is shown
// unless w is a terminal.
func newProgress(w io.Writer, boids, total int) *progress {
	active := false
	if f, ok := w.(*os.File); ok {
		active = term.IsTerminal(int(f.Fd()))
	}
	return &progress{
		w:      w,
		p:      message.NewPrinter(language.English),
		boids:  boids,
		total:  total,
		shown:  -1,
		active: active,
	}
}

// Update reports that step of total steps are complete.
func (p *progress) Update(step int) {
	if !p.active || p.total == 0 {
		return
	}
	// redraw at most once per percent
	pct := 100 * step / p.total
	if pct == p.shown {
		return
	}
	p.shown = pct
	p.p.Fprintf(p.w, "\r%d boids, step %d of %d (%d%%)", p.boids, step, p.total, pct)
}

// Done ends the progress display.
func (p *progress) Done() {
	if p.active && p.shown >= 0 {
		io.WriteString(p.w, "\n")
	}
}
