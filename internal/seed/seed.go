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

// Package seed sets up the random number generators used by the commands.
package seed

import (
	"math/rand/v2"
	"time"
)

// New returns a random number generator initialised from s.
// If s is zero, a seed is derived from the current time.  The seed
// actually used is returned, so that the caller can report it and the
// output can be reproduced later.
func New(s uint64) (*rand.Rand, uint64) {
	if s == 0 {
		s = uint64(time.Now().UnixNano())
		if s == 0 {
			s = 1
		}
	}
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)), s
}
