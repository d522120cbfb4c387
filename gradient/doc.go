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

// Package gradient implements linear colour gradients.
//
// A [Linear] gradient maps every point of the plane to a colour: points are
// projected onto the axis from P0 to P1, and the resulting parameter t in
// [0, 1] is mapped to a colour by piecewise linear interpolation between the
// gradient's colour stops.  Outside the axis the end colours are extended.
//
// Gradients implement [image.Image], so they can be used as the source
// image for drawing operations.
package gradient
