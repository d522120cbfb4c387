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

// Package boids implements a simple flocking simulation.
//
// Every boid chases one other boid of the flock and runs away from
// another.  Recording the positions of all boids over many steps gives a
// heat map of the flock's movement.
package boids

import (
	"errors"
	"fmt"
	"image"
	"math"
	"math/rand/v2"

	"seehuhn.de/go/geom/vec"
)

// Boid is a member of a flock.
type Boid struct {
	Pos vec.Vec2
	Vel vec.Vec2

	// Follow is the index of the boid this boid chases.
	Follow int

	// Flee is the index of the boid this boid avoids.
	Flee int
}

// Params controls the movement of the boids.
type Params struct {
	// Attract is the acceleration towards the boid being followed.
	Attract float64

	// Repel is the acceleration away from the boid being fled.
	Repel float64

	// MaxSpeed is the maximal distance a boid moves in one step.
	MaxSpeed float64
}

// DefaultParams are the parameters used by the flock command.
var DefaultParams = Params{
	Attract:  0.3,
	Repel:    0.2,
	MaxSpeed: 3,
}

// Flock is a group of boids moving inside a rectangle.
type Flock struct {
	Boids  []Boid
	Bounds image.Rectangle
	Params Params
}

// Incrementer is implemented by heat maps.
type Incrementer interface {
	Inc(x, y int)
}

var errTooFew = errors.New("boids: a flock needs at least 3 boids")

// New creates a flock of n boids at random positions inside bounds.
// Every boid is assigned a random boid to follow and a different random
// boid to flee from.  At least three boids are required.
func New(n int, bounds image.Rectangle, params Params, rng *rand.Rand) (*Flock, error) {
	if n < 3 {
		return nil, errTooFew
	}
	if bounds.Empty() {
		return nil, fmt.Errorf("boids: empty bounds %v", bounds)
	}
	if !(params.MaxSpeed > 0) || math.IsInf(params.MaxSpeed, 0) {
		return nil, fmt.Errorf("boids: invalid maximal speed %g", params.MaxSpeed)
	}

	boids := make([]Boid, n)
	for me := range boids {
		follow := rng.IntN(n)
		for follow == me {
			follow = rng.IntN(n)
		}
		flee := rng.IntN(n)
		for flee == me || flee == follow {
			flee = rng.IntN(n)
		}
		boids[me] = Boid{
			Pos: vec.Vec2{
				X: float64(bounds.Min.X) + rng.Float64()*float64(bounds.Dx()),
				Y: float64(bounds.Min.Y) + rng.Float64()*float64(bounds.Dy()),
			},
			Follow: follow,
			Flee:   flee,
		}
	}

	f := &Flock{
		Boids:  boids,
		Bounds: bounds,
		Params: params,
	}
	return f, nil
}

// Step advances the simulation by one time step.
// All boids react to the positions at the start of the step.
func (f *Flock) Step() {
	acc := make([]vec.Vec2, len(f.Boids))
	for i, b := range f.Boids {
		toFollow := unit(f.Boids[b.Follow].Pos.Sub(b.Pos))
		toFlee := unit(f.Boids[b.Flee].Pos.Sub(b.Pos))
		acc[i] = toFollow.Mul(f.Params.Attract).Sub(toFlee.Mul(f.Params.Repel))
	}

	for i := range f.Boids {
		b := &f.Boids[i]
		b.Vel = b.Vel.Add(acc[i])
		if v := b.Vel.Length(); v > f.Params.MaxSpeed {
			b.Vel = b.Vel.Mul(f.Params.MaxSpeed / v)
		}
		b.Pos = b.Pos.Add(b.Vel)
		b.Pos.X, b.Vel.X = reflect(b.Pos.X, b.Vel.X, f.Bounds.Min.X, f.Bounds.Max.X)
		b.Pos.Y, b.Vel.Y = reflect(b.Pos.Y, b.Vel.Y, f.Bounds.Min.Y, f.Bounds.Max.Y)
	}
}

// Imprint records the current position of every boid in the heat map.
func (f *Flock) Imprint(h Incrementer) {
	for _, b := range f.Boids {
		h.Inc(int(math.Floor(b.Pos.X)), int(math.Floor(b.Pos.Y)))
	}
}

// reflect bounces the coordinate x off the walls of [min, max), reversing
// the velocity v if needed.
func reflect(x, v float64, min, max int) (float64, float64) {
	lo, hi := float64(min), float64(max)
	if x < lo {
		x = 2*lo - x
		v = -v
	} else if x >= hi {
		x = 2*hi - x
		v = -v
	}
	// large velocities can overshoot the opposite wall
	if x < lo {
		x = lo
	} else if x >= hi {
		x = math.Nextafter(hi, lo)
	}
	return x, v
}

// unit returns the unit vector in direction v, or the zero vector if v is
// zero.
func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return vec.Vec2{}
	}
	return v.Mul(1 / l)
}
