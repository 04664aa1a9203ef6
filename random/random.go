// This file is part of chirp8.
//
// chirp8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// chirp8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with chirp8.  If not, see <https://www.gnu.org/licenses/>.

// Package random is a source of random numbers for the interpreter. The
// ZeroSeed field switches the source to a fixed seed, making the sequence
// predictable for tests.
package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a random number generator serving the interpreter's random
// instruction.
type Random struct {
	// use zero seed rather than the random base seed. this is only really
	// useful for tests where random numbers must be predictable
	ZeroSeed bool

	seeded *rand.Rand
	zeroed *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{
		seeded: rand.New(rand.NewSource(baseSeed)),
		zeroed: rand.New(rand.NewSource(0)),
	}
}

// Intn returns a random integer in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	if rnd.ZeroSeed {
		return rnd.zeroed.Intn(n)
	}
	return rnd.seeded.Intn(n)
}

// Byte returns a random 8 bit value.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.Intn(256))
}
