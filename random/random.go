// This file is part of Gopher6800.
//
// Gopher6800 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6800 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6800.  If not, see <https://www.gnu.org/licenses/>.

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Source provides the emulation time used to seed the random number
// generator. The value should change as the emulation progresses.
type Source interface {
	ClockCount() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation. The same emulation time and seed will always produce the same
// sequence of numbers.
type Random struct {
	src Source

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. The
// src argument can be nil in which case the emulation time is always zero.
func NewRandom(src Source) *Random {
	return &Random{
		src: src,
	}
}

func (rnd *Random) rand() *rand.Rand {
	var t uint64
	if rnd.src != nil {
		t = rnd.src.ClockCount()
	}
	if rnd.ZeroSeed {
		return rand.New(rand.NewPCG(0, t))
	}
	return rand.New(rand.NewPCG(baseSeed, t))
}

// Intn returns a random number in the range [0, n)
func (rnd *Random) Intn(n int) int {
	return rnd.rand().IntN(n)
}

// Fill the byte slice with random values. The values are generated from a
// single generator so the slice will not be filled with the same value.
func (rnd *Random) Fill(b []uint8) {
	r := rnd.rand()
	for i := range b {
		b[i] = uint8(r.UintN(256))
	}
}
