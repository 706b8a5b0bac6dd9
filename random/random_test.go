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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopher6800/random"
	"github.com/jetsetilly/gopher6800/test"
)

type clock struct {
	count uint64
}

func (c *clock) ClockCount() uint64 {
	return c.count
}

func TestRandom(t *testing.T) {
	clk := &clock{count: 1000}

	a := random.NewRandom(clk)
	b := random.NewRandom(clk)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}

	fa := make([]uint8, 64)
	fb := make([]uint8, 64)
	a.Fill(fa)
	b.Fill(fb)
	test.ExpectEquality(t, string(fa), string(fb))
}

func TestNilSource(t *testing.T) {
	a := random.NewRandom(nil)
	v := a.Intn(10)
	test.ExpectSuccess(t, v >= 0 && v < 10)
}
