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

package audio

import (
	"math"
	"sync/atomic"
)

// Cell holds the current tone frequency. The zero value is a silent cell.
type Cell struct {
	// float64 bits of the frequency in Hz
	frequency atomic.Uint64
}

// SetFrequency changes the frequency of the tone. A value of zero or less
// silences the tone.
func (c *Cell) SetFrequency(hz float64) {
	if hz < 0 {
		hz = 0
	}
	c.frequency.Store(math.Float64bits(hz))
}

// Frequency returns the current frequency of the tone in Hz. A value of zero
// means that the tone is silent.
func (c *Cell) Frequency() float64 {
	return math.Float64frombits(c.frequency.Load())
}

// FrequencyFromPeriod converts the number of CPU cycles between PB7 toggles
// to a tone frequency. One complete cycle of the square wave is two toggles.
// A period of zero or less returns zero.
func FrequencyFromPeriod(clockHz float64, period int) float64 {
	if period <= 0 || clockHz <= 0 {
		return 0
	}
	return clockHz / float64(2*period)
}
