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

// Amplitude is the peak value of a sample produced by the Generator.
const Amplitude = 8192

// Generator renders the square wave described by a Cell into sample buffers.
type Generator struct {
	cell       *Cell
	sampleRate int

	// position in the current cycle of the wave, in the range [0, 1)
	phase float64
}

// NewGenerator is the preferred method of initialisation for the Generator
// type. Returns nil if sampleRate is not positive.
func NewGenerator(cell *Cell, sampleRate int) *Generator {
	if cell == nil || sampleRate <= 0 {
		return nil
	}
	return &Generator{
		cell:       cell,
		sampleRate: sampleRate,
	}
}

// SampleRate returns the number of samples per second produced by the
// generator.
func (g *Generator) SampleRate() int {
	return g.sampleRate
}

// Render fills buf with mono samples. The frequency is read from the cell
// once at the start of the buffer. A change in frequency while the buffer is
// being rendered is heard in the next buffer.
//
// Frequencies above the Nyquist limit of the sample rate are rendered as
// silence.
func (g *Generator) Render(buf []int) {
	hz := g.cell.Frequency()

	if hz <= 0 || hz > float64(g.sampleRate)/2 {
		clear(buf)
		g.phase = 0
		return
	}

	step := hz / float64(g.sampleRate)
	for i := range buf {
		if g.phase < 0.5 {
			buf[i] = Amplitude
		} else {
			buf[i] = -Amplitude
		}
		g.phase += step
		if g.phase >= 1.0 {
			g.phase -= 1.0
		}
	}
}
