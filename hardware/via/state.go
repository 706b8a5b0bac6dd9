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
package via

import (
	"fmt"

	"github.com/jetsetilly/gopher6800/hardware/state"
)

// SaveState writes every register, counter and line to the sink. The keys
// are prefixed with the label of the VIA.
func (via *VIA) SaveState(sink state.Sink) {
	s := state.NewSaver(sink, via.label)

	s.Uint8("ora", via.ora)
	s.Uint8("orb", via.orb)
	s.Uint8("ira", via.ira)
	s.Uint8("irb", via.irb)
	s.Uint8("ddra", via.ddra)
	s.Uint8("ddrb", via.ddrb)
	s.Uint8("acr", via.acr)
	s.Uint8("pcr", via.pcr)
	s.Uint8("ifr", via.ifr)
	s.Uint8("ier", via.ier)
	s.Bool("irq", via.irq)

	s.Int("t1.counter", via.t1.counter)
	s.Uint16("t1.latch", via.t1.latch)
	s.Bool("t1.armed", via.t1.armed)
	s.Bool("t1.grace", via.t1.grace)
	s.Bool("t1.output", via.t1.output)
	s.Int("t1.period", via.t1.period)

	s.Int("t2.counter", via.t2.counter)
	s.Uint16("t2.latch", via.t2.latch)
	s.Bool("t2.armed", via.t2.armed)
	s.Bool("t2.grace", via.t2.grace)
	s.Bool("t2.pb6", via.t2.pb6)

	s.Uint8("sr.value", via.sr.value)
	s.Uint8("sr.mode", uint8(via.sr.mode))
	s.Int("sr.count", via.sr.count)
	s.Bool("sr.shiftPhase", via.sr.shiftPhase)
	s.Bool("sr.active", via.sr.active)

	for i, l := range via.lines {
		n := Line(i).String()
		s.Bool(n+".input", l.input)
		s.Bool(n+".output", l.output)
		s.Bool(n+".pulse", l.pulse)
	}
}

// LoadState restores every register, counter and line from the source. The
// VIA is unchanged if an error is returned. No hooks are called.
func (via *VIA) LoadState(src state.Source) error {
	l := state.NewLoader(src, via.label)

	n := *via

	n.ora = l.Uint8("ora")
	n.orb = l.Uint8("orb")
	n.ira = l.Uint8("ira")
	n.irb = l.Uint8("irb")
	n.ddra = l.Uint8("ddra")
	n.ddrb = l.Uint8("ddrb")
	n.acr = l.Uint8("acr")
	n.pcr = l.Uint8("pcr")
	n.ifr = l.Uint8("ifr")
	n.ier = l.Uint8("ier")
	n.irq = l.Bool("irq")

	n.t1.counter = l.Int("t1.counter")
	n.t1.latch = l.Uint16("t1.latch")
	n.t1.armed = l.Bool("t1.armed")
	n.t1.grace = l.Bool("t1.grace")
	n.t1.output = l.Bool("t1.output")
	n.t1.period = l.Int("t1.period")

	n.t2.counter = l.Int("t2.counter")
	n.t2.latch = l.Uint16("t2.latch")
	n.t2.armed = l.Bool("t2.armed")
	n.t2.grace = l.Bool("t2.grace")
	n.t2.pb6 = l.Bool("t2.pb6")

	n.sr.value = l.Uint8("sr.value")
	n.sr.mode = shiftMode(l.Uint8("sr.mode"))
	n.sr.count = l.Int("sr.count")
	n.sr.shiftPhase = l.Bool("sr.shiftPhase")
	n.sr.active = l.Bool("sr.active")

	for i := range n.lines {
		ln := Line(i).String()
		n.lines[i].input = l.Bool(ln + ".input")
		n.lines[i].output = l.Bool(ln + ".output")
		n.lines[i].pulse = l.Bool(ln + ".pulse")
	}

	if err := l.Err(); err != nil {
		return err
	}

	// the mode is three bits of the ACR
	if n.sr.mode > shiftOutCB1 {
		return fmt.Errorf("%w: %s: impossible shift register mode (%d)", state.SnapshotError, via.label, n.sr.mode)
	}

	*via = n

	return nil
}
