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
package cpu

import (
	"github.com/jetsetilly/gopher6800/hardware/state"
)

// component name used for the snapshot keys
const stateComponent = "CPU"

// SaveState writes every register and latch to the sink.
func (mc *CPU) SaveState(sink state.Sink) {
	s := state.NewSaver(sink, stateComponent)
	s.Uint16("PC", mc.PC.Address())
	s.Uint8("A", mc.A.Value())
	s.Uint8("B", mc.B.Value())
	s.Uint16("X", mc.X.Address())
	s.Uint16("SP", mc.SP.Address())
	s.Uint8("CC", mc.Status.Value())
	s.Uint64("clock", mc.Clock)
	s.Bool("resetPending", mc.resetPending)
	s.Bool("nmiPending", mc.nmiPending)
	s.Bool("irqLine", mc.irqLine)
	s.Bool("halted", mc.halted)
	s.Bool("waiting", mc.waiting)
}

// LoadState restores every register and latch from the source. The CPU is
// unchanged if an error is returned.
func (mc *CPU) LoadState(src state.Source) error {
	l := state.NewLoader(src, stateComponent)
	pc := l.Uint16("PC")
	a := l.Uint8("A")
	b := l.Uint8("B")
	x := l.Uint16("X")
	sp := l.Uint16("SP")
	cc := l.Uint8("CC")
	clock := l.Uint64("clock")
	resetPending := l.Bool("resetPending")
	nmiPending := l.Bool("nmiPending")
	irqLine := l.Bool("irqLine")
	halted := l.Bool("halted")
	waiting := l.Bool("waiting")
	if err := l.Err(); err != nil {
		return err
	}

	mc.PC.Load(pc)
	mc.A.Load(a)
	mc.B.Load(b)
	mc.X.Load(x)
	mc.SP.Load(sp)
	mc.Status.FromValue(cc)
	mc.Clock = clock
	mc.resetPending = resetPending
	mc.nmiPending = nmiPending
	mc.irqLine = irqLine
	mc.halted = halted
	mc.waiting = waiting
	mc.LastResult.Reset()

	return nil
}
