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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher6800/hardware/instance"
	"github.com/jetsetilly/gopher6800/hardware/state"
)

const component = "Computer"

// SaveState writes the state of the computer and every sub-system to the
// sink. The ROM contents are not part of the state but the hash of the ROM
// is, so that the state can only be loaded into a computer with the same ROM.
func (comp *Computer) SaveState(sink state.Sink) {
	s := state.NewSaver(sink, component)
	s.Bytes("romhash", []byte(comp.ROM.Hash()))
	s.Uint64("clock", comp.clock)
	s.Bool("extendedram", comp.extended)

	comp.CPU.SaveState(sink)
	comp.VIA.SaveState(sink)
	comp.Keyboard.SaveState(sink)
	comp.RAM.SaveState(sink)
	comp.VRAM.SaveState(sink)
	if comp.extended {
		comp.ExtRAM.SaveState(sink)
	}
}

// LoadState restores the state of the computer from the source. If an error
// is returned the computer has not been changed.
//
// The state is first loaded into a scratch computer to make sure that every
// field is present.
func (comp *Computer) LoadState(src state.Source) error {
	// the scratch computer has no ROM so the hash is checked against the
	// ROM of this computer
	l := state.NewLoader(src, component)
	hash := make([]byte, len(comp.ROM.Hash()))
	l.Bytes("romhash", hash)
	if err := l.Err(); err != nil {
		return fmt.Errorf("hardware: %w", err)
	}
	if string(hash) != comp.ROM.Hash() {
		return fmt.Errorf("hardware: %w: snapshot was saved with a different ROM (%q)", state.SnapshotError, hash)
	}

	scratch, err := NewComputer(instance.Comparison, comp.Env.Prefs)
	if err != nil {
		return fmt.Errorf("hardware: %w", err)
	}

	if err := scratch.loadState(src); err != nil {
		return fmt.Errorf("hardware: %w", err)
	}
	if err := comp.loadState(src); err != nil {
		return fmt.Errorf("hardware: %w", err)
	}

	// hooks are not called by the sub-systems when state is loaded
	comp.CPU.SetIRQ(comp.VIA.IRQ())
	comp.setTone(comp.VIA.Timer1Period())

	return nil
}

func (comp *Computer) loadState(src state.Source) error {
	l := state.NewLoader(src, component)
	clock := l.Uint64("clock")
	extended := l.Bool("extendedram")
	if err := l.Err(); err != nil {
		return err
	}

	if extended != comp.extended {
		if err := comp.mapMemory(extended); err != nil {
			return err
		}
	}

	if err := comp.CPU.LoadState(src); err != nil {
		return err
	}
	if err := comp.VIA.LoadState(src); err != nil {
		return err
	}
	if err := comp.Keyboard.LoadState(src); err != nil {
		return err
	}
	if err := comp.RAM.LoadState(src); err != nil {
		return err
	}
	if err := comp.VRAM.LoadState(src); err != nil {
		return err
	}
	if extended {
		if err := comp.ExtRAM.LoadState(src); err != nil {
			return err
		}
	}

	comp.clock = clock

	return nil
}
