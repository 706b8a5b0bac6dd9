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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6800/hardware/instance"
	"github.com/jetsetilly/gopher6800/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher6800/hardware/state"
)

// RAM is a read/write memory area.
type RAM struct {
	env *instance.Instance

	label  string
	origin uint16
	memtop uint16
	memory []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. The
// label is also the component name used when saving state and so must be
// unique in the machine.
func NewRAM(env *instance.Instance, label string, origin uint16, memtop uint16) (*RAM, error) {
	if origin > memtop {
		return nil, fmt.Errorf("%w: %s: origin %#04x is above memtop %#04x", ConfigurationError, label, origin, memtop)
	}
	ram := &RAM{
		env:    env,
		label:  label,
		origin: origin,
		memtop: memtop,
		memory: make([]uint8, memorymap.Size(origin, memtop)),
	}
	return ram, nil
}

// String returns the first 256 bytes of the RAM as a hex dump.
func (ram *RAM) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < 16 && y*16 < len(ram.memory); y++ {
		s.WriteString(fmt.Sprintf("%04X | ", int(ram.origin)+y*16))
		for x := 0; x < 16 && y*16+x < len(ram.memory); x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[y*16+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

func (ram *RAM) Label() string {
	return ram.label
}

func (ram *RAM) Kind() Kind {
	return KindRAM
}

func (ram *RAM) Origin() uint16 {
	return ram.origin
}

func (ram *RAM) Memtop() uint16 {
	return ram.memtop
}

// Load implements the Device interface.
func (ram *RAM) Load(address uint16) uint8 {
	return ram.memory[address-ram.origin]
}

// Store implements the Device interface.
func (ram *RAM) Store(address uint16, data uint8) {
	ram.memory[address-ram.origin] = data
}

// Reset clears the contents of RAM. If the RandomState preference is set the
// contents are randomised instead.
func (ram *RAM) Reset() {
	if ram.env != nil && ram.env.Prefs.RandomState.Get().(bool) {
		ram.env.Random.Fill(ram.memory)
		return
	}
	clear(ram.memory)
}

// Bytes returns the underlying memory of the RAM. Used by collaborators that
// read memory directly, for example the display.
func (ram *RAM) Bytes() []uint8 {
	return ram.memory
}

// SaveState stores the contents of RAM.
func (ram *RAM) SaveState(sink state.Sink) {
	state.NewSaver(sink, ram.label).Bytes("memory", ram.memory)
}

// LoadState restores the contents of RAM.
func (ram *RAM) LoadState(src state.Source) error {
	ld := state.NewLoader(src, ram.label)
	ld.Bytes("memory", ram.memory)
	return ld.Err()
}
