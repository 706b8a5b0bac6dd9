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
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher6800/hardware/memory/memorymap"
)

// ROM is a read only memory area. Writes are ignored.
type ROM struct {
	label  string
	origin uint16
	memtop uint16
	memory []uint8

	// sha1 of the entire ROM area. updated whenever the ROM is flashed
	hash string
}

// NewROM is the preferred method of initialisation for the ROM type. The
// ROM is filled with 0xff until Flash() is called.
func NewROM(label string, origin uint16, memtop uint16) (*ROM, error) {
	if origin > memtop {
		return nil, fmt.Errorf("%w: %s: origin %#04x is above memtop %#04x", ConfigurationError, label, origin, memtop)
	}
	rom := &ROM{
		label:  label,
		origin: origin,
		memtop: memtop,
		memory: make([]uint8, memorymap.Size(origin, memtop)),
	}
	for i := range rom.memory {
		rom.memory[i] = 0xff
	}
	rom.hash = fmt.Sprintf("%x", sha1.Sum(rom.memory))
	return rom, nil
}

func (rom *ROM) Label() string {
	return rom.label
}

func (rom *ROM) Kind() Kind {
	return KindROM
}

func (rom *ROM) Origin() uint16 {
	return rom.origin
}

func (rom *ROM) Memtop() uint16 {
	return rom.memtop
}

// Load implements the Device interface.
func (rom *ROM) Load(address uint16) uint8 {
	return rom.memory[address-rom.origin]
}

// Store implements the Device interface. ROM cannot be written to.
func (rom *ROM) Store(_ uint16, _ uint8) {
}

// Reset implements the Device interface. The contents of ROM survive a reset.
func (rom *ROM) Reset() {
}

// Flash replaces the contents of the ROM. The data is placed at the top of the
// ROM so that the last two bytes of the data are the last two bytes of the
// ROM. Data shorter than the ROM leaves the lower part of the ROM filled with
// 0xff.
func (rom *ROM) Flash(data []uint8) error {
	if len(data) > len(rom.memory) {
		return fmt.Errorf("%w: %s: data (%d bytes) too large for ROM (%d bytes)", ConfigurationError, rom.label, len(data), len(rom.memory))
	}
	for i := range rom.memory {
		rom.memory[i] = 0xff
	}
	copy(rom.memory[len(rom.memory)-len(data):], data)
	rom.hash = fmt.Sprintf("%x", sha1.Sum(rom.memory))
	return nil
}

// Hash returns the sha1 of the ROM contents as a hex string. The unused
// area below short ROM data is included.
func (rom *ROM) Hash() string {
	return rom.hash
}
