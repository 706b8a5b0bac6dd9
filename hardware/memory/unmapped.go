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
	"github.com/jetsetilly/gopher6800/hardware/memory/addresses"
	"github.com/jetsetilly/gopher6800/hardware/memory/memorymap"
)

// Unmapped is the device that every unregistered address resolves to. Writes
// are ignored. Reads return zero except at addresses.Diagnostic.
type Unmapped struct{}

func (Unmapped) Label() string {
	return "unmapped"
}

func (Unmapped) Kind() Kind {
	return KindUnmapped
}

func (Unmapped) Origin() uint16 {
	return 0x0000
}

func (Unmapped) Memtop() uint16 {
	return memorymap.Memtop
}

func (Unmapped) Load(address uint16) uint8 {
	if address == addresses.Diagnostic {
		return addresses.DiagnosticValue
	}
	return 0x00
}

func (Unmapped) Store(_ uint16, _ uint8) {
}

func (Unmapped) Reset() {
}
