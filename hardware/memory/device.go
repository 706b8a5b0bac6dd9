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

// Kind is the closed set of device types that can be registered with the
// AddressSpace.
type Kind int

// List of valid Kind values.
const (
	KindRAM Kind = iota
	KindROM
	KindPeripheral
	KindUnmapped
)

func (k Kind) String() string {
	switch k {
	case KindRAM:
		return "RAM"
	case KindROM:
		return "ROM"
	case KindPeripheral:
		return "Peripheral"
	case KindUnmapped:
		return "Unmapped"
	}
	return "undefined"
}

// Device is implemented by everything that can be registered with the
// AddressSpace. The address argument to Load() and Store() is the full 16-bit
// address and not an offset from Origin().
type Device interface {
	Label() string
	Kind() Kind
	Origin() uint16
	Memtop() uint16
	Load(address uint16) uint8
	Store(address uint16, data uint8)
	Reset()
}

// Executor is implemented by devices that must be advanced alongside the CPU.
type Executor interface {
	Execute(clocks int)
}
