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

// Package cpubus defines the interface through which the CPU accesses memory.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The AddressSpace type implements this interface and maps the address
// to the owning device, meaning that the CPU need not care which part of
// memory it is accessing.
//
// The 16-bit operations are big-endian. The high byte is at the address and
// the low byte at the following address, wrapping at 0xffff.
type Memory interface {
	Load8(address uint16) uint8
	Store8(address uint16, data uint8)
	Load16(address uint16) uint16
	Store16(address uint16, data uint16)
}
