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

package memorymap

// The origin and memory top for each area of memory.
//
// Implementations of the different memory areas may need to drag the address
// down into the range of an array. This can be done with subtraction of the
// origin.
const (
	OriginRAM    = uint16(0x0000)
	MemtopRAM    = uint16(0x3fff)
	OriginExtRAM = uint16(0x4000)
	MemtopExtRAM = uint16(0x7fff)
	OriginVRAM   = uint16(0x8000)
	MemtopVRAM   = uint16(0x9fff)
	OriginVIA    = uint16(0xa000)
	MemtopVIA    = uint16(0xa0ff)
	OriginROM    = uint16(0xc000)
	MemtopROM    = uint16(0xffff)
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// Capacity is the number of addresses in the address space.
const Capacity = int(Memtop) + 1

// Size returns the number of bytes between origin and memtop inclusive.
func Size(origin uint16, memtop uint16) int {
	return int(memtop) - int(origin) + 1
}
