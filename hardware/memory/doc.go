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

// Package memory implements the address space of the machine. Every address
// in the range 0x0000 to 0xffff resolves to exactly one Device. Addresses that
// have no registered device resolve to the Unmapped stub.
//
// Devices are registered over a contiguous range of addresses, from Origin()
// to Memtop() inclusive. A later registration overwrites an earlier one where
// the ranges overlap.
//
// The AddressSpace type implements the cpubus.Memory interface. 16-bit
// accesses are made as two 8-bit accesses, each of which wraps independently:
// a 16-bit store to 0xffff writes to 0xffff and to 0x0000.
package memory
