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

package addresses

// The CPU interrupt vectors. Each vector is a big-endian 16-bit address.
const (
	IRQ   = uint16(0xfff8)
	SWI   = uint16(0xfffa)
	NMI   = uint16(0xfffc)
	Reset = uint16(0xfffe)
)

// Diagnostic is the address in the unmapped part of the address space that
// returns a non-zero value. Every other unmapped address reads as zero.
//
// A 16-bit load from Diagnostic returns 0xaa00 because the following address
// reads as zero.
const Diagnostic = uint16(0xbff0)

// DiagnosticValue is the value returned by a read of the Diagnostic address.
const DiagnosticValue = uint8(0xaa)
