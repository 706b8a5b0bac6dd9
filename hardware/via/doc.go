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
// Package via emulates the 6522 versatile interface adapter. The VIA has two
// 8-bit ports with individual direction bits, four control lines (CA1, CA2,
// CB1 and CB2), two 16-bit timers, an 8-bit shift register and the interrupt
// flag and enable registers that combine all these sources into a single IRQ
// line.
//
// The VIA is a memory.Device and is registered with the AddressSpace like any
// other device. The low four bits of the address select the register.
//
// Nothing in this package knows about the machine the VIA is installed in.
// Machine specific behaviour, such as reading a keyboard matrix from one of
// the ports or driving the CPU's IRQ line, is provided by the Hooks type.
//
//	v := via.NewVIA(env, "VIA", memorymap.OriginVIA, memorymap.MemtopVIA, via.Hooks{
//		IRQ: mc.SetIRQ,
//	})
//
// The VIA is advanced by calling Step() once per clock or Execute() for a
// number of clocks.
package via
