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
// Package cpu emulates the 6800 microprocessor. The CPU executes instructions
// according to the opcode read from the address pointed to by the program
// counter. The opcode is looked up in the instruction table (see the
// instructions package) and the definition is used to decode the operand and
// move execution of the program forward.
//
// The CPU is created with an implementation of the cpubus.Memory interface
// and a tick function. The tick function is called after every instruction,
// interrupt entry or idle period with the number of cycles that elapsed. The
// Computer type in the hardware package uses this to keep the VIA in step
// with the CPU.
//
//	mc := cpu.NewCPU(env, mem, func(cycles int) {
//		via.Execute(cycles)
//	})
//	mc.Reset()
//
//	overrun := mc.Execute(20000)
//
// Execute() runs whole instructions until at least the requested number of
// cycles have elapsed. It returns the number of cycles executed beyond the
// request, which the caller should deduct from its next request.
//
// At every instruction boundary the CPU checks, in order: a pending reset,
// the halt line, the wait-for-interrupt state, a pending NMI and the IRQ
// line. Only when none of these apply is the next opcode fetched.
//
// The LastResult field describes the last instruction executed. See the
// execution package for details.
package cpu
