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

// Package registers implements the registers of the 6800 CPU. The Register
// type is used for the two 8-bit accumulators and the Data16 type for the
// index register, the stack pointer and the program counter.
//
// The arithmetic functions of the Register type return the carry, overflow
// and half-carry results of the operation but do not set the flags in the
// condition code register. The CPU does that, which means the flags are
// updated only by the instructions that affect them:
//
//	c, v, h := a.Add(0x01, false)
//	cc.Carry = c
//	cc.Overflow = v
//	cc.HalfCarry = h
//	cc.Zero = a.IsZero()
//	cc.Negative = a.IsNegative()
package registers
