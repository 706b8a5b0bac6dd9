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

// Package instructions defines the instruction set of the 6800 CPU, including
// the MB8861 extensions (ADX, NIM, OIM, XIM and TMM). Each opcode has a
// Definition that describes the addressing mode, the number of bytes and the
// fixed number of cycles taken by the instruction.
//
// Undefined opcodes have no Definition. The CPU treats them as one cycle
// no-ops.
package instructions

import "fmt"

// AddressingMode describes the method of memory addressing used by an
// instruction.
type AddressingMode int

// List of supported addressing modes.
const (
	Inherent AddressingMode = iota
	Immediate
	Direct
	Indexed
	Extended
	Relative

	// an 8-bit immediate operand followed by an indexed offset. used only by
	// the MB8861 memory logic instructions
	ImmediateIndexed
)

func (m AddressingMode) String() string {
	switch m {
	case Inherent:
		return "Inherent"
	case Immediate:
		return "Immediate"
	case Direct:
		return "Direct"
	case Indexed:
		return "Indexed"
	case Extended:
		return "Extended"
	case Relative:
		return "Relative"
	case ImmediateIndexed:
		return "ImmediateIndexed"
	}
	return "unknown addressing mode"
}

// Category of an instruction describes its effect.
type Category int

// List of instruction categories.
const (
	Read Category = iota
	Write
	Modify
	Flow
	Subroutine
	Interrupt
)

func (e Category) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Modify:
		return "Modify"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}

// Accumulator identifies the accumulator used by an instruction.
type Accumulator int

// List of Accumulator values. Instructions that operate on memory or on the
// index register use NoAccumulator.
const (
	NoAccumulator Accumulator = iota
	AccA
	AccB
)

// Definition defines each instruction in the instruction set; one per
// instruction.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	Operator       Operator
	Accumulator    Accumulator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	Effect         Category
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s effect=%s]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// OperandBytes returns the number of bytes that follow the opcode.
func (defn Definition) OperandBytes() int {
	return defn.Bytes - 1
}
