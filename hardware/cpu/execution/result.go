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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6800/hardware/cpu/instructions"
)

// Event describes something other than a normal instruction that happened at
// the instruction boundary.
type Event int

// List of valid Event values.
const (
	NoEvent Event = iota

	// the CPU was reset. no instruction was executed
	Reset

	// an interrupt was serviced. no instruction was executed
	NMI
	IRQ

	// the CPU was halted or waiting for an interrupt. no instruction was
	// executed
	Idle

	// the opcode has no definition and was executed as a one cycle no-op
	Undefined
)

func (e Event) String() string {
	switch e {
	case NoEvent:
		return ""
	case Reset:
		return "reset"
	case NMI:
		return "nmi"
	case IRQ:
		return "irq"
	case Idle:
		return "idle"
	case Undefined:
		return "undefined"
	}
	return "unknown event"
}

// Result records the state/result of the last instruction executed by the
// CPU.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the opcode read from Address. Defn is nil if the opcode is undefined
	OpCode uint8
	Defn   *instructions.Definition

	// the number of bytes read during instruction decode
	ByteCount int

	// the operand. an 8-bit value, a 16-bit value or the signed branch
	// offset depending on the addressing mode. only valid if Defn is not nil
	InstructionData uint16

	// the number of cycles taken
	Cycles int

	// Event is NoEvent for normal instructions
	Event Event

	// whether the Result is complete
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("cpu: execution not finalised")
	}

	switch r.Event {
	case NoEvent:
		if r.Defn == nil {
			return fmt.Errorf("cpu: no definition for opcode %#02x", r.OpCode)
		}
		if r.ByteCount != r.Defn.Bytes {
			return fmt.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
		}
		if r.Cycles != r.Defn.Cycles {
			return fmt.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, r.Defn.Cycles)
		}
	case Undefined:
		if r.Cycles != 1 || r.ByteCount != 1 {
			return fmt.Errorf("cpu: undefined opcode %#02x should take one byte and one cycle", r.OpCode)
		}
	}

	return nil
}

// String returns a disassembly of the instruction.
func (r Result) String() string {
	switch r.Event {
	case Reset, NMI, IRQ, Idle:
		return fmt.Sprintf("%04x  %-12s %-6s (%d cycles)", r.Address, "", r.Event, r.Cycles)
	case Undefined:
		return fmt.Sprintf("%04x  %02x%-10s %-6s (%d cycles)", r.Address, r.OpCode, "", "???", r.Cycles)
	}

	if r.Defn == nil {
		return fmt.Sprintf("%04x  ???", r.Address)
	}

	// bytecode
	var hex strings.Builder
	hex.WriteString(fmt.Sprintf("%02x", r.Defn.OpCode))
	switch r.Defn.OperandBytes() {
	case 1:
		hex.WriteString(fmt.Sprintf(" %02x", uint8(r.InstructionData)))
	case 2:
		hex.WriteString(fmt.Sprintf(" %02x %02x", uint8(r.InstructionData>>8), uint8(r.InstructionData)))
	}

	var operand string
	switch r.Defn.AddressingMode {
	case instructions.Immediate:
		if r.Defn.OperandBytes() == 2 {
			operand = fmt.Sprintf("#$%04x", r.InstructionData)
		} else {
			operand = fmt.Sprintf("#$%02x", r.InstructionData)
		}
	case instructions.Direct:
		operand = fmt.Sprintf("$%02x", r.InstructionData)
	case instructions.Indexed:
		operand = fmt.Sprintf("$%02x,X", r.InstructionData)
	case instructions.Extended:
		operand = fmt.Sprintf("$%04x", r.InstructionData)
	case instructions.Relative:
		dest := r.Address + uint16(r.Defn.Bytes) + uint16(int16(int8(uint8(r.InstructionData))))
		operand = fmt.Sprintf("$%04x", dest)
	case instructions.ImmediateIndexed:
		operand = fmt.Sprintf("#$%02x,$%02x,X", uint8(r.InstructionData>>8), uint8(r.InstructionData))
	}

	return strings.TrimSpace(fmt.Sprintf("%04x  %-12s %-6s %-10s (%d cycles)", r.Address, hex.String(), r.Defn.Mnemonic, operand, r.Cycles))
}
