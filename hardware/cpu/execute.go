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
package cpu

import (
	"github.com/jetsetilly/gopher6800/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6800/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6800/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6800/hardware/memory/addresses"
)

// fetchAndExecute reads the opcode at the PC, decodes the operand according
// to the addressing mode and performs the operation.
func (mc *CPU) fetchAndExecute() {
	mc.LastResult.OpCode = mc.read8PC()

	defn := mc.instructions[mc.LastResult.OpCode]
	if defn == nil {
		mc.LastResult.Event = execution.Undefined
		mc.LastResult.Cycles = 1
		return
	}
	mc.LastResult.Defn = defn

	// address is the effective address of the operand. for immediate
	// instructions this is the address of the operand in the instruction
	// stream. for relative instructions it is the branch destination
	var address uint16

	switch defn.AddressingMode {
	case instructions.Inherent:

	case instructions.Immediate:
		address = mc.PC.Address()
		if defn.OperandBytes() == 2 {
			mc.LastResult.InstructionData = mc.read16PC()
		} else {
			mc.LastResult.InstructionData = uint16(mc.read8PC())
		}

	case instructions.Direct:
		v := mc.read8PC()
		mc.LastResult.InstructionData = uint16(v)
		address = uint16(v)

	case instructions.Indexed:
		v := mc.read8PC()
		mc.LastResult.InstructionData = uint16(v)
		address = mc.X.Address() + uint16(v)

	case instructions.Extended:
		v := mc.read16PC()
		mc.LastResult.InstructionData = v
		address = v

	case instructions.Relative:
		v := mc.read8PC()
		mc.LastResult.InstructionData = uint16(v)
		address = mc.PC.Address() + uint16(int16(int8(v)))

	case instructions.ImmediateIndexed:
		// the immediate value is in the high byte of the instruction data
		imm := mc.read8PC()
		v := mc.read8PC()
		mc.LastResult.InstructionData = uint16(imm)<<8 | uint16(v)
		address = mc.X.Address() + uint16(v)
	}

	mc.LastResult.Cycles = defn.Cycles

	mc.operate(defn, address)
}

// accumulator returns the accumulator named by the instruction definition, or
// nil if the instruction does not use an accumulator.
func (mc *CPU) accumulator(defn *instructions.Definition) *registers.Register {
	switch defn.Accumulator {
	case instructions.AccA:
		return &mc.A
	case instructions.AccB:
		return &mc.B
	}
	return nil
}

func (mc *CPU) setNZ(r registers.Register) {
	mc.Status.Negative = r.IsNegative()
	mc.Status.Zero = r.IsZero()
}

func (mc *CPU) setNZ16(r registers.Data16) {
	mc.Status.Negative = r.IsNegative()
	mc.Status.Zero = r.IsZero()
}

// logical operations and loads all clear the overflow flag
func (mc *CPU) setNZClearV(r registers.Register) {
	mc.setNZ(r)
	mc.Status.Overflow = false
}

// shifts and rotates set the overflow flag to N xor C
func (mc *CPU) setShift(r registers.Register, carry bool) {
	mc.setNZ(r)
	mc.Status.Carry = carry
	mc.Status.Overflow = mc.Status.Negative != mc.Status.Carry
}

// modify applies the function to the accumulator, or to the memory at the
// address if the instruction has no accumulator.
func (mc *CPU) modify(defn *instructions.Definition, address uint16, f func(r *registers.Register)) {
	if acc := mc.accumulator(defn); acc != nil {
		f(acc)
		return
	}
	r := registers.NewRegister(mc.mem.Load8(address), "M")
	f(&r)
	mc.mem.Store8(address, r.Value())
}

func (mc *CPU) branch(cond bool, address uint16) {
	if cond {
		mc.PC.Load(address)
	}
}

func (mc *CPU) operate(defn *instructions.Definition, address uint16) {
	acc := mc.accumulator(defn)

	switch defn.Operator {
	case instructions.Nop:

	case instructions.Tap:
		mc.Status.FromValue(mc.A.Value())

	case instructions.Tpa:
		mc.A.Load(mc.Status.Value())

	case instructions.Inx:
		mc.X.Increment()
		mc.Status.Zero = mc.X.IsZero()

	case instructions.Dex:
		mc.X.Decrement()
		mc.Status.Zero = mc.X.IsZero()

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Sev:
		mc.Status.Overflow = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cli:
		mc.Status.Interrupt = false

	case instructions.Sei:
		mc.Status.Interrupt = true

	case instructions.Sba:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(mc.B.Value(), false)
		mc.setNZ(mc.A)

	case instructions.Cba:
		r := mc.A
		mc.Status.Carry, mc.Status.Overflow = r.Subtract(mc.B.Value(), false)
		mc.setNZ(r)

	case instructions.Tab:
		mc.B.Load(mc.A.Value())
		mc.setNZClearV(mc.B)

	case instructions.Tba:
		mc.A.Load(mc.B.Value())
		mc.setNZClearV(mc.A)

	case instructions.Daa:
		mc.daa()

	case instructions.Aba:
		mc.Status.Carry, mc.Status.Overflow, mc.Status.HalfCarry = mc.A.Add(mc.B.Value(), false)
		mc.setNZ(mc.A)

	case instructions.Bra:
		mc.branch(true, address)

	case instructions.Bhi:
		mc.branch(!(mc.Status.Carry || mc.Status.Zero), address)

	case instructions.Bls:
		mc.branch(mc.Status.Carry || mc.Status.Zero, address)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, address)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, address)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, address)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, address)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, address)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, address)

	case instructions.Bpl:
		mc.branch(!mc.Status.Negative, address)

	case instructions.Bmi:
		mc.branch(mc.Status.Negative, address)

	case instructions.Bge:
		mc.branch(mc.Status.Negative == mc.Status.Overflow, address)

	case instructions.Blt:
		mc.branch(mc.Status.Negative != mc.Status.Overflow, address)

	case instructions.Bgt:
		mc.branch(!mc.Status.Zero && mc.Status.Negative == mc.Status.Overflow, address)

	case instructions.Ble:
		mc.branch(mc.Status.Zero || mc.Status.Negative != mc.Status.Overflow, address)

	case instructions.Tsx:
		mc.X.Load(mc.SP.Address() + 1)

	case instructions.Ins:
		mc.SP.Increment()

	case instructions.Pul:
		acc.Load(mc.pull8())

	case instructions.Des:
		mc.SP.Decrement()

	case instructions.Txs:
		mc.SP.Load(mc.X.Address() - 1)

	case instructions.Psh:
		mc.push8(acc.Value())

	case instructions.Rts:
		mc.PC.Load(mc.pull16())

	case instructions.Rti:
		mc.Status.FromValue(mc.pull8())
		mc.B.Load(mc.pull8())
		mc.A.Load(mc.pull8())
		mc.X.Load(mc.pull16())
		mc.PC.Load(mc.pull16())

	case instructions.Wai:
		mc.waiting = true

	case instructions.Swi:
		mc.stackRegisters()
		mc.Status.Interrupt = true
		mc.PC.Load(mc.mem.Load16(addresses.SWI))

	case instructions.Neg:
		mc.modify(defn, address, func(r *registers.Register) {
			r.NEG()
			mc.setNZ(*r)
			mc.Status.Overflow = r.Value() == 0x80
			mc.Status.Carry = r.Value() != 0x00
		})

	case instructions.Com:
		mc.modify(defn, address, func(r *registers.Register) {
			r.COM()
			mc.setNZClearV(*r)
			mc.Status.Carry = true
		})

	case instructions.Lsr:
		mc.modify(defn, address, func(r *registers.Register) {
			c := r.LSR()
			mc.setShift(*r, c)
		})

	case instructions.Ror:
		mc.modify(defn, address, func(r *registers.Register) {
			c := r.ROR(mc.Status.Carry)
			mc.setShift(*r, c)
		})

	case instructions.Asr:
		mc.modify(defn, address, func(r *registers.Register) {
			c := r.ASR()
			mc.setShift(*r, c)
		})

	case instructions.Asl:
		mc.modify(defn, address, func(r *registers.Register) {
			c := r.ASL()
			mc.setShift(*r, c)
		})

	case instructions.Rol:
		mc.modify(defn, address, func(r *registers.Register) {
			c := r.ROL(mc.Status.Carry)
			mc.setShift(*r, c)
		})

	case instructions.Dec:
		mc.modify(defn, address, func(r *registers.Register) {
			mc.Status.Overflow = r.Value() == 0x80
			r.Load(r.Value() - 1)
			mc.setNZ(*r)
		})

	case instructions.Inc:
		mc.modify(defn, address, func(r *registers.Register) {
			mc.Status.Overflow = r.Value() == 0x7f
			r.Load(r.Value() + 1)
			mc.setNZ(*r)
		})

	case instructions.Tst:
		r := registers.NewRegister(0, "M")
		if acc != nil {
			r = *acc
		} else {
			r.Load(mc.mem.Load8(address))
		}
		mc.setNZClearV(r)
		mc.Status.Carry = false

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Clr:
		mc.modify(defn, address, func(r *registers.Register) {
			r.Load(0)
			mc.setNZClearV(*r)
			mc.Status.Carry = false
		})

	case instructions.Sub:
		mc.Status.Carry, mc.Status.Overflow = acc.Subtract(mc.mem.Load8(address), false)
		mc.setNZ(*acc)

	case instructions.Cmp:
		r := *acc
		mc.Status.Carry, mc.Status.Overflow = r.Subtract(mc.mem.Load8(address), false)
		mc.setNZ(r)

	case instructions.Sbc:
		mc.Status.Carry, mc.Status.Overflow = acc.Subtract(mc.mem.Load8(address), mc.Status.Carry)
		mc.setNZ(*acc)

	case instructions.And:
		acc.AND(mc.mem.Load8(address))
		mc.setNZClearV(*acc)

	case instructions.Bit:
		r := *acc
		r.AND(mc.mem.Load8(address))
		mc.setNZClearV(r)

	case instructions.Lda:
		acc.Load(mc.mem.Load8(address))
		mc.setNZClearV(*acc)

	case instructions.Sta:
		mc.mem.Store8(address, acc.Value())
		mc.setNZClearV(*acc)

	case instructions.Eor:
		acc.EOR(mc.mem.Load8(address))
		mc.setNZClearV(*acc)

	case instructions.Adc:
		mc.Status.Carry, mc.Status.Overflow, mc.Status.HalfCarry = acc.Add(mc.mem.Load8(address), mc.Status.Carry)
		mc.setNZ(*acc)

	case instructions.Ora:
		acc.ORA(mc.mem.Load8(address))
		mc.setNZClearV(*acc)

	case instructions.Add:
		mc.Status.Carry, mc.Status.Overflow, mc.Status.HalfCarry = acc.Add(mc.mem.Load8(address), false)
		mc.setNZ(*acc)

	case instructions.Cpx:
		x := mc.X.Address()
		m := mc.mem.Load16(address)
		r := x - m
		mc.Status.Negative = r&0x8000 == 0x8000
		mc.Status.Zero = r == 0
		mc.Status.Overflow = (x^m)&(x^r)&0x8000 == 0x8000

	case instructions.Bsr, instructions.Jsr:
		mc.push16(mc.PC.Address())
		mc.PC.Load(address)

	case instructions.Lds:
		mc.SP.Load(mc.mem.Load16(address))
		mc.setNZ16(mc.SP)
		mc.Status.Overflow = false

	case instructions.Sts:
		mc.mem.Store16(address, mc.SP.Address())
		mc.setNZ16(mc.SP)
		mc.Status.Overflow = false

	case instructions.Ldx:
		mc.X.Load(mc.mem.Load16(address))
		mc.setNZ16(mc.X)
		mc.Status.Overflow = false

	case instructions.Stx:
		mc.mem.Store16(address, mc.X.Address())
		mc.setNZ16(mc.X)
		mc.Status.Overflow = false

	case instructions.Adx:
		// the immediate form adds a zero extended 8-bit value. the half carry
		// flag is not affected
		v := mc.LastResult.InstructionData
		if defn.AddressingMode != instructions.Immediate {
			v = mc.mem.Load16(address)
		}
		mc.Status.Carry, mc.Status.Overflow = mc.X.Add(v)
		mc.setNZ16(mc.X)

	case instructions.Nim:
		mc.memoryLogic(address, func(m uint8) uint8 { return m & mc.immediateHigh() })

	case instructions.Oim:
		mc.memoryLogic(address, func(m uint8) uint8 { return m | mc.immediateHigh() })

	case instructions.Xim:
		mc.memoryLogic(address, func(m uint8) uint8 { return m ^ mc.immediateHigh() })

	case instructions.Tmm:
		imm := mc.immediateHigh()
		r := mc.mem.Load8(address) & imm
		mc.Status.Negative = false
		mc.Status.Zero = false
		mc.Status.Overflow = false
		switch {
		case imm == 0 || r == 0:
			mc.Status.Zero = true
		case r == imm:
			mc.Status.Overflow = true
		default:
			mc.Status.Negative = true
		}
	}
}

// immediateHigh returns the immediate operand of an ImmediateIndexed
// instruction.
func (mc *CPU) immediateHigh() uint8 {
	return uint8(mc.LastResult.InstructionData >> 8)
}

// memoryLogic writes the result of f to memory. the result sets exactly one
// of the zero and negative flags: zero when the result is zero and negative
// otherwise. overflow is cleared and carry is unchanged
func (mc *CPU) memoryLogic(address uint16, f func(m uint8) uint8) {
	r := f(mc.mem.Load8(address))
	mc.mem.Store8(address, r)
	mc.Status.Overflow = false
	mc.Status.Zero = r == 0
	mc.Status.Negative = r != 0
}

// daa adjusts the A accumulator after the addition of two BCD values. the
// carry flag is set if it was already set or if the adjustment produces a
// carry. the overflow flag is not defined and is left unchanged
func (mc *CPU) daa() {
	a := mc.A.Value()
	lsn := a & 0x0f
	msn := a >> 4

	var adj uint8
	if mc.Status.HalfCarry || lsn > 9 {
		adj |= 0x06
	}
	if mc.Status.Carry || msn > 9 || (msn > 8 && lsn > 9) {
		adj |= 0x60
	}

	sum := uint16(a) + uint16(adj)
	mc.A.Load(uint8(sum))
	mc.Status.Carry = mc.Status.Carry || sum > 0xff
	mc.setNZ(mc.A)
}
