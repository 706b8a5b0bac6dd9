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

package instructions

// the instruction set is regular enough that most of the table can be built
// from families of instructions. the opcode of each family member is the
// family's low nibble combined with the high nibble of the addressing mode.

// accumulator operations with a memory operand. the A accumulator versions
// are at 0x80 to 0xbf and the B accumulator versions at 0xc0 to 0xff.
var accumulatorFamily = []struct {
	nibble   uint8
	name     string
	operator Operator
	effect   Category
}{
	{0x0, "SUB", Sub, Read},
	{0x1, "CMP", Cmp, Read},
	{0x2, "SBC", Sbc, Read},
	{0x4, "AND", And, Read},
	{0x5, "BIT", Bit, Read},
	{0x6, "LDA", Lda, Read},
	{0x7, "STA", Sta, Write},
	{0x8, "EOR", Eor, Read},
	{0x9, "ADC", Adc, Read},
	{0xa, "ORA", Ora, Read},
	{0xb, "ADD", Add, Read},
}

// unary operations. the accumulator forms are at 0x40 and 0x50 and the memory
// forms at 0x60 (indexed) and 0x70 (extended).
var unaryFamily = []struct {
	nibble   uint8
	name     string
	operator Operator
}{
	{0x0, "NEG", Neg},
	{0x3, "COM", Com},
	{0x4, "LSR", Lsr},
	{0x6, "ROR", Ror},
	{0x7, "ASR", Asr},
	{0x8, "ASL", Asl},
	{0x9, "ROL", Rol},
	{0xa, "DEC", Dec},
	{0xc, "INC", Inc},
	{0xd, "TST", Tst},
	{0xf, "CLR", Clr},
}

// the remaining instructions are listed in full.
var irregular = []Definition{
	{OpCode: 0x01, Mnemonic: "NOP", Operator: Nop, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x06, Mnemonic: "TAP", Operator: Tap, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x07, Mnemonic: "TPA", Operator: Tpa, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x08, Mnemonic: "INX", Operator: Inx, Bytes: 1, Cycles: 4, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x09, Mnemonic: "DEX", Operator: Dex, Bytes: 1, Cycles: 4, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x0a, Mnemonic: "CLV", Operator: Clv, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x0b, Mnemonic: "SEV", Operator: Sev, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x0c, Mnemonic: "CLC", Operator: Clc, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x0d, Mnemonic: "SEC", Operator: Sec, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x0e, Mnemonic: "CLI", Operator: Cli, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x0f, Mnemonic: "SEI", Operator: Sei, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x10, Mnemonic: "SBA", Operator: Sba, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x11, Mnemonic: "CBA", Operator: Cba, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x16, Mnemonic: "TAB", Operator: Tab, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x17, Mnemonic: "TBA", Operator: Tba, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x19, Mnemonic: "DAA", Operator: Daa, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x1b, Mnemonic: "ABA", Operator: Aba, Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read},

	{OpCode: 0x20, Mnemonic: "BRA", Operator: Bra, Bytes: 2, Cycles: 4, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x22, Mnemonic: "BHI", Operator: Bhi, Bytes: 2, Cycles: 4, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x23, Mnemonic: "BLS", Operator: Bls, Bytes: 2, Cycles: 4, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x24, Mnemonic: "BCC", Operator: Bcc, Bytes: 2, Cycles: 4, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x25, Mnemonic: "BCS", Operator: Bcs, Bytes: 2, Cycles: 4, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x26, Mnemonic: "BNE", Operator: Bne, Bytes: 2, Cycles: 4, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x27, Mnemonic: "BEQ", Operator: Beq, Bytes: 2, Cycles: 4, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x28, Mnemonic: "BVC", Operator: Bvc, Bytes: 2, Cycles: 4, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x29, Mnemonic: "BVS", Operator: Bvs, Bytes: 2, Cycles: 4, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x2a, Mnemonic: "BPL", Operator: Bpl, Bytes: 2, Cycles: 4, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x2b, Mnemonic: "BMI", Operator: Bmi, Bytes: 2, Cycles: 4, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x2c, Mnemonic: "BGE", Operator: Bge, Bytes: 2, Cycles: 4, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x2d, Mnemonic: "BLT", Operator: Blt, Bytes: 2, Cycles: 4, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x2e, Mnemonic: "BGT", Operator: Bgt, Bytes: 2, Cycles: 4, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x2f, Mnemonic: "BLE", Operator: Ble, Bytes: 2, Cycles: 4, AddressingMode: Relative, Effect: Flow},

	{OpCode: 0x30, Mnemonic: "TSX", Operator: Tsx, Bytes: 1, Cycles: 4, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x31, Mnemonic: "INS", Operator: Ins, Bytes: 1, Cycles: 4, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x32, Mnemonic: "PULA", Operator: Pul, Accumulator: AccA, Bytes: 1, Cycles: 4, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x33, Mnemonic: "PULB", Operator: Pul, Accumulator: AccB, Bytes: 1, Cycles: 4, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x34, Mnemonic: "DES", Operator: Des, Bytes: 1, Cycles: 4, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x35, Mnemonic: "TXS", Operator: Txs, Bytes: 1, Cycles: 4, AddressingMode: Inherent, Effect: Read},
	{OpCode: 0x36, Mnemonic: "PSHA", Operator: Psh, Accumulator: AccA, Bytes: 1, Cycles: 4, AddressingMode: Inherent, Effect: Write},
	{OpCode: 0x37, Mnemonic: "PSHB", Operator: Psh, Accumulator: AccB, Bytes: 1, Cycles: 4, AddressingMode: Inherent, Effect: Write},
	{OpCode: 0x39, Mnemonic: "RTS", Operator: Rts, Bytes: 1, Cycles: 5, AddressingMode: Inherent, Effect: Subroutine},
	{OpCode: 0x3b, Mnemonic: "RTI", Operator: Rti, Bytes: 1, Cycles: 10, AddressingMode: Inherent, Effect: Interrupt},
	{OpCode: 0x3e, Mnemonic: "WAI", Operator: Wai, Bytes: 1, Cycles: 9, AddressingMode: Inherent, Effect: Interrupt},
	{OpCode: 0x3f, Mnemonic: "SWI", Operator: Swi, Bytes: 1, Cycles: 12, AddressingMode: Inherent, Effect: Interrupt},

	{OpCode: 0x6e, Mnemonic: "JMP", Operator: Jmp, Bytes: 2, Cycles: 4, AddressingMode: Indexed, Effect: Flow},
	{OpCode: 0x7e, Mnemonic: "JMP", Operator: Jmp, Bytes: 3, Cycles: 3, AddressingMode: Extended, Effect: Flow},

	{OpCode: 0x8c, Mnemonic: "CPX", Operator: Cpx, Bytes: 3, Cycles: 3, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x9c, Mnemonic: "CPX", Operator: Cpx, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0xac, Mnemonic: "CPX", Operator: Cpx, Bytes: 2, Cycles: 6, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xbc, Mnemonic: "CPX", Operator: Cpx, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},

	{OpCode: 0x8d, Mnemonic: "BSR", Operator: Bsr, Bytes: 2, Cycles: 8, AddressingMode: Relative, Effect: Subroutine},
	{OpCode: 0xad, Mnemonic: "JSR", Operator: Jsr, Bytes: 2, Cycles: 8, AddressingMode: Indexed, Effect: Subroutine},
	{OpCode: 0xbd, Mnemonic: "JSR", Operator: Jsr, Bytes: 3, Cycles: 9, AddressingMode: Extended, Effect: Subroutine},

	{OpCode: 0x8e, Mnemonic: "LDS", Operator: Lds, Bytes: 3, Cycles: 3, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x9e, Mnemonic: "LDS", Operator: Lds, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0xae, Mnemonic: "LDS", Operator: Lds, Bytes: 2, Cycles: 6, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xbe, Mnemonic: "LDS", Operator: Lds, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},

	{OpCode: 0x9f, Mnemonic: "STS", Operator: Sts, Bytes: 2, Cycles: 5, AddressingMode: Direct, Effect: Write},
	{OpCode: 0xaf, Mnemonic: "STS", Operator: Sts, Bytes: 2, Cycles: 7, AddressingMode: Indexed, Effect: Write},
	{OpCode: 0xbf, Mnemonic: "STS", Operator: Sts, Bytes: 3, Cycles: 6, AddressingMode: Extended, Effect: Write},

	{OpCode: 0xce, Mnemonic: "LDX", Operator: Ldx, Bytes: 3, Cycles: 3, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xde, Mnemonic: "LDX", Operator: Ldx, Bytes: 2, Cycles: 4, AddressingMode: Direct, Effect: Read},
	{OpCode: 0xee, Mnemonic: "LDX", Operator: Ldx, Bytes: 2, Cycles: 6, AddressingMode: Indexed, Effect: Read},
	{OpCode: 0xfe, Mnemonic: "LDX", Operator: Ldx, Bytes: 3, Cycles: 5, AddressingMode: Extended, Effect: Read},

	{OpCode: 0xdf, Mnemonic: "STX", Operator: Stx, Bytes: 2, Cycles: 5, AddressingMode: Direct, Effect: Write},
	{OpCode: 0xef, Mnemonic: "STX", Operator: Stx, Bytes: 2, Cycles: 7, AddressingMode: Indexed, Effect: Write},
	{OpCode: 0xff, Mnemonic: "STX", Operator: Stx, Bytes: 3, Cycles: 6, AddressingMode: Extended, Effect: Write},

	{OpCode: 0xec, Mnemonic: "ADX", Operator: Adx, Bytes: 2, Cycles: 3, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xfc, Mnemonic: "ADX", Operator: Adx, Bytes: 3, Cycles: 7, AddressingMode: Extended, Effect: Read},

	{OpCode: 0x71, Mnemonic: "NIM", Operator: Nim, Bytes: 3, Cycles: 8, AddressingMode: ImmediateIndexed, Effect: Modify},
	{OpCode: 0x72, Mnemonic: "OIM", Operator: Oim, Bytes: 3, Cycles: 8, AddressingMode: ImmediateIndexed, Effect: Modify},
	{OpCode: 0x75, Mnemonic: "XIM", Operator: Xim, Bytes: 3, Cycles: 8, AddressingMode: ImmediateIndexed, Effect: Modify},
	{OpCode: 0x7b, Mnemonic: "TMM", Operator: Tmm, Bytes: 3, Cycles: 7, AddressingMode: ImmediateIndexed, Effect: Read},
}

// bytes taken by each addressing mode for instructions with an 8-bit operand
var modeBytes = map[AddressingMode]int{
	Inherent:  1,
	Immediate: 2,
	Direct:    2,
	Indexed:   2,
	Extended:  3,
	Relative:  2,
}

var definitions [256]*Definition

func init() {
	add := func(defn Definition) {
		if definitions[defn.OpCode] != nil {
			panic("instructions: duplicate opcode definition")
		}
		d := defn
		definitions[defn.OpCode] = &d
	}

	for _, f := range accumulatorFamily {
		for _, acc := range []struct {
			accumulator Accumulator
			suffix      string
			base        uint8
		}{
			{AccA, "A", 0x80},
			{AccB, "B", 0xc0},
		} {
			modes := []struct {
				mode   AddressingMode
				offset uint8
				cycles int
			}{
				{Immediate, 0x00, 2},
				{Direct, 0x10, 3},
				{Indexed, 0x20, 5},
				{Extended, 0x30, 4},
			}
			for _, m := range modes {
				cycles := m.cycles
				if f.effect == Write {
					// there is no immediate form of the store instruction
					if m.mode == Immediate {
						continue
					}
					cycles++
				}
				add(Definition{
					OpCode:         acc.base + m.offset + f.nibble,
					Mnemonic:       f.name + acc.suffix,
					Operator:       f.operator,
					Accumulator:    acc.accumulator,
					Bytes:          modeBytes[m.mode],
					Cycles:         cycles,
					AddressingMode: m.mode,
					Effect:         f.effect,
				})
			}
		}
	}

	for _, f := range unaryFamily {
		effect := Modify
		if f.operator == Tst {
			effect = Read
		} else if f.operator == Clr {
			effect = Write
		}

		add(Definition{OpCode: 0x40 + f.nibble, Mnemonic: f.name + "A", Operator: f.operator, Accumulator: AccA,
			Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read})
		add(Definition{OpCode: 0x50 + f.nibble, Mnemonic: f.name + "B", Operator: f.operator, Accumulator: AccB,
			Bytes: 1, Cycles: 2, AddressingMode: Inherent, Effect: Read})
		add(Definition{OpCode: 0x60 + f.nibble, Mnemonic: f.name, Operator: f.operator,
			Bytes: 2, Cycles: 7, AddressingMode: Indexed, Effect: effect})
		add(Definition{OpCode: 0x70 + f.nibble, Mnemonic: f.name, Operator: f.operator,
			Bytes: 3, Cycles: 6, AddressingMode: Extended, Effect: effect})
	}

	for _, defn := range irregular {
		add(defn)
	}
}

// GetDefinitions returns the table of instruction definitions, indexed by
// opcode. Undefined opcodes have a nil entry.
func GetDefinitions() []*Definition {
	return definitions[:]
}
