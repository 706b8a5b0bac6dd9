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

// Operator identifies the operation performed by an instruction. Operators
// that have an accumulator and a memory form (eg. NEGA and NEG) share the
// same Operator value and are distinguished by the Accumulator field of the
// Definition.
type Operator int

// List of valid Operator values.
const (
	Nop Operator = iota
	Tap
	Tpa
	Inx
	Dex
	Clv
	Sev
	Clc
	Sec
	Cli
	Sei
	Sba
	Cba
	Tab
	Tba
	Daa
	Aba

	Bra
	Bhi
	Bls
	Bcc
	Bcs
	Bne
	Beq
	Bvc
	Bvs
	Bpl
	Bmi
	Bge
	Blt
	Bgt
	Ble

	Tsx
	Ins
	Pul
	Des
	Txs
	Psh
	Rts
	Rti
	Wai
	Swi

	Neg
	Com
	Lsr
	Ror
	Asr
	Asl
	Rol
	Dec
	Inc
	Tst
	Jmp
	Clr

	Sub
	Cmp
	Sbc
	And
	Bit
	Lda
	Sta
	Eor
	Adc
	Ora
	Add

	Cpx
	Bsr
	Jsr
	Lds
	Sts
	Ldx
	Stx

	// add an 8-bit or 16-bit value to the index register
	Adx

	// logic operations between an immediate value and indexed memory
	Nim
	Oim
	Xim
	Tmm
)
