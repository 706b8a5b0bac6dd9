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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher6800/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6800/test"
)

func TestDefinitions(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.DemandEquality(t, len(defs), 256)

	var count int
	for i, d := range defs {
		if d == nil {
			continue
		}
		count++
		test.ExpectEquality(t, d.OpCode, uint8(i))
		test.ExpectSuccess(t, d.Cycles > 0, d.Mnemonic)

		switch d.AddressingMode {
		case instructions.Inherent:
			test.ExpectEquality(t, d.Bytes, 1, d.Mnemonic)
		case instructions.Direct, instructions.Indexed, instructions.Relative:
			test.ExpectEquality(t, d.Bytes, 2, d.Mnemonic)
		case instructions.Extended, instructions.ImmediateIndexed:
			test.ExpectEquality(t, d.Bytes, 3, d.Mnemonic)
		}

		if d.IsBranch() {
			test.ExpectEquality(t, d.Cycles, 4, d.Mnemonic)
		}
	}

	// the documented instruction set plus the MB8861 extensions
	test.ExpectEquality(t, count, 203)
}

func TestSpotCheck(t *testing.T) {
	defs := instructions.GetDefinitions()

	for _, c := range []struct {
		opcode   uint8
		mnemonic string
		bytes    int
		cycles   int
	}{
		{0x86, "LDAA", 2, 2},
		{0x96, "LDAA", 2, 3},
		{0xa6, "LDAA", 2, 5},
		{0xb6, "LDAA", 3, 4},
		{0xd7, "STAB", 2, 4},
		{0xe7, "STAB", 2, 6},
		{0xf7, "STAB", 3, 5},
		{0x4f, "CLRA", 1, 2},
		{0x6f, "CLR", 2, 7},
		{0x7c, "INC", 3, 6},
		{0x8e, "LDS", 3, 3},
		{0xce, "LDX", 3, 3},
		{0xbd, "JSR", 3, 9},
		{0x3f, "SWI", 1, 12},
		{0x3e, "WAI", 1, 9},
		{0x3b, "RTI", 1, 10},
		{0xec, "ADX", 2, 3},
		{0xfc, "ADX", 3, 7},
		{0x71, "NIM", 3, 8},
		{0x72, "OIM", 3, 8},
		{0x75, "XIM", 3, 8},
		{0x7b, "TMM", 3, 7},
	} {
		d := defs[c.opcode]
		if d == nil {
			t.Errorf("no definition for opcode %02x", c.opcode)
			continue
		}
		test.ExpectEquality(t, d.Mnemonic, c.mnemonic)
		test.ExpectEquality(t, d.Bytes, c.bytes, c.mnemonic)
		test.ExpectEquality(t, d.Cycles, c.cycles, c.mnemonic)
	}

	// undefined opcodes
	for _, op := range []uint8{0x00, 0x02, 0x12, 0x38, 0x41, 0x87, 0xc7, 0xcd} {
		test.ExpectEquality(t, defs[op], (*instructions.Definition)(nil))
	}
}
