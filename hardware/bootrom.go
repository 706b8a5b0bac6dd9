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

package hardware

// the boot program is placed at the start of the last page of memory. the
// interrupt vectors are at the end of the same page
const bootOrigin = 0xff00

// BootROM returns a minimal ROM image that is used when no ROM file is
// provided. The program clears the screen, prints READY and waits for an
// interrupt. Interrupts return immediately to the wait loop.
//
// The image is 256 bytes long and should be flashed to the top of the ROM.
func BootROM() []uint8 {
	rom := make([]uint8, 0x100)
	for i := range rom {
		rom[i] = 0xff
	}

	program := []uint8{
		0x8e, 0x01, 0xff, // ff00 LDS #$01ff
		0xce, 0x80, 0x00, // ff03 LDX #$8000
		0x86, 0x20, // ff06 LDAA #$20
		0xa7, 0x00, // ff08 STAA 0,X
		0x08,             // ff0a INX
		0x8c, 0x88, 0x00, // ff0b CPX #$8800
		0x26, 0xf8, // ff0e BNE $ff08
		0x86, 'R', 0xb7, 0x80, 0x00, // ff10 LDAA #'R' STAA $8000
		0x86, 'E', 0xb7, 0x80, 0x01, // ff15 LDAA #'E' STAA $8001
		0x86, 'A', 0xb7, 0x80, 0x02, // ff1a LDAA #'A' STAA $8002
		0x86, 'D', 0xb7, 0x80, 0x03, // ff1f LDAA #'D' STAA $8003
		0x86, 'Y', 0xb7, 0x80, 0x04, // ff24 LDAA #'Y' STAA $8004
		0x3e,       // ff29 WAI
		0x20, 0xfd, // ff2a BRA $ff29
		0x3b, // ff2c RTI
	}
	copy(rom, program)

	const handler = 0xff2c

	vectors := []uint16{
		handler,    // IRQ
		handler,    // SWI
		handler,    // NMI
		bootOrigin, // reset
	}
	for i, v := range vectors {
		rom[0xf8+i*2] = uint8(v >> 8)
		rom[0xf9+i*2] = uint8(v)
	}

	return rom
}
