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

package registers

import (
	"fmt"
)

// Register is an 8-bit register.
type Register struct {
	value uint8
	label string
}

// NewRegister is the preferred method of initialisation for the Register
// type.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%02x", r.value)
}

// Label returns the canonical name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// IsNegative checks the sign bit of the register.
func (r Register) IsNegative() bool {
	return r.value&0x80 == 0x80
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. Returns the carry out of bit 7, the overflow and the
// carry out of bit 3.
func (r *Register) Add(val uint8, carry bool) (rcarry bool, overflow bool, half bool) {
	v := r.value

	var c uint8
	if carry {
		c = 1
	}

	sum := uint16(v) + uint16(val) + uint16(c)
	r.value = uint8(sum)

	rcarry = sum > 0xff
	overflow = ((v ^ r.value) & (val ^ r.value) & 0x80) != 0
	half = ((v & 0x0f) + (val & 0x0f) + c) > 0x0f

	return rcarry, overflow, half
}

// Subtract value from register. The borrow argument is the carry flag which
// on the 6800 indicates a borrow. Returns the borrow out of bit 7 and the
// overflow.
func (r *Register) Subtract(val uint8, borrow bool) (rborrow bool, overflow bool) {
	v := r.value

	var b uint8
	if borrow {
		b = 1
	}

	r.value = v - val - b

	rborrow = uint16(val)+uint16(b) > uint16(v)
	overflow = ((v ^ val) & (v ^ r.value) & 0x80) != 0

	return rborrow, overflow
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// EOR (exclusive or) value with register.
func (r *Register) EOR(val uint8) {
	r.value ^= val
}

// ORA (non-exclusive or) value with register.
func (r *Register) ORA(val uint8) {
	r.value |= val
}

// ASL (arithmetic shift left) shifts register one bit to the left. Returns
// the most significant bit as it was before the shift.
func (r *Register) ASL() bool {
	carry := r.IsNegative()
	r.value <<= 1
	return carry
}

// ASR (arithmetic shift right) shifts register one bit to the right. The sign
// bit is preserved. Returns the least significant bit as it was before the
// shift.
func (r *Register) ASR() bool {
	carry := r.value&0x01 == 0x01
	r.value = (r.value >> 1) | (r.value & 0x80)
	return carry
}

// LSR (logical shift right) shifts register one bit to the right. Returns the
// least significant bit as it was before the shift.
func (r *Register) LSR() bool {
	carry := r.value&0x01 == 0x01
	r.value >>= 1
	return carry
}

// ROL rotates register 1 bit to the left through the carry. Returns new carry
// status.
func (r *Register) ROL(carry bool) bool {
	rcarry := r.IsNegative()
	r.value <<= 1
	if carry {
		r.value |= 0x01
	}
	return rcarry
}

// ROR rotates register 1 bit to the right through the carry. Returns new
// carry status.
func (r *Register) ROR(carry bool) bool {
	rcarry := r.value&0x01 == 0x01
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return rcarry
}

// COM replaces the register with its one's complement.
func (r *Register) COM() {
	r.value = ^r.value
}

// NEG replaces the register with its two's complement.
func (r *Register) NEG() {
	r.value = -r.value
}
