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

import "fmt"

// Data16 is a 16-bit register. Used for the index register, the stack
// pointer and the program counter.
type Data16 struct {
	value uint16
	label string
}

// NewData16 is the preferred method of initialisation for the Data16 type.
func NewData16(val uint16, label string) Data16 {
	return Data16{
		value: val,
		label: label,
	}
}

func (r Data16) String() string {
	return fmt.Sprintf("%04x", r.value)
}

// Label returns the canonical name of the register.
func (r Data16) Label() string {
	return r.label
}

// Address returns the current value of the register.
func (r Data16) Address() uint16 {
	return r.value
}

// IsNegative checks the sign bit of the register.
func (r Data16) IsNegative() bool {
	return r.value&0x8000 == 0x8000
}

// IsZero checks if register is zero.
func (r Data16) IsZero() bool {
	return r.value == 0
}

// Load value into register.
func (r *Data16) Load(val uint16) {
	r.value = val
}

// Add value to register. The result wraps at 0xffff. Returns the carry out of
// bit 15 and the overflow.
func (r *Data16) Add(val uint16) (carry bool, overflow bool) {
	v := r.value
	r.value += val
	carry = r.value < v
	overflow = ((v ^ r.value) & (val ^ r.value) & 0x8000) != 0
	return carry, overflow
}

// Increment adds one to the register, wrapping at 0xffff.
func (r *Data16) Increment() {
	r.value++
}

// Decrement subtracts one from the register, wrapping at 0x0000.
func (r *Data16) Decrement() {
	r.value--
}
