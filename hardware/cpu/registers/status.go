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
	"strings"
)

// Status is the condition code register of the CPU.
type Status struct {
	HalfCarry bool
	Interrupt bool
	Negative  bool
	Zero      bool
	Overflow  bool
	Carry     bool
}

// Label returns the canonical name for the condition code register.
func (sr Status) Label() string {
	return "CC"
}

// String returns the flags as a string of six characters. Upper case
// indicates that the flag is set.
func (sr Status) String() string {
	s := strings.Builder{}
	flag := func(v bool, set rune, unset rune) {
		if v {
			s.WriteRune(set)
		} else {
			s.WriteRune(unset)
		}
	}
	flag(sr.HalfCarry, 'H', 'h')
	flag(sr.Interrupt, 'I', 'i')
	flag(sr.Negative, 'N', 'n')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Overflow, 'V', 'v')
	flag(sr.Carry, 'C', 'c')
	return s.String()
}

// Reset status flags to initial state. Only the interrupt mask is set.
func (sr *Status) Reset() {
	sr.FromValue(0)
	sr.Interrupt = true
}

// Value converts the Status struct into a value suitable for pushing onto the
// stack. The two unused bits are always set.
func (sr Status) Value() uint8 {
	v := uint8(0xc0)
	if sr.HalfCarry {
		v |= 0x20
	}
	if sr.Interrupt {
		v |= 0x10
	}
	if sr.Negative {
		v |= 0x08
	}
	if sr.Zero {
		v |= 0x04
	}
	if sr.Overflow {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}
	return v
}

// FromValue converts an 8 bit integer (taken from the stack, for example) to
// the Status struct receiver.
func (sr *Status) FromValue(v uint8) {
	sr.HalfCarry = v&0x20 == 0x20
	sr.Interrupt = v&0x10 == 0x10
	sr.Negative = v&0x08 == 0x08
	sr.Zero = v&0x04 == 0x04
	sr.Overflow = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}
