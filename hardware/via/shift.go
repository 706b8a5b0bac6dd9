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
package via

import (
	"github.com/jetsetilly/gopher6800/assert"
)

// shiftMode is the value of ACR bits 4 to 2.
type shiftMode uint8

// List of shift register modes.
const (
	shiftDisabled shiftMode = iota
	shiftInT2
	shiftInPhi2
	shiftInCB1
	shiftOutFreeT2
	shiftOutT2
	shiftOutPhi2
	shiftOutCB1
)

func (m shiftMode) String() string {
	switch m {
	case shiftDisabled:
		return "disabled"
	case shiftInT2:
		return "shift in under T2"
	case shiftInPhi2:
		return "shift in under phi2"
	case shiftInCB1:
		return "shift in under CB1"
	case shiftOutFreeT2:
		return "shift out free running under T2"
	case shiftOutT2:
		return "shift out under T2"
	case shiftOutPhi2:
		return "shift out under phi2"
	case shiftOutCB1:
		return "shift out under CB1"
	}
	return "impossible mode"
}

func (m shiftMode) isOutput() bool {
	return m >= shiftOutFreeT2
}

func (m shiftMode) externalClock() bool {
	return m == shiftInCB1 || m == shiftOutCB1
}

// the number of bits in a complete transfer
const shiftBits = 8

// each bit is transferred in two phases. the notify phase takes CB1 low and
// places the output bit on CB2. the shift phase takes CB1 high and shifts the
// register
type shiftRegister struct {
	value uint8
	mode  shiftMode

	// number of bits shifted since the register was armed
	count int

	// the next phase is the shift phase
	shiftPhase bool

	// the register halts after a complete transfer until it is armed again
	active bool
}

// armShiftRegister is the effect of a read or write of SR or a change of
// shift mode.
func (via *VIA) armShiftRegister() {
	via.sr.count = 0
	via.sr.shiftPhase = false
	via.sr.active = via.sr.mode != shiftDisabled
}

func (via *VIA) stepShiftRegister(t2underflow bool) {
	switch via.sr.mode {
	case shiftDisabled:
	case shiftInT2, shiftOutFreeT2, shiftOutT2:
		if t2underflow {
			via.clockShiftRegister()
		}
	case shiftInPhi2, shiftOutPhi2:
		via.clockShiftRegister()
	case shiftInCB1, shiftOutCB1:
		// clocked by edges on CB1. see SetControlLine()
	default:
		assert.Failf("via: %s: impossible shift register mode (%d)", via.label, via.sr.mode)
	}
}

// clockShiftRegister performs the next phase of the transfer.
func (via *VIA) clockShiftRegister() {
	if !via.sr.active {
		return
	}

	internal := !via.sr.mode.externalClock()

	if !via.sr.shiftPhase {
		if internal {
			via.driveLine(CB1, false)
		}
		if via.sr.mode.isOutput() {
			via.driveLine(CB2, via.sr.value&0x80 == 0x80)
		}
		via.sr.shiftPhase = true
		return
	}

	if internal {
		via.driveLine(CB1, true)
	}

	var bit uint8
	if via.sr.mode.isOutput() {
		// output bits recirculate
		bit = via.sr.value >> 7
	} else if via.lines[CB2].input {
		bit = 1
	}
	via.sr.value = via.sr.value<<1 | bit
	via.sr.shiftPhase = false

	via.sr.count++
	if via.sr.count < shiftBits {
		return
	}
	via.sr.count = 0

	// free running mode never stops and never interrupts
	if via.sr.mode == shiftOutFreeT2 {
		return
	}

	via.sr.active = false
	via.setFlags(FlagSR)
}
