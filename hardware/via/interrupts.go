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
	"github.com/jetsetilly/gopher6800/logger"
)

// readIFR returns the interrupt flag register with the composite bit.
func (via *VIA) readIFR() uint8 {
	if via.ifr&via.ier&0x7f != 0 {
		return via.ifr | FlagIRQ
	}
	return via.ifr
}

func (via *VIA) setFlags(flags uint8) {
	via.ifr |= flags & 0x7f
	via.updateIRQ()
}

func (via *VIA) clearFlags(flags uint8) {
	via.ifr &^= flags & 0x7f
	via.updateIRQ()
}

// updateIRQ calls the IRQ hook if the composite interrupt bit has changed.
func (via *VIA) updateIRQ() {
	irq := via.ifr&via.ier&0x7f != 0
	if irq != via.irq {
		via.irq = irq
		via.hooks.IRQ(irq)
	}
}

// IRQ returns the state of the composite interrupt bit.
func (via *VIA) IRQ() bool {
	return via.irq
}

func (via *VIA) logf(format string, args ...any) {
	logger.Logf(via.env, "via", "%s: "+format, append([]any{via.label}, args...)...)
}
