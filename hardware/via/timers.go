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

// timer1 counts down every clock. the counter goes below zero one clock after
// reaching zero, at which point the interrupt flag is raised and the counter is
// reloaded from the latch
type timer1 struct {
	counter int
	latch   uint16

	// a one-shot interrupt is only raised if the timer is armed. the timer
	// is armed by a write to T1C-H
	armed bool

	// the counter was loaded during the current clock and must not be
	// decremented
	grace bool

	// the level of PB7 when it is driven by the timer. the level toggles on
	// every expiry in continuous mode, even if PB7 is not driven
	output bool

	// the most recent value sent to the Timer1Period hook
	period int
}

// timer2 counts clocks or falling edges on PB6 depending on ACR5
type timer2 struct {
	counter int
	latch   uint16
	armed   bool
	grace   bool

	// the most recently sampled level of PB6
	pb6 bool
}

// loadTimer1 is the effect of a write to T1C-H. the latch must already
// contain the new value.
func (via *VIA) loadTimer1() {
	via.t1.counter = int(via.t1.latch)
	via.t1.armed = true
	via.t1.grace = true
	via.clearFlags(FlagT1)

	if via.acr&acrT1PB7 == acrT1PB7 {
		via.t1.output = false
		via.hooks.PortOutput(PortB, via.portOutput(PortB))
	}

	via.updatePeriod()
}

func (via *VIA) stepTimer1() {
	if via.t1.grace {
		via.t1.grace = false
		return
	}

	via.t1.counter--
	if via.t1.counter >= 0 {
		return
	}
	via.t1.counter = int(via.t1.latch)

	pb7 := via.acr&acrT1PB7 == acrT1PB7

	if via.acr&acrT1Continuous == acrT1Continuous {
		via.t1.output = !via.t1.output
		via.setFlags(FlagT1)
	} else if via.t1.armed {
		via.t1.armed = false
		via.t1.output = true
		via.setFlags(FlagT1)
	} else {
		return
	}

	if pb7 {
		via.hooks.PortOutput(PortB, via.portOutput(PortB))
	}
}

// updatePeriod calls the Timer1Period hook if the square wave period has
// changed. there is only a square wave when timer1 is in continuous mode and
// driving PB7
func (via *VIA) updatePeriod() {
	var period int
	if via.acr&(acrT1Continuous|acrT1PB7) == acrT1Continuous|acrT1PB7 {
		period = int(via.t1.latch) + 1
	}
	if period != via.t1.period {
		via.t1.period = period
		via.hooks.Timer1Period(period)
		via.logf("timer1 square wave period: %d", period)
	}
}

// loadTimer2 is the effect of a write to T2C-H. the latch must already
// contain the new value.
func (via *VIA) loadTimer2() {
	via.t2.counter = int(via.t2.latch)
	via.t2.armed = true
	via.t2.grace = true
	via.clearFlags(FlagT2)
}

// stepTimer2 returns true if the counter underflowed.
func (via *VIA) stepTimer2() bool {
	var falling bool
	if via.acr&acrT2Pulses == acrT2Pulses {
		pb6 := via.hooks.PortInput(PortB)&0x40 == 0x40
		falling = via.t2.pb6 && !pb6
		via.t2.pb6 = pb6
	}

	if via.t2.grace {
		via.t2.grace = false
		return false
	}

	if via.acr&acrT2Pulses == acrT2Pulses && !falling {
		return false
	}

	via.t2.counter--
	if via.t2.counter >= 0 {
		return false
	}
	via.t2.counter = int(via.t2.latch)

	if via.t2.armed {
		via.t2.armed = false
		via.setFlags(FlagT2)
	}

	return true
}

// Timer1Period returns the period of the square wave on PB7 in CPU cycles. A
// value of zero means that there is no square wave.
func (via *VIA) Timer1Period() int {
	return via.t1.period
}
