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
	"fmt"

	"github.com/jetsetilly/gopher6800/hardware/instance"
	"github.com/jetsetilly/gopher6800/hardware/memory"
	"github.com/jetsetilly/gopher6800/hardware/memory/addresses"
)

// Interrupt flag register bits. The same bits are used in the interrupt
// enable register.
const (
	FlagCA2 uint8 = 1 << iota
	FlagCA1
	FlagSR
	FlagCB2
	FlagCB1
	FlagT2
	FlagT1
	FlagIRQ
)

// Auxiliary control register bits.
const (
	acrLatchA      = 0x01
	acrLatchB      = 0x02
	acrShiftMode   = 0x1c
	acrT2Pulses    = 0x20
	acrT1Continuous = 0x40
	acrT1PB7       = 0x80
)

// controlLine is the state of one of the CA1, CA2, CB1 or CB2 lines. the
// input level is the level presented by the outside world. the output level
// is the level driven by the VIA, which is only meaningful for CA2 and CB2
// and for CB1 when it is used as the shift register clock
type controlLine struct {
	input  bool
	output bool

	// a pulse is in progress. the output returns high at the next tick
	pulse bool
}

// VIA implements the 6522 versatile interface adapter.
type VIA struct {
	env    *instance.Instance
	label  string
	origin uint16
	memtop uint16
	hooks  Hooks

	ora  uint8
	orb  uint8
	ira  uint8
	irb  uint8
	ddra uint8
	ddrb uint8

	t1 timer1
	t2 timer2
	sr shiftRegister

	acr uint8
	pcr uint8
	ifr uint8
	ier uint8

	lines [numLines]controlLine

	// the state of the composite interrupt bit when the IRQ hook was last
	// called
	irq bool
}

// NewVIA is the preferred method of initialisation for the VIA type. The VIA
// should be Reset() before use.
func NewVIA(env *instance.Instance, label string, origin uint16, memtop uint16, hooks Hooks) (*VIA, error) {
	if origin > memtop {
		return nil, fmt.Errorf("%w: %s: origin %#04x is above memtop %#04x", memory.ConfigurationError, label, origin, memtop)
	}
	hooks.normalise()
	via := &VIA{
		env:    env,
		label:  label,
		origin: origin,
		memtop: memtop,
		hooks:  hooks,
	}
	via.Reset()
	return via, nil
}

func (via *VIA) String() string {
	return fmt.Sprintf("ORA=%02x ORB=%02x DDRA=%02x DDRB=%02x T1=%04x/%04x T2=%04x/%04x SR=%02x ACR=%02x PCR=%02x IFR=%02x IER=%02x",
		via.ora, via.orb, via.ddra, via.ddrb,
		uint16(via.t1.counter), via.t1.latch, uint16(via.t2.counter), via.t2.latch,
		via.sr.value, via.acr, via.pcr, via.readIFR(), via.ier)
}

// Label implements the memory.Device interface.
func (via *VIA) Label() string {
	return via.label
}

// Kind implements the memory.Device interface.
func (via *VIA) Kind() memory.Kind {
	return memory.KindPeripheral
}

// Origin implements the memory.Device interface.
func (via *VIA) Origin() uint16 {
	return via.origin
}

// Memtop implements the memory.Device interface.
func (via *VIA) Memtop() uint16 {
	return via.memtop
}

// Reset implements the memory.Device interface. All registers are cleared
// and the control lines return high.
func (via *VIA) Reset() {
	via.ora = 0
	via.orb = 0
	via.ira = 0
	via.irb = 0
	via.ddra = 0
	via.ddrb = 0
	via.acr = 0
	via.pcr = 0
	via.ifr = 0
	via.ier = 0

	// the period is retained so that updatePeriod() can report the change
	via.t1 = timer1{output: true, period: via.t1.period}
	via.t2 = timer2{pb6: true}
	via.sr = shiftRegister{}

	// the timers are not cleared by the reset line on real hardware
	if via.env != nil && via.env.Prefs.RandomState.Get().(bool) {
		via.t1.counter = via.env.Random.Intn(0x10000)
		via.t1.latch = uint16(via.env.Random.Intn(0x10000))
		via.t2.counter = via.env.Random.Intn(0x10000)
		via.t2.latch = uint16(via.env.Random.Intn(0x10000))
	}

	for i := range via.lines {
		via.lines[i] = controlLine{input: true, output: true}
		via.hooks.ControlOutput(Line(i), true)
	}

	via.updateIRQ()
	via.updatePeriod()
	via.hooks.PortOutput(PortA, via.portOutput(PortA))
	via.hooks.PortOutput(PortB, via.portOutput(PortB))
}

// Execute implements the memory.Executor interface.
func (via *VIA) Execute(clocks int) {
	for range clocks {
		via.Step()
	}
}

// Step advances the VIA by one clock.
func (via *VIA) Step() {
	via.endPulses()
	via.stepTimer1()
	underflow := via.stepTimer2()
	via.stepShiftRegister(underflow)
}

// Load implements the memory.Device interface. Reading some registers has
// side effects, such as clearing interrupt flags.
func (via *VIA) Load(address uint16) uint8 {
	switch addresses.ChipRegister(address & addresses.RegisterMask) {
	case addresses.ORB:
		via.clearFlags(FlagCB1 | via.dependentFlag(CB2))
		return via.readPort(PortB)
	case addresses.ORA:
		via.clearFlags(FlagCA1 | via.dependentFlag(CA2))
		v := via.readPort(PortA)
		via.startHandshake(CA2)
		return v
	case addresses.DDRB:
		return via.ddrb
	case addresses.DDRA:
		return via.ddra
	case addresses.T1CL:
		via.clearFlags(FlagT1)
		return uint8(via.t1.counter)
	case addresses.T1CH:
		return uint8(via.t1.counter >> 8)
	case addresses.T1LL:
		return uint8(via.t1.latch)
	case addresses.T1LH:
		return uint8(via.t1.latch >> 8)
	case addresses.T2CL:
		via.clearFlags(FlagT2)
		return uint8(via.t2.counter)
	case addresses.T2CH:
		return uint8(via.t2.counter >> 8)
	case addresses.SR:
		via.clearFlags(FlagSR)
		via.armShiftRegister()
		return via.sr.value
	case addresses.ACR:
		return via.acr
	case addresses.PCR:
		return via.pcr
	case addresses.IFR:
		return via.readIFR()
	case addresses.IER:
		return via.ier | FlagIRQ
	case addresses.ORANH:
		return via.readPort(PortA)
	}
	return 0
}

// Store implements the memory.Device interface.
func (via *VIA) Store(address uint16, data uint8) {
	switch addresses.ChipRegister(address & addresses.RegisterMask) {
	case addresses.ORB:
		via.orb = data
		via.clearFlags(FlagCB1 | via.dependentFlag(CB2))
		via.hooks.PortOutput(PortB, via.portOutput(PortB))
		via.startHandshake(CB2)
	case addresses.ORA:
		via.ora = data
		via.clearFlags(FlagCA1 | via.dependentFlag(CA2))
		via.hooks.PortOutput(PortA, via.portOutput(PortA))
		via.startHandshake(CA2)
	case addresses.DDRB:
		via.ddrb = data
		via.hooks.PortOutput(PortB, via.portOutput(PortB))
	case addresses.DDRA:
		via.ddra = data
		via.hooks.PortOutput(PortA, via.portOutput(PortA))
	case addresses.T1CL, addresses.T1LL:
		via.t1.latch = via.t1.latch&0xff00 | uint16(data)
		via.updatePeriod()
	case addresses.T1CH:
		via.t1.latch = via.t1.latch&0x00ff | uint16(data)<<8
		via.loadTimer1()
	case addresses.T1LH:
		via.t1.latch = via.t1.latch&0x00ff | uint16(data)<<8
		via.clearFlags(FlagT1)
		via.updatePeriod()
	case addresses.T2CL:
		via.t2.latch = via.t2.latch&0xff00 | uint16(data)
		if via.acr&acrT2Pulses == acrT2Pulses {
			via.t2.armed = false
		}
	case addresses.T2CH:
		via.t2.latch = via.t2.latch&0x00ff | uint16(data)<<8
		via.loadTimer2()
	case addresses.SR:
		via.sr.value = data
		via.clearFlags(FlagSR)
		via.armShiftRegister()
	case addresses.ACR:
		via.writeACR(data)
	case addresses.PCR:
		via.writePCR(data)
	case addresses.IFR:
		clear := data & 0x7f
		if data&FlagIRQ == FlagIRQ {
			clear |= via.ifr & via.ier
		}
		via.clearFlags(clear)
	case addresses.IER:
		if data&FlagIRQ == FlagIRQ {
			via.ier |= data & 0x7f
		} else {
			via.ier &^= data & 0x7f
		}
		via.updateIRQ()
	case addresses.ORANH:
		via.ora = data
		via.hooks.PortOutput(PortA, via.portOutput(PortA))
	}
}

func (via *VIA) writeACR(data uint8) {
	prev := via.acr
	via.acr = data

	mode := shiftMode((data & acrShiftMode) >> 2)
	if mode != via.sr.mode {
		via.sr.mode = mode
		via.armShiftRegister()
		via.logf("shift register mode: %s", mode)
	}

	if (prev^data)&acrT1PB7 == acrT1PB7 {
		via.hooks.PortOutput(PortB, via.portOutput(PortB))
	}

	via.updatePeriod()
}
