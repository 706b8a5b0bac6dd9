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
package via_test

import (
	"testing"

	"github.com/jetsetilly/gopher6800/hardware/memory"
	"github.com/jetsetilly/gopher6800/hardware/memory/addresses"
	"github.com/jetsetilly/gopher6800/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher6800/hardware/via"
	"github.com/jetsetilly/gopher6800/test"
)

// recorder captures the effect of the VIA on the outside world
type recorder struct {
	pins     [2]uint8
	ports    [2]uint8
	lines    [4]bool
	irq      bool
	irqCalls int
	period   int
}

func newVIA(t *testing.T) (*via.VIA, *recorder) {
	t.Helper()

	rec := &recorder{
		pins: [2]uint8{0xff, 0xff},
	}

	v, err := via.NewVIA(nil, "VIA", memorymap.OriginVIA, memorymap.MemtopVIA, via.Hooks{
		PortInput: func(port via.Port) uint8 {
			return rec.pins[port]
		},
		PortOutput: func(port via.Port, value uint8) {
			rec.ports[port] = value
		},
		ControlOutput: func(line via.Line, level bool) {
			rec.lines[line] = level
		},
		IRQ: func(asserted bool) {
			rec.irq = asserted
			rec.irqCalls++
		},
		Timer1Period: func(cycles int) {
			rec.period = cycles
		},
	})
	test.DemandSuccess(t, err)

	return v, rec
}

func store(v *via.VIA, reg addresses.ChipRegister, data uint8) {
	v.Store(memorymap.OriginVIA+uint16(reg), data)
}

func load(v *via.VIA, reg addresses.ChipRegister) uint8 {
	return v.Load(memorymap.OriginVIA + uint16(reg))
}

func steps(v *via.VIA, n int) {
	for range n {
		v.Step()
	}
}

func TestMalformedVIA(t *testing.T) {
	_, err := via.NewVIA(nil, "VIA", 0xa0ff, 0xa000, via.Hooks{})
	test.ExpectError(t, err, memory.ConfigurationError)
}

func TestRegisterSelect(t *testing.T) {
	v, _ := newVIA(t)
	test.ExpectEquality(t, v.Kind(), memory.KindPeripheral)

	// only the low four bits select the register
	v.Store(memorymap.OriginVIA+0x13, 0xff)
	test.ExpectEquality(t, load(v, addresses.DDRA), uint8(0xff))
	v.Store(memorymap.OriginVIA+0xf2, 0x0f)
	test.ExpectEquality(t, load(v, addresses.DDRB), uint8(0x0f))
}

func TestPortDirection(t *testing.T) {
	v, rec := newVIA(t)
	rec.pins[via.PortA] = 0x05

	store(v, addresses.DDRA, 0xf0)
	store(v, addresses.ORA, 0xaa)
	test.ExpectEquality(t, load(v, addresses.ORA), uint8(0xa5))
	test.ExpectEquality(t, load(v, addresses.ORANH), uint8(0xa5))

	// input bits are pulled high
	test.ExpectEquality(t, v.PortValue(via.PortA), uint8(0xaf))
	test.ExpectEquality(t, rec.ports[via.PortA], uint8(0xaf))

	rec.pins[via.PortB] = 0x3c
	store(v, addresses.DDRB, 0x0f)
	store(v, addresses.ORB, 0x00)
	test.ExpectEquality(t, load(v, addresses.ORB), uint8(0x30))
	test.ExpectEquality(t, rec.ports[via.PortB], uint8(0xf0))
}

func TestPortLatching(t *testing.T) {
	v, rec := newVIA(t)

	// latch port A on the positive edge of CA1
	store(v, addresses.ACR, 0x01)
	store(v, addresses.PCR, 0x01)

	rec.pins[via.PortA] = 0x12
	v.SetControlLine(via.CA1, false)
	v.SetControlLine(via.CA1, true)
	rec.pins[via.PortA] = 0x34
	test.ExpectEquality(t, load(v, addresses.ORA), uint8(0x12))

	// without latching the live pins are read
	store(v, addresses.ACR, 0x00)
	test.ExpectEquality(t, load(v, addresses.ORA), uint8(0x34))
}

func TestTimer1SquareWave(t *testing.T) {
	v, rec := newVIA(t)

	// continuous interrupts with square wave on PB7
	store(v, addresses.ACR, 0xc0)
	store(v, addresses.T1LL, 0x04)
	store(v, addresses.T1CH, 0x00)
	test.ExpectEquality(t, rec.period, 5)

	// PB7 goes low when the timer is loaded
	test.ExpectEquality(t, v.PortValue(via.PortB)&0x80, uint8(0x00))

	// the clock in which the write lands
	v.Step()

	level := uint8(0x00)
	for i := range 10 {
		for range 4 {
			v.Step()
			test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagT1, uint8(0), i)
			test.ExpectEquality(t, v.PortValue(via.PortB)&0x80, level, i)
		}
		v.Step()
		level ^= 0x80
		test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagT1, via.FlagT1, i)
		test.ExpectEquality(t, v.PortValue(via.PortB)&0x80, level, i)
		test.ExpectEquality(t, rec.ports[via.PortB]&0x80, level, i)
		test.ExpectEquality(t, load(v, addresses.ORB)&0x80, level, i)

		// reading the low byte of the counter clears the flag
		load(v, addresses.T1CL)
	}

	// leaving square wave mode stops the square wave
	store(v, addresses.ACR, 0x40)
	test.ExpectEquality(t, rec.period, 0)
}

func TestTimer1OneShot(t *testing.T) {
	v, rec := newVIA(t)
	store(v, addresses.IER, via.FlagIRQ|via.FlagT1)

	store(v, addresses.T1LL, 0x03)
	store(v, addresses.T1CH, 0x00)
	steps(v, 4)
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagT1, uint8(0))
	test.ExpectEquality(t, rec.irq, false)

	v.Step()
	test.ExpectEquality(t, load(v, addresses.IFR), via.FlagIRQ|via.FlagT1)
	test.ExpectEquality(t, rec.irq, true)
	test.ExpectEquality(t, v.IRQ(), true)

	load(v, addresses.T1CL)
	test.ExpectEquality(t, rec.irq, false)
	test.ExpectEquality(t, rec.irqCalls, 2)

	// one interrupt per arm
	steps(v, 20)
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagT1, uint8(0))

	// rearming with T1C-H. a write to T1L-H clears the flag
	store(v, addresses.T1CH, 0x00)
	steps(v, 5)
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagT1, via.FlagT1)
	store(v, addresses.T1LH, 0x00)
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagT1, uint8(0))
}

func TestTimer1OneShotPulse(t *testing.T) {
	v, _ := newVIA(t)

	// one-shot with a single pulse on PB7
	store(v, addresses.ACR, 0x80)
	store(v, addresses.T1LL, 0x02)
	store(v, addresses.T1CH, 0x00)
	test.ExpectEquality(t, v.PortValue(via.PortB)&0x80, uint8(0x00))

	steps(v, 3)
	test.ExpectEquality(t, v.PortValue(via.PortB)&0x80, uint8(0x00))
	v.Step()
	test.ExpectEquality(t, v.PortValue(via.PortB)&0x80, uint8(0x80))

	// PB7 stays high after the next expiry
	steps(v, 6)
	test.ExpectEquality(t, v.PortValue(via.PortB)&0x80, uint8(0x80))
}

func TestTimer2Interval(t *testing.T) {
	v, _ := newVIA(t)

	store(v, addresses.T2CL, 0x02)
	store(v, addresses.T2CH, 0x00)
	steps(v, 3)
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagT2, uint8(0))
	v.Step()
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagT2, via.FlagT2)

	// reading the low byte of the counter clears the flag. there is only one
	// interrupt per arm
	load(v, addresses.T2CL)
	steps(v, 20)
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagT2, uint8(0))
}

func TestTimer2PulseCounting(t *testing.T) {
	v, rec := newVIA(t)

	pulse := func() {
		rec.pins[via.PortB] = 0xbf
		v.Step()
		rec.pins[via.PortB] = 0xff
		v.Step()
	}

	store(v, addresses.ACR, 0x20)
	store(v, addresses.T2CL, 0x01)
	store(v, addresses.T2CH, 0x00)

	// time passing does not decrement the counter
	steps(v, 10)
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagT2, uint8(0))

	pulse()
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagT2, uint8(0))
	pulse()
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagT2, via.FlagT2)
	load(v, addresses.T2CL)

	// a write to the low latch disarms the interrupt
	store(v, addresses.T2CH, 0x00)
	store(v, addresses.T2CL, 0x00)
	for range 4 {
		pulse()
	}
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagT2, uint8(0))
}

func TestShiftInExternalClock(t *testing.T) {
	v, _ := newVIA(t)

	// shift in under control of CB1
	store(v, addresses.ACR, 0x0c)
	store(v, addresses.SR, 0x00)

	shift := func(bit bool) {
		v.SetControlLine(via.CB2, bit)
		v.SetControlLine(via.CB1, false)
		v.SetControlLine(via.CB1, true)
	}

	pattern := uint8(0xa5)
	for i := range 8 {
		test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagSR, uint8(0), i)
		shift((pattern>>(7-i))&0x01 == 0x01)
	}
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagSR, via.FlagSR)

	// shifting halts after a complete transfer
	shift(false)
	shift(false)
	test.ExpectEquality(t, load(v, addresses.SR), pattern)

	// reading the register clears the flag and rearms the transfer
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagSR, uint8(0))
	for range 8 {
		shift(true)
	}
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagSR, via.FlagSR)
	test.ExpectEquality(t, load(v, addresses.SR), uint8(0xff))
}

func TestShiftOutPhi2(t *testing.T) {
	v, rec := newVIA(t)

	store(v, addresses.ACR, 0x18)
	store(v, addresses.SR, 0xa5)

	var out uint8
	for i := range 8 {
		// notify phase
		v.Step()
		test.ExpectEquality(t, rec.lines[via.CB1], false, i)
		out <<= 1
		if v.LineLevel(via.CB2) {
			out |= 0x01
		}

		// shift phase
		v.Step()
		test.ExpectEquality(t, rec.lines[via.CB1], true, i)
	}
	test.ExpectEquality(t, out, uint8(0xa5))
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagSR, via.FlagSR)

	// output bits recirculate
	test.ExpectEquality(t, load(v, addresses.SR), uint8(0xa5))
}

func TestShiftOutFreeRunning(t *testing.T) {
	v, _ := newVIA(t)

	// timer2 underflows every clock
	store(v, addresses.T2CL, 0x00)
	store(v, addresses.T2CH, 0x00)

	store(v, addresses.ACR, 0x10)
	store(v, addresses.SR, 0x81)

	// 99 phases after the clock in which T2C-H was written. 49 complete bits
	steps(v, 100)
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagSR, uint8(0))
	test.ExpectEquality(t, load(v, addresses.SR), uint8(0x03))
}

func TestInterruptFlags(t *testing.T) {
	v, rec := newVIA(t)

	store(v, addresses.IER, via.FlagIRQ|via.FlagT1|via.FlagCA1)
	test.ExpectEquality(t, load(v, addresses.IER), uint8(0xc2))

	// CA1 is enabled
	v.SetControlLine(via.CA1, false)
	test.ExpectEquality(t, load(v, addresses.IFR), via.FlagIRQ|via.FlagCA1)
	test.ExpectEquality(t, rec.irq, true)
	test.ExpectEquality(t, rec.irqCalls, 1)

	// CB1 is not enabled
	v.SetControlLine(via.CB1, false)
	test.ExpectEquality(t, load(v, addresses.IFR), via.FlagIRQ|via.FlagCA1|via.FlagCB1)
	test.ExpectEquality(t, rec.irqCalls, 1)

	// writing bit 7 clears every flagged and enabled source
	store(v, addresses.IFR, via.FlagIRQ)
	test.ExpectEquality(t, load(v, addresses.IFR), via.FlagCB1)
	test.ExpectEquality(t, rec.irq, false)
	test.ExpectEquality(t, rec.irqCalls, 2)

	store(v, addresses.IFR, via.FlagCB1)
	test.ExpectEquality(t, load(v, addresses.IFR), uint8(0))

	// enabling a source that is already flagged asserts the IRQ
	v.SetControlLine(via.CB1, true)
	v.SetControlLine(via.CB1, false)
	test.ExpectEquality(t, rec.irq, false)
	store(v, addresses.IER, via.FlagIRQ|via.FlagCB1)
	test.ExpectEquality(t, rec.irq, true)

	// bit 7 clear disables sources
	store(v, addresses.IER, via.FlagCB1|via.FlagT1)
	test.ExpectEquality(t, load(v, addresses.IER), uint8(0x82))
	test.ExpectEquality(t, rec.irq, false)
}

func TestHandshake(t *testing.T) {
	v, rec := newVIA(t)

	// CA2 handshake output
	store(v, addresses.PCR, 0x08)
	load(v, addresses.ORA)
	test.ExpectEquality(t, rec.lines[via.CA2], false)
	v.SetControlLine(via.CA1, false)
	test.ExpectEquality(t, rec.lines[via.CA2], true)
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagCA1, via.FlagCA1)

	// reading ORA clears the flag and starts the next handshake
	load(v, addresses.ORA)
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagCA1, uint8(0))
	test.ExpectEquality(t, rec.lines[via.CA2], false)

	// the no-handshake register has no effect on the line
	store(v, addresses.PCR, 0x08)
	load(v, addresses.ORANH)
	test.ExpectEquality(t, rec.lines[via.CA2], true)

	// CA2 pulse output is low for a single clock
	store(v, addresses.PCR, 0x0a)
	store(v, addresses.ORA, 0x00)
	test.ExpectEquality(t, rec.lines[via.CA2], false)
	v.Step()
	test.ExpectEquality(t, rec.lines[via.CA2], true)

	// manual output
	store(v, addresses.PCR, 0x0c)
	test.ExpectEquality(t, rec.lines[via.CA2], false)
	store(v, addresses.PCR, 0x0e)
	test.ExpectEquality(t, rec.lines[via.CA2], true)

	// CB2 handshake is started by a write to ORB but not by a read
	store(v, addresses.PCR, 0x80)
	load(v, addresses.ORB)
	test.ExpectEquality(t, rec.lines[via.CB2], true)
	store(v, addresses.ORB, 0x00)
	test.ExpectEquality(t, rec.lines[via.CB2], false)
	v.SetControlLine(via.CB1, false)
	test.ExpectEquality(t, rec.lines[via.CB2], true)
}

func TestIndependentInterrupt(t *testing.T) {
	v, _ := newVIA(t)

	// CA2 independent interrupt on negative edge
	store(v, addresses.PCR, 0x02)
	v.SetControlLine(via.CA2, false)
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagCA2, via.FlagCA2)
	load(v, addresses.ORA)
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagCA2, via.FlagCA2)

	// CA2 positive edge, cleared by reading ORA
	store(v, addresses.PCR, 0x04)
	v.SetControlLine(via.CA2, true)
	load(v, addresses.ORA)
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagCA2, uint8(0))

	// the inactive edge does not raise the flag
	v.SetControlLine(via.CA2, false)
	test.ExpectEquality(t, load(v, addresses.IFR)&via.FlagCA2, uint8(0))
}

func TestReset(t *testing.T) {
	v, rec := newVIA(t)

	store(v, addresses.ACR, 0xc0)
	store(v, addresses.T1LL, 0x10)
	store(v, addresses.T1CH, 0x00)
	store(v, addresses.IER, via.FlagIRQ|via.FlagT1)
	steps(v, 20)
	test.ExpectEquality(t, rec.irq, true)
	test.ExpectEquality(t, rec.period, 17)

	v.Reset()
	test.ExpectEquality(t, rec.irq, false)
	test.ExpectEquality(t, rec.period, 0)
	test.ExpectEquality(t, load(v, addresses.ACR), uint8(0))
	test.ExpectEquality(t, load(v, addresses.IER), uint8(0x80))
	test.ExpectEquality(t, rec.ports[via.PortB], uint8(0xff))
}
