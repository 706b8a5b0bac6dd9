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

// lineMode is the PCR setting for CA2 or CB2.
type lineMode uint8

// List of control modes for CA2 and CB2.
const (
	inputNegative lineMode = iota
	independentNegative
	inputPositive
	independentPositive
	handshakeOutput
	pulseOutput
	manualLow
	manualHigh
)

func (via *VIA) lineMode(line Line) lineMode {
	switch line {
	case CA2:
		return lineMode(via.pcr>>1) & 0x07
	case CB2:
		return lineMode(via.pcr>>5) & 0x07
	}
	return inputNegative
}

// positiveEdge returns true if the active edge of the line is the low to high
// transition.
func (via *VIA) positiveEdge(line Line) bool {
	switch line {
	case CA1:
		return via.pcr&0x01 == 0x01
	case CB1:
		return via.pcr&0x10 == 0x10
	}
	m := via.lineMode(line)
	return m == inputPositive || m == independentPositive
}

func lineFlag(line Line) uint8 {
	switch line {
	case CA1:
		return FlagCA1
	case CA2:
		return FlagCA2
	case CB1:
		return FlagCB1
	case CB2:
		return FlagCB2
	}
	return 0
}

// dependentFlag returns the interrupt flag for CA2 or CB2 if it is cleared by
// an access to the port. In the independent modes it is not.
func (via *VIA) dependentFlag(line Line) uint8 {
	switch via.lineMode(line) {
	case independentNegative, independentPositive:
		return 0
	}
	return lineFlag(line)
}

// SetControlLine sets the level presented to the control line by the outside
// world. The active edge of a line raises the interrupt flag for that line.
func (via *VIA) SetControlLine(line Line, level bool) {
	l := &via.lines[line]
	if l.input == level {
		return
	}
	l.input = level

	switch line {
	case CA1, CB1:
		if level == via.positiveEdge(line) {
			via.setFlags(lineFlag(line))
			via.endHandshake(line)
		}

		// when the shift register is clocked externally the falling edge of CB1
		// begins the notify phase and the rising edge the shift phase
		if line == CB1 && via.sr.mode.externalClock() && level == via.sr.shiftPhase {
			via.clockShiftRegister()
		}

	case CA2, CB2:
		if via.lineMode(line) < handshakeOutput && level == via.positiveEdge(line) {
			via.setFlags(lineFlag(line))
		}
	}
}

// endHandshake is the effect of an active edge on CA1 or CB1. the input is
// latched if latching is enabled and the handshake on the paired output line
// completes.
func (via *VIA) endHandshake(line Line) {
	switch line {
	case CA1:
		if via.acr&acrLatchA == acrLatchA {
			via.ira = via.hooks.PortInput(PortA)
		}
		if via.lineMode(CA2) == handshakeOutput {
			via.driveLine(CA2, true)
		}
	case CB1:
		if via.acr&acrLatchB == acrLatchB {
			via.irb = via.hooks.PortInput(PortB)
		}
		if via.lineMode(CB2) == handshakeOutput {
			via.driveLine(CB2, true)
		}
	}
}

// startHandshake is the effect of an access to ORA or ORB. in handshake mode
// the line goes low until the next active edge on CA1 or CB1. in pulse mode
// it goes low for a single clock.
func (via *VIA) startHandshake(line Line) {
	switch via.lineMode(line) {
	case handshakeOutput:
		via.driveLine(line, false)
	case pulseOutput:
		via.driveLine(line, false)
		via.lines[line].pulse = true
	}
}

func (via *VIA) endPulses() {
	for _, line := range []Line{CA2, CB2} {
		if via.lines[line].pulse {
			via.lines[line].pulse = false
			via.driveLine(line, true)
		}
	}
}

func (via *VIA) driveLine(line Line, level bool) {
	l := &via.lines[line]
	if l.output != level {
		l.output = level
		via.hooks.ControlOutput(line, level)
	}
}

func (via *VIA) writePCR(data uint8) {
	via.pcr = data
	for _, line := range []Line{CA2, CB2} {
		via.lines[line].pulse = false
		switch via.lineMode(line) {
		case manualLow:
			via.driveLine(line, false)
		default:
			via.driveLine(line, true)
		}
	}
}

// LineLevel returns the level driven on to the control line by the VIA.
func (via *VIA) LineLevel(line Line) bool {
	return via.lines[line].output
}

// readPort returns the value of the port as seen by the CPU. output bits read
// back the output register. input bits read the latched value if latching is
// enabled, otherwise the level of the pins.
func (via *VIA) readPort(port Port) uint8 {
	switch port {
	case PortA:
		in := via.ira
		if via.acr&acrLatchA != acrLatchA {
			in = via.hooks.PortInput(PortA)
		}
		return via.ora&via.ddra | in&^via.ddra
	case PortB:
		in := via.irb
		if via.acr&acrLatchB != acrLatchB {
			in = via.hooks.PortInput(PortB)
		}
		v := via.orb&via.ddrb | in&^via.ddrb
		if via.acr&acrT1PB7 == acrT1PB7 {
			v = v&0x7f | via.pb7()
		}
		return v
	}
	return 0
}

func (via *VIA) pb7() uint8 {
	if via.t1.output {
		return 0x80
	}
	return 0x00
}

// portOutput returns the value driven on to the port. input bits are pulled
// high.
func (via *VIA) portOutput(port Port) uint8 {
	switch port {
	case PortA:
		return via.ora&via.ddra | ^via.ddra
	case PortB:
		v := via.orb&via.ddrb | ^via.ddrb
		if via.acr&acrT1PB7 == acrT1PB7 {
			v = v&0x7f | via.pb7()
		}
		return v
	}
	return 0
}

// PortValue returns the value driven on to the port by the VIA. Bits
// configured as inputs are reported as high.
func (via *VIA) PortValue(port Port) uint8 {
	return via.portOutput(port)
}
