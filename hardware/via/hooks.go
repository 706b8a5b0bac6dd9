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

// Port identifies one of the two VIA ports.
type Port int

// List of valid Port values.
const (
	PortA Port = iota
	PortB
)

func (p Port) String() string {
	switch p {
	case PortA:
		return "PA"
	case PortB:
		return "PB"
	}
	return "undefined port"
}

// Line identifies one of the four VIA control lines.
type Line int

// List of valid Line values.
const (
	CA1 Line = iota
	CA2
	CB1
	CB2
	numLines
)

func (l Line) String() string {
	switch l {
	case CA1:
		return "CA1"
	case CA2:
		return "CA2"
	case CB1:
		return "CB1"
	case CB2:
		return "CB2"
	}
	return "undefined line"
}

// Hooks connect the VIA to the machine it is installed in. Any field can be
// left nil.
type Hooks struct {
	// PortInput returns the level of the external pins of the port. Only the
	// bits configured as inputs are used
	PortInput func(port Port) uint8

	// PortOutput is called whenever the value driven on to the port might have
	// changed. Bits configured as inputs are reported as high
	PortOutput func(port Port, value uint8)

	// ControlOutput is called when the VIA changes the level driven on to a
	// control line
	ControlOutput func(line Line, level bool)

	// IRQ is called when the state of the composite interrupt bit changes
	IRQ func(asserted bool)

	// Timer1Period is called when the number of cycles between toggles of
	// the PB7 square wave changes. A value of zero means that there is no
	// square wave
	Timer1Period func(cycles int)
}

// normalise replaces nil hooks with functions that do nothing.
func (h *Hooks) normalise() {
	if h.PortInput == nil {
		h.PortInput = func(Port) uint8 { return 0xff }
	}
	if h.PortOutput == nil {
		h.PortOutput = func(Port, uint8) {}
	}
	if h.ControlOutput == nil {
		h.ControlOutput = func(Line, bool) {}
	}
	if h.IRQ == nil {
		h.IRQ = func(bool) {}
	}
	if h.Timer1Period == nil {
		h.Timer1Period = func(int) {}
	}
}
