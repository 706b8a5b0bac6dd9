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

package govern

import (
	"fmt"

	"github.com/jetsetilly/gopher6800/hardware/keyboard"
)

// EventType distinguishes the types of Event.
type EventType int

// List of event types.
const (
	Reset EventType = iota
	Pause
	Resume
	PowerOff
	KeyPressed
	KeyReleased
)

func (t EventType) String() string {
	switch t {
	case Reset:
		return "Reset"
	case Pause:
		return "Pause"
	case Resume:
		return "Resume"
	case PowerOff:
		return "PowerOff"
	case KeyPressed:
		return "KeyPressed"
	case KeyReleased:
		return "KeyReleased"
	}
	return "unknown event"
}

// Immediate is the clock value of an event that is due as soon as possible,
// whatever the state of the emulation.
const Immediate = 0

// Event is a request to change the state of the emulation. Events are
// dispatched in order of their Clock value.
type Event struct {
	Type EventType

	// the clock at which the event is due. a value of Immediate means that
	// the event is due now, even when the emulation is paused
	Clock uint64

	// the key for KeyPressed and KeyReleased events
	Key keyboard.Code
}

func (ev Event) String() string {
	switch ev.Type {
	case KeyPressed, KeyReleased:
		return fmt.Sprintf("%s(%s) @ %d", ev.Type, ev.Key, ev.Clock)
	}
	return fmt.Sprintf("%s @ %d", ev.Type, ev.Clock)
}

// NextState returns the state the emulation is in after the event has been
// dispatched. Key events do not change the state.
func (ev Event) NextState(current State) State {
	switch ev.Type {
	case Reset, Resume:
		return Running
	case Pause:
		return Paused
	case PowerOff:
		return Stopped
	}
	return current
}
