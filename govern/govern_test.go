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

package govern_test

import (
	"testing"

	"github.com/jetsetilly/gopher6800/govern"
	"github.com/jetsetilly/gopher6800/hardware/keyboard"
	"github.com/jetsetilly/gopher6800/test"
)

func TestNextState(t *testing.T) {
	for _, c := range []struct {
		typ      govern.EventType
		current  govern.State
		expected govern.State
	}{
		{govern.Reset, govern.Stopped, govern.Running},
		{govern.Reset, govern.Paused, govern.Running},
		{govern.Pause, govern.Running, govern.Paused},
		{govern.Resume, govern.Paused, govern.Running},
		{govern.PowerOff, govern.Running, govern.Stopped},
		{govern.PowerOff, govern.Paused, govern.Stopped},
		{govern.KeyPressed, govern.Paused, govern.Paused},
		{govern.KeyReleased, govern.Running, govern.Running},
	} {
		ev := govern.Event{Type: c.typ}
		test.ExpectEquality(t, ev.NextState(c.current), c.expected, ev)
	}
}

func TestEventString(t *testing.T) {
	ev := govern.Event{Type: govern.KeyPressed, Clock: 100, Key: keyboard.NewCode(1, 2)}
	test.ExpectEquality(t, ev.String(), "KeyPressed(key 1,2) @ 100")

	ev = govern.Event{Type: govern.PowerOff}
	test.ExpectEquality(t, ev.String(), "PowerOff @ 0")

	test.ExpectEquality(t, govern.Stopped.String(), "Stopped")
}
