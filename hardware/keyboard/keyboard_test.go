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
package keyboard_test

import (
	"testing"

	"github.com/jetsetilly/gopher6800/hardware/keyboard"
	"github.com/jetsetilly/gopher6800/hardware/state"
	"github.com/jetsetilly/gopher6800/test"
)

func TestScan(t *testing.T) {
	kb := keyboard.NewKeyboard()
	test.ExpectEquality(t, kb.Scan(0x00), uint8(0xff))

	test.DemandSuccess(t, kb.Press(keyboard.NewCode(2, 5)))
	test.ExpectEquality(t, kb.IsPressed(keyboard.NewCode(2, 5)), true)

	// column 2 selected
	test.ExpectEquality(t, kb.Scan(0xfb), uint8(0xdf))

	// column 2 not selected
	test.ExpectEquality(t, kb.Scan(0xfd), uint8(0xff))

	// all columns selected
	test.DemandSuccess(t, kb.Press(keyboard.NewCode(7, 0)))
	test.ExpectEquality(t, kb.Scan(0x00), uint8(0xde))

	test.DemandSuccess(t, kb.Release(keyboard.NewCode(2, 5)))
	test.ExpectEquality(t, kb.Scan(0x00), uint8(0xfe))

	kb.Reset()
	test.ExpectEquality(t, kb.Scan(0x00), uint8(0xff))
}

func TestUnknownKey(t *testing.T) {
	kb := keyboard.NewKeyboard()
	err := kb.Press(keyboard.Code(64))
	test.ExpectError(t, err, keyboard.UnknownKey)
	err = kb.Release(keyboard.Code(200))
	test.ExpectError(t, err, keyboard.UnknownKey)
	test.ExpectEquality(t, kb.IsPressed(keyboard.Code(64)), false)
}

func TestCode(t *testing.T) {
	c := keyboard.NewCode(3, 6)
	test.ExpectEquality(t, c, keyboard.Code(30))
	test.ExpectEquality(t, c.Column(), 3)
	test.ExpectEquality(t, c.Row(), 6)
	test.ExpectEquality(t, c.String(), "key 3,6")
}

func TestState(t *testing.T) {
	kb := keyboard.NewKeyboard()
	test.DemandSuccess(t, kb.Press(keyboard.NewCode(1, 1)))

	s := state.NewSnapshot()
	kb.SaveState(s)

	restored := keyboard.NewKeyboard()
	test.DemandSuccess(t, restored.LoadState(s))
	test.ExpectEquality(t, restored.String(), kb.String())
	test.ExpectEquality(t, restored.IsPressed(keyboard.NewCode(1, 1)), true)

	test.ExpectFailure(t, restored.LoadState(state.NewSnapshot()))
}
