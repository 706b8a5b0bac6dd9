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

package state_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6800/hardware/state"
	"github.com/jetsetilly/gopher6800/test"
)

func TestSaverLoader(t *testing.T) {
	s := state.NewSnapshot()

	sv := state.NewSaver(s, "CPU")
	sv.Uint8("A", 0x12)
	sv.Uint16("PC", 0xfffe)
	sv.Bool("wait", true)
	sv.Int("clock", -5)
	sv.Uint64("cycles", 1<<40)
	sv.Bytes("mem", []byte{1, 2, 3})

	_, ok := s.Get("CPU.PC")
	test.ExpectSuccess(t, ok)

	ld := state.NewLoader(s, "CPU")
	test.ExpectEquality(t, ld.Uint8("A"), uint8(0x12))
	test.ExpectEquality(t, ld.Uint16("PC"), uint16(0xfffe))
	test.ExpectSuccess(t, ld.Bool("wait"))
	test.ExpectEquality(t, ld.Int("clock"), -5)
	test.ExpectEquality(t, ld.Uint64("cycles"), uint64(1<<40))
	mem := make([]byte, 3)
	ld.Bytes("mem", mem)
	test.ExpectEquality(t, string(mem), string([]byte{1, 2, 3}))
	test.ExpectSuccess(t, ld.Err())
}

func TestMissingField(t *testing.T) {
	s := state.NewSnapshot()
	state.NewSaver(s, "VIA").Uint8("ier", 0x7f)

	ld := state.NewLoader(s, "VIA")
	test.ExpectEquality(t, ld.Uint8("ier"), uint8(0x7f))
	test.ExpectEquality(t, ld.Uint8("ifr"), uint8(0))

	// error is sticky
	test.ExpectEquality(t, ld.Uint8("ier"), uint8(0))
	test.ExpectError(t, ld.Err(), state.SnapshotError)
}

func TestWrongLength(t *testing.T) {
	s := state.NewSnapshot()
	state.NewSaver(s, "RAM").Bytes("memory", make([]byte, 10))

	ld := state.NewLoader(s, "RAM")
	ld.Bytes("memory", make([]byte, 16))
	test.ExpectFailure(t, ld.Err())
}

func TestSerialisation(t *testing.T) {
	s := state.NewSnapshot()
	sv := state.NewSaver(s, "CPU")
	sv.Uint8("B", 0xab)
	sv.Uint16("X", 0x1234)

	var b bytes.Buffer
	test.DemandSuccess(t, s.Write(&b))
	test.ExpectEquality(t, b.String(), "gopher6800 snapshot\nversion :: 1\nCPU.B :: ab\nCPU.X :: 1234\n")

	r := state.NewSnapshot()
	test.DemandSuccess(t, r.Read(&b))
	test.ExpectEquality(t, r.Len(), 2)
	ld := state.NewLoader(r, "CPU")
	test.ExpectEquality(t, ld.Uint16("X"), uint16(0x1234))
	test.ExpectEquality(t, ld.Uint8("B"), uint8(0xab))
}

func TestCorruptSnapshot(t *testing.T) {
	for _, c := range []string{
		"",
		"not a snapshot\nversion :: 1\n",
		"gopher6800 snapshot\n",
		"gopher6800 snapshot\nversion :: 99\n",
		"gopher6800 snapshot\nversion :: x\n",
		"gopher6800 snapshot\nversion :: 1\nCPU.A 12\n",
		"gopher6800 snapshot\nversion :: 1\nCPU.A :: zz\n",
	} {
		err := state.NewSnapshot().Read(strings.NewReader(c))
		test.ExpectError(t, err, state.SnapshotError, c)
	}
}
