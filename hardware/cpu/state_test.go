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
package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher6800/hardware/cpu"
	"github.com/jetsetilly/gopher6800/hardware/state"
	"github.com/jetsetilly/gopher6800/test"
)

// a short loop that exercises the stack, the index register and the
// accumulators
var loop = []uint8{
	0x8e, 0x01, 0xff, // LDS #$01ff
	0xce, 0x00, 0x00, // LDX #$0000
	0x08,             // INX
	0xdf, 0x50,       // STX $50
	0x8b, 0x03,       // ADDA #$03
	0x36,             // PSHA
	0x33,             // PULB
	0x1b,             // ABA
	0x20, 0xf6,       // BRA -10
}

func trace(t *testing.T, mc *cpu.CPU, n int) []string {
	t.Helper()
	var s []string
	for range n {
		r := step(t, mc)
		s = append(s, r.String(), mc.String())
	}
	return s
}

func TestStateRoundTrip(t *testing.T) {
	mc, mem := newCPU(t, nil)
	mem.putInstructions(origin, loop...)
	trace(t, mc, 25)

	snapshot := state.NewSnapshot()
	mc.SaveState(snapshot)
	copied := *mem
	clock := mc.Clock

	expected := trace(t, mc, 50)

	restored := cpu.NewCPU(nil, &copied, nil)
	test.DemandSuccess(t, restored.LoadState(snapshot))
	test.ExpectEquality(t, restored.Clock, clock)

	got := trace(t, restored, 50)
	test.DemandEquality(t, len(got), len(expected))
	for i := range expected {
		test.ExpectEquality(t, got[i], expected[i], i)
	}
	test.ExpectEquality(t, restored.Clock, mc.Clock)
	test.ExpectEquality(t, copied.Load16(0x0050), mem.Load16(0x0050))
}

func TestStateMissingField(t *testing.T) {
	mc, _ := newCPU(t, nil)
	mc.PC.Load(0x1234)

	snapshot := state.NewSnapshot()
	err := mc.LoadState(snapshot)
	test.ExpectFailure(t, err)
	test.ExpectError(t, err, state.SnapshotError)

	// a failed load leaves the CPU unchanged
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1234))
}
