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

// Package state defines the hooks through which every stateful component of
// the emulation saves and restores its internal registers and counters.
//
// Values are opaque byte slices stored under a flat namespace of keys of the
// form "Component.field". For example, the CPU accumulator is stored under
// "CPU.A" and the VIA timer 1 counter under "VIA.t1counter".
//
// Components write their state with a Saver and read it back with a Loader.
// The Loader records the first error it encounters (usually a missing field)
// and returns zero values thereafter, which means a component's LoadState()
// function can read every field and check the error once at the end:
//
//	ld := state.NewLoader(src, "CPU")
//	mc.A = ld.Uint8("A")
//	mc.X = ld.Uint16("X")
//	if err := ld.Err(); err != nil {
//		return err
//	}
//
// The Snapshot type is an in-memory implementation of both Sink and Source,
// with a simple text serialisation for persistence.
package state
