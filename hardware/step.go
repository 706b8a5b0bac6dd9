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

package hardware

import (
	"github.com/jetsetilly/gopher6800/hardware/cpu/execution"
)

// Step the emulation one CPU instruction. The VIA is kept in step with the CPU
// as usual.
//
// If the CPU is halted or waiting for an interrupt then the step is a single
// idle cycle. If a reset is pending then no cycles elapse.
func (comp *Computer) Step() (execution.Result, error) {
	_, err := comp.CPU.ExecuteInstruction()
	return comp.CPU.LastResult, err
}
