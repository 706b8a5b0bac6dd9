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

// Execute runs the computer for at least the number of clocks requested.
// Instructions are never interrupted so the number of clocks executed can
// exceed the request. The excess is returned and should be used to shorten
// the next request.
//
// Unlike CPU.Execute() a pending reset does not cut the request short. The
// reset is performed and execution continues from the reset vector.
func (comp *Computer) Execute(clocks int) (overrun int) {
	if clocks <= 0 {
		return 0
	}

	start := comp.clock
	for {
		remaining := clocks - int(comp.clock-start)
		if remaining <= 0 {
			return -remaining
		}
		comp.CPU.Execute(remaining)
	}
}
