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

// Package audio carries the tone parameters of the machine from the
// emulation goroutine to the audio renderer.
//
// The machine has no sound chip. Sound is produced by running the VIA timer 1
// in free-running mode with PB7 output, which toggles PB7 every time the timer
// underflows. The period of the square wave is published by the VIA through
// the Timer1Period hook and converted to a frequency with
// FrequencyFromPeriod().
//
// The Cell type is the point of exchange. It is written by the emulation
// (through the scheduler's real-time command list so that the change is heard
// at the correct wall-clock time) and read by the Generator once per buffer.
// Reads and writes are atomic and no locking is required.
package audio
