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

// Package scheduler drives the emulated machine in step with wall-clock time.
//
// Time is divided into quanta of 1/refresh seconds. In each quantum the
// machine is advanced by the number of CPU clocks that elapse in that time,
// the refresh callback is called once, and the scheduler sleeps until the
// absolute deadline of the quantum. Because the deadlines are absolute, any
// lateness in one quantum is made up in the next and skew never accumulates.
//
// Changes to the running state are made by events. Events are queued by the
// control functions (PowerOn(), Pause(), KeyPressed(), etc.) from any
// goroutine and are dispatched by the scheduler in clock order. Events queued
// by the control functions are immediately due. The Schedule() function
// allows an event to be queued for a specific clock.
//
// The real-time command list is for side effects that must happen at a
// particular wall-clock time rather than a particular emulated clock. For
// example, a change in the frequency of the tone generator.
package scheduler
