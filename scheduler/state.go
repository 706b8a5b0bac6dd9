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

package scheduler

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopher6800/govern"
	"github.com/jetsetilly/gopher6800/hardware/state"
)

// NotPaused is returned by SaveState() and LoadState() if the scheduler is
// running.
var NotPaused = errors.New("scheduler is running")

const component = "Scheduler"

// SaveState writes the state of the scheduler and the machine to the sink.
// Only allowed while the scheduler is paused or stopped.
func (s *Scheduler) SaveState(sink state.Sink) error {
	s.machineCrit.Lock()
	defer s.machineCrit.Unlock()

	if st := s.RunningStatus(); st == govern.Running {
		return fmt.Errorf("scheduler: save state: %w", NotPaused)
	}

	sv := state.NewSaver(sink, component)
	sv.Uint64("clock", s.clock)
	sv.Int("overrun", s.overrun)
	s.machine.SaveState(sink)

	return nil
}

// LoadState restores the state of the scheduler and the machine from the
// source. Only allowed while the scheduler is paused or stopped. Events that
// are already queued remain in the queue.
func (s *Scheduler) LoadState(src state.Source) error {
	s.machineCrit.Lock()
	defer s.machineCrit.Unlock()

	if st := s.RunningStatus(); st == govern.Running {
		return fmt.Errorf("scheduler: load state: %w", NotPaused)
	}

	l := state.NewLoader(src, component)
	clock := l.Uint64("clock")
	overrun := l.Int("overrun")
	if err := l.Err(); err != nil {
		return fmt.Errorf("scheduler: load state: %w", err)
	}

	if err := s.machine.LoadState(src); err != nil {
		return fmt.Errorf("scheduler: load state: %w", err)
	}

	s.clock = clock
	s.overrun = overrun

	return nil
}
