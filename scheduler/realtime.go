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
	"context"
	"slices"
	"time"
)

// the frequency at which the real-time command list is polled
const pollPeriod = 100 * time.Microsecond

type command struct {
	due time.Time
	cmd func()
}

// At adds a command to the real-time command list. The command will be run by
// PollRealTime() once the due time has passed. Commands are run in order of
// their due time. Safe to call from any goroutine.
func (s *Scheduler) At(due time.Time, cmd func()) {
	s.rtCrit.Lock()
	defer s.rtCrit.Unlock()

	// commands with the same due time are run in the order they were added
	i, _ := slices.BinarySearchFunc(s.commands, due, func(c command, t time.Time) int {
		if c.due.After(t) {
			return 1
		}
		return -1
	})
	s.commands = slices.Insert(s.commands, i, command{due: due, cmd: cmd})
}

// RunDue runs every command in the real-time command list that is due and
// removes it from the list. Returns the number of commands run.
func (s *Scheduler) RunDue() int {
	now := s.clk.Now()

	s.rtCrit.Lock()
	i := slices.IndexFunc(s.commands, func(c command) bool {
		return c.due.After(now)
	})
	if i == -1 {
		i = len(s.commands)
	}
	due := slices.Clone(s.commands[:i])
	s.commands = slices.Delete(s.commands, 0, i)
	s.rtCrit.Unlock()

	// commands are run outside of the critical section so that they can add
	// further commands
	for _, c := range due {
		c.cmd()
	}

	return len(due)
}

// PollRealTime runs due commands from the real-time command list until the
// context is cancelled.
func (s *Scheduler) PollRealTime(ctx context.Context) error {
	ticker := time.NewTicker(pollPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.RunDue()
		}
	}
}
