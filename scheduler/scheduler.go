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
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopher6800/assert"
	"github.com/jetsetilly/gopher6800/govern"
	"github.com/jetsetilly/gopher6800/hardware/keyboard"
	"github.com/jetsetilly/gopher6800/hardware/preferences"
	"github.com/jetsetilly/gopher6800/hardware/state"
	"github.com/jetsetilly/gopher6800/logger"
)

// Machine is the emulation being driven by the scheduler. The Computer type
// in the hardware package implements this interface.
type Machine interface {
	// Execute runs the machine for at least the number of clocks and returns
	// the number of clocks executed beyond that
	Execute(clocks int) (overrun int)
	Reset()
	KeyPressed(code keyboard.Code) error
	KeyReleased(code keyboard.Code) error
	SaveState(sink state.Sink)
	LoadState(src state.Source) error
}

// if the scheduler falls further behind real time than this then the
// deadline is moved forward rather than trying to catch up
const maxLag = time.Second

// Scheduler runs a Machine in step with wall-clock time.
type Scheduler struct {
	machine Machine
	refresh func()
	clk     Clock

	clockHz          float64
	clocksPerQuantum int
	period           time.Duration

	// the running state. written only by the scheduler goroutine
	state atomic.Int32

	// critical section for the event queue
	crit   sync.Mutex
	events events

	// signals the sleeping scheduler that an event has been queued
	wake chan struct{}

	// critical section for the real-time command list
	rtCrit   sync.Mutex
	commands []command

	// critical section for the machine. held by the scheduler while the
	// machine is being advanced or while an event is being dispatched
	machineCrit sync.Mutex

	// the number of clocks executed since the scheduler was created
	clock uint64

	// the number of clocks executed beyond the end of the previous quantum
	overrun int

	// the wall-clock deadline of the current quantum
	deadline time.Time

	// the wall-clock time and machine clock at the start of the current
	// quantum. used by WallTime()
	quantumStart time.Time
	quantumClock uint64

	// the number of quanta in which the machine was running
	quanta uint64

	// the goroutine running Run(). the machine is only ever advanced by this
	// goroutine
	runner uint64
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. The refresh function is called once per quantum and can be nil.
func NewScheduler(machine Machine, prefs *preferences.Preferences, refresh func()) *Scheduler {
	if refresh == nil {
		refresh = func() {}
	}

	s := &Scheduler{
		machine:          machine,
		refresh:          refresh,
		clk:              realClock{},
		clockHz:          prefs.ClockHz.Get().(float64),
		clocksPerQuantum: prefs.ClocksPerQuantum(),
		period:           time.Duration(float64(time.Second) / prefs.RefreshRate.Get().(float64)),
		wake:             make(chan struct{}, 1),
	}
	s.state.Store(int32(govern.Stopped))
	s.quantumStart = s.clk.Now()

	return s
}

// SetClock changes the source of wall-clock time. Should not be called while
// the scheduler is running.
func (s *Scheduler) SetClock(clk Clock) {
	s.clk = clk
	s.quantumStart = clk.Now()
}

// RunningStatus returns the current state of the scheduler. Safe to call from
// any goroutine.
func (s *Scheduler) RunningStatus() govern.State {
	return govern.State(s.state.Load())
}

// Clock returns the number of clocks the machine has executed. Should only be
// called by the scheduler goroutine or when the scheduler is not running.
func (s *Scheduler) Clock() uint64 {
	return s.clock
}

// Quanta returns the number of quanta in which the machine was running.
func (s *Scheduler) Quanta() uint64 {
	return s.quanta
}

// ClocksPerQuantum returns the number of clocks in one quantum.
func (s *Scheduler) ClocksPerQuantum() int {
	return s.clocksPerQuantum
}

// Period returns the wall-clock duration of one quantum.
func (s *Scheduler) Period() time.Duration {
	return s.period
}

// WallTime returns the wall-clock time at which the machine clock should be
// heard or seen. Should only be called by the scheduler goroutine, usually
// from a hook called by the machine.
func (s *Scheduler) WallTime(clock uint64) time.Time {
	offset := float64(clock) - float64(s.quantumClock)
	return s.quantumStart.Add(time.Duration(offset * float64(time.Second) / s.clockHz))
}

// Schedule adds an event to the event queue. Safe to call from any
// goroutine.
func (s *Scheduler) Schedule(ev govern.Event) {
	s.crit.Lock()
	s.events.push(ev)
	s.crit.Unlock()
	s.signal()
}

// wake the scheduler if it is sleeping
func (s *Scheduler) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Pending returns the number of events in the event queue.
func (s *Scheduler) Pending() int {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.events.len()
}

// PowerOn queues a Reset event. Run() will return immediately unless PowerOn()
// has been called beforehand.
func (s *Scheduler) PowerOn() {
	s.Schedule(govern.Event{Type: govern.Reset})
}

// PowerOff queues a PowerOff event.
func (s *Scheduler) PowerOff() {
	s.Schedule(govern.Event{Type: govern.PowerOff})
}

// Reset queues a Reset event.
func (s *Scheduler) Reset() {
	s.Schedule(govern.Event{Type: govern.Reset})
}

// Pause queues a Pause event. The request is ignored if a Pause event is
// already queued or if the scheduler is paused and no Resume event is queued.
func (s *Scheduler) Pause() {
	s.crit.Lock()
	if s.events.pauses > 0 || (s.RunningStatus() == govern.Paused && s.events.resumes == 0) {
		s.crit.Unlock()
		return
	}
	s.events.push(govern.Event{Type: govern.Pause})
	s.crit.Unlock()
	s.signal()
}

// Resume queues a Resume event.
func (s *Scheduler) Resume() {
	s.Schedule(govern.Event{Type: govern.Resume})
}

// KeyPressed queues a KeyPressed event.
func (s *Scheduler) KeyPressed(code keyboard.Code) {
	s.Schedule(govern.Event{Type: govern.KeyPressed, Key: code})
}

// KeyReleased queues a KeyReleased event.
func (s *Scheduler) KeyReleased(code keyboard.Code) {
	s.Schedule(govern.Event{Type: govern.KeyReleased, Key: code})
}

// Run the scheduler until the state becomes Stopped or the context is
// cancelled. The machine is only advanced while the state is Running.
//
// If the machine panics with an error wrapping assert.InvariantViolation then
// the state becomes Stopped and the error is returned. Any other panic is not
// recovered.
func (s *Scheduler) Run(ctx context.Context) (rerr error) {
	defer func() {
		if r := recover(); r != nil {
			err := assert.Recovered(r)
			if !errors.Is(err, assert.InvariantViolation) {
				panic(r)
			}
			s.state.Store(int32(govern.Stopped))
			logger.Logf(logger.Allow, "scheduler", "stopped: %v", err)
			rerr = err
		}
	}()

	s.runner = assert.GetGoRoutineID()
	s.deadline = s.clk.Now()

	for {
		s.quantum()
		if s.RunningStatus() == govern.Stopped {
			return nil
		}

		s.deadline = s.deadline.Add(s.period)
		if err := s.sleep(ctx); err != nil {
			s.state.Store(int32(govern.Stopped))
			return nil
		}
		if s.RunningStatus() == govern.Stopped {
			return nil
		}
	}
}

func (s *Scheduler) quantum() {
	s.runQuantum()
	s.refresh()
}

// dispatch due events and advance the machine to the end of the quantum
func (s *Scheduler) runQuantum() {
	s.machineCrit.Lock()
	defer s.machineCrit.Unlock()

	s.quantumStart = s.deadline
	s.quantumClock = s.clock

	end := s.clock + uint64(max(s.clocksPerQuantum-s.overrun, 0))

	for {
		running := s.RunningStatus() == govern.Running

		s.crit.Lock()
		ev, ok := s.events.pop(running, end)
		s.crit.Unlock()
		if !ok {
			break
		}

		if running && ev.Clock > s.clock {
			s.advance(ev.Clock)
		}
		s.dispatch(ev)
	}

	if s.RunningStatus() == govern.Running {
		s.advance(end)
		if s.clock > end {
			s.overrun = int(s.clock - end)
		} else {
			s.overrun = 0
		}
		s.quanta++
	}
}

// advance the machine to the target clock
func (s *Scheduler) advance(target uint64) {
	if target <= s.clock {
		return
	}
	assert.That(assert.GetGoRoutineID() == s.runner, "machine advanced outside of the scheduler goroutine")

	n := int(target - s.clock)
	over := s.machine.Execute(n)
	assert.That(over >= 0, "machine returned a negative overrun (%d)", over)
	s.clock += uint64(n + over)
	s.overrun = over
}

// dispatch the event. the machine critical section must be held
func (s *Scheduler) dispatch(ev govern.Event) {
	switch ev.Type {
	case govern.Reset:
		s.machine.Reset()
	case govern.KeyPressed:
		if err := s.machine.KeyPressed(ev.Key); err != nil {
			logger.Log(logger.Allow, "scheduler", err)
		}
	case govern.KeyReleased:
		if err := s.machine.KeyReleased(ev.Key); err != nil {
			logger.Log(logger.Allow, "scheduler", err)
		}
	}

	prev := s.RunningStatus()
	next := ev.NextState(prev)
	s.state.Store(int32(next))
	if next != prev {
		logger.Logf(logger.Allow, "scheduler", "%s -> %s (%s)", prev, next, ev)
	}
}

// dispatch immediate events without advancing the machine
func (s *Scheduler) dispatchImmediate() {
	s.machineCrit.Lock()
	defer s.machineCrit.Unlock()

	for {
		s.crit.Lock()
		ev, ok := s.events.pop(false, 0)
		s.crit.Unlock()
		if !ok {
			return
		}
		s.dispatch(ev)
	}
}

// sleep until the deadline of the current quantum. the sleep is interrupted
// to dispatch immediate events. returns an error if the context is cancelled
func (s *Scheduler) sleep(ctx context.Context) error {
	for {
		d := s.deadline.Sub(s.clk.Now())

		if d <= 0 {
			if -d > maxLag {
				logger.Logf(logger.Allow, "scheduler", "running %v behind real time. resynchronising", -d)
				s.deadline = s.clk.Now()
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.wake:
			s.dispatchImmediate()
			if s.RunningStatus() == govern.Stopped {
				return nil
			}
		case <-s.clk.After(d):
			return nil
		}
	}
}
