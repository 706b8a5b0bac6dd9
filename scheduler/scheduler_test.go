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

package scheduler_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/gopher6800/assert"
	"github.com/jetsetilly/gopher6800/govern"
	"github.com/jetsetilly/gopher6800/hardware/keyboard"
	"github.com/jetsetilly/gopher6800/hardware/preferences"
	"github.com/jetsetilly/gopher6800/hardware/state"
	"github.com/jetsetilly/gopher6800/scheduler"
	"github.com/jetsetilly/gopher6800/test"
)

// fakeClock only moves forward when the scheduler sleeps or when the test
// moves it forward
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.now = c.now.Add(d)
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

type dispatched struct {
	key     keyboard.Code
	pressed bool
	clock   uint64
}

// machine executes clocks in multiples of chunk so that every request
// overruns
type machine struct {
	clock  uint64
	chunk  int
	resets int
	keys   []dispatched

	// the machine panics with this value once the clock reaches panicAt
	panicAt  uint64
	panicVal any

	// executes fewer clocks than requested
	short bool
}

func (m *machine) Execute(clocks int) int {
	n := ((clocks + m.chunk - 1) / m.chunk) * m.chunk
	if m.short {
		n = clocks - 1
	}
	m.clock += uint64(n)
	if m.panicVal != nil && m.clock >= m.panicAt {
		panic(m.panicVal)
	}
	return n - clocks
}

func (m *machine) Reset() {
	m.resets++
}

func (m *machine) KeyPressed(code keyboard.Code) error {
	m.keys = append(m.keys, dispatched{key: code, pressed: true, clock: m.clock})
	return nil
}

func (m *machine) KeyReleased(code keyboard.Code) error {
	m.keys = append(m.keys, dispatched{key: code, pressed: false, clock: m.clock})
	return nil
}

func (m *machine) SaveState(sink state.Sink) {
	state.NewSaver(sink, "Machine").Uint64("clock", m.clock)
}

func (m *machine) LoadState(src state.Source) error {
	l := state.NewLoader(src, "Machine")
	clock := l.Uint64("clock")
	if err := l.Err(); err != nil {
		return err
	}
	m.clock = clock
	return nil
}

func newScheduler(t *testing.T, refresh func()) (*scheduler.Scheduler, *machine, *fakeClock) {
	t.Helper()

	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	m := &machine{chunk: 7}
	s := scheduler.NewScheduler(m, p, refresh)

	clk := &fakeClock{now: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)}
	s.SetClock(clk)

	return s, m, clk
}

func TestRunWithoutPowerOn(t *testing.T) {
	var refreshes int
	s, m, _ := newScheduler(t, func() { refreshes++ })

	test.ExpectEquality(t, s.RunningStatus(), govern.Stopped)
	test.ExpectSuccess(t, s.Run(context.Background()))
	test.ExpectEquality(t, s.RunningStatus(), govern.Stopped)
	test.ExpectEquality(t, refreshes, 1)
	test.ExpectEquality(t, m.clock, uint64(0))
}

func TestPacing(t *testing.T) {
	const quanta = 1000

	var clk *fakeClock
	var refreshes int

	s, m, clk := newScheduler(t, func() {
		// the emulation and refresh take some time in every quantum
		refreshes++
		clk.now = clk.now.Add(5 * time.Millisecond)
	})
	start := clk.Now()

	test.DemandEquality(t, s.ClocksPerQuantum(), 20000)
	test.DemandEquality(t, s.Period(), 20*time.Millisecond)

	s.PowerOn()
	s.Schedule(govern.Event{Type: govern.PowerOff, Clock: uint64(quanta*s.ClocksPerQuantum()) + 1})

	test.DemandSuccess(t, s.Run(context.Background()))
	test.ExpectEquality(t, s.RunningStatus(), govern.Stopped)
	test.ExpectEquality(t, m.resets, 1)
	test.ExpectEquality(t, s.Quanta(), uint64(quanta))
	test.ExpectEquality(t, refreshes, quanta+1)
	test.ExpectEquality(t, s.Clock(), m.clock)

	emulated := time.Duration(float64(m.clock) / 1000000.0 * float64(time.Second))
	elapsed := clk.Now().Sub(start)

	drift := elapsed - emulated
	if drift < 0 {
		drift = -drift
	}
	if drift >= s.Period() {
		t.Errorf("drift of %v after %d quanta", drift, quanta)
	}
}

func TestPauseResume(t *testing.T) {
	var s *scheduler.Scheduler
	var refreshes int
	var saveWhilePaused, saveWhileRunning error

	s, m, _ := newScheduler(t, func() {
		refreshes++
		switch refreshes {
		case 5:
			saveWhilePaused = s.SaveState(state.NewSnapshot())
		case 10:
			s.Resume()
		case 12:
			saveWhileRunning = s.SaveState(state.NewSnapshot())
		case 15:
			s.PowerOff()
		}
	})

	s.PowerOn()
	s.Schedule(govern.Event{Type: govern.Pause, Clock: 50000})

	test.DemandSuccess(t, s.Run(context.Background()))

	test.ExpectSuccess(t, saveWhilePaused)
	test.ExpectError(t, saveWhileRunning, scheduler.NotPaused)

	// two full quanta, one partial quantum up to the pause and then five
	// quanta after the resume
	test.ExpectSuccess(t, m.clock >= 150000 && m.clock < 150007)
	test.ExpectEquality(t, s.Quanta(), uint64(7))
}

func TestPauseDeduplication(t *testing.T) {
	s, _, _ := newScheduler(t, nil)

	s.Pause()
	s.Pause()
	test.ExpectEquality(t, s.Pending(), 1)

	s.Resume()
	s.Pause()
	test.ExpectEquality(t, s.Pending(), 2)
}

func TestConcurrentPause(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	const producers = 8

	for range 2000 {
		s := scheduler.NewScheduler(&machine{chunk: 7}, p, nil)

		var wg sync.WaitGroup
		start := make(chan struct{})
		for range producers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				s.Pause()
			}()
		}
		close(start)
		wg.Wait()

		test.DemandEquality(t, s.Pending(), 1)
	}
}

func TestEventOrder(t *testing.T) {
	s, m, _ := newScheduler(t, nil)

	a := keyboard.NewCode(0, 1)
	b := keyboard.NewCode(2, 3)

	s.PowerOn()
	s.Schedule(govern.Event{Type: govern.KeyPressed, Key: a, Clock: 100})
	s.Schedule(govern.Event{Type: govern.KeyReleased, Key: a, Clock: 100})
	s.Schedule(govern.Event{Type: govern.KeyPressed, Key: b, Clock: 50})
	s.Schedule(govern.Event{Type: govern.PowerOff, Clock: 200})

	test.DemandSuccess(t, s.Run(context.Background()))
	test.DemandEquality(t, len(m.keys), 3)

	test.ExpectEquality(t, m.keys[0].key, b)
	test.ExpectEquality(t, m.keys[1].key, a)
	test.ExpectEquality(t, m.keys[1].pressed, true)
	test.ExpectEquality(t, m.keys[2].key, a)
	test.ExpectEquality(t, m.keys[2].pressed, false)

	// the machine has been advanced to the event's clock before dispatch
	test.ExpectSuccess(t, m.keys[0].clock >= 50)
	test.ExpectSuccess(t, m.keys[1].clock >= 100)
	test.ExpectSuccess(t, m.clock >= 200 && m.clock < 207)
}

func TestInvariantViolation(t *testing.T) {
	s, m, _ := newScheduler(t, nil)

	m.panicAt = 30000
	m.panicVal = func() (r any) {
		defer func() { r = recover() }()
		assert.Failf("test violation")
		return nil
	}()

	s.PowerOn()
	err := s.Run(context.Background())
	test.ExpectError(t, err, assert.InvariantViolation)
	test.ExpectEquality(t, s.RunningStatus(), govern.Stopped)

	// the machine is available after the violation
	test.ExpectSuccess(t, s.SaveState(state.NewSnapshot()))
}

func TestNegativeOverrun(t *testing.T) {
	s, m, _ := newScheduler(t, nil)
	m.short = true

	s.PowerOn()
	err := s.Run(context.Background())
	test.ExpectError(t, err, assert.InvariantViolation)
	test.ExpectEquality(t, s.RunningStatus(), govern.Stopped)
	test.ExpectEquality(t, s.Quanta(), uint64(0))
}

func TestOtherPanic(t *testing.T) {
	s, m, _ := newScheduler(t, nil)

	boom := errors.New("boom")
	m.panicAt = 1
	m.panicVal = boom

	defer func() {
		r := recover()
		test.ExpectEquality(t, r, any(boom))
	}()

	s.PowerOn()
	_ = s.Run(context.Background())
	t.Errorf("panic was not propagated")
}

func TestContextCancel(t *testing.T) {
	s, _, _ := newScheduler(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.PowerOn()
	test.ExpectSuccess(t, s.Run(ctx))
	test.ExpectEquality(t, s.RunningStatus(), govern.Stopped)
}

func TestRealTimeCommands(t *testing.T) {
	s, _, clk := newScheduler(t, nil)
	start := clk.Now()

	var order []int
	s.At(start.Add(3*time.Millisecond), func() { order = append(order, 3) })
	s.At(start.Add(1*time.Millisecond), func() { order = append(order, 1) })
	s.At(start.Add(2*time.Millisecond), func() { order = append(order, 2) })
	s.At(start.Add(2*time.Millisecond), func() { order = append(order, 22) })

	test.ExpectEquality(t, s.RunDue(), 0)

	clk.now = start.Add(2 * time.Millisecond)
	test.ExpectEquality(t, s.RunDue(), 3)
	test.ExpectEquality(t, s.RunDue(), 0)

	clk.now = start.Add(time.Second)
	test.ExpectEquality(t, s.RunDue(), 1)

	test.DemandEquality(t, len(order), 4)
	test.ExpectEquality(t, order[0], 1)
	test.ExpectEquality(t, order[1], 2)
	test.ExpectEquality(t, order[2], 22)
	test.ExpectEquality(t, order[3], 3)
}

func TestPollRealTime(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	s := scheduler.NewScheduler(&machine{chunk: 1}, p, nil)

	done := make(chan struct{})
	s.At(time.Now(), func() { close(done) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go s.PollRealTime(ctx)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Errorf("real-time command was not run")
	}
}

func TestWallTime(t *testing.T) {
	s, _, clk := newScheduler(t, nil)
	test.ExpectEquality(t, s.WallTime(1000000), clk.Now().Add(time.Second))
	test.ExpectEquality(t, s.WallTime(500), clk.Now().Add(500*time.Microsecond))
}

func TestState(t *testing.T) {
	s, m, _ := newScheduler(t, nil)

	s.PowerOn()
	s.Schedule(govern.Event{Type: govern.PowerOff, Clock: 30000})
	test.DemandSuccess(t, s.Run(context.Background()))

	snapshot := state.NewSnapshot()
	test.DemandSuccess(t, s.SaveState(snapshot))

	restored, rm, _ := newScheduler(t, nil)
	test.DemandSuccess(t, restored.LoadState(snapshot))
	test.ExpectEquality(t, restored.Clock(), s.Clock())
	test.ExpectEquality(t, rm.clock, m.clock)

	// a missing field leaves the scheduler unchanged
	test.ExpectFailure(t, restored.LoadState(state.NewSnapshot()))
	test.ExpectEquality(t, restored.Clock(), s.Clock())
}
