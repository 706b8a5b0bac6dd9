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
	"container/heap"

	"github.com/jetsetilly/gopher6800/govern"
)

// an entry in the event queue. the sequence number preserves the order in
// which events with the same clock were queued
type queued struct {
	ev  govern.Event
	seq uint64
}

// eventQueue implements heap.Interface. events are ordered by clock and then
// by sequence
type eventQueue []queued

func (q eventQueue) Len() int {
	return len(q)
}

func (q eventQueue) Less(i, j int) bool {
	if q[i].ev.Clock == q[j].ev.Clock {
		return q[i].seq < q[j].seq
	}
	return q[i].ev.Clock < q[j].ev.Clock
}

func (q eventQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *eventQueue) Push(x any) {
	*q = append(*q, x.(queued))
}

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

// events wraps the eventQueue with the bookkeeping required by the scheduler.
// not safe for concurrent use. the scheduler's critical section must be held
type events struct {
	queue eventQueue
	seq   uint64

	// number of pause and resume events in the queue
	pauses  int
	resumes int
}

func (e *events) push(ev govern.Event) {
	switch ev.Type {
	case govern.Pause:
		e.pauses++
	case govern.Resume:
		e.resumes++
	}
	heap.Push(&e.queue, queued{ev: ev, seq: e.seq})
	e.seq++
}

// pop removes the earliest event if it is due. when running an event is due
// if its clock is at or before the end clock. otherwise, only immediate
// events are due
func (e *events) pop(running bool, end uint64) (govern.Event, bool) {
	if len(e.queue) == 0 {
		return govern.Event{}, false
	}

	ev := e.queue[0].ev
	if ev.Clock != govern.Immediate && (!running || ev.Clock > end) {
		return govern.Event{}, false
	}

	heap.Pop(&e.queue)

	switch ev.Type {
	case govern.Pause:
		e.pauses--
	case govern.Resume:
		e.resumes--
	}

	return ev, true
}

func (e *events) len() int {
	return len(e.queue)
}
