// Package sched is a single-threaded cooperative timer queue.
//
// Time is virtual: nothing fires until the owner calls [Scheduler.Advance].
// The terminal UI advances it from frame ticks; tests advance it by hand,
// which makes the scheduler its own fake clock. A Scheduler is not safe for
// concurrent use.
package sched

import (
	"container/heap"
	"time"
)

type Timer struct {
	s     *Scheduler
	when  time.Duration
	seq   uint64
	fn    func()
	index int
}

// When returns the virtual time the timer fires at.
func (t *Timer) When() time.Duration { return t.when }

// Pending reports whether the timer is still queued.
func (t *Timer) Pending() bool { return t.index >= 0 }

// Stop dequeues the timer. It returns false if the timer already fired or
// was stopped.
func (t *Timer) Stop() bool {
	if t.index < 0 {
		return false
	}
	heap.Remove(&t.s.queue, t.index)
	return true
}

type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue timerHeap
}

func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration { return s.now }

// Len returns the number of queued timers.
func (s *Scheduler) Len() int { return len(s.queue) }

// AfterFunc queues fn to run d after the current virtual time. Negative
// delays are treated as zero.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{s: s, when: s.now + d, seq: s.seq, fn: fn}
	heap.Push(&s.queue, t)
	return t
}

// Next returns the deadline of the earliest queued timer.
func (s *Scheduler) Next() (time.Duration, bool) {
	if len(s.queue) == 0 {
		return 0, false
	}
	return s.queue[0].when, true
}

// Advance moves virtual time forward by d, running every timer that comes
// due in deadline order. Timers scheduled by callbacks run in the same call
// if they fall inside the window. It returns the number of callbacks run.
func (s *Scheduler) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	return s.AdvanceTo(s.now + d)
}

// AdvanceTo is Advance with an absolute target. Targets in the past only
// run already-due timers.
func (s *Scheduler) AdvanceTo(target time.Duration) int {
	fired := 0
	for len(s.queue) > 0 && s.queue[0].when <= target {
		t := heap.Pop(&s.queue).(*Timer)
		if t.when > s.now {
			s.now = t.when
		}
		t.fn()
		fired++
	}
	if target > s.now {
		s.now = target
	}
	return fired
}

type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].when != h[j].when {
		return h[i].when < h[j].when
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
