// Package sched provides the single-threaded timer primitive that drives the
// game loop. Callbacks never run concurrently: they fire from Advance, on the
// goroutine that owns the queue.
package sched

import (
	"container/heap"
	"time"
)

// Token identifies a pending one-shot callback.
type Token interface {
	// Cancel prevents the callback from running.
	// Returns false if it already ran or was cancelled.
	Cancel() bool
}

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	ScheduleOnce(delay time.Duration, fn func()) Token
}

// Queue is a virtual-clock Scheduler. Time only moves when the owner calls
// Advance, which makes it usable from a UI update loop and from tests alike.
type Queue struct {
	now     time.Duration
	seq     uint64
	timers  timerHeap
	stopped bool
}

// NewQueue creates an empty queue at virtual time zero.
func NewQueue() *Queue {
	return &Queue{}
}

// ScheduleOnce arms fn to run once the clock has advanced by delay.
// Negative delays are treated as zero. A stopped queue accepts nothing.
func (q *Queue) ScheduleOnce(delay time.Duration, fn func()) Token {
	t := &timer{queue: q, fn: fn, index: -1}
	if q.stopped || fn == nil {
		t.done = true
		return t
	}
	if delay < 0 {
		delay = 0
	}
	q.seq++
	t.at = q.now + delay
	t.seq = q.seq
	heap.Push(&q.timers, t)
	return t
}

// Advance moves the clock forward by d and runs every callback that became
// due, in due-time order (ties in scheduling order). Callbacks armed while
// advancing run in the same call if they fall due before the new time.
// Returns the number of callbacks run.
func (q *Queue) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := q.now + d
	fired := 0
	for !q.stopped && len(q.timers) > 0 && q.timers[0].at <= target {
		t := heap.Pop(&q.timers).(*timer)
		t.done = true
		q.now = t.at
		t.fn()
		fired++
	}
	if !q.stopped {
		q.now = target
	}
	return fired
}

// Now returns the current virtual time.
func (q *Queue) Now() time.Duration {
	return q.now
}

// Pending returns the number of armed callbacks.
func (q *Queue) Pending() int {
	return len(q.timers)
}

// Stop cancels every pending callback and rejects new ones.
// Used on teardown so that no deferred callback outlives its owner.
func (q *Queue) Stop() {
	for _, t := range q.timers {
		t.done = true
		t.index = -1
	}
	q.timers = nil
	q.stopped = true
}

type timer struct {
	queue *Queue
	at    time.Duration
	seq   uint64
	fn    func()
	index int
	done  bool
}

func (t *timer) Cancel() bool {
	if t.done || t.index < 0 {
		return false
	}
	heap.Remove(&t.queue.timers, t.index)
	t.done = true
	return true
}

// timerHeap orders timers by due time, then by scheduling order.
type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].at == h[j].at {
		return h[i].seq < h[j].seq
	}
	return h[i].at < h[j].at
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*timer)
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
