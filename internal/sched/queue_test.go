package sched

import (
	"testing"
	"time"
)

func TestQueueRunsOnlyDueCallbacks(t *testing.T) {
	q := NewQueue()
	var fired []string

	q.ScheduleOnce(17*time.Millisecond, func() { fired = append(fired, "tick") })
	q.ScheduleOnce(2*time.Second, func() { fired = append(fired, "end") })

	if n := q.Advance(16 * time.Millisecond); n != 0 {
		t.Fatalf("Advance(16ms) ran %d callbacks, expected 0", n)
	}
	if n := q.Advance(time.Millisecond); n != 1 {
		t.Fatalf("Advance(1ms) ran %d callbacks, expected 1", n)
	}
	if len(fired) != 1 || fired[0] != "tick" {
		t.Fatalf("fired = %v, expected [tick]", fired)
	}
	if q.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", q.Pending())
	}

	q.Advance(2 * time.Second)
	if len(fired) != 2 || fired[1] != "end" {
		t.Errorf("fired = %v, expected [tick end]", fired)
	}
}

func TestQueueOrdersTiesBySchedulingOrder(t *testing.T) {
	q := NewQueue()
	var order []int

	for i := range 5 {
		q.ScheduleOnce(10*time.Millisecond, func() { order = append(order, i) })
	}
	q.Advance(10 * time.Millisecond)

	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v, expected ascending", order)
		}
	}
}

func TestQueueRearmFromCallback(t *testing.T) {
	q := NewQueue()
	ticks := 0

	var tick func()
	tick = func() {
		ticks++
		q.ScheduleOnce(17*time.Millisecond, tick)
	}
	q.ScheduleOnce(17*time.Millisecond, tick)

	// One second of virtual time holds 58 full 17ms periods.
	q.Advance(time.Second)
	if ticks != 58 {
		t.Errorf("ticks = %d, expected 58", ticks)
	}
	if q.Now() != time.Second {
		t.Errorf("Now() = %v, expected 1s", q.Now())
	}
}

func TestQueueCancel(t *testing.T) {
	q := NewQueue()
	ran := false

	tok := q.ScheduleOnce(5*time.Millisecond, func() { ran = true })
	if !tok.Cancel() {
		t.Fatal("first Cancel() should succeed")
	}
	if tok.Cancel() {
		t.Error("second Cancel() should report false")
	}

	q.Advance(time.Second)
	if ran {
		t.Error("cancelled callback ran")
	}

	done := q.ScheduleOnce(0, func() {})
	q.Advance(0)
	if done.Cancel() {
		t.Error("Cancel() after firing should report false")
	}
}

func TestQueueStop(t *testing.T) {
	q := NewQueue()
	ran := 0

	q.ScheduleOnce(time.Millisecond, func() { ran++ })
	q.Stop()
	q.ScheduleOnce(time.Millisecond, func() { ran++ })
	q.Advance(time.Second)

	if ran != 0 {
		t.Errorf("stopped queue ran %d callbacks", ran)
	}
	if q.Pending() != 0 {
		t.Errorf("Pending() = %d after Stop, expected 0", q.Pending())
	}
}

func TestQueueStopFromCallback(t *testing.T) {
	q := NewQueue()
	ran := 0

	q.ScheduleOnce(time.Millisecond, func() {
		ran++
		q.Stop()
	})
	q.ScheduleOnce(2*time.Millisecond, func() { ran++ })
	q.Advance(time.Second)

	if ran != 1 {
		t.Errorf("ran = %d, expected only the stopping callback", ran)
	}
}
