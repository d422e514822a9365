package simon

import (
	"container/heap"
	"time"
)

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Clock is a single-threaded event loop over virtual time.
// Timers fire only from Advance, in deadline order; ties fire in the
// order they were scheduled. Clock is not safe for concurrent use.
type Clock struct {
	now    time.Duration
	seq    uint64
	timers timerQueue
}

// NewClock creates a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the elapsed virtual time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Pending returns the number of timers that have not fired yet.
func (c *Clock) Pending() int {
	return len(c.timers)
}

// After schedules fn to run once d has elapsed. Negative delays count as zero.
func (c *Clock) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	c.seq++
	heap.Push(&c.timers, &timer{at: c.now + d, seq: c.seq, fn: fn})
}

// Advance moves virtual time forward by d, firing every timer that comes
// due on the way. Timers scheduled by a firing callback are honored within
// the same call if their deadline falls inside the window.
// Returns the number of timers fired.
func (c *Clock) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := c.now + d
	fired := 0
	for len(c.timers) > 0 && c.timers[0].at <= target {
		t := heap.Pop(&c.timers).(*timer)
		c.now = t.at
		t.fn()
		fired++
	}
	c.now = target
	return fired
}

// NextDeadline returns how long until the earliest pending timer fires.
func (c *Clock) NextDeadline() (time.Duration, bool) {
	if len(c.timers) == 0 {
		return 0, false
	}
	return c.timers[0].at - c.now, true
}

type timer struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// timerQueue is a min-heap ordered by deadline, then scheduling order.
type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *timerQueue) Push(x any) { *q = append(*q, x.(*timer)) }

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}
