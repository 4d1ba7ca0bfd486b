// Package sched provides cancelable scheduled tasks on a virtual clock.
// Time only moves when the owner calls Advance, so every callback runs on
// the caller's goroutine and tests can replay exact timings.
package sched

import (
	"container/heap"
	"time"

	"github.com/kamstrup/intmap"
)

// Handle identifies a scheduled task. The zero Handle never refers to a task,
// so it can be used as "no timer" by owners.
type Handle uint64

// Scheduler is the part of Clock that game logic depends on.
type Scheduler interface {
	// After runs fn once, d after now.
	After(d time.Duration, fn func()) Handle

	// Every runs fn every d, the first run d after now.
	Every(d time.Duration, fn func()) Handle

	// Cancel stops a task. Cancelling an unknown or finished task is a no-op.
	Cancel(h Handle)
}

// minPeriod guards Every against a zero period spinning Advance forever.
const minPeriod = time.Millisecond

type task struct {
	handle Handle
	due    time.Duration
	period time.Duration // 0 for one-shot tasks
	fn     func()
}

// Clock is a virtual-time scheduler.
// It is not safe for concurrent use.
type Clock struct {
	now   time.Duration
	seq   Handle
	tasks *intmap.Map[Handle, *task]
	queue taskQueue
}

// NewClock creates a clock at time zero with no pending tasks.
func NewClock() *Clock {
	return &Clock{
		tasks: intmap.New[Handle, *task](8),
	}
}

// Now returns the virtual time elapsed since the clock was created.
func (c *Clock) Now() time.Duration {
	return c.now
}

// After schedules fn to run once after d.
func (c *Clock) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	return c.schedule(d, 0, fn)
}

// Every schedules fn to run every d until cancelled.
func (c *Clock) Every(d time.Duration, fn func()) Handle {
	if d < minPeriod {
		d = minPeriod
	}
	return c.schedule(d, d, fn)
}

func (c *Clock) schedule(delay, period time.Duration, fn func()) Handle {
	c.seq++
	t := &task{
		handle: c.seq,
		due:    c.now + delay,
		period: period,
		fn:     fn,
	}
	c.tasks.Put(t.handle, t)
	heap.Push(&c.queue, entry{due: t.due, handle: t.handle})
	return t.handle
}

// Cancel removes a pending task. Queue entries of cancelled tasks are
// discarded lazily when they reach the front.
func (c *Clock) Cancel(h Handle) {
	if h == 0 {
		return
	}
	c.tasks.Del(h)
}

// Active reports whether h refers to a pending task.
func (c *Clock) Active(h Handle) bool {
	return h != 0 && c.tasks.Has(h)
}

// Remaining returns the time until h next fires.
func (c *Clock) Remaining(h Handle) (time.Duration, bool) {
	t, ok := c.tasks.Get(h)
	if !ok {
		return 0, false
	}
	return t.due - c.now, true
}

// Pending returns the number of live tasks.
func (c *Clock) Pending() int {
	return c.tasks.Len()
}

// Advance moves the clock forward by d, firing every task that falls due,
// in due order. Tasks due at the same instant fire in scheduling order.
// Tasks scheduled by callbacks fire within the same call if they fall due
// before the new time.
func (c *Clock) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := c.now + d

	for c.queue.Len() > 0 {
		next := c.queue[0]
		if next.due > target {
			break
		}
		heap.Pop(&c.queue)

		t, ok := c.tasks.Get(next.handle)
		if !ok || t.due != next.due {
			continue
		}

		c.now = t.due
		if t.period == 0 {
			c.tasks.Del(t.handle)
			t.fn()
			continue
		}

		t.fn()

		// The callback may have cancelled its own task.
		if c.tasks.Has(t.handle) {
			t.due += t.period
			heap.Push(&c.queue, entry{due: t.due, handle: t.handle})
		}
	}

	c.now = target
}

// entry is a queue slot. Periodic tasks push a fresh entry per run.
type entry struct {
	due    time.Duration
	handle Handle
}

// taskQueue is a min-heap ordered by due time, then by handle, which
// increases with scheduling order.
type taskQueue []entry

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].handle < q[j].handle
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) {
	*q = append(*q, x.(entry))
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}
