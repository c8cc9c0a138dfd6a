package game

import (
	"sort"
	"sync"
	"time"
)

// Timer is a cancellable one-shot timer.
type Timer interface {
	// Stop cancels the timer. It reports whether the call prevented the timer
	// from firing; stopping a fired or stopped timer is a no-op.
	Stop() bool
}

// Clock schedules one-shot callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock schedules on wall time via time.AfterFunc.
type SystemClock struct{}

// AfterFunc implements Clock.
func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ManualClock is a deterministic Clock: time only moves when Advance is
// called, and due callbacks run synchronously on the caller's goroutine in
// deadline order. It backs the headless verify tool and the tests.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTimer
}

// NewManualClock returns a clock positioned at t=0.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

type manualTimer struct {
	clock    *ManualClock
	deadline time.Duration
	seq      int
	fn       func()
	done     bool
}

// AfterFunc implements Clock.
func (c *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &manualTimer{clock: c, deadline: c.now + d, seq: c.seq, fn: f}
	c.pending = append(c.pending, t)
	return t
}

// Stop implements Timer.
func (t *manualTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	c.remove(t)
	return true
}

func (c *ManualClock) remove(t *manualTimer) {
	for i, p := range c.pending {
		if p == t {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
}

// Now returns the elapsed virtual time.
func (c *ManualClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Pending returns the number of scheduled, not yet fired or stopped timers.
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Advance moves the clock forward by d and fires every timer that became due.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()
	c.AdvanceTo(target)
}

// AdvanceTo moves the clock to the absolute instant t (never backwards).
func (c *ManualClock) AdvanceTo(t time.Duration) {
	for {
		c.mu.Lock()
		if t < c.now {
			c.mu.Unlock()
			return
		}
		sort.SliceStable(c.pending, func(i, j int) bool {
			if c.pending[i].deadline == c.pending[j].deadline {
				return c.pending[i].seq < c.pending[j].seq
			}
			return c.pending[i].deadline < c.pending[j].deadline
		})
		if len(c.pending) == 0 || c.pending[0].deadline > t {
			c.now = t
			c.mu.Unlock()
			return
		}
		next := c.pending[0]
		c.pending = c.pending[1:]
		next.done = true
		c.now = next.deadline
		c.mu.Unlock()

		// 回调在锁外执行，允许回调内重新调度
		next.fn()
	}
}
