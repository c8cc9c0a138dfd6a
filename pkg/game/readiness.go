package game

import (
	"errors"
	"sync"
	"time"
)

// ErrReadinessCancelled is reported by a future that was cancelled before it
// resolved.
var ErrReadinessCancelled = errors.New("readiness cancelled")

// Readiness is a single-shot completion signal: Done is closed exactly once,
// after which Err reports the outcome. Cancel releases whatever resource
// backs the signal (timer, loader goroutines) and is idempotent.
type Readiness interface {
	Done() <-chan struct{}
	Err() error
	Cancel()
}

// Future is the basic Readiness implementation. Resolve and Cancel race
// safely; only the first one wins.
type Future struct {
	once     sync.Once
	done     chan struct{}
	err      error
	onCancel func()
	mu       sync.Mutex
}

// NewFuture returns an unresolved future. onCancel (optional) runs once when
// the future is cancelled before resolving.
func NewFuture(onCancel func()) *Future {
	return &Future{done: make(chan struct{}), onCancel: onCancel}
}

// Resolve completes the future with err (nil for success). It reports whether
// this call completed it.
func (f *Future) Resolve(err error) bool {
	resolved := false
	f.once.Do(func() {
		f.mu.Lock()
		f.err = err
		f.mu.Unlock()
		close(f.done)
		resolved = true
	})
	return resolved
}

// Done implements Readiness.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Err implements Readiness. It is nil until Done is closed.
func (f *Future) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Cancel implements Readiness.
func (f *Future) Cancel() {
	if f.Resolve(ErrReadinessCancelled) && f.onCancel != nil {
		f.onCancel()
	}
}

// Resolved reports whether Done has been closed.
func (f *Future) Resolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// AfterDelay returns a future that resolves successfully once d has elapsed
// on clock. Cancelling it stops the underlying timer.
func AfterDelay(clock Clock, d time.Duration) Readiness {
	var (
		mu    sync.Mutex
		timer Timer
	)
	f := NewFuture(func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
	})
	mu.Lock()
	timer = clock.AfterFunc(d, func() { f.Resolve(nil) })
	mu.Unlock()
	return f
}
