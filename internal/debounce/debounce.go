// Package debounce delays committing a rapidly changing value until input
// pauses for a quiet interval.
//
// A Debouncer holds at most one pending commit. Each Set cancels the
// pending timer and schedules a new one, so only the latest value is ever
// committed.
package debounce

import (
	"sync"
	"time"
)

// Debouncer commits the most recent value after a quiet interval.
type Debouncer[T any] struct {
	mu       sync.Mutex
	interval time.Duration
	commit   func(T)
	timer    *time.Timer
	pending  T
	armed    bool
}

// New creates a debouncer that calls commit once input has been quiet for
// the given interval. The commit function runs on a timer goroutine.
func New[T any](interval time.Duration, commit func(T)) *Debouncer[T] {
	return &Debouncer[T]{interval: interval, commit: commit}
}

// Set records value and restarts the quiet-period timer. Any previously
// scheduled commit is superseded.
func (d *Debouncer[T]) Set(value T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = value
	d.armed = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fire)
}

func (d *Debouncer[T]) fire() {
	d.mu.Lock()
	if !d.armed {
		d.mu.Unlock()
		return
	}
	value := d.pending
	d.armed = false
	d.mu.Unlock()

	d.commit(value)
}

// Flush commits any pending value immediately.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	if !d.armed {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	value := d.pending
	d.armed = false
	d.mu.Unlock()

	d.commit(value)
}

// Cancel discards any pending value without committing it.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.armed = false
}
