package services

import (
	"sync"
	"time"

	"github.com/custodia-labs/promptvault/internal/core/ports/driven"
)

// Debouncer coalesces bursts of calls into one call after the burst has
// been idle for the delay. It holds a single pending timer; each Trigger
// cancels it and schedules a new one.
//
// The callback runs wherever the clock delivers it. Event-loop surfaces
// use a clock that delivers onto the loop.
type Debouncer struct {
	mu    sync.Mutex
	clock driven.Clock
	delay time.Duration
	timer driven.Timer
	gen   uint64
}

// NewDebouncer creates a debouncer. A non-positive delay makes Trigger run
// the callback immediately.
func NewDebouncer(clock driven.Clock, delay time.Duration) *Debouncer {
	return &Debouncer{clock: clock, delay: delay}
}

// Trigger cancels any pending call and schedules fn after the delay.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	d.stopLocked()
	if d.delay <= 0 {
		d.mu.Unlock()
		fn()
		return
	}
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// A later Trigger or Cancel won the race with this timer.
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
	d.mu.Unlock()
}

// Cancel drops the pending call, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

// Pending reports whether a call is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Delay returns the idle window.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}
