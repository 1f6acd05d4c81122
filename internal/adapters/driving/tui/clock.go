package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/promptvault/internal/core/ports/driven"
)

// loopClock schedules callbacks onto the Bubbletea update loop. Timers fire
// on their own goroutines, so the callback is handed over as a TimerFired
// message instead of being run in place.
type loopClock struct {
	fired chan func()
	done  chan struct{}
	once  sync.Once
}

var _ driven.Clock = (*loopClock)(nil)

func newLoopClock() *loopClock {
	return &loopClock{
		fired: make(chan func(), 8),
		done:  make(chan struct{}),
	}
}

// Now returns the wall clock time.
func (c *loopClock) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f to run on the update loop after d.
func (c *loopClock) AfterFunc(d time.Duration, f func()) driven.Timer {
	return time.AfterFunc(d, func() {
		select {
		case c.fired <- f:
		case <-c.done:
		}
	})
}

// listen waits for the next fired callback.
func (c *loopClock) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case f := <-c.fired:
			return messages.TimerFired{Fn: f}
		case <-c.done:
			return nil
		}
	}
}

// stop releases goroutines blocked on the clock.
func (c *loopClock) stop() {
	c.once.Do(func() { close(c.done) })
}
