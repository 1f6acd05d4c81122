// Package clock provides driven.Clock implementations.
package clock

import (
	"time"

	"github.com/custodia-labs/promptvault/internal/core/ports/driven"
)

// Ensure System implements the interface.
var _ driven.Clock = System{}

// System is the wall clock. Callbacks run on their own goroutine.
type System struct{}

// Now returns the current time.
func (System) Now() time.Time {
	return time.Now()
}

// AfterFunc calls f in its own goroutine after d.
func (System) AfterFunc(d time.Duration, f func()) driven.Timer {
	return time.AfterFunc(d, f)
}
