package driven

import "time"

// Clock provides the current time and deferred callbacks.
// Callbacks scheduled with AfterFunc must run on the goroutine that owns
// the state they touch; adapters for event-loop surfaces marshal them
// back onto the loop.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc calls f once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending callback.
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback already ran or was stopped.
	Stop() bool
}
