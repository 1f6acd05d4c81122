package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/messages"
)

func TestLoopClock_DeliversCallbackAsMessage(t *testing.T) {
	defer goleak.VerifyNone(t)
	c := newLoopClock()
	defer c.stop()

	ran := false
	c.AfterFunc(time.Millisecond, func() { ran = true })

	msg := c.listen()()
	fired, ok := msg.(messages.TimerFired)
	require.True(t, ok)
	assert.False(t, ran, "callback must not run on the timer goroutine")

	fired.Fn()
	assert.True(t, ran)
}

func TestLoopClock_StoppedTimerNeverDelivers(t *testing.T) {
	c := newLoopClock()
	defer c.stop()

	timer := c.AfterFunc(time.Hour, func() {})

	assert.True(t, timer.Stop())
	assert.Empty(t, c.fired)
}

func TestLoopClock_StopReleasesListener(t *testing.T) {
	defer goleak.VerifyNone(t)
	c := newLoopClock()

	done := make(chan any)
	go func() { done <- c.listen()() }()
	c.stop()

	select {
	case msg := <-done:
		assert.Nil(t, msg)
	case <-time.After(time.Second):
		t.Fatal("listener not released")
	}
}

func TestLoopClock_Now(t *testing.T) {
	c := newLoopClock()

	assert.WithinDuration(t, time.Now(), c.Now(), time.Second)
}
