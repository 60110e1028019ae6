package server

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
)

func TestIdleWatchdogFires(t *testing.T) {
	ctx := context.Background()
	mockClock := quartz.NewMock(t)

	var fired atomic.Bool
	w := newIdleWatchdog(mockClock, 5*time.Second, func() { fired.Store(true) })
	defer w.Stop()

	mockClock.Advance(5 * time.Second).MustWait(ctx)
	assert.True(t, fired.Load())
}

func TestIdleWatchdogTouchResets(t *testing.T) {
	ctx := context.Background()
	mockClock := quartz.NewMock(t)

	var fired atomic.Bool
	w := newIdleWatchdog(mockClock, 5*time.Second, func() { fired.Store(true) })
	defer w.Stop()

	mockClock.Advance(3 * time.Second).MustWait(ctx)
	w.Touch()
	mockClock.Advance(3 * time.Second).MustWait(ctx)
	assert.False(t, fired.Load(), "watchdog fired despite activity")

	mockClock.Advance(2 * time.Second).MustWait(ctx)
	assert.True(t, fired.Load(), "watchdog did not fire after idle period")
}

func TestIdleWatchdogStop(t *testing.T) {
	ctx := context.Background()
	mockClock := quartz.NewMock(t)

	var fired atomic.Bool
	w := newIdleWatchdog(mockClock, 5*time.Second, func() { fired.Store(true) })

	w.Stop()
	mockClock.Advance(10 * time.Second).MustWait(ctx)
	assert.False(t, fired.Load())
}

func TestIdleWatchdogDisabled(t *testing.T) {
	mockClock := quartz.NewMock(t)

	w := newIdleWatchdog(mockClock, 0, func() { t.Error("disabled watchdog fired") })
	defer w.Stop()

	// No timer scheduled; Touch must not panic.
	w.Touch()
}
