package server

import (
	"sync"
	"time"

	"github.com/coder/quartz"
)

// idleWatchdog fires a callback when Touch has not been called for the
// configured timeout. The clock is injected so tests can advance time
// without waiting.
type idleWatchdog struct {
	clock   quartz.Clock
	timeout time.Duration
	onIdle  func()

	mu      sync.Mutex
	timer   *quartz.Timer
	stopped bool
}

// newIdleWatchdog starts a watchdog. A zero or negative timeout disables it.
func newIdleWatchdog(clock quartz.Clock, timeout time.Duration, onIdle func()) *idleWatchdog {
	w := &idleWatchdog{clock: clock, timeout: timeout, onIdle: onIdle}
	if timeout > 0 {
		w.timer = clock.AfterFunc(timeout, w.fire)
	}
	return w
}

// Touch resets the idle countdown
func (w *idleWatchdog) Touch() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped || w.timer == nil {
		return
	}
	w.timer.Reset(w.timeout)
}

// Stop cancels the watchdog
func (w *idleWatchdog) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
}

func (w *idleWatchdog) fire() {
	w.mu.Lock()
	stopped := w.stopped
	w.mu.Unlock()
	if !stopped {
		w.onIdle()
	}
}
