// Package view holds the small amount of presentational state machinery the
// core offers a host view layer: simulated loading delays.
package view

import "time"

// Loading simulates the fetch latency behind a view's loading indicator. It
// is scoped to the owning view: Stop must be called on view teardown, and
// Restart when the view's inputs change.
type Loading struct {
	timer *time.Timer
}

// StartLoading arms a one-shot timer that calls done after d. done runs on
// its own goroutine, like any timer callback.
func StartLoading(d time.Duration, done func()) *Loading {
	return &Loading{timer: time.AfterFunc(d, done)}
}

// Stop cancels the pending callback. It reports whether the call prevented
// done from firing.
func (l *Loading) Stop() bool {
	return l.timer.Stop()
}

// Restart re-arms the timer for another full delay.
func (l *Loading) Restart(d time.Duration) {
	l.timer.Reset(d)
}
