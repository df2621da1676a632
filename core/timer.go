package core

import "time"

// Timer is a countdown driven by explicit elapsed-time ticks
// It never reads the clock itself, so callers control time in tests
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
}

// NewTimer creates a timer that finishes once duration has been ticked
func NewTimer(duration time.Duration) Timer {
	return Timer{duration: duration}
}

// Tick accumulates elapsed time, saturating at the duration
func (t *Timer) Tick(delta time.Duration) {
	if delta <= 0 {
		return
	}
	t.elapsed += delta
	if t.elapsed > t.duration {
		t.elapsed = t.duration
	}
}

// Finished reports whether the accumulated time reached the duration
func (t *Timer) Finished() bool {
	return t.elapsed >= t.duration
}

// Reset zeroes the accumulated time, discarding any overflow
func (t *Timer) Reset() {
	t.elapsed = 0
}

// ResetWith installs a new duration and zeroes the accumulated time
func (t *Timer) ResetWith(duration time.Duration) {
	t.duration = duration
	t.elapsed = 0
}

// SetDuration changes the duration without touching accumulated time
func (t *Timer) SetDuration(duration time.Duration) {
	t.duration = duration
	if t.elapsed > t.duration {
		t.elapsed = t.duration
	}
}

// Duration returns the configured duration
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Elapsed returns the accumulated time
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining returns the time left before the timer finishes
func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

// Fraction returns Remaining/Duration in [0, 1], 0 for a zero-length timer
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 0
	}
	return float64(t.Remaining()) / float64(t.duration)
}
