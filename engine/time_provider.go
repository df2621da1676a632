package engine

import "time"

// Clock is the time source the simulation loop measures tick deltas with
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// tickDelta returns the time elapsed since last, clamped to [0, limit]
// A stalled process must not fast-forward the swarm into the player row
func tickDelta(now, last time.Time, limit time.Duration) time.Duration {
	delta := now.Sub(last)
	if delta < 0 {
		return 0
	}
	if limit > 0 && delta > limit {
		return limit
	}
	return delta
}
