package engine

import "time"

// Clock supplies monotonic timestamps in nanoseconds.
type Clock interface {
	Now() int64
}

// SystemClock reads the process monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock whose zero is the moment of creation.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns nanoseconds since the clock was created. time.Since uses
// the monotonic reading, so wall-clock jumps do not affect it.
func (c *SystemClock) Now() int64 {
	return int64(time.Since(c.start))
}

// ManualClock only moves when told to. Headless runs and tests use it to
// produce exact time steps.
type ManualClock struct {
	now int64
}

// Now returns the current manual time.
func (c *ManualClock) Now() int64 {
	return c.now
}

// Advance moves the clock forward by d. Negative durations are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += int64(d)
	}
}
