package core

import (
	"sync"
	"time"
)

// Clock is a monotonic time source. Now returns the time elapsed since the
// clock was created, excluding any paused intervals.
type Clock interface {
	Now() time.Duration
}

// WallClock reads the process monotonic clock and can be paused.
type WallClock struct {
	mu       sync.Mutex
	start    time.Time
	pausedAt time.Time
	paused   time.Duration
	isPaused bool
}

// NewWallClock returns a running clock starting at zero.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns elapsed running time.
func (c *WallClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isPaused {
		return c.pausedAt.Sub(c.start) - c.paused
	}
	return time.Since(c.start) - c.paused
}

// Pause freezes the clock until Resume is called.
func (c *WallClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isPaused {
		return
	}
	c.isPaused = true
	c.pausedAt = time.Now()
}

// Resume restarts a paused clock without counting the paused interval.
func (c *WallClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isPaused {
		return
	}
	c.isPaused = false
	c.paused += time.Since(c.pausedAt)
}

// ManualClock only moves when told to. Used by tests and headless runs.
type ManualClock struct {
	now time.Duration
}

// NewManualClock returns a clock reading zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Now returns the current reading.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d. Negative values are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// Set jumps the clock to t if t is not in the past.
func (c *ManualClock) Set(t time.Duration) {
	if t > c.now {
		c.now = t
	}
}
