package engine

import "math"

// SimClock is monotonic simulation time in seconds, advanced by tick deltas
// Owned by the simulation thread; not safe for concurrent mutation
type SimClock struct {
	now      float64
	paused   bool
	ticks    uint64
	maxDelta float64
}

// NewSimClock creates a clock at t=0; maxDelta caps a single step (0 = uncapped)
func NewSimClock(maxDelta float64) *SimClock {
	return &SimClock{maxDelta: maxDelta}
}

// Now returns current simulation time
func (c *SimClock) Now() float64 {
	return c.now
}

// Advance moves time forward and returns the delta actually applied
// Paused clocks, negative and NaN deltas apply zero
func (c *SimClock) Advance(dt float64) float64 {
	if c.paused || dt <= 0 || math.IsNaN(dt) {
		return 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		dt = c.maxDelta
	}
	c.now += dt
	c.ticks++
	return dt
}

// Ticks returns the number of non-zero advances
func (c *SimClock) Ticks() uint64 {
	return c.ticks
}

// Pause stops time advancement
func (c *SimClock) Pause() {
	c.paused = true
}

// Resume continues time advancement
func (c *SimClock) Resume() {
	c.paused = false
}

// IsPaused returns current pause state
func (c *SimClock) IsPaused() bool {
	return c.paused
}
