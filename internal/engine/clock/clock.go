// Package clock paces the frame loop.
package clock

import "time"

// Clock caps the frame rate by sleeping out the rest of each frame
// interval, measured from the previous tick.
type Clock struct {
	last    time.Time
	now     func() time.Time
	sleep   func(time.Duration)
	unpaced bool
}

// New creates a clock backed by the system time.
func New() *Clock {
	return &Clock{
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// NewUnpaced creates a clock whose ticks never wait. Headless capture uses
// it to render as fast as possible; Sleep still blocks.
func NewUnpaced() *Clock {
	return &Clock{
		now:     time.Now,
		sleep:   time.Sleep,
		unpaced: true,
	}
}

// WaitUntilNextTick blocks until 1/fps has passed since the previous call.
// If the frame already overran, it returns immediately and the next
// interval starts now.
func (c *Clock) WaitUntilNextTick(fps int) {
	now := c.now()
	if c.unpaced || fps <= 0 || c.last.IsZero() {
		c.last = now
		return
	}

	interval := time.Second / time.Duration(fps)
	if remaining := interval - now.Sub(c.last); remaining > 0 {
		c.sleep(remaining)
		c.last = c.last.Add(interval)
		return
	}
	c.last = now
}

// Sleep blocks for d.
func (c *Clock) Sleep(d time.Duration) {
	c.sleep(d)
}
