package host

import (
	"sort"
	"time"
)

// Scheduler runs delayed callbacks
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// ManualClock is a Scheduler that only fires callbacks when advanced, on the
// caller's goroutine
type ManualClock struct {
	now    time.Duration
	seq    int
	timers []*timer
}

type timer struct {
	due time.Duration
	seq int
	fn  func()
}

// AfterFunc schedules fn to run once the clock has advanced by d
func (c *ManualClock) AfterFunc(d time.Duration, fn func()) {
	c.seq++
	c.timers = append(c.timers, &timer{due: c.now + d, seq: c.seq, fn: fn})
}

// Advance moves the clock forward and runs due callbacks in order
func (c *ManualClock) Advance(d time.Duration) {
	target := c.now + d
	for {
		sort.SliceStable(c.timers, func(i, j int) bool {
			if c.timers[i].due == c.timers[j].due {
				return c.timers[i].seq < c.timers[j].seq
			}
			return c.timers[i].due < c.timers[j].due
		})
		if len(c.timers) == 0 || c.timers[0].due > target {
			break
		}
		next := c.timers[0]
		c.timers = c.timers[1:]
		c.now = next.due
		next.fn()
	}
	c.now = target
}

// Pending returns the number of callbacks not yet run
func (c *ManualClock) Pending() int {
	return len(c.timers)
}
