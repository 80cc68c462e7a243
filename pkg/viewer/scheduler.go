package viewer

import (
	"time"

	"fyne.io/fyne/v2"
)

// Scheduler runs delayed map callbacks on the fyne event goroutine, where
// the measure tool expects all its events
type Scheduler struct{}

// AfterFunc schedules fn after d
func (Scheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		fyne.Do(fn)
	})
}
