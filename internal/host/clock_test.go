package host

import (
	"testing"
	"time"
)

func TestManualClockRunsDueCallbacksInOrder(t *testing.T) {
	var c ManualClock
	var order []string

	c.AfterFunc(200*time.Millisecond, func() { order = append(order, "b") })
	c.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	c.AfterFunc(200*time.Millisecond, func() { order = append(order, "c") })

	c.Advance(150 * time.Millisecond)
	if len(order) != 1 || order[0] != "a" {
		t.Fatalf("Expected [a], got %v", order)
	}

	c.Advance(50 * time.Millisecond)
	if len(order) != 3 || order[1] != "b" || order[2] != "c" {
		t.Errorf("Expected [a b c], got %v", order)
	}
	if c.Pending() != 0 {
		t.Errorf("Expected no pending callbacks, got %d", c.Pending())
	}
}

func TestManualClockCallbackSchedulesAnother(t *testing.T) {
	var c ManualClock
	fired := 0

	c.AfterFunc(10*time.Millisecond, func() {
		fired++
		c.AfterFunc(10*time.Millisecond, func() { fired++ })
	})

	c.Advance(15 * time.Millisecond)
	if fired != 1 {
		t.Errorf("Expected 1 callback, got %d", fired)
	}
	c.Advance(5 * time.Millisecond)
	if fired != 2 {
		t.Errorf("Expected 2 callbacks, got %d", fired)
	}
}
