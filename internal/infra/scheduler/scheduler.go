package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Heartbeat tells the poll loop when a periodic "still watching" message is due.
// It is evaluated synchronously by the loop; no cron goroutine is started.
// A nil *Heartbeat is disabled.
type Heartbeat struct {
	schedule cron.Schedule
	next     time.Time
}

// NewHeartbeat parses a standard cron spec (descriptors such as "@every 6h" included).
// An empty spec returns a nil, disabled Heartbeat.
func NewHeartbeat(spec string, now time.Time) (*Heartbeat, error) {
	if spec == "" {
		return nil, nil
	}
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid heartbeat cron spec %q: %w", spec, err)
	}
	return &Heartbeat{schedule: schedule, next: schedule.Next(now)}, nil
}

// Due reports whether the next activation has been reached and, if so,
// moves the schedule past now.
func (h *Heartbeat) Due(now time.Time) bool {
	if h == nil || now.Before(h.next) {
		return false
	}
	h.next = h.schedule.Next(now)
	return true
}

// Next returns the upcoming activation time. Zero for a disabled Heartbeat.
func (h *Heartbeat) Next() time.Time {
	if h == nil {
		return time.Time{}
	}
	return h.next
}
