package engine

import "time"

// SystemClock reports the real current date.
type SystemClock struct{}

// Today returns the current local date truncated to midnight.
func (SystemClock) Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// FixedClock reports a pinned reference date, for reproducible sessions and
// tests.
type FixedClock struct {
	Date time.Time
}

// Today returns the pinned date.
func (c FixedClock) Today() time.Time {
	return c.Date
}
