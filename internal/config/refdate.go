package config

import (
	"fmt"
	"time"
)

// ParseReferenceDate parses a pinned reference date in YYYY-MM-DD format.
// An empty string means no pin; the caller falls back to the real clock.
func ParseReferenceDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reference date %q: expected YYYY-MM-DD (e.g., 2021-06-15)", s)
	}

	return parsed, nil
}
