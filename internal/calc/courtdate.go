package calc

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cliently/cliently/internal/common"
)

// MaxYear is the exclusive upper bound on court dates; anything at or past
// it is too far from today to schedule.
const MaxYear = 2100

// DaysUntil returns the whole number of days from today to the given
// calendar date. A result of 0 means the date is today. The date is
// validated with a simplified divisible-by-four leap rule: century years
// such as 1700, 1800, and 1900 are treated as leap years even though they
// are not. That inaccuracy is documented behavior, logged as a warning
// rather than corrected.
func DaysUntil(year, month, day int, today time.Time) (int, error) {
	slog.Debug("Calculating court date countdown",
		"year", year, "month", month, "day", day)

	if year >= MaxYear {
		return 0, fmt.Errorf("%w: court date is too far from today", common.ErrOutOfRange)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: the month entered does not exist", common.ErrOutOfRange)
	}
	if day < 1 || day > daysInMonth(year, month) {
		return 0, fmt.Errorf("%w: the date entered does not exist", common.ErrOutOfRange)
	}
	if month == 2 && year%4 == 0 {
		slog.Warn("Simplified leap year rule in effect; century years such as 1700, 1800, and 1900 pass this check despite not being leap years",
			"year", year)
	}

	target := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	ref := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	slog.Debug("Dates resolved", "court_date", target.Format("2006-01-02"), "today", ref.Format("2006-01-02"))

	if target.Before(ref) {
		return 0, fmt.Errorf("%w: court date cannot be in the past", common.ErrOutOfRange)
	}

	days := int(target.Sub(ref).Hours() / 24)
	slog.Debug("Days until court date", "days", days)
	return days, nil
}

// daysInMonth uses the simplified divisible-by-four leap rule for February.
func daysInMonth(year, month int) int {
	switch time.Month(month) {
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if year%4 == 0 {
			return 29
		}
		return 28
	default:
		return 31
	}
}
