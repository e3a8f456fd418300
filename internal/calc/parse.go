package calc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cliently/cliently/internal/common"
)

// ParseAmount parses a decimal number such as a rate or an hour count.
// Non-numeric text is an invalid-type violation, matching what the
// calculators report for foreign values.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", common.ErrInvalidType, s)
	}
	return v, nil
}

// ParseRating parses an integer such as a rating or a case count.
func ParseRating(s string) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", common.ErrInvalidType, s)
	}
	return v, nil
}

// ParseDate splits a YYYY-MM-DD string into its integer components without
// validating the calendar values; DaysUntil owns those checks.
func ParseDate(s string) (year, month, day int, err error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q is not a date in YYYY-MM-DD format", common.ErrInvalidType, s)
	}
	if year, err = ParseRating(parts[0]); err != nil {
		return 0, 0, 0, err
	}
	if month, err = ParseRating(parts[1]); err != nil {
		return 0, 0, 0, err
	}
	if day, err = ParseRating(parts[2]); err != nil {
		return 0, 0, 0, err
	}
	return year, month, day, nil
}
