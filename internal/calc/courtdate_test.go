package calc

import (
	"testing"
	"time"

	"github.com/cliently/cliently/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The reference date the original report tool pinned for its checks.
var fixedToday = time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		day   int
		want  int
	}{
		{name: "same month", year: 2021, month: 6, day: 30, want: 15},
		{name: "tomorrow", year: 2021, month: 6, day: 16, want: 1},
		{name: "two weeks out", year: 2021, month: 6, day: 29, want: 14},
		{name: "years out", year: 2023, month: 8, day: 9, want: 785},
		{name: "today counts as zero", year: 2021, month: 6, day: 15, want: 0},
		{name: "across a leap day", year: 2024, month: 2, day: 29, want: 989},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysUntil(tt.year, tt.month, tt.day, fixedToday)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysUntil_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		day   int
	}{
		{name: "year too far out", year: 2100, month: 1, day: 1},
		{name: "month thirteen", year: 2022, month: 13, day: 1},
		{name: "month zero", year: 2022, month: 0, day: 1},
		{name: "day zero", year: 2022, month: 6, day: 0},
		{name: "day 31 in a 30-day month", year: 2022, month: 6, day: 31},
		{name: "day 32 in a 31-day month", year: 2022, month: 7, day: 32},
		{name: "february 30 never exists", year: 2024, month: 2, day: 30},
		{name: "february 29 off the leap cycle", year: 2023, month: 2, day: 29},
		{name: "date in the past", year: 2021, month: 6, day: 14},
		{name: "date years in the past", year: 1999, month: 1, day: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DaysUntil(tt.year, tt.month, tt.day, fixedToday)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrOutOfRange)
		})
	}
}

// The divisible-by-four shortcut admits February 29 in any year on the
// four-year cycle, including century years that are not real leap years.
// That behavior is documented and deliberately preserved.
func TestDaysUntil_SimplifiedLeapRule(t *testing.T) {
	_, err := DaysUntil(2096, 2, 29, fixedToday)
	assert.NoError(t, err)

	_, err = DaysUntil(2097, 2, 29, fixedToday)
	assert.ErrorIs(t, err, common.ErrOutOfRange)
}

func TestDaysUntil_IgnoresTimeOfDay(t *testing.T) {
	lateInTheDay := time.Date(2021, time.June, 15, 23, 45, 0, 0, time.Local)

	got, err := DaysUntil(2021, 6, 16, lateInTheDay)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}
