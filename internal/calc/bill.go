// Package calc implements the case calculators: consultation billing,
// case-outcome suggestion, and court-date countdown. All three are pure
// functions over validated inputs; violations are reported with the shared
// error kinds in the common package.
package calc

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/cliently/cliently/internal/common"
)

const (
	// RetainerFee is the flat charge added to every computed bill.
	RetainerFee = 200.0

	// MaxBillableHours is the realistic ceiling on hours for one engagement.
	MaxBillableHours = 1000.0
)

// Bill computes the total cost of a consultation: rate times hours billed
// plus the flat retainer fee, rounded to cents.
func Bill(rate, hours float64) (float64, error) {
	slog.Debug("Calculating bill", "rate", rate, "hours", hours)

	if math.IsNaN(rate) || math.IsInf(rate, 0) || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0, fmt.Errorf("%w: rate and hours consulted must be numeric", common.ErrInvalidType)
	}
	if rate < 0 || hours < 0 {
		return 0, fmt.Errorf("%w: rate and hours consulted must be 0 or more", common.ErrOutOfRange)
	}
	if hours > MaxBillableHours {
		return 0, fmt.Errorf("%w: hours consulted was past the realistic threshold of %.0f", common.ErrOutOfRange, MaxBillableHours)
	}

	bill := roundCents(rate*hours + RetainerFee)
	slog.Debug("Bill calculated", "total", bill)
	return bill, nil
}

// roundCents rounds half away from zero to 2 decimal places.
func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
