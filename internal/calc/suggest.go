package calc

import (
	"fmt"
	"log/slog"

	"github.com/cliently/cliently/internal/common"
)

// Decision is a recommended case outcome.
type Decision string

// The three possible recommendations, keyed off the summed ratings.
const (
	DecisionDrop         Decision = "Drop the case"
	DecisionClientChoice Decision = "Let client decide"
	DecisionPursue       Decision = "Pursue the case"
)

// Rating bounds for the three case aspects.
const (
	MinRating = 1
	MaxRating = 10
)

// Score thresholds: totals at or below dropThreshold mean drop, totals at or
// below clientChoiceThreshold leave it to the client, everything higher is
// worth pursuing.
const (
	dropThreshold         = 14
	clientChoiceThreshold = 20
)

// Suggest recommends a case outcome from three 1-10 ratings: strength of the
// defense, flexibility of the opposing party, and quality of client
// communication. The recommendation depends only on the summed score.
func Suggest(strength, flexibility, communication int) (Decision, error) {
	slog.Debug("Calculating suggestion",
		"strength", strength,
		"flexibility", flexibility,
		"communication", communication)

	for _, rating := range []int{strength, flexibility, communication} {
		if rating < MinRating || rating > MaxRating {
			return "", fmt.Errorf("%w: all three ratings must be %d or more and %d or less",
				common.ErrOutOfRange, MinRating, MaxRating)
		}
	}

	total := strength + flexibility + communication
	slog.Debug("Total score calculated", "total", total)

	switch {
	case total <= dropThreshold:
		return DecisionDrop, nil
	case total <= clientChoiceThreshold:
		return DecisionClientChoice, nil
	default:
		return DecisionPursue, nil
	}
}
