// Package service defines the interfaces between the intake engine and its
// collaborators.
package service

import (
	"context"
	"time"

	"github.com/cliently/cliently/internal/model"
)

// Clock supplies the reference date for court-date countdowns.
type Clock interface {
	Today() time.Time
}

// Prompter drives the interactive conversation with the operator.
type Prompter interface {
	// PromptCaseCount asks how many cases of a category to enter,
	// re-prompting until a non-negative integer arrives.
	PromptCaseCount(ctx context.Context, caseType model.CaseType) (int, error)

	// PromptCase collects one complete case of the given category,
	// re-prompting on each invalid field until the record is complete.
	PromptCase(ctx context.Context, caseType model.CaseType, today time.Time) (model.Record, error)

	// SetTotalCases resets progress tracking for a category.
	SetTotalCases(total int)

	// CaseCompleted advances progress after a report is written.
	CaseCompleted()
}

// ReportWriter renders completed case records for the operator.
type ReportWriter interface {
	Write(record model.Record) error
}
