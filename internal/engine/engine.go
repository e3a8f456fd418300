// Package engine orchestrates the interactive intake session: per-category
// case counts, per-case field collection, and report output.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cliently/cliently/internal/model"
	"github.com/cliently/cliently/internal/service"
)

// IntakeEngine runs a full intake session across all case categories.
type IntakeEngine struct {
	prompter service.Prompter
	reports  service.ReportWriter
	clock    service.Clock
}

// New creates a new intake engine with the given dependencies.
func New(prompter service.Prompter, reports service.ReportWriter, clock service.Clock) *IntakeEngine {
	return &IntakeEngine{
		prompter: prompter,
		reports:  reports,
		clock:    clock,
	}
}

// Run processes every case category in order, prompting for each case and
// printing its report. It returns the number of reports produced.
func (e *IntakeEngine) Run(ctx context.Context) (int, error) {
	today := e.clock.Today()
	slog.Info("Starting intake session", "today", today.Format("2006-01-02"))

	produced := 0
	for _, caseType := range model.CaseTypes() {
		count, err := e.runCategory(ctx, caseType, today)
		if err != nil {
			return produced, err
		}
		produced += count
	}

	slog.Info("Intake session complete", "reports", produced)
	return produced, nil
}

// runCategory collects and reports every case of one category.
func (e *IntakeEngine) runCategory(ctx context.Context, caseType model.CaseType, today time.Time) (int, error) {
	count, err := e.prompter.PromptCaseCount(ctx, caseType)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s case count: %w", caseType, err)
	}

	e.prompter.SetTotalCases(count)

	for i := 0; i < count; i++ {
		record, err := e.prompter.PromptCase(ctx, caseType, today)
		if err != nil {
			return i, fmt.Errorf("failed to collect %s case: %w", caseType, err)
		}
		slog.Debug("Case record complete", "case_type", caseType, "index", i+1)

		if err := e.reports.Write(record); err != nil {
			return i, fmt.Errorf("failed to print report: %w", err)
		}
		e.prompter.CaseCompleted()
	}

	return count, nil
}
