package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cliently/cliently/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter feeds pre-built counts and records to the engine.
type scriptedPrompter struct {
	counts        map[model.CaseType]int
	records       map[model.CaseType][]model.Record
	seenToday     time.Time
	totalsSet     []int
	completedCnt  int
	promptFailure error
}

func (p *scriptedPrompter) PromptCaseCount(_ context.Context, caseType model.CaseType) (int, error) {
	return p.counts[caseType], nil
}

func (p *scriptedPrompter) PromptCase(_ context.Context, caseType model.CaseType, today time.Time) (model.Record, error) {
	if p.promptFailure != nil {
		return nil, p.promptFailure
	}
	p.seenToday = today
	records := p.records[caseType]
	record := records[0]
	p.records[caseType] = records[1:]
	return record, nil
}

func (p *scriptedPrompter) SetTotalCases(total int) {
	p.totalsSet = append(p.totalsSet, total)
}

func (p *scriptedPrompter) CaseCompleted() {
	p.completedCnt++
}

// capturingWriter records every report it is asked to print.
type capturingWriter struct {
	records []model.Record
	failure error
}

func (w *capturingWriter) Write(record model.Record) error {
	if w.failure != nil {
		return w.failure
	}
	w.records = append(w.records, record)
	return nil
}

func TestIntakeEngine_Run(t *testing.T) {
	today := time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC)
	prompter := &scriptedPrompter{
		counts: map[model.CaseType]int{
			model.CaseCriminal: 1,
			model.CaseCivil:    0,
			model.CaseFiling:   2,
		},
		records: map[model.CaseType][]model.Record{
			model.CaseCriminal: {
				model.CriminalCase{Name: "John Smith", Charge: "Theft", Decision: "Drop the case", DaysUntilCourt: 15, CostDue: 2600},
			},
			model.CaseFiling: {
				model.FilingCase{Name: "Jane Doe", DaysUntilDeadline: 30, FilingFee: 200},
				model.FilingCase{Name: "Acme Corp", DaysUntilDeadline: 0, FilingFee: 450.5},
			},
		},
	}
	writer := &capturingWriter{}

	produced, err := New(prompter, writer, FixedClock{Date: today}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, produced)

	// One report per case, in category order.
	require.Len(t, writer.records, 3)
	assert.Equal(t, model.CaseCriminal, writer.records[0].Type())
	assert.Equal(t, model.CaseFiling, writer.records[1].Type())
	assert.Equal(t, model.CaseFiling, writer.records[2].Type())

	// Progress is reset per category and advanced per report.
	assert.Equal(t, []int{1, 0, 2}, prompter.totalsSet)
	assert.Equal(t, 3, prompter.completedCnt)

	// The clock's date reaches the prompter unchanged.
	assert.True(t, prompter.seenToday.Equal(today))
}

func TestIntakeEngine_PromptFailureStopsSession(t *testing.T) {
	prompter := &scriptedPrompter{
		counts:        map[model.CaseType]int{model.CaseCriminal: 1},
		promptFailure: errors.New("input terminated"),
	}
	writer := &capturingWriter{}

	produced, err := New(prompter, writer, SystemClock{}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input terminated")
	assert.Zero(t, produced)
	assert.Empty(t, writer.records)
}

func TestIntakeEngine_ReportFailureStopsSession(t *testing.T) {
	prompter := &scriptedPrompter{
		counts: map[model.CaseType]int{model.CaseCriminal: 1},
		records: map[model.CaseType][]model.Record{
			model.CaseCriminal: {
				model.CriminalCase{Name: "John Smith"},
			},
		},
	}
	writer := &capturingWriter{failure: errors.New("broken pipe")}

	_, err := New(prompter, writer, SystemClock{}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to print report")
	assert.Zero(t, prompter.completedCnt)
}

func TestClocks(t *testing.T) {
	pinned := time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC)
	assert.True(t, FixedClock{Date: pinned}.Today().Equal(pinned))

	today := SystemClock{}.Today()
	assert.Zero(t, today.Hour())
	assert.Zero(t, today.Minute())
	assert.Zero(t, today.Second())
}
