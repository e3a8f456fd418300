package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cliently/cliently/internal/calc"
	"github.com/cliently/cliently/internal/common"
	"github.com/cliently/cliently/internal/model"
	"github.com/schollz/progressbar/v3"
)

// IntakePrompter implements the interactive CLI prompting interface for
// collecting client case information. Every field prompt re-asks until the
// input passes validation; only read failures and cancellation abort.
type IntakePrompter struct {
	writer      io.Writer
	reader      *bufio.Reader
	progressBar *progressbar.ProgressBar
	totalCases  int
}

// NewIntakePrompter creates a new intake prompter with the given reader and writer.
func NewIntakePrompter(reader io.Reader, writer io.Writer) *IntakePrompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &IntakePrompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// PromptCaseCount asks how many cases of a category will be entered.
func (p *IntakePrompter) PromptCaseCount(ctx context.Context, caseType model.CaseType) (int, error) {
	for {
		line, err := p.promptLine(ctx, fmt.Sprintf("How Many %s Cases?", caseType))
		if err != nil {
			return 0, err
		}

		count, err := calc.ParseRating(line)
		if err != nil {
			p.showRejection(err)
			continue
		}
		if count < 0 {
			if _, err := fmt.Fprintln(p.writer, FormatError("Cases must be 0 or more")); err != nil {
				return 0, fmt.Errorf("failed to write rejection: %w", err)
			}
			continue
		}

		slog.Info("Case count entered", "case_type", caseType, "count", count)
		return count, nil
	}
}

// PromptCase collects one complete case record of the given category.
func (p *IntakePrompter) PromptCase(ctx context.Context, caseType model.CaseType, today time.Time) (model.Record, error) {
	// Names are free text; anything goes.
	name, err := p.promptLine(ctx, "Client Name")
	if err != nil {
		return nil, err
	}
	slog.Info("Name entered", "name", name)

	cost, err := p.promptBill(ctx, caseType)
	if err != nil {
		return nil, err
	}

	switch caseType {
	case model.CaseCriminal:
		charge, err := p.promptLine(ctx, "Criminal Charge")
		if err != nil {
			return nil, err
		}
		slog.Info("Charge entered", "charge", charge)

		decision, err := p.promptSuggestion(ctx, "how flexible is the prosecution?")
		if err != nil {
			return nil, err
		}

		days, err := p.promptCourtDate(ctx, "Court Date in YYYY-MM-DD format", today)
		if err != nil {
			return nil, err
		}

		return model.CriminalCase{
			Name:           name,
			Charge:         charge,
			Decision:       string(decision),
			DaysUntilCourt: days,
			CostDue:        cost,
		}, nil

	case model.CaseCivil:
		claim, err := p.promptLine(ctx, "Client Lawsuit Claim")
		if err != nil {
			return nil, err
		}
		slog.Info("Lawsuit claim entered", "claim", claim)

		decision, err := p.promptSuggestion(ctx, "how flexible is the party suing?")
		if err != nil {
			return nil, err
		}

		days, err := p.promptCourtDate(ctx, "Court Date in YYYY-MM-DD format", today)
		if err != nil {
			return nil, err
		}

		return model.CivilCase{
			Name:           name,
			Claim:          claim,
			Decision:       string(decision),
			DaysUntilCourt: days,
			CostDue:        cost,
		}, nil

	default:
		days, err := p.promptCourtDate(ctx, "Filing deadline in YYYY-MM-DD format", today)
		if err != nil {
			return nil, err
		}

		return model.FilingCase{
			Name:              name,
			DaysUntilDeadline: days,
			FilingFee:         cost,
		}, nil
	}
}

// SetTotalCases resets progress tracking for a category.
func (p *IntakePrompter) SetTotalCases(total int) {
	p.totalCases = total
	p.progressBar = nil
	if total > 1 {
		p.initProgressBar()
	}
}

// CaseCompleted advances the progress bar after a report is written.
func (p *IntakePrompter) CaseCompleted() {
	if p.progressBar != nil {
		_ = p.progressBar.Add(1)
	}
}

func (p *IntakePrompter) initProgressBar() {
	p.progressBar = progressbar.NewOptions(p.totalCases,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Compiling client reports...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(p.writer)
		}),
	)
}

// promptBill collects a rate and hour count, retrying until the bill
// calculation accepts them, and returns the total cost due.
func (p *IntakePrompter) promptBill(ctx context.Context, caseType model.CaseType) (float64, error) {
	rateLabel := "Client's Consultation Rate ($)"
	if caseType == model.CaseFiling {
		rateLabel = "Client's Filing Rate ($)"
	}

	for {
		rateLine, err := p.promptLine(ctx, rateLabel)
		if err != nil {
			return 0, err
		}
		rate, parseErr := calc.ParseAmount(rateLine)
		if parseErr != nil {
			p.showRejection(parseErr)
			continue
		}
		slog.Info("Rate entered", "rate", rate)

		hoursLine, err := p.promptLine(ctx, "Hours to be billed")
		if err != nil {
			return 0, err
		}
		hours, parseErr := calc.ParseAmount(hoursLine)
		if parseErr != nil {
			p.showRejection(parseErr)
			continue
		}
		slog.Info("Hours entered", "hours", hours)

		total, calcErr := calc.Bill(rate, hours)
		if calcErr != nil {
			p.showRejection(calcErr)
			continue
		}

		slog.Info("Total bill calculated", "total", total)
		return total, nil
	}
}

// promptSuggestion collects the three 1-10 ratings, retrying until the
// advisor accepts them, and returns the recommended decision.
func (p *IntakePrompter) promptSuggestion(ctx context.Context, flexibilityQuestion string) (calc.Decision, error) {
	for {
		strength, rejected, err := p.promptRating(ctx, "On a scale of 1-10, how strong is the case?")
		if err != nil {
			return "", err
		}
		if rejected {
			continue
		}

		flexibility, rejected, err := p.promptRating(ctx, "On a scale of 1-10, "+flexibilityQuestion)
		if err != nil {
			return "", err
		}
		if rejected {
			continue
		}

		communication, rejected, err := p.promptRating(ctx, "On a scale of 1-10, how is the client's communication?")
		if err != nil {
			return "", err
		}
		if rejected {
			continue
		}

		decision, calcErr := calc.Suggest(strength, flexibility, communication)
		if calcErr != nil {
			p.showRejection(calcErr)
			continue
		}

		slog.Info("Suggested outcome", "decision", decision)
		return decision, nil
	}
}

// promptRating reads one integer rating. The rejected flag reports a parse
// failure that was already shown to the user.
func (p *IntakePrompter) promptRating(ctx context.Context, prompt string) (rating int, rejected bool, err error) {
	line, err := p.promptLine(ctx, prompt)
	if err != nil {
		return 0, false, err
	}

	rating, parseErr := calc.ParseRating(line)
	if parseErr != nil {
		p.showRejection(parseErr)
		return 0, true, nil
	}

	return rating, false, nil
}

// promptCourtDate collects a YYYY-MM-DD date, retrying until the countdown
// calculation accepts it, and returns the day count.
func (p *IntakePrompter) promptCourtDate(ctx context.Context, prompt string, today time.Time) (model.DayCount, error) {
	for {
		line, err := p.promptLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		slog.Info("Date entered", "input", line)

		year, month, day, parseErr := calc.ParseDate(line)
		if parseErr != nil {
			p.showRejection(parseErr)
			continue
		}

		days, calcErr := calc.DaysUntil(year, month, day, today)
		if calcErr != nil {
			p.showRejection(calcErr)
			continue
		}

		return model.DayCount(days), nil
	}
}

func (p *IntakePrompter) promptLine(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	input, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("input terminated")
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(input), nil
}

func (p *IntakePrompter) showRejection(err error) {
	msg := fmt.Sprintf("%s: %v", common.ErrorKind(err), err)
	common.LogError(err, "Input rejected", nil)
	if _, werr := fmt.Fprintln(p.writer, FormatError(msg)); werr != nil {
		slog.Warn("Failed to write rejection message", "error", werr)
	}
}
