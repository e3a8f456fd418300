// Package report renders completed case records as client reports.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cliently/cliently/internal/cli"
	"github.com/cliently/cliently/internal/model"
)

const separatorWidth = 51

// Writer prints boxed client reports.
type Writer struct {
	writer io.Writer
}

// NewWriter creates a report writer. A nil writer defaults to stdout.
func NewWriter(writer io.Writer) *Writer {
	if writer == nil {
		writer = os.Stdout
	}
	return &Writer{writer: writer}
}

// Write renders one client report: key: value lines bounded by separator lines.
func (w *Writer) Write(record model.Record) error {
	separator := cli.SubtleStyle.Render(strings.Repeat("-", separatorWidth))

	var b strings.Builder
	b.WriteString(separator + "\n")
	b.WriteString(cli.PromptStyle.Render("***CLIENT REPORT***") + "\n")
	for _, field := range record.ReportFields() {
		b.WriteString(fmt.Sprintf("%s: %s\n", field.Key, field.Value))
	}
	b.WriteString(separator + "\n")

	if _, err := fmt.Fprint(w.writer, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	slog.Debug("Report printed", "case_type", record.Type())
	return nil
}
