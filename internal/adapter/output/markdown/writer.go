package markdown

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kmorrow/issuesheet/internal/domain"
)

type clock func() string

// Writer renders run reports into Markdown files.
type Writer struct {
	now clock
}

// NewWriter constructs a Markdown writer with a timestamp supplier.
func NewWriter(now clock) *Writer {
	return &Writer{now: now}
}

// Write persists a Markdown run report to outputDir and returns its path.
func (w *Writer) Write(ctx context.Context, report domain.RunReport, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	filename := fmt.Sprintf("%s_%s_%s.md",
		sanitise(report.Repository.Owner),
		sanitise(report.Repository.Name),
		w.now(),
	)
	path := filepath.Join(outputDir, filename)

	content := buildContent(report)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write markdown: %w", err)
	}

	return path, nil
}

func buildContent(report domain.RunReport) string {
	var builder strings.Builder
	caser := cases.Title(language.English)

	builder.WriteString("# Issue Sync Report\n\n")
	builder.WriteString(fmt.Sprintf("- Run: %s\n", report.RunID))
	builder.WriteString(fmt.Sprintf("- Repository: %s/%s\n", report.Repository.Owner, report.Repository.Name))
	builder.WriteString(fmt.Sprintf("- Project: %s\n", report.Project.Name))
	builder.WriteString(fmt.Sprintf("- Spreadsheet: %s\n\n", report.SpreadsheetPath))

	if len(report.Rows) == 0 {
		builder.WriteString("No data rows processed.\n")
		return builder.String()
	}

	builder.WriteString("## Rows\n\n")
	for _, row := range report.Rows {
		builder.WriteString(fmt.Sprintf("### Row %d: %s\n", row.Row.SourceRow, row.Row.Title))
		builder.WriteString(fmt.Sprintf("- Outcome: %s\n", caser.String(row.State.String())))
		if row.IssueID != "" {
			builder.WriteString(fmt.Sprintf("- Issue: %s\n", row.IssueID))
		}
		if row.ItemID != "" {
			builder.WriteString(fmt.Sprintf("- Project Item: %s\n", row.ItemID))
		}
		if row.Err != nil {
			builder.WriteString(fmt.Sprintf("- Error: %v\n", row.Err))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

func sanitise(value string) string {
	if value == "" {
		return "unknown"
	}
	value = strings.ToLower(value)
	value = strings.ReplaceAll(value, string(filepath.Separator), "-")
	value = strings.ReplaceAll(value, " ", "-")
	return value
}
