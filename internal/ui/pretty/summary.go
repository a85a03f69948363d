package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/ngmigrate/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// Plural returns word, or its plural when n is not one.
func Plural(n int, word, plural string) string {
	if n == 1 {
		return word
	}
	return plural
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 files migrated (12 changes), 1 failed, 20 files checked".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats, dryRun bool) string {
	checked := s.Dim.Render(fmt.Sprintf("%d %s checked", stats.FilesDiscovered,
		Plural(stats.FilesDiscovered, wordFile, wordFiles)))

	verb := "migrated"
	if dryRun {
		verb = "would change"
	}

	var parts []string
	if stats.FilesModified == 0 {
		parts = append(parts, s.Success.Render("Nothing to migrate"))
	} else {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d %s %s (%d %s)",
			stats.FilesModified, Plural(stats.FilesModified, wordFile, wordFiles), verb,
			stats.ChangesApplied, Plural(stats.ChangesApplied, "change", "changes"))))
	}

	if stats.FilesFailed > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesFailed)))
	}
	if stats.StagesSkipped > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d %s disabled",
			stats.StagesSkipped, Plural(stats.StagesSkipped, "stage", "stages"))))
	}
	parts = append(parts, checked)

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats, dryRun bool) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	builder.WriteString(fmt.Sprintf("    Templates:       %d\n", stats.Templates))
	builder.WriteString(fmt.Sprintf("    Styles:          %d\n", stats.Styles))
	builder.WriteString(fmt.Sprintf("    Sources:         %d\n", stats.Sources))

	if stats.FilesModified > 0 {
		builder.WriteString("  Files modified:    " +
			s.Success.Render(strconv.Itoa(stats.FilesModified)) + "\n")
	}
	if stats.FilesFailed > 0 {
		builder.WriteString("  Files failed:      " +
			s.Failure.Render(strconv.Itoa(stats.FilesFailed)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Changes applied:   " +
		s.SummaryValue.Render(strconv.Itoa(stats.ChangesApplied)) + "\n")
	builder.WriteString("  Stages run:        " +
		s.SummaryValue.Render(strconv.Itoa(stats.StagesRun)) + "\n")
	if stats.StagesSkipped > 0 {
		builder.WriteString("  Stages disabled:   " +
			s.Warning.Render(strconv.Itoa(stats.StagesSkipped)) + "\n")
	}
	if stats.BackupsCreated > 0 {
		builder.WriteString("  Backups created:   " +
			s.SummaryValue.Render(strconv.Itoa(stats.BackupsCreated)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case stats.FilesFailed > 0:
		builder.WriteString(s.Failure.Render("Migration incomplete"))
	case dryRun:
		builder.WriteString(s.Warning.Render("Dry run, nothing written"))
	default:
		builder.WriteString(s.Success.Render("Migration complete"))
	}
	builder.WriteString("\n")

	return builder.String()
}
