package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/ngmigrate/pkg/runner"
)

// FormatFileOutcome formats one changed or failed file. path is the path to
// display, usually relative to the project root.
//
//	src/app/tabs.component.html  4 changes  (igx-tabs-header, igx-tabs-content)
//	src/app/broken.html  failed in igx-tabs-header: parse failure: ...
func (s *Styles) FormatFileOutcome(outcome *runner.FileOutcome, path string) string {
	var builder strings.Builder

	builder.WriteString("  " + s.FilePath.Render(path) + "  ")

	if outcome.Error != nil {
		builder.WriteString(s.Error.Render("failed"))
		if outcome.FailedStage != "" {
			builder.WriteString(" in " + s.Stage.Render(outcome.FailedStage))
		}
		builder.WriteString(": " + s.Message.Render(outcome.Error.Error()) + "\n")
		return builder.String()
	}

	builder.WriteString(s.Success.Render(fmt.Sprintf("%d %s", outcome.Changes,
		Plural(outcome.Changes, "change", "changes"))))
	if len(outcome.Stages) > 0 {
		builder.WriteString("  " + s.Stage.Render("("+strings.Join(dedupe(outcome.Stages), ", ")+")"))
	}
	builder.WriteString("\n")
	return builder.String()
}

// FormatRunHeader formats the line announcing the version range of a run.
func (s *Styles) FormatRunHeader(from, to string, dryRun bool) string {
	header := s.Bold.Render(fmt.Sprintf("Migrating from %s to %s", from, to))
	if dryRun {
		header += s.Dim.Render(" (dry run)")
	}
	return header + "\n"
}

// dedupe drops repeated stage IDs, keeping the first occurrence.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
