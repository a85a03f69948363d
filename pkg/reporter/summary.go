package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/yaklabco/ngmigrate/internal/ui/pretty"
	"github.com/yaklabco/ngmigrate/pkg/runner"
)

// Table layout constants for summary output.
const (
	defaultTermWidth = 100 // Width used when the writer is not a terminal.
	maxTableWidth    = 120 // Tables never grow past this width.
	minPathColWidth  = 24  // Narrowest the stage and file columns shrink to.
	numColWidth      = 8   // Width of count columns.
	sizeColWidth     = 10  // Width of size columns.
	statusColWidth   = 9   // Width of the stage status column.
)

// padRight pads a string to the given width with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// truncateLeft shortens s to width, keeping its end.
func truncateLeft(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return "…" + s[len(s)-(width-1):]
}

// signedBytes formats a size delta such as "+1.2 kB" or "-40 B".
func signedBytes(delta int) string {
	switch {
	case delta > 0:
		return "+" + humanize.Bytes(uint64(delta))
	case delta < 0:
		return "-" + humanize.Bytes(uint64(-delta))
	default:
		return "0 B"
	}
}

// SummaryReporter formats results as a stage table, a file table and a
// statistics block.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
	width  int
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
		width:  min(getTerminalWidth(opts.Writer), maxTableWidth),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		fmt.Fprintln(r.bw, r.styles.Success.Render("Nothing to migrate."))
		return 0, nil
	}

	fmt.Fprint(r.bw, r.styles.FormatRunHeader(result.From, result.To, result.DryRun))
	fmt.Fprintln(r.bw)

	r.renderStageTable(result)
	if len(result.Files) > 0 {
		fmt.Fprintln(r.bw)
		r.renderFileTable(result.Files)
	}

	fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats, result.DryRun))

	return changedCount(result), nil
}

func (r *SummaryReporter) separator() {
	fmt.Fprintln(r.bw, r.styles.TableSeparator.Render(strings.Repeat("─", r.width)))
}

func (r *SummaryReporter) renderStageTable(result *runner.Result) {
	stageColWidth := max(r.width-2*(numColWidth+1)-statusColWidth-1, minPathColWidth)

	fmt.Fprintln(r.bw, r.styles.Bold.Render("Stages"))
	r.separator()
	fmt.Fprintf(r.bw, "%s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("Stage", stageColWidth)),
		r.styles.TableHeader.Render(padLeft("Changes", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Files", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Status", statusColWidth)),
	)
	r.separator()

	for _, m := range result.Migrations {
		fmt.Fprintln(r.bw, r.styles.SummaryTitle.Render("v"+m.Migration))
		for _, stage := range m.Stages {
			name := padRight("  "+truncateLeft(stage.ID, stageColWidth-2), stageColWidth)

			status := padLeft("ran", statusColWidth)
			switch {
			case stage.Skipped:
				name = r.styles.Dim.Render(name)
				status = r.styles.Warning.Render(padLeft("disabled", statusColWidth))
			case stage.Changes > 0:
				status = r.styles.Success.Render(padLeft("changed", statusColWidth))
			}

			fmt.Fprintf(r.bw, "%s %s %s %s\n",
				name,
				padLeft(strconv.Itoa(stage.Changes), numColWidth),
				padLeft(strconv.Itoa(len(stage.Files)), numColWidth),
				status,
			)
		}
	}
}

func (r *SummaryReporter) renderFileTable(files []runner.FileOutcome) {
	fileColWidth := max(r.width-numColWidth-3*(sizeColWidth+1)-1, minPathColWidth)

	fmt.Fprintln(r.bw, r.styles.Bold.Render("Files"))
	r.separator()
	fmt.Fprintf(r.bw, "%s %s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("File", fileColWidth)),
		r.styles.TableHeader.Render(padLeft("Changes", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Before", sizeColWidth)),
		r.styles.TableHeader.Render(padLeft("After", sizeColWidth)),
		r.styles.TableHeader.Render(padLeft("Delta", sizeColWidth)),
	)
	r.separator()

	for i := range files {
		file := &files[i]
		path := padRight(truncateLeft(displayPath(r.opts.WorkingDir, file.Path), fileColWidth), fileColWidth)

		if file.Error != nil {
			status := "failed"
			if file.FailedStage != "" {
				status += " in " + file.FailedStage
			}
			fmt.Fprintf(r.bw, "%s %s\n", r.styles.TableErrorRow.Render(path), r.styles.Error.Render(status))
			continue
		}

		fmt.Fprintf(r.bw, "%s %s %s %s %s\n",
			path,
			padLeft(strconv.Itoa(file.Changes), numColWidth),
			padLeft(humanize.Bytes(uint64(file.OriginalSize)), sizeColWidth),
			padLeft(humanize.Bytes(uint64(file.Size)), sizeColWidth),
			padLeft(signedBytes(file.Size-file.OriginalSize), sizeColWidth),
		)
	}
}

// getTerminalWidth attempts to get the terminal width from the writer.
func getTerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
