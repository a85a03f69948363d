package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/ngmigrate/internal/ui/pretty"
	"github.com/yaklabco/ngmigrate/pkg/runner"
)

// TextReporter formats results as styled terminal output: a header naming
// the version range, one line per changed or failed file and a one-line
// summary.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("Nothing to migrate."))
		}
		return 0, nil
	}

	fmt.Fprint(r.bw, r.styles.FormatRunHeader(result.From, result.To, result.DryRun))

	for i := range result.Files {
		file := &result.Files[i]
		fmt.Fprint(r.bw, r.styles.FormatFileOutcome(file, displayPath(r.opts.WorkingDir, file.Path)))
	}

	if r.opts.ShowSummary {
		if len(result.Files) > 0 {
			fmt.Fprintln(r.bw)
		}
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats, result.DryRun))
	}

	return changedCount(result), nil
}
