package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/ngmigrate/pkg/runner"
)

// jsonSchemaVersion versions the JSON document layout.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version    string           `json:"version"`
	From       string           `json:"from"`
	To         string           `json:"to"`
	DryRun     bool             `json:"dryRun"`
	Migrations []JSONMigration  `json:"migrations"`
	Files      []JSONFileResult `json:"files"`
	Summary    JSONSummary      `json:"summary"`
}

// JSONMigration reports one migration and its stages.
type JSONMigration struct {
	Version string      `json:"version"`
	Stages  []JSONStage `json:"stages"`
}

// JSONStage reports what one stage did.
type JSONStage struct {
	ID      string   `json:"id"`
	Changes int      `json:"changes"`
	Files   []string `json:"files"`
	Skipped bool     `json:"skipped,omitempty"`
}

// JSONFileResult represents a changed or failed file.
type JSONFileResult struct {
	Path         string   `json:"path"`
	Kind         string   `json:"kind"`
	Changes      int      `json:"changes"`
	Stages       []string `json:"stages"`
	OriginalSize int      `json:"originalSize"`
	Size         int      `json:"size"`
	Backup       bool     `json:"backup,omitempty"`
	Error        string   `json:"error,omitempty"`
	FailedStage  string   `json:"failedStage,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked   int `json:"filesChecked"`
	Templates      int `json:"templates"`
	Styles         int `json:"styles"`
	Sources        int `json:"sources"`
	FilesModified  int `json:"filesModified"`
	FilesFailed    int `json:"filesFailed"`
	ChangesApplied int `json:"changesApplied"`
	StagesRun      int `json:"stagesRun"`
	StagesSkipped  int `json:"stagesSkipped"`
	BytesBefore    int `json:"bytesBefore"`
	BytesAfter     int `json:"bytesAfter"`
	BackupsCreated int `json:"backupsCreated"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return changedCount(result), nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version:    jsonSchemaVersion,
		Migrations: make([]JSONMigration, 0),
		Files:      make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	output.From = result.From
	output.To = result.To
	output.DryRun = result.DryRun

	for _, m := range result.Migrations {
		migration := JSONMigration{Version: m.Migration, Stages: make([]JSONStage, 0, len(m.Stages))}
		for _, stage := range m.Stages {
			files := make([]string, 0, len(stage.Files))
			for _, path := range stage.Files {
				files = append(files, displayPath(r.opts.WorkingDir, path))
			}
			migration.Stages = append(migration.Stages, JSONStage{
				ID:      stage.ID,
				Changes: stage.Changes,
				Files:   files,
				Skipped: stage.Skipped,
			})
		}
		output.Migrations = append(output.Migrations, migration)
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:         displayPath(r.opts.WorkingDir, file.Path),
			Kind:         file.Kind.String(),
			Changes:      file.Changes,
			Stages:       make([]string, 0, len(file.Stages)),
			OriginalSize: file.OriginalSize,
			Size:         file.Size,
			Backup:       file.Backup,
			FailedStage:  file.FailedStage,
		}
		fileResult.Stages = append(fileResult.Stages, file.Stages...)
		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}
		output.Files = append(output.Files, fileResult)
	}

	stats := result.Stats
	output.Summary = JSONSummary{
		FilesChecked:   stats.FilesDiscovered,
		Templates:      stats.Templates,
		Styles:         stats.Styles,
		Sources:        stats.Sources,
		FilesModified:  stats.FilesModified,
		FilesFailed:    stats.FilesFailed,
		ChangesApplied: stats.ChangesApplied,
		StagesRun:      stats.StagesRun,
		StagesSkipped:  stats.StagesSkipped,
		BytesBefore:    stats.BytesBefore,
		BytesAfter:     stats.BytesAfter,
		BackupsCreated: stats.BackupsCreated,
	}

	return output
}
