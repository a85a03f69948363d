package runner

import (
	"errors"

	"github.com/yaklabco/ngmigrate/pkg/fix"
	"github.com/yaklabco/ngmigrate/pkg/migrate"
	"github.com/yaklabco/ngmigrate/pkg/workspace"
)

// FileOutcome summarizes what the run did to one file across migrations.
type FileOutcome struct {
	// Path is the absolute file path.
	Path string

	// Kind is the file's kind.
	Kind workspace.Kind

	// Changes counts the edits applied to the file.
	Changes int

	// Stages lists the stages that changed the file, in order.
	Stages []string

	// OriginalSize and Size are the file's size before and after the run.
	OriginalSize int
	Size         int

	// Backup is true when a backup was taken before the first write.
	Backup bool

	// Error is set if a stage aborted the file's migration.
	Error error

	// FailedStage is the stage that set Error.
	FailedStage string
}

// Changed reports whether the file was modified.
func (o *FileOutcome) Changed() bool {
	return o.Changes > 0
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// Templates, Styles and Sources count the discovered files per kind.
	Templates int
	Styles    int
	Sources   int

	// FilesModified is the number of files that were changed.
	FilesModified int

	// FilesFailed is the number of files whose migration was aborted.
	FilesFailed int

	// ChangesApplied is the total number of edits applied.
	ChangesApplied int

	// StagesRun and StagesSkipped count stages across all migrations.
	StagesRun     int
	StagesSkipped int

	// BytesBefore and BytesAfter total the sizes of the modified files.
	BytesBefore int
	BytesAfter  int

	// BackupsCreated is the number of backups written.
	BackupsCreated int
}

// Result is the overall runner result.
type Result struct {
	// From and To are the canonical versions the run migrated between.
	From string
	To   string

	// DryRun is true when nothing was written to disk.
	DryRun bool

	// Migrations holds the engine result of each migration, in order.
	Migrations []*migrate.Result

	// Files contains the outcome for each file that changed or failed,
	// ordered by path.
	Files []FileOutcome

	// Diffs holds a unified diff for every changed file, ordered by path.
	Diffs []*fix.Diff

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file's migration was aborted.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesFailed > 0
}

// HasChanges reports whether any file was changed.
func (r *Result) HasChanges() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesModified > 0
}

// Err joins the errors of all failed files, or returns nil.
func (r *Result) Err() error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, outcome := range r.Files {
		if outcome.Error != nil {
			errs = append(errs, outcome.Error)
		}
	}
	return errors.Join(errs...)
}

// Changed returns the outcomes of the modified files.
func (r *Result) Changed() []FileOutcome {
	var changed []FileOutcome
	for _, outcome := range r.Files {
		if outcome.Changed() {
			changed = append(changed, outcome)
		}
	}
	return changed
}

// Failed returns the outcomes of the files whose migration was aborted.
func (r *Result) Failed() []FileOutcome {
	var failed []FileOutcome
	for _, outcome := range r.Files {
		if outcome.Error != nil {
			failed = append(failed, outcome)
		}
	}
	return failed
}

// accumulate folds one migration's file states into the result.
func (r *Result) accumulate(outcomes map[string]*FileOutcome, m *migrate.Result) {
	r.Migrations = append(r.Migrations, m)

	for _, stage := range m.Stages {
		if stage.Skipped {
			r.Stats.StagesSkipped++
		} else {
			r.Stats.StagesRun++
		}
	}

	for _, state := range m.Files() {
		if !state.Changed() && state.Err == nil {
			continue
		}
		outcome, ok := outcomes[state.Path]
		if !ok {
			outcome = &FileOutcome{Path: state.Path, Kind: state.Kind}
			outcomes[state.Path] = outcome
		}
		outcome.Changes += state.Changes
		outcome.Stages = append(outcome.Stages, state.Stages...)
		if state.Err != nil && outcome.Error == nil {
			outcome.Error = state.Err
			outcome.FailedStage = state.FailedStage
		}
	}
}
