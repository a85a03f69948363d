package runner

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/yaklabco/ngmigrate/internal/logging"
	"github.com/yaklabco/ngmigrate/pkg/migrate"
	"github.com/yaklabco/ngmigrate/pkg/workspace"
)

// ErrNothingToDo indicates that no registered migration lies between the
// project's version and the target version.
var ErrNothingToDo = errors.New("no migrations apply")

// Runner selects the migrations a project needs and runs them over its files.
type Runner struct {
	// Registry supplies the migrations.
	Registry *migrate.Registry
}

// New creates a Runner. A nil registry selects migrate.DefaultRegistry.
func New(registry *migrate.Registry) *Runner {
	if registry == nil {
		registry = migrate.DefaultRegistry
	}
	return &Runner{Registry: registry}
}

// Plan resolves the version range of a run and the migrations it covers.
// An empty from in the config is read from the project's package.json.
func (r *Runner) Plan(opts Options) (from string, migrations []*migrate.Migration, err error) {
	cfg := opts.effectiveConfig()

	from = cfg.From
	if from == "" {
		workDir, err := resolveWorkDir(opts.WorkingDir)
		if err != nil {
			return "", nil, fmt.Errorf("resolve working directory: %w", err)
		}
		if from, err = DetectVersion(workDir); err != nil {
			return "", nil, err
		}
	}

	migrations, err = r.Registry.Select(from, cfg.To)
	if err != nil {
		return "", nil, err
	}
	from, err = migrate.CanonicalVersion(from)
	if err != nil {
		return "", nil, err
	}
	return from, migrations, nil
}

// Run discovers the project's files and applies every migration between the
// project's version and the target version, oldest first.
//
// Per-file failures do not stop the run; they are reported in the result.
// The returned error is non-nil when planning or discovery fails, when no
// migration applies (ErrNothingToDo), or when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)
	cfg := opts.effectiveConfig()

	from, migrations, err := r.Plan(opts)
	if err != nil {
		return nil, err
	}
	if len(migrations) == 0 {
		return nil, fmt.Errorf("%w: project is on %s", ErrNothingToDo, from)
	}

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		From:   from,
		To:     migrations[len(migrations)-1].Version,
		DryRun: cfg.DryRun,
	}
	result.Stats.FilesDiscovered = files.Len()
	result.Stats.Templates = len(files.Templates)
	result.Stats.Styles = len(files.Styles)
	result.Stats.Sources = len(files.Sources)

	logger.Debug("files discovered",
		logging.FieldTemplates, result.Stats.Templates,
		logging.FieldStyles, result.Stats.Styles,
		logging.FieldSources, result.Stats.Sources)

	tree := workspace.NewDisk(workspace.DiskOptions{
		DryRun: cfg.DryRun,
		Backup: cfg.BackupConfig(),
	})
	engine := migrate.NewEngine(cfg.Disable...)
	outcomes := make(map[string]*FileOutcome)

	for _, m := range migrations {
		logger.Info("running migration", logging.FieldMigration, m.Version, logging.FieldDryRun, cfg.DryRun)

		migrated, err := engine.Run(ctx, tree, files, m)
		if migrated != nil {
			result.accumulate(outcomes, migrated)
		}
		if err != nil {
			result.finish(tree, outcomes)
			return result, err
		}
	}

	result.finish(tree, outcomes)
	return result, nil
}

// finish fills in sizes, backups, diffs and stats from the tree.
func (r *Result) finish(tree *workspace.Disk, outcomes map[string]*FileOutcome) {
	backups := make(map[string]bool)
	for _, path := range tree.Backups() {
		backups[path] = true
	}

	for _, path := range slices.Sorted(maps.Keys(outcomes)) {
		outcome := outcomes[path]
		outcome.OriginalSize, outcome.Size = tree.Sizes(path)
		outcome.Backup = backups[path]

		if outcome.Error != nil {
			r.Stats.FilesFailed++
		}
		if outcome.Changed() {
			r.Stats.FilesModified++
			r.Stats.ChangesApplied += outcome.Changes
			r.Stats.BytesBefore += outcome.OriginalSize
			r.Stats.BytesAfter += outcome.Size
		}
		r.Files = append(r.Files, *outcome)
	}

	r.Diffs = tree.Diffs()
	r.Stats.BackupsCreated = len(backups)
}
