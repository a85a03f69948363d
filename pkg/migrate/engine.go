package migrate

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/yaklabco/ngmigrate/internal/logging"
	"github.com/yaklabco/ngmigrate/pkg/fix"
	"github.com/yaklabco/ngmigrate/pkg/markup"
	"github.com/yaklabco/ngmigrate/pkg/workspace"
)

// Engine error categories, matched with errors.Is on FileState.Err.
var (
	// ErrReadFailure indicates a file could not be read.
	ErrReadFailure = errors.New("read failure")

	// ErrParseFailure indicates a template could not be parsed.
	ErrParseFailure = errors.New("parse failure")

	// ErrRuleFailure indicates a rule returned an error.
	ErrRuleFailure = errors.New("rule failure")

	// ErrWriteFailure indicates edits could not be applied or persisted.
	ErrWriteFailure = errors.New("write failure")

	// ErrEditConflict indicates an edit whose expected text was not found.
	ErrEditConflict = fix.ErrEditConflict
)

// FileState is the outcome of a migration for one file. It is threaded
// through the stages explicitly instead of living in shared state.
type FileState struct {
	// Path identifies the file.
	Path string

	// Kind is the file's kind.
	Kind workspace.Kind

	// Touched records, per stage group, whether the group changed the file.
	Touched map[string]bool

	// Changes counts the edits applied to the file.
	Changes int

	// Stages lists the IDs of the stages that changed the file, in order.
	Stages []string

	// Err is set when the migration of the file was aborted. Later stages
	// skip the file.
	Err error

	// FailedStage is the ID of the stage that set Err.
	FailedStage string
}

// Changed reports whether any stage changed the file.
func (s *FileState) Changed() bool {
	return s.Changes > 0
}

func (s *FileState) fail(stage string, err error) {
	s.Err = err
	s.FailedStage = stage
}

// StageResult reports what one stage did.
type StageResult struct {
	ID      string
	Changes int
	Files   []string
	Skipped bool
}

// Result is the outcome of running one migration.
type Result struct {
	Migration string
	Stages    []StageResult

	files map[string]*FileState
}

// File returns the state of path, or nil if no stage looked at it.
func (r *Result) File(path string) *FileState {
	return r.files[path]
}

// Files returns every file state, sorted by path.
func (r *Result) Files() []*FileState {
	states := make([]*FileState, 0, len(r.files))
	for _, path := range slices.Sorted(maps.Keys(r.files)) {
		states = append(states, r.files[path])
	}
	return states
}

// Changed returns the sorted paths of the files the migration changed.
func (r *Result) Changed() []string {
	var paths []string
	for _, state := range r.Files() {
		if state.Changed() {
			paths = append(paths, state.Path)
		}
	}
	return paths
}

// Failed returns the states of the files whose migration was aborted.
func (r *Result) Failed() []*FileState {
	var failed []*FileState
	for _, state := range r.Files() {
		if state.Err != nil {
			failed = append(failed, state)
		}
	}
	return failed
}

// Err joins the errors of all failed files, or returns nil.
func (r *Result) Err() error {
	var errs []error
	for _, state := range r.Failed() {
		errs = append(errs, state.Err)
	}
	return errors.Join(errs...)
}

func (r *Result) state(path string, kind workspace.Kind) *FileState {
	state, ok := r.files[path]
	if !ok {
		state = &FileState{Path: path, Kind: kind, Touched: make(map[string]bool)}
		r.files[path] = state
	}
	return state
}

// Engine runs migrations against a file tree.
type Engine struct {
	// Disabled holds stage IDs that are skipped.
	Disabled map[string]bool
}

// NewEngine creates an engine that skips the given stage IDs.
func NewEngine(disabled ...string) *Engine {
	e := &Engine{Disabled: make(map[string]bool, len(disabled))}
	for _, id := range disabled {
		e.Disabled[id] = true
	}
	return e
}

// Run executes m over files in tree.
//
// Stages run in order. For each stage, every file of the stage's kind is
// read fresh from the tree (and parsed, for templates), the rule's edits are
// collected into one batch, and the batch is flushed before the next stage
// starts. A file that fails is recorded in the result and skipped by later
// stages; other files continue. The returned error is non-nil only when ctx
// is cancelled.
func (e *Engine) Run(ctx context.Context, tree workspace.Tree, files *workspace.FileSet, m *Migration) (*Result, error) {
	logger := logging.FromContext(ctx).With(logging.FieldMigration, m.Version)
	result := &Result{Migration: m.Version, files: make(map[string]*FileState)}

	for _, stage := range m.Stages {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("migration %s cancelled: %w", m.Version, err)
		}

		id := stage.Rule.ID()
		if e.Disabled[id] {
			logger.Debug("stage disabled", logging.FieldStage, id)
			result.Stages = append(result.Stages, StageResult{ID: id, Skipped: true})
			continue
		}

		stageResult := e.runStage(ctx, tree, files, stage, result)
		logger.Debug("stage done",
			logging.FieldStage, id,
			logging.FieldChanges, stageResult.Changes,
			logging.FieldFiles, len(stageResult.Files))
		result.Stages = append(result.Stages, stageResult)
	}

	return result, nil
}

func (e *Engine) runStage(
	ctx context.Context,
	tree workspace.Tree,
	files *workspace.FileSet,
	stage Stage,
	result *Result,
) StageResult {
	logger := logging.FromContext(ctx)
	rule := stage.Rule
	kind := rule.Kind()
	batch := fix.NewBatch()

	for _, path := range files.Files(kind) {
		if ctx.Err() != nil {
			break
		}

		state := result.state(path, kind)
		if state.Err != nil {
			continue
		}

		changes, err := e.applyRule(ctx, tree, path, stage, state)
		if err != nil {
			logger.Warn("file skipped", logging.FieldPath, path, logging.FieldStage, rule.ID(), logging.FieldError, err)
			state.fail(rule.ID(), err)
			continue
		}
		batch.AddChanges(path, changes...)
	}

	flushed := batch.Flush(ctx, tree)

	stageResult := StageResult{ID: rule.ID()}
	for _, path := range slices.Sorted(maps.Keys(flushed.Errors)) {
		err := flushed.Errors[path]
		if !errors.Is(err, fix.ErrEditConflict) && !errors.Is(err, fix.ErrInvalidChange) {
			err = fmt.Errorf("%w: %w", ErrWriteFailure, err)
		}
		logger.Warn("file not written", logging.FieldPath, path, logging.FieldStage, rule.ID(), logging.FieldError, err)
		result.state(path, kind).fail(rule.ID(), err)
	}

	for _, path := range flushed.Changed {
		state := result.state(path, kind)
		applied := flushed.Applied[path]
		state.Changes += applied
		state.Stages = append(state.Stages, rule.ID())
		if stage.Group != "" {
			state.Touched[stage.Group] = true
		}
		stageResult.Changes += applied
		stageResult.Files = append(stageResult.Files, path)
	}

	return stageResult
}

func (e *Engine) applyRule(
	ctx context.Context,
	tree workspace.Tree,
	path string,
	stage Stage,
	state *FileState,
) ([]fix.Change, error) {
	content, err := tree.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailure, err)
	}

	var doc *markup.Document
	if stage.Rule.Kind() == workspace.KindTemplate {
		doc, err = markup.Parse(path, content)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
		}
	}

	rc := NewRuleContext(ctx, path, content, doc)
	rc.Touched = stage.Group != "" && state.Touched[stage.Group]

	if err := stage.Rule.Apply(rc); err != nil {
		return nil, fmt.Errorf("%w: %s: %s: %w", ErrRuleFailure, stage.Rule.ID(), path, err)
	}
	return rc.Changes(), nil
}
