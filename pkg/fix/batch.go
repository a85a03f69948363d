package fix

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
)

// Store reads and overwrites whole files. It is satisfied by the workspace
// trees.
type Store interface {
	Read(ctx context.Context, path string) ([]byte, error)
	Overwrite(ctx context.Context, path string, content []byte) error
}

// Batch collects pending changes per file until they are flushed.
//
// All changes for one path must have been computed against the same content,
// which is the content Flush reads back from the store.
type Batch struct {
	pending map[string][]Change
}

// NewBatch creates an empty batch.
func NewBatch() *Batch {
	return &Batch{pending: make(map[string][]Change)}
}

// AddChange appends a change for path.
func (b *Batch) AddChange(path string, change Change) {
	b.pending[path] = append(b.pending[path], change)
}

// AddChanges appends changes for path in order.
func (b *Batch) AddChanges(path string, changes ...Change) {
	if len(changes) == 0 {
		return
	}
	b.pending[path] = append(b.pending[path], changes...)
}

// Pending returns the changes queued for path, in insertion order.
func (b *Batch) Pending(path string) []Change {
	return slices.Clone(b.pending[path])
}

// Paths returns the paths with queued changes, sorted.
func (b *Batch) Paths() []string {
	paths := make([]string, 0, len(b.pending))
	for path, changes := range b.pending {
		if len(changes) > 0 {
			paths = append(paths, path)
		}
	}
	slices.Sort(paths)
	return paths
}

// Len returns the total number of queued changes.
func (b *Batch) Len() int {
	total := 0
	for _, changes := range b.pending {
		total += len(changes)
	}
	return total
}

// Clear drops all queued changes.
func (b *Batch) Clear() {
	clear(b.pending)
}

// FlushResult reports the outcome of a Flush.
type FlushResult struct {
	// Changed lists paths whose content was rewritten, sorted.
	Changed []string

	// Applied maps each changed path to the number of changes applied.
	Applied map[string]int

	// Errors maps paths that could not be flushed to their error.
	Errors map[string]error
}

// Err joins all per-path errors, or returns nil.
func (r *FlushResult) Err() error {
	if r == nil || len(r.Errors) == 0 {
		return nil
	}
	paths := make([]string, 0, len(r.Errors))
	for path := range r.Errors {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	errs := make([]error, 0, len(paths))
	for _, path := range paths {
		errs = append(errs, r.Errors[path])
	}
	return errors.Join(errs...)
}

// Flush applies every queued change to the store, path by path in sorted
// order, and clears the batch. A failure on one path is recorded and leaves
// that file untouched; the remaining paths are still flushed.
func (b *Batch) Flush(ctx context.Context, store Store) *FlushResult {
	result := &FlushResult{
		Applied: make(map[string]int),
		Errors:  make(map[string]error),
	}
	defer b.Clear()

	for _, path := range b.Paths() {
		if err := ctx.Err(); err != nil {
			result.Errors[path] = err
			continue
		}

		changed, err := flushPath(ctx, store, path, b.pending[path])
		if err != nil {
			result.Errors[path] = err
			continue
		}
		if changed {
			result.Changed = append(result.Changed, path)
			result.Applied[path] = len(b.pending[path])
		}
	}

	return result
}

func flushPath(ctx context.Context, store Store, path string, changes []Change) (bool, error) {
	content, err := store.Read(ctx, path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	updated, err := ApplyChanges(content, changes)
	if err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			conflict.Path = path
			return false, conflict
		}
		return false, fmt.Errorf("%s: %w", path, err)
	}

	if bytes.Equal(content, updated) {
		return false, nil
	}

	if err := store.Overwrite(ctx, path, updated); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}
