package workspace

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/yaklabco/ngmigrate/pkg/fix"
	"github.com/yaklabco/ngmigrate/pkg/fsutil"
)

// DiskOptions configures a Disk tree.
type DiskOptions struct {
	// DryRun keeps every write in memory. Later reads see the pending
	// content, so chained stages behave exactly as in a real run.
	DryRun bool

	// Backup controls sidecar backups taken before a file's first write.
	Backup fsutil.BackupConfig
}

// Disk is a Tree backed by the file system.
//
// Writes go through fsutil.WriteAtomic after checking that the file was not
// changed by someone else since Disk last read or wrote it.
type Disk struct {
	opts DiskOptions

	original  map[string][]byte
	current   map[string][]byte
	snapshots map[string]*fsutil.Snapshot
	backups   []string
}

// NewDisk creates a Disk tree.
func NewDisk(opts DiskOptions) *Disk {
	return &Disk{
		opts:      opts,
		original:  make(map[string][]byte),
		current:   make(map[string][]byte),
		snapshots: make(map[string]*fsutil.Snapshot),
	}
}

// DryRun reports whether writes are kept in memory.
func (d *Disk) DryRun() bool {
	return d.opts.DryRun
}

// Read returns the file's content. In dry-run mode pending writes are
// returned instead of the file on disk.
func (d *Disk) Read(ctx context.Context, path string) ([]byte, error) {
	if d.opts.DryRun {
		if content, ok := d.current[path]; ok {
			return bytes.Clone(content), nil
		}
	}

	content, snapshot, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	d.snapshots[path] = snapshot
	if _, seen := d.original[path]; !seen {
		d.original[path] = content
	}
	d.current[path] = content
	return bytes.Clone(content), nil
}

// Overwrite replaces the file's content.
func (d *Disk) Overwrite(ctx context.Context, path string, content []byte) error {
	if _, ok := d.snapshots[path]; !ok {
		// Populate the original content so diffs have a base.
		if _, err := d.Read(ctx, path); err != nil {
			return err
		}
	}

	if d.opts.DryRun {
		d.current[path] = bytes.Clone(content)
		return nil
	}

	snapshot := d.snapshots[path]
	if err := snapshot.Verify(ctx); err != nil {
		return err
	}

	created, err := fsutil.CreateBackup(ctx, path, d.opts.Backup)
	if err != nil {
		return err
	}
	if created {
		d.backups = append(d.backups, path)
	}

	if err := fsutil.WriteAtomic(ctx, path, content, snapshot.Mode); err != nil {
		return fmt.Errorf("overwrite %s: %w", path, err)
	}

	_, fresh, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return err
	}
	d.snapshots[path] = fresh
	d.current[path] = bytes.Clone(content)
	return nil
}

// Changed returns the sorted paths whose content differs from what was
// first read.
func (d *Disk) Changed() []string {
	var changed []string
	for _, path := range slices.Sorted(maps.Keys(d.current)) {
		if !bytes.Equal(d.original[path], d.current[path]) {
			changed = append(changed, path)
		}
	}
	return changed
}

// Diffs returns a unified diff for every changed file, sorted by path.
func (d *Disk) Diffs() []*fix.Diff {
	var diffs []*fix.Diff
	for _, path := range d.Changed() {
		if diff := fix.GenerateDiff(path, d.original[path], d.current[path]); diff != nil {
			diffs = append(diffs, diff)
		}
	}
	return diffs
}

// Sizes returns the original and current size of path in bytes.
func (d *Disk) Sizes(path string) (int, int) {
	return len(d.original[path]), len(d.current[path])
}

// Backups returns the paths a backup was created for, in creation order.
func (d *Disk) Backups() []string {
	return slices.Clone(d.backups)
}
