// Package fsutil provides the file safety primitives ngmigrate writes
// through: snapshots for detecting external edits, atomic replacement and
// sidecar backups that the restore command can roll back from.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"time"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrModifiedExternally indicates the file changed on disk after it was
	// read for migration.
	ErrModifiedExternally = errors.New("file modified outside ngmigrate")
)

// Snapshot records the state of a file when it was read, so a later write
// can tell whether something else touched it in between.
type Snapshot struct {
	Path    string
	Mode    os.FileMode
	ModTime time.Time
	Size    int64
	Hash    [32]byte
}

// ReadFile reads a file and returns its content with a snapshot of its
// state.
func ReadFile(ctx context.Context, path string) ([]byte, *Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, classify(path, err)
	}
	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, classify(path, err)
	}

	return content, &Snapshot{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}, nil
}

// Verify returns ErrModifiedExternally if the file no longer matches the
// snapshot. Size and modification time are compared first; the content hash
// settles the remaining cases.
func (s *Snapshot) Verify(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("verify %s: %w", s.Path, err)
	}

	stat, err := os.Stat(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s was removed", ErrModifiedExternally, s.Path)
		}
		return fmt.Errorf("stat %s: %w", s.Path, err)
	}

	if stat.Size() != s.Size {
		return fmt.Errorf("%w: %s", ErrModifiedExternally, s.Path)
	}
	if stat.ModTime().Equal(s.ModTime) {
		return nil
	}

	content, err := os.ReadFile(s.Path)
	if err != nil {
		return classify(s.Path, err)
	}
	if sha256.Sum256(content) != s.Hash {
		return fmt.Errorf("%w: %s", ErrModifiedExternally, s.Path)
	}
	return nil
}

func classify(path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}
}
