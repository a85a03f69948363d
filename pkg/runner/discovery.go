package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/ngmigrate/pkg/langdetect"
	"github.com/yaklabco/ngmigrate/pkg/workspace"
)

// discoverer carries the per-run state of Discover.
type discoverer struct {
	workDir    string
	opts       Options
	excludes   []string
	classifier *langdetect.Classifier
	seen       map[string]struct{}
	files      *workspace.FileSet
}

// Discover finds the templates, style sheets and TypeScript sources under
// opts.Paths. Paths in the returned set are absolute; each kind's list is
// sorted by FileSet.Files.
func Discover(ctx context.Context, opts Options) (*workspace.FileSet, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	extensions, err := opts.effectiveConfig().KindExtensions(langdetect.DefaultExtensions())
	if err != nil {
		return nil, err
	}

	d := &discoverer{
		workDir:    workDir,
		opts:       opts,
		excludes:   opts.excludeGlobs(),
		classifier: langdetect.NewClassifier(extensions),
		seen:       make(map[string]struct{}),
		files:      &workspace.FileSet{},
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			if err := d.walk(ctx, absPath); err != nil {
				return nil, err
			}
			continue
		}
		if err := d.consider(absPath); err != nil {
			return nil, err
		}
	}

	return d.files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// walk recursively walks a directory and records matching files.
func (d *discoverer) walk(ctx context.Context, root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if path == root {
				return nil
			}
			name := entry.Name()
			if strings.HasPrefix(name, ".") || skippedDirs[name] || matchesAny(d.rel(path), d.excludes) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				return nil //nolint:nilerr // Intentionally skip broken symlinks
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil //nolint:nilerr // Intentionally skip inaccessible symlink targets
			}
			if info.IsDir() {
				if !d.opts.FollowSymlinks {
					return nil
				}
				// Walk the target; WalkDir uses Lstat on its root.
				return d.walk(ctx, realPath)
			}
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		return d.consider(path)
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// consider classifies path and records it when it is a migratable file.
func (d *discoverer) consider(path string) error {
	if _, ok := d.seen[path]; ok {
		return nil
	}
	rel := d.rel(path)
	if matchesAny(rel, d.excludes) {
		return nil
	}
	if _, ok := d.classifier.KindByExtension(path); !ok {
		return nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	kind, ok := d.classifier.Classify(rel, content)
	if !ok {
		return nil
	}
	d.seen[path] = struct{}{}
	d.files.Add(kind, path)
	return nil
}

// rel returns path relative to the working directory for pattern matching.
func (d *discoverer) rel(path string) string {
	relPath, err := filepath.Rel(d.workDir, path)
	if err != nil {
		return path
	}
	return relPath
}

// matchesAny checks if the path matches any of the patterns.
func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a path against a glob pattern.
// It supports patterns like "*.spec.ts", "src/legacy/**", "**/generated", etc.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchDoubleStarPattern(path, pattern)
	}

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}

	// Also try matching against just the filename.
	matched, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && matched
}

// matchDoubleStarPattern handles ** glob patterns:
//   - "**/foo" matches foo anywhere
//   - "foo/**" matches anything under foo
//   - "a/**/b" matches b somewhere under a
func matchDoubleStarPattern(path, pattern string) bool {
	prefix, suffix, _ := strings.Cut(pattern, "**")
	prefix = strings.TrimSuffix(prefix, "/")
	suffix = strings.TrimPrefix(suffix, "/")

	if prefix != "" && path != prefix && !strings.HasPrefix(path, prefix+"/") {
		return false
	}
	if suffix == "" {
		return true
	}

	rest := strings.TrimPrefix(strings.TrimPrefix(path, prefix), "/")
	segments := strings.Split(rest, "/")
	for i := range segments {
		tail := strings.Join(segments[i:], "/")
		if matched, err := filepath.Match(suffix, tail); err == nil && matched {
			return true
		}
		// "**/name" also matches a directory name with anything below it.
		if matched, err := filepath.Match(suffix, segments[i]); err == nil && matched && !strings.Contains(suffix, "/") {
			return true
		}
	}
	return false
}
