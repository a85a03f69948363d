// Package runner discovers the files of an Angular project and runs the
// migrations it needs.
package runner

import (
	"github.com/yaklabco/ngmigrate/pkg/config"
)

// Options controls a migration run.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the working directory.
	Paths []string

	// WorkingDir is the project root. Relative Paths, ignore globs and
	// package.json are resolved against it. If empty, the current process
	// working directory is used.
	WorkingDir string

	// ExcludeGlobs are glob patterns used to skip files or directories, in
	// addition to the config's ignore list.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Config is the resolved configuration for this run. Nil means defaults.
	Config *config.Config
}

// skippedDirs are never descended into.
//
//nolint:gochecknoglobals // Read-only lookup table.
var skippedDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// effectiveConfig returns the config, defaulting if nil.
func (o Options) effectiveConfig() *config.Config {
	if o.Config == nil {
		return config.NewConfig()
	}
	return o.Config
}

// excludeGlobs merges the config's ignore list with ExcludeGlobs.
func (o Options) excludeGlobs() []string {
	globs := append([]string(nil), o.effectiveConfig().Ignore...)
	return append(globs, o.ExcludeGlobs...)
}
