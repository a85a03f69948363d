// Package config defines core configuration types for ngmigrate.
// These types are pure data structures; discovery, merging and validation
// live in internal/configloader.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yaklabco/ngmigrate/pkg/fsutil"
	"github.com/yaklabco/ngmigrate/pkg/workspace"
)

// BackupsConfig controls backup behavior when migrating files.
type BackupsConfig struct {
	// Enabled is a pointer so that a config file can turn backups off
	// without being mistaken for an unset value.
	Enabled *bool  `yaml:"enabled,omitempty"`
	Mode    string `yaml:"mode,omitempty"` // "sidecar" or "none"
}

// OutputFormat specifies how results are reported.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatDiff    OutputFormat = "diff"
	FormatSummary OutputFormat = "summary"
)

// Formats lists every output format.
func Formats() []OutputFormat {
	return []OutputFormat{FormatText, FormatJSON, FormatDiff, FormatSummary}
}

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	return slices.Contains(Formats(), f)
}

// Config is the root configuration structure for ngmigrate.
type Config struct {
	// From is the library version the project currently uses. Empty means
	// detect it from package.json.
	From string `yaml:"from,omitempty"`

	// To is the version to migrate to. Empty means the latest known.
	To string `yaml:"to,omitempty"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore,omitempty"`

	// Disable lists migration stage IDs to skip.
	Disable []string `yaml:"disable,omitempty"`

	// Backups configures backup behavior.
	Backups BackupsConfig `yaml:"backups,omitempty"`

	// Extensions overrides the file extensions of each kind, keyed by kind
	// name ("template", "style", "source").
	Extensions map[string][]string `yaml:"extensions,omitempty"`

	// CLI-level options (not persisted to config files).

	// DryRun shows the changes without writing them.
	DryRun bool `yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// NoBackups disables backup creation.
	NoBackups bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	enabled := true
	return &Config{
		Backups: BackupsConfig{
			Enabled: &enabled,
			Mode:    string(fsutil.BackupModeSidecar),
		},
		Format: FormatText,
	}
}

// BackupConfig resolves the backup settings for a run.
func (c *Config) BackupConfig() fsutil.BackupConfig {
	cfg := fsutil.DefaultBackupConfig()
	if c == nil {
		return cfg
	}
	if c.Backups.Enabled != nil {
		cfg.Enabled = *c.Backups.Enabled
	}
	if c.Backups.Mode != "" {
		cfg.Mode = fsutil.BackupMode(c.Backups.Mode)
	}
	if c.NoBackups || c.DryRun {
		cfg.Enabled = false
	}
	return cfg
}

// KindExtensions converts Extensions to a per-kind map. It returns nil
// when no overrides are configured; kinds without an override keep their
// defaults in the classifier.
func (c *Config) KindExtensions(defaults map[workspace.Kind][]string) (map[workspace.Kind][]string, error) {
	if c == nil || len(c.Extensions) == 0 {
		return nil, nil
	}

	result := make(map[workspace.Kind][]string, len(defaults))
	for kind, exts := range defaults {
		result[kind] = slices.Clone(exts)
	}
	for name, exts := range c.Extensions {
		kind, err := workspace.ParseKind(strings.ToLower(name))
		if err != nil {
			return nil, fmt.Errorf("extensions: %w", err)
		}
		result[kind] = slices.Clone(exts)
	}
	return result, nil
}
