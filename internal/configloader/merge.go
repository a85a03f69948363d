package configloader

import (
	"slices"

	"github.com/yaklabco/ngmigrate/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Maps: deep merge, with override's values taking precedence
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.From != "" {
		result.From = override.From
	}
	if override.To != "" {
		result.To = override.To
	}
	if override.Format != "" {
		result.Format = override.Format
	}

	// CLI-only switches can be turned on by a later layer but never off.
	if override.DryRun {
		result.DryRun = true
	}
	if override.NoBackups {
		result.NoBackups = true
	}

	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}
	if override.Backups.Enabled != nil {
		enabled := *override.Backups.Enabled
		result.Backups.Enabled = &enabled
	}

	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}
	if override.Disable != nil {
		result.Disable = slices.Clone(override.Disable)
	}

	result.Extensions = mergeExtensions(base.Extensions, override.Extensions)

	return result
}

// mergeExtensions merges per-kind extension overrides. A kind present in
// override replaces the kind's list in base.
func mergeExtensions(base, override map[string][]string) map[string][]string {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string][]string, len(base)+len(override))
	for kind, exts := range base {
		result[kind] = slices.Clone(exts)
	}
	for kind, exts := range override {
		result[kind] = slices.Clone(exts)
	}
	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
