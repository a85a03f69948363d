package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/ngmigrate/pkg/config"
	"github.com/yaklabco/ngmigrate/pkg/fsutil"
	"github.com/yaklabco/ngmigrate/pkg/migrate"
	"github.com/yaklabco/ngmigrate/pkg/workspace"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "backups.mode").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown stage IDs).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

func (r *ValidationResult) errorf(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warnf(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a configuration for errors and warnings. Stage IDs are
// checked against migrate.DefaultRegistry.
func Validate(cfg *config.Config) *ValidationResult {
	return ValidateWithRegistry(cfg, migrate.DefaultRegistry)
}

// ValidateWithRegistry is Validate against an explicit migration registry.
func ValidateWithRegistry(cfg *config.Config, registry *migrate.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.errorf("format", cfg.Format, "invalid format %q; must be one of: text, json, diff, summary", cfg.Format)
	}

	if cfg.Backups.Mode != "" && !IsValidBackupMode(cfg.Backups.Mode) {
		result.errorf("backups.mode", cfg.Backups.Mode, "invalid backup mode %q; must be one of: sidecar, none", cfg.Backups.Mode)
	}

	validateVersions(cfg, result)
	validateStages(cfg, registry, result)
	validateIgnorePatterns(cfg, result)
	validateExtensions(cfg, result)

	return result
}

// validateVersions checks that from and to are versions and in order.
func validateVersions(cfg *config.Config, result *ValidationResult) {
	from, fromErr := checkVersion("from", cfg.From, result)
	to, toErr := checkVersion("to", cfg.To, result)
	if fromErr || toErr || from == "" || to == "" {
		return
	}
	if migrate.CompareVersions(from, to) > 0 {
		result.errorf("from", cfg.From, "from %s is newer than to %s", cfg.From, cfg.To)
	}
}

func checkVersion(field, value string, result *ValidationResult) (string, bool) {
	if value == "" {
		return "", false
	}
	canonical, err := migrate.CanonicalVersion(value)
	if err != nil {
		result.errorf(field, value, "%v", err)
		return "", true
	}
	return canonical, false
}

// validateStages warns about disabled stage IDs no migration defines.
func validateStages(cfg *config.Config, registry *migrate.Registry, result *ValidationResult) {
	if registry == nil {
		return
	}

	known := make(map[string]bool)
	for _, id := range registry.StageIDs() {
		known[id] = true
	}
	for i, id := range cfg.Disable {
		if !known[id] {
			result.warnf(fmt.Sprintf("disable[%d]", i), id, "unknown stage %q; it will be ignored", id)
		}
	}
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		// filepath.Match returns an error only for malformed patterns
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.errorf(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}
}

// validateExtensions checks extension override keys and values.
func validateExtensions(cfg *config.Config, result *ValidationResult) {
	for name, exts := range cfg.Extensions {
		field := "extensions." + name
		if _, err := workspace.ParseKind(strings.ToLower(name)); err != nil {
			result.errorf(field, name, "%v; must be one of: template, style, source", err)
			continue
		}
		for _, ext := range exts {
			if strings.TrimPrefix(ext, ".") == "" || strings.ContainsAny(ext, `/\`) {
				result.errorf(field, ext, "invalid extension %q", ext)
			}
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return f.IsValid()
}

// IsValidBackupMode returns true if the backup mode is valid.
func IsValidBackupMode(mode string) bool {
	switch fsutil.BackupMode(mode) {
	case fsutil.BackupModeSidecar, fsutil.BackupModeNone:
		return true
	default:
		return false
	}
}
