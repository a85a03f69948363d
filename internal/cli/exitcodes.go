package cli

import (
	"errors"

	"github.com/yaklabco/ngmigrate/pkg/runner"
)

// Exit codes for ngmigrate.
const (
	// ExitSuccess indicates the run completed and every file migrated.
	ExitSuccess = 0

	// ExitMigrationIncomplete indicates at least one file could not be migrated.
	ExitMigrationIncomplete = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

var (
	// ErrMigrationIncomplete is returned when some files failed to migrate.
	ErrMigrationIncomplete = errors.New("migration incomplete")

	errConfig       = errors.New("failed to load configuration")
	errInvalidUsage = errors.New("invalid usage")
)

// ExitCodeFromResult determines the exit code of a finished run.
func ExitCodeFromResult(result *runner.Result) int {
	if result.HasFailures() {
		return ExitMigrationIncomplete
	}
	return ExitSuccess
}

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrMigrationIncomplete):
		return ExitMigrationIncomplete
	case errors.Is(err, errConfig):
		return ExitConfigError
	case errors.Is(err, errInvalidUsage):
		return ExitInvalidUsage
	default:
		return ExitInternalError
	}
}
