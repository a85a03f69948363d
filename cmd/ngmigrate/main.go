// Package main is the entry point for the ngmigrate CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/ngmigrate/internal/cli"
	"github.com/yaklabco/ngmigrate/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	// The report already lists the failed files.
	if err != nil && !errors.Is(err, cli.ErrMigrationIncomplete) {
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCode(err)
}
