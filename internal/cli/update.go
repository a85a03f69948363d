package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ngmigrate/internal/configloader"
	"github.com/yaklabco/ngmigrate/internal/logging"
	"github.com/yaklabco/ngmigrate/pkg/config"
	"github.com/yaklabco/ngmigrate/pkg/reporter"
	"github.com/yaklabco/ngmigrate/pkg/runner"
)

type updateFlags struct {
	format  string
	ignore  []string
	disable []string
	compact bool
}

func newUpdateCommand() *cobra.Command {
	var cfg config.Config
	flags := &updateFlags{}

	cmd := &cobra.Command{
		Use:   "update [paths...]",
		Short: "Migrate a project to a newer igniteui-angular release",
		Long:  updateLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, args, &cfg, flags)
		},
	}

	addUpdateFlags(cmd, &cfg, flags)

	return cmd
}

const updateLongDescription = `Migrate the templates, stylesheets and sources of a project.

The current version is read from the igniteui-angular dependency in
package.json unless --from is given. Every migration after it, up to --to
or the latest known release, runs in order.

By default, the current directory is migrated. node_modules, dist and
hidden directories are skipped.

Examples:
  ngmigrate update                          # Migrate the current project
  ngmigrate update src/app                  # Migrate one directory
  ngmigrate update --dry-run                # Show the changes as diffs
  ngmigrate update --from 11.1 --to 12.0.0  # Pin the version range
  ngmigrate update --disable row-type       # Skip a stage
  ngmigrate update --format json            # Output as JSON for CI`

func runUpdate(cmd *cobra.Command, args []string, cfg *config.Config, flags *updateFlags) error {
	logger := logging.Default()

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidUsage, err)
	}

	// Only flags that were set reach the CLI layer.
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(format)
	}
	cfg.Ignore = flags.ignore
	cfg.Disable = flags.disable

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}
	logger.Debug("configuration loaded",
		logging.FieldFrom, finalCfg.From,
		logging.FieldTo, finalCfg.To,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldBackup, finalCfg.BackupConfig().Enabled,
	)

	runOpts := runner.Options{
		Paths:      args,
		WorkingDir: workDir,
		Config:     finalCfg,
	}

	logger.Debug("starting update run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
	)

	result, err := runner.New(nil).Run(logging.WithLogger(ctx, logger), runOpts)
	if errors.Is(err, runner.ErrNothingToDo) {
		logging.NewInteractive().Info("nothing to do", logging.FieldError, err)
		return nil
	}
	if err != nil && result == nil {
		return fmt.Errorf("update failed: %w", err)
	}

	colorMode, colorErr := cmd.Flags().GetString("color")
	if colorErr != nil {
		colorMode = "auto"
	}

	rep, repErr := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      reporter.Format(finalCfg.Format),
		Color:       colorMode,
		ShowSummary: true,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if repErr != nil {
		return fmt.Errorf("create reporter: %w", repErr)
	}

	if _, repErr := rep.Report(ctx, result); repErr != nil {
		logger.Error("report failed", logging.FieldError, repErr)
		return fmt.Errorf("report results: %w", repErr)
	}

	// A cancelled run still reports what it did before it stopped.
	if err != nil {
		return fmt.Errorf("update interrupted: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrMigrationIncomplete
	}
	return nil
}

func addUpdateFlags(cmd *cobra.Command, cfg *config.Config, flags *updateFlags) {
	cmd.Flags().StringVar(&cfg.From, "from", "", "version the project is on (default: read from package.json)")
	cmd.Flags().StringVar(&cfg.To, "to", "", "version to migrate to (default: latest)")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show the changes without writing them")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "do not back up rewritten files")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, diff, summary")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "stage IDs to skip")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
}
