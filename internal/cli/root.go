// Package cli provides the Cobra command structure for ngmigrate.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ngmigrate/internal/logging"

	// Register the built-in migrations.
	_ "github.com/yaklabco/ngmigrate/pkg/migrations/v12"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root ngmigrate command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "ngmigrate",
		Short: "Upgrade Ignite UI for Angular projects across breaking releases",
		Long: `ngmigrate rewrites the templates, stylesheets and TypeScript sources of an
Angular project so that they follow the API of a newer igniteui-angular
release.

Each release's migration runs as a sequence of stages. Every stage edits
the files it understands in place; a file that cannot be parsed or whose
edits conflict is reported and left alone while the rest of the project is
migrated. Dry-run mode shows the changes as diffs, and a backup of every
rewritten file is kept until it is restored or removed.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newUpdateCommand())
	rootCmd.AddCommand(newMigrationsCommand())
	rootCmd.AddCommand(newRestoreCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
