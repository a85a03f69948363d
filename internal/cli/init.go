package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ngmigrate/internal/configloader"
	"github.com/yaklabco/ngmigrate/internal/logging"
	"github.com/yaklabco/ngmigrate/pkg/config"
	"github.com/yaklabco/ngmigrate/pkg/migrate"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new ngmigrate configuration file",
		Long: `Create a new .ngmigrate.yml configuration file in the current directory.
Every known migration stage is listed in a comment so that stages can be
disabled by name.

Examples:
  ngmigrate init                     Create .ngmigrate.yml
  ngmigrate init --force             Overwrite an existing file
  ngmigrate init --output custom.yml Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", configloader.ProjectConfigFiles[0], "Output file path")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	var stages []config.StageInfo
	for _, m := range migrate.DefaultRegistry.Migrations() {
		for _, stage := range m.Stages {
			stages = append(stages, config.StageInfo{
				Version:     m.Version,
				ID:          stage.Rule.ID(),
				Description: stage.Rule.Description(),
			})
		}
	}

	if err := configloader.WriteConfig(absPath, config.GenerateTemplate(stages), flags.force); err != nil {
		return err
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("run 'ngmigrate migrations' to see what each stage does")

	return nil
}
