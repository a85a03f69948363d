package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ngmigrate/internal/logging"
	"github.com/yaklabco/ngmigrate/pkg/migrate"
)

const formatJSON = "json"

// migrationInfo represents a migration in JSON output.
type migrationInfo struct {
	Version     string      `json:"version"`
	Description string      `json:"description"`
	Stages      []stageInfo `json:"stages"`
}

// stageInfo represents a stage in JSON output.
type stageInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
}

func newMigrationsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "migrations",
		Short: "List the known migrations and their stages",
		Long: `List every built-in migration in version order, with the stages it runs.
Stage IDs can be passed to "update --disable" or listed under "disable" in
the configuration file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			migrations := migrate.DefaultRegistry.Migrations()

			if format == formatJSON {
				return outputMigrationsJSON(cmd.OutOrStdout(), migrations)
			}

			logger := logging.NewInteractive()
			if len(migrations) == 0 {
				logger.Info("no migrations registered")
				return nil
			}

			for _, m := range migrations {
				logger.Info(m.Version,
					logging.FieldStages, len(m.Stages),
					logging.FieldDescription, m.Description,
				)
				for _, stage := range m.Stages {
					logger.Info("  "+stage.Rule.ID(),
						logging.FieldKind, stage.Rule.Kind(),
						logging.FieldDescription, stage.Rule.Description(),
					)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

// outputMigrationsJSON writes migrations as a JSON array.
func outputMigrationsJSON(w io.Writer, migrations []*migrate.Migration) error {
	infos := make([]migrationInfo, 0, len(migrations))
	for _, m := range migrations {
		info := migrationInfo{
			Version:     m.Version,
			Description: m.Description,
			Stages:      make([]stageInfo, 0, len(m.Stages)),
		}
		for _, stage := range m.Stages {
			info.Stages = append(info.Stages, stageInfo{
				ID:          stage.Rule.ID(),
				Name:        stage.Rule.Name(),
				Description: stage.Rule.Description(),
				Kind:        stage.Rule.Kind().String(),
			})
		}
		infos = append(infos, info)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding migrations: %w", err)
	}
	return nil
}
