package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ngmigrate/internal/cli"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	require.NotNil(t, cmd)

	assert.Equal(t, "ngmigrate", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.True(t, cmd.SilenceUsage)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"update", "migrations", "restore", "init", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "subcommand %q", name)
		assert.Equal(t, name, subCmd.Name())
	}
}

func TestRootCommandHasGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "flag %q", name)
	}
}

func TestUpdateCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	update, _, err := cmd.Find([]string{"update"})
	require.NoError(t, err)

	for _, name := range []string{"from", "to", "dry-run", "format", "no-backups", "ignore", "disable"} {
		assert.NotNil(t, update.Flags().Lookup(name), "flag %q", name)
	}
}

func TestMigrationsCommand_JSON(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"migrations", "--format", "json"})
	require.NoError(t, cmd.Execute())

	var migrations []struct {
		Version string `json:"version"`
		Stages  []struct {
			ID   string `json:"id"`
			Kind string `json:"kind"`
		} `json:"stages"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &migrations))
	require.NotEmpty(t, migrations)

	last := migrations[len(migrations)-1]
	assert.Equal(t, "v12.0.0", last.Version)

	var ids []string
	for _, stage := range last.Stages {
		ids = append(ids, stage.ID)
	}
	assert.Contains(t, ids, "tabs-type-alignment")
	assert.Contains(t, ids, "row-type-imports")
	assert.Contains(t, ids, "igx-date-picker-inputs")
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: cli.ExitSuccess},
		{name: "incomplete", err: cli.ErrMigrationIncomplete, want: cli.ExitMigrationIncomplete},
		{name: "other", err: errors.New("boom"), want: cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}

func TestExitCodeFromResult_Nil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromResult(nil))
}
