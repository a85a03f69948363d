package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ngmigrate/internal/cli"
)

func TestHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "root",
			args: []string{"--help"},
			want: []string{"Usage:", "Commands:", "update", "restore", "Flags:", "--debug"},
		},
		{
			name: "update",
			args: []string{"update", "--help"},
			want: []string{"ngmigrate update [paths...]", "--dry-run", "--disable strings", "stage IDs to skip", "Global Flags:", "--config"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := cli.NewRootCommand(testInfo())
			var stdout bytes.Buffer
			cmd.SetOut(&stdout)
			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())

			for _, want := range tt.want {
				assert.Contains(t, stdout.String(), want)
			}
		})
	}
}
