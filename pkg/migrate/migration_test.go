package migrate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ngmigrate/pkg/migrate"
	"github.com/yaklabco/ngmigrate/pkg/workspace"
)

func noopRule(id string, kind workspace.Kind) migrate.Rule {
	return migrate.RuleFunc(
		migrate.NewBaseRule(id, id, "does nothing", kind),
		func(*migrate.RuleContext) error { return nil },
	)
}

func TestCanonicalVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "12", want: "v12.0.0"},
		{input: "12.0", want: "v12.0.0"},
		{input: "12.0.0", want: "v12.0.0"},
		{input: "v12.1.3", want: "v12.1.3"},
		{input: " 11.1.0 ", want: "v11.1.0"},
		{input: "", wantErr: true},
		{input: "twelve", wantErr: true},
		{input: "12.x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := migrate.CanonicalVersion(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, migrate.ErrInvalidVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompareVersions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, migrate.CompareVersions("12", "v12.0.0"))
	assert.Equal(t, -1, migrate.CompareVersions("11.1", "12"))
	assert.Equal(t, 1, migrate.CompareVersions("12.0.1", "12"))
	assert.Equal(t, -1, migrate.CompareVersions("bogus", "1"))
}

func TestNewMigration(t *testing.T) {
	t.Parallel()

	m, err := migrate.NewMigration("12", "tabs rework",
		migrate.Stage{Rule: noopRule("a", workspace.KindTemplate), Group: "tabs"},
		migrate.Stage{Rule: noopRule("b", workspace.KindStyle)},
	)
	require.NoError(t, err)
	assert.Equal(t, "v12.0.0", m.Version)
	assert.Equal(t, []string{"a", "b"}, m.StageIDs())

	_, err = migrate.NewMigration("next", "")
	require.ErrorIs(t, err, migrate.ErrInvalidVersion)
}
