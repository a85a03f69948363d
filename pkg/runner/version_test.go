package runner_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ngmigrate/pkg/runner"
)

func TestDetectVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		manifest string
		want     string
		wantErr  bool
	}{
		{name: "caret", manifest: `{"dependencies": {"igniteui-angular": "^11.1.4"}}`, want: "11.1.4"},
		{name: "exact", manifest: `{"dependencies": {"igniteui-angular": "11.0.0"}}`, want: "11.0.0"},
		{name: "lower bound", manifest: `{"dependencies": {"igniteui-angular": ">=10.2.0"}}`, want: "10.2.0"},
		{name: "prerelease", manifest: `{"dependencies": {"igniteui-angular": "~12.0.0-rc.1"}}`, want: "12.0.0-rc.1"},
		{name: "dev dependency", manifest: `{"devDependencies": {"igniteui-angular": "^11.0.0"}}`, want: "11.0.0"},
		{name: "peer dependency", manifest: `{"peerDependencies": {"igniteui-angular": "11.x"}}`, wantErr: true},
		{name: "compound range", manifest: `{"dependencies": {"igniteui-angular": ">=10 <12"}}`, wantErr: true},
		{name: "git url", manifest: `{"dependencies": {"igniteui-angular": "github:IgniteUI/igniteui-angular"}}`, wantErr: true},
		{name: "invalid json", manifest: `{"dependencies":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, "package.json"), tt.manifest)

			got, err := runner.DetectVersion(dir)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
