package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ngmigrate/pkg/fsutil"
)

func TestBackupPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mode fsutil.BackupMode
		want string
	}{
		{name: "sidecar", mode: fsutil.BackupModeSidecar, want: "/src/app.html.ngmigrate.bak"},
		{name: "none", mode: fsutil.BackupModeNone, want: ""},
		{name: "unknown defaults to sidecar", mode: fsutil.BackupMode("zip"), want: "/src/app.html.ngmigrate.bak"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fsutil.BackupPath("/src/app.html", tt.mode))
		})
	}
}

func TestDefaultBackupConfig(t *testing.T) {
	t.Parallel()

	cfg := fsutil.DefaultBackupConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, fsutil.BackupModeSidecar, cfg.Mode)
}

func TestCreateAndRestoreBackup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "app.component.html")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	cfg := fsutil.DefaultBackupConfig()

	created, err := fsutil.CreateBackup(ctx, path, cfg)
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, fsutil.BackupExists(path, cfg.Mode))

	require.NoError(t, os.WriteFile(path, []byte("migrated once"), 0o644))

	created, err = fsutil.CreateBackup(ctx, path, cfg)
	require.NoError(t, err)
	assert.False(t, created, "an existing backup is kept")

	backup, err := os.ReadFile(fsutil.BackupPath(path, cfg.Mode))
	require.NoError(t, err)
	assert.Equal(t, "original", string(backup))

	restored, err := fsutil.RestoreBackup(ctx, path, cfg.Mode)
	require.NoError(t, err)
	assert.True(t, restored)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))
	assert.False(t, fsutil.BackupExists(path, cfg.Mode), "restore removes the backup")

	restored, err = fsutil.RestoreBackup(ctx, path, cfg.Mode)
	require.NoError(t, err)
	assert.False(t, restored)
}

func TestCreateBackup_Disabled(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a.html")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	for _, cfg := range []fsutil.BackupConfig{
		{Enabled: false, Mode: fsutil.BackupModeSidecar},
		{Enabled: true, Mode: fsutil.BackupModeNone},
	} {
		created, err := fsutil.CreateBackup(context.Background(), path, cfg)
		require.NoError(t, err)
		assert.False(t, created)
	}
	assert.False(t, fsutil.BackupExists(path, fsutil.BackupModeSidecar))
}

func TestRemoveBackup(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a.html")
	require.NoError(t, os.WriteFile(path+fsutil.BackupSuffix, []byte("x"), 0o644))

	removed, err := fsutil.RemoveBackup(path, fsutil.BackupModeSidecar)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = fsutil.RemoveBackup(path, fsutil.BackupModeSidecar)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestFindBackups(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	files := []string{
		"src/app/b.component.html" + fsutil.BackupSuffix,
		"src/app/a.component.html" + fsutil.BackupSuffix,
		"src/app/a.component.html",
		"src/styles.scss" + fsutil.BackupSuffix,
		"node_modules/lib/x.html" + fsutil.BackupSuffix,
	}
	for _, name := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}

	got, err := fsutil.FindBackups(context.Background(), root, "node_modules")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "src/app/a.component.html"),
		filepath.Join(root, "src/app/b.component.html"),
		filepath.Join(root, "src/styles.scss"),
	}, got)
}
