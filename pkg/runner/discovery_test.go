package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ngmigrate/pkg/config"
	"github.com/yaklabco/ngmigrate/pkg/runner"
	"github.com/yaklabco/ngmigrate/pkg/workspace"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		writeFile(t, filepath.Join(dir, filepath.FromSlash(name)), content)
	}
}

func abs(dir string, names ...string) []string {
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, filepath.FromSlash(name))
	}
	return paths
}

func TestDiscover_ProjectTree(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"src/app/app.component.html":       "<igx-tabs></igx-tabs>\n",
		"src/app/app.component.scss":       "igx-tab-item { color: red; }\n",
		"src/app/app.component.ts":         "export class AppComponent {}\n",
		"src/app/app.component.spec.ts":    "describe('app', () => {});\n",
		"src/app/tabs/tabs.component.html": "<igx-bottom-nav></igx-bottom-nav>\n",
		"src/legacy/old.component.html":    "<div></div>\n",
		"src/.hidden.html":                 "<div></div>\n",
		"node_modules/lib/tabs.html":       "<div></div>\n",
		"dist/app/index.html":              "<div></div>\n",
		".angular/cache/a.html":            "<div></div>\n",
		"README.md":                        "# app\n",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"**/*.spec.ts"},
		Config:       &config.Config{Ignore: []string{"src/legacy/**"}},
	})
	require.NoError(t, err)

	assert.Equal(t, abs(dir, "src/app/app.component.html", "src/app/tabs/tabs.component.html"),
		files.Files(workspace.KindTemplate))
	assert.Equal(t, abs(dir, "src/app/app.component.scss"), files.Files(workspace.KindStyle))
	assert.Equal(t, abs(dir, "src/app/app.component.ts"), files.Files(workspace.KindSource))
	assert.Equal(t, 4, files.Len())
}

func TestDiscover_ExplicitPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"src/a.component.html": "<div></div>\n",
		"src/b.component.html": "<div></div>\n",
		"notes.txt":            "notes\n",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"src/b.component.html", "src", filepath.Join(dir, "notes.txt")},
	})
	require.NoError(t, err)

	assert.Equal(t, abs(dir, "src/a.component.html", "src/b.component.html"), files.Files(workspace.KindTemplate),
		"files named twice are listed once")
	assert.Equal(t, 2, files.Len())
}

func TestDiscover_ExtensionOverride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.htm":  "<div></div>\n",
		"b.html": "<div></div>\n",
		"c.scss": "a { color: red; }\n",
	})

	cfg := config.NewConfig()
	cfg.Extensions = map[string][]string{"template": {".htm"}}

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir, Config: cfg})
	require.NoError(t, err)

	assert.Equal(t, abs(dir, "a.htm"), files.Files(workspace.KindTemplate))
	assert.Equal(t, abs(dir, "c.scss"), files.Files(workspace.KindStyle), "other kinds keep their defaults")
}

func TestDiscover_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir, Paths: []string{"missing"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")

	_, err = runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     &config.Config{Extensions: map[string][]string{"markup": {".html"}}},
	})
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = runner.Discover(ctx, runner.Options{WorkingDir: dir})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDiscover_Symlinks(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeFile(t, filepath.Join(base, "shared", "shared.component.html"), "<div></div>\n")
	writeFile(t, filepath.Join(base, "project", "app.component.html"), "<div></div>\n")
	if err := os.Symlink(filepath.Join(base, "shared"), filepath.Join(base, "project", "shared")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	opts := runner.Options{WorkingDir: base, Paths: []string{"project"}}
	files, err := runner.Discover(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 1, files.Len(), "directory symlinks are not followed by default")

	opts.FollowSymlinks = true
	files, err = runner.Discover(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 2, files.Len())
}
