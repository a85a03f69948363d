package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ngmigrate/internal/cli"
	"github.com/yaklabco/ngmigrate/pkg/fsutil"
	"github.com/yaklabco/ngmigrate/pkg/reporter"
)

const (
	tabsTemplate = "<igx-tabs type=\"fixed\">\n" +
		"  <igx-tabs-group label=\"Home\">Content</igx-tabs-group>\n" +
		"</igx-tabs>\n"
	tabsTemplatePath = "src/app/tabs.component.html"
)

// setupProject writes a project on igniteui-angular 11.1 into a fresh
// directory, makes it the working directory and isolates the run from any
// user configuration. Tests using it cannot run in parallel.
func setupProject(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	all := map[string]string{
		"package.json": `{"dependencies": {"igniteui-angular": "^11.1.0"}}`,
	}
	for name, content := range files {
		all[name] = content
	}
	for name, content := range all {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	t.Chdir(dir)
	return dir
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "test", Date: "test"})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
	require.NoError(t, err)
	return string(content)
}

func TestIntegration_Update(t *testing.T) {
	dir := setupProject(t, map[string]string{tabsTemplatePath: tabsTemplate})

	output, err := execute(t, "update", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, output, "Migrating from v11.1.0 to v12.0.0")
	assert.Contains(t, output, tabsTemplatePath)
	assert.Contains(t, output, "1 file migrated")

	migrated := readFile(t, dir, tabsTemplatePath)
	assert.Contains(t, migrated, `tabAlignment="justify"`)
	assert.Contains(t, migrated, "<igx-tab-header>")

	assert.Equal(t, tabsTemplate, readFile(t, dir, tabsTemplatePath+fsutil.BackupSuffix))
}

func TestIntegration_UpdateNoBackups(t *testing.T) {
	dir := setupProject(t, map[string]string{tabsTemplatePath: tabsTemplate})

	_, err := execute(t, "update", "--color", "never", "--no-backups")
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(dir, filepath.FromSlash(tabsTemplatePath+fsutil.BackupSuffix)))
}

func TestIntegration_DryRunDiff(t *testing.T) {
	dir := setupProject(t, map[string]string{tabsTemplatePath: tabsTemplate})

	output, err := execute(t, "update", "--color", "never", "--dry-run", "--format", "diff")
	require.NoError(t, err)

	assert.Contains(t, output, "diff --git a/"+tabsTemplatePath+" b/"+tabsTemplatePath)
	assert.Contains(t, output, "-<igx-tabs type=\"fixed\">")
	assert.Contains(t, output, "1 file changed")

	assert.Equal(t, tabsTemplate, readFile(t, dir, tabsTemplatePath), "dry run leaves files alone")
	assert.NoFileExists(t, filepath.Join(dir, filepath.FromSlash(tabsTemplatePath+fsutil.BackupSuffix)))
}

func TestIntegration_JSONFormat(t *testing.T) {
	setupProject(t, map[string]string{tabsTemplatePath: tabsTemplate})

	output, err := execute(t, "update", "--format", "json", "--dry-run")
	require.NoError(t, err)

	var result reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(output), &result))

	assert.Equal(t, "v11.1.0", result.From)
	assert.Equal(t, "v12.0.0", result.To)
	assert.True(t, result.DryRun)
	require.Len(t, result.Files, 1)
	assert.Equal(t, tabsTemplatePath, result.Files[0].Path)
	assert.Equal(t, 1, result.Summary.FilesModified)
}

func TestIntegration_DisableFromProjectConfig(t *testing.T) {
	dir := setupProject(t, map[string]string{
		tabsTemplatePath: tabsTemplate,
		".ngmigrate.yml": "disable:\n  - tabs-type-alignment\n",
	})

	_, err := execute(t, "update", "--color", "never")
	require.NoError(t, err)

	migrated := readFile(t, dir, tabsTemplatePath)
	assert.Contains(t, migrated, `type="fixed"`)
	assert.Contains(t, migrated, "<igx-tab-header>")
}

func TestIntegration_FailedFileIsReported(t *testing.T) {
	dir := setupProject(t, map[string]string{
		tabsTemplatePath:      tabsTemplate,
		"src/app/broken.html": "<div></span>\n",
	})

	output, err := execute(t, "update", "--color", "never")
	require.ErrorIs(t, err, cli.ErrMigrationIncomplete)
	assert.Equal(t, cli.ExitMigrationIncomplete, cli.ExitCode(err))

	assert.Contains(t, output, "src/app/broken.html")
	assert.Contains(t, output, "1 failed")
	assert.Equal(t, "<div></span>\n", readFile(t, dir, "src/app/broken.html"))
	assert.Contains(t, readFile(t, dir, tabsTemplatePath), "<igx-tab-header>")
}

func TestIntegration_NothingToDo(t *testing.T) {
	setupProject(t, map[string]string{tabsTemplatePath: tabsTemplate})

	output, err := execute(t, "update", "--from", "12.0.0")
	require.NoError(t, err)
	assert.Empty(t, output)
}

func TestIntegration_InvalidConfig(t *testing.T) {
	setupProject(t, map[string]string{".ngmigrate.yml": "backups:\n  mode: cloud\n"})

	_, err := execute(t, "update")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestIntegration_InvalidFormat(t *testing.T) {
	setupProject(t, nil)

	_, err := execute(t, "update", "--format", "sarif")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}

func TestIntegration_Restore(t *testing.T) {
	dir := setupProject(t, map[string]string{tabsTemplatePath: tabsTemplate})

	_, err := execute(t, "update", "--color", "never")
	require.NoError(t, err)
	require.NotEqual(t, tabsTemplate, readFile(t, dir, tabsTemplatePath))

	listed, err := execute(t, "restore", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, listed, tabsTemplatePath)

	_, err = execute(t, "restore", "--yes")
	require.NoError(t, err)

	assert.Equal(t, tabsTemplate, readFile(t, dir, tabsTemplatePath))
	assert.NoFileExists(t, filepath.Join(dir, filepath.FromSlash(tabsTemplatePath+fsutil.BackupSuffix)))
}

func TestIntegration_RestoreNeedsConfirmation(t *testing.T) {
	dir := setupProject(t, map[string]string{tabsTemplatePath: tabsTemplate})

	_, err := execute(t, "update", "--color", "never")
	require.NoError(t, err)

	_, err = execute(t, "restore")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
	assert.NotEqual(t, tabsTemplate, readFile(t, dir, tabsTemplatePath))
}

func TestIntegration_Init(t *testing.T) {
	dir := setupProject(t, nil)

	_, err := execute(t, "init")
	require.NoError(t, err)

	content := readFile(t, dir, ".ngmigrate.yml")
	assert.Contains(t, content, "tabs-type-alignment")
	assert.Contains(t, content, "row-type-imports")

	_, err = execute(t, "init")
	require.Error(t, err, "existing file is kept without --force")

	_, err = execute(t, "init", "--force")
	require.NoError(t, err)

	// The generated file loads cleanly.
	_, err = execute(t, "update", "--dry-run", "--color", "never")
	require.NoError(t, err)
}
