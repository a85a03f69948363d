package workspace_test

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ngmigrate/pkg/workspace"
)

func TestKind(t *testing.T) {
	t.Parallel()

	for _, kind := range workspace.Kinds {
		parsed, err := workspace.ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := workspace.ParseKind("markdown")
	assert.Error(t, err)
	assert.Equal(t, "Kind(7)", workspace.Kind(7).String())
}

func TestFileSet(t *testing.T) {
	t.Parallel()

	var set workspace.FileSet
	set.Add(workspace.KindTemplate, "src/b.html")
	set.Add(workspace.KindTemplate, "src/a.html")
	set.Add(workspace.KindStyle, "src/styles.scss")
	set.Add(workspace.KindSource, "src/app.ts")

	assert.Equal(t, 4, set.Len())
	assert.Equal(t, []string{"src/a.html", "src/b.html"}, set.Files(workspace.KindTemplate))
	assert.Equal(t, []string{"src/b.html", "src/a.html"}, set.Templates, "Files does not reorder the set")
	assert.Equal(t, []string{"src/styles.scss"}, set.Files(workspace.KindStyle))
	assert.Equal(t, []string{"src/app.ts"}, set.Files(workspace.KindSource))
}

func TestMemory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tree := workspace.NewMemory(map[string]string{"b.html": "<b></b>", "a.html": "<a></a>"})

	assert.Equal(t, []string{"a.html", "b.html"}, tree.Paths())

	content, err := tree.Read(ctx, "a.html")
	require.NoError(t, err)
	content[1] = 'x'
	assert.Equal(t, "<a></a>", tree.Get("a.html"), "Read returns a copy")

	require.NoError(t, tree.Overwrite(ctx, "a.html", []byte("<i></i>")))
	assert.Equal(t, "<i></i>", tree.Get("a.html"))
	assert.Equal(t, 1, tree.Writes("a.html"))
	assert.Equal(t, 0, tree.Writes("b.html"))

	_, err = tree.Read(ctx, "missing.html")
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.ErrorIs(t, tree.Overwrite(ctx, "missing.html", nil), fs.ErrNotExist)
	assert.Equal(t, []string{"a.html", "b.html"}, tree.Paths(), "overwrite never creates files")
}
