package fix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ngmigrate/pkg/fix"
)

func TestGenerateDiff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		original  string
		modified  string
		wantNil   bool
		contains  []string
		additions int
		deletions int
	}{
		{
			name:    "empty inputs",
			wantNil: true,
		},
		{
			name:     "identical content",
			original: "<igx-tabs>\n</igx-tabs>\n",
			modified: "<igx-tabs>\n</igx-tabs>\n",
			wantNil:  true,
		},
		{
			name:      "attribute inserted on one line",
			original:  "<div>\n<igx-tabs type=\"fixed\">\n</igx-tabs>\n</div>\n",
			modified:  "<div>\n<igx-tabs type=\"fixed\" tabAlignment=\"justify\">\n</igx-tabs>\n</div>\n",
			contains:  []string{"-<igx-tabs type=\"fixed\">", "+<igx-tabs type=\"fixed\" tabAlignment=\"justify\">"},
			additions: 1,
			deletions: 1,
		},
		{
			name:      "lines added",
			original:  "<igx-tab-item>\n</igx-tab-item>\n",
			modified:  "<igx-tab-item>\n<igx-tab-header>\n</igx-tab-header>\n</igx-tab-item>\n",
			contains:  []string{"+<igx-tab-header>", "+</igx-tab-header>", " <igx-tab-item>"},
			additions: 2,
		},
		{
			name:      "new file",
			modified:  "new content\n",
			contains:  []string{"@@ -0,0 +1,1 @@", "+new content"},
			additions: 1,
		},
		{
			name:      "file emptied",
			original:  "old content\n",
			contains:  []string{"@@ -1,1 +0,0 @@", "-old content"},
			deletions: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diff := fix.GenerateDiff("src/app.component.html", []byte(tt.original), []byte(tt.modified))
			if tt.wantNil {
				assert.Nil(t, diff)
				return
			}

			require.NotNil(t, diff)
			assert.True(t, diff.HasChanges())
			assert.Equal(t, tt.additions, diff.Additions)
			assert.Equal(t, tt.deletions, diff.Deletions)

			text := diff.String()
			for _, want := range tt.contains {
				assert.Contains(t, text, want)
			}
		})
	}
}

func TestGenerateDiff_SeparateHunks(t *testing.T) {
	t.Parallel()

	var original, modified string
	for i := range 20 {
		line := "line\n"
		if i == 1 || i == 18 {
			original += "old\n"
			modified += "new\n"
			continue
		}
		original += line
		modified += line
	}

	diff := fix.GenerateDiff("a.html", []byte(original), []byte(modified))
	require.NotNil(t, diff)
	require.Len(t, diff.Hunks, 2)

	assert.Equal(t, 1, diff.Hunks[0].OriginalStart)
	assert.Equal(t, 16, diff.Hunks[1].OriginalStart)
	assert.Equal(t, diff.Hunks[1].OriginalCount, diff.Hunks[1].ModifiedCount)
}

func TestDiff_String(t *testing.T) {
	t.Parallel()

	t.Run("nil diff", func(t *testing.T) {
		t.Parallel()

		var diff *fix.Diff
		assert.Empty(t, diff.String())
		assert.Empty(t, diff.FullString())
		assert.False(t, diff.HasChanges())
	})

	t.Run("no hunks", func(t *testing.T) {
		t.Parallel()

		diff := &fix.Diff{Path: "a.html"}
		assert.Empty(t, diff.String())
		assert.False(t, diff.HasChanges())
	})

	t.Run("unified format", func(t *testing.T) {
		t.Parallel()

		diff := fix.GenerateDiff("/src/a.html", []byte("a\nold\nc\n"), []byte("a\nnew\nc\n"))
		require.NotNil(t, diff)

		assert.Equal(t,
			"--- a/src/a.html\n+++ b/src/a.html\n@@ -1,3 +1,3 @@\n a\n-old\n+new\n c\n",
			diff.String())
		assert.Equal(t, "diff --git a/src/a.html b/src/a.html", diff.GitHeader())
	})
}
