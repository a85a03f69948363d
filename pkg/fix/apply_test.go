package fix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ngmigrate/pkg/fix"
)

func TestApplyChanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		changes []fix.Change
		want    string
	}{
		{
			name:    "no changes returns original",
			content: "<igx-tabs></igx-tabs>",
			want:    "<igx-tabs></igx-tabs>",
		},
		{
			name:    "single insert",
			content: `<igx-tabs type="fixed">`,
			changes: []fix.Change{fix.Insert(22, ` tabAlignment="justify"`)},
			want:    `<igx-tabs type="fixed" tabAlignment="justify">`,
		},
		{
			name:    "single replace",
			content: "<ng-template igxTab>x</ng-template>",
			changes: []fix.Change{fix.Replace(0, "<ng-template igxTab>", "<igx-tab-header>")},
			want:    "<igx-tab-header>x</ng-template>",
		},
		{
			name:    "single delete",
			content: `<igx-date-picker mode="dropdown">`,
			changes: []fix.Change{fix.Delete(16, ` mode="dropdown"`)},
			want:    "<igx-date-picker>",
		},
		{
			name:    "edits listed front to back do not drift",
			content: "abcdef",
			changes: []fix.Change{
				fix.Replace(0, "ab", "XYZ"),
				fix.Insert(3, "-"),
				fix.Replace(4, "ef", ""),
			},
			want: "XYZc-d",
		},
		{
			name:    "same offset inserts keep insertion order",
			content: "<a></a>",
			changes: []fix.Change{
				fix.Insert(3, "1"),
				fix.Insert(3, "2"),
				fix.Insert(3, "3"),
			},
			want: "<a>123</a>",
		},
		{
			name:    "insert at end of replaced range",
			content: "<x/>",
			changes: []fix.Change{
				fix.Replace(2, "/>", "></x>"),
				fix.Insert(0, "<!--c-->"),
			},
			want: "<!--c--><x></x>",
		},
		{
			name:    "wrap with two replaces",
			content: "<t>[<t>in</t>]</t>",
			changes: []fix.Change{
				fix.Replace(0, "<t>", "<h>"),
				fix.Replace(14, "</t>", "</h>"),
				fix.Replace(4, "<t>", "<h>"),
				fix.Replace(9, "</t>", "</h>"),
			},
			want: "<h>[<h>in</h>]</h>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fix.ApplyChanges([]byte(tt.content), tt.changes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestApplyChanges_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	content := []byte("<igx-tab-item label=\"A\"></igx-tab-item>")
	original := string(content)

	_, err := fix.ApplyChanges(content, []fix.Change{
		fix.Replace(0, "<igx-tab-item", "<igx-tab"),
		fix.Insert(24, "body"),
	})
	require.NoError(t, err)
	assert.Equal(t, original, string(content))
}

func TestApplyChanges_Conflict(t *testing.T) {
	t.Parallel()

	t.Run("remove text does not match", func(t *testing.T) {
		t.Parallel()

		_, err := fix.ApplyChanges([]byte("hello world"), []fix.Change{fix.Replace(0, "howdy", "hi")})
		require.Error(t, err)
		require.ErrorIs(t, err, fix.ErrEditConflict)

		var conflict *fix.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "hello", conflict.Found)
		assert.Equal(t, 0, conflict.Change.Position)
	})

	t.Run("replace overlapping an earlier applied replace", func(t *testing.T) {
		t.Parallel()

		_, err := fix.ApplyChanges([]byte("abcdef"), []fix.Change{
			fix.Replace(0, "abcd", "X"),
			fix.Replace(2, "cd", "Y"),
		})
		assert.ErrorIs(t, err, fix.ErrEditConflict)
	})
}

func TestApplyChanges_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		change fix.Change
	}{
		{name: "negative position", change: fix.Insert(-1, "x")},
		{name: "insert past end", change: fix.Insert(6, "x")},
		{name: "replace past end", change: fix.Replace(3, "def", "x")},
		{name: "unknown mode", change: fix.Change{Position: 0, Mode: fix.Mode(9)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := fix.ApplyChanges([]byte("hello"), []fix.Change{tt.change})
			require.Error(t, err)
			assert.ErrorIs(t, err, fix.ErrInvalidChange)

			var validation *fix.ValidationError
			assert.True(t, errors.As(err, &validation))
		})
	}
}

func TestValidateChanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		changes []fix.Change
		wantMsg string
	}{
		{name: "empty", changes: nil},
		{name: "insert at end", changes: []fix.Change{fix.Insert(5, "!")}},
		{name: "replace whole buffer", changes: []fix.Change{fix.Replace(0, "hello", "bye")}},
		{name: "negative position", changes: []fix.Change{fix.Insert(-1, "x")}, wantMsg: "position is negative"},
		{name: "unknown mode", changes: []fix.Change{{Mode: fix.Mode(9)}}, wantMsg: "unknown mode"},
		{
			name:    "first violation wins",
			changes: []fix.Change{fix.Insert(0, "ok"), fix.Delete(4, "o!"), fix.Insert(-2, "x")},
			wantMsg: "end offset 6 exceeds content length 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fix.ValidateChanges(tt.changes, len("hello"))
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}

			var validation *fix.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.wantMsg, validation.Message)
		})
	}
}

func TestSortChanges(t *testing.T) {
	t.Parallel()

	changes := []fix.Change{
		fix.Insert(1, "a"),
		fix.Insert(5, "b"),
		fix.Insert(1, "c"),
		fix.Replace(3, "x", "d"),
	}

	got := fix.SortChanges(changes)
	require.Len(t, got, 4)

	texts := make([]string, len(got))
	for i, c := range got {
		texts[i] = c.Text
	}
	assert.Equal(t, []string{"b", "d", "c", "a"}, texts)
}

func TestApplyChanges_InsertAndReplaceAtSameOffset(t *testing.T) {
	t.Parallel()

	content := []byte("<igx-date-picker/>")
	for _, order := range [][]fix.Change{
		{fix.Insert(16, ` mode="dialog"`), fix.Replace(16, "/>", "></igx-date-picker>")},
		{fix.Replace(16, "/>", "></igx-date-picker>"), fix.Insert(16, ` mode="dialog"`)},
	} {
		got, err := fix.ApplyChanges(content, order)
		require.NoError(t, err)
		assert.Equal(t, `<igx-date-picker mode="dialog"></igx-date-picker>`, string(got))
	}
}

func TestChange_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `insert@3 "x"`, fix.Insert(3, "x").String())
	assert.Equal(t, `replace@0 "a" -> "b"`, fix.Replace(0, "a", "b").String())
	assert.Equal(t, "replace", fix.ModeReplace.String())
	assert.Equal(t, 4, fix.Delete(2, "ab").End())
}
