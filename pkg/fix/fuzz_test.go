package fix_test

import (
	"testing"

	"github.com/yaklabco/ngmigrate/pkg/fix"
)

func FuzzGenerateDiff(f *testing.F) {
	f.Add([]byte(""), []byte(""))
	f.Add([]byte("hello"), []byte("world"))
	f.Add([]byte("a\nb\nc\n"), []byte("a\nx\nc\n"))
	f.Add([]byte("line1\nline2\n"), []byte("line1\nline2\nline3\n"))
	f.Add([]byte("a\nb\nc\nd\ne\n"), []byte("a\nB\nc\nD\ne\n"))
	f.Add([]byte("<igx-tabs>\n</igx-tabs>"), []byte("<igx-tabs tabAlignment=\"start\">\n</igx-tabs>"))

	f.Fuzz(func(t *testing.T, original, modified []byte) {
		diff := fix.GenerateDiff("a.html", original, modified)
		if diff == nil {
			return
		}

		_ = diff.String()

		for hunkIdx, hunk := range diff.Hunks {
			if hunk.OriginalStart < 0 || hunk.ModifiedStart < 0 {
				t.Errorf("hunk %d: negative start %d/%d", hunkIdx, hunk.OriginalStart, hunk.ModifiedStart)
			}

			var ctxCount, addCount, remCount int
			for _, line := range hunk.Lines {
				switch line.Kind {
				case fix.DiffLineContext:
					ctxCount++
				case fix.DiffLineAdd:
					addCount++
				case fix.DiffLineRemove:
					remCount++
				}
			}

			if ctxCount+remCount != hunk.OriginalCount {
				t.Errorf("hunk %d: context(%d) + remove(%d) != OriginalCount(%d)",
					hunkIdx, ctxCount, remCount, hunk.OriginalCount)
			}
			if ctxCount+addCount != hunk.ModifiedCount {
				t.Errorf("hunk %d: context(%d) + add(%d) != ModifiedCount(%d)",
					hunkIdx, ctxCount, addCount, hunk.ModifiedCount)
			}
		}
	})
}

func FuzzApplyChanges(f *testing.F) {
	f.Add([]byte("hello"), 0, 5, "world")
	f.Add([]byte("hello world"), 5, 5, " beautiful")
	f.Add([]byte("abcdef"), 0, 0, "prefix")
	f.Add([]byte("abcdef"), 6, 6, "suffix")
	f.Add([]byte("abcdef"), 2, 4, "")

	f.Fuzz(func(t *testing.T, content []byte, start, end int, newText string) {
		if start < 0 || end < start || end > len(content) {
			return
		}

		change := fix.Insert(start, newText)
		if end > start {
			change = fix.Replace(start, string(content[start:end]), newText)
		}

		result, err := fix.ApplyChanges(content, []fix.Change{change, fix.Insert(start, "|")})
		if err != nil {
			t.Fatalf("ApplyChanges: %v", err)
		}

		// Inserted text precedes replacement text at the same offset.
		want := string(content[:start]) + "|" + newText + string(content[end:])
		if end == start {
			want = string(content[:start]) + newText + "|" + string(content[end:])
		}
		if string(result) != want {
			t.Errorf("result = %q, want %q", result, want)
		}
	})
}
