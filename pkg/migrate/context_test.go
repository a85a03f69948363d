package migrate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/ngmigrate/pkg/fix"
	"github.com/yaklabco/ngmigrate/pkg/markup"
	"github.com/yaklabco/ngmigrate/pkg/migrate"
)

func TestRuleContext_RecordsChanges(t *testing.T) {
	t.Parallel()

	content := []byte(`<igx-tabs type="fixed"></igx-tabs>`)
	rc := migrate.NewRuleContext(context.Background(), "a.html", content, nil)

	rc.Replace(markup.Span{Start: 16, End: 21}, "justify")
	rc.Insert(9, ` mode="x"`)
	rc.Delete(markup.Span{Start: 9, End: 22})
	rc.Add(fix.Insert(0, "<!-- -->"))

	want := []fix.Change{
		fix.Replace(16, "fixed", "justify"),
		fix.Insert(9, ` mode="x"`),
		fix.Delete(9, ` type="fixed"`),
		fix.Insert(0, "<!-- -->"),
	}
	assert.Equal(t, want, rc.Changes())
	assert.Equal(t, "fixed", rc.Text(markup.Span{Start: 16, End: 21}))
	assert.False(t, rc.Cancelled())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.True(t, migrate.NewRuleContext(ctx, "a.html", content, nil).Cancelled())
}
