package migrate

import (
	"context"

	"github.com/yaklabco/ngmigrate/pkg/fix"
	"github.com/yaklabco/ngmigrate/pkg/markup"
)

// RuleContext is what a rule sees of one file during one stage.
//
// It stores context.Context as a field because it is a short-lived
// parameter object created per rule invocation.
type RuleContext struct {
	// Ctx is the context for cancellation.
	Ctx context.Context

	// Path identifies the file.
	Path string

	// Content is the file's current content.
	Content []byte

	// Doc is the parsed template. It is nil for style and source files.
	Doc *markup.Document

	// Touched reports whether an earlier stage of the same group changed
	// this file during the current migration.
	Touched bool

	changes []fix.Change
}

// NewRuleContext creates a RuleContext for content at path.
func NewRuleContext(ctx context.Context, path string, content []byte, doc *markup.Document) *RuleContext {
	return &RuleContext{Ctx: ctx, Path: path, Content: content, Doc: doc}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	return rc.Ctx != nil && rc.Ctx.Err() != nil
}

// Text returns the content covered by span.
func (rc *RuleContext) Text(span markup.Span) string {
	return string(rc.Content[span.Start:span.End])
}

// Insert records an insertion of text at pos.
func (rc *RuleContext) Insert(pos int, text string) {
	rc.changes = append(rc.changes, fix.Insert(pos, text))
}

// Replace records the replacement of span with text. The expected text is
// taken from the current content, so the edit fails loudly if the span
// shifted before it is applied.
func (rc *RuleContext) Replace(span markup.Span, text string) {
	rc.changes = append(rc.changes, fix.Replace(span.Start, rc.Text(span), text))
}

// Delete records the removal of span.
func (rc *RuleContext) Delete(span markup.Span) {
	rc.changes = append(rc.changes, fix.Delete(span.Start, rc.Text(span)))
}

// Add records a prepared change.
func (rc *RuleContext) Add(change fix.Change) {
	rc.changes = append(rc.changes, change)
}

// Changes returns the recorded changes in the order they were made.
func (rc *RuleContext) Changes() []fix.Change {
	return rc.changes
}
