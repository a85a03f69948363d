package v12

import (
	"github.com/yaklabco/ngmigrate/pkg/markup"
	"github.com/yaklabco/ngmigrate/pkg/migrate"
	"github.com/yaklabco/ngmigrate/pkg/workspace"
)

// dialogMode is inserted where the removed implicit default applied.
const dialogMode = ` mode="dialog"`

// EditorInputsRule migrates the mode, label and template inputs of a date
// or time picker.
type EditorInputsRule struct {
	migrate.BaseRule
	editor *editor
}

func newEditorInputsRule(e *editor) *EditorInputsRule {
	return &EditorInputsRule{
		BaseRule: migrate.NewBaseRule(
			e.component+"-inputs",
			"Editor inputs",
			"Migrates mode, label and "+e.templateDirective+" of "+e.component,
			workspace.KindTemplate,
		),
		editor: e,
	}
}

// Apply handles every instance of the editor. An instance that already
// projects an igxLabel child has been migrated and only gets its dropdown
// mode removed.
func (r *EditorInputsRule) Apply(rc *migrate.RuleContext) error {
	instances := rc.Doc.Find(markup.Tags(r.editor.component))
	for _, el := range instances {
		migrated := hasChildWithAttribute(el, "igxLabel")

		modes := markup.GetAttribute(el, markup.AttrNames("mode")...)
		for _, mode := range modes {
			if unquote(mode.Value) == "dropdown" {
				rc.Delete(mode.RemovalSpan(rc.Content))
			}
		}
		if migrated {
			continue
		}
		if len(modes) == 0 {
			rc.Insert(el.AttrInsertPos(), dialogMode)
		}

		r.projectLabel(rc, el)
	}

	// Warnings go last so that a label projected at the same offset ends up
	// before them and they stay right in front of the template.
	seen := make(map[*markup.Element]bool)
	templates := markup.And(markup.Tags("ng-template"), markup.WithAttribute(r.editor.templateDirective))
	for _, el := range instances {
		for _, tmpl := range el.Descendants(templates) {
			if seen[tmpl] || precededBy(rc, tmpl.StartTag.Start, r.editor.templateWarning) {
				continue
			}
			seen[tmpl] = true
			rc.Insert(tmpl.StartTag.Start, r.editor.templateWarning)
		}
	}
	return nil
}

// projectLabel removes the label inputs and projects them as igxLabel
// children, guarded by labelVisibility when it is set. Without a label the
// default text is projected.
func (r *EditorInputsRule) projectLabel(rc *migrate.RuleContext, el *markup.Element) {
	var ngIf string
	if visibility := markup.FirstAttribute(el, markup.AttrNames("labelVisibility")...); visibility != nil {
		ngIf = ` *ngIf="` + visibility.Value + `"`
	}

	labels := markup.GetAttribute(el, markup.AttrNames("label")...)
	if len(labels) == 0 {
		insertFirstChild(rc, el, "\n<label igxLabel"+ngIf+">"+r.editor.defaultLabel+"</label>")
		return
	}

	var projected string
	for _, label := range labels {
		rc.Delete(label.RemovalSpan(rc.Content))
		projected += "\n<label igxLabel" + ngIf + ">" + label.Interpolated() + "</label>"
	}
	insertFirstChild(rc, el, projected)
}
