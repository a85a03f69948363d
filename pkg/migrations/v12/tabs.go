package v12

import (
	"strings"

	"github.com/yaklabco/ngmigrate/pkg/markup"
	"github.com/yaklabco/ngmigrate/pkg/migrate"
	"github.com/yaklabco/ngmigrate/pkg/workspace"
)

// TabAlignmentRule derives igx-tabs "tabAlignment" from the removed "type"
// input.
type TabAlignmentRule struct {
	migrate.BaseRule
}

// NewTabAlignmentRule creates the tabs-type-alignment rule.
func NewTabAlignmentRule() *TabAlignmentRule {
	return &TabAlignmentRule{
		BaseRule: migrate.NewBaseRule(
			"tabs-type-alignment",
			"Tabs type to alignment",
			"Adds tabAlignment to igx-tabs that set type fixed or contentfit",
			workspace.KindTemplate,
		),
	}
}

// Apply inserts tabAlignment next to every mapped type.
func (r *TabAlignmentRule) Apply(rc *migrate.RuleContext) error {
	for _, tabs := range rc.Doc.Find(markup.Tags(tabsFamily.component)) {
		typeAttr := markup.FirstAttribute(tabs, markup.AttrNames("type")...)
		if typeAttr == nil || markup.HasAttribute(tabs, markup.AttrNames("tabAlignment")...) {
			continue
		}

		alignment, ok := tabAlignments[strings.ToLower(unquote(typeAttr.Value))]
		if !ok {
			continue
		}
		rc.Insert(tabs.AttrInsertPos(), ` tabAlignment="`+alignment+`"`)
	}
	return nil
}

// WrapTemplateRule turns ng-template[igxTab] inside tab items into the
// family's header tag.
type WrapTemplateRule struct {
	migrate.BaseRule
	family *tabFamily
}

// newWrapTemplateRule creates the wrap-template rule for family.
func newWrapTemplateRule(family *tabFamily) *WrapTemplateRule {
	return &WrapTemplateRule{
		BaseRule: migrate.NewBaseRule(
			family.component+"-wrap-template",
			"Wrap tab templates",
			"Replaces ng-template igxTab inside "+family.component+" items with <"+family.headerTag+">",
			workspace.KindTemplate,
		),
		family: family,
	}
}

// Apply rewrites the template's tags and keeps its content. Only tag spans
// are edited, so nested templates are rewritten in the same pass.
func (r *WrapTemplateRule) Apply(rc *migrate.RuleContext) error {
	templates := markup.And(markup.Tags("ng-template"), markup.WithAttribute("igxTab"))
	seen := make(map[*markup.Element]bool)

	for _, tab := range rc.Doc.Find(markup.Tags(r.family.tags...)) {
		for _, tmpl := range tab.Descendants(templates) {
			if seen[tmpl] {
				continue
			}
			seen[tmpl] = true

			open, closing := "<"+r.family.headerTag+">", "</"+r.family.headerTag+">"
			if tmpl.EndTag == nil {
				rc.Replace(tmpl.Span(), open+tmpl.InnerText()+closing)
				continue
			}
			rc.Replace(tmpl.StartTag, open)
			rc.Replace(*tmpl.EndTag, closing)
		}
	}
	return nil
}

// HeaderRule moves the label, icon and routerLink of tab items into a
// header child.
type HeaderRule struct {
	migrate.BaseRule
	family *tabFamily
}

func newHeaderRule(family *tabFamily) *HeaderRule {
	return &HeaderRule{
		BaseRule: migrate.NewBaseRule(
			family.component+"-header",
			"Tab headers",
			"Projects label, icon and routerLink of "+family.component+" items as <"+family.headerTag+">",
			workspace.KindTemplate,
		),
		family: family,
	}
}

// Apply inserts the header as the first child of every item without one.
func (r *HeaderRule) Apply(rc *migrate.RuleContext) error {
	f := r.family
	for _, tab := range rc.Doc.Find(markup.Tags(f.tags...)) {
		if markup.FirstChild(tab, markup.Tags(f.headerTag)) != nil {
			continue
		}

		var icon, label, routerLink string
		if attr := markup.FirstAttribute(tab, markup.AttrNames("icon")...); attr != nil {
			icon = "\n<igx-icon " + f.iconDirective + ">" + attr.Interpolated() + "</igx-icon>"
		}
		if attr := markup.FirstAttribute(tab, markup.AttrNames("label")...); attr != nil {
			label = "\n<span " + f.labelDirective + ">" + attr.Interpolated() + "</span>\n"
		}
		if attr := markup.FirstAttribute(tab, markup.AttrNames("routerLink")...); attr != nil {
			routerLink = " " + formatAttr(attr)
		}
		if icon == "" && label == "" && routerLink == "" {
			continue
		}

		header := "\n<" + f.headerTag + routerLink + classAttr(tab, f.headerClassTags) + ">" +
			icon + label + "</" + f.headerTag + ">"
		insertFirstChild(rc, tab, header)
	}
	return nil
}

// formatAttr renders attr as it was written, name and value.
func formatAttr(attr *markup.Attribute) string {
	quote := `"`
	if attr.Quote == '\'' {
		quote = `'`
	}
	return attr.Name + "=" + quote + attr.Value + quote
}

// ContentRule wraps what follows the header of a tab item into the
// family's panel tag.
type ContentRule struct {
	migrate.BaseRule
	family *tabFamily
}

func newContentRule(family *tabFamily) *ContentRule {
	return &ContentRule{
		BaseRule: migrate.NewBaseRule(
			family.component+"-content",
			"Tab panels",
			"Wraps the body of "+family.component+" items in <"+family.panelTag+">",
			workspace.KindTemplate,
		),
		family: family,
	}
}

// Apply wraps the body with two inserts, so the panels of nested items
// never overlap.
func (r *ContentRule) Apply(rc *migrate.RuleContext) error {
	f := r.family
	for _, tab := range rc.Doc.Find(markup.Tags(f.tags...)) {
		header := markup.FirstChild(tab, markup.Tags(f.headerTag))
		if header == nil || tab.EndTag == nil {
			continue
		}

		body := markup.Span{Start: header.Span().End, End: tab.EndTag.Start}
		content := rc.Text(body)
		if strings.Contains(content, f.panelTag) || isBlank(content) {
			continue
		}

		rc.Insert(body.Start, "\n<"+f.panelTag+classAttr(tab, f.panelClassTags)+">")
		rc.Insert(body.End, "</"+f.panelTag+">\n")
	}
	return nil
}

// ReviewCommentRule flags every component instance of a file the family's
// stages changed.
type ReviewCommentRule struct {
	migrate.BaseRule
	family *tabFamily
}

func newReviewCommentRule(family *tabFamily) *ReviewCommentRule {
	return &ReviewCommentRule{
		BaseRule: migrate.NewBaseRule(
			family.component+"-review-comment",
			"Review comment",
			"Flags migrated "+family.component+" instances for manual review",
			workspace.KindTemplate,
		),
		family: family,
	}
}

// Apply inserts the comment before each outermost instance not already
// flagged.
func (r *ReviewCommentRule) Apply(rc *migrate.RuleContext) error {
	if !rc.Touched {
		return nil
	}
	for _, instance := range markup.FindOutermost(rc.Doc.Roots, markup.Tags(r.family.component)) {
		if precededBy(rc, instance.StartTag.Start, reviewComment) {
			continue
		}
		rc.Insert(instance.StartTag.Start, reviewComment)
	}
	return nil
}
