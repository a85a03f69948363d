package v12

import (
	"bytes"
	"slices"
	"strings"

	"github.com/yaklabco/ngmigrate/pkg/markup"
	"github.com/yaklabco/ngmigrate/pkg/migrate"
)

// insertFirstChild inserts text right after el's start tag. A self-closing
// element is expanded into a start and end tag pair around text.
func insertFirstChild(rc *migrate.RuleContext, el *markup.Element, text string) {
	if !el.SelfClosing {
		rc.Insert(el.StartTag.End, text)
		return
	}
	slash := el.StartTag.Start + strings.LastIndexByte(el.StartTagText(), '/')
	rc.Replace(markup.Span{Start: slash, End: el.StartTag.End}, ">"+text+"</"+el.Name+">")
}

// precededBy reports whether the content right before offset is text.
func precededBy(rc *migrate.RuleContext, offset int, text string) bool {
	return bytes.HasSuffix(rc.Content[:offset], []byte(text))
}

// isBlank reports whether s holds nothing but whitespace.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// unquote strips the quotes of a string literal used as a bound value, so
// [mode]="'dropdown'" reads like mode="dropdown".
func unquote(value string) string {
	return strings.NewReplacer(`'`, "", `"`, "").Replace(value)
}

// classAttr returns ` class="..."` for el's literal class attribute when el
// is one of tags and the class is not blank.
func classAttr(el *markup.Element, tags []string) string {
	if !slices.Contains(tags, el.Name) {
		return ""
	}
	class := markup.FirstAttribute(el, "class")
	if class == nil || isBlank(class.Value) {
		return ""
	}
	return ` class="` + class.Value + `"`
}

// hasChildWithAttribute reports whether a direct child of el carries one of
// names.
func hasChildWithAttribute(el *markup.Element, names ...string) bool {
	return markup.FirstChild(el, markup.WithAttribute(names...)) != nil
}
