package v12

import (
	"strings"

	"github.com/yaklabco/ngmigrate/pkg/markup"
	"github.com/yaklabco/ngmigrate/pkg/migrate"
	"github.com/yaklabco/ngmigrate/pkg/workspace"
)

// SelectorRule renames the old item tags of a tab family in style sheets.
type SelectorRule struct {
	migrate.BaseRule
	family *tabFamily
}

func newSelectorRule(family *tabFamily) *SelectorRule {
	return &SelectorRule{
		BaseRule: migrate.NewBaseRule(
			family.component+"-style-selectors",
			"Tab selectors",
			"Renames "+family.component+" item selectors in style sheets",
			workspace.KindStyle,
		),
		family: family,
	}
}

// Apply replaces every standalone occurrence of an old selector.
func (r *SelectorRule) Apply(rc *migrate.RuleContext) error {
	content := string(rc.Content)
	for _, rename := range r.family.selectors {
		for _, pos := range selectorOccurrences(content, rename.from) {
			rc.Replace(markup.Span{Start: pos, End: pos + len(rename.from)}, rename.to)
		}
	}
	return nil
}

// selectorOccurrences returns the offsets where name appears as a whole type
// selector: not part of a longer identifier and not a class, id or
// placeholder name.
func selectorOccurrences(content, name string) []int {
	var found []int
	for offset := 0; ; {
		idx := strings.Index(content[offset:], name)
		if idx < 0 {
			return found
		}
		start := offset + idx
		end := start + len(name)
		offset = end

		if start > 0 && (isIdentByte(content[start-1]) || strings.IndexByte(".#%$@", content[start-1]) >= 0) {
			continue
		}
		if end < len(content) && isIdentByte(content[end]) {
			continue
		}
		found = append(found, start)
	}
}

func isIdentByte(c byte) bool {
	return c == '-' || c == '_' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
