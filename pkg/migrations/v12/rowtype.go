package v12

import (
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/yaklabco/ngmigrate/pkg/markup"
	"github.com/yaklabco/ngmigrate/pkg/migrate"
	"github.com/yaklabco/ngmigrate/pkg/workspace"
)

//nolint:gochecknoglobals // Compiled once.
var (
	importDecl = regexp.MustCompile(`import\s+(?:type\s+)?\{([^}]*)\}\s*from\s*['"]([^'"]+)['"]`)

	typingPattern = regexp.MustCompile(typingExpr(slices.Sorted(maps.Keys(rowComponents))))
)

// typingExpr matches "as X;", "as X)" and ": X" for the given names, with the
// name in the first or second group.
func typingExpr(names []string) string {
	alt := strings.Join(names, "|")
	return `\bas\s+(` + alt + `)\s*[;)]|:\s*(` + alt + `)\b`
}

// RowTypeRule replaces the grid row component classes with RowType in
// library imports and type positions.
type RowTypeRule struct {
	migrate.BaseRule
}

// NewRowTypeRule creates the row-type-imports rule.
func NewRowTypeRule() *RowTypeRule {
	return &RowTypeRule{
		BaseRule: migrate.NewBaseRule(
			"row-type-imports",
			"Row type",
			"Replaces grid row component imports and typings with RowType",
			workspace.KindSource,
		),
	}
}

type specifier struct {
	text string
	span markup.Span
}

// Apply rewrites imports first, then typings. Files that import nothing
// from the library are left alone.
func (r *RowTypeRule) Apply(rc *migrate.RuleContext) error {
	content := string(rc.Content)

	var decls []importDeclaration
	imported := make(map[string]bool)
	for _, match := range importDecl.FindAllStringSubmatchIndex(content, -1) {
		if !strings.Contains(content[match[4]:match[5]], libraryModule) {
			continue
		}
		specs := importSpecifiers(content, match[2], match[3])
		for _, spec := range specs {
			imported[spec.text] = true
		}
		decls = append(decls, importDeclaration{
			span:  declarationSpan(content, match[0], match[1]),
			specs: specs,
		})
	}
	if len(decls) == 0 {
		return nil
	}

	for _, decl := range decls {
		remove := make([]bool, len(decl.specs))
		for i, spec := range decl.specs {
			replacement, old := rowComponents[spec.text]
			if !old {
				continue
			}
			if imported[replacement] {
				remove[i] = true
				continue
			}
			rc.Replace(spec.span, replacement)
			imported[replacement] = true
		}

		if len(decl.specs) > 0 && !slices.Contains(remove, false) {
			rc.Delete(decl.span)
			continue
		}
		removeSpecifiers(rc, decl.specs, remove)
	}

	for _, match := range typingPattern.FindAllStringSubmatchIndex(content, -1) {
		start, end := match[2], match[3]
		if start < 0 {
			start, end = match[4], match[5]
		}
		rc.Replace(markup.Span{Start: start, End: end}, rowComponents[content[start:end]])
	}
	return nil
}

// importDeclaration is one library import with its specifier list.
type importDeclaration struct {
	span  markup.Span
	specs []specifier
}

// declarationSpan extends the import declaration content[start:end] over a
// trailing semicolon and line break, so deleting it leaves no blank line.
func declarationSpan(content string, start, end int) markup.Span {
	if end < len(content) && content[end] == ';' {
		end++
	}
	switch {
	case strings.HasPrefix(content[end:], "\r\n"):
		end += 2
	case strings.HasPrefix(content[end:], "\n"):
		end++
	}
	return markup.Span{Start: start, End: end}
}

// importSpecifiers splits the specifier list content[start:end] at commas
// and returns the trimmed, non-empty entries.
func importSpecifiers(content string, start, end int) []specifier {
	var specs []specifier
	for pos := start; pos <= end; {
		next := strings.IndexByte(content[pos:end], ',')
		stop := end
		if next >= 0 {
			stop = pos + next
		}

		text := content[pos:stop]
		trimmed := strings.TrimSpace(text)
		if trimmed != "" {
			lead := strings.Index(text, trimmed)
			specs = append(specs, specifier{
				text: trimmed,
				span: markup.Span{Start: pos + lead, End: pos + lead + len(trimmed)},
			})
		}
		pos = stop + 1
	}
	return specs
}

// removeSpecifiers deletes the flagged entries together with their
// separators. Entries before the last kept one are removed up to the next
// entry; trailing ones are removed from the end of the last kept entry.
func removeSpecifiers(rc *migrate.RuleContext, specs []specifier, remove []bool) {
	lastKept := -1
	for i := range specs {
		if !remove[i] {
			lastKept = i
		}
	}

	for i := 0; i < lastKept; i++ {
		if remove[i] {
			rc.Delete(markup.Span{Start: specs[i].span.Start, End: specs[i+1].span.Start})
		}
	}

	last := len(specs) - 1
	if lastKept == last {
		return
	}
	from := specs[0].span.Start
	if lastKept >= 0 {
		from = specs[lastKept].span.End
	}
	rc.Delete(markup.Span{Start: from, End: specs[last].span.End})
}
