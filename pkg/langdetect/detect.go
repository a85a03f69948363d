// Package langdetect decides which migration file kind, if any, a project
// file belongs to. Extensions select the candidate kind; go-enry weeds out
// vendored and generated files and extension clashes such as Qt linguist
// ".ts" translation files.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/ngmigrate/pkg/workspace"
)

// Languages go-enry may report for each kind. A file whose detected
// language is outside its kind's list is not migrated.
var kindLanguages = map[workspace.Kind][]string{
	workspace.KindTemplate: {"HTML", "Angular"},
	workspace.KindStyle:    {"SCSS", "Sass", "CSS"},
	workspace.KindSource:   {"TypeScript"},
}

// DefaultExtensions returns the file extensions mapped to each kind.
func DefaultExtensions() map[workspace.Kind][]string {
	return map[workspace.Kind][]string{
		workspace.KindTemplate: {".html"},
		workspace.KindStyle:    {".scss", ".sass", ".css"},
		workspace.KindSource:   {".ts"},
	}
}

// Classifier maps project files to kinds.
type Classifier struct {
	byExt map[string]workspace.Kind
}

// NewClassifier creates a classifier for the given extensions. A nil map
// selects DefaultExtensions.
func NewClassifier(extensions map[workspace.Kind][]string) *Classifier {
	if extensions == nil {
		extensions = DefaultExtensions()
	}

	c := &Classifier{byExt: make(map[string]workspace.Kind)}
	for _, kind := range workspace.Kinds {
		for _, ext := range extensions[kind] {
			ext = strings.ToLower(ext)
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			c.byExt[ext] = kind
		}
	}
	return c
}

// KindByExtension returns the candidate kind for path from its extension
// alone.
func (c *Classifier) KindByExtension(path string) (workspace.Kind, bool) {
	kind, ok := c.byExt[strings.ToLower(filepath.Ext(path))]
	return kind, ok
}

// Classify returns the kind of the file at path, which should be relative
// to the project root. content may be nil, in which case only the path is
// considered.
func (c *Classifier) Classify(path string, content []byte) (workspace.Kind, bool) {
	kind, ok := c.KindByExtension(path)
	if !ok {
		return 0, false
	}

	slashed := filepath.ToSlash(path)
	if enry.IsVendor(slashed) {
		return 0, false
	}
	if content == nil {
		return kind, true
	}
	if enry.IsGenerated(slashed, content) {
		return 0, false
	}

	// Only ambiguous extensions need the content check.
	candidates := enry.GetLanguagesByExtension(filepath.Base(path), content, nil)
	if len(candidates) < 2 {
		return kind, true
	}

	lang := enry.GetLanguage(filepath.Base(path), content)
	for _, accepted := range kindLanguages[kind] {
		if lang == accepted {
			return kind, true
		}
	}
	return 0, false
}
