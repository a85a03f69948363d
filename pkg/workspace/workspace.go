// Package workspace is the file store migrations read from and write to.
//
// A Tree only reads and overwrites whole files; migrations never create,
// rename or delete files.
package workspace

import (
	"context"
	"fmt"
	"slices"
)

// Tree is the file store a migration runs against.
type Tree interface {
	Read(ctx context.Context, path string) ([]byte, error)
	Overwrite(ctx context.Context, path string, content []byte) error
}

// Kind classifies a file by how migrations treat it.
type Kind int

const (
	// KindTemplate is Angular component markup.
	KindTemplate Kind = iota

	// KindStyle is a style sheet.
	KindStyle

	// KindSource is a TypeScript module.
	KindSource
)

// Kinds lists every kind in processing order.
var Kinds = []Kind{KindTemplate, KindStyle, KindSource}

// String returns the kind name used in config files and reports.
func (k Kind) String() string {
	switch k {
	case KindTemplate:
		return "template"
	case KindStyle:
		return "style"
	case KindSource:
		return "source"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for _, kind := range Kinds {
		if kind.String() == s {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown file kind %q", s)
}

// FileSet holds the files under migration, grouped by kind.
type FileSet struct {
	Templates []string
	Styles    []string
	Sources   []string
}

// Files returns the sorted files of the given kind.
func (s *FileSet) Files(kind Kind) []string {
	var files []string
	switch kind {
	case KindTemplate:
		files = s.Templates
	case KindStyle:
		files = s.Styles
	case KindSource:
		files = s.Sources
	}
	files = slices.Clone(files)
	slices.Sort(files)
	return files
}

// Add records path under kind.
func (s *FileSet) Add(kind Kind, path string) {
	switch kind {
	case KindTemplate:
		s.Templates = append(s.Templates, path)
	case KindStyle:
		s.Styles = append(s.Styles, path)
	case KindSource:
		s.Sources = append(s.Sources, path)
	}
}

// Len returns the total number of files.
func (s *FileSet) Len() int {
	return len(s.Templates) + len(s.Styles) + len(s.Sources)
}
