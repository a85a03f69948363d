package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"maps"
	"slices"
)

// Memory is an in-memory Tree.
type Memory struct {
	files  map[string][]byte
	writes map[string]int
}

// NewMemory creates a tree holding files.
func NewMemory(files map[string]string) *Memory {
	m := &Memory{
		files:  make(map[string][]byte, len(files)),
		writes: make(map[string]int),
	}
	for path, content := range files {
		m.files[path] = []byte(content)
	}
	return m
}

// Read returns a copy of the file's content.
func (m *Memory) Read(_ context.Context, path string) ([]byte, error) {
	content, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", path, fs.ErrNotExist)
	}
	return slices.Clone(content), nil
}

// Overwrite replaces the content of an existing file.
func (m *Memory) Overwrite(_ context.Context, path string, content []byte) error {
	if _, ok := m.files[path]; !ok {
		return fmt.Errorf("overwrite %s: %w", path, fs.ErrNotExist)
	}
	m.files[path] = slices.Clone(content)
	m.writes[path]++
	return nil
}

// Get returns the current content of path, or "" if it does not exist.
func (m *Memory) Get(path string) string {
	return string(m.files[path])
}

// Writes returns how many times path was overwritten.
func (m *Memory) Writes(path string) int {
	return m.writes[path]
}

// Paths returns every path in the tree, sorted.
func (m *Memory) Paths() []string {
	return slices.Sorted(maps.Keys(m.files))
}
