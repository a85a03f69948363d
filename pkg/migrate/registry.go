package migrate

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/mod/semver"
)

// Registry holds the known migrations.
type Registry struct {
	mu        sync.RWMutex
	byVersion map[string]*Migration
}

// NewRegistry creates an empty migration registry.
func NewRegistry() *Registry {
	return &Registry{byVersion: make(map[string]*Migration)}
}

// Register adds a migration. Registering two migrations for one version, or
// two stages with one ID across the registry, is an error.
func (r *Registry) Register(m *Migration) error {
	if m == nil {
		return fmt.Errorf("register: nil migration")
	}
	canonical, err := CanonicalVersion(m.Version)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byVersion[canonical]; ok {
		return fmt.Errorf("register: migration %s already registered", canonical)
	}

	seen := make(map[string]string)
	for _, existing := range r.byVersion {
		for _, id := range existing.StageIDs() {
			seen[id] = existing.Version
		}
	}
	for _, id := range m.StageIDs() {
		if version, ok := seen[id]; ok {
			return fmt.Errorf("register: stage %q already registered by %s", id, version)
		}
		seen[id] = canonical
	}

	m.Version = canonical
	r.byVersion[canonical] = m
	return nil
}

// MustRegister is like Register but panics on error. It is meant for
// package init functions.
func (r *Registry) MustRegister(m *Migration, err error) {
	if err != nil {
		panic(err)
	}
	if err := r.Register(m); err != nil {
		panic(err)
	}
}

// Get returns the migration for version.
func (r *Registry) Get(version string) (*Migration, bool) {
	canonical, err := CanonicalVersion(version)
	if err != nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byVersion[canonical]
	return m, ok
}

// Migrations returns every migration ordered by version.
func (r *Registry) Migrations() []*Migration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Migration, 0, len(r.byVersion))
	for _, m := range r.byVersion {
		result = append(result, m)
	}
	slices.SortFunc(result, func(a, b *Migration) int {
		return semver.Compare(a.Version, b.Version)
	})
	return result
}

// Latest returns the highest registered version, or "".
func (r *Registry) Latest() string {
	all := r.Migrations()
	if len(all) == 0 {
		return ""
	}
	return all[len(all)-1].Version
}

// Select returns the migrations a project on version from needs to reach
// version to: every migration in (from, to], ordered by version. An empty
// to means the latest registered version.
func (r *Registry) Select(from, to string) ([]*Migration, error) {
	fromVersion, err := CanonicalVersion(from)
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}

	toVersion := r.Latest()
	if to != "" {
		if toVersion, err = CanonicalVersion(to); err != nil {
			return nil, fmt.Errorf("to: %w", err)
		}
	}
	if toVersion == "" {
		return nil, nil
	}
	if semver.Compare(fromVersion, toVersion) > 0 {
		return nil, fmt.Errorf("%w: from %s is newer than to %s", ErrInvalidVersion, fromVersion, toVersion)
	}

	var selected []*Migration
	for _, m := range r.Migrations() {
		if semver.Compare(m.Version, fromVersion) > 0 && semver.Compare(m.Version, toVersion) <= 0 {
			selected = append(selected, m)
		}
	}
	return selected, nil
}

// StageIDs returns every stage ID across all migrations, sorted.
func (r *Registry) StageIDs() []string {
	var ids []string
	for _, m := range r.Migrations() {
		ids = append(ids, m.StageIDs()...)
	}
	slices.Sort(ids)
	return ids
}

// DefaultRegistry is the global registry for built-in migrations.
// Migrations register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for migration registration
var DefaultRegistry = NewRegistry()
