package migrate

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrInvalidVersion indicates a version string that is not semver.
var ErrInvalidVersion = errors.New("invalid version")

// Stage is one step of a migration.
type Stage struct {
	// Rule computes the stage's edits.
	Rule Rule

	// Group names the family of stages whose changes to a file are tracked
	// together, so a later stage of the family can react to them. Empty
	// means the stage is not tracked.
	Group string
}

// Migration upgrades a project to one library version.
type Migration struct {
	// Version is the library version the migration upgrades to, in
	// canonical semver form ("v12.0.0").
	Version string

	// Description summarizes the breaking changes handled.
	Description string

	// Stages run in order; each is flushed before the next starts.
	Stages []Stage
}

// NewMigration creates a migration for version, which may omit the leading
// "v".
func NewMigration(version, description string, stages ...Stage) (*Migration, error) {
	canonical, err := CanonicalVersion(version)
	if err != nil {
		return nil, err
	}
	return &Migration{Version: canonical, Description: description, Stages: stages}, nil
}

// StageIDs returns the rule IDs of the migration's stages in order.
func (m *Migration) StageIDs() []string {
	ids := make([]string, len(m.Stages))
	for i, stage := range m.Stages {
		ids[i] = stage.Rule.ID()
	}
	return ids
}

// CanonicalVersion normalizes a version such as "12", "12.0" or "v12.0.0"
// to canonical semver ("v12.0.0").
func CanonicalVersion(version string) (string, error) {
	trimmed := strings.TrimSpace(version)
	if trimmed != "" && !strings.HasPrefix(trimmed, "v") {
		trimmed = "v" + trimmed
	}
	if !semver.IsValid(trimmed) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, version)
	}
	return semver.Canonical(trimmed), nil
}

// CompareVersions compares two versions in any form CanonicalVersion
// accepts. Invalid versions sort before valid ones.
func CompareVersions(a, b string) int {
	ca, _ := CanonicalVersion(a)
	cb, _ := CanonicalVersion(b)
	return semver.Compare(ca, cb)
}
