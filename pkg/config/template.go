package config

import (
	"fmt"
	"strings"
)

// StageInfo describes a migration stage for template generation.
type StageInfo struct {
	Version     string
	ID          string
	Description string
}

// GenerateTemplate creates a commented project configuration file. Stage
// IDs are listed as comments under "disable" so users can pick the ones to
// skip.
func GenerateTemplate(stages []StageInfo) []byte {
	var b strings.Builder

	b.WriteString("# ngmigrate configuration\n")
	b.WriteString("# Values here are overridden by NGMIGRATE_* environment variables and flags.\n\n")

	b.WriteString("# Version of igniteui-angular the project uses now.\n")
	b.WriteString("# Leave empty to read it from package.json.\n")
	b.WriteString("# from: \"11.1.0\"\n\n")

	b.WriteString("# Version to migrate to. Leave empty for the latest known migration.\n")
	b.WriteString("# to: \"12.0.0\"\n\n")

	b.WriteString("# Glob patterns of files and directories to leave alone.\n")
	b.WriteString("# node_modules, dist and hidden directories are always skipped.\n")
	b.WriteString("ignore: []\n\n")

	b.WriteString("# Migration stages to skip.\n")
	b.WriteString("disable: []\n")
	version := ""
	for _, stage := range stages {
		if stage.Version != version {
			version = stage.Version
			fmt.Fprintf(&b, "#   %s:\n", version)
		}
		fmt.Fprintf(&b, "#   - %s  # %s\n", stage.ID, stage.Description)
	}
	b.WriteString("\n")

	b.WriteString("# Backups of rewritten files (mode: sidecar or none).\n")
	b.WriteString("backups:\n")
	b.WriteString("  enabled: true\n")
	b.WriteString("  mode: sidecar\n\n")

	b.WriteString("# File extensions per kind.\n")
	b.WriteString("# extensions:\n")
	b.WriteString("#   template: [.html]\n")
	b.WriteString("#   style: [.scss, .sass, .css]\n")
	b.WriteString("#   source: [.ts]\n")

	return []byte(b.String())
}
