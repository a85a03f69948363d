// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Run configuration fields.
	FieldFrom   = "from"
	FieldTo     = "to"
	FieldDryRun = "dry_run"
	FieldBackup = "backup"

	// Migration fields.
	FieldMigration = "migration"
	FieldStage     = "stage"
	FieldKind      = "kind"
	FieldGroup     = "group"
	FieldChanges   = "changes"
	FieldStages    = "stages"

	// Descriptive fields.
	FieldDescription = "description"
	FieldInput       = "input"
	FieldOutput      = "output"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldTemplates       = "templates"
	FieldStyles          = "styles"
	FieldSources         = "sources"
	FieldFilesModified   = "files_modified"
	FieldFilesFailed     = "files_failed"
	FieldRestored        = "restored"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
