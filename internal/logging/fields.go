package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError    = "error"
	FieldPath     = "path"
	FieldBuildDir = "build_dir"
	FieldFilters  = "filters"

	// Edit fields.
	FieldKind    = "kind"
	FieldOffset  = "offset"
	FieldLength  = "length"
	FieldApplied = "applied"
	FieldWanted  = "wanted"

	// Run statistics fields.
	FieldEditsApplied = "edits_applied"
	FieldConflicts    = "conflicts"
	FieldFilesDone    = "files_done"
	FieldFilesErrored = "files_errored"
	FieldTrackedFiles = "tracked_files"
	FieldLinesParsed  = "lines_parsed"
	FieldMalformed    = "malformed_lines"
	FieldJobs         = "jobs"
	FieldDryRun       = "dry_run"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
