// Package runner drives batch edit application: it filters the
// resolved per-file batches through the eligibility predicate, applies
// each file's edits on a worker pool, and folds the outcomes into a
// single accumulated result.
package runner

// Progress receives cumulative counts after each completed file.
// Implementations render however they like; the runner only reports.
type Progress interface {
	// Update is called once per completed file with run-wide totals.
	Update(applied, errors, filesDone, totalFiles int)

	// Done is called after the last file.
	Done()
}

// Options controls a batch run.
type Options struct {
	// Eligible decides whether a canonical path may be edited.
	// A nil predicate admits every file.
	Eligible func(path string) bool

	// Jobs is the number of files processed concurrently. Zero or
	// negative means one worker per CPU. Within a file, application
	// is always sequential.
	Jobs int

	// DryRun previews diffs without writing any file.
	DryRun bool

	// Backup writes a sidecar copy of each file before overwriting.
	Backup bool

	// Progress receives per-file cumulative counts; may be nil.
	Progress Progress
}
