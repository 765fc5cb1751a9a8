package runner

import "github.com/yaklabco/splice/pkg/edit"

// FileOutcome pairs a file with what happened to it.
type FileOutcome struct {
	// Path is the canonical file path.
	Path string

	// Result holds the per-file application outcome. Nil when the
	// file could not be read or written.
	Result *edit.FileResult

	// Err is set if the file could not be processed at all. The file
	// is left untouched in that case.
	Err error
}

// Result is the accumulated outcome of a batch run.
type Result struct {
	// Files contains one outcome per processed file, ordered by path.
	Files []FileOutcome

	// EditsApplied is the total count of edits spliced across files.
	EditsApplied int

	// Errors is the total count of discarded edits: conflicts plus
	// out-of-range records. This is the run's exit code.
	Errors int

	// Conflicts collects every conflict for diagnostic output.
	Conflicts []edit.Conflict

	// FilesDone is the number of files whose batches were applied.
	FilesDone int

	// FilesErrored counts files that failed to read or write.
	FilesErrored int

	// FilesModified counts files actually rewritten on disk.
	FilesModified int

	// FilesSkipped counts files excluded by the eligibility predicate.
	FilesSkipped int
}

// ExitCode encodes the run outcome for the process: zero on success,
// otherwise the total number of discarded edits.
func (r *Result) ExitCode() int {
	if r == nil {
		return 0
	}
	return r.Errors
}

// accumulate folds one file outcome into the running totals.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Err != nil {
		r.FilesErrored++
		return
	}

	r.FilesDone++
	res := outcome.Result
	r.EditsApplied += res.Stats.Applied
	r.Errors += res.Stats.ErrorCount()
	r.Conflicts = append(r.Conflicts, res.Stats.Conflicts...)
	if res.Written {
		r.FilesModified++
	}
}
