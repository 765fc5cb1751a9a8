package edit

import (
	"bytes"
	"fmt"

	"github.com/yaklabco/splice/pkg/fsutil"
)

// FileOptions controls how ApplyFile treats the target file.
type FileOptions struct {
	// DryRun computes the mutated contents and a unified diff without
	// writing anything back.
	DryRun bool

	// Backup writes a sidecar copy of the original before overwriting.
	Backup bool
}

// FileResult is the outcome of applying one file's edit batch.
type FileResult struct {
	// Path is the canonical path of the file.
	Path string

	// Stats holds applied/conflict/out-of-range counts from the
	// in-memory application.
	Stats Stats

	// Written reports whether the file was overwritten. It is false
	// for dry runs and when the mutated contents are byte-identical
	// to the original.
	Written bool

	// BackupCreated reports whether a sidecar backup was written.
	BackupCreated bool

	// Diff is the dry-run preview; nil outside dry runs or when the
	// contents did not change.
	Diff *Diff
}

// ApplyFile loads path, applies its edits in memory, and overwrites
// the file atomically. The buffer is written back only after every
// edit has been resolved, so a failure never leaves a partially
// edited file behind. A batch whose net effect is byte-identical
// contents produces no write at all.
func ApplyFile(path string, edits []Edit, opts FileOptions) (*FileResult, error) {
	original, mode, err := fsutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Apply works on a copy: splices mutate the backing array, and the
	// no-op comparison below needs the original bytes intact.
	buf := make([]byte, len(original))
	copy(buf, original)
	mutated, stats := Apply(buf, edits)

	result := &FileResult{Path: path, Stats: stats}
	for i := range result.Stats.Conflicts {
		result.Stats.Conflicts[i].Path = path
	}

	if bytes.Equal(original, mutated) {
		return result, nil
	}

	if opts.DryRun {
		result.Diff = GenerateDiff(path, original, mutated)
		return result, nil
	}

	if opts.Backup {
		created, err := fsutil.CreateBackup(path)
		if err != nil {
			return result, fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(path, mutated, mode); err != nil {
		return result, fmt.Errorf("write %s: %w", path, err)
	}
	result.Written = true

	return result, nil
}
