package runner

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/splice/internal/logging"
	"github.com/yaklabco/splice/pkg/edit"
)

// Run applies the resolved, canonical-keyed edit batch. Files are
// processed concurrently on a bounded worker pool; no ordering is
// guaranteed between files, and none is needed since every batch
// targets exactly one file. Outcomes are folded into the Result in
// deterministic path order regardless of completion order.
func Run(ctx context.Context, batch map[string][]edit.Edit, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)
	result := &Result{}

	paths := make([]string, 0, len(batch))
	for path := range batch {
		if opts.Eligible != nil && !opts.Eligible(path) {
			logger.Debug("skipping ineligible file", logging.FieldPath, path)
			result.FilesSkipped++
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(paths) {
		jobs = len(paths)
	}

	fileOpts := edit.FileOptions{DryRun: opts.DryRun, Backup: opts.Backup}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, workCh, outCh, batch, fileOpts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range paths {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; collect everything first, then
	// accumulate in path order so reruns report identically.
	outcomes := make(map[string]FileOutcome, len(paths))
	var applied, errs int
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome

		report(logger, outcome)
		if outcome.Result != nil {
			applied += outcome.Result.Stats.Applied
			errs += outcome.Result.Stats.ErrorCount()
		}
		if opts.Progress != nil {
			opts.Progress.Update(applied, errs, len(outcomes), len(paths))
		}
	}
	if opts.Progress != nil && len(outcomes) > 0 {
		opts.Progress.Done()
	}

	for _, path := range paths {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker applies batches for paths received on workCh.
func worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	batch map[string][]edit.Edit,
	fileOpts edit.FileOptions,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := FileOutcome{Path: path}
		res, err := edit.ApplyFile(path, batch[path], fileOpts)
		if err != nil {
			outcome.Err = err
		}
		outcome.Result = res

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// report logs a file's conflicts and failures as they arrive.
func report(logger *log.Logger, outcome FileOutcome) {
	if outcome.Err != nil {
		logger.Error("failed to edit file",
			logging.FieldPath, outcome.Path,
			logging.FieldError, outcome.Err,
		)
	}
	if outcome.Result == nil {
		return
	}
	for _, c := range outcome.Result.Stats.Conflicts {
		logger.Error("conflicting edit",
			logging.FieldPath, c.Path,
			logging.FieldOffset, c.Offset,
			logging.FieldLength, c.Length,
			logging.FieldApplied, c.Applied,
			logging.FieldWanted, c.Discarded,
		)
	}
	for _, e := range outcome.Result.Stats.OutOfRange {
		logger.Warn("edit range outside file contents",
			logging.FieldPath, outcome.Path,
			logging.FieldOffset, e.Offset,
			logging.FieldLength, e.Length,
		)
	}
}
