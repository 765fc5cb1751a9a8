package cli

import (
	"errors"
	"fmt"
)

// Exit codes for splice.
const (
	// ExitSuccess indicates all edits applied with no conflicts.
	ExitSuccess = 0

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates the run could not be set up (bad build
	// directory, git unavailable, unreadable stream).
	ExitIOError = 74
)

// ConflictsError signals that conflicting edits were discarded. Its
// count becomes the process exit status, so a clean run exits zero and
// a run with one unresolved conflict exits with status 1.
type ConflictsError struct {
	Count int
}

func (e *ConflictsError) Error() string {
	return fmt.Sprintf("%d conflicting edits discarded", e.Count)
}

// SetupError wraps failures preparing the run, before any file is
// touched.
type SetupError struct {
	Err error
}

func (e *SetupError) Error() string { return e.Err.Error() }
func (e *SetupError) Unwrap() error { return e.Err }

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var conflicts *ConflictsError
	if errors.As(err, &conflicts) {
		return conflicts.Count
	}

	var setup *SetupError
	if errors.As(err, &setup) {
		return ExitIOError
	}

	return ExitInternalError
}
