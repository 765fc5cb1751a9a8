package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/splice/pkg/edit"
	"github.com/yaklabco/splice/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatResultLine formats the run outcome as a single line.
// Example: "Applied 12 edits to 3 files, 2 conflicts discarded".
func (s *Styles) FormatResultLine(result *runner.Result) string {
	fileWord := wordFiles
	if result.FilesModified == 1 {
		fileWord = wordFile
	}

	var parts []string
	if result.Errors == 0 && result.EditsApplied == 0 {
		parts = append(parts, s.Dim.Render("No edits to apply"))
	} else {
		parts = append(parts, s.Success.Render(
			fmt.Sprintf("Applied %d edits to %d %s", result.EditsApplied, result.FilesModified, fileWord)))
	}
	if result.Errors > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d conflicts discarded", result.Errors)))
	}
	if result.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d files failed", result.FilesErrored)))
	}
	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats the run outcome as a summary block.
func (s *Styles) FormatSummary(result *runner.Result) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files edited:      " +
		s.SummaryValue.Render(strconv.Itoa(result.FilesDone)) + "\n")

	if result.FilesModified > 0 {
		builder.WriteString("  Files written:     " +
			s.Success.Render(strconv.Itoa(result.FilesModified)) + "\n")
	}
	if result.FilesSkipped > 0 {
		builder.WriteString("  Files ineligible:  " +
			s.Dim.Render(strconv.Itoa(result.FilesSkipped)) + "\n")
	}
	if result.FilesErrored > 0 {
		builder.WriteString("  Files failed:      " +
			s.Failure.Render(strconv.Itoa(result.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")
	builder.WriteString("  Edits applied:     " +
		s.SummaryValue.Render(strconv.Itoa(result.EditsApplied)) + "\n")

	if result.Errors > 0 {
		builder.WriteString("  Edits discarded:   " +
			s.Failure.Render(strconv.Itoa(result.Errors)) + "\n")
	}

	return builder.String()
}

// FormatDiff renders a dry-run diff with add/remove coloring.
func (s *Styles) FormatDiff(d *edit.Diff) string {
	if !d.HasChanges() {
		return ""
	}

	var builder strings.Builder
	for _, line := range strings.Split(strings.TrimRight(d.String(), "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			builder.WriteString(s.DiffHeader.Render(line))
		case strings.HasPrefix(line, "@@"):
			builder.WriteString(s.DiffHunk.Render(line))
		case strings.HasPrefix(line, "+"):
			builder.WriteString(s.DiffAdd.Render(line))
		case strings.HasPrefix(line, "-"):
			builder.WriteString(s.DiffRemove.Render(line))
		default:
			builder.WriteString(line)
		}
		builder.WriteString("\n")
	}
	return builder.String()
}
