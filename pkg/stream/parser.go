// Package stream parses the line-oriented edit stream emitted by the
// analysis tool into per-file edit batches.
package stream

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/splice/pkg/edit"
)

// Delimiter separates the five fields of an edit line:
// kind ::: path ::: offset ::: length ::: replacement.
const Delimiter = ":::"

// newlinePlaceholder is the byte sequence the analysis tool embeds in
// replacement text in place of a literal newline.
const newlinePlaceholder = "\x00"

// fieldCount is the number of fields per well-formed line. The
// replacement field may itself contain the delimiter, so lines are
// split at most fieldCount times.
const fieldCount = 5

// maxLineBytes bounds a single stream line. Replacement text for a
// large rewrite can run long, but not this long.
const maxLineBytes = 4 * 1024 * 1024

// Batch maps a tool-reported path to the edits targeting it. Keys are
// raw paths until resolve.Batch canonicalizes them; the per-file edit
// order carries no meaning.
type Batch map[string][]edit.Edit

// Stats reports what Parse consumed.
type Stats struct {
	// Lines is the total number of input lines seen.
	Lines int

	// Malformed is the number of lines that failed to parse and were
	// skipped.
	Malformed int
}

// Parse reads edit lines from r until EOF. A line that does not split
// into exactly five fields, or whose offset or length is not a
// non-negative integer, is logged and skipped; parsing always
// continues to the next line.
func Parse(r io.Reader, logger *log.Logger) (Batch, Stats, error) {
	batch := make(Batch)
	var stats Stats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimRight(scanner.Text(), "\r")

		path, e, ok := parseLine(line)
		if !ok {
			stats.Malformed++
			logger.Warn("unable to parse edit", "line", line)
			continue
		}
		batch[path] = append(batch[path], e)
	}
	if err := scanner.Err(); err != nil {
		return batch, stats, err
	}

	return batch, stats, nil
}

// parseLine decodes one edit line into its target path and edit record.
func parseLine(line string) (string, edit.Edit, bool) {
	fields := strings.SplitN(line, Delimiter, fieldCount)
	if len(fields) != fieldCount {
		return "", edit.Edit{}, false
	}

	offset, err := strconv.Atoi(fields[2])
	if err != nil || offset < 0 {
		return "", edit.Edit{}, false
	}
	length, err := strconv.Atoi(fields[3])
	if err != nil || length < 0 {
		return "", edit.Edit{}, false
	}

	e := edit.Edit{
		Kind:        fields[0],
		Offset:      offset,
		Length:      length,
		Replacement: strings.ReplaceAll(fields[4], newlinePlaceholder, "\n"),
	}
	return fields[1], e, true
}
