package edit

// Conflict describes two edits that target the same byte range of the
// same file with different replacement text. The edit that sorted
// higher was applied; the other was discarded.
type Conflict struct {
	// Path is the canonical path of the affected file.
	Path string

	// Kind, Offset, and Length identify the contested range.
	Kind   string
	Offset int
	Length int

	// Applied is the replacement text of the edit that won.
	Applied string

	// Discarded is the replacement text of the edit that was dropped.
	Discarded string
}

// Stats captures the outcome of applying one file's edits in memory.
type Stats struct {
	// Applied is the count of edits spliced into the buffer.
	// Exact duplicates are skipped silently and not counted.
	Applied int

	// Conflicts holds every same-range/different-replacement pair
	// detected, with both replacement texts for diagnosis.
	Conflicts []Conflict

	// OutOfRange holds edits whose range does not fit the buffer.
	// These are discarded and counted as errors.
	OutOfRange []Edit
}

// ErrorCount returns the number of edits that were discarded as errors.
func (s Stats) ErrorCount() int {
	return len(s.Conflicts) + len(s.OutOfRange)
}

// Apply applies a file's edits to its in-memory contents and returns
// the mutated buffer. The input slice is not modified; the returned
// buffer may alias content's backing array.
//
// The edits are sorted ascending by (Offset, Length, Kind, Replacement)
// and applied in reverse. Reverse order is a correctness requirement:
// splicing at a high offset never shifts the position of a pending edit
// at a strictly lower offset, so offsets stay valid against the
// original contents throughout the pass. Sorting makes duplicate and
// conflict detection a comparison against the previously applied edit.
func Apply(content []byte, edits []Edit) ([]byte, Stats) {
	var stats Stats
	if len(edits) == 0 {
		return content, stats
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	Sort(sorted)

	buf := content
	var last *Edit
	for i := len(sorted) - 1; i >= 0; i-- {
		e := sorted[i]
		if last != nil && e == *last {
			// Exact duplicate of the edit already applied.
			continue
		}
		if last != nil && e.SameRange(*last) {
			stats.Conflicts = append(stats.Conflicts, Conflict{
				Kind:      e.Kind,
				Offset:    e.Offset,
				Length:    e.Length,
				Applied:   last.Replacement,
				Discarded: e.Replacement,
			})
			continue
		}
		// Validated against the buffer as it stands: an edit that
		// overlaps an already-applied higher edit can reach past the
		// shrunken end and is discarded rather than spliced blindly.
		if e.Offset < 0 || e.Length < 0 || e.End() > len(buf) {
			stats.OutOfRange = append(stats.OutOfRange, e)
			continue
		}

		buf = splice(buf, e.Offset, e.End(), e.Replacement)
		if e.Replacement == "" {
			buf = extendDeletion(buf, e.Offset)
		}
		stats.Applied++
		last = &sorted[i]
	}

	return buf, stats
}

// splice replaces buf[start:end] with repl.
func splice(buf []byte, start, end int, repl string) []byte {
	if len(repl) == 0 {
		return append(buf[:start], buf[end:]...)
	}
	out := make([]byte, 0, len(buf)-(end-start)+len(repl))
	out = append(out, buf[:start]...)
	out = append(out, repl...)
	out = append(out, buf[end:]...)
	return out
}
