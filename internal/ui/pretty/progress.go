package pretty

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ProgressPrinter renders the cumulative run counters after each
// completed file:
//
//	Applied 7 edits (1 errors) to 3 files [42.86%]
//
// On a terminal the line redraws in place with a carriage return and a
// final newline is emitted when the run finishes. On a non-terminal
// writer only the final totals are printed, so piped output is not
// flooded with intermediate updates.
type ProgressPrinter struct {
	w           io.Writer
	interactive bool
	width       int
	last        string
}

// NewProgressPrinter creates a progress printer for w, detecting
// whether w is a terminal and, if so, its width.
func NewProgressPrinter(w io.Writer) *ProgressPrinter {
	p := &ProgressPrinter{w: w}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		p.interactive = true
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			p.width = width
		}
	}
	return p
}

// Update renders the cumulative counters after a completed file.
func (p *ProgressPrinter) Update(applied, errors, filesDone, total int) {
	percentage := 0.0
	if total > 0 {
		percentage = float64(filesDone) / float64(total) * 100
	}
	p.last = fmt.Sprintf("Applied %d edits (%d errors) to %d files [%.2f%%]",
		applied, errors, filesDone, percentage)

	if !p.interactive {
		return
	}

	line := p.last
	if p.width > 0 && len(line) > p.width {
		line = line[:p.width]
	}
	fmt.Fprintf(p.w, "\r%s", line)
}

// Done finishes the progress display. On a terminal this terminates
// the redrawn line; otherwise it prints the final totals once.
func (p *ProgressPrinter) Done() {
	if p.last == "" {
		return
	}
	if p.interactive {
		fmt.Fprintln(p.w)
		return
	}
	fmt.Fprintln(p.w, p.last)
}
