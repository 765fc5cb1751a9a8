package stream_test

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/splice/pkg/stream"
)

func FuzzParse(f *testing.F) {
	// Seed corpus.
	f.Add("")
	f.Add("r:::a.cc:::10:::5:::text\n")
	f.Add("r:::a.cc:::10:::5:::multi\x00line\n")
	f.Add("include-user-header:::a.cc:::0:::0:::x:::y:::z\n")
	f.Add("not an edit line\n")
	f.Add("r:::a.cc:::-1:::5:::neg\n")
	f.Add("r:::a.cc:::abc:::5:::nan\n")
	f.Add(":::::::::::::::\n")
	f.Add("r:::a.cc:::1:::2\r\n")

	f.Fuzz(func(t *testing.T, input string) {
		logger := log.New(io.Discard)

		batch, stats, err := stream.Parse(strings.NewReader(input), logger)
		if err != nil {
			// Only stream read failures may error, and a string
			// reader cannot fail.
			t.Fatalf("Parse failed on in-memory input: %v", err)
		}

		// Every parsed edit carries a valid range and every input
		// line is either grouped or counted malformed.
		var parsed int
		for _, edits := range batch {
			for _, e := range edits {
				if e.Offset < 0 || e.Length < 0 {
					t.Errorf("negative range parsed: %+v", e)
				}
				parsed++
			}
		}
		if parsed+stats.Malformed > stats.Lines {
			t.Errorf("parsed %d + malformed %d exceeds %d lines",
				parsed, stats.Malformed, stats.Lines)
		}
	})
}
