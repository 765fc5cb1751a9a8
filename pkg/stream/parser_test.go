package stream_test

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/splice/pkg/edit"
	"github.com/yaklabco/splice/pkg/stream"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("well-formed lines group by path", func(t *testing.T) {
		t.Parallel()

		input := strings.Join([]string{
			"r:::foo.cc:::10:::3:::bar",
			"r:::foo.cc:::20:::0:::baz",
			"r:::other.cc:::5:::1:::",
		}, "\n")

		batch, stats, err := stream.Parse(strings.NewReader(input), discardLogger())
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if stats.Lines != 3 || stats.Malformed != 0 {
			t.Errorf("stats = %+v, want 3 lines, 0 malformed", stats)
		}
		if len(batch) != 2 {
			t.Fatalf("paths = %d, want 2", len(batch))
		}
		want := []edit.Edit{
			{Kind: "r", Offset: 10, Length: 3, Replacement: "bar"},
			{Kind: "r", Offset: 20, Length: 0, Replacement: "baz"},
		}
		got := batch["foo.cc"]
		if len(got) != len(want) {
			t.Fatalf("foo.cc edits = %d, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("edit[%d] = %+v, want %+v", i, got[i], want[i])
			}
		}
	})

	t.Run("nul placeholder decodes to newline", func(t *testing.T) {
		t.Parallel()

		input := "r:::a.cc:::0:::0:::first\x00second"
		batch, _, err := stream.Parse(strings.NewReader(input), discardLogger())
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if got := batch["a.cc"][0].Replacement; got != "first\nsecond" {
			t.Errorf("replacement = %q, want %q", got, "first\nsecond")
		}
	})

	t.Run("replacement may contain the delimiter", func(t *testing.T) {
		t.Parallel()

		input := "r:::a.cc:::0:::0:::a:::b:::c"
		batch, stats, err := stream.Parse(strings.NewReader(input), discardLogger())
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if stats.Malformed != 0 {
			t.Fatalf("malformed = %d, want 0", stats.Malformed)
		}
		if got := batch["a.cc"][0].Replacement; got != "a:::b:::c" {
			t.Errorf("replacement = %q, want %q", got, "a:::b:::c")
		}
	})

	t.Run("trailing carriage return is stripped", func(t *testing.T) {
		t.Parallel()

		input := "r:::a.cc:::0:::0:::text\r\n"
		batch, _, err := stream.Parse(strings.NewReader(input), discardLogger())
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if got := batch["a.cc"][0].Replacement; got != "text" {
			t.Errorf("replacement = %q, want %q", got, "text")
		}
	})

	t.Run("malformed lines are skipped not fatal", func(t *testing.T) {
		t.Parallel()

		input := strings.Join([]string{
			"r:::a.cc:::0:::1:::ok",
			"not an edit line",
			"r:::a.cc:::abc:::1:::bad offset",
			"r:::a.cc:::-4:::1:::negative offset",
			"r:::a.cc:::0:::-1:::negative length",
			"r:::a.cc:::5",
			"r:::b.cc:::2:::0:::also ok",
		}, "\n")

		batch, stats, err := stream.Parse(strings.NewReader(input), discardLogger())
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if stats.Malformed != 5 {
			t.Errorf("malformed = %d, want 5", stats.Malformed)
		}
		if len(batch["a.cc"]) != 1 || len(batch["b.cc"]) != 1 {
			t.Errorf("surviving edits wrong: %+v", batch)
		}
	})

	t.Run("empty input yields empty batch", func(t *testing.T) {
		t.Parallel()

		batch, stats, err := stream.Parse(strings.NewReader(""), discardLogger())
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if len(batch) != 0 || stats.Lines != 0 {
			t.Errorf("batch = %+v, stats = %+v", batch, stats)
		}
	})
}
