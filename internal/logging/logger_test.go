package logging_test

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/splice/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		expected log.Level
	}{
		{"debug level", "debug", log.DebugLevel},
		{"info level", "info", log.InfoLevel},
		{"warn level", "warn", log.WarnLevel},
		{"warning level", "warning", log.WarnLevel},
		{"error level", "error", log.ErrorLevel},
		{"invalid defaults to info", "invalid", log.InfoLevel},
		{"empty defaults to info", "", log.InfoLevel},
		{"case insensitive DEBUG", "DEBUG", log.DebugLevel},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(testCase.level)
			if logger == nil {
				t.Fatal("New returned nil logger")
			}
			if logger.GetLevel() != testCase.expected {
				t.Errorf("expected level %v, got %v", testCase.expected, logger.GetLevel())
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	// Not parallel because it modifies global state.

	original := logging.Default()
	defer logging.SetDefault(original)

	logging.SetDefault(logging.New("info"))

	logging.SetLevel("debug")
	if logging.Default().GetLevel() != log.DebugLevel {
		t.Error("SetLevel to debug failed")
	}

	logging.SetLevel("error")
	if logging.Default().GetLevel() != log.ErrorLevel {
		t.Error("SetLevel to error failed")
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("returns attached logger", func(t *testing.T) {
		t.Parallel()

		logger := logging.New("debug")
		ctx := logging.WithLogger(context.Background(), logger)
		if logging.FromContext(ctx) != logger {
			t.Error("FromContext did not return the attached logger")
		}
	})

	t.Run("falls back to default", func(t *testing.T) {
		t.Parallel()

		if logging.FromContext(context.Background()) == nil {
			t.Error("FromContext returned nil for a bare context")
		}
	})

	t.Run("nil context falls back to default", func(t *testing.T) {
		t.Parallel()

		//nolint:staticcheck // Exercising the nil-context fallback.
		if logging.FromContext(nil) == nil {
			t.Error("FromContext returned nil for a nil context")
		}
	})
}
