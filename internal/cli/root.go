// Package cli provides the Cobra command structure for splice.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/splice/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root splice command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "splice",
		Short: "Apply analysis-tool edit streams to source files",
		Long: `splice applies a batch of byte-offset edits, produced by an external
source-analysis tool, to the files of a version-controlled source tree.

Edits arrive on stdin, one per line, in the form

  kind ::: path ::: offset ::: length ::: replacement

splice resolves each path against the build directory, skips files git
does not track, and rewrites each affected file exactly once. Duplicate
edits are collapsed silently; edits that target the same byte range
with different replacement text are reported as conflicts and counted
in the exit status.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newApplyCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
