package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/splice/internal/configloader"
	"github.com/yaklabco/splice/internal/logging"
	"github.com/yaklabco/splice/internal/ui/pretty"
	"github.com/yaklabco/splice/pkg/config"
	"github.com/yaklabco/splice/pkg/gitindex"
	"github.com/yaklabco/splice/pkg/langdetect"
	"github.com/yaklabco/splice/pkg/resolve"
	"github.com/yaklabco/splice/pkg/runner"
	"github.com/yaklabco/splice/pkg/stream"
)

type applyFlags struct {
	jobs    int
	dryRun  bool
	backup  bool
	langs   []string
	summary bool
}

func newApplyCommand() *cobra.Command {
	flags := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "apply <build-dir> [path-filters...]",
		Short: "Apply an edit stream from stdin to the working tree",
		Long:  applyLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of files edited concurrently (0 = auto)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "print diffs without writing any file")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a sidecar copy of each file before overwriting")
	cmd.Flags().StringSliceVar(&flags.langs, "lang", nil, "restrict edits to files of the given source languages")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a summary block after the run")

	return cmd
}

const applyLongDescription = `Apply an edit stream from stdin to the working tree.

The build directory is the directory the analysis tool ran from: paths
in the stream that do not exist as given are resolved relative to it.
Optional path filters restrict which files may be edited, matching the
pathspec behavior of git ls-files.

Examples:
  clang-tool ... | splice apply out/gn
  clang-tool ... | splice apply out/gn third_party/blink
  clang-tool ... | splice apply out/gn --dry-run
  clang-tool ... | splice apply out/gn --lang c++ --backup`

func runApply(cmd *cobra.Command, args []string, flags *applyFlags) error {
	logger := logging.Default()
	ctx := logging.WithLogger(cmd.Context(), logger)

	buildDir, filters := args[0], args[1:]
	if info, err := os.Stat(buildDir); err != nil || !info.IsDir() {
		return &SetupError{Err: fmt.Errorf("build directory %q does not exist", buildDir)}
	}

	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	logger.Debug("starting apply run",
		logging.FieldBuildDir, buildDir,
		logging.FieldFilters, filters,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldDryRun, flags.dryRun,
	)

	// Eligibility comes from the set of git-tracked files, narrowed by
	// the path filters and the optional language restriction.
	index, err := gitindex.Load(ctx, "", filters)
	if err != nil {
		return &SetupError{Err: err}
	}
	logger.Debug("loaded git index", logging.FieldTrackedFiles, index.Len())

	matcher := langdetect.NewMatcher(cfg.Langs)
	eligible := func(path string) bool {
		if !index.Eligible(path) {
			return false
		}
		if len(cfg.Langs) == 0 {
			return true
		}
		content, err := os.ReadFile(path)
		return err == nil && matcher.Match(path, content)
	}

	rawBatch, stats, err := stream.Parse(cmd.InOrStdin(), logger)
	if err != nil {
		return &SetupError{Err: fmt.Errorf("read edit stream: %w", err)}
	}
	logger.Debug("parsed edit stream",
		logging.FieldLinesParsed, stats.Lines,
		logging.FieldMalformed, stats.Malformed,
	)

	resolver := resolve.New(buildDir)
	batch := resolver.Batch(rawBatch, logger)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	stdout := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, stdout))

	result, err := runner.Run(ctx, batch, runner.Options{
		Eligible: eligible,
		Jobs:     cfg.Jobs,
		DryRun:   flags.dryRun,
		Backup:   cfg.Backup,
		Progress: pretty.NewProgressPrinter(stdout),
	})
	if err != nil {
		return err
	}

	if flags.dryRun {
		for _, outcome := range result.Files {
			if outcome.Result != nil && outcome.Result.Diff != nil {
				fmt.Fprint(stdout, styles.FormatDiff(outcome.Result.Diff))
			}
		}
	}

	if flags.summary {
		fmt.Fprint(stdout, styles.FormatSummary(result))
	} else {
		fmt.Fprint(stdout, styles.FormatResultLine(result))
	}

	if code := result.ExitCode(); code > 0 {
		return &ConflictsError{Count: code}
	}
	return nil
}

// loadConfig merges the config file, environment, and CLI flags.
func loadConfig(cmd *cobra.Command, flags *applyFlags) (*config.Config, error) {
	logger := logging.Default()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(configloader.LoadOptions{ExplicitPath: configPath})
	if err != nil {
		return nil, &SetupError{Err: err}
	}
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if loadResult.LoadedFrom != "" {
		logger.Debug("loaded configuration", logging.FieldPath, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if cmd.Flags().Changed("backup") {
		cfg.Backup = flags.backup
	}
	if cmd.Flags().Changed("lang") {
		cfg.Langs = flags.langs
	}

	return cfg, nil
}
