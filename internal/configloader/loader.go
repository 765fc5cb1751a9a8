// Package configloader locates and loads the splice configuration
// file and applies environment overrides. Precedence, lowest to
// highest: built-in defaults, config file, SPLICE_* environment
// variables, CLI flags (applied by the caller).
package configloader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/splice/pkg/config"
)

// ConfigFileName is the project config file discovered in the working
// directory.
const ConfigFileName = ".splice.yaml"

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is the directory searched for ConfigFileName.
	// Defaults to the process working directory.
	WorkingDir string

	// ExplicitPath is a config file named with --config. When set,
	// discovery is skipped and a missing file is an error.
	ExplicitPath string
}

// LoadResult is the merged configuration plus provenance.
type LoadResult struct {
	// Config is the merged configuration.
	Config *config.Config

	// LoadedFrom is the config file that was read, if any.
	LoadedFrom string

	// Warnings holds non-fatal issues found while loading.
	Warnings []string
}

// Load resolves the configuration for a run.
func Load(opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{Config: config.Default()}

	path, required := opts.ExplicitPath, true
	if path == "" {
		workDir := opts.WorkingDir
		if workDir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("get working directory: %w", err)
			}
			workDir = wd
		}
		path, required = filepath.Join(workDir, ConfigFileName), false
	}

	if err := loadFile(path, required, result); err != nil {
		return nil, err
	}

	result.Warnings = append(result.Warnings, applyEnv(result.Config)...)

	if !result.Config.Color.IsValid() {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("invalid color mode %q, using %q", result.Config.Color, config.ColorAuto))
		result.Config.Color = config.ColorAuto
	}
	if result.Config.Jobs < 0 {
		result.Warnings = append(result.Warnings, "negative jobs value, using auto")
		result.Config.Jobs = 0
	}

	return result, nil
}

func loadFile(path string, required bool, result *LoadResult) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, result.Config); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	result.LoadedFrom = path
	return nil
}
