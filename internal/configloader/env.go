package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/splice/pkg/config"
)

// Environment variables recognized by splice.
const (
	EnvJobs   = "SPLICE_JOBS"
	EnvColor  = "SPLICE_COLOR"
	EnvBackup = "SPLICE_BACKUP"
	EnvLangs  = "SPLICE_LANGS"
)

// applyEnv overlays SPLICE_* environment variables onto cfg and
// returns warnings for values that could not be interpreted.
func applyEnv(cfg *config.Config) []string {
	var warnings []string

	if v, ok := os.LookupEnv(EnvJobs); ok {
		jobs, err := strconv.Atoi(v)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s=%q is not an integer, ignored", EnvJobs, v))
		} else {
			cfg.Jobs = jobs
		}
	}

	if v, ok := os.LookupEnv(EnvColor); ok {
		cfg.Color = config.ColorMode(v)
	}

	if v, ok := os.LookupEnv(EnvBackup); ok {
		backup, err := strconv.ParseBool(v)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s=%q is not a boolean, ignored", EnvBackup, v))
		} else {
			cfg.Backup = backup
		}
	}

	if v, ok := os.LookupEnv(EnvLangs); ok {
		var langs []string
		for _, lang := range strings.Split(v, ",") {
			if lang = strings.TrimSpace(lang); lang != "" {
				langs = append(langs, lang)
			}
		}
		cfg.Langs = langs
	}

	return warnings
}
