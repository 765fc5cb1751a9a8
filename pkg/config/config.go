// Package config defines the run configuration for splice. These are
// pure data types; loading and merging live in internal/configloader.
package config

// ColorMode controls terminal color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is one of the known values.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config holds run ergonomics. Nothing in here changes edit semantics:
// the same edit stream applied to the same tree produces the same
// bytes regardless of configuration.
type Config struct {
	// Jobs is the number of files edited concurrently. 0 means one
	// worker per CPU.
	Jobs int `yaml:"jobs"`

	// Color selects terminal color output: auto, always, never.
	Color ColorMode `yaml:"color"`

	// Backup writes a sidecar copy of each file before overwriting it.
	Backup bool `yaml:"backup"`

	// Langs restricts eligible files to the given source languages.
	// Empty means no language restriction.
	Langs []string `yaml:"langs"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Jobs:  0,
		Color: ColorAuto,
	}
}
