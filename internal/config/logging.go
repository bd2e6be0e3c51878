package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rshade/footprint/internal/logging"
)

// LoggingConfig is the logging section of the config file.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// DefaultLoggingConfig mirrors logging.DefaultConfig.
func DefaultLoggingConfig() LoggingConfig {
	def := logging.DefaultConfig()
	return LoggingConfig{Level: def.Level, Format: def.Format}
}

// Validate checks the level and format names.
func (lc LoggingConfig) Validate() error {
	levels := []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}
	if lc.Level != "" && !slices.Contains(levels, strings.ToLower(lc.Level)) {
		return fmt.Errorf("logging.level %q is not a known level", lc.Level)
	}
	formats := []string{logging.FormatJSON, logging.FormatConsole, logging.FormatText}
	if lc.Format != "" && !slices.Contains(formats, strings.ToLower(lc.Format)) {
		return fmt.Errorf("logging.format %q must be json, console or text", lc.Format)
	}
	return nil
}

// ToLoggingConfig converts the config section into a logging.Config.
// A non-empty File selects file output; otherwise logs go to stderr.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}
