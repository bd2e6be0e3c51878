// Package config loads footprint settings from YAML and the environment.
//
// Precedence, lowest to highest: built-in defaults, the config file,
// FOOTPRINT_* environment variables, then CLI flags (applied by the caller).
package config

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint/internal/footprint"
)

// Output formats accepted by Output.Format.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "FOOTPRINT_CONFIG"

const (
	configDirName  = ".footprint"
	configFileName = "config.yaml"
	defaultAddr    = ":8080"
)

// Config is the on-disk configuration shape.
type Config struct {
	// Version is the config schema version (semver).
	Version string `yaml:"version"`

	// Defaults pre-fill consumption quantities the user leaves unset.
	Defaults footprint.ConsumptionInput `yaml:"defaults"`

	// Preset is the default preset name.
	Preset string `yaml:"preset"`

	// Factors are the custom preset overrides. Only fields present here
	// count as supplied.
	Factors *footprint.ManualFactors `yaml:"factors,omitempty"`

	Benchmarks footprint.Benchmarks `yaml:"benchmarks"`
	Output     OutputConfig         `yaml:"output"`
	Logging    LoggingConfig        `yaml:"logging"`
	Server     ServerConfig         `yaml:"server"`

	configPath string
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	Format string `yaml:"format"`
	Unit   string `yaml:"unit"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Version:    CurrentSchemaVersion,
		Defaults:   footprint.DefaultConsumption(),
		Preset:     footprint.PresetBaseline.String(),
		Benchmarks: footprint.DefaultBenchmarks(),
		Output: OutputConfig{
			Format: FormatTable,
			Unit:   string(footprint.UnitKg),
		},
		Logging: DefaultLoggingConfig(),
		Server: ServerConfig{
			Addr:           defaultAddr,
			AllowedOrigins: []string{"*"},
		},
		configPath: DefaultPath(),
	}
}

// DefaultPath returns $FOOTPRINT_CONFIG or ~/.footprint/config.yaml.
// If the home directory is unknown it falls back to the working directory.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(configDirName, configFileName)
	}
	return filepath.Join(home, configDirName, configFileName)
}

// Load reads path on top of the defaults, applies environment overrides and
// validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := New()
	if path != "" {
		cfg.configPath = path
	}

	if err := ShallowMergeYAML(cfg, cfg.configPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if err := cfg.CheckVersion(); err != nil {
		return nil, err
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", cfg.configPath, err)
	}
	return cfg, nil
}

// ConfigPath returns the file this config was loaded from or will save to.
func (c *Config) ConfigPath() string { return c.configPath }

// SetConfigPath changes the save location.
func (c *Config) SetConfigPath(path string) { c.configPath = path }

// Save writes the config as YAML, creating the parent directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Defaults.Validate(); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	if _, err := footprint.ParsePreset(c.Preset); err != nil {
		return fmt.Errorf("preset: %w", err)
	}
	if err := c.Benchmarks.Validate(); err != nil {
		return fmt.Errorf("benchmarks: %w", err)
	}
	if err := validateManual(c.Factors); err != nil {
		return fmt.Errorf("factors: %w", err)
	}
	if !slices.Contains([]string{FormatTable, FormatJSON, FormatCSV}, c.Output.Format) {
		return fmt.Errorf("output.format %q must be one of table, json, csv", c.Output.Format)
	}
	if _, err := footprint.ParseUnit(c.Output.Unit); err != nil {
		return fmt.Errorf("output.unit: %w", err)
	}
	return c.Logging.Validate()
}

// PresetSelection returns the configured preset with the configured factors.
func (c *Config) PresetSelection() (footprint.Preset, error) {
	kind, err := footprint.ParsePreset(c.Preset)
	if err != nil {
		return footprint.Preset{}, err
	}
	return footprint.Preset{Kind: kind, Manual: c.Factors}, nil
}

func validateManual(m *footprint.ManualFactors) error {
	if m == nil {
		return nil
	}
	fields := []struct {
		name  string
		value *float64
	}{
		{"electricity", m.Electricity},
		{"gas", m.Gas},
		{"car", m.Car},
		{"flight", m.Flight},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if v := *f.value; math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return &footprint.InputError{Field: f.name, Value: v}
		}
	}
	return nil
}

type configKey struct{}

// ContextWithConfig stores cfg in ctx.
func ContextWithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the config stored in ctx, or defaults.
func FromContext(ctx context.Context) *Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*Config); ok && cfg != nil {
			return cfg
		}
	}
	return New()
}
