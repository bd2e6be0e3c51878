package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides are the FOOTPRINT_* variables that override the config file.
// Unset variables leave the config untouched.
type EnvOverrides struct {
	Preset         string   `env:"FOOTPRINT_PRESET"`
	OutputFormat   string   `env:"FOOTPRINT_OUTPUT_FORMAT"`
	Unit           string   `env:"FOOTPRINT_UNIT"`
	LogLevel       string   `env:"FOOTPRINT_LOG_LEVEL"`
	LogFormat      string   `env:"FOOTPRINT_LOG_FORMAT"`
	LogFile        string   `env:"FOOTPRINT_LOG_FILE"`
	Addr           string   `env:"FOOTPRINT_ADDR"`
	AllowedOrigins []string `env:"FOOTPRINT_ALLOWED_ORIGINS" envSeparator:","`
	AUBenchmark    *float64 `env:"FOOTPRINT_AU_BENCHMARK"`
	WorldBenchmark *float64 `env:"FOOTPRINT_WORLD_BENCHMARK"`
}

// ApplyEnv applies overrides from the process environment.
func ApplyEnv(cfg *Config) error {
	return ApplyEnvFrom(cfg, envMap())
}

// ApplyEnvFrom applies overrides from environ instead of the process
// environment.
func ApplyEnvFrom(cfg *Config, environ map[string]string) error {
	var o EnvOverrides
	if err := env.ParseWithOptions(&o, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	o.apply(cfg)
	return nil
}

func (o EnvOverrides) apply(cfg *Config) {
	setString(&cfg.Preset, o.Preset)
	setString(&cfg.Output.Format, o.OutputFormat)
	setString(&cfg.Output.Unit, o.Unit)
	setString(&cfg.Logging.Level, o.LogLevel)
	setString(&cfg.Logging.Format, o.LogFormat)
	setString(&cfg.Logging.File, o.LogFile)
	setString(&cfg.Server.Addr, o.Addr)

	if len(o.AllowedOrigins) > 0 {
		cfg.Server.AllowedOrigins = o.AllowedOrigins
	}
	if o.AUBenchmark != nil {
		cfg.Benchmarks.AUPerCapitaTonnes = *o.AUBenchmark
	}
	if o.WorldBenchmark != nil {
		cfg.Benchmarks.WorldPerCapitaTonnes = *o.WorldBenchmark
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func envMap() map[string]string {
	return env.ToMap(os.Environ())
}
