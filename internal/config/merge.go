package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyVersion    = "version"
	keyDefaults   = "defaults"
	keyPreset     = "preset"
	keyFactors    = "factors"
	keyBenchmarks = "benchmarks"
	keyOutput     = "output"
	keyLogging    = "logging"
	keyServer     = "server"
)

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// target. Sections absent from the file keep their value and unknown keys
// are ignored.
//
// The returned error wraps os.ErrNotExist when the file is missing.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		if err = unmarshalSection(target, key, &node); err != nil {
			return fmt.Errorf("applying config section %q: %w", key, err)
		}
	}

	return nil
}

// unmarshalSection decodes node into the field of target named by key.
// Struct sections decode onto the current values, so a section that names
// only some fields keeps the rest. The factors section is replaced as a whole
// because a field's presence there is meaningful.
func unmarshalSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyVersion:
		return node.Decode(&target.Version)
	case keyDefaults:
		return node.Decode(&target.Defaults)
	case keyPreset:
		return node.Decode(&target.Preset)
	case keyFactors:
		target.Factors = nil
		return node.Decode(&target.Factors)
	case keyBenchmarks:
		return node.Decode(&target.Benchmarks)
	case keyOutput:
		return node.Decode(&target.Output)
	case keyLogging:
		return node.Decode(&target.Logging)
	case keyServer:
		return node.Decode(&target.Server)
	default:
		return nil
	}
}
