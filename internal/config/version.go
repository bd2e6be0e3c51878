package config

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CurrentSchemaVersion is written to new config files.
const CurrentSchemaVersion = "1.0.0"

// ErrUnsupportedVersion indicates a config file written by a newer major
// version of footprint.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// CheckVersion accepts an empty version (treated as current) or any version
// with the same or an older major number.
func (c *Config) CheckVersion() error {
	if c.Version == "" {
		c.Version = CurrentSchemaVersion
		return nil
	}

	v, err := semver.NewVersion(c.Version)
	if err != nil {
		return fmt.Errorf("config version %q is not valid semver: %w", c.Version, err)
	}

	current := semver.MustParse(CurrentSchemaVersion)
	if v.Major() > current.Major() {
		return fmt.Errorf("%w: %s (this build supports %d.x)", ErrUnsupportedVersion, v, current.Major())
	}
	return nil
}
