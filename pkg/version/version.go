// Package version reports the build version of footprint.
package version

import "runtime/debug"

// Set at build time via -ldflags "-X github.com/rshade/footprint/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Overridden by the linker.
var version = "dev"

// GetVersion returns the linker-provided version, the module version from
// build info, or "dev".
func GetVersion() string {
	if version != "dev" && version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
