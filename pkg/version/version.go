// Package version exposes the build version of responsive-link.
package version

import (
	"github.com/Masterminds/semver/v3"
)

// devVersion is reported when no valid version was injected at build time.
const devVersion = "dev"

// version is set with -ldflags "-X github.com/rshade/responsive-link/pkg/version.version=1.2.3".
//
//nolint:gochecknoglobals // Overwritten by the linker.
var version = ""

// GetVersion returns the injected version when it is valid semver, else "dev".
func GetVersion() string {
	return normalize(version)
}

func normalize(v string) string {
	if v == "" {
		return devVersion
	}
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return devVersion
	}
	return parsed.String()
}
