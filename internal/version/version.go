// Package version reports the build's version and commit.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/fuzzyplus/internal/version.Version=v1.0.0 \
//	                   -X github.com/muurk/fuzzyplus/internal/version.Commit=abc1234"
var (
	Version = ""
	Commit  = ""
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		info = nil
	}
	Version, Commit = resolve(Version, Commit, info)
}

// resolve fills whatever ldflags left empty from the module and VCS
// build settings, then falls back to "dev" and "unknown".
func resolve(version, commit string, info *debug.BuildInfo) (string, string) {
	if info != nil {
		settings := make(map[string]string, len(info.Settings))
		for _, s := range info.Settings {
			settings[s.Key] = s.Value
		}

		if commit == "" {
			if rev := settings["vcs.revision"]; rev != "" {
				if len(rev) > 7 {
					rev = rev[:7]
				}
				if settings["vcs.modified"] == "true" {
					rev += "-dirty"
				}
				commit = rev
			}
		}

		// go install module@vX.Y.Z records the tag as the main module version
		if version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
	}

	if version == "" {
		version = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	return version, commit
}

// Short returns the version without a leading "v".
func Short() string {
	return strings.TrimPrefix(Version, "v")
}

// Full returns the version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
