// Package misc keeps program identity: name, version and source revision.
package misc

import (
	"runtime/debug"
	"strings"
)

// Set by linker: -ldflags "-X mdtoc/misc.version=... -X mdtoc/misc.gitHash=..."
var (
	version = ""
	gitHash = ""
)

const appName = "mdtoc"

func GetAppName() string {
	return appName
}

// GetVersion returns version set at build time or module version when
// installed with "go install".
func GetVersion() string {
	if len(version) > 0 {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return strings.TrimPrefix(bi.Main.Version, "v")
	}
	return "dev"
}

// GetGitHash returns source revision, falls back to VCS information embedded
// by go build.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) > 0 {
				return s.Value[:min(len(s.Value), 12)]
			}
		}
	}
	return "unknown"
}
