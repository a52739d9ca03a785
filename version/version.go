// Package version exposes build identity for the ascospore binary.
package version

import (
	"runtime/debug"
)

const name = "ascospore"

// Name returns the binary name.
func Name() string {
	return name
}

// Version returns the module version recorded in the build info, or "dev"
// for local builds.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "dev"
	}

	return info.Main.Version
}

// Commit returns the VCS revision the binary was built from, suffixed with
// ".m" when the tree was dirty. Empty when no VCS info was stamped.
func Commit() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	var revision, modified string

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			if setting.Value == "true" {
				modified = ".m"
			}
		}
	}

	return revision + modified
}
