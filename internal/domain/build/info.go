// Package build describes the binary being run.
package build

import (
	"fmt"
	"runtime"
)

// Info holds values injected with -ldflags at build time.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Normalize fills unset fields for local builds.
func (i Info) Normalize() Info {
	if i.Version == "" {
		i.Version = "dev"
	}
	if i.Commit == "" {
		i.Commit = "none"
	}
	if i.BuildDate == "" {
		i.BuildDate = "unknown"
	}
	if i.GoVersion == "" {
		i.GoVersion = runtime.Version()
	}
	return i
}

// String is the one-line form printed by --version.
func (i Info) String() string {
	n := i.Normalize()
	return fmt.Sprintf("appstate %s (%s, built %s, %s)", n.Version, n.Commit, n.BuildDate, n.GoVersion)
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the project repository URL.
func RepoURL() string {
	return "https://github.com/bnema/appstate"
}
