// Package version provides build-time metadata for the CLI application.
//
// All variables have sensible defaults and can be overridden at build time
// using -ldflags:
//
//	go build -ldflags "\
//	  -X 'github.com/slashdevops/hwid/internal/version.Version=1.0.0' \
//	  -X 'github.com/slashdevops/hwid/internal/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)'"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the current version of the application
	Version = "0.0.0"

	// BuildDate is the date the application was built
	BuildDate = "1970-01-01T00:00:00Z"

	// GitCommit is the commit hash the application was built from
	GitCommit = ""

	// GitBranch is the branch the application was built from
	GitBranch = ""

	// BuildUser is the user that built the application
	BuildUser = ""

	// GoVersion is the version of Go used to build the application
	GoVersion = runtime.Version()
)

// Short returns the version, falling back to the module version recorded by
// go install when no version was injected.
func Short() string {
	if Version == "0.0.0" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
			return info.Main.Version
		}
	}

	return Version
}

// Long returns the version followed by the remaining build metadata.
func Long() string {
	return fmt.Sprintf("%s, Build date: %s, Build user: %s, Git commit: %s, Git branch: %s, Go version: %s",
		Short(), BuildDate, BuildUser, GitCommit, GitBranch, GoVersion)
}
