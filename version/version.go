// Package version carries build metadata for the knowli binaries.
package version

import (
	"fmt"
	"runtime"
)

// These variables are set via ldflags during build.
var (
	Version   = "dev"
	Commit    = "none"
	Date      = "unknown"
	GoVersion = runtime.Version()
)

func Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

// Summary returns a short "version (commit)" string for log lines.
func Summary() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	if Commit != "" && Commit != "none" {
		short := Commit
		if len(short) > 7 {
			short = short[:7]
		}
		return fmt.Sprintf("%s (%s)", v, short)
	}
	return v
}

// Info returns the multi-line version report printed by --version.
func Info(binary string) string {
	return fmt.Sprintf("%s version %s\n  commit: %s\n  built: %s\n  go: %s\n  platform: %s",
		binary, Summary(), Commit, Date, GoVersion, Platform())
}
