package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is set via ldflags at release time.
	Version string

	Revision  = readRevision()
	GoVersion = runtime.Version()
	Platform  = runtime.GOOS + "/" + runtime.GOARCH
)

// GetVersion returns the release version, falling back to the VCS revision
// for development builds.
func GetVersion() string {
	if Version != "" {
		return Version
	}

	return Revision
}

// String returns a one-line description of the build.
func String() string {
	return fmt.Sprintf("%s (%s, %s)", GetVersion(), GoVersion, Platform)
}

func readRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	rev := "unknown"
	dirty := false

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
			if len(rev) > 7 {
				rev = rev[:7]
			}

		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if dirty {
		return rev + "-dirty"
	}

	return rev
}
