package version

import "fmt"

// ProgName is the canonical program name, used in output and in the
// marker label stamped on built images.
const ProgName = "imgcraft"

// These variables are injected at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns the user-facing version line.
func String() string {
	return fmt.Sprintf("%s, version %s", ProgName, Version)
}
