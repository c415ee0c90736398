// Package version holds build information stamped in with -ldflags.
package version

import "fmt"

// Set with -ldflags "-X github.com/EmundoT/repro-verify/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the release version, or "dev" for local builds.
func GetVersion() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

// GetFullVersion returns the version with commit and build date, e.g.
// "v0.3.0 (commit: abc123, built: 2024-12-27T10:30:00Z)".
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", GetVersion(), Commit, Date)
}

// UserAgent returns the HTTP User-Agent for product, e.g. "repro-verify/v0.3.0".
func UserAgent(product string) string {
	return product + "/" + GetVersion()
}
