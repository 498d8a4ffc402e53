package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/redo/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/redo/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/redo/internal/version.Date={{.Date}}
)

// String returns the version line printed by --version for program
func String(program string) string {
	return fmt.Sprintf("%s version %s (commit %s, built %s)\n", program, Version, Commit, Date)
}
