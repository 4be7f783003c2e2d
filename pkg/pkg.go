//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// Version is the semantic version of the jtl module embedded at build
// time. It is printed by the CLI when users pass the --version flag.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across
	// the project. For example, it appears in help text and log output.
	Name = "jtl"
	// Description is a short, human-readable summary of the project used
	// in help output and documentation.
	Description = "Parser for the JTL line-oriented tag language"
)

// VersionString returns the embedded version trimmed of whitespace.
func VersionString() string {
	return strings.TrimSpace(Version)
}
