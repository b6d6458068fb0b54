package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Version information for the reindent CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colored returns Version with major, minor and patch painted separately.
// Anything that is not a dotted triple is returned as is.
func Colored(enabled bool) string {
	core, suffix, _ := strings.Cut(Version, "-")
	parts := strings.Split(core, ".")
	if !enabled || len(parts) != 3 {
		return Version
	}
	cols := []*color.Color{versionMajorColor, versionMinorColor, versionPatchColor}
	for i, c := range cols {
		c.EnableColor()
		parts[i] = c.Sprint(parts[i])
	}
	out := strings.Join(parts, ".")
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// String renders the full version line printed by --version.
func String(colored bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "reindent %s", Colored(colored))
	if c := strings.TrimSpace(GitCommit); c != "" {
		fmt.Fprintf(&b, " (%s", c)
		if d := strings.TrimSpace(BuildDate); d != "" {
			fmt.Fprintf(&b, ", %s", d)
		}
		b.WriteByte(')')
	}
	return b.String()
}
