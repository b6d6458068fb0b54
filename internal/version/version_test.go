package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestString(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	})

	tests := []struct {
		version, commit, date string
		want                  string
	}{
		{"1.2.3", "", "", "reindent 1.2.3"},
		{"1.2.3", "abc123", "", "reindent 1.2.3 (abc123)"},
		{"1.2.3", "abc123", "2024-01-15", "reindent 1.2.3 (abc123, 2024-01-15)"},
		{"1.2.3", "", "2024-01-15", "reindent 1.2.3"},
	}
	for _, tt := range tests {
		Version, GitCommit, BuildDate = tt.version, tt.commit, tt.date
		if got := String(false); got != tt.want {
			t.Errorf("String(false) = %q, want %q", got, tt.want)
		}
	}
}

func TestColored(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "0.1.0-dev"
	got := Colored(true)
	if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-dev") {
		t.Errorf("Colored(true) = %q", got)
	}
	if Colored(false) != "0.1.0-dev" {
		t.Errorf("Colored(false) = %q", Colored(false))
	}

	Version = "nightly"
	if Colored(true) != "nightly" {
		t.Errorf("Colored(true) on non-semver = %q", Colored(true))
	}
}
