package version

import (
	"strings"
	"testing"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	orig := Version
	Version = v
	t.Cleanup(func() { Version = orig })
}

func TestColored(t *testing.T) {
	tests := []struct {
		version string
		enable  bool
		want    string
	}{
		{"0.1.0-dev", false, "0.1.0-dev"},
		{"1.2.3", false, "1.2.3"},
		{"nightly", true, "nightly"},
		{"1.2", true, "1.2"},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			withVersion(t, tt.version)
			if got := Colored(tt.enable); got != tt.want {
				t.Fatalf("Colored(%v) = %q, want %q", tt.enable, got, tt.want)
			}
		})
	}
}

func TestColoredEnabled(t *testing.T) {
	withVersion(t, "1.2.3-rc.1")
	got := Colored(true)
	if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-rc.1") {
		t.Fatalf("Colored(true) = %q", got)
	}
}

func TestCurrent(t *testing.T) {
	withVersion(t, "  ")
	origCommit := GitCommit
	GitCommit = " abc123 "
	t.Cleanup(func() { GitCommit = origCommit })

	info := Current()
	if info.Version != "dev" || info.GitCommit != "abc123" {
		t.Fatalf("Current() = %+v", info)
	}
}
