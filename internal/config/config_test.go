package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, `
[parser]
max_depth = 64
max_errors = 20

[output]
color = "off"
context = 2

[driver]
jobs = 4
cache_dir = "/tmp/gqlfront"
`)
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Parser: ParserConfig{MaxDepth: 64, MaxErrors: 20},
		Output: OutputConfig{Color: "off", Format: "pretty", Context: 2},
		Driver: DriverConfig{Jobs: 4, CacheDir: "/tmp/gqlfront"},
		Path:   path,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"syntax", "[parser\n", "failed to parse TOML"},
		{"unknown key", "[parser]\ndepth = 3\n", "unknown keys: parser.depth"},
		{"negative", "[parser]\nmax_depth = -1\n", "max_depth must not be negative"},
		{"bad color", "[output]\ncolor = \"rainbow\"\n", "[output].color"},
		{"bad format", "[output]\nformat = \"xml\"\n", "[output].format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			writeFile(t, path, tt.content)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.errPart) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.errPart)
			}
		})
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "[parser]\nmax_errors = 5\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, err := Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Parser.MaxErrors != 5 || cfg.Path != filepath.Join(root, FileName) {
		t.Fatalf("discovered %+v", cfg)
	}
}

func TestDiscoverNotFound(t *testing.T) {
	// The temp dir may sit below a directory holding a settings file, so
	// only the sentinel is checked when nothing is found.
	cfg, err := Discover(t.TempDir())
	if err != nil && !errors.Is(err, ErrNotFound) {
		t.Fatalf("unexpected error: %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		if diff := cmp.Diff(Default(), cfg, cmpopts.IgnoreFields(Config{}, "Path")); diff != "" {
			t.Fatalf("defaults (-want +got):\n%s", diff)
		}
	}
}
