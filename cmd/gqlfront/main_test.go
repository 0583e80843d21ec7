package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"gqlfront/internal/diagfmt"
	"gqlfront/internal/version"
)

// resetFlags restores every flag to its default so runs do not leak state
// into each other through the package-level commands.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, int) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	code := run()
	return out.String(), code
}

func writeQuery(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDiagSimple(t *testing.T) {
	path := writeQuery(t, "q.gql", "MATCH (n RETURN n")
	out, code := execute(t, "diag", "--format", "simple", "--path-mode", "basename", path)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if want := "q.gql:1:7: error SYN2002: expected ')' to close '(', found keyword RETURN\n"; out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}

	clean := writeQuery(t, "ok.gql", "MATCH (n) RETURN n")
	out, code = execute(t, "diag", "--format", "simple", clean)
	if code != 0 || out != "" {
		t.Fatalf("clean file: code=%d output=%q", code, out)
	}
}

func TestDiagJSON(t *testing.T) {
	path := writeQuery(t, "q.gql", "LET abs = 1 RETURN 1")
	out, code := execute(t, "diag", "--format", "json", "--suggest", path)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	var got diagfmt.DiagnosticsOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if got.Count != 1 || got.Diagnostics[0].Code != "SYN2014" || len(got.Diagnostics[0].Fixes) != 1 {
		t.Fatalf("output = %+v", got)
	}
}

func TestDiagUnknownFormat(t *testing.T) {
	path := writeQuery(t, "q.gql", "RETURN 1")
	if _, code := execute(t, "diag", "--format", "yaml", path); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
}

func TestDiagUsesConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "gqlfront.toml")
	if err := os.WriteFile(cfg, []byte("[output]\nformat = \"simple\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	path := writeQuery(t, "q.gql", "RETURN 1 +")
	out, code := execute(t, "diag", "--config", cfg, "--path-mode", "basename", path)
	if code != 1 || !strings.HasPrefix(out, "q.gql:1:") || !strings.Contains(out, "SYN2008") {
		t.Fatalf("code=%d output=%q", code, out)
	}
}

func TestDiagDirectory(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{"a.gql": "RETURN 1", "b.gql": "RETURN (1"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	out, code := execute(t, "diag", "--ui", "off", "--format", "simple", "--path-mode", "basename", dir)
	if code != 1 || !strings.HasPrefix(out, "b.gql:1:") || strings.Contains(out, "a.gql") {
		t.Fatalf("code=%d output=%q", code, out)
	}
	if _, code := execute(t, "diag", "--ui", "sometimes", dir); code != 2 {
		t.Fatalf("bad ui mode: code=%d", code)
	}
}

func TestDiagTimings(t *testing.T) {
	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() { rootCmd.SetErr(nil) })

	path := writeQuery(t, "q.gql", "RETURN 1")
	if _, code := execute(t, "diag", "--timings", "--format", "simple", path); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	got := stderr.String()
	if !strings.HasPrefix(got, "timings:\n  parse") || !strings.Contains(got, "(1 files)") || !strings.Contains(got, "  total") {
		t.Fatalf("stderr = %q", got)
	}
}

func TestReadUIMode(t *testing.T) {
	tests := []struct {
		in   string
		want uiMode
		err  bool
	}{
		{"", uiModeAuto, false},
		{" ON ", uiModeOn, false},
		{"off", uiModeOff, false},
		{"maybe", "", true},
	}
	for _, tt := range tests {
		got, err := readUIMode(tt.in)
		if (err != nil) != tt.err || got != tt.want {
			t.Errorf("readUIMode(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestTokenizeJSON(t *testing.T) {
	path := writeQuery(t, "t.gql", "RETURN 1")
	out, code := execute(t, "tokenize", "--format", "json", path)
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	var toks []diagfmt.TokenOutput
	if err := json.Unmarshal([]byte(out), &toks); err != nil {
		t.Fatal(err)
	}
	if len(toks) != 3 || toks[0].Keyword != "RETURN" {
		t.Fatalf("tokens = %+v", toks)
	}
}

func TestParsePretty(t *testing.T) {
	path := writeQuery(t, "p.gql", "MATCH (n) RETURN n")
	out, code := execute(t, "parse", path)
	if code != 0 || !strings.Contains(out, "MatchClause") {
		t.Fatalf("code=%d output:\n%s", code, out)
	}
}

func TestFixCommand(t *testing.T) {
	path := writeQuery(t, "f.gql", "RETURN (1 + 2")

	out, code := execute(t, "fix", "--list", path)
	if code != 0 || !strings.Contains(out, "* SYN2002-") || !strings.Contains(out, "insert ')'") {
		t.Fatalf("list: code=%d output=%q", code, out)
	}

	out, code = execute(t, "fix", "--dry-run", path)
	if code != 0 || !strings.Contains(out, "RETURN (1 + 2)") {
		t.Fatalf("dry run: code=%d output=%q", code, out)
	}
	if data, _ := os.ReadFile(path); string(data) != "RETURN (1 + 2" {
		t.Fatalf("dry run wrote the file: %q", data)
	}

	out, code = execute(t, "fix", "--all", path)
	if code != 0 || !strings.Contains(out, "Applied 1 fix(es)") {
		t.Fatalf("apply: code=%d output=%q", code, out)
	}
	if data, _ := os.ReadFile(path); string(data) != "RETURN (1 + 2)" {
		t.Fatalf("file = %q", data)
	}

	out, code = execute(t, "fix", path)
	if code != 0 || !strings.Contains(out, "No applicable fixes found.") {
		t.Fatalf("second run: code=%d output=%q", code, out)
	}

	if _, code := execute(t, "fix", "--all", "--once", path); code != 2 {
		t.Fatalf("conflicting flags: code=%d", code)
	}
}

func TestConformCommand(t *testing.T) {
	out, code := execute(t, "conform", "--quiet", filepath.Join("..", "..", "testdata", "conformance"))
	if code != 0 || strings.Contains(out, "FAIL") || !strings.HasSuffix(out, " passed, 0 failed\n") {
		t.Fatalf("code=%d output:\n%s", code, out)
	}
}

func TestVersionJSON(t *testing.T) {
	out, code := execute(t, "version", "--format", "json")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	var info version.Info
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatal(err)
	}
	if info.Version != version.Current().Version || info.GitCommit != "" {
		t.Fatalf("info = %+v", info)
	}
}
