package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gqlfront/diag"
	"gqlfront/parser"
	"gqlfront/token"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

var sampleTree = map[string]string{
	"b.gql":         "MATCH (n:Person) RETURN n.name",
	"a.gql":         "MATCH (n RETURN n",
	"sub/c.gql":     "RETURN 1 +",
	"notes.txt":     "not a query",
	"sub/empty.gql": "",
}

func TestListFiles(t *testing.T) {
	root := writeTree(t, sampleTree)
	files, err := ListFiles(root)
	if err != nil {
		t.Fatal(err)
	}
	var rel []string
	for _, f := range files {
		r, err := filepath.Rel(root, f)
		if err != nil {
			t.Fatal(err)
		}
		rel = append(rel, filepath.ToSlash(r))
	}
	want := []string{"a.gql", "b.gql", "sub/c.gql", "sub/empty.gql"}
	if diff := cmp.Diff(want, rel); diff != "" {
		t.Fatalf("files (-want +got):\n%s", diff)
	}
}

func TestParseDir(t *testing.T) {
	root := writeTree(t, sampleTree)
	fs, results, err := ParseDir(context.Background(), root, Options{Jobs: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 4 {
		t.Fatalf("results = %d, want 4", len(results))
	}
	wantErrors := []bool{true, false, true, false}
	for i, r := range results {
		if r.HasErrors() != wantErrors[i] {
			t.Errorf("%s: HasErrors = %v", r.Path, r.HasErrors())
		}
		if r.AST == nil || r.Cached {
			t.Errorf("%s: expected a fresh AST", r.Path)
		}
		if fs.Get(r.FileID) == nil {
			t.Errorf("%s: file not in file set", r.Path)
		}
	}
	if results[1].Tokens != 10 {
		t.Errorf("tokens = %d, want 10", results[1].Tokens)
	}
}

func TestParseDirCancelled(t *testing.T) {
	root := writeTree(t, sampleTree)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := ParseDir(ctx, root, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestParseFilesLoadError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.gql")
	_, results, err := ParseFiles(context.Background(), []string{missing}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || len(results[0].Diagnostics) != 1 || results[0].Diagnostics[0].Code != diag.IOLoadFile {
		t.Fatalf("expected one load diagnostic, got %+v", results)
	}
}

func TestParseDirReportsProgress(t *testing.T) {
	root := writeTree(t, sampleTree)
	events := make(chan Event, 64)
	_, _, err := ParseDir(context.Background(), root, Options{Jobs: 2, Progress: ChannelSink{Ch: events}})
	if err != nil {
		t.Fatal(err)
	}
	close(events)

	final := make(map[string]Status)
	queued := 0
	for ev := range events {
		rel, err := filepath.Rel(root, ev.File)
		if err != nil {
			t.Fatal(err)
		}
		if ev.Status == StatusQueued {
			queued++
			continue
		}
		final[filepath.ToSlash(rel)] = ev.Status
	}
	if queued != 4 {
		t.Errorf("queued events = %d, want 4", queued)
	}
	want := map[string]Status{
		"a.gql":         StatusError,
		"b.gql":         StatusDone,
		"sub/c.gql":     StatusError,
		"sub/empty.gql": StatusDone,
	}
	if diff := cmp.Diff(want, final); diff != "" {
		t.Fatalf("final statuses (-want +got):\n%s", diff)
	}
}

func TestChannelSinkNil(t *testing.T) {
	ChannelSink{}.OnEvent(Event{File: "x.gql"})
}

func TestDiskCacheServesDiagnostics(t *testing.T) {
	root := writeTree(t, map[string]string{"q.gql": "MATCH (n RETURN n; LET abs = 1 RETURN abs"})
	cache, err := OpenDiskCache(t.TempDir(), "gqlfront")
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Cache: cache, DiagnosticsOnly: true}
	path := filepath.Join(root, "q.gql")

	_, first, err := Parse(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached || len(first.Diagnostics) == 0 {
		t.Fatalf("first run: cached=%v diagnostics=%d", first.Cached, len(first.Diagnostics))
	}

	_, second, err := Parse(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached || second.AST != nil {
		t.Fatalf("second run should come from the cache")
	}
	if diff := cmp.Diff(first.Diagnostics, second.Diagnostics); diff != "" {
		t.Fatalf("cached diagnostics (-fresh +cached):\n%s", diff)
	}
	if second.Tokens != first.Tokens {
		t.Fatalf("tokens = %d, want %d", second.Tokens, first.Tokens)
	}

	// Different options must not reuse the entry.
	opts.Parser = parser.Options{MaxErrors: 1}
	_, third, err := Parse(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.Cached {
		t.Fatal("entry reused across parser options")
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	opts.Parser = parser.Options{}
	_, fourth, err := Parse(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if fourth.Cached {
		t.Fatal("entry survived DropAll")
	}
}

func TestTokenizeSource(t *testing.T) {
	res := TokenizeSource("t.gql", []byte("RETURN 'x"), 0)
	if n := len(res.Tokens); n == 0 || res.Tokens[n-1].Kind != token.EOF {
		t.Fatalf("token stream must end in EOF")
	}
	if res.Bag.Len() != 1 || res.Bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Fatalf("expected an unterminated string diagnostic, got %d", res.Bag.Len())
	}
}

func TestParseSourceNormalizes(t *testing.T) {
	fs, res, err := ParseSource(context.Background(), "crlf.gql", []byte("\uFEFFMATCH (n)\r\nRETURN n"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics)
	}
	if got := string(fs.Get(res.FileID).Content); got != "MATCH (n)\nRETURN n" {
		t.Fatalf("content = %q", got)
	}
}
