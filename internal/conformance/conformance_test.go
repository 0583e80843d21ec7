package conformance

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gqlfront/parser"
)

func TestRepositorySamples(t *testing.T) {
	sum, err := Run(context.Background(), filepath.Join("..", "..", "testdata", "conformance"), 4, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(sum.Cases) == 0 {
		t.Fatal("no samples found")
	}
	for _, c := range sum.Cases {
		if c.Failed {
			t.Errorf("%s (%s): %s; got %v", filepath.Base(c.Path), c.Kind, c.Reason, c.Got)
		}
	}
	if !sum.OK() || sum.Passed != len(sum.Cases) {
		t.Fatalf("passed %d of %d", sum.Passed, len(sum.Cases))
	}
}

func writeSamples(t *testing.T, files map[string]string) string {
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

func TestRunReportsFailures(t *testing.T) {
	root := writeSamples(t, map[string]string{
		"valid/ok.gql":        "MATCH (n) RETURN n",
		"valid/broken.gql":    "MATCH (n RETURN n",
		"invalid/clean.gql":   "RETURN 1",
		"invalid/wrong.gql":   "RETURN [1, 2",
		"invalid/wrong.codes": "SYN2002\n",
		"invalid/right.gql":   "RETURN [1, 2",
		"invalid/right.codes": "# comment\n\nSYN2003\n",
	})
	sum, err := Run(context.Background(), root, 2, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}

	type outcome struct {
		Name   string
		Kind   Kind
		Failed bool
		Reason string
	}
	var got []outcome
	for _, c := range sum.Cases {
		got = append(got, outcome{filepath.Base(c.Path), c.Kind, c.Failed, c.Reason})
	}
	want := []outcome{
		{"broken.gql", KindValid, true, "unexpected errors: SYN2002"},
		{"ok.gql", KindValid, false, ""},
		{"clean.gql", KindInvalid, true, "expected at least one error"},
		{"right.gql", KindInvalid, false, ""},
		{"wrong.gql", KindInvalid, true, "missing expected SYN2002"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("cases (-want +got):\n%s", diff)
	}
	if sum.Passed != 2 || sum.Failed != 3 || sum.OK() {
		t.Fatalf("passed=%d failed=%d", sum.Passed, sum.Failed)
	}
}

func TestRunRequiresSampleDirs(t *testing.T) {
	if _, err := Run(context.Background(), t.TempDir(), 1, parser.Options{}); err == nil {
		t.Fatal("expected an error for a directory without samples")
	}
}

func TestRunCancelled(t *testing.T) {
	root := writeSamples(t, map[string]string{"valid/a.gql": "RETURN 1"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, root, 1, parser.Options{}); err == nil {
		t.Fatal("expected cancellation error")
	}
}
