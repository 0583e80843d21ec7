package fix

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gqlfront/diag"
	"gqlfront/parser"
	"gqlfront/source"
)

func sp(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestGatherCandidatesSkipsDuplicateFixIDs(t *testing.T) {
	span := sp(0, 0, 0)
	d := diag.NewError(diag.SynUnclosedParen, span, "unclosed").
		WithSuggestion(diag.InsertText("insert ')'", span, ")"))
	candidates, skips := gatherCandidates([]diag.Diagnostic{d, d})

	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	if len(skips) != 1 || skips[0].Reason != "duplicate fix id" {
		t.Fatalf("skips = %+v", skips)
	}
	if want := "SYN2002-0-0-0"; candidates[0].ID != want {
		t.Fatalf("id = %q, want %q", candidates[0].ID, want)
	}
}

func TestApplyDryRun(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("q.gql", []byte("MATCH (n {x: [1"))
	closers := []diag.Diagnostic{
		diag.NewError(diag.SynUnclosedBracket, sp(id, 13, 15), "]").
			WithSuggestion(diag.InsertText("insert ']'", sp(id, 15, 15), "]", diag.Preferred())),
		diag.NewError(diag.SynUnclosedBrace, sp(id, 9, 15), "}").
			WithSuggestion(diag.InsertText("insert '}'", sp(id, 15, 15), "}", diag.Preferred())),
		diag.NewError(diag.SynUnclosedParen, sp(id, 6, 15), ")").
			WithSuggestion(diag.InsertText("insert ')'", sp(id, 15, 15), ")", diag.Preferred())),
	}

	tests := []struct {
		name    string
		opts    ApplyOptions
		want    string
		applied int
	}{
		{"once", ApplyOptions{Mode: ApplyModeOnce, DryRun: true}, "MATCH (n {x: [1]", 1},
		{"all keeps innermost first", ApplyOptions{Mode: ApplyModeAll, DryRun: true}, "MATCH (n {x: [1]})", 3},
		{"by id", ApplyOptions{Mode: ApplyModeID, TargetID: "SYN2002-0-6-0", DryRun: true}, "MATCH (n {x: [1)", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Apply(fs, closers, tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if len(res.Applied) != tt.applied || len(res.FileChanges) != 1 {
				t.Fatalf("applied = %d, changes = %d", len(res.Applied), len(res.FileChanges))
			}
			if got := string(res.FileChanges[0].Content); got != tt.want {
				t.Fatalf("content = %q, want %q", got, tt.want)
			}
		})
	}

	if got := string(fs.Get(id).Content); got != "MATCH (n {x: [1" {
		t.Fatalf("dry run modified the file set: %q", got)
	}
}

func TestApplySkips(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("q.gql", []byte("RETURN abs"))

	replace := diag.NewError(diag.SynReservedIdent, sp(id, 7, 10), "reserved").
		WithSuggestion(diag.ReplaceSpan("delimit", sp(id, 7, 10), `"abs"`, "abs", diag.Preferred()))
	overlap := diag.NewError(diag.SynReservedIdent, sp(id, 8, 9), "overlap").
		WithSuggestion(diag.DeleteSpan("drop", sp(id, 8, 9), "b", diag.Preferred()))
	stale := diag.NewError(diag.SynReservedIdent, sp(id, 0, 6), "stale").
		WithSuggestion(diag.ReplaceSpan("rename", sp(id, 0, 6), "SELECT", "FINISH", diag.Preferred()))
	plain := diag.NewError(diag.SynReservedIdent, sp(id, 10, 10), "plain").
		WithSuggestion(diag.InsertText("insert", sp(id, 10, 10), " AS x"))

	res, err := Apply(fs, []diag.Diagnostic{replace, overlap, stale, plain}, ApplyOptions{Mode: ApplyModeAll, DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	var reasons []string
	for _, s := range res.Skipped {
		reasons = append(reasons, s.Reason)
	}
	want := []string{
		"fix is not preferred",
		"existing text does not match expected content",
		"conflicts with previously applied edits in q.gql",
	}
	if diff := cmp.Diff(want, reasons); diff != "" {
		t.Fatalf("skip reasons (-want +got):\n%s", diff)
	}
	if got := string(res.FileChanges[0].Content); got != `RETURN "abs"` {
		t.Fatalf("content = %q", got)
	}

	_, err = Apply(fs, []diag.Diagnostic{replace}, ApplyOptions{Mode: ApplyModeAll})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("writing a virtual file: err = %v", err)
	}
	res, err = Apply(fs, []diag.Diagnostic{replace}, ApplyOptions{Mode: ApplyModeID, TargetID: "nope"})
	if !errors.Is(err, ErrNoFixes) || res.Skipped[0].Reason != "fix id not found" {
		t.Fatalf("unknown id: err = %v, skipped = %+v", err, res.Skipped)
	}
	if _, err := Apply(fs, nil, ApplyOptions{}); !errors.Is(err, ErrNoFixes) {
		t.Fatalf("no diagnostics: err = %v", err)
	}
}

func TestApplyParserFixes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		mode ApplyMode
		want string
	}{
		{"closer", "RETURN (1 + 2", ApplyModeAll, "RETURN (1 + 2)"},
		{"reserved identifier", "LET abs = 1 RETURN 1", ApplyModeOnce, `LET "abs" = 1 RETURN 1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := source.NewFileSet()
			f := fs.Get(fs.AddVirtual("q.gql", []byte(tt.src)))
			res := parser.ParseFile(f, parser.Options{})
			out, err := Apply(fs, res.Diagnostics, ApplyOptions{Mode: tt.mode, DryRun: true})
			if err != nil {
				t.Fatal(err)
			}
			fixed := string(out.FileChanges[0].Content)
			if fixed != tt.want {
				t.Fatalf("content = %q, want %q", fixed, tt.want)
			}
			if again := parser.Parse(fixed); again.HasErrors() {
				t.Fatalf("fixed source still has errors: %v", again.Diagnostics)
			}
		})
	}
}

func TestApplyWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.gql")
	if err := os.WriteFile(path, []byte("RETURN [1, 2\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	res := parser.ParseFile(fs.Get(id), parser.Options{})
	out, err := Apply(fs, res.Diagnostics, ApplyOptions{Mode: ApplyModeAll})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Applied) != 1 || out.Applied[0].Code != diag.SynUnclosedBracket {
		t.Fatalf("applied = %+v", out.Applied)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "RETURN [1, 2\r\n]" {
		t.Fatalf("file = %q", got)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v", info.Mode().Perm())
	}
}

func TestCandidates(t *testing.T) {
	res := parser.Parse("LET abs = 1 RETURN (1")
	cands := Candidates(res.Diagnostics)
	if len(cands) < 2 {
		t.Fatalf("candidates = %d", len(cands))
	}
	if cands[0].Diag.Code != diag.SynReservedIdent || cands[len(cands)-1].Diag.Code != diag.SynUnclosedParen {
		t.Fatalf("order = %v, %v", cands[0].Diag.Code, cands[len(cands)-1].Diag.Code)
	}
}
