package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vmihailenco/msgpack/v5"

	"gqlfront/diag"
	"gqlfront/lexer"
	"gqlfront/parser"
	"gqlfront/source"
)

func parseVirtual(t *testing.T, name, src string) (*source.FileSet, parser.Result) {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual(name, []byte(src)))
	return fs, parser.ParseFile(f, parser.Options{})
}

func TestJSONBasic(t *testing.T) {
	fs, res := parseVirtual(t, "test.gql", "MATCH (n RETURN n")
	var buf bytes.Buffer
	opts := JSONOpts{IncludePositions: true, PathMode: PathModeBasename, IncludeNotes: true, IncludeFixes: true}
	if err := JSON(&buf, res.Diagnostics, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
	}
	if output.Count != 1 || output.Errors != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("unexpected totals: %+v", output)
	}
	d := output.Diagnostics[0]
	want := LocationJSON{File: "test.gql", StartByte: 6, EndByte: 9, StartLine: 1, StartCol: 7, EndLine: 1, EndCol: 10}
	if diff := cmp.Diff(want, d.Location); diff != "" {
		t.Fatalf("location (-want +got):\n%s", diff)
	}
	if d.Severity != "ERROR" || d.Code != "SYN2002" || d.Title != "Unclosed parenthesis" {
		t.Fatalf("unexpected header: %+v", d)
	}
	if len(d.Labels) != 2 || d.Labels[0].Location.StartByte != 6 || d.Labels[1].Location.StartByte != 9 {
		t.Fatalf("labels = %+v", d.Labels)
	}
}

func TestJSONMaxAndFixes(t *testing.T) {
	fs, res := parseVirtual(t, "fix.gql", "LET abs = 1 RETURN abs; RETURN (")
	var buf bytes.Buffer
	if err := JSON(&buf, res.Diagnostics, fs, JSONOpts{Max: 1, IncludeFixes: true}); err != nil {
		t.Fatal(err)
	}
	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatal(err)
	}
	if len(output.Diagnostics) != 1 || output.Count != len(res.Diagnostics) {
		t.Fatalf("max not applied: %d shown of %d", len(output.Diagnostics), output.Count)
	}
	fixes := output.Diagnostics[0].Fixes
	if len(fixes) != 1 || len(fixes[0].Edits) != 1 {
		t.Fatalf("fixes = %+v", fixes)
	}
	if e := fixes[0].Edits[0]; e.OldText != "abs" || e.NewText != `"abs"` {
		t.Fatalf("edit = %+v", e)
	}
}

func TestMsgpackMatchesJSON(t *testing.T) {
	fs, res := parseVirtual(t, "m.gql", "MATCH (n RETURN n")
	opts := JSONOpts{IncludePositions: true, IncludeFixes: true}
	var buf bytes.Buffer
	if err := Msgpack(&buf, res.Diagnostics, fs, opts); err != nil {
		t.Fatal(err)
	}
	dec := msgpack.NewDecoder(&buf)
	dec.SetCustomStructTag("json")
	var got DiagnosticsOutput
	if err := dec.Decode(&got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(BuildDiagnosticsOutput(res.Diagnostics, fs, opts), got); diff != "" {
		t.Fatalf("msgpack (-json +msgpack):\n%s", diff)
	}
}

func TestSarif(t *testing.T) {
	fs, res := parseVirtual(t, "s.gql", "MATCH (n RETURN n; LET abstract = 1 RETURN abstract")
	var buf bytes.Buffer
	meta := SarifRunMeta{ToolName: "gqlfront", ToolVersion: "test", InvocationArgs: []string{"diag", "s.gql"}}
	if err := Sarif(&buf, res.Diagnostics, fs, meta); err != nil {
		t.Fatal(err)
	}
	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("invalid SARIF: %v", err)
	}
	if log.Version != "2.1.0" || len(log.Runs) != 1 {
		t.Fatalf("unexpected log header: %+v", log)
	}
	run := log.Runs[0]
	if len(run.Results) != len(res.Diagnostics) {
		t.Fatalf("results = %d, want %d", len(run.Results), len(res.Diagnostics))
	}
	var ruleIDs []string
	for _, r := range run.Tool.Driver.Rules {
		ruleIDs = append(ruleIDs, r.ID)
	}
	if diff := cmp.Diff([]string{"SYN2002", "SYN2015"}, ruleIDs); diff != "" {
		t.Fatalf("rules (-want +got):\n%s", diff)
	}
	first := run.Results[0]
	if first.Level != "error" || first.Locations[0].PhysicalLocation.Region.StartColumn != 7 {
		t.Fatalf("first result = %+v", first)
	}
	if len(run.Invocations) != 1 || run.Invocations[0].ExecutionSuccessful {
		t.Fatalf("invocation must report failure: %+v", run.Invocations)
	}
}

func TestPrettyAndSimple(t *testing.T) {
	fs, res := parseVirtual(t, "p.gql", "MATCH (n ")
	var pretty, simple bytes.Buffer
	if err := Pretty(&pretty, res.Diagnostics, fs, PrettyOpts{PathMode: PathModeBasename}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(pretty.String(), "1 | MATCH (n\n") || strings.Contains(pretty.String(), "\x1b[") {
		t.Fatalf("pretty output:\n%s", pretty.String())
	}
	if err := Simple(&simple, res.Diagnostics, fs, PathModeBasename); err != nil {
		t.Fatal(err)
	}
	if got := simple.String(); got != "p.gql:1:7: error SYN2002: expected ')' to close '('\n" {
		t.Fatalf("simple = %q", got)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("t.gql", []byte("MATCH -- c\n(n)")))
	toks := lexer.Tokenize(f, lexer.Options{})
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(toks) {
		t.Fatalf("lines = %d, want %d:\n%s", len(lines), len(toks), buf.String())
	}
	if !strings.Contains(lines[0], `"MATCH" [MATCH reserved]`) {
		t.Fatalf("keyword line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "leading: space, line-comment, newline") {
		t.Fatalf("trivia line = %q", lines[1])
	}
}

func TestFormatTokensJSON(t *testing.T) {
	toks, _ := lexer.TokenizeString("RETURN $p")
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 || out[1].Text != "p" || out[2].Kind != toks[2].Kind.String() {
		t.Fatalf("tokens = %+v", out)
	}
}

func TestFormatAST(t *testing.T) {
	fs, res := parseVirtual(t, "a.gql", "MATCH (n:Person) RETURN n.name")
	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, res.AST, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"a.gql (span: 1:1-1:31)\n",
		"└─ LinearQuery",
		"├─ MatchClause",
		"└─ ReturnClause",
		`Ident Name="Person"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := FormatASTJSON(&buf, res.AST); err != nil {
		t.Fatal(err)
	}
	var root ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatal(err)
	}
	if root.Type != "Program" || len(root.Children) != 1 || root.Children[0].Type != "LinearQuery" {
		t.Fatalf("json root = %+v", root)
	}
}

func TestBuildDiagnosticsOutputWithoutFileSet(t *testing.T) {
	d := diag.NewError(diag.SynUnexpectedToken, source.Span{Start: 1, End: 2}, "x")
	out := BuildDiagnosticsOutput([]diag.Diagnostic{d}, nil, JSONOpts{IncludePositions: true})
	if got := out.Diagnostics[0].Location; got.File != "<unknown>" || got.StartLine != 0 {
		t.Fatalf("location = %+v", got)
	}
}
