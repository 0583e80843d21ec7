package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gqlfront/ast"
	"gqlfront/diag"
	"gqlfront/source"
)

func TestParseSimpleQuery(t *testing.T) {
	res, _ := parseSource(t, "MATCH (n:Person) RETURN n.name", Options{})
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(res.Diagnostics))
	}
	q, ok := firstStmt(t, res.AST).(*ast.LinearQuery)
	if !ok {
		t.Fatalf("expected LinearQuery, got %T", res.AST.Stmts[0])
	}
	if len(q.Clauses) != 2 {
		t.Fatalf("expected MATCH and RETURN, got %d clauses", len(q.Clauses))
	}
	m, ok := q.Clauses[0].(*ast.MatchClause)
	if !ok || len(m.Patterns) != 1 {
		t.Fatalf("expected MATCH with one pattern, got %T", q.Clauses[0])
	}
	node, ok := m.Patterns[0].Expr.(*ast.NodePattern)
	if !ok || node.Filler == nil || node.Filler.Var.Name != "n" {
		t.Fatalf("expected node pattern (n ...), got %T", m.Patterns[0].Expr)
	}
	label, ok := node.Filler.Labels.(*ast.LabelName)
	if !ok || label.Name.Name != "Person" {
		t.Fatalf("expected label Person, got %T", node.Filler.Labels)
	}
	rc, ok := q.Clauses[1].(*ast.ReturnClause)
	if !ok || len(rc.Items) != 1 {
		t.Fatalf("expected RETURN with one item, got %T", q.Clauses[1])
	}
	if got := sexpr(rc.Items[0].Expr); got != "(. n name)" {
		t.Fatalf("return item = %s, want (. n name)", got)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t", "// only a comment", "/* block */"} {
		t.Run(strings.TrimSpace(input), func(t *testing.T) {
			res, _ := parseSource(t, input, Options{})
			if len(res.AST.Stmts) != 0 {
				t.Fatalf("expected empty program, got %d statements", len(res.AST.Stmts))
			}
			if res.HasErrors() {
				t.Fatalf("unexpected errors: %s", diagnosticsSummary(res.Diagnostics))
			}
		})
	}
}

func TestParseUnterminatedPattern(t *testing.T) {
	const input = "MATCH (n "
	res, file := parseSource(t, input, Options{})
	if len(res.Diagnostics) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %s", diagnosticsSummary(res.Diagnostics))
	}
	d := res.Diagnostics[0]
	if d.Code != diag.SynUnclosedParen {
		t.Fatalf("code = %s, want %s", d.Code.ID(), diag.SynUnclosedParen.ID())
	}
	if got := file.Text(d.Primary); got != "(n " {
		t.Fatalf("primary span text = %q, want %q", got, "(n ")
	}
	if !strings.Contains(d.Message, "')'") {
		t.Fatalf("message %q does not name the missing ')'", d.Message)
	}
	if len(d.Fixes) == 0 || d.Fixes[0].Edits[0].NewText != ")" {
		t.Fatalf("expected a fix inserting ')', got %+v", d.Fixes)
	}
	bad := 0
	ast.Inspect(res.AST, func(n ast.Node) bool {
		if _, ok := n.(*ast.BadPattern); ok {
			bad++
		}
		return true
	})
	if bad != 1 {
		t.Fatalf("expected one BadPattern placeholder, got %d", bad)
	}
}

func TestParseDeepNesting(t *testing.T) {
	const depth = 5000
	input := "RETURN " + strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth)
	res, _ := parseSource(t, input, Options{})
	switch len(res.Diagnostics) {
	case 0:
	case 1:
		if res.Diagnostics[0].Code != diag.LimitNestingDepth {
			t.Fatalf("expected a nesting limit diagnostic, got %s", diagnosticsSummary(res.Diagnostics))
		}
	default:
		t.Fatalf("expected at most one diagnostic, got %d: %s", len(res.Diagnostics), diagnosticsSummary(res.Diagnostics[:min(3, len(res.Diagnostics))]))
	}
}

func TestParseDeepNestingKinds(t *testing.T) {
	const depth = 3000
	tests := []struct {
		name  string
		input string
	}{
		{"lists", "RETURN " + strings.Repeat("[", depth) + strings.Repeat("]", depth)},
		{"records", "RETURN " + strings.Repeat("{a: ", depth) + "1" + strings.Repeat("}", depth)},
		{"unary", "RETURN " + strings.Repeat("- ", depth) + "1"},
		{"not", "RETURN " + strings.Repeat("NOT ", depth) + "x"},
		{"paren paths", "MATCH " + strings.Repeat("(", depth) + "(a)" + strings.Repeat(")", depth) + " RETURN a"},
		{"label groups", "MATCH (n:" + strings.Repeat("(", depth) + "L" + strings.Repeat(")", depth) + ") RETURN n"},
		{"nested queries", strings.Repeat("{", depth) + "RETURN 1" + strings.Repeat("}", depth)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _ := parseSource(t, tt.input, Options{})
			if n := countCode(res.Diagnostics, diag.LimitNestingDepth); n > 1 {
				t.Fatalf("nesting limit reported %d times", n)
			}
		})
	}
}

func TestParseMaxDepthOption(t *testing.T) {
	res, _ := parseSource(t, "RETURN ((((((1)))))) + 2", Options{MaxDepth: 3})
	if diff := cmp.Diff([]diag.Code{diag.LimitNestingDepth}, codes(res.Diagnostics)); diff != "" {
		t.Fatalf("codes (-want +got):\n%s\n%s", diff, diagnosticsSummary(res.Diagnostics))
	}
	res, _ = parseSource(t, "RETURN ((1)) + 2", Options{MaxDepth: 8})
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(res.Diagnostics))
	}
}

func TestParseDelimitedKeyword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"return item", `RETURN "MATCH"`, "MATCH"},
		{"mixed case", `RETURN "Select"`, "Select"},
		{"escaped quote", `RETURN "RE""TURN"`, `RE"TURN`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, diags := returnExpr(t, tt.input[len("RETURN "):])
			if len(diags) != 0 {
				t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(diags))
			}
			id, ok := expr.(*ast.Ident)
			if !ok {
				t.Fatalf("expected *ast.Ident, got %T", expr)
			}
			if id.Name != tt.want || !id.Quoted {
				t.Fatalf("ident = %q quoted=%v, want %q quoted", id.Name, id.Quoted, tt.want)
			}
		})
	}

	res, _ := parseSource(t, `MATCH ("MATCH":"RETURN") RETURN "MATCH"`, Options{})
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(res.Diagnostics))
	}
}

var validQueries = []string{
	"MATCH (n:Person) RETURN n.name",
	"MATCH (a:Person)-[:KNOWS]->(b:Person) WHERE a.age > 30 RETURN a.name, b.name ORDER BY a.name DESC LIMIT 10",
	"MATCH p = (a)-[e]->{1,3}(b) RETURN p",
	"MATCH ANY SHORTEST (a)-[e]->*(b) RETURN a",
	"MATCH TRAIL (a)-[e]->+(b) RETURN a",
	"OPTIONAL MATCH (n)-[r]-(m) RETURN count(*) AS c",
	"INSERT (:Person {name: 'Alice', age: 30})",
	"MATCH (n) SET n.age = 31, n:Adult REMOVE n.temp DETACH DELETE n",
	"LET x = 1, y = x + 2 RETURN x * y",
	"LET v :: STRING = 'x' RETURN v",
	"FOR item IN [1, 2, 3] WITH ORDINALITY i RETURN item, i",
	"MATCH (n) RETURN n UNION ALL MATCH (m) RETURN m",
	"MATCH (a) RETURN a NEXT MATCH (b) RETURN b",
	"SESSION SET SCHEMA /my_schema",
	"SESSION SET GRAPH CURRENT_GRAPH",
	"SESSION SET VALUE $threshold = 10",
	"SESSION RESET ALL PARAMETERS",
	"SESSION CLOSE",
	"START TRANSACTION READ ONLY",
	"COMMIT",
	"ROLLBACK WORK",
	"CREATE SCHEMA IF NOT EXISTS /s1",
	"CREATE GRAPH g ANY",
	"CREATE GRAPH g TYPED social_type",
	"CREATE GRAPH TYPE social AS { (p :Person {name STRING}), (p)-[:KNOWS]->(p) }",
	"CREATE GRAPH TYPE t { NODE Person LABELS Person & Human { name STRING, age INT }, DIRECTED EDGE Knows LABEL KNOWS { since DATE } CONNECTING (Person -> Person) }",
	"DROP GRAPH IF EXISTS g",
	"DROP GRAPH TYPE t",
	"DROP SCHEMA /s1",
	"MATCH (n) WHERE n.name IS NOT NULL AND NOT n.age < 18 RETURN n",
	"RETURN CASE WHEN 1 < 2 THEN 'a' ELSE 'b' END AS v",
	"RETURN CAST(1 AS STRING), DATE '2024-01-01', $p, [1, 2][0], {a: 1}.a",
	"MATCH (n) RETURN n ORDER BY n.x NULLS LAST OFFSET 5 LIMIT 10",
	"MATCH (a) CALL { MATCH (b) RETURN b } RETURN a, b",
	"CALL my_proc(1, 'x') YIELD a, b AS c",
	"SELECT n.name FROM MATCH (n:Person) WHERE n.age > 1",
	"MATCH (n) FILTER WHERE n.x > 1 RETURN n",
	"MATCH (a) WHERE EXISTS { (a)-[:R]->() } RETURN a",
	"MATCH (n:Person|Company&!Deleted) RETURN n",
	"MATCH (n WHERE n.age > 21) RETURN n",
	"MATCH (a)<-[e]-(b), (c)~[f]~(d) RETURN e, f",
	"MATCH (n) // trailing comment\nRETURN n /* block */",
	"MATCH (n) RETURN n; MATCH (m) RETURN m;",
	"USE g MATCH (n) RETURN n",
	"RETURN x :: INT",
	"RETURN a.b IS TYPED LIST<INT NOT NULL>",
	`MATCH ("MATCH") RETURN "MATCH"`,
}

func TestParseValidQueries(t *testing.T) {
	for _, input := range validQueries {
		t.Run(input, func(t *testing.T) {
			res, _ := parseSource(t, input, Options{})
			if len(res.Diagnostics) != 0 {
				t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(res.Diagnostics))
			}
			if len(res.AST.Stmts) == 0 {
				t.Fatal("expected at least one statement")
			}
			ast.Inspect(res.AST, func(n ast.Node) bool {
				if ast.IsBad(n) {
					t.Errorf("placeholder %T in a valid parse", n)
				}
				return true
			})
		})
	}
}

func TestParseStatementKinds(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Stmt
	}{
		{"SESSION SET SCHEMA /s", &ast.SessionSetStmt{}},
		{"SESSION RESET", &ast.SessionResetStmt{}},
		{"SESSION CLOSE", &ast.SessionCloseStmt{}},
		{"START TRANSACTION", &ast.StartTxStmt{}},
		{"COMMIT", &ast.CommitStmt{}},
		{"ROLLBACK", &ast.RollbackStmt{}},
		{"CREATE SCHEMA /s", &ast.CreateSchemaStmt{}},
		{"DROP SCHEMA /s", &ast.DropSchemaStmt{}},
		{"CREATE GRAPH g ANY", &ast.CreateGraphStmt{}},
		{"DROP GRAPH g", &ast.DropGraphStmt{}},
		{"CREATE GRAPH TYPE t { (a) }", &ast.CreateGraphTypeStmt{}},
		{"DROP GRAPH TYPE t", &ast.DropGraphTypeStmt{}},
		{"RETURN 1", &ast.LinearQuery{}},
		{"RETURN 1 UNION RETURN 2", &ast.CompositeQuery{}},
		{"{ RETURN 1 }", &ast.NestedQuery{}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res, _ := parseSource(t, tt.input, Options{})
			if len(res.Diagnostics) != 0 {
				t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(res.Diagnostics))
			}
			got := firstStmt(t, res.AST)
			if diff := cmp.Diff(fmt.Sprintf("%T", tt.want), fmt.Sprintf("%T", got)); diff != "" {
				t.Fatalf("statement type (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseCompositeQuery(t *testing.T) {
	res, _ := parseSource(t, "RETURN 1 UNION ALL RETURN 2 EXCEPT DISTINCT RETURN 3", Options{})
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(res.Diagnostics))
	}
	top, ok := firstStmt(t, res.AST).(*ast.CompositeQuery)
	if !ok {
		t.Fatalf("expected CompositeQuery, got %T", res.AST.Stmts[0])
	}
	if top.Op != ast.SetExcept || top.Quantifier != ast.QuantDistinct {
		t.Fatalf("top = %s %s, want EXCEPT DISTINCT", top.Op, top.Quantifier)
	}
	left, ok := top.Left.(*ast.CompositeQuery)
	if !ok || left.Op != ast.SetUnion || left.Quantifier != ast.QuantAll {
		t.Fatalf("left = %T, want UNION ALL", top.Left)
	}
}

func TestParsePathShapes(t *testing.T) {
	res, _ := parseSource(t, "MATCH (a)-[e:R]->{2,5}(b)<-(c) RETURN a", Options{})
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(res.Diagnostics))
	}
	m := firstStmt(t, res.AST).(*ast.LinearQuery).Clauses[0].(*ast.MatchClause)
	concat, ok := m.Patterns[0].Expr.(*ast.PathConcat)
	if !ok {
		t.Fatalf("expected PathConcat, got %T", m.Patterns[0].Expr)
	}
	var shape []string
	for _, el := range concat.Elems {
		switch x := el.(type) {
		case *ast.NodePattern:
			shape = append(shape, "node")
		case *ast.EdgePattern:
			shape = append(shape, "edge:"+x.Dir.String())
		case *ast.Quantified:
			shape = append(shape, "quantified")
		default:
			shape = append(shape, "?")
		}
	}
	want := []string{"node", "quantified", "node", "edge:" + ast.EdgeLeft.String(), "node"}
	if diff := cmp.Diff(want, shape); diff != "" {
		t.Fatalf("path shape (-want +got):\n%s", diff)
	}
	q := concat.Elems[1].(*ast.Quantified)
	if q.Quant.Kind != ast.QuantRange || sexpr(q.Quant.Min) != "2" || sexpr(q.Quant.Max) != "5" {
		t.Fatalf("quantifier = %+v", q.Quant)
	}
}

func TestParseTokensMatchesParseFile(t *testing.T) {
	const input = "MATCH (n) RETURN n"
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("a.gql", []byte(input)))
	a := ParseFile(file, Options{})
	b := Parse(input)
	if a.Tokens != b.Tokens || len(a.AST.Stmts) != len(b.AST.Stmts) {
		t.Fatalf("ParseFile and Parse disagree: %d/%d tokens", a.Tokens, b.Tokens)
	}
	if a.Tokens != 6 {
		t.Fatalf("tokens = %d, want 6", a.Tokens)
	}
}

func TestParseReporterSeesDiagnostics(t *testing.T) {
	var seen []diag.Code
	opts := Options{Reporter: diag.ReporterFunc(func(d diag.Diagnostic) { seen = append(seen, d.Code) })}
	res, _ := parseSource(t, "RETURN 1 +; RETURN #", opts)
	if diff := cmp.Diff(codes(res.Diagnostics), seen); diff != "" {
		t.Fatalf("reporter and result disagree (-result +reporter):\n%s", diff)
	}
	if len(seen) == 0 {
		t.Fatal("reporter saw nothing")
	}
	if seen[0] != diag.LexUnknownChar {
		t.Fatalf("lexical diagnostics come first, got %s", seen[0].ID())
	}
}
