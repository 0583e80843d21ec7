package parser

import (
	"fmt"
	"strings"
	"testing"

	"gqlfront/ast"
	"gqlfront/diag"
	"gqlfront/internal/testkit"
	"gqlfront/source"
)

// parseSource parses input as a virtual file and checks the invariants that
// must hold for any input: a non-nil tree, spans nested in their parents and
// diagnostics pointing into the file.
func parseSource(t *testing.T, input string, opts Options) (Result, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.gql", []byte(input)))
	res := ParseFile(file, opts)
	if res.AST == nil {
		t.Fatalf("nil AST for %q", input)
	}
	if err := testkit.CheckSpanInvariants(res.AST, file); err != nil {
		t.Fatalf("span invariants for %q: %v", input, err)
	}
	if err := testkit.CheckDiagnostics(res.Diagnostics, file); err != nil {
		t.Fatalf("diagnostics for %q: %v", input, err)
	}
	return res, file
}

func diagnosticsSummary(diags []diag.Diagnostic) string {
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s @%s", d.Code.ID(), d.Message, d.Primary)
	}
	return strings.Join(lines, "; ")
}

func codes(diags []diag.Diagnostic) []diag.Code {
	out := make([]diag.Code, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Code)
	}
	return out
}

func countCode(diags []diag.Diagnostic, code diag.Code) int {
	n := 0
	for _, d := range diags {
		if d.Code == code {
			n++
		}
	}
	return n
}

func errorCount(diags []diag.Diagnostic) int {
	n := 0
	for _, d := range diags {
		if d.IsError() {
			n++
		}
	}
	return n
}

// firstStmt returns the only statement of prog.
func firstStmt(t *testing.T, prog *ast.Program) ast.Stmt {
	t.Helper()
	if len(prog.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Stmts))
	}
	return prog.Stmts[0]
}

// returnExpr parses "RETURN <expr>" and returns the expression.
func returnExpr(t *testing.T, expr string) (ast.Expr, []diag.Diagnostic) {
	t.Helper()
	res, _ := parseSource(t, "RETURN "+expr, Options{})
	q, ok := firstStmt(t, res.AST).(*ast.LinearQuery)
	if !ok || len(q.Clauses) != 1 {
		t.Fatalf("expected a single-clause query, got %T", res.AST.Stmts[0])
	}
	rc, ok := q.Clauses[0].(*ast.ReturnClause)
	if !ok || len(rc.Items) == 0 {
		t.Fatalf("expected RETURN with items, got %T", q.Clauses[0])
	}
	return rc.Items[0].Expr, res.Diagnostics
}

// sexpr renders an expression tree in prefix form so tests can compare
// its shape.
func sexpr(e ast.Expr) string {
	switch x := e.(type) {
	case nil:
		return "<nil>"
	case *ast.Ident:
		return x.Name
	case *ast.Literal:
		return x.Raw
	case *ast.Param:
		return "$" + x.Name
	case *ast.Unary:
		return "(" + x.Op.String() + " " + sexpr(x.X) + ")"
	case *ast.Binary:
		return "(" + x.Op.String() + " " + sexpr(x.Left) + " " + sexpr(x.Right) + ")"
	case *ast.PropertyAccess:
		return "(. " + sexpr(x.X) + " " + x.Name.Name + ")"
	case *ast.IndexExpr:
		return "([] " + sexpr(x.X) + " " + sexpr(x.Index) + ")"
	case *ast.Paren:
		return "(paren " + sexpr(x.X) + ")"
	case *ast.TypeAnnotation:
		return "(:: " + sexpr(x.X) + ")"
	case *ast.IsPredicate:
		not := ""
		if x.Not {
			not = "NOT "
		}
		return "(IS " + not + x.Kind.String() + " " + sexpr(x.X) + ")"
	case *ast.Call:
		names := make([]string, len(x.Name))
		for i, n := range x.Name {
			names[i] = n.Name
		}
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = sexpr(a)
		}
		if x.Star {
			args = append(args, "*")
		}
		return strings.Join(names, "::") + "(" + strings.Join(args, " ") + ")"
	case *ast.BadExpr:
		return "<bad>"
	}
	return fmt.Sprintf("<%T>", e)
}
