package parser

import (
	"testing"

	"gqlfront/ast"
	"gqlfront/diag"
)

func TestExprPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a OR b AND c", "(OR a (AND b c))"},
		{"a AND b OR c", "(OR (AND a b) c)"},
		{"a XOR b OR c", "(OR (XOR a b) c)"},
		{"a OR b XOR c", "(OR a (XOR b c))"},
		{"a + b * c", "(+ a (* b c))"},
		{"a * b + c", "(+ (* a b) c)"},
		{"a - b - c", "(- (- a b) c)"},
		{"a / b % c", "(% (/ a b) c)"},
		{"NOT a = b", "(NOT (= a b))"},
		{"NOT a AND b", "(AND (NOT a) b)"},
		{"NOT NOT a", "(NOT (NOT a))"},
		{"-a.b", "(- (. a b))"},
		{"- -1", "(- (- 1))"},
		{"a || b = c", "(= (|| a b) c)"},
		{"a + b || c", "(|| (+ a b) c)"},
		{"a < b AND c >= d", "(AND (< a b) (>= c d))"},
		{"a <> b", "(<> a b)"},
		{"a <= b", "(<= a b)"},
		{"a < -1", "(< a (- 1))"},
		{"a <-1", "(< a (- 1))"},
		{"a <-b * 2", "(< a (* (- b) 2))"},
		{"a * (b + c)", "(* a (paren (+ b c)))"},
		{"a IS NULL", "(IS NULL a)"},
		{"a IS NOT TRUE", "(IS NOT TRUE a)"},
		{"a = b IS NULL", "(IS NULL (= a b))"},
		{"NOT a IS NULL", "(NOT (IS NULL a))"},
		{"a IS NULL AND b", "(AND (IS NULL a) b)"},
		{"n:Person", "(IS LABELED n)"},
		{"n IS LABELED Person", "(IS LABELED n)"},
		{"x IS TYPED INT", "(IS TYPED x)"},
		{"e IS SOURCE OF n", "(IS SOURCE OF e)"},
		{"a.b.c", "(. (. a b) c)"},
		{"a[1][2]", "([] ([] a 1) 2)"},
		{"x :: INT + 1", "(+ (:: x) 1)"},
		{"count(*)", "count(*)"},
		{"f(a, b + 1)", "f(a (+ b 1))"},
		{"ns::f(1)", "ns::f(1)"},
		{"$p + 1", "(+ $p 1)"},
		{"'a' || 'b'", "(|| 'a' 'b')"},
		{"CURRENT_DATE", "CURRENT_DATE()"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, diags := returnExpr(t, tt.input)
			if len(diags) != 0 {
				t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(diags))
			}
			if got := sexpr(expr); got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestExprLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.LitKind
		value string
	}{
		{"42", ast.LitInt, ""},
		{"3.14", ast.LitFloat, ""},
		{"'it''s'", ast.LitString, "it's"},
		{"TRUE", ast.LitTrue, ""},
		{"false", ast.LitFalse, ""},
		{"UNKNOWN", ast.LitUnknown, ""},
		{"NULL", ast.LitNull, ""},
		{"DATE '2024-01-01'", ast.LitTemporal, "2024-01-01"},
		{"DURATION 'P1D'", ast.LitTemporal, "P1D"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, diags := returnExpr(t, tt.input)
			if len(diags) != 0 {
				t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(diags))
			}
			lit, ok := expr.(*ast.Literal)
			if !ok {
				t.Fatalf("expected *ast.Literal, got %T", expr)
			}
			if lit.Kind != tt.kind {
				t.Fatalf("kind = %s, want %s", lit.Kind, tt.kind)
			}
			if lit.Raw != tt.input {
				t.Fatalf("raw = %q, want %q", lit.Raw, tt.input)
			}
			if tt.value != "" && lit.Value != tt.value {
				t.Fatalf("value = %q, want %q", lit.Value, tt.value)
			}
		})
	}
}

func TestExprCompoundForms(t *testing.T) {
	tests := []struct {
		input string
		check func(t *testing.T, e ast.Expr)
	}{
		{"[1, 2, 3]", func(t *testing.T, e ast.Expr) {
			if l, ok := e.(*ast.ListLit); !ok || len(l.Elems) != 3 {
				t.Fatalf("expected 3-element list, got %T", e)
			}
		}},
		{"LIST[]", func(t *testing.T, e ast.Expr) {
			if l, ok := e.(*ast.ListLit); !ok || len(l.Elems) != 0 {
				t.Fatalf("expected empty list, got %T", e)
			}
		}},
		{"{a: 1, b: 'x'}", func(t *testing.T, e ast.Expr) {
			if r, ok := e.(*ast.RecordLit); !ok || len(r.Fields) != 2 || r.Keyword {
				t.Fatalf("expected 2-field record, got %T", e)
			}
		}},
		{"RECORD {a: 1}", func(t *testing.T, e ast.Expr) {
			if r, ok := e.(*ast.RecordLit); !ok || !r.Keyword {
				t.Fatalf("expected RECORD literal, got %T", e)
			}
		}},
		{"CASE x WHEN 1 THEN 'a' WHEN 2 THEN 'b' END", func(t *testing.T, e ast.Expr) {
			c, ok := e.(*ast.CaseExpr)
			if !ok || c.Operand == nil || len(c.Whens) != 2 || c.Else != nil {
				t.Fatalf("expected simple CASE with 2 branches, got %T", e)
			}
		}},
		{"CAST(x AS INT)", func(t *testing.T, e ast.Expr) {
			c, ok := e.(*ast.CastExpr)
			if !ok || c.Type == nil {
				t.Fatalf("expected CAST, got %T", e)
			}
		}},
		{"EXISTS { MATCH (n) RETURN n }", func(t *testing.T, e ast.Expr) {
			x, ok := e.(*ast.ExistsExpr)
			if !ok || x.Query == nil {
				t.Fatalf("expected EXISTS with a query, got %T", e)
			}
		}},
		{"EXISTS { (a)-[e]->(b) WHERE a.x = 1 }", func(t *testing.T, e ast.Expr) {
			x, ok := e.(*ast.ExistsExpr)
			if !ok || len(x.Patterns) != 1 || x.Where == nil {
				t.Fatalf("expected EXISTS with a pattern, got %T", e)
			}
		}},
		{"VALUE { RETURN 1 }", func(t *testing.T, e ast.Expr) {
			if _, ok := e.(*ast.ValueQuery); !ok {
				t.Fatalf("expected VALUE query, got %T", e)
			}
		}},
		{"PATH [a, e, b]", func(t *testing.T, e ast.Expr) {
			if pv, ok := e.(*ast.PathValue); !ok || len(pv.Elems) != 3 {
				t.Fatalf("expected PATH value, got %T", e)
			}
		}},
		{"$$sub", func(t *testing.T, e ast.Expr) {
			if prm, ok := e.(*ast.Param); !ok || !prm.Substituted || prm.Name != "sub" {
				t.Fatalf("expected substituted parameter, got %#v", e)
			}
		}},
		{"count(DISTINCT x)", func(t *testing.T, e ast.Expr) {
			if c, ok := e.(*ast.Call); !ok || c.Quantifier != ast.QuantDistinct {
				t.Fatalf("expected DISTINCT aggregate, got %T", e)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, diags := returnExpr(t, tt.input)
			if len(diags) != 0 {
				t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(diags))
			}
			tt.check(t, expr)
		})
	}
}

func TestExprErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"1 +", diag.SynExpectExpression},
		{"(1", diag.SynUnclosedParen},
		{"[1", diag.SynUnclosedBracket},
		{"{a: 1", diag.SynUnclosedBrace},
		{"f(1,)", diag.SynTrailingComma},
		{"x.", diag.SynExpectPropertyName},
		{"x IS", diag.SynExpectKeyword},
		{"CASE WHEN a THEN b", diag.SynExpectKeyword},
		{"CAST(1 AS)", diag.SynExpectType},
		{"a[1", diag.SynUnclosedBracket},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, diags := returnExpr(t, tt.input)
			if countCode(diags, tt.code) != 1 {
				t.Fatalf("expected one %s, got %s", tt.code.ID(), diagnosticsSummary(diags))
			}
		})
	}
}
