package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"gqlfront/diag"
)

func TestKeywordTiersAsIdentifiers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []diag.Code
	}{
		{"non-reserved", "LET graph = 1 RETURN graph", nil},
		{"non-reserved node var", "MATCH (node) RETURN node", nil},
		{"pre-reserved", "LET abstract = 1 RETURN abstract", []diag.Code{diag.SynPreReservedIdent, diag.SynPreReservedIdent}},
		{"reserved", "LET abs = 1 RETURN 1", []diag.Code{diag.SynReservedIdent}},
		{"reserved property name", "MATCH (n) RETURN n.match, n.`order`", nil},
		{"reserved field name", "RETURN {select: 1}", nil},
		{"delimited", `LET "abs" = 1 RETURN "abs"`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _ := parseSource(t, tt.input, Options{})
			if diff := cmp.Diff(tt.want, codes(res.Diagnostics), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("codes (-want +got):\n%s\n%s", diff, diagnosticsSummary(res.Diagnostics))
			}
		})
	}
}

func TestReservedIdentFix(t *testing.T) {
	res, file := parseSource(t, "LET abs = 1 RETURN 1", Options{})
	if len(res.Diagnostics) != 1 {
		t.Fatalf("expected one diagnostic: %s", diagnosticsSummary(res.Diagnostics))
	}
	d := res.Diagnostics[0]
	if got := file.Text(d.Primary); got != "abs" {
		t.Fatalf("primary = %q, want %q", got, "abs")
	}
	if len(d.Fixes) != 1 || len(d.Fixes[0].Edits) != 1 {
		t.Fatalf("expected one single-edit fix, got %+v", d.Fixes)
	}
	if got := d.Fixes[0].Edits[0].NewText; got != `"abs"` {
		t.Fatalf("fix text = %s, want %q", got, `"abs"`)
	}
}

func TestStructuralKeywordNotConsumed(t *testing.T) {
	// WHERE cannot be taken as the alias, so it is left for the next
	// construct and only the missing alias is reported.
	res, _ := parseSource(t, "RETURN 1 AS WHERE", Options{})
	if n := countCode(res.Diagnostics, diag.SynExpectIdentifier); n != 1 {
		t.Fatalf("expected a missing identifier error: %s", diagnosticsSummary(res.Diagnostics))
	}
	if countCode(res.Diagnostics, diag.SynReservedIdent) != 0 {
		t.Fatalf("structural keyword reported as a misused identifier: %s", diagnosticsSummary(res.Diagnostics))
	}
}
