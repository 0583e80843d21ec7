package diag

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"gqlfront/source"
)

func TestFixBuilders(t *testing.T) {
	span := source.Span{File: 1, Start: 4, End: 7}
	tests := []struct {
		name string
		fix  Fix
		want Fix
	}{
		{
			name: "insert collapses to start",
			fix:  InsertText("insert ')'", span, ")"),
			want: Fix{Title: "insert ')'", Edits: []FixEdit{{Span: source.Span{File: 1, Start: 4, End: 4}, NewText: ")"}}},
		},
		{
			name: "delete keeps expected text",
			fix:  DeleteSpan("remove", span, "abs"),
			want: Fix{Title: "remove", Edits: []FixEdit{{Span: span, OldText: "abs"}}},
		},
		{
			name: "replace preferred",
			fix:  ReplaceSpan("delimit", span, `"abs"`, "abs", Preferred()),
			want: Fix{Title: "delimit", IsPreferred: true, Edits: []FixEdit{{Span: span, NewText: `"abs"`, OldText: "abs"}}},
		},
		{
			name: "wrap inserts at both ends",
			fix:  WrapWith("parenthesize", span, "(", ")"),
			want: Fix{Title: "parenthesize", Edits: []FixEdit{
				{Span: source.Span{File: 1, Start: 4, End: 4}, NewText: "("},
				{Span: source.Span{File: 1, Start: 7, End: 7}, NewText: ")"},
			}},
		},
		{
			name: "nil option ignored",
			fix:  InsertText("x", span, "x", nil),
			want: Fix{Title: "x", Edits: []FixEdit{{Span: source.Span{File: 1, Start: 4, End: 4}, NewText: "x"}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.fix); diff != "" {
				t.Fatalf("fix (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWithSuggestion(t *testing.T) {
	span := source.Span{Start: 0, End: 3}
	d := NewError(SynReservedIdent, span, "reserved").
		WithSuggestion(ReplaceSpan("delimit", span, `"abs"`, "abs", Preferred())).
		WithFix("drop", FixEdit{Span: span})
	if len(d.Fixes) != 2 || !d.Fixes[0].IsPreferred || d.Fixes[1].IsPreferred {
		t.Fatalf("fixes = %+v", d.Fixes)
	}
}
