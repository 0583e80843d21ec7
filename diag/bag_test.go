package diag

import (
	"testing"

	"gqlfront/source"
)

func TestBag_LimitAndOrder(t *testing.T) {
	b := NewBag(2)
	b.Add(NewError(SynUnexpectedToken, source.Span{Start: 5, End: 6}, "b"))
	b.Add(NewWarning(SynPreReservedIdent, source.Span{Start: 1, End: 2}, "a"))
	if b.Add(NewError(SynExpectType, source.Span{}, "c")) {
		t.Fatal("third diagnostic must be rejected")
	}
	if b.Len() != 2 || b.Dropped() != 1 {
		t.Fatalf("len=%d dropped=%d", b.Len(), b.Dropped())
	}
	if b.Items()[0].Message != "b" {
		t.Fatal("bag must keep discovery order")
	}
	b.Sort()
	if b.Items()[0].Message != "a" {
		t.Fatal("Sort must order by start offset")
	}
	if !b.HasErrors() || !b.HasWarnings() {
		t.Fatal("severity queries broken")
	}
}

func TestBag_Unlimited(t *testing.T) {
	b := NewBag(0)
	for i := 0; i < 500; i++ {
		if !b.Add(NewWarning(SynInfo, source.Span{}, "w")) {
			t.Fatalf("unlimited bag rejected item %d", i)
		}
	}
	if b.HasErrors() {
		t.Fatal("warnings only")
	}
}

func TestBag_DedupAndFilter(t *testing.T) {
	b := NewBag(0)
	sp := source.Span{Start: 3, End: 4}
	b.Add(NewError(SynUnexpectedToken, sp, "x"))
	b.Add(NewError(SynUnexpectedToken, sp, "x again"))
	b.Add(NewWarning(SynPreReservedIdent, sp, "w"))
	b.Dedup()
	if b.Len() != 2 {
		t.Fatalf("Dedup left %d items", b.Len())
	}
	b.Filter(func(d Diagnostic) bool { return d.IsError() })
	if b.Len() != 1 || !b.Items()[0].IsError() {
		t.Fatalf("Filter left %d items", b.Len())
	}
}

func TestReportBuilder_EmitOnce(t *testing.T) {
	b := NewBag(0)
	rb := ReportError(BagReporter{Bag: b}, SynUnclosedParen, source.Span{Start: 0, End: 1}, "expected ')'").
		WithLabel(source.Span{Start: 0, End: 1}, "opened here").
		WithNote("patterns must be closed").
		WithFix("insert ')'", FixEdit{Span: source.Span{Start: 4, End: 4}, NewText: ")"})
	rb.Emit()
	rb.Emit()
	if b.Len() != 1 {
		t.Fatalf("Emit must be idempotent, got %d", b.Len())
	}
	d := b.Items()[0]
	if len(d.Labels) != 1 || len(d.Notes) != 1 || len(d.Fixes) != 1 {
		t.Fatalf("builder lost details: %+v", d)
	}
}

func TestDedupReporter(t *testing.T) {
	b := NewBag(0)
	r := NewDedupReporter(BagReporter{Bag: b})
	d := NewError(SynUnexpectedToken, source.Span{Start: 1, End: 2}, "same")
	r.Report(d)
	r.Report(d)
	r.Report(d.WithNote("notes do not change identity"))
	if b.Len() != 1 || r.Suppressed() != 2 {
		t.Fatalf("forwarded %d, suppressed %d", b.Len(), r.Suppressed())
	}
	r.Report(NewWarning(SynUnexpectedToken, source.Span{Start: 1, End: 2}, "same"))
	if b.Len() != 2 {
		t.Fatal("severity is part of the identity")
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		LexUnknownChar:    "LEX1001",
		SynUnclosedParen:  "SYN2002",
		LimitNestingDepth: "LIM2901",
		IOLoadFile:        "IO3001",
		UnknownCode:       "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %s, want %s", code, got, want)
		}
	}
	if SynUnclosedParen.Title() != "Unclosed parenthesis" {
		t.Error("title lookup broken")
	}
}
