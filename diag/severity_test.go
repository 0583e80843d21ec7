package diag

import (
	"testing"

	"gqlfront/source"
)

func TestSeverityRanking(t *testing.T) {
	if !SevError.AtLeast(SevWarning) || !SevWarning.AtLeast(SevWarning) || SevInfo.AtLeast(SevWarning) {
		t.Fatal("AtLeast broken")
	}
	if !SevError.Outranks(SevInfo) || SevWarning.Outranks(SevWarning) {
		t.Fatal("Outranks broken")
	}
	if Severity(9).String() != "UNKNOWN" || SevWarning.String() != "WARNING" {
		t.Fatalf("names: %s %s", Severity(9), SevWarning)
	}
}

func TestBag_SortPutsErrorsFirstAtSameSpan(t *testing.T) {
	b := NewBag(0)
	sp := source.Span{Start: 2, End: 4}
	b.Add(New(SevInfo, SynInfo, sp, "note"))
	b.Add(NewWarning(SynPreReservedIdent, sp, "warn"))
	b.Add(NewError(SynUnexpectedToken, sp, "err"))
	b.Sort()
	var got []string
	for _, d := range b.Items() {
		got = append(got, d.Message)
	}
	if len(got) != 3 || got[0] != "err" || got[1] != "warn" || got[2] != "note" {
		t.Fatalf("order = %v", got)
	}
}
