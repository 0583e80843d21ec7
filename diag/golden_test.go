package diag

import (
	"testing"

	"gqlfront/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	userFile := fs.Add("/workspace/testdata/golden/sample.gql", []byte("a\nb\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     SynPreReservedIdent,
			Message:  "another",
			Primary:  source.Span{File: userFile, Start: 2, End: 3},
		},
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: userFile, Start: 0, End: 1},
			Labels: []Label{
				{Span: source.Span{File: userFile, Start: 2, End: 3}, Msg: "label line"},
			},
		},
	}

	expected := "error SYN2001 testdata/golden/sample.gql:1:1 first line second\n" +
		"warning SYN2015 testdata/golden/sample.gql:2:1 another\n" +
		"label SYN2001 testdata/golden/sample.gql:2:1 label line"

	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}
