package diagfmt

import (
	"io"

	"gqlfront/diag"
	"gqlfront/report"
	"gqlfront/source"
)

// Pretty renders diagnostics as annotated source snippets.
func Pretty(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	style := report.Monochrome
	if opts.Color {
		style = report.Colored
	}
	r := report.FromDiagnostics(fs, diags).WithPathMode(opts.PathMode.String())
	return r.Write(w, report.Options{
		Style:       style,
		Context:     opts.Context,
		ShowPreview: opts.ShowPreview,
	})
}

// Simple renders one line per diagnostic.
func Simple(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, mode PathMode) error {
	r := report.FromDiagnostics(fs, diags).WithPathMode(mode.String())
	return r.Write(w, report.Options{Style: report.Simple})
}
