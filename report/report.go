// Package report turns parser diagnostics into resolved, rendering-ready
// entries and prints them as plain lines or annotated source snippets.
package report

import (
	"path/filepath"
	"strconv"
	"strings"

	"gqlfront/diag"
	"gqlfront/source"
)

// Location is a span resolved against its file.
type Location struct {
	Span  source.Span
	Path  string
	Start source.LineCol
	End   source.LineCol
}

// Label is a resolved secondary annotation.
type Label struct {
	Location
	Message string
}

// Edit is a resolved fix edit.
type Edit struct {
	Location
	NewText string
	OldText string
}

// Suggestion is a resolved fix.
type Suggestion struct {
	Title     string
	Preferred bool
	Edits     []Edit
}

// Entry is one diagnostic ready for rendering.
type Entry struct {
	Severity diag.Severity
	Code     diag.Code
	Message  string
	Primary  Location
	Labels   []Label
	Notes    []string
	Fixes    []Suggestion
}

// Report is an ordered list of entries bound to the file set they were
// resolved against.
type Report struct {
	Entries []Entry

	fs       *source.FileSet
	pathMode string
}

// FromDiagnostics resolves every diagnostic in order. Nothing is dropped,
// merged or reordered; Diagnostics restores the input exactly.
func FromDiagnostics(fs *source.FileSet, diags []diag.Diagnostic) Report {
	return build(fs, "relative", diags)
}

// WithPathMode returns a copy of the report whose paths are formatted with
// mode ("absolute", "relative", "basename" or "auto").
func (r Report) WithPathMode(mode string) Report {
	return build(r.fs, mode, r.Diagnostics())
}

func build(fs *source.FileSet, mode string, diags []diag.Diagnostic) Report {
	r := Report{fs: fs, pathMode: mode}
	if len(diags) == 0 {
		return r
	}
	r.Entries = make([]Entry, 0, len(diags))
	for i := range diags {
		r.Entries = append(r.Entries, r.entry(&diags[i]))
	}
	return r
}

func (r Report) entry(d *diag.Diagnostic) Entry {
	e := Entry{
		Severity: d.Severity,
		Code:     d.Code,
		Message:  d.Message,
		Primary:  r.locate(d.Primary),
	}
	if len(d.Labels) > 0 {
		e.Labels = make([]Label, 0, len(d.Labels))
		for _, l := range d.Labels {
			e.Labels = append(e.Labels, Label{Location: r.locate(l.Span), Message: l.Msg})
		}
	}
	if len(d.Notes) > 0 {
		e.Notes = append([]string(nil), d.Notes...)
	}
	if len(d.Fixes) > 0 {
		e.Fixes = make([]Suggestion, 0, len(d.Fixes))
		for _, f := range d.Fixes {
			s := Suggestion{Title: f.Title, Preferred: f.IsPreferred}
			if len(f.Edits) > 0 {
				s.Edits = make([]Edit, 0, len(f.Edits))
				for _, ed := range f.Edits {
					s.Edits = append(s.Edits, Edit{Location: r.locate(ed.Span), NewText: ed.NewText, OldText: ed.OldText})
				}
			}
			e.Fixes = append(e.Fixes, s)
		}
	}
	return e
}

func (r Report) locate(sp source.Span) Location {
	loc := Location{Span: sp, Path: "<unknown>"}
	if r.fs == nil {
		loc.Start = source.LineCol{Line: 1, Col: 1}
		loc.End = loc.Start
		return loc
	}
	loc.Start, loc.End = r.fs.Resolve(sp)
	if f := r.fs.Get(sp.File); f != nil {
		loc.Path = filepath.ToSlash(f.FormatPath(r.pathMode, r.fs.BaseDir()))
		for strings.HasPrefix(loc.Path, "./") {
			loc.Path = strings.TrimPrefix(loc.Path, "./")
		}
	}
	return loc
}

// Diagnostics converts the report back into diagnostics.
func (r Report) Diagnostics() []diag.Diagnostic {
	if len(r.Entries) == 0 {
		return nil
	}
	out := make([]diag.Diagnostic, 0, len(r.Entries))
	for _, e := range r.Entries {
		d := diag.Diagnostic{
			Severity: e.Severity,
			Code:     e.Code,
			Message:  e.Message,
			Primary:  e.Primary.Span,
		}
		if len(e.Labels) > 0 {
			d.Labels = make([]diag.Label, 0, len(e.Labels))
			for _, l := range e.Labels {
				d.Labels = append(d.Labels, diag.Label{Span: l.Span, Msg: l.Message})
			}
		}
		if len(e.Notes) > 0 {
			d.Notes = append([]string(nil), e.Notes...)
		}
		if len(e.Fixes) > 0 {
			d.Fixes = make([]diag.Fix, 0, len(e.Fixes))
			for _, s := range e.Fixes {
				f := diag.Fix{Title: s.Title, IsPreferred: s.Preferred}
				if len(s.Edits) > 0 {
					f.Edits = make([]diag.FixEdit, 0, len(s.Edits))
					for _, ed := range s.Edits {
						f.Edits = append(f.Edits, diag.FixEdit{Span: ed.Span, NewText: ed.NewText, OldText: ed.OldText})
					}
				}
				d.Fixes = append(d.Fixes, f)
			}
		}
		out = append(out, d)
	}
	return out
}

// Counts returns the number of entries per severity.
func (r Report) Counts() (errors, warnings, infos int) {
	for _, e := range r.Entries {
		switch e.Severity {
		case diag.SevError:
			errors++
		case diag.SevWarning:
			warnings++
		default:
			infos++
		}
	}
	return errors, warnings, infos
}

// Summary is a one-line count such as "2 errors, 1 warning".
func (r Report) Summary() string {
	errs, warns, _ := r.Counts()
	return plural(errs, "error") + ", " + plural(warns, "warning")
}

func plural(n int, word string) string {
	s := strconv.Itoa(n) + " " + word
	if n != 1 {
		s += "s"
	}
	return s
}
