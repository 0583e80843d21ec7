package diag

import "gqlfront/source"

// FixOption mutates a fix during construction.
type FixOption func(*Fix)

// Preferred marks the fix as the suggestion to apply by default.
func Preferred() FixOption {
	return func(f *Fix) {
		f.IsPreferred = true
	}
}

func buildFix(title string, edits []FixEdit, opts []FixOption) Fix {
	f := Fix{Title: title, Edits: edits}
	for _, opt := range opts {
		if opt != nil {
			opt(&f)
		}
	}
	return f
}

// InsertText creates a fix that inserts text at the position at.Start.
func InsertText(title string, at source.Span, text string, opts ...FixOption) Fix {
	return buildFix(title, []FixEdit{{Span: at.ZeroideToStart(), NewText: text}}, opts)
}

// DeleteSpan removes the text under span, which must read expect when
// expect is non-empty.
func DeleteSpan(title string, span source.Span, expect string, opts ...FixOption) Fix {
	return buildFix(title, []FixEdit{{Span: span, OldText: expect}}, opts)
}

// ReplaceSpan replaces the text under span with newText.
func ReplaceSpan(title string, span source.Span, newText, expect string, opts ...FixOption) Fix {
	return buildFix(title, []FixEdit{{Span: span, NewText: newText, OldText: expect}}, opts)
}

// WrapWith surrounds span with prefix and suffix insertions.
func WrapWith(title string, span source.Span, prefix, suffix string, opts ...FixOption) Fix {
	return buildFix(title, []FixEdit{
		{Span: span.ZeroideToStart(), NewText: prefix},
		{Span: span.ZeroideToEnd(), NewText: suffix},
	}, opts)
}

// WithSuggestion appends a prebuilt fix.
func (d Diagnostic) WithSuggestion(f Fix) Diagnostic {
	d.Fixes = append(d.Fixes, f)
	return d
}
