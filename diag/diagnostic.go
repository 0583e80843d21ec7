package diag

import (
	"gqlfront/source"
)

// Label attaches a message to a secondary span of a diagnostic.
type Label struct {
	Span source.Span
	Msg  string
}

// FixEdit replaces the text under Span with NewText. An empty span inserts.
// OldText, when set, must match the current text for the edit to apply.
type FixEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// Fix is a suggested correction made of one or more edits.
type Fix struct {
	Title       string
	Edits       []FixEdit
	IsPreferred bool
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Labels   []Label
	Notes    []string
	Fixes    []Fix
}

// IsError reports whether the diagnostic has error severity.
func (d Diagnostic) IsError() bool {
	return d.Severity.AtLeast(SevError)
}
