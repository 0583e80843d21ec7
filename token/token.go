package token

import "gqlfront/source"

// Token is a single lexeme with its location, payload and leading trivia.
type Token struct {
	Kind Kind
	Span source.Span
	// Text holds the source text for words, operators and numbers, and the
	// decoded value for strings, delimited identifiers and parameters.
	Text    string
	Kw      Keyword
	Tier    Tier
	Leading []Trivia
}

// IsKeyword reports whether t is a Word spelling kw. Delimited identifiers
// never match.
func (t Token) IsKeyword(kw Keyword) bool {
	return t.Kind == Word && t.Kw == kw
}

// IsIdentLike reports whether t can name something: a delimited identifier,
// or a word below the Reserved tier.
func (t Token) IsIdentLike() bool {
	switch t.Kind {
	case QuotedIdent:
		return true
	case Word:
		return t.Tier != Reserved
	default:
		return false
	}
}

// Describe renders t for "expected X, found Y" messages.
func (t Token) Describe() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case Word:
		if t.Kw != KwNone {
			return "keyword " + t.Kw.String()
		}
		return "identifier '" + t.Text + "'"
	case QuotedIdent:
		return "identifier \"" + t.Text + "\""
	case Invalid:
		return "invalid input"
	default:
		if t.Kind.IsOperator() {
			return t.Kind.String()
		}
		return t.Kind.String() + " " + t.Text
	}
}
