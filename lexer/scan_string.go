package lexer

import (
	"strings"
	"unicode/utf8"

	"gqlfront/diag"
	"gqlfront/token"
)

// scanString scans 'text' and the no-escape form @'text'. A doubled quote
// stands for one quote in both forms. Token.Text holds the decoded value.
// An unterminated literal runs to EOF and is still returned as a StringLit.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	raw := lx.cursor.Eat('@')
	text, closed := lx.scanDelimited('\'', !raw)
	sp := lx.cursor.SpanFrom(start)
	if !closed {
		lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal: expected closing '")
	}
	return token.Token{Kind: token.StringLit, Span: sp, Text: text}
}

// scanQuotedIdent scans "name" or `name`. Delimited identifiers are always
// identifiers, whatever their spelling.
func (lx *Lexer) scanQuotedIdent() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Peek()
	text, closed := lx.scanDelimited(quote, quote == '"')
	sp := lx.cursor.SpanFrom(start)
	switch {
	case !closed:
		lx.errLex(diag.LexUnterminatedIdent, sp, "unterminated delimited identifier: expected closing "+string(quote))
	case sp.Len() > lx.opts.maxTokenLength():
		lx.errLex(diag.LexTokenTooLong, sp, "delimited identifier is too long")
		return token.Token{Kind: token.Invalid, Span: sp}
	case text == "":
		lx.errLex(diag.LexEmptyIdent, sp, "delimited identifier must not be empty")
	}
	return token.Token{Kind: token.QuotedIdent, Span: sp, Text: text}
}

// scanByteString scans X'0A FF'. Whitespace between hex digit pairs is
// allowed; Token.Text holds the digits only.
func (lx *Lexer) scanByteString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // X
	lx.cursor.Bump() // '
	var b strings.Builder
	closed, badDigit := false, false
	for !lx.cursor.EOF() {
		c := lx.cursor.Peek()
		if c == '\'' {
			lx.cursor.Bump()
			closed = true
			break
		}
		at := lx.cursor.Mark()
		lx.bumpRune()
		switch {
		case isHex(c):
			b.WriteByte(c)
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
		default:
			badDigit = true
			lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(at), "byte string may contain only hexadecimal digits")
		}
	}
	sp := lx.cursor.SpanFrom(start)
	if !closed {
		lx.errLex(diag.LexUnterminatedString, sp, "unterminated byte string literal: expected closing '")
	} else if !badDigit && b.Len()%2 != 0 {
		lx.errLex(diag.LexBadNumber, sp, "byte string has an odd number of hexadecimal digits")
	}
	return token.Token{Kind: token.ByteStringLit, Span: sp, Text: b.String()}
}

// scanDelimited consumes an opening quote, the body and the closing quote,
// returning the decoded body. The cursor must be on the opening quote.
func (lx *Lexer) scanDelimited(quote byte, escapes bool) (string, bool) {
	lx.cursor.Bump()
	var b strings.Builder
	for !lx.cursor.EOF() {
		c := lx.cursor.Peek()
		switch {
		case c == quote:
			lx.cursor.Bump()
			if lx.cursor.Peek() == quote {
				lx.cursor.Bump()
				b.WriteByte(quote)
				continue
			}
			return b.String(), true
		case c == '\\' && escapes:
			lx.scanEscape(&b)
		default:
			from := lx.cursor.Off
			lx.bumpRune()
			b.Write(lx.file.Content[from:lx.cursor.Off])
		}
	}
	return b.String(), false
}

// scanEscape decodes one backslash escape into b. Unknown escapes are
// reported and kept verbatim.
func (lx *Lexer) scanEscape(b *strings.Builder) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	if lx.cursor.EOF() {
		b.WriteByte('\\')
		return
	}
	c := lx.cursor.Bump()
	switch c {
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case '\\', '\'', '"', '`':
		b.WriteByte(c)
	case 'u':
		lx.scanUnicodeEscape(b, start, 4)
	case 'U':
		lx.scanUnicodeEscape(b, start, 6)
	default:
		lx.cursor.Off--
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadEscape, sp, "unknown escape sequence '"+lx.text(sp)+"'")
		b.WriteString(lx.text(sp))
	}
}

func (lx *Lexer) scanUnicodeEscape(b *strings.Builder, start Mark, width int) {
	var r rune
	for i := 0; i < width; i++ {
		c := lx.cursor.Peek()
		if !isHex(c) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadEscape, sp, "escape requires hexadecimal digits")
			b.WriteString(lx.text(sp))
			return
		}
		lx.cursor.Bump()
		r = r<<4 | rune(hexVal(c))
	}
	if !utf8.ValidRune(r) {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadEscape, sp, "escape is not a valid Unicode scalar value")
		b.WriteRune(utf8.RuneError)
		return
	}
	b.WriteRune(r)
}

func hexVal(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
