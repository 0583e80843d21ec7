package lexer

import (
	"gqlfront/diag"
	"gqlfront/token"
)

// scanParam scans $name, $"quoted name" and the substituted form $$name.
// Token.Text holds the bare name.
func (lx *Lexer) scanParam() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // $
	kind := token.Param
	if lx.cursor.Eat('$') {
		kind = token.SubstParam
	}

	switch c := lx.cursor.Peek(); {
	case c == '"' || c == '`':
		name, closed := lx.scanDelimited(c, c == '"')
		sp := lx.cursor.SpanFrom(start)
		if !closed {
			lx.errLex(diag.LexUnterminatedIdent, sp, "unterminated parameter name")
		} else if name == "" {
			lx.errLex(diag.LexEmptyIdent, sp, "parameter name must not be empty")
		}
		return token.Token{Kind: kind, Span: sp, Text: name}
	case isIdentStartByte(c) || isDec(c) || c >= utf8RuneSelf:
		nameStart := lx.cursor.Off
		for {
			b := lx.cursor.Peek()
			if b < utf8RuneSelf {
				if !isIdentContinueByte(b) {
					break
				}
				lx.cursor.Bump()
				continue
			}
			r, sz := lx.peekRune()
			if sz == 0 || !isIdentContinueRune(r) {
				break
			}
			lx.bumpRune()
		}
		if lx.cursor.Off > nameStart {
			sp := lx.cursor.SpanFrom(start)
			if sp.Len() > lx.opts.maxTokenLength() {
				lx.errLex(diag.LexTokenTooLong, sp, "parameter name is too long")
				return token.Token{Kind: token.Invalid, Span: sp}
			}
			return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[nameStart:lx.cursor.Off])}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexBadParameter, sp, "expected parameter name after '$'")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
