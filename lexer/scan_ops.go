package lexer

import (
	"fmt"

	"gqlfront/diag"
	"gqlfront/token"
)

// scanOperatorOrPunct matches the longest operator first: three-byte
// arrows, then two-byte operators, then single bytes. Edge arrows are
// primitive tokens; the parser assembles "-[" ... "]->" forms.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	switch {
	case lx.try3('<', '-', '>'):
		return emit(token.BothArrow)
	case lx.try3('|', '+', '|'):
		return emit(token.MultisetAlt)
	case lx.try2('<', '~'):
		return emit(token.LeftTilde)
	case lx.try2('~', '>'):
		return emit(token.RightTilde)
	case lx.try2('<', '-'):
		return emit(token.LeftArrow)
	case lx.try2('-', '>'):
		return emit(token.RightArrow)
	case lx.try2(':', ':'):
		return emit(token.ColonColon)
	case lx.try2('.', '.'):
		return emit(token.DotDot)
	case lx.try2('<', '>'):
		return emit(token.NotEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('|', '|'):
		return emit(token.Concat)
	case lx.try2('=', '>'):
		return emit(token.FatArrow)
	}

	ch := lx.cursor.Peek()
	if ch >= utf8RuneSelf {
		r, _ := lx.peekRune()
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", r))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	lx.cursor.Bump()
	switch ch {
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case ',':
		return emit(token.Comma)
	case ';':
		return emit(token.Semicolon)
	case '.':
		return emit(token.Dot)
	case ':':
		return emit(token.Colon)
	case '=':
		return emit(token.Eq)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '&':
		return emit(token.Amp)
	case '|':
		return emit(token.Pipe)
	case '!':
		return emit(token.Bang)
	case '?':
		return emit(token.Question)
	case '~':
		return emit(token.Tilde)
	case '^':
		return emit(token.Caret)
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", rune(ch)))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
}
