package lexer

import (
	"gqlfront/diag"
	"gqlfront/token"
)

// scanNumber scans unsigned numeric literals:
//   - 0x[0-9a-fA-F_]+, 0o[0-7_]+, 0b[01_]+
//   - [0-9][0-9_]* (.[0-9_]+)? ([eE][+-]?[0-9_]+)?
//   - .[0-9_]+ ([eE][+-]?[0-9_]+)?
//   - optional suffix f/F/d/D (approximate) or m/M (exact)
//
// Separators must sit between digits. A number running straight into a word
// ("12abc") is malformed; the whole run is consumed as one Invalid token.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit
	bad := ""

	digits := func(ok func(byte) bool) int {
		n := 0
		prevSep := false
		for {
			b := lx.cursor.Peek()
			switch {
			case ok(b):
				n++
				prevSep = false
			case b == '_':
				if n == 0 || prevSep {
					bad = "misplaced digit separator '_'"
				}
				prevSep = true
			default:
				if prevSep && bad == "" {
					bad = "misplaced digit separator '_'"
				}
				return n
			}
			lx.cursor.Bump()
		}
	}

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && radixDigit(b1) != nil {
		lx.cursor.Off += 2
		if digits(radixDigit(b1)) == 0 {
			bad = "expected digits after radix prefix"
		}
		return lx.finishNumber(start, kind, bad)
	}

	if lx.cursor.Peek() != '.' {
		digits(isDec)
	}
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		digits(isDec)
		kind = token.FloatLit
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if s := lx.cursor.Peek(); s == '+' || s == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			digits(isDec)
			kind = token.FloatLit
		} else {
			lx.cursor.Reset(mark)
		}
	}
	switch lx.cursor.Peek() {
	case 'f', 'F', 'd', 'D', 'm', 'M':
		if !isIdentContinueByte(lx.cursor.PeekAt(1)) {
			lx.cursor.Bump()
			kind = token.FloatLit
		}
	}
	return lx.finishNumber(start, kind, bad)
}

func (lx *Lexer) finishNumber(start Mark, kind token.Kind, bad string) token.Token {
	if isIdentContinueByte(lx.cursor.Peek()) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, "malformed number '"+lx.text(sp)+"'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	sp := lx.cursor.SpanFrom(start)
	if sp.Len() > lx.opts.maxTokenLength() {
		lx.errLex(diag.LexTokenTooLong, sp, "numeric literal is too long")
		return token.Token{Kind: token.Invalid, Span: sp}
	}
	if bad != "" {
		lx.errLex(diag.LexBadNumber, sp, bad)
	}
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

func radixDigit(b byte) func(byte) bool {
	switch b {
	case 'x', 'X':
		return isHex
	case 'o', 'O':
		return isOct
	case 'b', 'B':
		return isBin
	default:
		return nil
	}
}
