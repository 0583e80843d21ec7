package lexer

import (
	"unicode"

	"gqlfront/diag"
	"gqlfront/token"
)

// collectLeadingTrivia gathers whitespace and comments preceding the next
// significant token into lx.hold.
//   - runs of spaces, tabs, CR, FF, VT and Unicode spaces become one TriviaSpace
//   - runs of '\n' become one TriviaNewline
//   - "//..." and "--..." up to the newline become TriviaLineComment
//   - "/* ... */" becomes TriviaBlockComment (not nested)
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case b == '\n':
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
			continue
		case lx.isSpaceAhead():
			for lx.isSpaceAhead() {
				lx.bumpRune()
			}
			lx.pushTrivia(token.TriviaSpace, start)
			continue
		case b == '/' || b == '-':
			if lx.scanComment() {
				continue
			}
		}
		return
	}
}

func (lx *Lexer) isSpaceAhead() bool {
	b := lx.cursor.Peek()
	switch b {
	case ' ', '\t', '\r', '\f', '\v':
		return true
	}
	if b < utf8RuneSelf {
		return false
	}
	r, sz := lx.peekRune()
	return sz > 0 && r != '\n' && unicode.IsSpace(r)
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)})
}

// scanComment consumes "//", "--" or "/*" comments. It returns false without
// moving when the cursor is not at a comment.
func (lx *Lexer) scanComment() bool {
	start := lx.cursor.Mark()
	switch {
	case lx.try2('/', '/'), lx.try2('-', '-'):
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.pushTrivia(token.TriviaLineComment, start)
		return true
	case lx.try2('/', '*'):
		for !lx.cursor.EOF() {
			if lx.try2('*', '/') {
				lx.pushTrivia(token.TriviaBlockComment, start)
				return true
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedComment, sp, "unterminated bracketed comment: expected '*/'")
		lx.pushTrivia(token.TriviaBlockComment, start)
		return true
	default:
		return false
	}
}
