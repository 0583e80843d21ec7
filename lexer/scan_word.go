package lexer

import (
	"golang.org/x/text/unicode/norm"

	"gqlfront/diag"
	"gqlfront/token"
)

// scanWord scans a regular identifier and classifies it against the keyword
// table. Token.Text is the exact source slice; the parser decides whether
// the word acts as a keyword.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 || (r >= utf8RuneSelf && !isIdentStartRune(r)) {
		return lx.scanOperatorOrPunct()
	}

	ascii := true
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
		ascii = false
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	if sp.Len() > lx.opts.maxTokenLength() {
		lx.errLex(diag.LexTokenTooLong, sp, "identifier is too long")
		return token.Token{Kind: token.Invalid, Span: sp}
	}
	text := lx.text(sp)

	if kw, tier, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: token.Word, Span: sp, Text: text, Kw: kw, Tier: tier}
	}
	if !ascii && !lx.opts.SkipNFCCheck && !norm.NFC.IsNormalString(text) {
		lx.warnLex(diag.LexNotNormalized, sp, "identifier is not in Unicode normalization form C")
	}
	return token.Token{Kind: token.Word, Span: sp, Text: text}
}
