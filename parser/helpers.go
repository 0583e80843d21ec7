package parser

import (
	"gqlfront/diag"
	"gqlfront/source"
	"gqlfront/token"
)

func (p *Parser) tok() token.Token {
	return p.s.Current()
}

func (p *Parser) peek(n int) token.Token {
	return p.s.Peek(n)
}

func (p *Parser) at(k token.Kind) bool {
	return p.s.Kind() == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	cur := p.s.Kind()
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}

func (p *Parser) atKw(kw token.Keyword) bool {
	return p.tok().IsKeyword(kw)
}

func (p *Parser) atKwOr(kws ...token.Keyword) bool {
	tok := p.tok()
	if tok.Kind != token.Word || tok.Kw == token.KwNone {
		return false
	}
	for _, kw := range kws {
		if tok.Kw == kw {
			return true
		}
	}
	return false
}

func (p *Parser) peekKw(n int, kw token.Keyword) bool {
	return p.peek(n).IsKeyword(kw)
}

// advance consumes the current token and returns it.
func (p *Parser) advance() token.Token {
	return p.s.Advance()
}

func (p *Parser) eat(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return token.Token{}, false
}

func (p *Parser) eatKw(kw token.Keyword) (token.Token, bool) {
	if p.atKw(kw) {
		return p.advance(), true
	}
	return token.Token{}, false
}

// expect consumes a token of kind k or reports that it is missing.
func (p *Parser) expect(k token.Kind, code diag.Code, what string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.expected(code, what)
	return token.Token{}, false
}

func (p *Parser) expectKw(kw token.Keyword) (token.Token, bool) {
	if p.atKw(kw) {
		return p.advance(), true
	}
	p.expected(diag.SynExpectKeyword, kw.String())
	return token.Token{}, false
}

// expectCloser consumes the closing delimiter matching open. When it is
// missing the diagnostic covers everything from the opener up to the point
// where the closer was expected; a second, empty label marks that point.
func (p *Parser) expectCloser(open token.Token) (token.Token, bool) {
	closer := closerOf(open.Kind)
	if p.at(closer) {
		return p.advance(), true
	}
	code := diag.SynUnclosedParen
	switch open.Kind {
	case token.LBracket:
		code = diag.SynUnclosedBracket
	case token.LBrace:
		code = diag.SynUnclosedBrace
	case token.Lt:
		code = diag.SynUnclosedAngle
	}
	missing := p.tok().Span.ZeroideToStart()
	sp := open.Span.Cover(missing)
	msg := "expected " + closer.String() + " to close " + open.Kind.String()
	if cur := p.tok(); cur.Kind != token.EOF {
		msg += ", found " + cur.Describe()
	}
	d := diag.NewError(code, sp, msg).
		WithLabel(open.Span, "unclosed "+open.Kind.String()+" opened here").
		WithLabel(missing, "expected "+closer.String()+" here")
	if p.tok().Kind == token.EOF {
		d = d.WithSuggestion(diag.InsertText("insert "+closer.String(),
			p.tok().Span, closerText(closer), diag.Preferred()))
	}
	p.emitSyntax(d)
	return token.Token{}, false
}

func closerOf(k token.Kind) token.Kind {
	if k == token.Lt {
		return token.Gt
	}
	closer, _ := k.Closer()
	return closer
}

func closerText(k token.Kind) string {
	switch k {
	case token.RParen:
		return ")"
	case token.RBracket:
		return "]"
	case token.RBrace:
		return "}"
	case token.Gt:
		return ">"
	}
	return ""
}

// expected reports "expected what, found <current>". Invalid tokens were
// already diagnosed by the lexer and produce no second report.
func (p *Parser) expected(code diag.Code, what string) {
	tok := p.tok()
	if tok.Kind == token.Invalid {
		return
	}
	p.errAt(code, p.diagSpan(), "expected "+what+", found "+tok.Describe())
}

// diagSpan is the span of the current token, or an empty span right after
// the last consumed token when at end of input.
func (p *Parser) diagSpan() source.Span {
	tok := p.tok()
	if tok.Kind == token.EOF {
		prev := p.s.PrevSpan()
		if prev.End > 0 {
			return prev.ZeroideToEnd()
		}
		return tok.Span
	}
	return tok.Span
}

func (p *Parser) errAt(code diag.Code, sp source.Span, msg string) {
	p.emitSyntax(diag.NewError(code, sp, msg))
}

func (p *Parser) warnAt(code diag.Code, sp source.Span, msg string) {
	p.emit(diag.NewWarning(code, sp, msg))
}

// emitSyntax drops an error that starts where the previous one did: it is
// almost always a consequence of the first.
func (p *Parser) emitSyntax(d diag.Diagnostic) {
	at := int64(d.Primary.Start)
	if d.IsError() && at == p.lastErrAt {
		return
	}
	if d.IsError() {
		p.lastErrAt = at
	}
	p.emit(d)
}

// emit records d, enforcing MaxErrors. Once the limit is reached a single
// limit diagnostic is recorded and further errors are dropped.
func (p *Parser) emit(d diag.Diagnostic) {
	if d.IsError() {
		if p.opts.MaxErrors > 0 && p.errors >= p.opts.MaxErrors {
			if !p.limitHit {
				p.limitHit = true
				p.record(diag.NewWarning(diag.LimitTooManyDiags, d.Primary,
					"too many errors; further errors are not reported"))
			}
			return
		}
		p.errors++
	}
	p.record(d)
}

func (p *Parser) record(d diag.Diagnostic) {
	p.sink.Report(d)
}

// guardProgress is called at the bottom of every repetition with the
// stream position from the top. If nothing was consumed the current token
// is skipped with a diagnostic. It returns false when the loop must stop.
func (p *Parser) guardProgress(start int) bool {
	if p.s.Pos() > start {
		return true
	}
	if p.at(token.EOF) {
		return false
	}
	tok := p.advance()
	if tok.Kind != token.Invalid {
		p.errAt(diag.SynNoProgress, tok.Span, "unexpected "+tok.Describe())
	}
	return true
}

// spanFrom covers the tokens consumed since the token at start. If none
// were consumed it is the empty span at start.
func (p *Parser) spanFrom(start source.Span) source.Span {
	prev := p.s.PrevSpan()
	if prev.End <= start.Start || p.s.Pos() == 0 {
		return start.ZeroideToStart()
	}
	return start.Cover(prev)
}

// here is the empty span right after the last consumed token. Placeholders
// for missing constructs sit there, inside their parent's span.
func (p *Parser) here() source.Span {
	if p.s.Pos() == 0 {
		return p.tok().Span.ZeroideToStart()
	}
	return p.s.PrevSpan().ZeroideToEnd()
}
