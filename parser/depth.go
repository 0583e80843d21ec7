package parser

import (
	"fmt"

	"gqlfront/diag"
	"gqlfront/source"
	"gqlfront/token"
)

// enter increments the nesting depth. It returns false once the depth
// exceeds the limit; the first time that happens a single diagnostic is
// emitted for the whole parse. Every enter is paired with a deferred leave.
func (p *Parser) enter() bool {
	p.depth++
	if p.depth <= p.maxDepth {
		return true
	}
	if !p.depthHit {
		p.depthHit = true
		p.emit(diag.NewError(diag.LimitNestingDepth, p.diagSpan(),
			fmt.Sprintf("nesting exceeds the maximum depth of %d", p.maxDepth)).
			WithNote("the nested region was skipped"))
	}
	return false
}

func (p *Parser) leave() {
	p.depth--
}

// skipDeep skips the region that exceeded the depth limit without
// recursing. At an opening delimiter it skips the whole balanced group;
// otherwise it skips up to the enclosing closer, ';' or end of input.
func (p *Parser) skipDeep() source.Span {
	first := p.tok().Span
	start := p.s.Pos()
	depth := 0
	if _, ok := p.tok().Kind.Closer(); ok {
		for !p.at(token.EOF) {
			tok := p.advance()
			switch tok.Kind {
			case token.LParen, token.LBracket, token.LBrace:
				depth++
			case token.RParen, token.RBracket, token.RBrace:
				depth--
			}
			if depth == 0 {
				break
			}
		}
	} else {
	scan:
		for !p.at(token.EOF) {
			switch p.tok().Kind {
			case token.LParen, token.LBracket, token.LBrace:
				depth++
			case token.RParen, token.RBracket, token.RBrace:
				if depth == 0 {
					break scan
				}
				depth--
			case token.Semicolon:
				if depth == 0 {
					break scan
				}
			}
			p.advance()
		}
	}
	if p.s.Pos() == start {
		return first.ZeroideToStart()
	}
	sp := p.spanFrom(first)
	// Errors at the end of the skipped region are fallout of the limit.
	p.lastErrAt = int64(sp.End)
	return sp
}
